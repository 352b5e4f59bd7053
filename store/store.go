// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/xmidt-org/daedalus/model"
)

const (
	// TypeLabel is for labeling metrics; if there is a single metric for
	// successful queries, the typeLabel and corresponding type can be used
	// when incrementing the metric.
	TypeLabel  = "type"
	UploadType = "upload"
	ListType   = "list"
	HeadType   = "head"
	BucketType = "bucket"
)

// S is the interface to the blob storage tier holding uploaded designs.
type S interface {
	// Upload stores contents under bucket/key, overwriting any previous
	// object under the same key.
	Upload(ctx context.Context, bucket, key string, contents []byte) (model.StoredObject, error)

	// List returns every object in the bucket, in key order, following
	// provider pagination until the listing is exhausted.
	List(ctx context.Context, bucket string) ([]model.StoredObject, error)

	// Exists reports whether an object is stored under bucket/key.
	Exists(ctx context.Context, bucket, key string) (bool, error)

	// EnsureBucket creates the bucket when the provider does not have it
	// yet. A bucket this client already owns is success.
	EnsureBucket(ctx context.Context, bucket string) error
}

// ObjectID synthesizes the provider independent identifier for a stored
// object. Job identifiers are derived from this value, so its shape is part
// of the public contract and must stay stable for a given bucket and key.
func ObjectID(bucket, key string) string {
	return fmt.Sprintf("urn:oss.object:%s/%s", bucket, key)
}
