// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package inmem

import (
	"context"
	"sort"
	"sync"

	"github.com/xmidt-org/daedalus/model"
	"github.com/xmidt-org/daedalus/store"
)

type InMem struct {
	data map[string]map[string][]byte
	lock sync.Mutex
}

func NewInMem() store.S {
	return &InMem{
		data: map[string]map[string][]byte{},
	}
}

func (i *InMem) Upload(ctx context.Context, bucket, key string, contents []byte) (model.StoredObject, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	if i.data[bucket] == nil {
		i.data[bucket] = map[string][]byte{}
	}
	i.data[bucket][key] = append([]byte(nil), contents...)
	return model.StoredObject{
		ObjectID:  store.ObjectID(bucket, key),
		ObjectKey: key,
		Size:      int64(len(contents)),
	}, nil
}

// List walks the bucket in lexical key order so results are stable across calls.
func (i *InMem) List(ctx context.Context, bucket string) ([]model.StoredObject, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	objects := i.data[bucket]
	keys := make([]string, 0, len(objects))
	for key := range objects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	result := make([]model.StoredObject, 0, len(keys))
	for _, key := range keys {
		result = append(result, model.StoredObject{
			ObjectID:  store.ObjectID(bucket, key),
			ObjectKey: key,
			Size:      int64(len(objects[key])),
		})
	}
	return result, nil
}

func (i *InMem) Exists(ctx context.Context, bucket, key string) (bool, error) {
	i.lock.Lock()
	defer i.lock.Unlock()
	_, ok := i.data[bucket][key]
	return ok, nil
}

func (i *InMem) EnsureBucket(ctx context.Context, bucket string) error {
	i.lock.Lock()
	defer i.lock.Unlock()
	if i.data[bucket] == nil {
		i.data[bucket] = map[string][]byte{}
	}
	return nil
}
