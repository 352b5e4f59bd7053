// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package forge

import (
	"context"

	"github.com/xmidt-org/daedalus/model"
)

// Client captures the model derivative service operations the rest of the
// application depends on: submitting translation jobs, reading manifests, and
// resolving signed downloads for finished derivative resources.
type Client interface {
	// Translate submits a translation job for the stored design the URN
	// identifies. A non empty rootFilename marks the design as a compressed
	// package rooted at that file.
	Translate(ctx context.Context, urn, rootFilename string) (model.TranslationAck, error)

	// Manifest fetches the manifest of a previously submitted job. The
	// boolean reports whether the service knows the job at all: a job it has
	// not seen yet is (nil, false, nil), never an error.
	Manifest(ctx context.Context, urn string) (*model.Manifest, bool, error)

	// SignedDownload resolves a derivative resource URN into a time limited
	// signed URL plus the session credential required to fetch it.
	SignedDownload(ctx context.Context, urn, derivativeURN string) (model.SignedDownload, error)

	// Download fetches the bytes behind a signed download, forwarding the
	// session credential unmodified.
	Download(ctx context.Context, signed model.SignedDownload) ([]byte, error)
}
