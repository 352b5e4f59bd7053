// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package urn encodes storage object identifiers into the opaque job
// identifiers the derivative service expects on its URL paths.
package urn

import "encoding/base64"

// Encode converts a storage object identifier into a translation job
// identifier: standard alphabet base64 with the trailing padding stripped.
// The derivative service rejects padded identifiers on URL paths.
// Encode is deterministic and distinct inputs never collide.
func Encode(objectID string) string {
	return base64.RawStdEncoding.EncodeToString([]byte(objectID))
}
