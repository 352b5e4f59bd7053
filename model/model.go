// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package model

// Translation lifecycle values as they appear in manifests and status
// reports.
const (
	StatusPending    = "pending"
	StatusInProgress = "inprogress"
	StatusSuccess    = "success"
	StatusFailed     = "failed"
	StatusTimeout    = "timeout"

	// StatusNotAvailable is reported for jobs the derivative service has no
	// manifest for yet.
	StatusNotAvailable = "n/a"

	// ProgressComplete is the terminal progress marker on a derivative tree.
	ProgressComplete = "complete"
)

// StoredObject describes a single design file held in bucket storage.
type StoredObject struct {
	// ObjectID is the provider identifier for the object. It is the value
	// that gets encoded into translation job identifiers, so it must be
	// stable for a given bucket and key.
	ObjectID string `json:"objectId"`

	// ObjectKey is the object's key within its bucket.
	ObjectKey string `json:"objectKey"`

	// Size is the stored size in bytes.
	Size int64 `json:"size"`
}

// Model pairs an uploaded design file with its translation job.
type Model struct {
	Name  string `json:"name"`
	JobID string `json:"jobId"`
}

// TranslationAck is the derivative service's acknowledgment of a submitted
// translation job.
type TranslationAck struct {
	Result string `json:"result"`
	URN    string `json:"urn"`
}

// Manifest is the translation manifest document for one job.
type Manifest struct {
	Type        string       `json:"type,omitempty"`
	URN         string       `json:"urn,omitempty"`
	Status      string       `json:"status"`
	Progress    string       `json:"progress,omitempty"`
	Region      string       `json:"region,omitempty"`
	Version     string       `json:"version,omitempty"`
	Derivatives []Derivative `json:"derivatives,omitempty"`
}

// Derivative is one top-level output tree within a manifest.
type Derivative struct {
	Name       string            `json:"name,omitempty"`
	Status     string            `json:"status,omitempty"`
	Progress   string            `json:"progress,omitempty"`
	OutputType string            `json:"outputType,omitempty"`
	Messages   []string          `json:"messages,omitempty"`
	Children   []DerivativeChild `json:"children,omitempty"`
}

// DerivativeChild is a nested node under a derivative tree, usually a
// concrete resource produced by the translation.
type DerivativeChild struct {
	GUID     string   `json:"guid,omitempty"`
	Type     string   `json:"type,omitempty"`
	Role     string   `json:"role,omitempty"`
	URN      string   `json:"urn,omitempty"`
	Status   string   `json:"status,omitempty"`
	Progress string   `json:"progress,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// ManifestSummary is the distilled view of a finished manifest. Any of the
// fields may be empty when the corresponding piece has not been published
// yet; callers must treat empty values as resource-not-yet-available.
type ManifestSummary struct {
	// CADFileName is the design file name recorded on the finished output
	// tree.
	CADFileName string `json:"cadFileName"`

	// PropertyDBURN locates the extracted property database resource.
	PropertyDBURN string `json:"propertyDbUrn"`

	// ModelDataURN locates the AEC model data resource.
	ModelDataURN string `json:"modelDataUrn"`
}

// StatusResult is the point-in-time translation status of a job.
type StatusResult struct {
	Status   string   `json:"status"`
	Progress string   `json:"progress,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// SignedDownload is a short-lived authorization to fetch one derivative
// resource directly from the storage tier behind the derivative service.
type SignedDownload struct {
	// URL is the direct download location.
	URL string `json:"url"`

	// Credential is the session credential that must accompany the download
	// request unmodified, expressed as a Cookie header value.
	Credential string `json:"credential,omitempty"`

	// Expiration is the epoch millisecond timestamp when the authorization
	// lapses.
	Expiration int64 `json:"expiration,omitempty"`
}

// DerivativeFiles reports where fetched derivative resources were staged on
// local disk.
type DerivativeFiles struct {
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}
