package forge

import (
	"fmt"
	"net/http"
)

// SubmissionError means the derivative service refused a translation job.
// Code and Body are the upstream response for diagnostics.
type SubmissionError struct {
	Code int
	Body []byte
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("derivative service rejected the translation job: status %d: %s", e.Code, e.Body)
}

func (e *SubmissionError) StatusCode() int {
	return http.StatusBadGateway
}

// FetchError means a manifest read failed with something other than the
// expected not-found outcome.
type FetchError struct {
	Code int
	Body []byte
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("derivative service failed the manifest fetch: status %d: %s", e.Code, e.Body)
}

func (e *FetchError) StatusCode() int {
	return http.StatusBadGateway
}

// ResolveError means the derivative service would not sign a download for a
// derivative resource. URN names the resource for diagnostics.
type ResolveError struct {
	URN  string
	Code int
	Body []byte
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("derivative service failed to sign a download for %s: status %d: %s", e.URN, e.Code, e.Body)
}

func (e *ResolveError) StatusCode() int {
	return http.StatusBadGateway
}

// DownloadError means a signed URL fetch came back non-successful.
type DownloadError struct {
	Code int
	Body []byte
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("signed derivative download failed: status %d: %s", e.Code, e.Body)
}

func (e *DownloadError) StatusCode() int {
	return http.StatusBadGateway
}
