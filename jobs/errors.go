package jobs

import (
	"fmt"
	"net/http"
)

type BadRequestErr struct {
	Message string
}

func (bre BadRequestErr) Error() string {
	return bre.Message
}

func (bre BadRequestErr) StatusCode() int {
	return http.StatusBadRequest
}

// RequestTooLargeErr rejects uploads past the configured size cap.
type RequestTooLargeErr struct {
	Limit int64
}

func (rtle RequestTooLargeErr) Error() string {
	return fmt.Sprintf("upload exceeds the %d byte limit", rtle.Limit)
}

func (rtle RequestTooLargeErr) StatusCode() int {
	return http.StatusRequestEntityTooLarge
}

// ManifestError means the derivative service returned a manifest this service
// cannot work with: either no manifest at all or one with no derivative trees.
type ManifestError struct {
	Reason string
}

func (me ManifestError) Error() string {
	return me.Reason
}

func (me ManifestError) StatusCode() int {
	return http.StatusBadGateway
}

// AllocationError means a local result directory or staged file could not be
// created.
type AllocationError struct {
	Reason string
}

func (ae AllocationError) Error() string {
	return ae.Reason
}

func (ae AllocationError) StatusCode() int {
	return http.StatusInternalServerError
}

// NotReadyError means the job's manifest exists but no finished derivative
// resources are available to fetch yet.
type NotReadyError struct {
	JobID string
}

func (nre NotReadyError) Error() string {
	return fmt.Sprintf("translation job %s has no finished derivative resources yet", nre.JobID)
}

func (nre NotReadyError) StatusCode() int {
	return http.StatusConflict
}
