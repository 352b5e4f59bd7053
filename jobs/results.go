// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"os"
	"path/filepath"
	"strings"
)

// ResultDirs allocates per-model directories under a base path for staged
// derivative resources.
type ResultDirs struct {
	// Base is the directory result directories are created under.
	Base string
}

// Ensure creates, if needed, the result directory for the named CAD file and
// returns its path. Only the base name of the input is honored, so path
// components cannot escape the base directory. Ensure is idempotent: a
// pre-existing directory is success.
func (r ResultDirs) Ensure(cadFileName string) (string, error) {
	if cadFileName == "" {
		return "", AllocationError{Reason: "no CAD file name provided"}
	}
	name := filepath.Base(cadFileName)
	if name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return "", AllocationError{Reason: "invalid CAD file name"}
	}
	dir := filepath.Join(r.Base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", AllocationError{Reason: err.Error()}
	}
	return dir, nil
}
