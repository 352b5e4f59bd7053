// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package jobs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultDirsEnsure(t *testing.T) {
	tcs := []struct {
		Description  string
		CADFileName  string
		ExpectedName string
		ExpectedErr  error
	}{
		{
			Description: "Empty name",
			ExpectedErr: AllocationError{Reason: "no CAD file name provided"},
		},
		{
			Description: "Dot name",
			CADFileName: ".",
			ExpectedErr: AllocationError{Reason: "invalid CAD file name"},
		},
		{
			Description: "Parent name",
			CADFileName: "..",
			ExpectedErr: AllocationError{Reason: "invalid CAD file name"},
		},
		{
			Description:  "Simple name",
			CADFileName:  "house.rvt",
			ExpectedName: "house.rvt",
		},
		{
			Description:  "Traversal components stripped",
			CADFileName:  "../../etc/passwd",
			ExpectedName: "passwd",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			resultDirs := ResultDirs{Base: t.TempDir()}
			dir, err := resultDirs.Ensure(tc.CADFileName)
			if tc.ExpectedErr != nil {
				assert.Equal(tc.ExpectedErr, err)
				assert.Empty(dir)
				return
			}
			assert.NoError(err)
			assert.Equal(filepath.Join(resultDirs.Base, tc.ExpectedName), dir)
			info, statErr := os.Stat(dir)
			assert.NoError(statErr)
			assert.True(info.IsDir())
		})
	}
}

func TestResultDirsEnsureIdempotent(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	resultDirs := ResultDirs{Base: t.TempDir()}

	first, err := resultDirs.Ensure("house.rvt")
	require.NoError(err)
	second, err := resultDirs.Ensure("house.rvt")
	require.NoError(err)
	assert.Equal(first, second)
}

func TestResultDirsEnsureCreatesBase(t *testing.T) {
	assert := assert.New(t)
	base := filepath.Join(t.TempDir(), "results", "nested")
	resultDirs := ResultDirs{Base: base}

	dir, err := resultDirs.Ensure("house.rvt")
	assert.NoError(err)
	assert.Equal(filepath.Join(base, "house.rvt"), dir)
	info, statErr := os.Stat(dir)
	assert.NoError(statErr)
	assert.True(info.IsDir())
}
