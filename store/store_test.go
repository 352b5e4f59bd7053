// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package store

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectID(t *testing.T) {
	testCases := []struct {
		Name       string
		Bucket     string
		Key        string
		ExpectedID string
	}{
		{
			Name:       "Simple",
			Bucket:     "designs",
			Key:        "house.rvt",
			ExpectedID: "urn:oss.object:designs/house.rvt",
		},
		{
			Name:       "Key with path segments",
			Bucket:     "designs",
			Key:        "site/plant.dwg",
			ExpectedID: "urn:oss.object:designs/site/plant.dwg",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(testCase.ExpectedID, ObjectID(testCase.Bucket, testCase.Key))
		})
	}
}

func TestOperationError(t *testing.T) {
	testCases := []struct {
		Name            string
		Err             OperationError
		ExpectedMessage string
	}{
		{
			Name: "Keyed operation",
			Err: OperationError{
				Op:     UploadType,
				Bucket: "designs",
				Key:    "house.rvt",
				Err:    errors.New("connection refused"),
			},
			ExpectedMessage: "storage upload failed for designs/house.rvt: connection refused",
		},
		{
			Name: "Bucket operation",
			Err: OperationError{
				Op:     ListType,
				Bucket: "designs",
				Err:    errors.New("access denied"),
			},
			ExpectedMessage: "storage list failed for bucket designs: access denied",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(testCase.ExpectedMessage, testCase.Err.Error())
			assert.Equal(testCase.Err.Err, errors.Unwrap(testCase.Err))
			assert.Equal(http.StatusInternalServerError, testCase.Err.StatusCode())
		})
	}
}
