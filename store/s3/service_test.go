// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package s3

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/daedalus/model"
)

var errInternal = errors.New("internal dummy error")

func TestUploadExecutor(t *testing.T) {
	tcs := []struct {
		Description string
		PutErr      error
	}{
		{
			Description: "put error",
			PutErr:      errInternal,
		},
		{
			Description: "success",
		},
	}
	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			m := new(mockClient)
			m.On("PutObject", context.TODO(), &awss3.PutObjectInput{
				Bucket: aws.String("designs"),
				Key:    aws.String("house.rvt"),
				Body:   bytes.NewReader([]byte("cad bytes")),
			}).Return(&awss3.PutObjectOutput{}, tc.PutErr).Once()

			e := executor{c: m}
			object, err := e.Upload(context.TODO(), "designs", "house.rvt", []byte("cad bytes"))
			if tc.PutErr != nil {
				assert.Equal(tc.PutErr, err)
				assert.Empty(object.ObjectID)
				return
			}
			assert.NoError(err)
			assert.Equal("urn:oss.object:designs/house.rvt", object.ObjectID)
			assert.Equal("house.rvt", object.ObjectKey)
			assert.EqualValues(len("cad bytes"), object.Size)
		})
	}
}

func TestListExecutorPagination(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	m := new(mockClient)

	m.On("ListObjectsV2", context.TODO(), &awss3.ListObjectsV2Input{
		Bucket: aws.String("designs"),
	}).Return(&awss3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("bridge.ifc"), Size: aws.Int64(10)},
			{Key: aws.String("house.rvt"), Size: aws.Int64(20)},
		},
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("page-2"),
	}, nil).Once()

	m.On("ListObjectsV2", context.TODO(), &awss3.ListObjectsV2Input{
		Bucket:            aws.String("designs"),
		ContinuationToken: aws.String("page-2"),
	}).Return(&awss3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("plant.zip"), Size: aws.Int64(30)},
		},
		IsTruncated: aws.Bool(false),
	}, nil).Once()

	e := executor{c: m}
	objects, err := e.List(context.TODO(), "designs")
	require.NoError(err)

	assert.Equal([]model.StoredObject{
		{ObjectID: "urn:oss.object:designs/bridge.ifc", ObjectKey: "bridge.ifc", Size: 10},
		{ObjectID: "urn:oss.object:designs/house.rvt", ObjectKey: "house.rvt", Size: 20},
		{ObjectID: "urn:oss.object:designs/plant.zip", ObjectKey: "plant.zip", Size: 30},
	}, objects)
	m.AssertExpectations(t)
}

func TestListExecutorError(t *testing.T) {
	assert := assert.New(t)
	m := new(mockClient)
	m.On("ListObjectsV2", context.TODO(), &awss3.ListObjectsV2Input{
		Bucket: aws.String("designs"),
	}).Return((*awss3.ListObjectsV2Output)(nil), errInternal).Once()

	e := executor{c: m}
	objects, err := e.List(context.TODO(), "designs")
	assert.Nil(objects)
	assert.Equal(errInternal, err)
}

func TestExistsExecutor(t *testing.T) {
	tcs := []struct {
		Description   string
		HeadErr       error
		ExpectedFound bool
		ExpectedErr   error
	}{
		{
			Description:   "object present",
			ExpectedFound: true,
		},
		{
			Description: "object absent",
			HeadErr:     &types.NotFound{},
		},
		{
			Description: "head error",
			HeadErr:     errInternal,
			ExpectedErr: errInternal,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			m := new(mockClient)
			m.On("HeadObject", context.TODO(), &awss3.HeadObjectInput{
				Bucket: aws.String("designs"),
				Key:    aws.String("house.rvt"),
			}).Return(&awss3.HeadObjectOutput{}, tc.HeadErr).Once()

			e := executor{c: m}
			found, err := e.Exists(context.TODO(), "designs", "house.rvt")
			assert.Equal(tc.ExpectedFound, found)
			assert.Equal(tc.ExpectedErr, err)
		})
	}
}

func TestEnsureBucketExecutor(t *testing.T) {
	tcs := []struct {
		Description  string
		Region       string
		HeadErr      error
		CreateErr    error
		ExpectCreate bool
		ExpectedErr  error
	}{
		{
			Description: "bucket present",
		},
		{
			Description:  "bucket created",
			Region:       "us-west-2",
			HeadErr:      &types.NotFound{},
			ExpectCreate: true,
		},
		{
			Description:  "bucket already owned",
			Region:       "us-west-2",
			HeadErr:      &types.NotFound{},
			CreateErr:    &types.BucketAlreadyOwnedByYou{},
			ExpectCreate: true,
		},
		{
			Description: "head error",
			HeadErr:     errInternal,
			ExpectedErr: errInternal,
		},
		{
			Description:  "create error",
			Region:       "us-west-2",
			HeadErr:      &types.NotFound{},
			CreateErr:    errInternal,
			ExpectCreate: true,
			ExpectedErr:  errInternal,
		},
	}
	for _, tc := range tcs {
		t.Run(tc.Description, func(t *testing.T) {
			assert := assert.New(t)
			m := new(mockClient)
			m.On("HeadBucket", context.TODO(), &awss3.HeadBucketInput{
				Bucket: aws.String("designs"),
			}).Return(&awss3.HeadBucketOutput{}, tc.HeadErr).Once()

			if tc.ExpectCreate {
				m.On("CreateBucket", context.TODO(), &awss3.CreateBucketInput{
					Bucket: aws.String("designs"),
					CreateBucketConfiguration: &types.CreateBucketConfiguration{
						LocationConstraint: types.BucketLocationConstraint(tc.Region),
					},
				}).Return(&awss3.CreateBucketOutput{}, tc.CreateErr).Once()
			}

			e := executor{c: m, region: tc.Region}
			err := e.EnsureBucket(context.TODO(), "designs")
			assert.Equal(tc.ExpectedErr, err)
			m.AssertExpectations(t)
		})
	}
}

func TestEnsureBucketDefaultRegion(t *testing.T) {
	assert := assert.New(t)
	m := new(mockClient)
	m.On("HeadBucket", context.TODO(), &awss3.HeadBucketInput{
		Bucket: aws.String("designs"),
	}).Return(&awss3.HeadBucketOutput{}, &types.NotFound{}).Once()

	// No location constraint may accompany the default region.
	m.On("CreateBucket", context.TODO(), &awss3.CreateBucketInput{
		Bucket: aws.String("designs"),
	}).Return(&awss3.CreateBucketOutput{}, nil).Once()

	e := executor{c: m, region: "us-east-1"}
	assert.NoError(e.EnsureBucket(context.TODO(), "designs"))
	m.AssertExpectations(t)
}
