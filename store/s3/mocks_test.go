/**
 * Copyright 2020 Comcast Cable Communications Management, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package s3

import (
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/daedalus/model"
)

type mockService struct {
	mock.Mock
}

func (s *mockService) Upload(ctx context.Context, bucket, key string, contents []byte) (model.StoredObject, error) {
	args := s.Called(ctx, bucket, key, contents)
	return args.Get(0).(model.StoredObject), args.Error(1)
}

func (s *mockService) List(ctx context.Context, bucket string) ([]model.StoredObject, error) {
	args := s.Called(ctx, bucket)
	return args.Get(0).([]model.StoredObject), args.Error(1)
}

func (s *mockService) Exists(ctx context.Context, bucket, key string) (bool, error) {
	args := s.Called(ctx, bucket, key)
	return args.Bool(0), args.Error(1)
}

func (s *mockService) EnsureBucket(ctx context.Context, bucket string) error {
	args := s.Called(ctx, bucket)
	return args.Error(0)
}

type mockClient struct {
	mock.Mock
}

func (c *mockClient) PutObject(ctx context.Context, input *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(*awss3.PutObjectOutput), args.Error(1)
}

func (c *mockClient) HeadObject(ctx context.Context, input *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(*awss3.HeadObjectOutput), args.Error(1)
}

func (c *mockClient) HeadBucket(ctx context.Context, input *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(*awss3.HeadBucketOutput), args.Error(1)
}

func (c *mockClient) CreateBucket(ctx context.Context, input *awss3.CreateBucketInput, optFns ...func(*awss3.Options)) (*awss3.CreateBucketOutput, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(*awss3.CreateBucketOutput), args.Error(1)
}

func (c *mockClient) ListObjectsV2(ctx context.Context, input *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error) {
	args := c.Called(ctx, input)
	return args.Get(0).(*awss3.ListObjectsV2Output), args.Error(1)
}
