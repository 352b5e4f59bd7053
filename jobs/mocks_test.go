// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0
package jobs

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/daedalus/model"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Upload(ctx context.Context, bucket, key string, contents []byte) (model.StoredObject, error) {
	args := m.Called(ctx, bucket, key, contents)
	return args.Get(0).(model.StoredObject), args.Error(1)
}

func (m *mockStore) List(ctx context.Context, bucket string) ([]model.StoredObject, error) {
	args := m.Called(ctx, bucket)
	return args.Get(0).([]model.StoredObject), args.Error(1)
}

func (m *mockStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	args := m.Called(ctx, bucket, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockStore) EnsureBucket(ctx context.Context, bucket string) error {
	args := m.Called(ctx, bucket)
	return args.Error(0)
}

type mockDerivativeClient struct {
	mock.Mock
}

func (m *mockDerivativeClient) Translate(ctx context.Context, urn, rootFilename string) (model.TranslationAck, error) {
	args := m.Called(ctx, urn, rootFilename)
	return args.Get(0).(model.TranslationAck), args.Error(1)
}

func (m *mockDerivativeClient) Manifest(ctx context.Context, urn string) (*model.Manifest, bool, error) {
	args := m.Called(ctx, urn)
	return args.Get(0).(*model.Manifest), args.Bool(1), args.Error(2)
}

func (m *mockDerivativeClient) SignedDownload(ctx context.Context, urn, derivativeURN string) (model.SignedDownload, error) {
	args := m.Called(ctx, urn, derivativeURN)
	return args.Get(0).(model.SignedDownload), args.Error(1)
}

func (m *mockDerivativeClient) Download(ctx context.Context, signed model.SignedDownload) ([]byte, error) {
	args := m.Called(ctx, signed)
	return args.Get(0).([]byte), args.Error(1)
}
