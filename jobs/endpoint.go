/**
 * Copyright 2022 Comcast Cable Communications Management, LLC
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

package jobs

import (
	"context"

	"github.com/go-kit/kit/endpoint"
)

func newListModelsEndpoint(s S) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		models, err := s.ListModels(ctx)
		if err != nil {
			return nil, err
		}
		return models, nil
	}
}

func newCreateModelEndpoint(s S) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		createRequest := request.(*createModelRequest)
		m, err := s.CreateModel(ctx, createRequest.fileName, createRequest.contents, createRequest.rootFilename)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
}

func newStatusEndpoint(s S) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		statusRequest := request.(*jobRequest)
		status, err := s.Status(ctx, statusRequest.jobID)
		if err != nil {
			return nil, err
		}
		return &status, nil
	}
}

func newPropertiesEndpoint(s S) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		propertiesRequest := request.(*jobRequest)
		summary, err := s.Properties(ctx, propertiesRequest.jobID)
		if err != nil {
			return nil, err
		}
		return &summary, nil
	}
}

func newFetchDerivativesEndpoint(s S) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		fetchRequest := request.(*jobRequest)
		files, err := s.FetchDerivatives(ctx, fetchRequest.jobID)
		if err != nil {
			return nil, err
		}
		return &files, nil
	}
}
