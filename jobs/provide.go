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
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/xmidt-org/daedalus/forge"
	"github.com/xmidt-org/daedalus/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handler is an http.Handler for one of the translation job routes.
type Handler http.Handler

type serviceIn struct {
	fx.In

	Config      Config
	Store       store.S
	Derivatives forge.Client
	ResultDirs  ResultDirs
	Logger      *zap.Logger
}

type handlerIn struct {
	fx.In

	Service S
	Config  *requestConfig
}

// Provide assembles the translation job service and its HTTP handlers.
func Provide() fx.Option {
	return fx.Options(
		fx.Provide(
			newService,
		),
		ProvideHandlers(),
	)
}

// ProvideHandlers fetches all dependencies and builds the five main handlers for this service.
func ProvideHandlers() fx.Option {
	return fx.Provide(
		newRequestConfig,

		fx.Annotated{
			Name:   "list_models_handler",
			Target: newListModelsHandler,
		},
		fx.Annotated{
			Name:   "create_model_handler",
			Target: newCreateModelHandler,
		},
		fx.Annotated{
			Name:   "status_handler",
			Target: newStatusHandler,
		},
		fx.Annotated{
			Name:   "properties_handler",
			Target: newPropertiesHandler,
		},
		fx.Annotated{
			Name:   "fetch_derivatives_handler",
			Target: newFetchDerivativesHandler,
		},
	)
}

func newService(in serviceIn) S {
	config := in.Config
	if config.Bucket == "" {
		config.Bucket = defaultBucket
	}
	return &service{
		config:      config,
		store:       in.Store,
		derivatives: in.Derivatives,
		resultDirs:  in.ResultDirs,
		logger:      in.Logger,
	}
}

func newRequestConfig(serviceConfig Config) *requestConfig {
	config := new(requestConfig)
	config.Validation.MaxUploadBytes = serviceConfig.MaxUploadBytes
	if config.Validation.MaxUploadBytes < 1 {
		config.Validation.MaxUploadBytes = defaultMaxUploadBytes
	}
	return config
}

func newListModelsHandler(in handlerIn) Handler {
	return kithttp.NewServer(
		newListModelsEndpoint(in.Service),
		kithttp.NopRequestDecoder,
		encodeJSONResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newCreateModelHandler(in handlerIn) Handler {
	return kithttp.NewServer(
		newCreateModelEndpoint(in.Service),
		createModelRequestDecoder(in.Config),
		encodeCreateModelResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newStatusHandler(in handlerIn) Handler {
	return kithttp.NewServer(
		newStatusEndpoint(in.Service),
		jobRequestDecoder(),
		encodeJSONResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newPropertiesHandler(in handlerIn) Handler {
	return kithttp.NewServer(
		newPropertiesEndpoint(in.Service),
		jobRequestDecoder(),
		encodeJSONResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}

func newFetchDerivativesHandler(in handlerIn) Handler {
	return kithttp.NewServer(
		newFetchDerivativesEndpoint(in.Service),
		jobRequestDecoder(),
		encodeJSONResponse,
		kithttp.ServerErrorEncoder(encodeError),
	)
}
