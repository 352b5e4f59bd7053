// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/daedalus/jobs"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/httpaux/recovery"
	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/touchstone/touchhttp"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type PrimaryRoutesIn struct {
	fx.In
	Metrics  touchhttp.ServerInstrumenter `name:"servers.primary.metrics"`
	Tracing  candlelight.Tracing
	Logger   *zap.Logger
	Handlers PrimaryHandlersIn
}

type PrimaryHandlersIn struct {
	fx.In
	ListModels       jobs.Handler `name:"list_models_handler"`
	CreateModel      jobs.Handler `name:"create_model_handler"`
	Status           jobs.Handler `name:"status_handler"`
	Properties       jobs.Handler `name:"properties_handler"`
	FetchDerivatives jobs.Handler `name:"fetch_derivatives_handler"`
}

func provideCoreEndpoints() fx.Option {
	return fx.Provide(
		fx.Annotated{
			Name: "servers.primary.metrics",
			Target: touchhttp.ServerBundle{}.NewInstrumenter(
				touchhttp.ServerLabel, "primary",
			),
		},
		fx.Annotated{
			Name: "servers.health.metrics",
			Target: touchhttp.ServerBundle{}.NewInstrumenter(
				touchhttp.ServerLabel, "health",
			),
		},
		fx.Annotated{
			Name:   "servers.primary.handler",
			Target: newPrimaryHandler,
		},
	)
}

func newPrimaryHandler(in PrimaryRoutesIn) http.Handler {
	router := mux.NewRouter()

	options := []otelmux.Option{
		otelmux.WithTracerProvider(in.Tracing.TracerProvider()),
		otelmux.WithPropagators(in.Tracing.Propagator()),
	}
	router.Use(
		otelmux.Middleware(applicationName, options...),
		candlelight.EchoFirstTraceNodeInfo(in.Tracing.Propagator(), false),
	)

	api := router.PathPrefix(apiBasePath).Subrouter()
	api.Handle("/models", in.Handlers.ListModels).Methods(http.MethodGet)
	api.Handle("/models", in.Handlers.CreateModel).Methods(http.MethodPost)
	api.Handle("/models/{urn}/status", in.Handlers.Status).Methods(http.MethodGet)
	api.Handle("/models/{urn}/properties", in.Handlers.Properties).Methods(http.MethodGet)
	api.Handle("/models/{urn}/derivatives", in.Handlers.FetchDerivatives).Methods(http.MethodPost)

	chain := alice.New(
		recovery.Middleware(recovery.WithStatusCode(555)),
		setLogger(in.Logger),
	)
	return in.Metrics.Then(chain.Then(router))
}

// setLogger creates an alice constructor that sets up a logger in the request
// context that can be used for all logging related to the current request.
func setLogger(logger *zap.Logger) alice.Constructor {
	return func(delegate http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				logHeader := r.Header.Clone()
				if str := logHeader.Get("Authorization"); str != "" {
					logHeader.Del("Authorization")
					logHeader.Set("Authorization-Type", strings.Split(str, " ")[0])
				}
				requestLogger := logger.With(
					zap.Any("requestHeaders", logHeader),
					zap.String("requestURL", r.URL.EscapedPath()),
					zap.String("method", r.Method),
				)
				delegate.ServeHTTP(w, r.WithContext(sallust.With(r.Context(), requestLogger)))
			})
	}
}

func provideHealthCheck() fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(metrics touchhttp.ServerInstrumenter, path HealthPath) http.Handler {
				router := mux.NewRouter()
				router.Handle(string(path), httpaux.ConstantHandler{
					StatusCode: http.StatusOK,
				}).Methods(http.MethodGet)
				return metrics.Then(router)
			},
			fx.ParamTags(`name:"servers.health.metrics"`),
			fx.ResultTags(`name:"servers.health.handler"`),
		),
	)
}

func provideMetricEndpoint() fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(metrics touchhttp.Handler, path MetricsPath) http.Handler {
				router := mux.NewRouter()
				router.Handle(string(path), metrics).Methods(http.MethodGet)
				return router
			},
			fx.ResultTags(`name:"servers.metrics.handler"`),
		),
	)
}
