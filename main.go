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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/daedalus/forge"
	"github.com/xmidt-org/daedalus/jobs"
	"github.com/xmidt-org/daedalus/store/db"
	"github.com/xmidt-org/daedalus/store/db/metric"
	"github.com/xmidt-org/daedalus/store/s3"
	"github.com/xmidt-org/sallust"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const (
	applicationName = "daedalus"
	apiBasePath     = "/api/v1"

	defaultResultsBase = "results"
	defaultHealthPath  = "/health"
	defaultMetricsPath = "/metrics"
)

var (
	GitCommit = "undefined"
	Version   = "undefined"
	BuildTime = "undefined"
)

// HealthPath is the URL path the health server answers on.
type HealthPath string

// MetricsPath is the URL path the prometheus registry is exposed on.
type MetricsPath string

func main() {
	v, logger, err := setup(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app := fx.New(
		fx.Supply(logger),
		fx.Supply(v),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		provideMetrics(),
		metric.ProvideMetrics(),
		forge.ProvideMetrics(),
		db.Provide(),
		jobs.Provide(),
		provideCoreEndpoints(),
		provideHealthCheck(),
		provideMetricEndpoint(),
		provideServers(),
		fx.Provide(
			func(v *viper.Viper) (candlelight.Config, error) {
				var config candlelight.Config
				err := v.UnmarshalKey("tracing", &config)
				if err != nil {
					return candlelight.Config{}, err
				}
				config.ApplicationName = applicationName
				return config, nil
			},
			candlelight.New,
			newStoreConfigs,
			newJobsConfig,
			newResultDirs,
			newDerivativeClient,
			newHealthPath,
			newMetricsPath,
		),
	)

	if err := app.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app.Run()
}

// newStoreConfigs reads the store implementation configs present in the
// configuration file. Implementations without config are left nil, which is
// how the db setup decides which store backs the service.
func newStoreConfigs(v *viper.Viper) (db.Configs, error) {
	if !v.IsSet("store.s3") {
		return db.Configs{}, nil
	}
	var config s3.Config
	if err := v.UnmarshalKey("store.s3", &config); err != nil {
		return db.Configs{}, err
	}
	return db.Configs{S3: &config}, nil
}

func newJobsConfig(v *viper.Viper) (jobs.Config, error) {
	var config jobs.Config
	err := v.UnmarshalKey("jobs", &config)
	return config, err
}

func newResultDirs(v *viper.Viper) (jobs.ResultDirs, error) {
	var dirs jobs.ResultDirs
	if err := v.UnmarshalKey("results", &dirs); err != nil {
		return jobs.ResultDirs{}, err
	}
	if dirs.Base == "" {
		dirs.Base = defaultResultsBase
	}
	return dirs, nil
}

func newDerivativeClient(v *viper.Viper, logger *zap.Logger, measures forge.Measures) (forge.Client, error) {
	var config forge.BasicClientConfig
	if err := v.UnmarshalKey("derivatives", &config); err != nil {
		return nil, err
	}
	config.Logger = logger
	return forge.NewBasicClient(config, sallust.Get, &measures)
}

func newHealthPath(v *viper.Viper) HealthPath {
	path := v.GetString("health.path")
	if path == "" {
		path = defaultHealthPath
	}
	return HealthPath(path)
}

func newMetricsPath(v *viper.Viper) MetricsPath {
	path := v.GetString("prometheus.path")
	if path == "" {
		path = defaultMetricsPath
	}
	return MetricsPath(path)
}
