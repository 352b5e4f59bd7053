// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const (
	defaultPrimaryAddress = ":6600"
	defaultMetricsAddress = ":6601"
	defaultHealthAddress  = ":6602"
)

// ServerConfig holds the settings for one of the application's HTTP servers.
type ServerConfig struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type serversIn struct {
	fx.In

	LC     fx.Lifecycle
	Logger *zap.Logger

	PrimaryConfig ServerConfig `name:"servers.primary.config"`
	MetricsConfig ServerConfig `name:"servers.metrics.config"`
	HealthConfig  ServerConfig `name:"servers.health.config"`

	PrimaryHandler http.Handler `name:"servers.primary.handler"`
	MetricsHandler http.Handler `name:"servers.metrics.handler"`
	HealthHandler  http.Handler `name:"servers.health.handler"`
}

func provideServers() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotated{
				Name:   "servers.primary.config",
				Target: serverConfigUnmarshaller("servers.primary", defaultPrimaryAddress),
			},
			fx.Annotated{
				Name:   "servers.metrics.config",
				Target: serverConfigUnmarshaller("servers.metrics", defaultMetricsAddress),
			},
			fx.Annotated{
				Name:   "servers.health.config",
				Target: serverConfigUnmarshaller("servers.health", defaultHealthAddress),
			},
		),
		fx.Invoke(
			runServers,
		),
	)
}

func serverConfigUnmarshaller(key, defaultAddress string) func(v *viper.Viper) (ServerConfig, error) {
	return func(v *viper.Viper) (ServerConfig, error) {
		var config ServerConfig
		if err := v.UnmarshalKey(key, &config); err != nil {
			return ServerConfig{}, err
		}
		if len(config.Address) == 0 {
			config.Address = defaultAddress
		}
		return config, nil
	}
}

func runServers(in serversIn) {
	runServer(in.LC, in.Logger, "primary", in.PrimaryConfig, in.PrimaryHandler)
	runServer(in.LC, in.Logger, "metrics", in.MetricsConfig, in.MetricsHandler)
	runServer(in.LC, in.Logger, "health", in.HealthConfig, in.HealthHandler)
}

// runServer hooks one HTTP server into the application lifecycle. The listener
// is claimed during startup so address conflicts fail the whole app instead of
// a background goroutine.
func runServer(lc fx.Lifecycle, logger *zap.Logger, name string, config ServerConfig, handler http.Handler) {
	server := &http.Server{
		Addr:         config.Address,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting server",
				zap.String("server", name), zap.String("address", server.Addr))
			go func() {
				err := server.Serve(listener)
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server terminated",
						zap.String("server", name), zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server", zap.String("server", name))
			return server.Shutdown(ctx)
		},
	})
}
