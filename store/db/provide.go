// SPDX-FileCopyrightText: 2021 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"github.com/xmidt-org/daedalus/store"
	"github.com/xmidt-org/daedalus/store/db/metric"
	"github.com/xmidt-org/daedalus/store/inmem"
	"github.com/xmidt-org/daedalus/store/s3"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Configs struct {
	S3 *s3.Config
}

type SetupIn struct {
	fx.In
	Configs  Configs
	Measures metric.Measures
	Logger   *zap.Logger
}

func Provide() fx.Option {
	return fx.Options(
		fx.Provide(
			SetupStore,
		),
	)
}

func SetupStore(in SetupIn) (store.S, error) {
	if in.Configs.S3 != nil {
		in.Logger.Info("using s3 store implementation")
		return s3.NewS3Client(*in.Configs.S3, in.Measures, in.Logger)
	}
	in.Logger.Info("using in memory store implementation")
	return inmem.NewInMem(), nil
}
