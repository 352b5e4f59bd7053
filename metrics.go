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
	"github.com/spf13/viper"
	"github.com/xmidt-org/touchstone"
	"github.com/xmidt-org/touchstone/touchhttp"
	"go.uber.org/fx"
)

// provideMetrics bootstraps the prometheus registry along with the metric and
// HTTP instrumentation factories backed by it.
func provideMetrics() fx.Option {
	return fx.Options(
		fx.Provide(
			func(v *viper.Viper) (touchstone.Config, error) {
				var config touchstone.Config
				err := v.UnmarshalKey("prometheus", &config)
				return config, err
			},
		),
		touchstone.Provide(),
		touchhttp.Provide(),
	)
}
