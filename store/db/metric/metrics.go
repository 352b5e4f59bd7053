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

package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/daedalus/store"
	"github.com/xmidt-org/touchstone"
	"go.uber.org/fx"
)

// Names
const (
	StorageQuerySuccessCounter = "storage_query_success_count"
	StorageQueryFailureCounter = "storage_query_failure_count"
)

// ProvideMetrics returns the Metrics relevant to this package
func ProvideMetrics() fx.Option {
	return fx.Options(
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: StorageQuerySuccessCounter,
				Help: "The total number of successful storage queries",
			},
			store.TypeLabel,
		),
		touchstone.CounterVec(
			prometheus.CounterOpts{
				Name: StorageQueryFailureCounter,
				Help: "The total number of failed storage queries",
			},
			store.TypeLabel,
		),
	)
}

type Measures struct {
	fx.In
	StorageQuerySuccessCount *prometheus.CounterVec `name:"storage_query_success_count"`
	StorageQueryFailureCount *prometheus.CounterVec `name:"storage_query_failure_count"`
}
