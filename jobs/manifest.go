// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"strings"

	"github.com/xmidt-org/daedalus/model"
)

// Derivative child roles the service stages for downstream consumers.
const (
	propertyDBRole = "Autodesk.CloudPlatform.PropertyDatabase"
	modelDataRole  = "Autodesk.AEC.ModelData"
)

const resourceType = "resource"

// parseManifest distills a manifest down to the resources callers care about.
// Only derivative trees that finished successfully are considered; within
// those, the property database and the AEC model data resources are captured.
// A summary with empty fields is a valid outcome: it means the translation has
// not published those resources yet.
func parseManifest(m *model.Manifest) (model.ManifestSummary, error) {
	if m == nil {
		return model.ManifestSummary{}, ManifestError{Reason: "no manifest received"}
	}
	if len(m.Derivatives) == 0 {
		return model.ManifestSummary{}, ManifestError{Reason: "manifest has no derivatives"}
	}

	var summary model.ManifestSummary
	for _, derivative := range m.Derivatives {
		if !derivativeComplete(derivative) {
			continue
		}
		summary.CADFileName = derivative.Name
		for _, child := range derivative.Children {
			if child.Type != resourceType {
				continue
			}
			switch child.Role {
			case propertyDBRole:
				summary.PropertyDBURN = child.URN
			case modelDataRole:
				summary.ModelDataURN = child.URN
			}
		}
	}
	return summary, nil
}

// derivativeComplete reports whether a derivative tree is a finished viewable
// output with published resources.
func derivativeComplete(d model.Derivative) bool {
	return strings.Contains(d.OutputType, "svf") &&
		d.Progress == model.ProgressComplete &&
		d.Status == model.StatusSuccess &&
		len(d.Children) > 0
}

// flattenMessages collects every diagnostic message in the manifest in
// document order: each derivative tree's own messages first, then its
// children's. Unlike parseManifest, unfinished trees report too.
func flattenMessages(m *model.Manifest) []string {
	if m == nil {
		return nil
	}
	var messages []string
	for _, derivative := range m.Derivatives {
		messages = append(messages, derivative.Messages...)
		for _, child := range derivative.Children {
			messages = append(messages, child.Messages...)
		}
	}
	return messages
}
