// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/xmidt-org/daedalus/forge"
	"github.com/xmidt-org/daedalus/model"
	"github.com/xmidt-org/daedalus/store"
	"github.com/xmidt-org/daedalus/urn"
	"go.uber.org/zap"
)

const defaultBucket = "daedalus-models"

const defaultMaxUploadBytes int64 = 200 << 20

// S defines the translation job operations offered by this service.
type S interface {
	// ListModels reports every uploaded design file along with its
	// translation job identifier.
	ListModels(ctx context.Context) ([]model.Model, error)

	// CreateModel stores an uploaded design file and submits it for
	// translation. For archive uploads, rootFilename names the entry design
	// file inside the archive.
	CreateModel(ctx context.Context, fileName string, contents []byte, rootFilename string) (model.Model, error)

	// Status reports the point-in-time translation status of a job. A job
	// the derivative service has no manifest for yet reports status "n/a"
	// rather than an error.
	Status(ctx context.Context, jobID string) (model.StatusResult, error)

	// Properties distills the job's manifest down to the derivative
	// resources of interest.
	Properties(ctx context.Context, jobID string) (model.ManifestSummary, error)

	// FetchDerivatives stages the job's finished derivative resources into
	// the model's result directory.
	FetchDerivatives(ctx context.Context, jobID string) (model.DerivativeFiles, error)
}

// Config contains the settings for the translation job service.
type Config struct {
	// Bucket is the bucket design files are uploaded to.
	// (Optional) defaults to "daedalus-models".
	Bucket string

	// MaxUploadBytes caps the size of accepted design file uploads.
	// (Optional) defaults to 200MB.
	MaxUploadBytes int64
}

type service struct {
	config      Config
	store       store.S
	derivatives forge.Client
	resultDirs  ResultDirs
	logger      *zap.Logger
}

func (s *service) ListModels(ctx context.Context) ([]model.Model, error) {
	objects, err := s.store.List(ctx, s.config.Bucket)
	if err != nil {
		return nil, err
	}
	models := make([]model.Model, 0, len(objects))
	for _, object := range objects {
		models = append(models, model.Model{
			Name:  object.ObjectKey,
			JobID: urn.Encode(object.ObjectID),
		})
	}
	return models, nil
}

func (s *service) CreateModel(ctx context.Context, fileName string, contents []byte, rootFilename string) (model.Model, error) {
	if fileName == "" {
		return model.Model{}, BadRequestErr{Message: "file name must be set"}
	}
	if len(contents) == 0 {
		return model.Model{}, BadRequestErr{Message: "file contents must not be empty"}
	}
	if err := s.store.EnsureBucket(ctx, s.config.Bucket); err != nil {
		return model.Model{}, err
	}
	exists, err := s.store.Exists(ctx, s.config.Bucket, fileName)
	if err != nil {
		return model.Model{}, err
	}
	if exists {
		s.logger.Debug("overwriting design file",
			zap.String("bucket", s.config.Bucket), zap.String("key", fileName))
	}
	object, err := s.store.Upload(ctx, s.config.Bucket, fileName, contents)
	if err != nil {
		return model.Model{}, err
	}
	jobID := urn.Encode(object.ObjectID)
	if _, err = s.derivatives.Translate(ctx, jobID, rootFilename); err != nil {
		return model.Model{}, err
	}
	return model.Model{Name: object.ObjectKey, JobID: jobID}, nil
}

func (s *service) Status(ctx context.Context, jobID string) (model.StatusResult, error) {
	manifest, ok, err := s.derivatives.Manifest(ctx, jobID)
	if err != nil {
		return model.StatusResult{}, err
	}
	if !ok {
		return model.StatusResult{Status: model.StatusNotAvailable}, nil
	}
	return model.StatusResult{
		Status:   manifest.Status,
		Progress: manifest.Progress,
		Messages: flattenMessages(manifest),
	}, nil
}

func (s *service) Properties(ctx context.Context, jobID string) (model.ManifestSummary, error) {
	manifest, _, err := s.derivatives.Manifest(ctx, jobID)
	if err != nil {
		return model.ManifestSummary{}, err
	}
	return parseManifest(manifest)
}

func (s *service) FetchDerivatives(ctx context.Context, jobID string) (model.DerivativeFiles, error) {
	manifest, _, err := s.derivatives.Manifest(ctx, jobID)
	if err != nil {
		return model.DerivativeFiles{}, err
	}
	summary, err := parseManifest(manifest)
	if err != nil {
		return model.DerivativeFiles{}, err
	}
	urns := availableURNs(summary)
	if len(urns) == 0 {
		return model.DerivativeFiles{}, NotReadyError{JobID: jobID}
	}
	dir, err := s.resultDirs.Ensure(summary.CADFileName)
	if err != nil {
		return model.DerivativeFiles{}, err
	}

	// The resources are independent, so they are staged concurrently.
	files := make([]string, len(urns))
	errs := make([]error, len(urns))
	var wg sync.WaitGroup
	for i, derivativeURN := range urns {
		wg.Add(1)
		go func(i int, derivativeURN string) {
			defer wg.Done()
			files[i], errs[i] = s.stageDerivative(ctx, jobID, derivativeURN, dir)
		}(i, derivativeURN)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return model.DerivativeFiles{}, err
		}
	}
	return model.DerivativeFiles{Directory: dir, Files: files}, nil
}

// stageDerivative resolves a signed download for the derivative resource,
// fetches its bytes and writes them under dir. The staged file keeps the last
// segment of the derivative URN as its name.
func (s *service) stageDerivative(ctx context.Context, jobID, derivativeURN, dir string) (string, error) {
	signed, err := s.derivatives.SignedDownload(ctx, jobID, derivativeURN)
	if err != nil {
		return "", err
	}
	contents, err := s.derivatives.Download(ctx, signed)
	if err != nil {
		return "", err
	}
	name := path.Base(derivativeURN)
	if err = os.WriteFile(filepath.Join(dir, name), contents, 0644); err != nil {
		return "", AllocationError{Reason: err.Error()}
	}
	return name, nil
}

func availableURNs(summary model.ManifestSummary) []string {
	var urns []string
	if summary.PropertyDBURN != "" {
		urns = append(urns, summary.PropertyDBURN)
	}
	if summary.ModelDataURN != "" {
		urns = append(urns, summary.ModelDataURN)
	}
	return urns
}
