package s3

import (
	"context"

	"github.com/xmidt-org/daedalus/model"
	"go.uber.org/zap"
)

type loggingService struct {
	service
	debugLogger *zap.Logger
}

func newLoggingService(logger *zap.Logger, s service) service {
	return &loggingService{service: s, debugLogger: logger}
}

func (s *loggingService) Upload(ctx context.Context, bucket, key string, contents []byte) (object model.StoredObject, err error) {
	defer func() {
		s.debugLogger.Debug("uploaded object",
			zap.String("bucket", bucket), zap.String("key", key),
			zap.Int("size", len(contents)), zap.Error(err))
	}()
	object, err = s.service.Upload(ctx, bucket, key, contents)
	return
}

func (s *loggingService) List(ctx context.Context, bucket string) (objects []model.StoredObject, err error) {
	defer func() {
		s.debugLogger.Debug("listed bucket",
			zap.String("bucket", bucket), zap.Int("objectsSize", len(objects)), zap.Error(err))
	}()
	objects, err = s.service.List(ctx, bucket)
	return
}
