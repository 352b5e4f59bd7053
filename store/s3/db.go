package s3

import (
	"context"

	"emperror.dev/errors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/daedalus/model"
	"github.com/xmidt-org/daedalus/store"
	"github.com/xmidt-org/daedalus/store/db/metric"
	"go.uber.org/zap"
)

var validate = validator.New()

// Config contains the connection settings for the S3 compatible object
// store.
type Config struct {
	// Endpoint overrides the AWS endpoint, pointing the client at a
	// compatible provider such as minio.
	// (Optional)
	Endpoint string

	// Region the buckets live in.
	Region string `validate:"required"`

	// PathStyle forces path style bucket addressing, which most S3
	// compatible providers require.
	PathStyle bool

	// AccessKey and SecretKey are static credentials. When unset the
	// default AWS credential chain applies.
	AccessKey string
	SecretKey string
}

// S3Client adapts the S3 service to the abstract storage DAO, counting
// operation outcomes as it goes.
type S3Client struct {
	client   service
	config   Config
	logger   *zap.Logger
	measures metric.Measures
}

func NewS3Client(config Config, measures metric.Measures, logger *zap.Logger) (store.S, error) {
	if err := validate.Struct(config); err != nil {
		return nil, errors.WrapWith(err, "invalid s3 configuration", "endpoint", config.Endpoint)
	}

	svc, err := newService(context.Background(), config)
	if err != nil {
		return nil, errors.WrapWith(err, "building the s3 client failed", "region", config.Region)
	}

	return &S3Client{
		client:   newLoggingService(logger, svc),
		config:   config,
		logger:   logger,
		measures: measures,
	}, nil
}

func (s *S3Client) Upload(ctx context.Context, bucket, key string, contents []byte) (model.StoredObject, error) {
	object, err := s.client.Upload(ctx, bucket, key, contents)
	if err != nil {
		s.countQuery(s.measures.StorageQueryFailureCount, store.UploadType)
		return object, store.OperationError{Op: store.UploadType, Bucket: bucket, Key: key, Err: err}
	}
	s.countQuery(s.measures.StorageQuerySuccessCount, store.UploadType)
	return object, nil
}

func (s *S3Client) List(ctx context.Context, bucket string) ([]model.StoredObject, error) {
	objects, err := s.client.List(ctx, bucket)
	if err != nil {
		s.countQuery(s.measures.StorageQueryFailureCount, store.ListType)
		return nil, store.OperationError{Op: store.ListType, Bucket: bucket, Err: err}
	}
	s.countQuery(s.measures.StorageQuerySuccessCount, store.ListType)
	return objects, nil
}

func (s *S3Client) Exists(ctx context.Context, bucket, key string) (bool, error) {
	found, err := s.client.Exists(ctx, bucket, key)
	if err != nil {
		s.countQuery(s.measures.StorageQueryFailureCount, store.HeadType)
		return false, store.OperationError{Op: store.HeadType, Bucket: bucket, Key: key, Err: err}
	}
	s.countQuery(s.measures.StorageQuerySuccessCount, store.HeadType)
	return found, nil
}

func (s *S3Client) EnsureBucket(ctx context.Context, bucket string) error {
	err := s.client.EnsureBucket(ctx, bucket)
	if err != nil {
		s.countQuery(s.measures.StorageQueryFailureCount, store.BucketType)
		return store.OperationError{Op: store.BucketType, Bucket: bucket, Err: err}
	}
	s.countQuery(s.measures.StorageQuerySuccessCount, store.BucketType)
	return nil
}

func (s *S3Client) countQuery(counter *prometheus.CounterVec, queryType string) {
	counter.With(prometheus.Labels{store.TypeLabel: queryType}).Add(1.0)
}
