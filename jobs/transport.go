package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/xmidt-org/daedalus/model"
)

// request URL path keys
const (
	urnVarKey = "urn"
)

const (
	urnVarMissingMsg = "{urn} URL path parameter missing"
)

// multipart form keys for model uploads
const (
	fileFormKey         = "file"
	rootFilenameFormKey = "rootFilename"
)

// Request and Response Headers
const (
	XmidtErrorHeaderKey = "X-Midt-Error"
)

// multipartMemoryLimit caps how much of an upload stays in memory before the
// rest spills to temporary files.
const multipartMemoryLimit = 32 << 20

// ErrCasting indicates there was a middleware wiring mistake with the go-kit style
// encoders.
var ErrCasting = errors.New("casting error due to middleware wiring mistake")

type requestConfig struct {
	Validation struct {
		MaxUploadBytes int64
	}
}

type createModelRequest struct {
	fileName     string
	contents     []byte
	rootFilename string
}

type jobRequest struct {
	jobID string
}

func createModelRequestDecoder(config *requestConfig) kithttp.DecodeRequestFunc {
	return func(ctx context.Context, r *http.Request) (interface{}, error) {
		if r.ContentLength > config.Validation.MaxUploadBytes {
			return nil, RequestTooLargeErr{Limit: config.Validation.MaxUploadBytes}
		}

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			return nil, BadRequestErr{Message: "failed to parse multipart form"}
		}

		file, header, err := r.FormFile(fileFormKey)
		if err != nil {
			return nil, BadRequestErr{Message: "file form part must be set"}
		}
		defer file.Close()

		if header.Size > config.Validation.MaxUploadBytes {
			return nil, RequestTooLargeErr{Limit: config.Validation.MaxUploadBytes}
		}

		contents, err := io.ReadAll(file)
		if err != nil {
			return nil, BadRequestErr{Message: "failed to read file form part"}
		}

		return &createModelRequest{
			fileName:     header.Filename,
			contents:     contents,
			rootFilename: r.FormValue(rootFilenameFormKey),
		}, nil
	}
}

func jobRequestDecoder() kithttp.DecodeRequestFunc {
	return func(ctx context.Context, r *http.Request) (interface{}, error) {
		vars := mux.Vars(r)
		jobID, ok := vars[urnVarKey]
		if !ok {
			return nil, BadRequestErr{Message: urnVarMissingMsg}
		}
		return &jobRequest{jobID: jobID}, nil
	}
}

func encodeJSONResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	rw.Header().Add("Content-Type", "application/json")
	rw.Write(data)
	return nil
}

func encodeCreateModelResponse(ctx context.Context, rw http.ResponseWriter, response interface{}) error {
	m, ok := response.(*model.Model)
	if !ok {
		return ErrCasting
	}
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	rw.Header().Add("Content-Type", "application/json")
	rw.WriteHeader(http.StatusCreated)
	rw.Write(data)
	return nil
}

func encodeError(ctx context.Context, err error, w http.ResponseWriter) {
	w.Header().Set(XmidtErrorHeaderKey, err.Error())
	if headerer, ok := err.(kithttp.Headerer); ok {
		for k, values := range headerer.Headers() {
			for _, v := range values {
				w.Header().Add(k, v)
			}
		}
	}
	code := http.StatusInternalServerError
	if sc, ok := err.(kithttp.StatusCoder); ok {
		code = sc.StatusCode()
	}
	w.WriteHeader(code)
}
