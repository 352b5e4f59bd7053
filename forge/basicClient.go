/**
 * Copyright 2021 Comcast Cable Communications Management, LLC
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

package forge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/xmidt-org/bascule/acquire"
	"github.com/xmidt-org/daedalus/model"
	"github.com/xmidt-org/daedalus/token"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// Errors that can be returned by this package. Since some of these errors are returned wrapped, it
// is safest to use errors.Is() to check for them.
var (
	ErrNilMeasures         = errors.New("measures cannot be nil")
	ErrAddressEmpty        = errors.New("derivative service address is required")
	ErrURNEmpty            = errors.New("design URN is required")
	ErrAuthAcquirerFailure = errors.New("failed acquiring auth token")
)

var (
	errNewRequestFailure  = errors.New("failed creating an HTTP request")
	errDoRequestFailure   = errors.New("http client failed while sending request")
	errReadingBodyFailure = errors.New("failed while reading http response body")
	errJSONUnmarshal      = errors.New("failed unmarshaling JSON response payload")
	errJSONMarshal        = errors.New("failed marshaling translation job as JSON payload")
)

const (
	derivativeAPIPath = "/modelderivative/v2/designdata"
	errWrappedFmt     = "%w: %s"
)

// Translation output requested for every job: a viewable in both flavors.
const (
	svfFormatType = "svf2"
	view2D        = "2d"
	view3D        = "3d"
)

// BasicClientConfig contains config data for the client that will be used to
// make requests to the model derivative service.
type BasicClientConfig struct {
	// Address is the derivative service URL (i.e. https://developer.api.autodesk.com)
	Address string

	// HTTPClient refers to the client that will be used to send requests.
	// (Optional) Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Auth provides the mechanism to add auth headers to outgoing requests.
	// (Optional) If not provided, no auth headers are added.
	Auth Auth

	// Logger to be used by the client.
	// (Optional). By default a no op logger will be used.
	Logger *zap.Logger
}

// BasicClient is the client used to make requests to the derivative service.
type BasicClient struct {
	client        *http.Client
	auth          acquire.Acquirer
	designdataURL string
	logger        *zap.Logger
	getLogger     func(context.Context) *zap.Logger
	measures      *Measures
}

// Auth contains authorization data for requests to the derivative service.
type Auth struct {
	OAuth  token.Options
	Static string
}

type response struct {
	Body    []byte
	Code    int
	Cookies []*http.Cookie
}

// NewBasicClient creates a new BasicClient that can be used to make requests
// to the derivative service.
func NewBasicClient(config BasicClientConfig,
	getLogger func(context.Context) *zap.Logger,
	measures *Measures,
) (*BasicClient, error) {
	err := validateBasicConfig(&config)
	if err != nil {
		return nil, err
	}
	if measures == nil {
		return nil, ErrNilMeasures
	}
	if getLogger == nil {
		getLogger = sallust.Get
	}

	tokenAcquirer, err := buildTokenAcquirer(config.Auth)
	if err != nil {
		return nil, err
	}
	client := &BasicClient{
		client:        config.HTTPClient,
		auth:          tokenAcquirer,
		logger:        config.Logger,
		designdataURL: config.Address + derivativeAPIPath,
		getLogger:     getLogger,
		measures:      measures,
	}

	return client, nil
}

// Translate submits a translation job for the design the URN identifies. The
// output request is fixed: an svf2 viewable with 2d and 3d views. A non empty
// rootFilename marks the design as a compressed package rooted at that file.
func (c *BasicClient) Translate(ctx context.Context, urn, rootFilename string) (model.TranslationAck, error) {
	if len(urn) < 1 {
		return model.TranslationAck{}, ErrURNEmpty
	}

	job := translationJob{
		Input: translationInput{URN: urn},
		Output: translationOutput{
			Formats: []outputFormat{
				{
					Type:  svfFormatType,
					Views: []string{view2D, view3D},
				},
			},
		},
	}
	if len(rootFilename) > 0 {
		job.Input.CompressedURN = true
		job.Input.RootFilename = rootFilename
	}

	data, err := json.Marshal(job)
	if err != nil {
		return model.TranslationAck{}, fmt.Errorf(errWrappedFmt, errJSONMarshal, err.Error())
	}

	resp, err := c.sendRequest(ctx, http.MethodPost, c.designdataURL+"/job", bytes.NewReader(data))
	if err != nil {
		c.countOutcome(TranslateOp, FailureOutcome)
		return model.TranslationAck{}, err
	}

	if resp.Code < http.StatusOK || resp.Code >= http.StatusMultipleChoices {
		c.countOutcome(TranslateOp, FailureOutcome)
		l := c.getLogger(ctx)
		if l == nil {
			l = c.logger
		}
		l.Error("Derivative service rejected a translation job",
			zap.Int("code", resp.Code), zap.String("urn", urn))
		return model.TranslationAck{}, &SubmissionError{Code: resp.Code, Body: resp.Body}
	}

	var ack model.TranslationAck
	err = json.Unmarshal(resp.Body, &ack)
	if err != nil {
		c.countOutcome(TranslateOp, FailureOutcome)
		return model.TranslationAck{}, fmt.Errorf("Translate: %w: %s", errJSONUnmarshal, err.Error())
	}

	c.countOutcome(TranslateOp, SuccessOutcome)
	return ack, nil
}

// Manifest fetches the manifest the derivative service keeps for the job the
// URN identifies. A job the service does not know yet reports (nil, false,
// nil); only transport trouble and unexpected status codes are errors.
func (c *BasicClient) Manifest(ctx context.Context, urn string) (*model.Manifest, bool, error) {
	if len(urn) < 1 {
		return nil, false, ErrURNEmpty
	}

	resp, err := c.sendRequest(ctx, http.MethodGet, fmt.Sprintf("%s/%s/manifest", c.designdataURL, urn), nil)
	if err != nil {
		c.countOutcome(ManifestOp, FailureOutcome)
		return nil, false, err
	}

	if resp.Code == http.StatusNotFound {
		c.countOutcome(ManifestOp, SuccessOutcome)
		return nil, false, nil
	}

	if resp.Code != http.StatusOK {
		c.countOutcome(ManifestOp, FailureOutcome)
		l := c.getLogger(ctx)
		if l == nil {
			l = c.logger
		}
		l.Error("Derivative service responded with non-200 response for a manifest request",
			zap.Int("code", resp.Code), zap.String("urn", urn))
		return nil, false, &FetchError{Code: resp.Code, Body: resp.Body}
	}

	manifest := new(model.Manifest)
	err = json.Unmarshal(resp.Body, manifest)
	if err != nil {
		c.countOutcome(ManifestOp, FailureOutcome)
		return nil, false, fmt.Errorf("Manifest: %w: %s", errJSONUnmarshal, err.Error())
	}

	c.countOutcome(ManifestOp, SuccessOutcome)
	return manifest, true, nil
}

// SignedDownload resolves a derivative resource into a time limited signed
// URL. The session credential comes back on the response cookies and must be
// forwarded unmodified when the bytes are fetched; the URL alone does not
// authorize the download.
func (c *BasicClient) SignedDownload(ctx context.Context, urn, derivativeURN string) (model.SignedDownload, error) {
	if len(urn) < 1 || len(derivativeURN) < 1 {
		return model.SignedDownload{}, ErrURNEmpty
	}

	resp, err := c.sendRequest(ctx, http.MethodGet,
		fmt.Sprintf("%s/%s/manifest/%s/signedcookies", c.designdataURL, urn, url.PathEscape(derivativeURN)), nil)
	if err != nil {
		c.countOutcome(SignedCookiesOp, FailureOutcome)
		return model.SignedDownload{}, err
	}

	if resp.Code != http.StatusOK {
		c.countOutcome(SignedCookiesOp, FailureOutcome)
		l := c.getLogger(ctx)
		if l == nil {
			l = c.logger
		}
		l.Error("Derivative service failed to sign a derivative download",
			zap.Int("code", resp.Code), zap.String("derivative", derivativeURN))
		return model.SignedDownload{}, &ResolveError{URN: derivativeURN, Code: resp.Code, Body: resp.Body}
	}

	var signed signedCookiesResponse
	err = json.Unmarshal(resp.Body, &signed)
	if err != nil {
		c.countOutcome(SignedCookiesOp, FailureOutcome)
		return model.SignedDownload{}, fmt.Errorf("SignedDownload: %w: %s", errJSONUnmarshal, err.Error())
	}

	c.countOutcome(SignedCookiesOp, SuccessOutcome)
	return model.SignedDownload{
		URL:        signed.URL,
		Credential: joinCookies(resp.Cookies),
		Expiration: signed.Expiration,
	}, nil
}

// Download fetches the bytes behind a signed download. The request goes
// straight to the signed URL with the session credential on the Cookie
// header; no bearer auth is attached since the CDN only honors the cookies.
func (c *BasicClient) Download(ctx context.Context, signed model.SignedDownload) ([]byte, error) {
	r, err := http.NewRequestWithContext(ctx, http.MethodGet, signed.URL, nil)
	if err != nil {
		return nil, fmt.Errorf(errWrappedFmt, errNewRequestFailure, err.Error())
	}
	if len(signed.Credential) > 0 {
		r.Header.Set("Cookie", signed.Credential)
	}

	resp, err := c.client.Do(r)
	if err != nil {
		c.countOutcome(DownloadOp, FailureOutcome)
		return nil, fmt.Errorf(errWrappedFmt, errDoRequestFailure, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.countOutcome(DownloadOp, FailureOutcome)
		return nil, fmt.Errorf(errWrappedFmt, errReadingBodyFailure, err.Error())
	}

	if resp.StatusCode != http.StatusOK {
		c.countOutcome(DownloadOp, FailureOutcome)
		l := c.getLogger(ctx)
		if l == nil {
			l = c.logger
		}
		l.Error("Signed derivative download responded with a non-200 code",
			zap.Int("code", resp.StatusCode))
		return nil, &DownloadError{Code: resp.StatusCode, Body: body}
	}

	c.countOutcome(DownloadOp, SuccessOutcome)
	return body, nil
}

func (c *BasicClient) sendRequest(ctx context.Context, method, url string, body io.Reader) (response, error) {
	r, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, errNewRequestFailure, err.Error())
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	err = acquire.AddAuth(r, c.auth)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, ErrAuthAcquirerFailure, err.Error())
	}
	resp, err := c.client.Do(r)
	if err != nil {
		return response{}, fmt.Errorf(errWrappedFmt, errDoRequestFailure, err.Error())
	}
	defer resp.Body.Close()
	var sqResp = response{
		Code:    resp.StatusCode,
		Cookies: resp.Cookies(),
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return sqResp, fmt.Errorf(errWrappedFmt, errReadingBodyFailure, err.Error())
	}
	sqResp.Body = bodyBytes
	return sqResp, nil
}

func (c *BasicClient) countOutcome(operation, outcome string) {
	c.measures.OutboundRequests.With(prometheus.Labels{
		OperationLabel: operation,
		OutcomeLabel:   outcome,
	}).Add(1)
}

// joinCookies folds response cookies into a single Cookie header value ready
// to be sent back on the download request.
func joinCookies(cookies []*http.Cookie) string {
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	return strings.Join(pairs, "; ")
}

func isEmpty(options token.Options) bool {
	return len(options.TokenURL) < 1 || len(options.ClientID) < 1 || len(options.ClientSecret) < 1
}

func buildTokenAcquirer(auth Auth) (acquire.Acquirer, error) {
	if !isEmpty(auth.OAuth) {
		return token.NewClientCredentialsAcquirer(auth.OAuth)
	} else if len(auth.Static) > 0 {
		return acquire.NewFixedAuthAcquirer(auth.Static)
	}
	return &acquire.DefaultAcquirer{}, nil
}

func validateBasicConfig(config *BasicClientConfig) error {
	if config.Address == "" {
		return ErrAddressEmpty
	}

	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}

	if config.Logger == nil {
		config.Logger = sallust.Default()
	}
	return nil
}
