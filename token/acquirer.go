// SPDX-FileCopyrightText: 2022 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package token acquires bearer tokens from an OAuth2 style token endpoint
// using the client credentials grant. The acquirer satisfies
// bascule/acquire.Acquirer so it plugs into the same outbound auth plumbing
// as fixed and remote bearer acquirers.
package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cast"
)

var (
	ErrTokenURLEmpty    = errors.New("a token endpoint URL is required")
	ErrCredentialsEmpty = errors.New("a client ID and client secret are required")
)

var (
	errTokenRequestFailure = errors.New("token endpoint request failed")
	errMissingAccessToken  = errors.New("token endpoint response carried no access token")
	errUnknownTokenExpiry  = errors.New("token expiry not present in response payload or token claims")
)

const (
	defaultBuffer  = time.Minute
	defaultTimeout = 10 * time.Second

	defaultTokenType = "Bearer"
)

// Options configures the client credentials exchange with the token
// endpoint.
type Options struct {
	// TokenURL is the full URL of the token endpoint.
	TokenURL string

	// ClientID identifies this application to the token endpoint.
	ClientID string

	// ClientSecret authenticates this application.
	ClientSecret string

	// Scopes are the access scopes requested with each token.
	// (Optional) If empty, no scope parameter is sent.
	Scopes []string

	// Buffer is how long before expiry a cached token is considered stale.
	// (Optional) Defaults to one minute.
	Buffer time.Duration

	// Timeout caps each exchange with the token endpoint.
	// (Optional) Defaults to ten seconds.
	Timeout time.Duration

	// HTTPClient sends the token requests.
	// (Optional) Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// ClientCredentialsAcquirer caches the most recent bearer token and only
// talks to the token endpoint when the cached value is within Buffer of
// expiring. It is safe for concurrent use; refreshes are serialized.
type ClientCredentialsAcquirer struct {
	options Options

	lock            sync.Mutex
	authValue       string
	authValueExpiry time.Time
}

// tokenResponse is the interesting subset of the token endpoint's payload.
// ExpiresIn is left loosely typed since endpoints disagree on whether it is
// a number or a string.
type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   interface{} `json:"expires_in"`
}

// NewClientCredentialsAcquirer validates the options and returns an acquirer
// ready for use. No token is fetched until the first Acquire call.
func NewClientCredentialsAcquirer(options Options) (*ClientCredentialsAcquirer, error) {
	if options.TokenURL == "" {
		return nil, ErrTokenURLEmpty
	}
	if options.ClientID == "" || options.ClientSecret == "" {
		return nil, ErrCredentialsEmpty
	}
	if options.Buffer == 0 {
		options.Buffer = defaultBuffer
	}
	if options.Timeout == 0 {
		options.Timeout = defaultTimeout
	}
	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	return &ClientCredentialsAcquirer{options: options}, nil
}

// Acquire returns an Authorization header value, fetching a fresh token from
// the endpoint when the cached one is missing or about to expire.
func (a *ClientCredentialsAcquirer) Acquire() (string, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.authValue != "" && time.Now().Add(a.options.Buffer).Before(a.authValueExpiry) {
		return a.authValue, nil
	}

	value, expiry, err := a.fetchToken()
	if err != nil {
		return "", err
	}

	a.authValue, a.authValueExpiry = value, expiry
	return a.authValue, nil
}

func (a *ClientCredentialsAcquirer) fetchToken() (string, time.Time, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.options.ClientID)
	form.Set("client_secret", a.options.ClientSecret)
	if len(a.options.Scopes) > 0 {
		form.Set("scope", strings.Join(a.options.Scopes, " "))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.options.Timeout)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, a.options.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", errTokenRequestFailure, err.Error())
	}
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := a.options.HTTPClient.Do(r)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", errTokenRequestFailure, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", errTokenRequestFailure, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("%w: received status %v", errTokenRequestFailure, resp.StatusCode)
	}

	var payload tokenResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", errTokenRequestFailure, err.Error())
	}
	if payload.AccessToken == "" {
		return "", time.Time{}, errMissingAccessToken
	}

	expiry, err := tokenExpiry(payload)
	if err != nil {
		return "", time.Time{}, err
	}

	tokenType := payload.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}
	return tokenType + " " + payload.AccessToken, expiry, nil
}

// tokenExpiry works out when the token lapses. The expires_in field is
// honored first, coerced from whatever loose type the endpoint used. When
// the field is absent the bearer token's own exp claim is the fallback.
func tokenExpiry(payload tokenResponse) (time.Time, error) {
	if payload.ExpiresIn != nil {
		seconds, err := cast.ToInt64E(payload.ExpiresIn)
		if err == nil && seconds > 0 {
			return time.Now().Add(time.Duration(seconds) * time.Second), nil
		}
	}

	if expiry, ok := claimedExpiry(payload.AccessToken); ok {
		return expiry, nil
	}
	return time.Time{}, errUnknownTokenExpiry
}

// claimedExpiry pulls the exp claim out of a JWT access token without
// verifying its signature. Verification is the derivative service's job;
// the claim is only used for cache freshness.
func claimedExpiry(accessToken string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
