// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/models"
)

// DefaultAuthHeader is the request header carrying the opaque auth token.
const DefaultAuthHeader = "X-Auth-Token"

// HTTPClientConfig configures the HTTP implementation of [RemoteAdapter].
type HTTPClientConfig struct {
	BaseURL    string
	AuthHeader string
	Timeout    time.Duration
}

type httpRemoteAdapter struct {
	client     *resty.Client
	authHeader string
	logger     *logger.Logger

	mu        sync.RWMutex
	token     string
	accountID int64
}

// NewHTTPRemoteAdapter constructs a [RemoteAdapter] backed by resty.
// Zero-value config fields fall back to sensible defaults.
func NewHTTPRemoteAdapter(cfg HTTPClientConfig, log *logger.Logger) RemoteAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.AuthHeader == "" {
		cfg.AuthHeader = DefaultAuthHeader
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpRemoteAdapter{client: cli, authHeader: cfg.AuthHeader, logger: log}
}

func (h *httpRemoteAdapter) SetToken(token string) {
	token = strings.TrimSpace(token)
	accountID, err := parseAccountIDFromToken(token)
	if err != nil {
		// The token stays usable as an opaque credential even when its
		// claims cannot be read.
		h.logger.Debug().Err(err).Msg("token carries no readable account id")
	}

	h.mu.Lock()
	h.token = token
	h.accountID = accountID
	h.mu.Unlock()

	if accountID != 0 {
		h.logger.Debug().Int64("account_id", accountID).Msg("session token set")
	}
}

func (h *httpRemoteAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpRemoteAdapter) AccountID() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.accountID
}

func (h *httpRemoteAdapter) GetCollectionDiff(ctx context.Context, collectionID, sinceTime int64, limit int) ([]models.File, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"collectionID": strconv.FormatInt(collectionID, 10),
			"sinceTime":    strconv.FormatInt(sinceTime, 10),
			"limit":        strconv.Itoa(limit),
		}).
		Get("/collections/diff")
	if err != nil {
		return nil, fmt.Errorf("collection diff request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var dr models.DiffResponse
	if err = json.Unmarshal(resp.Body(), &dr); err != nil {
		return nil, fmt.Errorf("decode collection diff response: %w", err)
	}

	return dr.Diff, nil
}

func (h *httpRemoteAdapter) GetThumbnail(ctx context.Context, fileID int64) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/files/preview/%d", fileID))
	if err != nil {
		return nil, fmt.Errorf("preview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRemoteAdapter) GetFile(ctx context.Context, fileID int64) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/files/download/%d", fileID))
	if err != nil {
		return nil, fmt.Errorf("file download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRemoteAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(h.authHeader, token)
	}
	return req
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}

// parseAccountIDFromToken reads the subject claim out of token without
// verifying the signature; the server is the sole authority on validity.
func parseAccountIDFromToken(tokenString string) (int64, error) {
	if tokenString == "" {
		return 0, nil
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	return strconv.ParseInt(sub, 10, 64)
}
