// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpRemoteAdapter {
	t.Helper()
	a := NewHTTPRemoteAdapter(HTTPClientConfig{BaseURL: serverURL}, logger.Nop())
	return a.(*httpRemoteAdapter)
}

func signedTestToken(t *testing.T, subject string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": subject}).
		SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestSetToken_ParsesAccountID(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")

	a.SetToken(signedTestToken(t, "42"))

	assert.Equal(t, int64(42), a.AccountID())
	assert.NotEmpty(t, a.Token())
}

func TestSetToken_LogsAccountID(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	a := NewHTTPRemoteAdapter(HTTPClientConfig{BaseURL: "http://localhost:0"}, log)

	a.SetToken(signedTestToken(t, "42"))

	assert.Contains(t, buf.String(), `"account_id":42`)
}

func TestSetToken_OpaqueTokenStillUsable(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:0")

	a.SetToken("not-a-jwt")

	assert.Equal(t, "not-a-jwt", a.Token())
	assert.Zero(t, a.AccountID())
}

func TestGetCollectionDiff_Success(t *testing.T) {
	want := []models.File{
		{ID: 1, CollectionID: 9, UpdationTime: 10},
		{ID: 2, CollectionID: 9, UpdationTime: 11, IsDeleted: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/collections/diff", r.URL.Path)
		assert.Equal(t, "9", r.URL.Query().Get("collectionID"))
		assert.Equal(t, "5", r.URL.Query().Get("sinceTime"))
		assert.Equal(t, "500", r.URL.Query().Get("limit"))
		assert.Equal(t, "tok", r.Header.Get(DefaultAuthHeader))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DiffResponse{Diff: want})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	got, err := a.GetCollectionDiff(context.Background(), 9, 5, 500)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetCollectionDiff_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCollectionDiff(context.Background(), 1, 0, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetThumbnail_ReturnsRawBytes(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/files/preview/77", r.URL.Path)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetThumbnail(context.Background(), 77)

	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestGetFile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetFile(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMapHTTPError_GenericStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetFile(context.Background(), 3)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 500")
	assert.Contains(t, err.Error(), "boom")
}
