// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_AUTH_TOKEN": "session_token",
		"APP_VERSION":    "1.2.3",

		"ADAPTER_BASE_URL":        "https://api.photosafe.example",
		"ADAPTER_AUTH_HEADER":     "X-Auth-Token",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / CACHE_
		"STORAGE_DB_DATABASE_URI": "file:photosafe.db?_journal_mode=WAL",
		"STORAGE_CACHE_NAMESPACE": "previews",

		"SYNC_PAGE_SIZE": "250",
		"SYNC_INTERVAL":  "5m",

		"THUMBNAIL_WIDTH":  "256",
		"THUMBNAIL_HEIGHT": "256",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "session_token", cfg.App.AuthToken)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://api.photosafe.example", cfg.Adapter.BaseURL)
	assert.Equal(t, "X-Auth-Token", cfg.Adapter.AuthHeader)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "file:photosafe.db?_journal_mode=WAL", cfg.Storage.DB.DSN)
	assert.Equal(t, "previews", cfg.Storage.Cache.Namespace)

	assert.Equal(t, 250, cfg.Sync.PageSize)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)

	assert.Equal(t, 256, cfg.Thumbnail.Width)
	assert.Equal(t, 256, cfg.Thumbnail.Height)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "https://api.photosafe.example",
		"SYNC_PAGE_SIZE":   "100",
	})

	// Act
	cfg := &ClientConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://api.photosafe.example", cfg.Adapter.BaseURL)
	assert.Equal(t, 100, cfg.Sync.PageSize)

	assert.Empty(t, cfg.App.AuthToken)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Sync.Interval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	err := parseEnv(&ClientConfig{})
	assert.Error(t, err)
}
