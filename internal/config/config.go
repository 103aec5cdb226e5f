// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package config

import (
	"time"
)

// ClientConfig is the top-level configuration container for the sync
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type ClientConfig struct {
	// App holds application-level settings such as the session token and
	// the client version string.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoint settings for the outbound
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends:
	// the SQLite key-value database and the preview cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds pagination and background refresh settings.
	Sync Sync `envPrefix:"SYNC_"`

	// Thumbnail holds the preview dimensions requested from the server.
	Thumbnail Thumbnail `envPrefix:"THUMBNAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level client settings.
type App struct {
	// AuthToken is the session token presented to the server on every
	// request. Must be kept confidential.
	// Env: APP_AUTH_TOKEN
	AuthToken string `env:"AUTH_TOKEN"`

	// Version is the semantic version string of the running client
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds network settings used by the outbound transport layer.
type Adapter struct {
	// BaseURL is the remote API root, scheme included
	// (e.g. "https://api.photosafe.example").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// AuthHeader is the HTTP header carrying the session token. Empty
	// selects the adapter's default header.
	// Env: ADAPTER_AUTH_HEADER
	AuthHeader string `env:"AUTH_HEADER"`

	// RequestTimeout is the maximum duration allowed for a single
	// outbound request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the client's local persistence.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Cache holds the preview cache settings.
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite Data Source Name
	// (e.g. "file:photosafe.db?_journal_mode=WAL").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache holds the preview cache settings.
type Cache struct {
	// Namespace is the key prefix under which cached preview bytes are
	// stored. Empty selects the store's default namespace.
	// Env: STORAGE_CACHE_NAMESPACE
	Namespace string `env:"NAMESPACE"`
}

// Sync holds pagination and background refresh settings.
type Sync struct {
	// PageSize is the number of diff records requested per page. Zero
	// selects the service default.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Interval defines how often the background sync job runs
	// (e.g. "5m", "30s").
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// Thumbnail holds the preview dimensions requested from the server.
type Thumbnail struct {
	// Width in pixels.
	// Env: THUMBNAIL_WIDTH
	Width int `env:"WIDTH"`

	// Height in pixels.
	// Env: THUMBNAIL_HEIGHT
	Height int `env:"HEIGHT"`
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (first
// non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
