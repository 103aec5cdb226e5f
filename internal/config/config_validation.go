// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [ClientConfig] satisfies the
// invariants the client needs at startup. Zero values with service-level
// defaults (page size, sync interval, cache namespace, auth header) are
// allowed through.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidAdapterConfigs)
	}
	if u, err := url.Parse(cfg.Adapter.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidAdapterConfigs, cfg.Adapter.BaseURL)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Sync.PageSize < 0 {
		return fmt.Errorf("%w: page size must not be negative", ErrInvalidSyncConfigs)
	}
	if cfg.Sync.Interval < 0 {
		return fmt.Errorf("%w: sync interval must not be negative", ErrInvalidSyncConfigs)
	}

	if cfg.Thumbnail.Width < 0 || cfg.Thumbnail.Height < 0 {
		return fmt.Errorf("%w: thumbnail dimensions must not be negative", ErrInvalidSyncConfigs)
	}

	return nil
}
