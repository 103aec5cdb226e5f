// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/lizuju/photosafe/internal/adapter"
	"github.com/lizuju/photosafe/internal/config"
	"github.com/lizuju/photosafe/internal/crypto"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/service"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

// App owns the wired client runtime: local store, remote adapter, and the
// service bundle, plus the background sync job. The host supplies the
// decrypted collection set via SetCollections; the library never sees key
// derivation or collection key unwrapping.
type App struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	kv       *store.SQLiteKV
	services *service.ClientServices
	job      service.SyncJob

	mu          sync.RWMutex
	collections []models.Collection
}

// NewApp wires the full client from cfg. The returned App holds an open
// database handle; callers must Close it.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	kv, err := store.NewSQLiteKV(cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	remote := adapter.NewHTTPRemoteAdapter(adapter.HTTPClientConfig{
		BaseURL:    cfg.Adapter.BaseURL,
		AuthHeader: cfg.Adapter.AuthHeader,
		Timeout:    cfg.Adapter.RequestTimeout,
	}, log)

	services := service.NewClientServices(
		remote,
		crypto.NewProvider(),
		kv,
		cfg.Sync.PageSize,
		cfg.Storage.Cache.Namespace,
		log,
	)

	app := &App{
		cfg:      cfg,
		log:      log,
		kv:       kv,
		services: services,
	}
	app.job = service.NewSyncJob(app.syncOnce)

	return app, nil
}

// Services exposes the wired service bundle to the host.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// SetCollections replaces the collection set used by subsequent sync
// passes. Collections carry their decrypted keys; the caller keeps
// ownership of key lifecycle.
func (a *App) SetCollections(collections []models.Collection) {
	a.mu.Lock()
	a.collections = collections
	a.mu.Unlock()
}

// Run performs one immediate sync pass, then keeps the library fresh on
// the configured interval until ctx is cancelled. The initial pass is
// best-effort; a cold start without connectivity still serves the local
// snapshot.
func (a *App) Run(ctx context.Context) error {
	if err := a.syncOnce(ctx); err != nil {
		a.log.Warn().Err(err).Msg("initial sync failed")
	}

	a.job.Start(ctx, a.cfg.Sync.Interval)
	defer a.job.Stop()

	<-ctx.Done()
	return nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	return a.kv.Close()
}

func (a *App) syncOnce(ctx context.Context) error {
	a.mu.RLock()
	collections := a.collections
	a.mu.RUnlock()

	thumb := models.Dimensions{
		Width:  a.cfg.Thumbnail.Width,
		Height: a.cfg.Thumbnail.Height,
	}

	res, err := a.services.Sync.Sync(ctx, a.cfg.App.AuthToken, collections, thumb)
	if err != nil {
		return fmt.Errorf("sync pass: %w", err)
	}

	a.log.Info().
		Bool("updated", res.WasUpdated).
		Int("files", len(res.Files)).
		Int("collections", len(res.Collections)).
		Msg("sync pass finished")

	return nil
}
