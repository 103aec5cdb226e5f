// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package service

import (
	"context"
	"fmt"

	"github.com/lizuju/photosafe/internal/adapter"
	"github.com/lizuju/photosafe/internal/crypto"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

// contentService is the default [ContentService] implementation. Previews
// go through the binary cache; full content is always fetched remotely.
type contentService struct {
	adapter adapter.RemoteAdapter
	crypto  crypto.Provider
	cache   *store.BlobCache
	logger  *logger.Logger
}

// NewContentService wires the content retrieval pipeline over the given
// collaborators.
func NewContentService(remote adapter.RemoteAdapter, provider crypto.Provider, cache *store.BlobCache, log *logger.Logger) ContentService {
	return &contentService{adapter: remote, crypto: provider, cache: cache, logger: log}
}

// Resolve implements [ContentService]. It does not retry internally; any
// fetch or decrypt failure wraps [ErrRetrievalFailed].
func (s *contentService) Resolve(ctx context.Context, token string, file models.File, kind ContentKind) (*BlobRef, error) {
	if token != "" {
		s.adapter.SetToken(token)
	}

	switch kind {
	case KindPreview:
		return s.resolvePreview(ctx, file)
	case KindFull:
		return s.resolveFull(ctx, file)
	default:
		return nil, fmt.Errorf("file %d: %w: unknown content kind %q", file.ID, ErrRetrievalFailed, kind)
	}
}

func (s *contentService) resolvePreview(ctx context.Context, file models.File) (*BlobRef, error) {
	cached, ok, err := s.cache.Get(ctx, file.ID)
	if err != nil {
		// A broken cache read degrades to a miss.
		s.logger.Warn().Err(err).Int64("file_id", file.ID).Msg("preview cache read failed")
	}
	if ok {
		return newBlobRef(cached), nil
	}

	plain, err := s.fetchAndDecrypt(ctx, file, file.Thumbnail, s.adapter.GetThumbnail)
	if err != nil {
		return nil, err
	}

	// Best-effort: a full cache (quota) must not fail the resolve.
	if err := s.cache.Put(ctx, file.ID, plain); err != nil {
		s.logger.Warn().Err(err).Int64("file_id", file.ID).Msg("preview cache write failed")
	}

	return newBlobRef(plain), nil
}

func (s *contentService) resolveFull(ctx context.Context, file models.File) (*BlobRef, error) {
	plain, err := s.fetchAndDecrypt(ctx, file, file.File, s.adapter.GetFile)
	if err != nil {
		return nil, err
	}
	return newBlobRef(plain), nil
}

func (s *contentService) fetchAndDecrypt(
	ctx context.Context,
	file models.File,
	attrs models.FileAttributes,
	fetch func(context.Context, int64) ([]byte, error),
) ([]byte, error) {
	encrypted, err := fetch(ctx, file.ID)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w: %w", file.ID, ErrRetrievalFailed, err)
	}

	header, err := s.crypto.DecodeHeader(attrs.DecryptionHeader)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w: %w", file.ID, ErrRetrievalFailed, err)
	}

	plain, err := s.crypto.DecryptContent(encrypted, header, file.Key)
	if err != nil {
		return nil, fmt.Errorf("file %d: %w: %w", file.ID, ErrRetrievalFailed, err)
	}

	return plain, nil
}
