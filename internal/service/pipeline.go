// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lizuju/photosafe/internal/crypto"
	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/models"
)

// decryptPipeline decorates fetched records with their decrypted per-file
// key and metadata before they reach the reconciler.
type decryptPipeline struct {
	crypto crypto.Provider
	logger *logger.Logger
}

func newDecryptPipeline(provider crypto.Provider, log *logger.Logger) *decryptPipeline {
	return &decryptPipeline{crypto: provider, logger: log}
}

// Decorate returns a copy of files in which every non-deleted record
// carries its decrypted Key and Meta. Tombstones pass through untouched;
// their encrypted payload is never read.
//
// Records are independent, so decrypt requests for one page are issued
// concurrently and awaited jointly. The page is all-or-nothing: a single
// record failure discards the whole decorated page, including records that
// had already decrypted cleanly.
func (p *decryptPipeline) Decorate(ctx context.Context, files []models.File, collectionKey []byte) ([]models.File, error) {
	out := make([]models.File, len(files))
	g, ctx := errgroup.WithContext(ctx)

	for i, f := range files {
		out[i] = f
		if f.IsDeleted {
			continue
		}

		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			key, err := p.crypto.DecryptKey(f.EncryptedKey, f.KeyDecryptionNonce, collectionKey)
			if err != nil {
				return fmt.Errorf("file %d key: %w", f.ID, err)
			}

			var meta models.Metadata
			if err = p.crypto.DecryptMetadata(f.Metadata, key, &meta); err != nil {
				return fmt.Errorf("file %d metadata: %w", f.ID, err)
			}

			out[i].Key = key
			out[i].Meta = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptFailed, err)
	}
	return out, nil
}
