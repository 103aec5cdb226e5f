// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Li Zuju

// Package adapter provides the transport layer for talking to the remote
// photosafe library server.
//
// The primary abstraction is [RemoteAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRemoteAdapter]) built on resty. Sentinel errors
// in errors.go are mapped from HTTP status codes so that callers can use
// [errors.Is] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/lizuju/photosafe/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines transport-agnostic communication with the remote
// library server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type RemoteAdapter interface {
	// SetToken stores the opaque auth token attached to all subsequent
	// requests. The account ID is extracted from the token's claims (never
	// verified client-side) for logging and scoping.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if none has been set yet.
	Token() string

	// AccountID returns the account ID parsed from the current token, or
	// zero when no token is set or the token carries no usable subject.
	AccountID() int64

	// GetCollectionDiff fetches one page of at most limit changed-or-deleted
	// file records of collectionID whose version exceeds sinceTime, in
	// ascending version order. A short (or empty) page signals that the
	// backlog is exhausted.
	GetCollectionDiff(ctx context.Context, collectionID, sinceTime int64, limit int) ([]models.File, error)

	// GetThumbnail fetches the encrypted preview bytes of a file.
	GetThumbnail(ctx context.Context, fileID int64) ([]byte, error)

	// GetFile fetches the encrypted full-content bytes of a file.
	GetFile(ctx context.Context, fileID int64) ([]byte, error)
}
