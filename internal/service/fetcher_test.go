package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lizuju/photosafe/internal/logger"
	"github.com/lizuju/photosafe/internal/mock"
	"github.com/lizuju/photosafe/internal/store"
	"github.com/lizuju/photosafe/models"
)

func diffRecord(id, version int64) models.File {
	return models.File{ID: id, CollectionID: 1, UpdationTime: version}
}

func TestDiffFetcher_PaginatesUntilShortPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	remote := mock.NewMockRemoteAdapter(ctrl)
	f := newDiffFetcher(remote, store.NewCursorStore(store.NewMemKV()), 2, logger.Nop())
	collection := models.Collection{ID: 1, UpdationTime: 30}

	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(0), 2).
		Return([]models.File{diffRecord(1, 10), diffRecord(2, 20)}, nil)
	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(20), 2).
		Return([]models.File{diffRecord(3, 30)}, nil)

	var pages [][]models.File
	watermark, err := f.Fetch(ctx, collection, 0, func(_ context.Context, page []models.File, _ int64) error {
		pages = append(pages, page)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(30), watermark)
	require.Len(t, pages, 2)
	assert.Len(t, pages[0], 2)
	assert.Len(t, pages[1], 1)
}

func TestDiffFetcher_EmptyPageTerminatesWithoutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	remote := mock.NewMockRemoteAdapter(ctrl)
	f := newDiffFetcher(remote, store.NewCursorStore(store.NewMemKV()), 2, logger.Nop())

	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(0), 2).
		Return([]models.File{diffRecord(1, 10), diffRecord(2, 20)}, nil)
	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(20), 2).
		Return([]models.File{}, nil)

	calls := 0
	watermark, err := f.Fetch(ctx, models.Collection{ID: 1}, 0, func(context.Context, []models.File, int64) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(20), watermark)
	assert.Equal(t, 1, calls)
}

func TestDiffFetcher_FallsBackToStoredCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	remote := mock.NewMockRemoteAdapter(ctrl)
	cursors := store.NewCursorStore(store.NewMemKV())
	require.NoError(t, cursors.Set(ctx, 1, 15))
	f := newDiffFetcher(remote, cursors, 2, logger.Nop())

	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(15), 2).
		Return([]models.File{}, nil)

	watermark, err := f.Fetch(ctx, models.Collection{ID: 1}, -1, func(context.Context, []models.File, int64) error {
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), watermark)
}

func TestDiffFetcher_TransportErrorWrapsFetchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	remote := mock.NewMockRemoteAdapter(ctrl)
	f := newDiffFetcher(remote, store.NewCursorStore(store.NewMemKV()), 2, logger.Nop())

	netErr := errors.New("connection refused")
	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(0), 2).Return(nil, netErr)

	_, err := f.Fetch(ctx, models.Collection{ID: 1}, 0, func(context.Context, []models.File, int64) error {
		t.Fatal("page callback must not run on fetch failure")
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, netErr)
}

func TestDiffFetcher_CallbackErrorAbortsPagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	remote := mock.NewMockRemoteAdapter(ctrl)
	f := newDiffFetcher(remote, store.NewCursorStore(store.NewMemKV()), 2, logger.Nop())

	remote.EXPECT().GetCollectionDiff(ctx, int64(1), int64(0), 2).
		Return([]models.File{diffRecord(1, 10), diffRecord(2, 20)}, nil)

	abort := errors.New("page rejected")
	_, err := f.Fetch(ctx, models.Collection{ID: 1}, 0, func(context.Context, []models.File, int64) error {
		return abort
	})

	assert.ErrorIs(t, err, abort)
}
