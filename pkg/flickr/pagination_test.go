package flickr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/flickr/pkg/flickr"
)

var errTestPageFailed = errors.New("page failed")

// MockPhotoPages serves photo list pages for testing.
type MockPhotoPages struct {
	mock.Mock
}

func (m *MockPhotoPages) Fetch(ctx context.Context, page int) (*flickr.PhotoList, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*flickr.PhotoList), args.Error(1)
}

func photoPage(page, pages int, ids ...string) *flickr.PhotoList {
	items := make([]flickr.Photo, 0, len(ids))
	for _, id := range ids {
		items = append(items, flickr.Photo{ID: id})
	}

	return &flickr.PhotoList{
		Pagination: flickr.Pagination{Page: page, Pages: pages, PerPage: 2, Total: 3},
		Items:      items,
	}
}

func photoIDs(photos []flickr.Photo) []string {
	ids := make([]string, 0, len(photos))
	for _, photo := range photos {
		ids = append(ids, photo.ID)
	}

	return ids
}

func TestPaginationIterator(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	pages := &MockPhotoPages{}
	pages.On("Fetch", ctx, 1).Return(photoPage(1, 2, "1", "2"), nil).Once()
	pages.On("Fetch", ctx, 2).Return(photoPage(2, 2, "3"), nil).Once()

	iterator := flickr.NewPaginationIterator[flickr.Photo](ctx, pages.Fetch)
	assert.Nil(t, iterator.Pagination())

	var ids []string

	for iterator.HasNext() {
		photo, err := iterator.Next()
		require.NoError(t, err)

		ids = append(ids, photo.ID)
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids)
	assert.Equal(t, 2, iterator.Pagination().Page)

	_, err := iterator.Next()
	require.ErrorIs(t, err, flickr.ErrNoMoreItems)

	pages.AssertExpectations(t)
}

func TestPaginationIterator_Error(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	pages := &MockPhotoPages{}
	pages.On("Fetch", ctx, 1).Return(photoPage(1, 2, "1"), nil).Once()
	pages.On("Fetch", ctx, 2).Return(nil, errTestPageFailed).Once()

	iterator := flickr.NewPaginationIterator[flickr.Photo](ctx, pages.Fetch)

	photo, err := iterator.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", photo.ID)

	assert.True(t, iterator.HasNext())

	_, err = iterator.Next()
	require.ErrorIs(t, err, errTestPageFailed)
	assert.Contains(t, err.Error(), "fetching page 2")

	assert.False(t, iterator.HasNext())

	pages.AssertExpectations(t)
}

func TestCollectAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("all pages", func(t *testing.T) {
		t.Parallel()

		pages := &MockPhotoPages{}
		pages.On("Fetch", ctx, 1).Return(photoPage(1, 2, "1", "2"), nil).Once()
		pages.On("Fetch", ctx, 2).Return(photoPage(2, 2, "3"), nil).Once()

		photos, err := flickr.CollectAll[flickr.Photo](ctx, pages.Fetch, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, photoIDs(photos))
		pages.AssertExpectations(t)
	})

	t.Run("max pages", func(t *testing.T) {
		t.Parallel()

		pages := &MockPhotoPages{}
		pages.On("Fetch", ctx, 1).Return(photoPage(1, 5, "1", "2"), nil).Once()

		photos, err := flickr.CollectAll[flickr.Photo](ctx, pages.Fetch, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, photoIDs(photos))
		pages.AssertExpectations(t)
	})

	t.Run("empty page stops", func(t *testing.T) {
		t.Parallel()

		pages := &MockPhotoPages{}
		pages.On("Fetch", ctx, 1).Return(photoPage(1, 9), nil).Once()

		photos, err := flickr.CollectAll[flickr.Photo](ctx, pages.Fetch, 0)
		require.NoError(t, err)
		assert.NotNil(t, photos)
		assert.Empty(t, photos)
		pages.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		pages := &MockPhotoPages{}
		pages.On("Fetch", ctx, 1).Return(nil, errTestPageFailed).Once()

		photos, err := flickr.CollectAll[flickr.Photo](ctx, pages.Fetch, 0)
		require.ErrorIs(t, err, errTestPageFailed)
		assert.Nil(t, photos)
	})
}
