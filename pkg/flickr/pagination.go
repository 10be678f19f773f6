package flickr

import (
	"context"
	"fmt"
)

// PageFetcher fetches one page of a paginated method. Pages are 1-based.
type PageFetcher[T any] func(ctx context.Context, page int) (*ListResponse[T], error)

// PaginationIterator walks the items of a paginated method one at a time,
// fetching pages lazily.
type PaginationIterator[T any] struct {
	ctx      context.Context
	fetch    PageFetcher[T]
	current  *ListResponse[T]
	index    int
	nextPage int
	done     bool
	err      error
}

// NewPaginationIterator creates an iterator starting at page 1.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFetcher[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:      ctx,
		fetch:    fetch,
		nextPage: 1,
	}
}

// HasNext reports whether another item may be available. It fetches the next
// page when the current one is exhausted; a fetch error makes it return true
// so that Next can surface the error.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	for {
		if it.current != nil && it.index < len(it.current.Items) {
			return true
		}

		if it.done {
			return false
		}

		err := it.fetchNext()
		if err != nil {
			it.err = err

			return true
		}
	}
}

// Next returns the next item, or ErrNoMoreItems after the last one.
func (it *PaginationIterator[T]) Next() (*T, error) {
	if !it.HasNext() {
		return nil, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.done = true

		return nil, err
	}

	item := it.current.Items[it.index]
	it.index++

	return &item, nil
}

// Pagination returns the metadata of the most recently fetched page.
func (it *PaginationIterator[T]) Pagination() *Pagination {
	if it.current == nil {
		return nil
	}

	pagination := it.current.Pagination

	return &pagination
}

func (it *PaginationIterator[T]) fetchNext() error {
	page, err := it.fetch(it.ctx, it.nextPage)
	if err != nil {
		return fmt.Errorf("fetching page %d: %w", it.nextPage, err)
	}

	it.current = page
	it.index = 0
	it.nextPage++

	if !page.HasMore() || len(page.Items) == 0 {
		it.done = true
	}

	return nil
}

// CollectAll fetches pages until the last one, or maxPages pages when
// maxPages is positive, and returns all items in order.
func CollectAll[T any](ctx context.Context, fetch PageFetcher[T], maxPages int) ([]T, error) {
	items := make([]T, 0)

	for page := 1; maxPages <= 0 || page <= maxPages; page++ {
		list, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		items = append(items, list.Items...)

		if !list.HasMore() || len(list.Items) == 0 {
			break
		}
	}

	return items, nil
}
