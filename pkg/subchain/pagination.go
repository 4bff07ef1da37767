package subchain

import (
	"context"
	"errors"
)

// ErrNoMoreItems is returned by PageIterator.Next when iteration is done.
var ErrNoMoreItems = errors.New("no more items")

// ListFunc fetches one page of a resource collection.
type ListFunc[T any] func(ctx context.Context, params *ListParams) (*ListResponse[T], error)

// PageIterator walks a paginated collection item by item, fetching pages
// lazily as they are needed.
type PageIterator[T any] struct {
	ctx      context.Context
	list     ListFunc[T]
	params   *ListParams
	current  *ListResponse[T]
	index    int
	page     int
	finished bool
}

// NewPageIterator creates an iterator over the collection served by list.
func NewPageIterator[T any](ctx context.Context, list ListFunc[T], params *ListParams) *PageIterator[T] {
	if params == nil {
		params = NewListParams()
	}

	page := params.Page
	if page == 0 {
		page = 1
	}

	return &PageIterator[T]{
		ctx:    ctx,
		list:   list,
		params: params,
		page:   page,
	}
}

// HasNext reports whether another item is available. Before the first fetch
// it optimistically returns true; the truth is known after the first page
// loads.
func (it *PageIterator[T]) HasNext() bool {
	if it.finished {
		return false
	}

	if it.current == nil {
		return true
	}

	if it.index < len(it.current.Results) {
		return true
	}

	return it.current.Next != nil
}

// Next returns the next item, fetching the next page when the current one is
// exhausted. Returns ErrNoMoreItems once the collection ends.
func (it *PageIterator[T]) Next() (*T, error) {
	if it.finished {
		return nil, ErrNoMoreItems
	}

	if it.current == nil || it.index >= len(it.current.Results) {
		if it.current != nil {
			if it.current.Next == nil {
				it.finished = true

				return nil, ErrNoMoreItems
			}

			it.page++
		}

		it.params.Page = it.page

		page, err := it.list(it.ctx, it.params)
		if err != nil {
			return nil, err
		}

		if len(page.Results) == 0 {
			it.finished = true

			return nil, ErrNoMoreItems
		}

		it.current = page
		it.index = 0
	}

	item := &it.current.Results[it.index]
	it.index++

	return item, nil
}

// FetchAllPages collects every item from every page of a collection.
func FetchAllPages[T any](ctx context.Context, list ListFunc[T], params *ListParams) ([]T, error) {
	if params == nil {
		params = NewListParams()
	}

	var all []T

	page := params.Page
	if page == 0 {
		page = 1
	}

	for {
		params.Page = page

		resp, err := list(ctx, params)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Results...)

		if resp.Next == nil {
			return all, nil
		}

		page++
	}
}
