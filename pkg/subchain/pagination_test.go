package subchain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// pagedList serves pre-built pages keyed by page number, simulating a
// paginated endpoint.
func pagedList(pages map[int]*subchain.ListResponse[subchain.Plan], calls *int) subchain.ListFunc[subchain.Plan] {
	return func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
		*calls++

		page := params.Page
		if page == 0 {
			page = 1
		}

		resp, ok := pages[page]
		if !ok {
			return &subchain.ListResponse[subchain.Plan]{Results: []subchain.Plan{}}, nil
		}

		return resp, nil
	}
}

func planPage(next bool, names ...string) *subchain.ListResponse[subchain.Plan] {
	plans := make([]subchain.Plan, len(names))
	for i, name := range names {
		plans[i] = subchain.Plan{Name: name}
	}

	resp := &subchain.ListResponse[subchain.Plan]{Count: len(names), Results: plans}
	if next {
		url := "http://example.com/?page=next"
		resp.Next = &url
	}

	return resp
}

func TestPageIterator(t *testing.T) {
	t.Parallel()

	t.Run("walks every item across pages", func(t *testing.T) {
		t.Parallel()

		var calls int

		pages := map[int]*subchain.ListResponse[subchain.Plan]{
			1: planPage(true, "a", "b"),
			2: planPage(false, "c"),
		}

		it := subchain.NewPageIterator(context.Background(), pagedList(pages, &calls), nil)

		var names []string

		for it.HasNext() {
			plan, err := it.Next()
			if err != nil {
				require.ErrorIs(t, err, subchain.ErrNoMoreItems)

				break
			}

			names = append(names, plan.Name)
		}

		assert.Equal(t, []string{"a", "b", "c"}, names)
		assert.Equal(t, 2, calls)
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()

		var calls int

		it := subchain.NewPageIterator(context.Background(), pagedList(nil, &calls), nil)

		_, err := it.Next()
		require.ErrorIs(t, err, subchain.ErrNoMoreItems)
		assert.False(t, it.HasNext())
	})

	t.Run("next after exhaustion keeps failing", func(t *testing.T) {
		t.Parallel()

		var calls int

		pages := map[int]*subchain.ListResponse[subchain.Plan]{
			1: planPage(false, "only"),
		}

		it := subchain.NewPageIterator(context.Background(), pagedList(pages, &calls), nil)

		_, err := it.Next()
		require.NoError(t, err)

		_, err = it.Next()
		require.ErrorIs(t, err, subchain.ErrNoMoreItems)

		_, err = it.Next()
		require.ErrorIs(t, err, subchain.ErrNoMoreItems)
		assert.Equal(t, 1, calls)
	})
}

func TestFetchAllPages(t *testing.T) {
	t.Parallel()

	var calls int

	pages := map[int]*subchain.ListResponse[subchain.Plan]{
		1: planPage(true, "a", "b"),
		2: planPage(true, "c"),
		3: planPage(false, "d"),
	}

	all, err := subchain.FetchAllPages(context.Background(), pagedList(pages, &calls), nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "d", all[3].Name)
	assert.Equal(t, 3, calls)
}
