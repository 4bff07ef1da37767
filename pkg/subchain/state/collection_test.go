package state_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subchain-io/subchain-go/pkg/subchain"
	"github.com/subchain-io/subchain-go/pkg/subchain/state"
)

func planID(p subchain.Plan) int64 { return p.ID }

func plansResponse(plans ...subchain.Plan) *subchain.ListResponse[subchain.Plan] {
	return &subchain.ListResponse[subchain.Plan]{Count: len(plans), Results: plans}
}

func TestCollection_Load(t *testing.T) {
	t.Parallel()

	t.Run("unauthenticated load issues no request", func(t *testing.T) {
		t.Parallel()

		var calls int

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			calls++

			return plansResponse(), nil
		}

		store := state.NewCollection(list, func() bool { return false }, planID)

		require.NoError(t, store.Load(context.Background()))
		assert.Zero(t, calls)
		assert.Empty(t, store.Snapshot().Items)
	})

	t.Run("authenticated load fetches", func(t *testing.T) {
		t.Parallel()

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			return plansResponse(subchain.Plan{Name: "Starter"}), nil
		}

		store := state.NewCollection(list, func() bool { return true }, planID)

		require.NoError(t, store.Load(context.Background()))

		snapshot := store.Snapshot()
		assert.Equal(t, 1, snapshot.Count)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "Starter", snapshot.Items[0].Name)
		assert.False(t, snapshot.Loading)
		assert.NoError(t, snapshot.Err)
	})
}

func TestCollection_Refetch(t *testing.T) {
	t.Parallel()

	t.Run("remembers filters across refetches", func(t *testing.T) {
		t.Parallel()

		var seen []*subchain.ListParams

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			seen = append(seen, params)

			return plansResponse(), nil
		}

		store := state.NewCollection(list, nil, planID)
		filtered := subchain.NewListParams().WithFilter("status", "active")

		require.NoError(t, store.Refetch(context.Background(), filtered))
		require.NoError(t, store.Refetch(context.Background(), nil))

		require.Len(t, seen, 2)
		assert.Same(t, filtered, seen[1])
	})

	t.Run("failure keeps stale items and records the error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		failing := false

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			if failing {
				return nil, boom
			}

			return plansResponse(subchain.Plan{Name: "Starter"}), nil
		}

		store := state.NewCollection(list, nil, planID)

		require.NoError(t, store.Refetch(context.Background(), nil))

		failing = true
		require.ErrorIs(t, store.Refetch(context.Background(), nil), boom)

		snapshot := store.Snapshot()
		assert.ErrorIs(t, snapshot.Err, boom)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "Starter", snapshot.Items[0].Name)
		assert.False(t, snapshot.Loading)
	})

	t.Run("superseded refetch result is discarded", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		started := make(chan struct{})
		var once sync.Once

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			slow := false
			once.Do(func() {
				slow = true
			})

			if slow {
				close(started)
				<-release

				return plansResponse(subchain.Plan{Name: "stale"}), nil
			}

			return plansResponse(subchain.Plan{Name: "fresh"}), nil
		}

		store := state.NewCollection(list, nil, planID)

		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()

			// First refetch blocks until released; by then a newer one won.
			assert.NoError(t, store.Refetch(context.Background(), nil))
		}()

		<-started
		require.NoError(t, store.Refetch(context.Background(), nil))

		close(release)
		wg.Wait()

		snapshot := store.Snapshot()
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, "fresh", snapshot.Items[0].Name)
	})
}

func TestCollection_Mutations(t *testing.T) {
	t.Parallel()

	newStore := func(t *testing.T, plans ...subchain.Plan) *state.Collection[subchain.Plan] {
		t.Helper()

		list := func(ctx context.Context, params *subchain.ListParams) (*subchain.ListResponse[subchain.Plan], error) {
			return plansResponse(plans...), nil
		}

		store := state.NewCollection(list, nil, planID)
		require.NoError(t, store.Refetch(context.Background(), nil))

		return store
	}

	t.Run("create prepends", func(t *testing.T) {
		t.Parallel()

		store := newStore(t, subchain.Plan{Resource: subchain.Resource{ID: 1}, Name: "old"})

		created, err := store.Create(context.Background(), func(ctx context.Context) (*subchain.Plan, error) {
			return &subchain.Plan{Resource: subchain.Resource{ID: 2}, Name: "new"}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "new", created.Name)

		snapshot := store.Snapshot()
		assert.Equal(t, 2, snapshot.Count)
		require.Len(t, snapshot.Items, 2)
		assert.Equal(t, "new", snapshot.Items[0].Name)
		assert.False(t, snapshot.Mutating)
	})

	t.Run("failed create leaves the snapshot alone", func(t *testing.T) {
		t.Parallel()

		store := newStore(t, subchain.Plan{Resource: subchain.Resource{ID: 1}})

		_, err := store.Create(context.Background(), func(ctx context.Context) (*subchain.Plan, error) {
			return nil, errors.New("rejected")
		})
		require.Error(t, err)
		assert.Equal(t, 1, store.Snapshot().Count)
	})

	t.Run("update replaces by ID", func(t *testing.T) {
		t.Parallel()

		store := newStore(t,
			subchain.Plan{Resource: subchain.Resource{ID: 1}, Name: "a"},
			subchain.Plan{Resource: subchain.Resource{ID: 2}, Name: "b"},
		)

		_, err := store.Update(context.Background(), 2, func(ctx context.Context) (*subchain.Plan, error) {
			return &subchain.Plan{Resource: subchain.Resource{ID: 2}, Name: "b2"}, nil
		})
		require.NoError(t, err)

		snapshot := store.Snapshot()
		assert.Equal(t, "a", snapshot.Items[0].Name)
		assert.Equal(t, "b2", snapshot.Items[1].Name)
	})

	t.Run("remove drops by ID", func(t *testing.T) {
		t.Parallel()

		store := newStore(t,
			subchain.Plan{Resource: subchain.Resource{ID: 1}},
			subchain.Plan{Resource: subchain.Resource{ID: 2}},
		)

		err := store.Remove(context.Background(), 1, func(ctx context.Context) error { return nil })
		require.NoError(t, err)

		snapshot := store.Snapshot()
		assert.Equal(t, 1, snapshot.Count)
		require.Len(t, snapshot.Items, 1)
		assert.Equal(t, int64(2), snapshot.Items[0].ID)
	})

	t.Run("failed remove keeps the item", func(t *testing.T) {
		t.Parallel()

		store := newStore(t, subchain.Plan{Resource: subchain.Resource{ID: 1}})

		err := store.Remove(context.Background(), 1, func(ctx context.Context) error {
			return errors.New("rejected")
		})
		require.Error(t, err)
		assert.Len(t, store.Snapshot().Items, 1)
	})
}
