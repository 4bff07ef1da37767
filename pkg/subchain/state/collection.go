package state

import (
	"context"
	"sync"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

// Snapshot is a point-in-time view of a collection store.
type Snapshot[T any] struct {
	// Items is the last successfully fetched page. Never nil.
	Items []T

	// Count is the server-reported total across all pages.
	Count int

	// Loading reports whether a refetch is in flight.
	Loading bool

	// Mutating reports whether a create, update, or delete is in flight.
	Mutating bool

	// Err is the error from the most recent refetch, or nil.
	Err error

	// Filters are the list params the store will reuse on the next Load.
	Filters *subchain.ListParams
}

// Collection tracks one listable resource. It remembers the last filters it
// was fetched with, keeps stale items visible when a refetch fails, and
// applies mutation results to the local snapshot without a round trip.
type Collection[T any] struct {
	mu sync.Mutex

	list          subchain.ListFunc[T]
	authenticated func() bool
	id            func(T) int64

	items      []T
	count      int
	loading    bool
	mutating   bool
	err        error
	params     *subchain.ListParams
	generation uint64
}

// NewCollection creates a store over the given list function. The
// authenticated callback gates Load; id extracts a resource's identity for
// replace and remove patches. Either may be nil when the store never needs
// the corresponding behavior.
func NewCollection[T any](list subchain.ListFunc[T], authenticated func() bool, id func(T) int64) *Collection[T] {
	return &Collection[T]{
		list:          list,
		authenticated: authenticated,
		id:            id,
		items:         []T{},
	}
}

// Snapshot returns a consistent copy of the store's current state.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return Snapshot[T]{
		Items:    items,
		Count:    c.count,
		Loading:  c.loading,
		Mutating: c.mutating,
		Err:      c.err,
		Filters:  c.params,
	}
}

// Load fetches the collection with the remembered filters. It is a no-op
// when the session holds no tokens, so unauthenticated construction never
// issues requests.
func (c *Collection[T]) Load(ctx context.Context) error {
	if c.authenticated != nil && !c.authenticated() {
		return nil
	}

	return c.Refetch(ctx, nil)
}

// Refetch fetches the collection. Non-nil params replace the remembered
// filters; nil reuses them. On success the items are replaced wholesale; on
// failure the previous items stay visible and Err is set. A refetch whose
// result arrives after a newer one started is discarded.
func (c *Collection[T]) Refetch(ctx context.Context, params *subchain.ListParams) error {
	return c.refetch(ctx, params, false)
}

func (c *Collection[T]) refetch(ctx context.Context, params *subchain.ListParams, quiet bool) error {
	c.mu.Lock()
	if params != nil {
		c.params = params
	}
	if !quiet {
		c.loading = true
	}
	c.generation++
	generation := c.generation
	fetchParams := c.params
	c.mu.Unlock()

	resp, err := c.list(ctx, fetchParams)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		// Superseded by a newer refetch; the later completion wins.
		return nil
	}

	c.loading = false
	if err != nil {
		c.err = err

		return err
	}

	c.err = nil
	c.items = resp.Results
	c.count = resp.Count

	return nil
}

// Create runs the given create call and prepends the returned entity to the
// snapshot on success.
func (c *Collection[T]) Create(ctx context.Context, create func(context.Context) (*T, error)) (*T, error) {
	c.setMutating(true)
	defer c.setMutating(false)

	created, err := create(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items = append([]T{*created}, c.items...)
	c.count++
	c.mu.Unlock()

	return created, nil
}

// Update runs the given update call and replaces the matching entity in the
// snapshot on success. An entity not currently in the snapshot is left alone.
func (c *Collection[T]) Update(ctx context.Context, id int64, update func(context.Context) (*T, error)) (*T, error) {
	c.setMutating(true)
	defer c.setMutating(false)

	updated, err := update(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	for i := range c.items {
		if c.id != nil && c.id(c.items[i]) == id {
			c.items[i] = *updated
			break
		}
	}
	c.mu.Unlock()

	return updated, nil
}

// Remove runs the given delete call and drops the matching entity from the
// snapshot on success.
func (c *Collection[T]) Remove(ctx context.Context, id int64, remove func(context.Context) error) error {
	c.setMutating(true)
	defer c.setMutating(false)

	if err := remove(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if c.id != nil && c.id(item) == id {
			c.count--
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	c.mu.Unlock()

	return nil
}

// Patch applies fn to every item in the snapshot in place. It issues no
// requests; use it to reflect a bulk server operation locally.
func (c *Collection[T]) Patch(fn func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		fn(&c.items[i])
	}
}

func (c *Collection[T]) setMutating(v bool) {
	c.mu.Lock()
	c.mutating = v
	c.mu.Unlock()
}
