package subchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/subchain-io/subchain-go/pkg/subchain"
)

func TestListParams_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("empty params", func(t *testing.T) {
		t.Parallel()

		values := subchain.NewListParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("nil receiver is safe", func(t *testing.T) {
		t.Parallel()

		var params *subchain.ListParams

		values := params.ToValues()
		assert.NotNil(t, values)
		assert.Empty(t, values)
	})

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		params := subchain.NewListParams().
			WithPage(2).
			WithPageSize(50).
			WithSearch("starter").
			WithOrdering("-created_at").
			WithFilter("status", "active")

		values := params.ToValues()
		assert.Equal(t, "2", values.Get("page"))
		assert.Equal(t, "50", values.Get("page_size"))
		assert.Equal(t, "starter", values.Get("search"))
		assert.Equal(t, "-created_at", values.Get("ordering"))
		assert.Equal(t, "active", values.Get("status"))
	})

	t.Run("zero values are omitted", func(t *testing.T) {
		t.Parallel()

		params := subchain.NewListParams().WithFilter("plan", "3")

		values := params.ToValues()
		assert.Equal(t, "plan=3", values.Encode())
	})
}
