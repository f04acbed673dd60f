package seeder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPools(t *testing.T, entity string, ids ...string) *PoolManager {
	t.Helper()
	pm := NewPoolManager(NewGenerationContext(42, time.Time{}))
	for _, id := range ids {
		require.NoError(t, pm.Record(entity, id))
	}
	return pm
}

func TestPoolRecordKeepsOrderAndRejectsDuplicates(t *testing.T) {
	pm := newPools(t, "users", "u1", "u2", "u3")
	assert.Equal(t, []string{"u1", "u2", "u3"}, pm.IDs("users"))
	assert.Equal(t, 3, pm.Len("users"))

	err := pm.Record("users", "u2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))

	require.NoError(t, pm.Record("roles", "u2"), "ids are unique per entity only")
}

func TestPoolChoice(t *testing.T) {
	pm := newPools(t, "users", "u1", "u2")

	id, err := pm.Choice("users")
	require.NoError(t, err)
	assert.Contains(t, []string{"u1", "u2"}, id)

	_, err = pm.Choice("orders")
	var perr *PoolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "orders", perr.Entity)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestPoolChoiceOrAbsent(t *testing.T) {
	pm := newPools(t, "groups", "g1")

	assert.False(t, pm.ChoiceOrAbsent("groups", 1).Valid)
	got := pm.ChoiceOrAbsent("groups", 0)
	assert.True(t, got.Valid)
	assert.Equal(t, "g1", got.String)

	a := NewPoolManager(NewGenerationContext(1, time.Time{}))
	b := NewPoolManager(NewGenerationContext(1, time.Time{}))
	assert.False(t, a.ChoiceOrAbsent("empty", 0).Valid)
	assert.Equal(t, b.g.Float64(), a.g.Float64(), "an empty pool must not consume randomness")
}

func TestPoolSample(t *testing.T) {
	pm := newPools(t, "products", "p1", "p2", "p3", "p4")

	got, err := pm.Sample("products", 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p1", "p2", "p3", "p4"}, got)

	_, err = pm.Sample("products", 5)
	var perr *PoolError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrInsufficientPool)
	assert.Equal(t, 5, perr.Want)
	assert.Equal(t, 4, perr.Have)

	assert.Len(t, pm.SampleUpTo("products", 10), 4)
	assert.Len(t, pm.Share("products", 0.5), 2)
	assert.Empty(t, pm.Share("products", 0))
}

func TestPoolViewRejectsUndeclaredEntities(t *testing.T) {
	pm := newPools(t, "users", "u1")
	view := pm.View("sessions", []string{"users"})

	ref, err := view.Require("users")
	require.NoError(t, err)
	assert.Equal(t, "u1", ref.Pick())

	_, err = view.Require("customers")
	assert.ErrorIs(t, err, ErrUndeclaredDependency)
	_, err = view.Optional("customers")
	assert.ErrorIs(t, err, ErrUndeclaredDependency)
	_, err = view.Choice("customers")
	assert.ErrorIs(t, err, ErrUndeclaredDependency)
}

func TestPoolViewRequireNeedsIDs(t *testing.T) {
	pm := NewPoolManager(NewGenerationContext(42, time.Time{}))
	view := pm.View("orders", []string{"customers"})

	_, err := view.Require("customers")
	assert.ErrorIs(t, err, ErrEmptyPool)

	ref, err := view.Optional("customers")
	require.NoError(t, err)
	assert.False(t, ref.PickOrAbsent(0).Valid)
	assert.Empty(t, ref.PickUpTo(3))
}
