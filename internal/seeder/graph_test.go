package seeder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	g := NewDependencyGraph()
	g.Add("orders", "customers", "shops")
	g.Add("customers", "customer_groups")
	g.Add("customer_groups", "shops")
	g.Add("shops")
	g.Add("users")
	g.Add("payments", "orders")
	g.Add("categories", "categories", "shops")

	levels, err := g.Levels()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"shops", "users"},
		{"categories", "customer_groups"},
		{"customers"},
		{"orders"},
		{"payments"},
	}, levels)
}

func TestBuildInsertionOrderPutsDependenciesFirst(t *testing.T) {
	g := NewDependencyGraph()
	g.Add("c", "b")
	g.Add("b", "a")
	g.Add("a")

	order, err := g.BuildInsertionOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestLevelsAreStableAcrossRegistrationOrder(t *testing.T) {
	build := func(names ...string) [][]string {
		g := NewDependencyGraph()
		for _, n := range names {
			if n == "z" {
				g.Add(n, "a")
			} else {
				g.Add(n)
			}
		}
		levels, err := g.Levels()
		require.NoError(t, err)
		return levels
	}
	assert.Equal(t, build("a", "m", "z", "b"), build("z", "b", "m", "a"))
}

func TestCyclicDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.Add("a", "b")
	g.Add("b", "c")
	g.Add("c", "a")

	_, err := g.Levels()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicDependency))

	var cerr *CyclicDependencyError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cerr.Cycle)
}

func TestUnknownDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.Add("orders", "customers")

	_, err := g.Levels()
	var uerr *UnknownDependencyError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "orders", uerr.Entity)
	assert.Equal(t, "customers", uerr.Dependency)
}
