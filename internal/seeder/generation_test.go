package seeder

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationContextIsDeterministic(t *testing.T) {
	draw := func() []interface{} {
		g := NewGenerationContext(42, time.Time{})
		f := g.Fake()
		return []interface{}{
			g.IntRange(1, 100), g.UUID(), g.Timestamp(30), f.Name(), f.Email(),
			f.CPF(), f.UserAgent(), f.IPv4(), g.Amount(1, 100).String(),
		}
	}
	assert.Equal(t, draw(), draw())

	a := NewGenerationContext(1, time.Time{})
	b := NewGenerationContext(2, time.Time{})
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestGenerationContextDefaultsAnchor(t *testing.T) {
	g := NewGenerationContext(42, time.Time{})
	assert.Equal(t, DefaultAnchor, g.Anchor())
	assert.Equal(t, int64(42), g.Seed())
}

func TestIntRangeIsInclusive(t *testing.T) {
	g := NewGenerationContext(7, time.Time{})
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := g.IntRange(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		seen[v] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 5, g.IntRange(5, 5))
	assert.Equal(t, 5, g.IntRange(5, 2))
}

func TestTimestampsStayRelativeToAnchor(t *testing.T) {
	anchor := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerationContext(3, anchor)

	for i := 0; i < 100; i++ {
		past := g.Past(10)
		assert.False(t, past.After(anchor))
		assert.True(t, past.After(anchor.AddDate(0, 0, -11)))

		future := g.Future(7)
		assert.True(t, future.After(anchor))
		assert.False(t, future.After(anchor.AddDate(0, 0, 7)))
	}

	stamp := g.Timestamp(1)
	_, err := time.Parse(TimestampLayout, stamp)
	assert.NoError(t, err)
}

func TestSample(t *testing.T) {
	g := NewGenerationContext(11, time.Time{})
	items := []int{1, 2, 3, 4, 5}

	got := Sample(g, items, 3)
	assert.Len(t, got, 3)
	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}

	assert.Len(t, Sample(g, items, 10), 5)
	assert.Empty(t, Sample(g, items, 0))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items, "input must not be reordered")
}

func TestWeighted(t *testing.T) {
	g := NewGenerationContext(5, time.Time{})
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[Weighted(g, []string{"never", "rare", "common"}, []float64{0, 1, 9})]++
	}
	assert.Zero(t, counts["never"])
	assert.Greater(t, counts["common"], counts["rare"])
}

func TestMoneyRoundsToCents(t *testing.T) {
	assert.Equal(t, "10.13", Money(10.125000001).String())
	assert.Equal(t, "1.5", Rate(decimal.NewFromInt(15), 0.1).String())
	assert.Equal(t, "0.3", Sum(decimal.NewFromFloat(0.1), decimal.NewFromFloat(0.2)).String())

	g := NewGenerationContext(9, time.Time{})
	for i := 0; i < 100; i++ {
		a := g.Amount(10, 500)
		assert.True(t, a.Equal(a.Round(2)))
		assert.True(t, a.GreaterThanOrEqual(decimal.NewFromInt(10)))
		assert.True(t, a.LessThanOrEqual(decimal.NewFromInt(500)))
	}
}

func TestMaybeSkipsEvaluation(t *testing.T) {
	g := NewGenerationContext(1, time.Time{})
	called := false
	assert.Nil(t, g.Maybe(0, func() interface{} { called = true; return 1 }))
	assert.False(t, called)
	assert.Equal(t, 1, g.Maybe(1, func() interface{} { return 1 }))
}

func TestJSONKeepsAccents(t *testing.T) {
	assert.Equal(t, `{"city":"São Paulo"}`, JSON(map[string]string{"city": "São Paulo"}))
	assert.Equal(t, `[]`, JSON([]string{}))
}

func TestFakerDocuments(t *testing.T) {
	f := NewGenerationContext(42, time.Time{}).Fake()

	cpf := f.CPF()
	assert.Regexp(t, `^\d{3}\.\d{3}\.\d{3}-\d{2}$`, cpf)
	assert.Regexp(t, `^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`, f.CNPJ())
	assert.Regexp(t, `^\d{5}-\d{3}$`, f.Postcode())

	assert.NotEqual(t, f.Email(), f.Email())
	assert.Len(t, f.SHA256(), 64)
}

func TestFakerCapitalizesMultibyte(t *testing.T) {
	assert.Equal(t, "Ótimo", capitalize("ótimo"))
	assert.Equal(t, "", capitalize(""))
}

func TestCPFCheckDigits(t *testing.T) {
	f := NewGenerationContext(8, time.Time{}).Fake()
	for i := 0; i < 50; i++ {
		var d []int
		for _, r := range f.CPF() {
			if r >= '0' && r <= '9' {
				d = append(d, int(r-'0'))
			}
		}
		require.Len(t, d, 11)
		assert.Equal(t, checkDigit(d[:9], 10), d[9])
		assert.Equal(t, checkDigit(d[:10], 11), d[10])
	}
}
