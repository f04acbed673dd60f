package seeder

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// DefaultAnchor is the instant every generated timestamp is relative to
// unless a run overrides it.
var DefaultAnchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// GenerationContext is the single source of randomness for a run. Every value
// that varies between seeds, UUIDs and fake text included, is drawn from it.
type GenerationContext struct {
	seed   int64
	anchor time.Time
	rng    *rand.Rand
	fake   *Faker
}

func NewGenerationContext(seed int64, anchor time.Time) *GenerationContext {
	if anchor.IsZero() {
		anchor = DefaultAnchor
	}
	g := &GenerationContext{
		seed:   seed,
		anchor: anchor.UTC(),
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.fake = newFaker(g)
	return g
}

func (g *GenerationContext) Seed() int64       { return g.seed }
func (g *GenerationContext) Anchor() time.Time { return g.anchor }
func (g *GenerationContext) Fake() *Faker      { return g.fake }

// Float64 returns a uniform value in [0, 1).
func (g *GenerationContext) Float64() float64 {
	return g.rng.Float64()
}

// Intn returns a uniform value in [0, n).
func (g *GenerationContext) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a uniform value in [lo, hi], both inclusive.
func (g *GenerationContext) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Uniform returns a value in [lo, hi).
func (g *GenerationContext) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*g.rng.Float64()
}

// Chance reports true with probability p.
func (g *GenerationContext) Chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *GenerationContext) Bool() bool {
	return g.rng.Intn(2) == 1
}

// UUID returns a version 4 UUID built from the run's random stream.
func (g *GenerationContext) UUID() string {
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

// Past returns an instant up to maxDays days, 23 hours and 59 minutes before the anchor.
func (g *GenerationContext) Past(maxDays int) time.Time {
	days := g.IntRange(0, maxDays)
	hours := g.IntRange(0, 23)
	minutes := g.IntRange(0, 59)
	return g.anchor.Add(-(time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute))
}

// Future returns an instant between one and maxDays days after the anchor.
func (g *GenerationContext) Future(maxDays int) time.Time {
	return g.anchor.AddDate(0, 0, g.IntRange(1, maxDays))
}

// Timestamp formats Past(maxDays) for storage.
func (g *GenerationContext) Timestamp(maxDays int) string {
	return Stamp(g.Past(maxDays))
}

// After returns an instant within the given window after t.
func (g *GenerationContext) After(t time.Time, maxHours int) time.Time {
	return t.Add(time.Duration(g.IntRange(1, maxHours*60)) * time.Minute)
}

// BirthDate returns a date for someone between minAge and maxAge years old at the anchor.
func (g *GenerationContext) BirthDate(minAge, maxAge int) string {
	years := g.IntRange(minAge, maxAge)
	days := g.IntRange(0, 364)
	return g.anchor.AddDate(-years, 0, -days).Format(DateLayout)
}

func Stamp(t time.Time) string { return t.Format(TimestampLayout) }
func Date(t time.Time) string  { return t.Format(DateLayout) }

// Choice picks one element of items, which must not be empty.
func Choice[T any](g *GenerationContext, items []T) T {
	return items[g.rng.Intn(len(items))]
}

// Sample returns min(k, len(items)) distinct elements of items in draw order.
func Sample[T any](g *GenerationContext, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return nil
	}
	shuffled := append([]T(nil), items...)
	for i := 0; i < k; i++ {
		j := i + g.rng.Intn(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled[:k]
}

// Weighted picks one element of items with probability proportional to its weight.
func Weighted[T any](g *GenerationContext, items []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}
