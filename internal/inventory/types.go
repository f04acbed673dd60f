package inventory

import (
	"context"
	"database/sql"
	"errors"
)

type Direction string

const (
	In  Direction = "in"
	Out Direction = "out"
)

// ErrLineNotFound is returned when a stock line disappears from storage
// while movements are being generated for it.
var ErrLineNotFound = errors.New("stock line not found")

// Balance is the persisted state of one stock line.
type Balance struct {
	OnHand   int `db:"quantity_on_hand"`
	Reserved int `db:"quantity_reserved"`
}

func (b Balance) Available() int {
	return b.OnHand - b.Reserved
}

// Movement is one accepted change to a stock line.
type Movement struct {
	ID              string
	LineID          string
	TransactionID   sql.NullString
	Type            Direction
	Quantity        int
	PreviousBalance int
	NewBalance      int
	CreatedAt       string
	UpdatedAt       string
}

// Delta is the signed change the movement applies to on-hand stock.
func (m Movement) Delta() int {
	if m.Type == Out {
		return -m.Quantity
	}
	return m.Quantity
}

// Ledger is the storage side of the engine: the authoritative balance and
// the movement log.
type Ledger interface {
	Balance(ctx context.Context, lineID string) (Balance, error)
	Record(ctx context.Context, m Movement) error
}

// Source supplies the engine's randomness.
type Source interface {
	Float64() float64
	IntRange(lo, hi int) int
}

// Config tunes movement generation.
type Config struct {
	// OutProbability is the chance of preferring an outbound movement when
	// stock is available.
	OutProbability float64
	// StepCap bounds the quantity of a single movement.
	StepCap int
}

func DefaultConfig() Config {
	return Config{OutProbability: 0.6, StepCap: 50}
}
