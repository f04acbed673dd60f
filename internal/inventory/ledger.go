package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/Masterminds/squirrel"
)

// BalanceUpdates selects who keeps inventory_levels.quantity_on_hand in step
// with inserted movements.
type BalanceUpdates string

const (
	// UpdatesAuto re-reads after each insert and writes the new balance only
	// when storage did not move it.
	UpdatesAuto BalanceUpdates = "auto"
	// UpdatesAlways writes the new balance after every insert.
	UpdatesAlways BalanceUpdates = "always"
	// UpdatesNever leaves balance maintenance to storage triggers.
	UpdatesNever BalanceUpdates = "never"
)

// Store is the subset of a database session the ledger needs.
type Store interface {
	Builder() squirrel.StatementBuilderType
	Get(ctx context.Context, dest interface{}, q squirrel.Sqlizer) error
	Exec(ctx context.Context, q squirrel.Sqlizer) error
}

// SQLLedger reads balances from inventory_levels and appends movements to
// inventory_movements.
type SQLLedger struct {
	store  Store
	insert func(ctx context.Context, row database.Row) error
	mode   BalanceUpdates
}

// NewSQLLedger builds a ledger over store. insert writes one
// inventory_movements row.
func NewSQLLedger(store Store, insert func(ctx context.Context, row database.Row) error, mode BalanceUpdates) *SQLLedger {
	if mode == "" {
		mode = UpdatesAuto
	}
	return &SQLLedger{store: store, insert: insert, mode: mode}
}

func (l *SQLLedger) Balance(ctx context.Context, lineID string) (Balance, error) {
	var b Balance
	q := l.store.Builder().
		Select("quantity_on_hand", "quantity_reserved").
		From("inventory_levels").
		Where(squirrel.Eq{"id": lineID})
	if err := l.store.Get(ctx, &b, q); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Balance{}, ErrLineNotFound
		}
		return Balance{}, err
	}
	return b, nil
}

func (l *SQLLedger) Record(ctx context.Context, m Movement) error {
	row := database.Row{
		"id":                 m.ID,
		"transaction_id":     m.TransactionID,
		"inventory_level_id": m.LineID,
		"type":               string(m.Type),
		"quantity":           m.Quantity,
		"previous_balance":   m.PreviousBalance,
		"new_balance":        m.NewBalance,
		"_status":            "created",
		"created_at":         m.CreatedAt,
		"updated_at":         m.UpdatedAt,
	}
	if err := l.insert(ctx, row); err != nil {
		return err
	}

	switch l.mode {
	case UpdatesNever:
		return nil
	case UpdatesAuto:
		after, err := l.Balance(ctx, m.LineID)
		if err != nil {
			return err
		}
		if after.OnHand != m.PreviousBalance {
			return nil
		}
	}

	update := l.store.Builder().
		Update("inventory_levels").
		Set("quantity_on_hand", m.NewBalance).
		Where(squirrel.Eq{"id": m.LineID})
	if err := l.store.Exec(ctx, update); err != nil {
		return fmt.Errorf("failed to update balance of %s: %w", m.LineID, err)
	}
	return nil
}
