package inventory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Lumos-Labs-HQ/uruseed/internal/database"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerSchema = `
CREATE TABLE inventory_levels (
    id TEXT PRIMARY KEY,
    quantity_on_hand INTEGER NOT NULL CHECK (quantity_on_hand >= 0),
    quantity_reserved INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE inventory_movements (
    id TEXT PRIMARY KEY,
    transaction_id TEXT,
    inventory_level_id TEXT NOT NULL REFERENCES inventory_levels(id),
    type TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    previous_balance INTEGER NOT NULL,
    new_balance INTEGER NOT NULL,
    _status TEXT,
    created_at TEXT,
    updated_at TEXT
);
INSERT INTO inventory_levels (id, quantity_on_hand, quantity_reserved) VALUES ('l1', 10, 2);
`

const balanceTrigger = `
CREATE TRIGGER trg_balance AFTER INSERT ON inventory_movements
BEGIN
    UPDATE inventory_levels SET quantity_on_hand = NEW.new_balance WHERE id = NEW.inventory_level_id;
END;
`

func openLedgerDB(t *testing.T, withTrigger bool) *database.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(ctx, "sqlite", "", filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Exec(ctx, ledgerSchema))
	if withTrigger {
		require.NoError(t, db.Exec(ctx, balanceTrigger))
	}
	return db
}

func newLedger(s *database.Session, mode BalanceUpdates) *SQLLedger {
	return NewSQLLedger(s, func(ctx context.Context, row database.Row) error {
		return s.Insert(ctx, "inventory_movements", row)
	}, mode)
}

func TestSQLLedgerBalance(t *testing.T) {
	ctx := context.Background()
	s := openLedgerDB(t, false).Session()
	ledger := newLedger(s, UpdatesAuto)

	b, err := ledger.Balance(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, Balance{OnHand: 10, Reserved: 2}, b)
	assert.Equal(t, 8, b.Available())

	_, err = ledger.Balance(ctx, "missing")
	assert.ErrorIs(t, err, ErrLineNotFound)
}

func TestSQLLedgerBalanceUpdates(t *testing.T) {
	tests := []struct {
		name       string
		trigger    bool
		mode       BalanceUpdates
		wantOnHand int
	}{
		{"auto without trigger", false, UpdatesAuto, 15},
		{"auto with trigger", true, UpdatesAuto, 15},
		{"always with trigger", true, UpdatesAlways, 15},
		{"always without trigger", false, UpdatesAlways, 15},
		{"never without trigger", false, UpdatesNever, 10},
		{"never with trigger", true, UpdatesNever, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			s := openLedgerDB(t, tt.trigger).Session()
			ledger := newLedger(s, tt.mode)

			require.NoError(t, ledger.Record(ctx, Movement{
				ID: "m1", LineID: "l1", Type: In, Quantity: 5, PreviousBalance: 10, NewBalance: 15,
				CreatedAt: "2024-12-01 10:00:00", UpdatedAt: "2024-12-01 10:00:00",
			}))

			b, err := ledger.Balance(ctx, "l1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOnHand, b.OnHand)

			n, err := s.Count(ctx, "inventory_movements")
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestEngineOverSQLLedger(t *testing.T) {
	for _, trigger := range []bool{false, true} {
		ctx := context.Background()
		db := openLedgerDB(t, trigger)

		var movements []Movement
		err := db.WithTx(ctx, func(s *database.Session) error {
			engine := NewEngine(newLedger(s, UpdatesAuto), newRandSource(42), Config{OutProbability: 0.7, StepCap: 6}, zerolog.Nop())
			id := 0
			var err error
			movements, err = engine.Run(ctx, "l1", 30, func(m *Movement) {
				id++
				m.ID = string(rune('a'+id/26)) + string(rune('a'+id%26))
			})
			return err
		})
		require.NoError(t, err)
		require.Len(t, movements, 30)

		prev := 10
		for _, m := range movements {
			assert.Equal(t, prev, m.PreviousBalance)
			assert.Equal(t, prev+m.Delta(), m.NewBalance)
			assert.GreaterOrEqual(t, m.NewBalance, 0)
			prev = m.NewBalance
		}

		var onHand int
		s := db.Session()
		require.NoError(t, s.Get(ctx, &onHand, s.Builder().Select("quantity_on_hand").From("inventory_levels")))
		assert.Equal(t, prev, onHand)
	}
}
