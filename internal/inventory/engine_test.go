package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLedger applies recorded movements to its balances, like a storage
// trigger would. drift, when set, runs after every Record.
type memoryLedger struct {
	lines    map[string]Balance
	recorded []Movement
	reads    int
	drift    func(l *memoryLedger)
}

func (l *memoryLedger) Balance(ctx context.Context, lineID string) (Balance, error) {
	l.reads++
	b, ok := l.lines[lineID]
	if !ok {
		return Balance{}, ErrLineNotFound
	}
	return b, nil
}

func (l *memoryLedger) Record(ctx context.Context, m Movement) error {
	l.recorded = append(l.recorded, m)
	b := l.lines[m.LineID]
	b.OnHand = m.NewBalance
	l.lines[m.LineID] = b
	if l.drift != nil {
		l.drift(l)
	}
	return nil
}

func TestEngineKeepsBalancesChainedAndNonNegative(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{
		"empty":    {OnHand: 0},
		"reserved": {OnHand: 10, Reserved: 2},
		"large":    {OnHand: 400, Reserved: 50},
	}}
	engine := NewEngine(ledger, newRandSource(42), Config{OutProbability: 0.9, StepCap: 50}, zerolog.Nop())

	for line, start := range map[string]Balance{"empty": {}, "reserved": {OnHand: 10, Reserved: 2}, "large": {OnHand: 400, Reserved: 50}} {
		movements, err := engine.Run(context.Background(), line, 40, nil)
		require.NoError(t, err)
		require.Len(t, movements, 40)

		prev := start.OnHand
		for _, m := range movements {
			assert.Equal(t, prev, m.PreviousBalance)
			assert.Equal(t, m.PreviousBalance+m.Delta(), m.NewBalance)
			assert.GreaterOrEqual(t, m.NewBalance, 0)
			assert.GreaterOrEqual(t, m.Quantity, 1)
			if m.Type == Out {
				assert.GreaterOrEqual(t, m.NewBalance, start.Reserved, "outbound movements never eat reserved stock")
			}
			prev = m.NewBalance
		}
	}
}

func TestEngineFirstMovementOnEmptyLineIsInbound(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {}}}
	engine := NewEngine(ledger, newRandSource(1), Config{OutProbability: 1, StepCap: 5}, zerolog.Nop())

	movements, err := engine.Run(context.Background(), "l1", 1, nil)
	require.NoError(t, err)
	assert.Equal(t, In, movements[0].Type)
	assert.LessOrEqual(t, movements[0].Quantity, 5)
}

func TestEngineOutboundWithinAvailable(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {OnHand: 10, Reserved: 2}}}
	engine := NewEngine(ledger, newRandSource(3), Config{OutProbability: 1, StepCap: 50}, zerolog.Nop())

	movements, err := engine.Run(context.Background(), "l1", 1, nil)
	require.NoError(t, err)
	m := movements[0]
	assert.Equal(t, Out, m.Type)
	assert.GreaterOrEqual(t, m.Quantity, 1)
	assert.LessOrEqual(t, m.Quantity, 8)
	assert.Equal(t, 10-m.Quantity, m.NewBalance)
	assert.GreaterOrEqual(t, m.NewBalance, 2)
}

func TestEngineRereadsBeforeEveryMovement(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {OnHand: 20}}}
	engine := NewEngine(ledger, newRandSource(5), DefaultConfig(), zerolog.Nop())

	_, err := engine.Run(context.Background(), "l1", 4, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, ledger.reads, "one initial read plus one per movement")
}

func TestEngineDowngradesWhenStorageDrifts(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {OnHand: 30}}}
	// Another writer empties the line after every movement.
	ledger.drift = func(l *memoryLedger) { l.lines["l1"] = Balance{} }
	engine := NewEngine(ledger, newRandSource(9), Config{OutProbability: 1, StepCap: 10}, zerolog.Nop())

	movements, err := engine.Run(context.Background(), "l1", 6, nil)
	require.NoError(t, err)
	require.Len(t, movements, 6)

	for _, m := range movements[1:] {
		assert.Equal(t, In, m.Type)
		assert.Equal(t, 0, m.PreviousBalance)
		assert.Equal(t, m.Quantity, m.NewBalance)
	}
}

func TestEngineDecorates(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {OnHand: 5}}}
	engine := NewEngine(ledger, newRandSource(2), DefaultConfig(), zerolog.Nop())

	n := 0
	_, err := engine.Run(context.Background(), "l1", 3, func(m *Movement) {
		n++
		m.ID = "mv-" + string(rune('0'+n))
		m.CreatedAt = "2024-12-01 10:00:00"
	})
	require.NoError(t, err)
	require.Len(t, ledger.recorded, 3)
	assert.Equal(t, "mv-1", ledger.recorded[0].ID)
	assert.Equal(t, "mv-3", ledger.recorded[2].ID)
	assert.Equal(t, "2024-12-01 10:00:00", ledger.recorded[1].CreatedAt)
}

func TestEngineFailsWhenLineIsMissing(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{}}
	engine := NewEngine(ledger, newRandSource(2), DefaultConfig(), zerolog.Nop())

	_, err := engine.Run(context.Background(), "ghost", 2, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLineNotFound))
	assert.Contains(t, err.Error(), "ghost")
	assert.Empty(t, ledger.recorded)
}

func TestEngineFailsWhenLineDisappearsMidRun(t *testing.T) {
	ledger := &memoryLedger{lines: map[string]Balance{"l1": {OnHand: 5}}}
	ledger.drift = func(l *memoryLedger) { delete(l.lines, "l1") }
	engine := NewEngine(ledger, newRandSource(2), DefaultConfig(), zerolog.Nop())

	movements, err := engine.Run(context.Background(), "l1", 3, nil)
	assert.ErrorIs(t, err, ErrLineNotFound)
	assert.Len(t, movements, 1)
}
