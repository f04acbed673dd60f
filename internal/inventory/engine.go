package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Engine generates movement sequences that keep every stock line
// non-negative. It re-reads the stored balance before each movement because
// storage may adjust it independently, for example through triggers.
type Engine struct {
	ledger Ledger
	src    Source
	cfg    Config
	log    zerolog.Logger
}

func NewEngine(ledger Ledger, src Source, cfg Config, log zerolog.Logger) *Engine {
	if cfg.StepCap < 1 {
		cfg.StepCap = DefaultConfig().StepCap
	}
	return &Engine{ledger: ledger, src: src, cfg: cfg, log: log}
}

// Run records steps movements for lineID. decorate, when set, fills the
// fields the engine does not own (id, transaction, timestamps) before each
// movement is recorded.
func (e *Engine) Run(ctx context.Context, lineID string, steps int, decorate func(*Movement)) ([]Movement, error) {
	start, err := e.read(ctx, lineID)
	if err != nil {
		return nil, err
	}
	estimate := start.Available()

	movements := make([]Movement, 0, steps)
	for i := 0; i < steps; i++ {
		want := In
		if estimate > 0 && e.src.Float64() < e.cfg.OutProbability {
			want = Out
		}
		dir, qty := Resolve(want, estimate, e.cfg.StepCap, e.src)

		current, err := e.read(ctx, lineID)
		if err != nil {
			return movements, err
		}

		applied, prev, next := Apply(current, dir, qty)
		if applied != dir {
			e.log.Debug().
				Str("line", lineID).
				Int("quantity", qty).
				Int("available", current.Available()).
				Msg("outbound movement exceeds stored balance, recording inbound")
		}

		m := Movement{
			LineID:          lineID,
			Type:            applied,
			Quantity:        qty,
			PreviousBalance: prev,
			NewBalance:      next,
		}
		if decorate != nil {
			decorate(&m)
		}
		if err := e.ledger.Record(ctx, m); err != nil {
			return movements, fmt.Errorf("failed to record movement for %s: %w", lineID, err)
		}

		movements = append(movements, m)
		estimate = current.Available() + m.Delta()
	}
	return movements, nil
}

func (e *Engine) read(ctx context.Context, lineID string) (Balance, error) {
	b, err := e.ledger.Balance(ctx, lineID)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return Balance{}, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
		}
		return Balance{}, fmt.Errorf("failed to read balance of %s: %w", lineID, err)
	}
	return b, nil
}
