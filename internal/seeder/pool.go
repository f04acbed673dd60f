package seeder

import "database/sql"

// PoolManager holds the ids produced by each entity for the rest of the run.
type PoolManager struct {
	g     *GenerationContext
	pools map[string][]string
	seen  map[string]map[string]struct{}
}

func NewPoolManager(g *GenerationContext) *PoolManager {
	return &PoolManager{
		g:     g,
		pools: make(map[string][]string),
		seen:  make(map[string]map[string]struct{}),
	}
}

// Record appends id to the entity's pool. Ids are unique per entity.
func (p *PoolManager) Record(entity, id string) error {
	seen, ok := p.seen[entity]
	if !ok {
		seen = make(map[string]struct{})
		p.seen[entity] = seen
	}
	if _, dup := seen[id]; dup {
		return &PoolError{Entity: entity, ID: id, Err: ErrDuplicateID}
	}
	seen[id] = struct{}{}
	p.pools[entity] = append(p.pools[entity], id)
	return nil
}

func (p *PoolManager) Len(entity string) int {
	return len(p.pools[entity])
}

// IDs returns a copy of the entity's pool in insertion order.
func (p *PoolManager) IDs(entity string) []string {
	return append([]string(nil), p.pools[entity]...)
}

// Choice picks one id uniformly.
func (p *PoolManager) Choice(entity string) (string, error) {
	ids := p.pools[entity]
	if len(ids) == 0 {
		return "", &PoolError{Entity: entity, Err: ErrEmptyPool}
	}
	return Choice(p.g, ids), nil
}

// ChoiceOrAbsent returns NULL with probability absent, otherwise a uniform
// pick. An empty pool is always absent and consumes no randomness.
func (p *PoolManager) ChoiceOrAbsent(entity string, absent float64) sql.NullString {
	ids := p.pools[entity]
	if len(ids) == 0 || p.g.Chance(absent) {
		return sql.NullString{}
	}
	return sql.NullString{String: Choice(p.g, ids), Valid: true}
}

// Sample draws k distinct ids and fails when the pool holds fewer than k.
func (p *PoolManager) Sample(entity string, k int) ([]string, error) {
	ids := p.pools[entity]
	if k > len(ids) {
		return nil, &PoolError{Entity: entity, Want: k, Have: len(ids), Err: ErrInsufficientPool}
	}
	return Sample(p.g, ids, k), nil
}

// SampleUpTo draws min(k, len(pool)) distinct ids.
func (p *PoolManager) SampleUpTo(entity string, k int) []string {
	return Sample(p.g, p.pools[entity], k)
}

// Share draws int(len(pool)*fraction) distinct ids.
func (p *PoolManager) Share(entity string, fraction float64) []string {
	return p.SampleUpTo(entity, int(float64(p.Len(entity))*fraction))
}

// View restricts pool access to the declared dependencies of one entity.
func (p *PoolManager) View(entity string, deps []string) *PoolView {
	allowed := make(map[string]bool, len(deps))
	for _, d := range deps {
		allowed[d] = true
	}
	return &PoolView{pm: p, entity: entity, allowed: allowed}
}

// PoolView is the read side of the pools handed to a generator.
type PoolView struct {
	pm      *PoolManager
	entity  string
	allowed map[string]bool
}

func (v *PoolView) check(entity string) error {
	if !v.allowed[entity] {
		return &PoolError{Entity: entity, Err: ErrUndeclaredDependency}
	}
	return nil
}

// Require returns a handle on a declared, non-empty pool.
func (v *PoolView) Require(entity string) (*Ref, error) {
	if err := v.check(entity); err != nil {
		return nil, err
	}
	if v.pm.Len(entity) == 0 {
		return nil, &PoolError{Entity: entity, Err: ErrEmptyPool}
	}
	return &Ref{pm: v.pm, entity: entity}, nil
}

// Optional returns a handle on a declared pool that may be empty. Only the
// absent-tolerant methods of the handle may be used on an empty pool.
func (v *PoolView) Optional(entity string) (*Ref, error) {
	if err := v.check(entity); err != nil {
		return nil, err
	}
	return &Ref{pm: v.pm, entity: entity}, nil
}

func (v *PoolView) Choice(entity string) (string, error) {
	if err := v.check(entity); err != nil {
		return "", err
	}
	return v.pm.Choice(entity)
}

func (v *PoolView) Sample(entity string, k int) ([]string, error) {
	if err := v.check(entity); err != nil {
		return nil, err
	}
	return v.pm.Sample(entity, k)
}

// Ref is a pool handle checked once up front.
type Ref struct {
	pm     *PoolManager
	entity string
}

func (r *Ref) Entity() string { return r.entity }
func (r *Ref) Len() int       { return r.pm.Len(r.entity) }
func (r *Ref) IDs() []string  { return r.pm.IDs(r.entity) }

// Pick returns a uniform id. The pool must be non-empty, which Require guarantees.
func (r *Ref) Pick() string {
	return Choice(r.pm.g, r.pm.pools[r.entity])
}

func (r *Ref) PickOrAbsent(absent float64) sql.NullString {
	return r.pm.ChoiceOrAbsent(r.entity, absent)
}

func (r *Ref) PickUpTo(k int) []string {
	return r.pm.SampleUpTo(r.entity, k)
}

func (r *Ref) Share(fraction float64) []string {
	return r.pm.Share(r.entity, fraction)
}
