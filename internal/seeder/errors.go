package seeder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyPool            = errors.New("reference pool is empty")
	ErrInsufficientPool     = errors.New("reference pool too small")
	ErrDuplicateID          = errors.New("duplicate id")
	ErrUndeclaredDependency = errors.New("entity is not a declared dependency")
	ErrCyclicDependency     = errors.New("circular dependency detected")
	ErrUnknownDependency    = errors.New("unknown dependency")
)

// PoolError describes a failed reference pool operation.
type PoolError struct {
	Entity string
	ID     string
	Want   int
	Have   int
	Err    error
}

func (e *PoolError) Error() string {
	switch {
	case errors.Is(e.Err, ErrDuplicateID):
		return fmt.Sprintf("%s: %s already recorded for %s", e.Err, e.ID, e.Entity)
	case errors.Is(e.Err, ErrInsufficientPool):
		return fmt.Sprintf("%s: %s has %d ids, %d requested", e.Err, e.Entity, e.Have, e.Want)
	default:
		return fmt.Sprintf("%s: %s", e.Err, e.Entity)
	}
}

func (e *PoolError) Unwrap() error { return e.Err }

// CyclicDependencyError lists the entities forming the cycle, first entity repeated last.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCyclicDependency, strings.Join(e.Cycle, " → "))
}

func (e *CyclicDependencyError) Unwrap() error { return ErrCyclicDependency }

type UnknownDependencyError struct {
	Entity     string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("%s: %s depends on %s, which is not registered", ErrUnknownDependency, e.Entity, e.Dependency)
}

func (e *UnknownDependencyError) Unwrap() error { return ErrUnknownDependency }
