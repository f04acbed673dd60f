package seeder

import "sort"

// DependencyGraph orders entities so that every entity comes after the
// entities it references.
type DependencyGraph struct {
	deps map[string][]string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) Add(name string, deps ...string) {
	g.deps[name] = deps
}

func (g *DependencyGraph) names() []string {
	names := make([]string, 0, len(g.deps))
	for name := range g.deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildInsertionOrder returns a dependency-first order. Self references are ignored.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var stack []string
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			for i, n := range stack {
				if n == name {
					cycle := append(append([]string(nil), stack[i:]...), name)
					return &CyclicDependencyError{Cycle: cycle}
				}
			}
			return &CyclicDependencyError{Cycle: []string{name, name}}
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		stack = append(stack, name)
		deps := append([]string(nil), g.deps[name]...)
		sort.Strings(deps)
		for _, dep := range deps {
			if dep == name {
				continue
			}
			if _, ok := g.deps[dep]; !ok {
				return &UnknownDependencyError{Entity: name, Dependency: dep}
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		stack = stack[:len(stack)-1]
		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names() {
		if !visited[name] {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}

// Levels groups entities into stages. An entity's stage is one past the
// deepest stage of its dependencies; names inside a stage are sorted.
func (g *DependencyGraph) Levels() ([][]string, error) {
	order, err := g.BuildInsertionOrder()
	if err != nil {
		return nil, err
	}

	level := make(map[string]int, len(order))
	depth := 0
	for _, name := range order {
		l := 0
		for _, dep := range g.deps[name] {
			if dep != name && level[dep]+1 > l {
				l = level[dep] + 1
			}
		}
		level[name] = l
		if l+1 > depth {
			depth = l + 1
		}
	}

	levels := make([][]string, depth)
	for _, name := range g.names() {
		levels[level[name]] = append(levels[level[name]], name)
	}
	return levels, nil
}
