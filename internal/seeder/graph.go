package seeder

import "fmt"

// DependencyGraph holds the section → prerequisite edges.
type DependencyGraph struct {
	deps  map[string][]string
	names []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		deps: make(map[string][]string),
	}
}

func (g *DependencyGraph) AddSection(name string, dependsOn ...string) {
	if _, exists := g.deps[name]; !exists {
		g.names = append(g.names, name)
	}
	g.deps[name] = append(g.deps[name], dependsOn...)
}

// BuildOrder returns the sections in dependency order, visiting them in the
// order they were added so the result is stable.
func (g *DependencyGraph) BuildOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving section: %s", name)
		}
		if visited[name] {
			return nil
		}

		temp[name] = true
		for _, dep := range g.deps[name] {
			if dep == name {
				continue
			}
			if _, known := g.deps[dep]; !known {
				return fmt.Errorf("section %s depends on unknown section %s", name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[name] = false
		visited[name] = true
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// CheckOrder reports the first section in order that comes before one of
// its prerequisites.
func (g *DependencyGraph) CheckOrder(order []string) error {
	if _, err := g.BuildOrder(); err != nil {
		return err
	}

	position := make(map[string]int, len(order))
	for i, name := range order {
		position[name] = i
	}
	for i, name := range order {
		for _, dep := range g.deps[name] {
			pos, ok := position[dep]
			if !ok {
				return fmt.Errorf("section %s depends on %s, which is not in the order", name, dep)
			}
			if pos >= i {
				return fmt.Errorf("section %s runs before its dependency %s", name, dep)
			}
		}
	}
	return nil
}
