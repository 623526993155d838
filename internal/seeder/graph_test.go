package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrderIsTopological(t *testing.T) {
	graph := Graph()

	order := SectionNames()
	require.NoError(t, graph.CheckOrder(order))

	position := make(map[string]int)
	for i, name := range order {
		position[name] = i
	}
	for _, sec := range Sections() {
		for _, dep := range sec.DependsOn {
			assert.Less(t, position[dep], position[sec.Name], "%s must run after %s", sec.Name, dep)
		}
	}

	built, err := graph.BuildOrder()
	require.NoError(t, err)
	assert.Equal(t, order, built)
}

func TestRegistryOrder(t *testing.T) {
	assert.Equal(t, []string{
		"taxClasses", "warehouses", "channels", "shipping", "attributes", "productTypes",
		"categories", "collections", "pageTypes", "pages", "menus",
	}, SectionNames())
}

func TestCheckOrderRejectsDependencyAfterDependent(t *testing.T) {
	graph := NewDependencyGraph()
	graph.AddSection("a")
	graph.AddSection("b", "a")

	assert.NoError(t, graph.CheckOrder([]string{"a", "b"}))

	err := graph.CheckOrder([]string{"b", "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runs before its dependency")
}

func TestBuildOrderDetectsCycle(t *testing.T) {
	graph := NewDependencyGraph()
	graph.AddSection("a", "b")
	graph.AddSection("b", "a")

	_, err := graph.BuildOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular dependency")
}

func TestBuildOrderRejectsUnknownDependency(t *testing.T) {
	graph := NewDependencyGraph()
	graph.AddSection("a", "ghost")

	_, err := graph.BuildOrder()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown section ghost")
}
