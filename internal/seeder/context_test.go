package seeder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDMapFirstRegistrationWins(t *testing.T) {
	var m IDMap

	assert.True(t, m.Register("web-store", "ch-1"))
	assert.False(t, m.Register("web-store", "ch-2"))
	assert.True(t, m.Register("outlet", "ch-3"))

	id, ok := m.Lookup("web-store")
	assert.True(t, ok)
	assert.Equal(t, "ch-1", id)
	assert.Equal(t, []string{"ch-1", "ch-3"}, m.IDs())
	assert.Equal(t, 2, m.Len())
}

func TestIDMapIgnoresEmpty(t *testing.T) {
	var m IDMap

	assert.False(t, m.Register("", "id"))
	assert.False(t, m.Register("key", ""))
	_, ok := m.Lookup("key")
	assert.False(t, ok)
	assert.Empty(t, m.IDs())
}
