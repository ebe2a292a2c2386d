package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&Definition{Name: "ping", Description: "first"})
	reg.Register(&Definition{Name: "ping", Description: "second"})

	d, ok := reg.Get("ping")
	require.True(t, ok)
	assert.Equal(t, "second", d.Description)
	assert.Len(t, reg.All(), 1)
}

func TestRegistryGetMissing(t *testing.T) {
	reg := NewRegistry()
	_, ok := reg.Get("nope")
	assert.False(t, ok)
}

func TestRegistryAllSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register(
		&Definition{Name: "roll"},
		&Definition{Name: "help"},
		&Definition{Name: "ping"},
	)

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "help", all[0].Name)
	assert.Equal(t, "ping", all[1].Name)
	assert.Equal(t, "roll", all[2].Name)
}
