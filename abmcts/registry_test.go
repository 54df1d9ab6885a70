package abmcts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopAction(ctx context.Context, parent *State) (*State, float64, error) {
	return NewState("next"), 0.5, nil
}

func TestRegistryPreservesOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"decompose", "refine", "verify"} {
		require.NoError(t, registry.Register(name, noopAction))
	}

	assert.Equal(t, []string{"decompose", "refine", "verify"}, registry.Names())
	assert.Equal(t, 3, registry.Len())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("refine", noopAction))

	err := registry.Register("refine", noopAction)
	assert.ErrorIs(t, err, ErrActionRegistered)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryRejectsBadInput(t *testing.T) {
	registry := NewRegistry()

	assert.Error(t, registry.Register("", noopAction))
	assert.Error(t, registry.Register("nilfn", nil))
	assert.Zero(t, registry.Len())
}

func TestRegistryNamesIsASnapshot(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("a", noopAction))

	names := registry.Names()
	names[0] = "tampered"

	assert.Equal(t, []string{"a"}, registry.Names())
}

func TestRegistryGetUnknown(t *testing.T) {
	registry := NewRegistry()
	assert.Nil(t, registry.Get("missing"))
}
