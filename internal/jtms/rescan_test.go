package jtms

import (
	"testing"

	"github.com/jsboigeEpita/2025-Epita-Intelligence-Symbolique-sub023/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonMonotonic(t *testing.T, n *Network, id string) bool {
	t.Helper()
	view, err := n.Belief(id)
	require.NoError(t, err)
	return view.NonMonotonic
}

func TestRescanFlagIsSticky(t *testing.T) {
	n := New(nil)
	obs := &recordingObserver{}
	n.SetObserver(obs)

	mustJustify(t, n, []string{"A"}, nil, "B")
	back := mustJustify(t, n, []string{"B"}, nil, "A")
	assert.Equal(t, [][]string{{"A", "B"}}, obs.flagged)

	require.NoError(t, n.RemoveJustification(back))
	assert.Nil(t, n.Rescan())

	for _, id := range []string{"A", "B"} {
		assert.True(t, nonMonotonic(t, n, id), id)
		assert.Equal(t, domain.ValidityUnknown, validity(t, n, id), id)
	}
	assert.Len(t, obs.flagged, 1)
}

func TestRescanFlagSurvivesBeliefRemoval(t *testing.T) {
	n := New(nil)
	mustJustify(t, n, []string{"A"}, nil, "B")
	mustJustify(t, n, []string{"B"}, nil, "A")

	require.NoError(t, n.RemoveBelief("A"))
	assert.True(t, nonMonotonic(t, n, "B"))
	mustJustify(t, n, nil, nil, "B")
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "B"))
}

func TestCycleOverridesBaseFact(t *testing.T) {
	n := New(nil)
	mustJustify(t, n, nil, nil, "A")
	mustJustify(t, n, []string{"A"}, nil, "B")
	assert.Equal(t, domain.ValidityTrue, validity(t, n, "B"))

	mustJustify(t, n, []string{"B"}, nil, "A")
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "A"))
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "B"))
}

func TestSelfLoopIsNotFlagged(t *testing.T) {
	n := New(nil)
	mustJustify(t, n, []string{"S"}, nil, "S")

	assert.False(t, nonMonotonic(t, n, "S"))
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "S"))
	assert.Nil(t, n.Rescan())

	t.Run("with a base fact the self loop is harmless", func(t *testing.T) {
		mustJustify(t, n, nil, nil, "S")
		assert.False(t, nonMonotonic(t, n, "S"))
		assert.Equal(t, domain.ValidityTrue, validity(t, n, "S"))
	})
}

func TestNegativeCyclesAreFlagged(t *testing.T) {
	n := New(nil)
	mustJustify(t, n, nil, []string{"rain"}, "dry")
	mustJustify(t, n, nil, []string{"dry"}, "rain")

	assert.True(t, nonMonotonic(t, n, "dry"))
	assert.True(t, nonMonotonic(t, n, "rain"))
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "dry"))
	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "rain"))
}

func TestRescanOnlyFlagsCycleMembers(t *testing.T) {
	n := New(nil)
	mustJustify(t, n, nil, nil, "base")
	mustJustify(t, n, []string{"base"}, nil, "x")
	mustJustify(t, n, []string{"x"}, nil, "y")
	mustJustify(t, n, []string{"y"}, nil, "x")
	mustJustify(t, n, []string{"x"}, nil, "downstream")
	mustJustify(t, n, []string{"base"}, nil, "sibling")

	assert.False(t, nonMonotonic(t, n, "base"))
	assert.True(t, nonMonotonic(t, n, "x"))
	assert.True(t, nonMonotonic(t, n, "y"))
	assert.False(t, nonMonotonic(t, n, "downstream"))
	assert.False(t, nonMonotonic(t, n, "sibling"))

	assert.Equal(t, domain.ValidityUnknown, validity(t, n, "downstream"))
	assert.Equal(t, domain.ValidityTrue, validity(t, n, "sibling"))
}
