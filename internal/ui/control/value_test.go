package control

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUncontrolledOwnsState(t *testing.T) {
	t.Parallel()

	v := Uncontrolled(3)
	require.False(t, v.IsControlled())
	require.True(t, v.Propose(7))
	require.Equal(t, 7, v.Get())

	v.Sync(11)
	require.Equal(t, 7, v.Get(), "sync must not override an uncontrolled value")
}

func TestControlledMirrorsParent(t *testing.T) {
	t.Parallel()

	v := Controlled("a")
	require.True(t, v.IsControlled())
	require.False(t, v.Propose("b"))
	require.Equal(t, "a", v.Get())

	v.Sync("c")
	require.Equal(t, "c", v.Get())
}

func TestFromOptional(t *testing.T) {
	t.Parallel()

	external := []float64{10, 20}
	controlled := FromOptional(&external, []float64{0})
	require.Equal(t, ModeControlled, controlled.Mode())
	require.Equal(t, external, controlled.Get())

	uncontrolled := FromOptional[[]float64](nil, []float64{0})
	require.Equal(t, ModeUncontrolled, uncontrolled.Mode())
	require.Equal(t, []float64{0}, uncontrolled.Get())
	require.Equal(t, "uncontrolled", uncontrolled.Mode().String())
}
