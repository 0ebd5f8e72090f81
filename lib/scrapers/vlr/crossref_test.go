package vlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameResolverPositionalZip(t *testing.T) {
	r := NewNameResolver(
		[]string{"SEN", "FNC"},
		[]string{"Sentinels", "Fnatic"},
	)

	require.Equal(t, "Sentinels", r.Full("SEN"))
	require.Equal(t, "Fnatic", r.Full("FNC"))
}

func TestNameResolverPassThrough(t *testing.T) {
	r := NewNameResolver(
		[]string{"SEN", "FNC"},
		[]string{"Sentinels", "Fnatic"},
	)

	// an unknown tag passes through unchanged
	require.Equal(t, "XYZ", r.Full("XYZ"))
	require.Equal(t, "", r.Full(""))
}

func TestNameResolverCountMismatch(t *testing.T) {
	// a missing legend entry breaks the positional contract; similarity
	// matching picks up the slack
	r := NewNameResolver(
		[]string{"SEN"},
		[]string{"Sentinels", "Fnatic"},
	)

	require.Equal(t, "Sentinels", r.Full("SEN"))
}

func TestNameResolverMismatchBelowThreshold(t *testing.T) {
	r := NewNameResolver(
		[]string{"XYZ"},
		[]string{"Sentinels", "Fnatic"},
	)

	require.Equal(t, "XYZ", r.Full("XYZ"))
}

func TestNameResolverEmptyLegend(t *testing.T) {
	r := NewNameResolver(nil, []string{"Sentinels", "Fnatic"})
	require.Equal(t, "SEN", r.Full("SEN"))
}
