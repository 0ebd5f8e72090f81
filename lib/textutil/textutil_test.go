package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "  Sentinels \n\t win ", expected: "Sentinels win"},
		{input: "one  two   three", expected: "one two three"},
		{input: "\n\n", expected: ""},
		{input: "already clean", expected: "already clean"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}

func TestMatchName(t *testing.T) {
	matchers := []string{"Champions Tour", "Masters", "game changers"}

	require.True(t, MatchName("Valorant Champions Tour 2026: Americas", matchers))
	require.True(t, MatchName("VCT 2026: Masters Toronto", matchers))
	require.True(t, MatchName("Game  Changers EMEA", matchers))
	require.False(t, MatchName("Challengers League: North America", matchers))
	require.False(t, MatchName("", matchers))
}
