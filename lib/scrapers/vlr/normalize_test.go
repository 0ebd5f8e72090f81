package vlr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseStatInt(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{input: "22", expected: 22},
		{input: "74%", expected: 74},
		{input: "+8", expected: 8},
		{input: "−4", expected: -4},
		{input: " 165 ", expected: 165},
		{input: "1.5", expected: 1},
		{input: "", expected: 0},
		{input: "n/a", expected: 0},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseStatInt(test.input), "input %q", test.input)
	}
}

func TestParseStatFloat(t *testing.T) {
	testCases := []struct {
		input    string
		expected float64
	}{
		{input: "1.24", expected: 1.24},
		{input: "0.92", expected: 0.92},
		{input: "−0.5", expected: -0.5},
		{input: "", expected: 0},
		{input: "--", expected: 0},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ParseStatFloat(test.input), "input %q", test.input)
	}
}

func TestResolveImageURL(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "//owcdn.net/img/sen.png", expected: "https://owcdn.net/img/sen.png"},
		{input: "/img/teams/fnc.png", expected: "https://www.vlr.gg/img/teams/fnc.png"},
		{input: "https://owcdn.net/img/sen.png", expected: "https://owcdn.net/img/sen.png"},
		{input: "", expected: ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ResolveImageURL(test.input))
	}
}

func TestResolveDateHeader(t *testing.T) {
	ref := time.Date(2026, 1, 8, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Today", expected: "2026-01-08"},
		{input: "tomorrow", expected: "2026-01-09"},
		{input: "Thu, January 8, 2026", expected: "2026-01-08"},
		{input: "Fri, January 9, 2026", expected: "2026-01-09"},
		{input: "Thu, January 8, 2026 Today", expected: "2026-01-08"},
		// unrecognized labels keep the reference date, never panic
		{input: "???", expected: "2026-01-08"},
		{input: "", expected: "2026-01-08"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ResolveDateHeader(test.input, ref), "input %q", test.input)
	}
}

func TestResolveTimestamp(t *testing.T) {
	require.Equal(t, "2026-01-08T17:00:00Z", ResolveTimestamp("1767891600", "2026-01-08"))
	require.Equal(t, "2026-01-08", ResolveTimestamp("", "2026-01-08"))
	require.Equal(t, "2026-01-08", ResolveTimestamp("not-a-number", "2026-01-08"))
}
