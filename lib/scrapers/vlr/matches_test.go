package vlr

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var matchListRef = time.Date(2026, 1, 8, 12, 0, 0, 0, time.UTC)

func TestExtractMatchList(t *testing.T) {
	doc := docFromFixture(t, "matches.html")

	matches := ExtractMatchList(doc, matchListRef)
	require.Len(t, matches, 5)

	first := MatchSummary{
		ID:        "378821",
		Team1:     TeamRef{Name: "Sentinels"},
		Team2:     TeamRef{Name: "Fnatic"},
		Event:     "Champions Tour 2026: Americas Kickoff",
		StartTime: "2026-01-08T17:00:00Z",
	}
	if diff := cmp.Diff(first, matches[0]); diff != "" {
		t.Fatalf("unexpected first match (-want +got):\n%s", diff)
	}
}

func TestMatchListDateCursor(t *testing.T) {
	doc := docFromFixture(t, "matches.html")

	matches := ExtractMatchList(doc, matchListRef)
	require.Len(t, matches, 5)

	// all items under the first header inherit its date; the exact epoch
	// attribute on the first item upgrades only that item
	require.Equal(t, "2026-01-08T17:00:00Z", matches[0].StartTime)
	require.Equal(t, "2026-01-08", matches[1].StartTime)
	require.Equal(t, "2026-01-08", matches[2].StartTime)

	// items after the second header switch to its date
	require.Equal(t, "2026-01-09", matches[3].StartTime)
	require.Equal(t, "2026-01-09", matches[4].StartTime)
}

func TestMatchListDropsIncompleteItems(t *testing.T) {
	doc := docFromFixture(t, "matches.html")

	// the fixture has one item with a single team name; it must disappear
	// without taking the rest of the list with it
	matches := ExtractMatchList(doc, matchListRef)
	for _, m := range matches {
		require.NotEmpty(t, m.ID)
		require.NotEmpty(t, m.Team1.Name)
		require.NotEmpty(t, m.Team2.Name)
	}
}

func TestFilterTier(t *testing.T) {
	doc := docFromFixture(t, "matches.html")
	matches := ExtractMatchList(doc, matchListRef)

	kept := FilterTier(matches, []string{"Champions Tour"})
	require.Len(t, kept, 4)
	for _, m := range kept {
		require.Contains(t, m.Event, "Champions Tour")
	}

	// an empty allow-list keeps everything
	require.Len(t, FilterTier(matches, nil), len(matches))
}
