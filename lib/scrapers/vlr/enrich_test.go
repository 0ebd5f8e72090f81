package vlr

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFetchAvatarsPartialFailure(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{
		"/player/1": playerPage("//owcdn.net/img/1.png"),
		"/player/2": playerPage("//owcdn.net/img/2.png"),
		"/player/3": playerPage("//owcdn.net/img/3.png"),
		// 4 and 5 are missing and fail with a 404
	}}

	avatars := FetchAvatars(context.Background(), fetcher,
		[]string{"1", "2", "3", "4", "5"})

	require.Len(t, avatars, 3)
	require.Equal(t, "https://owcdn.net/img/1.png", avatars["1"])
	require.Equal(t, "https://owcdn.net/img/3.png", avatars["3"])
	_, ok := avatars["4"]
	require.False(t, ok)
}

func TestFetchAvatarsRosterCap(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}

	FetchAvatars(context.Background(), fetcher,
		[]string{"1", "2", "3", "4", "5", "6", "7"})

	// one fetch per starting-lineup slot, never more
	require.Equal(t, maxRosterFetches, fetcher.callCount())
}

func TestFetchAvatarsCapAppliesPerRoster(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{}}

	FetchAvatars(context.Background(), fetcher,
		[]string{"1", "2", "3", "4", "5", "6"},
		[]string{"7", "8"})

	require.Equal(t, maxRosterFetches+2, fetcher.callCount())
}

func TestFetchAvatarsNilFetcher(t *testing.T) {
	require.Nil(t, FetchAvatars(context.Background(), nil, []string{"1"}))
}

func TestEnrichmentIdempotence(t *testing.T) {
	pages := map[string]string{
		"/player/1": playerPage("//owcdn.net/img/1.png"),
		"/player/2": playerPage("//owcdn.net/img/2.png"),
	}

	run := func() map[string]string {
		fetcher := &fakeFetcher{pages: pages}
		return FetchAvatars(context.Background(), fetcher, []string{"1", "2", "3"})
	}

	first := run()
	second := run()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("enrichment is not idempotent (-first +second):\n%s", diff)
	}
}
