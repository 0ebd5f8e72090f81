package vlr

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractTeam(t *testing.T) {
	doc := docFromFixture(t, "team.html")
	fetcher := &fakeFetcher{pages: map[string]string{
		"/player/9742":  playerPage("//owcdn.net/img/zekken.png"),
		"/player/8419":  playerPage("//owcdn.net/img/sacy.png"),
		"/player/10580": playerPage("/img/base/ph/sil.png"),
		// 45 fails with a 404
	}}

	profile := ExtractTeam(context.Background(), doc, fetcher)

	require.Equal(t, "2", profile.ID)
	require.Equal(t, "Sentinels", profile.Name)
	require.Equal(t, "North America", profile.Region)
	require.Equal(t, "https://owcdn.net/img/sen-logo.png", profile.Logo)

	require.Len(t, profile.Roster, 5)
	expected := []RosterPlayer{
		{Alias: "TenZ", RealName: "Tyson Ngo", ID: "729", Avatar: "https://owcdn.net/img/tenz.png"},
		{Alias: "zekken", RealName: "Zachary Patrone", ID: "9742", Avatar: "https://owcdn.net/img/zekken.png"},
		{Alias: "Sacy", RealName: "Gustavo Rossi", ID: "8419", Avatar: "https://owcdn.net/img/sacy.png"},
		{Alias: "johnqt", RealName: "Mohamed Ouarid", Role: "IGL", ID: "10580", Avatar: ""},
		{Alias: "Zellsis", RealName: "Jordan Montemurro", ID: "45", Avatar: ""},
	}
	if diff := cmp.Diff(expected, profile.Roster); diff != "" {
		t.Fatalf("roster mismatch (-want +got):\n%s", diff)
	}

	// TenZ already had an avatar on the team page, the other four are fetched
	require.Equal(t, 4, fetcher.callCount())

	expectedRecent := []RecentMatch{
		{Opponent: "100 Thieves", Score: "2:0", Result: "W"},
		{Opponent: "Leviatán", Score: "1:2", Result: "L"},
	}
	if diff := cmp.Diff(expectedRecent, profile.Recent); diff != "" {
		t.Fatalf("recent matches mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractTeamNilFetcher(t *testing.T) {
	doc := docFromFixture(t, "team.html")

	profile := ExtractTeam(context.Background(), doc, nil)

	require.Len(t, profile.Roster, 5)
	require.Equal(t, "https://owcdn.net/img/tenz.png", profile.Roster[0].Avatar)
	require.Empty(t, profile.Roster[1].Avatar)
}

func TestExtractTeamEmptyDocument(t *testing.T) {
	doc := docFromString(t, `<div class="team-header"></div>`)

	profile := ExtractTeam(context.Background(), doc, nil)

	require.Empty(t, profile.ID)
	require.Empty(t, profile.Name)
	require.Empty(t, profile.Roster)
	require.Empty(t, profile.Recent)
}
