package vlr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractPlayer(t *testing.T) {
	doc := docFromFixture(t, "player.html")
	profile := ExtractPlayer(doc)

	expected := PlayerProfile{
		ID:       "729",
		Alias:    "TenZ",
		RealName: "Tyson Ngo",
		Team:     "Sentinels",
		Avatar:   "https://owcdn.net/img/tenz.png",
		CareerStats: map[string]string{
			"Rounds": "4,812",
			"Rating": "1.08",
			"ACS":    "231.4",
			"K:D":    "1.18",
		},
		Recent: []RecentMatch{
			{Opponent: "100 Thieves", Score: "2:0", Result: "W"},
		},
	}
	if diff := cmp.Diff(expected, profile); diff != "" {
		t.Fatalf("player profile mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractPlayerPlaceholderAvatar(t *testing.T) {
	doc := docFromString(t, `
		<div class="player-header">
			<div class="wf-avatar mod-player"><img src="/img/base/ph/sil.png"></div>
			<h1 class="wf-title">someone</h1>
		</div>`)

	profile := ExtractPlayer(doc)
	require.Equal(t, "someone", profile.Alias)
	require.Empty(t, profile.Avatar)
	require.Nil(t, profile.CareerStats)
}
