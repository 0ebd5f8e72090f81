package vlr

import (
	"strings"
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLiveMatches returns the matches currently in progress on the front
// page. An item counts as live only when its eta indicator literally says
// so; a missing indicator means not-live, never an error.
func ExtractLiveMatches(doc *goquery.Document) []LiveMatch {
	live := []LiveMatch{}

	doc.Find(".wf-module-item.match-item").Each(func(_ int, item *goquery.Selection) {
		eta := textutil.CleanText(item.Find(".match-item-eta").Text())
		if !strings.Contains(strings.ToLower(eta), "live") {
			return
		}

		id := htmlutil.Resolve(item, nil, htmlutil.Strategy{Attr: "href", Pattern: matchIDPattern})

		var teams []TeamRef
		item.Find(".match-item-vs-team").Each(func(_ int, t *goquery.Selection) {
			teams = append(teams, TeamRef{
				Name:  textutil.CleanText(t.Find(".match-item-vs-team-name").Text()),
				Score: scoreOrZero(t.Find(".match-item-vs-team-score").Text()),
			})
		})

		if id == "" || len(teams) != 2 {
			return
		}

		live = append(live, LiveMatch{
			ID:     id,
			Team1:  teams[0],
			Team2:  teams[1],
			Event:  textutil.CleanText(item.Find(".match-item-event").Text()),
			Status: "LIVE",
		})
	})

	return live
}

func scoreOrZero(raw string) string {
	s := textutil.CleanText(raw)
	if s == "" {
		return "0"
	}
	return s
}
