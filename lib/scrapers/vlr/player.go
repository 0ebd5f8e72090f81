package vlr

import (
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractPlayer reads a player profile page.
func ExtractPlayer(doc *goquery.Document) PlayerProfile {
	profile := PlayerProfile{
		Alias:    textutil.CleanText(doc.Find(".player-header .wf-title").First().Text()),
		RealName: textutil.CleanText(doc.Find(".player-header .player-real-name").First().Text()),
		Team:     textutil.CleanText(doc.Find(".player-team .team-name").First().Text()),
		Avatar:   ResolveImageURL(htmlutil.Resolve(doc.Selection, skipPlaceholder, avatarStrategies...)),
		ID: htmlutil.Resolve(doc.Selection, nil,
			htmlutil.Strategy{Selector: `link[rel="canonical"]`, Attr: "href", Pattern: playerIDPattern},
			htmlutil.Strategy{Selector: `meta[property="og:url"]`, Attr: "content", Pattern: playerIDPattern},
		),
		Recent: extractRecentMatches(doc.Selection),
	}

	doc.Find(".player-career-stats tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		label := textutil.CleanText(cells.Eq(0).Text())
		if label == "" {
			return
		}
		if profile.CareerStats == nil {
			profile.CareerStats = map[string]string{}
		}
		profile.CareerStats[label] = textutil.CleanText(cells.Eq(1).Text())
	})

	return profile
}
