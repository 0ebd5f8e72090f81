package vlr

import (
	"context"
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTeam reads a team page: identity, roster and recent results.
// fetcher may be nil; when present, roster slots that only had the site's
// placeholder silhouette get their avatar filled from the player profiles.
func ExtractTeam(ctx context.Context, doc *goquery.Document, fetcher Fetcher) TeamProfile {
	ctx, span := tracer.Start(ctx, "ExtractTeam")
	defer span.End()

	profile := TeamProfile{
		Name:   textutil.CleanText(doc.Find(".team-header-name h1").First().Text()),
		Region: textutil.CleanText(doc.Find(".team-header-country").First().Text()),
		Logo:   ResolveImageURL(htmlutil.Resolve(doc.Selection, skipPlaceholder, teamLogoStrategies...)),
		ID: htmlutil.Resolve(doc.Selection, nil,
			htmlutil.Strategy{Selector: `link[rel="canonical"]`, Attr: "href", Pattern: teamIDPattern},
			htmlutil.Strategy{Selector: `meta[property="og:url"]`, Attr: "content", Pattern: teamIDPattern},
		),
		Roster: extractRoster(doc.Selection),
		Recent: extractRecentMatches(doc.Selection),
	}

	if fetcher != nil {
		var missing []string
		for _, rp := range profile.Roster {
			if rp.Avatar == "" && rp.ID != "" {
				missing = append(missing, rp.ID)
			}
		}
		avatars := FetchAvatars(ctx, fetcher, missing)
		for i := range profile.Roster {
			rp := &profile.Roster[i]
			if rp.Avatar == "" {
				rp.Avatar = avatars[rp.ID]
			}
		}
	}

	return profile
}

func extractRoster(root *goquery.Selection) []RosterPlayer {
	var roster []RosterPlayer
	root.Find(".team-roster-item").Each(func(_ int, item *goquery.Selection) {
		alias := textutil.CleanText(item.Find(".team-roster-item-name-alias").Text())
		if alias == "" {
			return
		}
		roster = append(roster, RosterPlayer{
			Alias:    alias,
			RealName: textutil.CleanText(item.Find(".team-roster-item-name-real").Text()),
			Role:     textutil.CleanText(item.Find(".team-roster-item-name-role").Text()),
			ID: htmlutil.Resolve(item, nil, htmlutil.Strategy{
				Selector: "a",
				Attr:     "href",
				Pattern:  playerIDPattern,
			}),
			Avatar: ResolveImageURL(htmlutil.Resolve(item, skipPlaceholder,
				htmlutil.Strategy{Selector: ".team-roster-item-img img", Attr: "src"},
				htmlutil.Strategy{Selector: "img", Attr: "src"},
			)),
		})
	})
	return roster
}

func extractRecentMatches(root *goquery.Selection) []RecentMatch {
	var recent []RecentMatch
	root.Find("a.m-item").Each(func(_ int, item *goquery.Selection) {
		opponent := textutil.CleanText(
			item.Find(".m-item-team").Last().Find(".m-item-team-name").Text(),
		)
		if opponent == "" {
			return
		}

		result := "L"
		if item.Find(".m-item-result").HasClass("mod-win") {
			result = "W"
		}

		recent = append(recent, RecentMatch{
			Opponent: opponent,
			Score:    scoreOrZero(item.Find(".m-item-result").Text()),
			Result:   result,
		})
	})
	return recent
}
