package vlr

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMatchDetail reads a match page into a MatchDetail. Teams come
// first (exactly two, by position), event metadata second, then the per-map
// blocks. fetcher is only used for secondary fetches (roster fallback,
// avatar enrichment) and may be nil.
func ExtractMatchDetail(ctx context.Context, doc *goquery.Document, fetcher Fetcher) MatchDetail {
	ctx, span := tracer.Start(ctx, "ExtractMatchDetail")
	defer span.End()

	detail := MatchDetail{
		Teams: extractHeaderTeams(doc),
		Event: extractHeaderEvent(doc),
	}

	games := doc.Find(".vm-stats-game")
	detail.IsUpcoming = games.Length() == 0

	if detail.IsUpcoming {
		detail.Maps = extractRosterPreview(ctx, doc, fetcher, detail.Teams)
		return detail
	}

	fullNames := []string{detail.Teams[0].Name, detail.Teams[1].Name}
	games.Each(func(_ int, game *goquery.Selection) {
		m, ok := extractMapResult(game, fullNames)
		if !ok {
			return
		}
		detail.Maps = append(detail.Maps, m)
		// the aggregate row stays in the list for display but does not
		// count as a played map
		if !strings.EqualFold(m.Name, "All Maps") {
			detail.MapCount++
		}
	})

	enrichPlayerAvatars(ctx, fetcher, &detail)

	return detail
}

func extractHeaderTeams(doc *goquery.Document) []Team {
	names := doc.Find(".match-header-link-name .wf-title-med")
	scores := doc.Find(".match-header-vs-score .js-spoiler span")
	logos := doc.Find(".match-header-link img")
	links := doc.Find("a.match-header-link")

	teams := make([]Team, 2)
	for i := range teams {
		teams[i].Score = "0"
		if i < names.Length() {
			teams[i].Name = textutil.CleanText(names.Eq(i).Text())
		}
		if i < scores.Length() {
			teams[i].Score = scoreOrZero(scores.Eq(i).Text())
		}
		if i < logos.Length() {
			teams[i].Logo = ResolveImageURL(logos.Eq(i).AttrOr("src", ""))
		}
		if i < links.Length() {
			teams[i].ID = htmlutil.Resolve(links.Eq(i), nil, htmlutil.Strategy{
				Attr:    "href",
				Pattern: teamIDPattern,
			})
		}
	}
	return teams
}

func extractHeaderEvent(doc *goquery.Document) Event {
	el := doc.Find(".match-header-event")
	return Event{
		ID:     htmlutil.Resolve(el, nil, htmlutil.Strategy{Attr: "href", Pattern: eventIDPattern}),
		Series: textutil.CleanText(el.Find("div:nth-child(1)").First().Text()),
		Stage:  textutil.CleanText(el.Find("div:nth-child(2)").First().Text()),
		Status: textutil.CleanText(doc.Find(".match-header-vs-note").First().Text()),
	}
}

func extractMapResult(game *goquery.Selection, fullNames []string) (MapResult, bool) {
	name := textutil.CleanText(game.Find(".vm-stats-game-header .map div").First().Text())
	// the pick marker rides along in the same node
	name = strings.TrimSuffix(name, " PICK")
	if name == "" {
		name = "Unknown"
	}
	if strings.ToLower(name) == "tbd" {
		return MapResult{}, false
	}

	scores := make([]TeamScore, 2)
	game.Find(".vm-stats-game-header .team").Each(func(i int, team *goquery.Selection) {
		if i >= 2 {
			return
		}
		scores[i] = TeamScore{
			Name:  textutil.CleanText(team.Find(".team-name").Text()),
			Score: scoreOrZero(team.Find(".score").Text()),
		}
	})
	for i := range scores {
		if scores[i].Name == "" && i < len(fullNames) {
			scores[i].Name = fullNames[i]
		}
		if scores[i].Score == "" {
			scores[i].Score = "0"
		}
	}

	// legend tags for cross-referencing abbreviated row teams
	var short []string
	game.Find(".vm-stats-game-header .team .team-tag").Each(func(_ int, tag *goquery.Selection) {
		short = append(short, textutil.CleanText(tag.Text()))
	})
	names := NewNameResolver(short, fullNames)

	var players []PlayerStat
	game.Find("table.wf-table-inset").Each(func(ti int, table *goquery.Selection) {
		// table ordinal decides team ownership, a positional join
		positionalTeam := ""
		if ti < len(fullNames) {
			positionalTeam = fullNames[ti]
		}
		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			p, ok := parsePlayerRow(row, positionalTeam, names)
			if !ok {
				slog.Debug("dropped scoreboard row without a player name", "map", name)
				return
			}
			players = append(players, p)
		})
	})

	return MapResult{Name: name, Teams: scores, Players: players}, true
}

// extractRosterPreview builds the synthetic roster-only map for an upcoming
// match. Inline preview nodes are tried first; when the page has none, each
// team's roster page is fetched instead. Only the first method that yields
// players is used.
func extractRosterPreview(ctx context.Context, doc *goquery.Document, fetcher Fetcher, teams []Team) []MapResult {
	players := extractInlinePreview(doc, teams)
	if len(players) == 0 {
		players = fetchTeamRosters(ctx, fetcher, doc, teams)
	}
	if len(players) == 0 {
		return nil
	}

	return []MapResult{{
		Name: "Rosters",
		Teams: []TeamScore{
			{Name: teams[0].Name, Score: "0"},
			{Name: teams[1].Name, Score: "0"},
		},
		Players: players,
	}}
}

// inline preview nodes interleave the two lineups, so team assignment
// alternates by position
func extractInlinePreview(doc *goquery.Document, teams []Team) []PlayerStat {
	var players []PlayerStat
	doc.Find(".match-preview-players .mod-player").Each(func(i int, el *goquery.Selection) {
		name := textutil.CleanText(el.Find(".text-of").Text())
		if name == "" {
			return
		}
		players = append(players, PlayerStat{
			Name: name,
			Team: teams[i%2].Name,
			ID: htmlutil.Resolve(el, nil, htmlutil.Strategy{
				Attr:    "href",
				Pattern: playerIDPattern,
			}, htmlutil.Strategy{
				Selector: "a",
				Attr:     "href",
				Pattern:  playerIDPattern,
			}),
			Avatar: ResolveImageURL(htmlutil.Resolve(el, skipPlaceholder, htmlutil.Strategy{
				Selector: "img",
				Attr:     "src",
			})),
		})
	})
	return players
}

func fetchTeamRosters(ctx context.Context, fetcher Fetcher, doc *goquery.Document, teams []Team) []PlayerStat {
	if fetcher == nil {
		return nil
	}

	var links []string
	doc.Find("a.match-header-link").Each(func(i int, a *goquery.Selection) {
		if i >= 2 {
			return
		}
		links = append(links, a.AttrOr("href", ""))
	})

	results := make([][]PlayerStat, len(links))
	wg := sync.WaitGroup{}
	for i, link := range links {
		if link == "" {
			continue
		}
		wg.Add(1)
		go func(i int, link string) {
			defer wg.Done()

			page, err := fetcher.FetchDocument(ctx, link)
			if err != nil {
				slog.DebugContext(ctx, "roster fallback fetch failed", "team", link, "err", err)
				return
			}
			for _, rp := range extractRoster(page.Selection) {
				results[i] = append(results[i], PlayerStat{
					ID:     rp.ID,
					Name:   rp.Alias,
					Team:   teams[i].Name,
					Avatar: rp.Avatar,
				})
			}
		}(i, link)
	}
	wg.Wait()

	var players []PlayerStat
	for _, r := range results {
		players = append(players, r...)
	}
	return players
}
