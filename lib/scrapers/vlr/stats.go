package vlr

import (
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

type statColumn struct {
	key    string
	assign func(*PlayerStat, string)
}

// statSchema mirrors the scoreboard's column order. Meaning is inferred
// purely from position, so a markup reordering is fixed by editing this
// table, not the row parser. A nil assign marks a column that is displayed
// but not extracted.
var statSchema = []statColumn{
	{key: "rating", assign: func(p *PlayerStat, raw string) { p.Rating = ParseStatFloat(raw) }},
	{key: "acs", assign: func(p *PlayerStat, raw string) { p.ACS = ParseStatInt(raw) }},
	{key: "kills", assign: func(p *PlayerStat, raw string) { p.Kills = ParseStatInt(raw) }},
	{key: "deaths", assign: func(p *PlayerStat, raw string) { p.Deaths = ParseStatInt(raw) }},
	{key: "assists", assign: func(p *PlayerStat, raw string) { p.Assists = ParseStatInt(raw) }},
	{key: "kd_diff", assign: nil},
	{key: "kast", assign: func(p *PlayerStat, raw string) { p.KAST = ParseStatInt(raw) }},
	{key: "adr", assign: func(p *PlayerStat, raw string) { p.ADR = ParseStatInt(raw) }},
	{key: "hs_percent", assign: func(p *PlayerStat, raw string) { p.Headshot = ParseStatInt(raw) }},
	{key: "first_kills", assign: func(p *PlayerStat, raw string) { p.FirstKills = ParseStatInt(raw) }},
	{key: "first_deaths", assign: func(p *PlayerStat, raw string) { p.FirstDeaths = ParseStatInt(raw) }},
	{key: "first_kill_diff", assign: func(p *PlayerStat, raw string) { p.FirstKillDiff = ParseStatInt(raw) }},
}

// parsePlayerRow reads one scoreboard row. The row is dropped only when no
// player name can be found; missing or garbled stat cells zero their fields
// and the row survives.
func parsePlayerRow(row *goquery.Selection, positionalTeam string, names NameResolver) (PlayerStat, bool) {
	name := textutil.CleanText(row.Find(".mod-player .text-of").First().Text())
	if name == "" {
		return PlayerStat{}, false
	}

	team := positionalTeam
	if tag := textutil.CleanText(row.Find(".mod-player .ot").First().Text()); tag != "" {
		team = names.Full(tag)
	}

	p := PlayerStat{
		Name: name,
		Team: team,
		ID: htmlutil.Resolve(row, nil, htmlutil.Strategy{
			Selector: ".mod-player a",
			Attr:     "href",
			Pattern:  playerIDPattern,
		}),
	}

	row.Find(".mod-agents img").Each(func(_ int, img *goquery.Selection) {
		title := img.AttrOr("title", "")
		if title == "" {
			title = img.AttrOr("alt", "")
		}
		p.Agents = append(p.Agents, Agent{
			Title: textutil.CleanText(title),
			Icon:  ResolveImageURL(img.AttrOr("src", "")),
		})
	})

	row.Find("td.mod-stat span.mod-both").Each(func(i int, cell *goquery.Selection) {
		if i >= len(statSchema) || statSchema[i].assign == nil {
			return
		}
		statSchema[i].assign(&p, cell.Text())
	})

	return p, true
}
