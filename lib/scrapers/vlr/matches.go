package vlr

import (
	"time"
	"vlrdata-backend/lib/htmlutil"
	"vlrdata-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// ExtractMatchList walks the match-list page in document order, keeping a
// current-date cursor that updates at every date header. A match item has no
// structural link to its date; it inherits whatever header preceded it, so
// the iteration order here must stay the document order.
func ExtractMatchList(doc *goquery.Document, ref time.Time) []MatchSummary {
	matches := []MatchSummary{}
	currentDate := ref.Format(time.DateOnly)

	doc.Find(".wf-label, .wf-card").Each(func(_ int, el *goquery.Selection) {
		if el.HasClass("wf-label") {
			currentDate = ResolveDateHeader(el.Text(), ref)
			return
		}

		el.Find(".match-item").Each(func(_ int, item *goquery.Selection) {
			m, ok := extractMatchItem(item, currentDate)
			if ok {
				matches = append(matches, m)
			}
		})
	})

	return matches
}

func extractMatchItem(item *goquery.Selection, date string) (MatchSummary, bool) {
	id := htmlutil.Resolve(item, nil, htmlutil.Strategy{Attr: "href", Pattern: matchIDPattern})
	if id == "" {
		return MatchSummary{}, false
	}

	var teams []string
	item.Find(".match-item-vs-team-name").EachWithBreak(func(_ int, t *goquery.Selection) bool {
		name := textutil.CleanText(t.Text())
		if name != "" {
			teams = append(teams, name)
		}
		return len(teams) < 2
	})
	if len(teams) != 2 {
		return MatchSummary{}, false
	}

	event := textutil.CleanText(htmlutil.Resolve(item, nil, eventLabelStrategies...))

	epoch := item.Find(".match-item-time").AttrOr("data-utc-ts", "")

	return MatchSummary{
		ID:        id,
		Team1:     TeamRef{Name: teams[0]},
		Team2:     TeamRef{Name: teams[1]},
		Event:     event,
		StartTime: ResolveTimestamp(epoch, date),
	}, true
}

// FilterTier retains only matches whose event label contains one of the
// given league tokens, case-insensitive substring matching. An empty token
// set keeps everything.
func FilterTier(matches []MatchSummary, tokens []string) []MatchSummary {
	if len(tokens) == 0 {
		return matches
	}
	kept := []MatchSummary{}
	for _, m := range matches {
		if textutil.MatchName(m.Event, tokens) {
			kept = append(kept, m)
		}
	}
	return kept
}
