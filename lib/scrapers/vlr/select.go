package vlr

import (
	"regexp"
	"strings"
	"vlrdata-backend/lib/htmlutil"
)

// the silhouette the site serves when a player or team has no picture
const placeholderImage = "/img/base/ph/sil.png"

func skipPlaceholder(val string) bool {
	return strings.Contains(val, placeholderImage)
}

var (
	matchIDPattern  = regexp.MustCompile(`/(\d+)/`)
	teamIDPattern   = regexp.MustCompile(`/team/(\d+)`)
	playerIDPattern = regexp.MustCompile(`/player/(\d+)`)
	eventIDPattern  = regexp.MustCompile(`/event/(\d+)`)
)

// Selector strategy chains, highest priority first. The site's markup moves
// around between redesigns; keeping the alternatives in one table means a
// reshuffle is fixed here and nowhere else.
var avatarStrategies = []htmlutil.Strategy{
	{Selector: ".player-header .wf-avatar img", Attr: "src"},
	{Selector: ".wf-avatar.mod-player img", Attr: "src"},
	{Selector: ".player-header img", Attr: "src"},
	{Selector: "img.mod-player", Attr: "src"},
}

var teamLogoStrategies = []htmlutil.Strategy{
	{Selector: ".team-header-logo img", Attr: "src"},
	{Selector: ".wf-avatar.mod-team img", Attr: "src"},
	{Selector: ".team-header img", Attr: "src"},
}

var eventLabelStrategies = []htmlutil.Strategy{
	{Selector: ".match-item-event-series"},
	{Selector: ".match-item-event"},
}
