package htmlutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFragment(t *testing.T, markup string) *goquery.Selection {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Selection
}

func TestResolvePriorityOrder(t *testing.T) {
	root := parseFragment(t, `
		<div>
			<img class="primary" src="//img.host/a.png">
			<img class="secondary" src="/b.png">
		</div>
	`)

	val := Resolve(root, nil,
		Strategy{Selector: "img.primary", Attr: "src"},
		Strategy{Selector: "img.secondary", Attr: "src"},
	)
	require.Equal(t, "//img.host/a.png", val)
}

func TestResolveSkipsSentinel(t *testing.T) {
	root := parseFragment(t, `
		<div>
			<img class="primary" src="/img/base/ph/sil.png">
			<img class="secondary" src="/real.png">
		</div>
	`)

	skip := func(v string) bool { return strings.Contains(v, "/img/base/ph/sil.png") }
	val := Resolve(root, skip,
		Strategy{Selector: "img.primary", Attr: "src"},
		Strategy{Selector: "img.secondary", Attr: "src"},
	)
	require.Equal(t, "/real.png", val)
}

func TestResolveAllFail(t *testing.T) {
	root := parseFragment(t, `<div><span class="x"></span></div>`)

	val := Resolve(root, nil,
		Strategy{Selector: ".x", Attr: "src"},
		Strategy{Selector: ".missing"},
	)
	require.Equal(t, "", val)
}

func TestResolveTextAndPattern(t *testing.T) {
	root := parseFragment(t, `<a href="/378821/sen-vs-fnc">Sentinels vs Fnatic</a>`)

	text := Resolve(root, nil, Strategy{Selector: "a"})
	require.Equal(t, "Sentinels vs Fnatic", text)

	id := Resolve(root, nil, Strategy{
		Selector: "a",
		Attr:     "href",
		Pattern:  regexp.MustCompile(`/(\d+)/`),
	})
	require.Equal(t, "378821", id)
}

func TestResolvePatternMissTriesNext(t *testing.T) {
	root := parseFragment(t, `<a href="/team/2/sentinels">profile</a>`)

	val := Resolve(root, nil,
		Strategy{Selector: "a", Attr: "href", Pattern: regexp.MustCompile(`/player/(\d+)/`)},
		Strategy{Selector: "a", Attr: "href", Pattern: regexp.MustCompile(`/team/(\d+)/`)},
	)
	require.Equal(t, "2", val)
}
