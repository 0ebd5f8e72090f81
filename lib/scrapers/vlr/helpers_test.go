package vlr

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"vlrdata-backend/lib/testutil"

	"github.com/PuerkitoBio/goquery"
)

func docFromString(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func docFromFixture(t *testing.T, name string) *goquery.Document {
	return docFromString(t, testutil.ReadFixture(t, name))
}

// fakeFetcher serves canned pages by path and records every fetch.
type fakeFetcher struct {
	pages map[string]string

	mu    sync.Mutex
	calls []string
}

func (f *fakeFetcher) FetchDocument(ctx context.Context, path string) (*goquery.Document, error) {
	f.mu.Lock()
	f.calls = append(f.calls, path)
	f.mu.Unlock()

	body, ok := f.pages[path]
	if !ok {
		return nil, fmt.Errorf("%w: status 404 Not Found", ErrUpstream)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(body))
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func playerPage(avatar string) string {
	img := ""
	if avatar != "" {
		img = fmt.Sprintf(`<img src="%s">`, avatar)
	}
	return fmt.Sprintf(`<html><body>
		<div class="player-header">
			<div class="wf-avatar">%s</div>
			<h1 class="wf-title">somebody</h1>
		</div>
	</body></html>`, img)
}
