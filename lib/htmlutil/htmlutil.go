package htmlutil

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// Strategy is one rule for locating a value inside a fragment. Selector
// scopes the lookup ("" means the fragment itself), Attr names the attribute
// to read ("" reads text content), and Pattern optionally narrows the raw
// value to its first capture group.
type Strategy struct {
	Selector string
	Attr     string
	Pattern  *regexp.Regexp
}

func (s Strategy) read(sel *goquery.Selection) string {
	if s.Attr != "" {
		for _, n := range sel.Nodes {
			for _, a := range n.Attr {
				if a.Key == s.Attr && strings.TrimSpace(a.Val) != "" {
					return strings.TrimSpace(a.Val)
				}
			}
		}
		return ""
	}
	for _, n := range sel.Nodes {
		text := strings.TrimSpace(GetText(n))
		if text != "" {
			return text
		}
	}
	return ""
}

// Resolve tries each strategy in order and returns the first non-empty
// value. skip rejects sentinel values (placeholder images and the like):
// a skipped value is treated as empty and the chain moves on. Returns ""
// when every strategy fails; callers must treat that as "field unknown",
// never as an error. Semantic validation of the winning value is the
// caller's job.
func Resolve(root *goquery.Selection, skip func(string) bool, strategies ...Strategy) string {
	for _, s := range strategies {
		scope := root
		if s.Selector != "" {
			scope = root.Find(s.Selector)
		}

		val := s.read(scope)
		if val != "" && s.Pattern != nil {
			groups := s.Pattern.FindStringSubmatch(val)
			switch {
			case len(groups) > 1:
				val = groups[1]
			case len(groups) == 1:
				val = groups[0]
			default:
				val = ""
			}
		}

		if val == "" {
			continue
		}
		if skip != nil && skip(val) {
			continue
		}
		return val
	}
	return ""
}
