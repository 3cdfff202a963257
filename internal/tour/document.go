package tour

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// DefaultRowHeight is the nominal height Document assigns to each element.
const DefaultRowHeight = 24

// Document is a Viewport over a parsed HTML page. There is no layout
// engine: an element's Top is its document-order position times RowHeight,
// and scrolling lands instantly. It is used to check that every step of a
// catalog resolves against rendered markup.
type Document struct {
	RowHeight float64

	root *html.Node
	pos  map[*html.Node]int

	mu      sync.Mutex
	scrollY float64
}

func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	d := &Document{RowHeight: DefaultRowHeight, root: root, pos: make(map[*html.Node]int)}
	n := 0
	walk(root, func(el *html.Node) bool {
		d.pos[el] = n
		n++
		return false
	})
	return d, nil
}

func (d *Document) Find(_ context.Context, sel Selector) (Element, bool, error) {
	el := d.find(sel)
	if el == nil {
		return Element{}, false, nil
	}
	return Element{Top: float64(d.pos[el]) * d.RowHeight}, true, nil
}

func (d *Document) ScrollTo(_ context.Context, top float64) error {
	d.mu.Lock()
	d.scrollY = top
	d.mu.Unlock()
	return nil
}

func (d *Document) ScrollY(context.Context) (float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrollY, nil
}

func (d *Document) find(sel Selector) *html.Node {
	switch sel.Kind {
	case ByID:
		return d.first(func(n *html.Node) bool { return attr(n, "id") == sel.Value })
	case ByDataSection:
		return d.first(func(n *html.Node) bool { return attr(n, "data-section") == sel.Value })
	case ByClass:
		return d.first(func(n *html.Node) bool {
			for _, c := range strings.Fields(attr(n, "class")) {
				if c == sel.Value {
					return true
				}
			}
			return false
		})
	case ByAnchor:
		link := d.first(func(n *html.Node) bool {
			return n.Data == "a" && attr(n, "href") == "#"+sel.Value
		})
		if link == nil {
			return nil
		}
		target := strings.TrimPrefix(attr(link, "href"), "#")
		return d.first(func(n *html.Node) bool { return attr(n, "id") == target })
	}
	return nil
}

func (d *Document) first(match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

// walk visits element nodes in document order until visit returns true.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n.Type == html.ElementNode && visit(n) {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if walk(c, visit) {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
