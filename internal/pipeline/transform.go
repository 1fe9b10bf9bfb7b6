package pipeline

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Transform rewrites every tree node matching its predicate, in place.
// Matching nodes are collected before any rewrite runs, so a rewrite may
// reparent nodes freely without corrupting the traversal.
type Transform struct {
	Match   func(*html.Node) bool
	Rewrite func(*html.Node)
}

// Apply runs the transform over the tree rooted at root.
func (t Transform) Apply(root *html.Node) {
	var matched []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if t.Match(n) {
			matched = append(matched, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, n := range matched {
		t.Rewrite(n)
	}
}

// figureTransform promotes images into captioned figures: every img is
// wrapped in a figure, and a title attribute becomes a sibling figcaption.
// Images the author already placed inside a figure are left alone.
var figureTransform = Transform{
	Match:   isWrappableImage,
	Rewrite: wrapInFigure,
}

func isWrappableImage(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Img {
		return false
	}
	return n.Parent == nil || n.Parent.DataAtom != atom.Figure
}

// wrapInFigure replaces img with figure>img(+figcaption). The img node and
// all its attributes, title included, are untouched. An image without a
// title gets a bare figure with no figcaption at all.
func wrapInFigure(img *html.Node) {
	parent := img.Parent
	if parent == nil {
		return
	}

	figure := &html.Node{Type: html.ElementNode, Data: "figure", DataAtom: atom.Figure}
	parent.InsertBefore(figure, img)
	parent.RemoveChild(img)
	figure.AppendChild(img)

	if title := attrValue(img, "title"); title != "" {
		caption := &html.Node{Type: html.ElementNode, Data: "figcaption", DataAtom: atom.Figcaption}
		caption.AppendChild(&html.Node{Type: html.TextNode, Data: title})
		figure.AppendChild(caption)
	}
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// parseFragment parses an HTML fragment as body content and returns a
// synthetic body node owning the parsed children.
func parseFragment(fragment string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// renderChildren serializes the children of root back to an HTML string.
func renderChildren(root *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
