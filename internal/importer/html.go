package importer

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/nikbrunner/pricedex/internal/model"
)

// Parse extracts catalog entries from a saved marketplace result page.
// A listing is any element carrying a "product" class token or a
// data-product attribute; inside it the first anchor supplies name and
// URL, the first "price"-classed element the raw price text, and the
// container's data-category attribute the category. Values are taken
// as-is: catalog validation decides later what is usable.
func Parse(r io.Reader, source string) ([]model.Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var entries []model.Entry

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && isProductNode(n) {
			if e, ok := parseProduct(n, source); ok {
				entries = append(entries, e)
			}
			return // Don't recurse into a handled listing
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return entries, nil
}

// parseProduct pulls the entry fields out of one listing container.
func parseProduct(n *html.Node, source string) (model.Entry, bool) {
	anchor := findFirst(n, func(c *html.Node) bool {
		return c.Data == "a" && getAttr(c, "href") != ""
	})
	if anchor == nil {
		// A listing without a link is unusable
		return model.Entry{}, false
	}

	name := getTextContent(anchor)
	if nameNode := findFirst(n, func(c *html.Node) bool {
		return hasClassToken(c, "title") || hasClassToken(c, "name")
	}); nameNode != nil {
		name = getTextContent(nameNode)
	}

	var priceText string
	if priceNode := findFirst(n, func(c *html.Node) bool {
		return hasClassToken(c, "price")
	}); priceNode != nil {
		priceText = getTextContent(priceNode)
	}

	entry := model.Entry{
		ID:        getAttr(n, "data-id"),
		Name:      name,
		Category:  getAttr(n, "data-category"),
		PriceText: priceText,
		Source:    source,
		URL:       getAttr(anchor, "href"),
	}
	return entry, true
}

// isProductNode reports whether a node is a listing container.
func isProductNode(n *html.Node) bool {
	if hasAttr(n, "data-product") {
		return true
	}
	return hasClassToken(n, "product")
}

// hasAttr reports whether the attribute is present, regardless of value.
func hasAttr(n *html.Node, key string) bool {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return true
		}
	}
	return false
}

// findFirst walks the subtree depth-first and returns the first
// element node matching the predicate, or nil.
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if match(c) {
				return c
			}
			if found := findFirst(c, match); found != nil {
				return found
			}
		}
	}
	return nil
}

// hasClassToken reports whether the node's class attribute contains
// the given token.
func hasClassToken(n *html.Node, token string) bool {
	for _, class := range strings.Fields(getAttr(n, "class")) {
		if strings.EqualFold(class, token) {
			return true
		}
	}
	return false
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, or empty string.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
