package sources

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrTableNotFound is returned when a page holds no table matching the selector.
var ErrTableNotFound = errors.New("table not found")

// Selector matches a table element by attribute. The class attribute matches
// when every listed class is present; other attributes match exactly.
type Selector map[string]string

func (s Selector) matches(n *html.Node) bool {
	for key, want := range s {
		got, ok := attr(n, key)
		if !ok {
			return false
		}
		if key == "class" {
			have := strings.Fields(got)
			for _, class := range strings.Fields(want) {
				if !slices.Contains(have, class) {
					return false
				}
			}
			continue
		}
		if got != want {
			return false
		}
	}
	return true
}

// ReadTable parses the page and returns the text of every cell of the first
// matching table, row by row. The first skip rows are dropped. Line breaks
// inside a cell are kept as "\n" so callers can split packed cells.
func ReadTable(r io.Reader, sel Selector, skip int) ([][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	table := findTable(doc, sel)
	if table == nil {
		return nil, ErrTableNotFound
	}

	var rows [][]string
	for _, tr := range rowsOf(table) {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
				cells = append(cells, textOf(c))
			}
		}
		rows = append(rows, cells)
	}

	if skip >= len(rows) {
		return nil, nil
	}
	return rows[skip:], nil
}

func findTable(n *html.Node, sel Selector) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Table && sel.matches(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c, sel); t != nil {
			return t
		}
	}
	return nil
}

// rowsOf collects the rows of a table without descending into nested tables.
func rowsOf(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Tr:
				rows = append(rows, c)
			case atom.Thead, atom.Tbody, atom.Tfoot:
				walk(c)
			}
		}
	}
	walk(table)
	return rows
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
		case n.Type == html.ElementNode && n.DataAtom == atom.Br:
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
