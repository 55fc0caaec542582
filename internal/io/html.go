package io

import (
	"fmt"
	"strconv"
	"strings"

	tberrors "github.com/paveg/tabclean/internal/errors"
	"github.com/paveg/tabclean/internal/table"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// htmlCell is a <td> or <th> before span expansion
type htmlCell struct {
	text    string
	header  bool
	colspan int
	rowspan int
}

// pendingSpan carries a cell into following rows of a rowspan
type pendingSpan struct {
	index int
	text  string
	rows  int
}

// Read reads the first <table> of the document and returns a Table.
//
// Header rows are the rows of <thead>, or without a <thead> the leading rows
// made only of <th> cells; the last header row names the columns. Without
// any header row the columns are named 0..n-1. colspan and rowspan are
// expanded by repeating the cell text.
func (r *HTMLReader) Read() (*table.Table, error) {
	decoded, err := charset.NewReader(r.reader, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting HTML charset: %w", err)
	}

	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tbl := findTable(doc)
	if tbl == nil {
		return nil, tberrors.ErrNoTables
	}

	head, body, foot := tableSections(tbl)
	if len(head) == 0 {
		for len(body) > 0 && allHeaderCells(body[0]) {
			head = append(head, body[0])
			body = body[1:]
		}
	}
	body = append(body, foot...)

	headRows := expandSpans(head)
	bodyRows := expandSpans(body)

	width := 0
	for _, row := range headRows {
		width = max(width, len(row))
	}
	for _, row := range bodyRows {
		width = max(width, len(row))
	}

	headers := make([]string, width)
	for i := range headers {
		headers[i] = strconv.Itoa(i)
	}
	if len(headRows) > 0 {
		last := headRows[len(headRows)-1]
		for i := range headers {
			if i < len(last) && last[i] != "" {
				headers[i] = last[i]
			}
		}
	}

	return buildTable(headers, bodyRows, newCellParser(r.options.NullValues, r.options.Thousands), r.mem)
}

// findTable returns the first <table> element in document order
func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Table {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTable(c); found != nil {
			return found
		}
	}
	return nil
}

// tableSections splits the rows of a table into thead, tbody and tfoot rows.
// Rows of nested tables are not included.
func tableSections(tbl *html.Node) (head, body, foot [][]htmlCell) {
	for c := tbl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead:
			head = append(head, sectionRows(c)...)
		case atom.Tbody:
			body = append(body, sectionRows(c)...)
		case atom.Tfoot:
			foot = append(foot, sectionRows(c)...)
		case atom.Tr:
			body = append(body, rowCells(c))
		}
	}
	return head, body, foot
}

func sectionRows(section *html.Node) [][]htmlCell {
	var rows [][]htmlCell
	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Tr {
			rows = append(rows, rowCells(c))
		}
	}
	return rows
}

func rowCells(tr *html.Node) []htmlCell {
	var cells []htmlCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		cells = append(cells, htmlCell{
			text:    strings.Join(strings.Fields(nodeText(c)), " "),
			header:  c.DataAtom == atom.Th,
			colspan: spanAttr(c, "colspan"),
			rowspan: spanAttr(c, "rowspan"),
		})
	}
	return cells
}

func allHeaderCells(row []htmlCell) bool {
	if len(row) == 0 {
		return false
	}
	for _, c := range row {
		if !c.header {
			return false
		}
	}
	return true
}

// nodeText concatenates the text nodes below n
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// spanAttr reads colspan or rowspan, defaulting to 1 for missing or invalid values
func spanAttr(n *html.Node, key string) int {
	for _, a := range n.Attr {
		if a.Key != key {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(a.Val))
		if err != nil || v < 1 {
			return 1
		}
		return v
	}
	return 1
}

// expandSpans turns rows of cells into rows of texts, repeating a cell over
// its colspan and carrying it down its rowspan. Rows implied only by a
// rowspan are appended at the end.
func expandSpans(rows [][]htmlCell) [][]string {
	var out [][]string
	var remainder []pendingSpan

	for _, row := range rows {
		var texts []string
		var next []pendingSpan
		index := 0

		for _, cell := range row {
			for len(remainder) > 0 && remainder[0].index <= index {
				prev := remainder[0]
				remainder = remainder[1:]
				texts = append(texts, prev.text)
				if prev.rows > 1 {
					next = append(next, pendingSpan{index: prev.index, text: prev.text, rows: prev.rows - 1})
				}
				index++
			}
			for range cell.colspan {
				texts = append(texts, cell.text)
				if cell.rowspan > 1 {
					next = append(next, pendingSpan{index: index, text: cell.text, rows: cell.rowspan - 1})
				}
				index++
			}
		}
		for _, prev := range remainder {
			texts = append(texts, prev.text)
			if prev.rows > 1 {
				next = append(next, pendingSpan{index: prev.index, text: prev.text, rows: prev.rows - 1})
			}
		}

		out = append(out, texts)
		remainder = next
	}

	for len(remainder) > 0 {
		var texts []string
		var next []pendingSpan
		for _, prev := range remainder {
			texts = append(texts, prev.text)
			if prev.rows > 1 {
				next = append(next, pendingSpan{index: prev.index, text: prev.text, rows: prev.rows - 1})
			}
		}
		out = append(out, texts)
		remainder = next
	}
	return out
}
