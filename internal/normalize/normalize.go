// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize collapses pdf2htmlEX report markup into flat,
// pipe-delimited candidate lines, one measurement row per line.
//
// The transformation is a fixed chain of total rewrite rules applied in
// order over the whole text. Order matters: the boundary rules key on tag
// adjacency that the tag-stripping rule destroys, and the timestamp line
// split must run after entity decoding so dates hidden behind entities
// line up. No rule errors; input with no recognizable rows normalizes to
// the empty string.
package normalize

import (
	"html"
	"regexp"
	"strings"
)

// Rule is one total rewrite step. A rule that matches nothing returns its
// input unchanged.
type Rule struct {
	Name  string
	Apply func(string) string
}

var (
	attrClass     = regexp.MustCompile(`class="[^"]*"`)
	attrID        = regexp.MustCompile(`id="[^"]*"`)
	attrData      = regexp.MustCompile(`data-data='[^']*'`)
	attrPageNo    = regexp.MustCompile(`data-page-no="[^"]*"`)
	spaceBeforeGT = regexp.MustCompile(` +>`)
	timestamp     = regexp.MustCompile(`\d{2}/\d{2}/\d{4} \d{2}:\d{2}`)
	timestampLine = regexp.MustCompile(`(?m)^\d{2}/\d{2}/\d{4} \d{2}:\d{2}.*$`)
	groupedDigits = regexp.MustCompile(`\d+(?:,\d+)+`)
)

// Rules is the normalization chain in application order.
var Rules = []Rule{
	{"strip-attributes", StripAttributes},
	{"tighten-closing-bracket", TightenClosingBracket},
	{"mark-row-boundaries", MarkRowBoundaries},
	{"mark-cell-boundaries", MarkCellBoundaries},
	{"strip-wrapper-tags", StripWrapperTags},
	{"decode-entities", DecodeEntities},
	{"scrub-cells", ScrubCells},
	{"split-at-timestamps", SplitAtTimestamps},
	{"keep-timestamp-lines", KeepTimestampLines},
	{"fix-decimal-commas", FixDecimalCommas},
}

// Normalize runs the full chain and returns candidate lines ready for the
// pipe grammar.
func Normalize(text string) string {
	for _, r := range Rules {
		text = r.Apply(text)
	}
	return text
}

// StripAttributes removes the class, id, data-data and data-page-no
// attributes pdf2htmlEX decorates every tag with. data-data is
// single-quoted in the converter output; the rest are double-quoted.
func StripAttributes(s string) string {
	s = attrClass.ReplaceAllString(s, "")
	s = attrID.ReplaceAllString(s, "")
	s = attrData.ReplaceAllString(s, "")
	s = attrPageNo.ReplaceAllString(s, "")
	return s
}

// TightenClosingBracket drops the whitespace left behind before ">" once
// attributes are stripped, so the boundary rules below see exact tag runs.
func TightenClosingBracket(s string) string {
	return spaceBeforeGT.ReplaceAllString(s, ">")
}

// MarkRowBoundaries turns the nested wrapper close/open sequence between
// adjacent cells into a pipe.
func MarkRowBoundaries(s string) string {
	return strings.ReplaceAll(s, "</div></div><div><div>", "|")
}

// MarkCellBoundaries turns sibling wrapper adjacency within a cell into a
// single space.
func MarkCellBoundaries(s string) string {
	return strings.ReplaceAll(s, "</div><div>", " ")
}

// StripWrapperTags removes the remaining bare div and span tags, leaving
// bare text.
func StripWrapperTags(s string) string {
	for _, tag := range []string{"<div>", "</div>", "<span>", "</span>"} {
		s = strings.ReplaceAll(s, tag, "")
	}
	return s
}

// DecodeEntities resolves HTML entity references to literal characters.
func DecodeEntities(s string) string {
	return html.UnescapeString(s)
}

// ScrubCells drops footnote asterisks and the padding around pipes.
func ScrubCells(s string) string {
	s = strings.ReplaceAll(s, "*", "")
	s = strings.ReplaceAll(s, "| ", "|")
	s = strings.ReplaceAll(s, " |", "|")
	return s
}

// SplitAtTimestamps inserts a line break before every timestamp token so
// each record starts its own line regardless of page wrapping.
func SplitAtTimestamps(s string) string {
	return timestamp.ReplaceAllString(s, "\n$0")
}

// KeepTimestampLines discards every line that does not begin with a
// timestamp: column headers, page furniture, the patient banner.
func KeepTimestampLines(s string) string {
	return strings.Join(timestampLine.FindAllString(s, -1), "\n")
}

// FixDecimalCommas rewrites comma-grouped digit runs with dots, undoing
// the Turkish locale's decimal comma before numeric validation.
func FixDecimalCommas(s string) string {
	return groupedDigits.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ReplaceAll(m, ",", ".")
	})
}
