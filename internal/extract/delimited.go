// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/probelio/labextract/internal/normalize"
	"github.com/probelio/labextract/pkg/types"
)

// Column offsets in a delimited export row. The exporter emits a fixed
// 13-column layout; the positions between the named ones carry flags and
// internal codes the pipeline ignores.
const (
	colName     = 0
	colValue    = 3
	colUnit     = 4
	colRange    = 5
	colOldValue = 7
	colDate     = 12

	delimitedFieldCount = 13
)

// delimitedRow guards candidate rows: a row must carry a ";TIMESTAMP;"
// marker, which truncated or wrapped rows lack.
var delimitedRow = regexp.MustCompile(`^.*;\d{2}/\d{2}/\d{4} \d{2}:\d{2};`)

// Delimited extracts candidates from semicolon-separated export rows.
type Delimited struct{}

// Extract scrubs the export text, then parses each row that passes the
// timestamp guard and carries the full column count. Shorter rows are
// dropped before any positional access.
func (Delimited) Extract(text string) []types.Measurement {
	text = scrubExport(text)

	var out []types.Measurement
	for _, line := range strings.Split(text, "\n") {
		if !delimitedRow.MatchString(line) {
			continue
		}
		row := strings.Split(strings.TrimSpace(line), ";")
		if len(row) < delimitedFieldCount {
			continue
		}
		out = append(out, types.Measurement{
			Date:     strings.TrimSpace(row[colDate]),
			OldValue: strings.TrimSpace(row[colOldValue]),
			Range:    strings.TrimSpace(row[colRange]),
			Unit:     strings.TrimSpace(row[colUnit]),
			Value:    strings.TrimSpace(row[colValue]),
			Name:     strings.TrimSpace(row[colName]),
		})
	}
	return out
}

// scrubExport applies the export pre-pass: collapse doubled spaces, drop
// stray " >" remnants and footnote asterisks, then the same decimal
// comma fix-up the markup path uses.
func scrubExport(s string) string {
	s = strings.ReplaceAll(s, "  ", " ")
	s = strings.ReplaceAll(s, "  ", " ")
	s = strings.ReplaceAll(s, " >", ">")
	s = strings.ReplaceAll(s, "*", "")
	return normalize.FixDecimalCommas(s)
}
