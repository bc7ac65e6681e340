// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/probelio/labextract/pkg/types"
)

// markupLine is the full-line grammar for normalized report rows:
// TIMESTAMP|OLDVALUE|RANGE|UNIT|VALUE|NAME|REST. REST is page furniture
// trailing the name cell and is discarded. The match is line-anchored: a
// line either is a row or it is not, there is no best-effort recovery.
var markupLine = regexp.MustCompile(
	`(?m)^(\d{2}/\d{2}/\d{4} \d{2}:\d{2})\|(\d+(?:[.,]\d+)?)\|([^|]+)\|([^|]+)\|(\d+(?:[.,]\d+)?)\|([^|]*)\|(.*)$`)

// Markup extracts candidates from the pipe-delimited lines produced by
// the markup normalizer.
type Markup struct{}

// Extract parses every line of text matching the row grammar into a
// candidate measurement. Non-matching lines are skipped.
func (Markup) Extract(text string) []types.Measurement {
	var out []types.Measurement
	for _, m := range markupLine.FindAllStringSubmatch(text, -1) {
		out = append(out, types.Measurement{
			Date:     strings.TrimSpace(m[1]),
			OldValue: strings.TrimSpace(m[2]),
			Range:    strings.TrimSpace(m[3]),
			Unit:     strings.TrimSpace(m[4]),
			Value:    strings.TrimSpace(m[5]),
			Name:     strings.TrimSpace(m[6]),
		})
	}
	return out
}
