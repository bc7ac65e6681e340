// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"

	"github.com/probelio/labextract/pkg/types"
)

var (
	datePrefix = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}`)
	valueShape = regexp.MustCompile(`^-?\d+\.\d*$`)
)

// Valid reports whether m is a well-formed measurement: a date leading
// with "DD/MM/YYYY HH:MM", a value of the form -?digits.digits* (decimal
// point mandatory, fractional digits optional), and a non-empty name.
// OldValue, Range and Unit pass through unchecked; the pipeline never
// interprets them.
func Valid(m types.Measurement) bool {
	return m.Date != "" &&
		datePrefix.MatchString(m.Date) &&
		valueShape.MatchString(m.Value) &&
		m.Name != ""
}
