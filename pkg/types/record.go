// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Measurement is one extracted clinical measurement. All fields are kept
// verbatim as they appear in the source report; the pipeline guarantees
// syntactic shape only and never interprets units or reference ranges.
type Measurement struct {
	// Date is the sample timestamp, "DD/MM/YYYY HH:MM".
	Date string `json:"date" yaml:"date"`

	// OldValue is the previous result for the same measurement, when the
	// report carried one.
	OldValue string `json:"oldvalue" yaml:"oldvalue"`

	// Range is the reference range as printed, e.g. "3.5-5.5".
	Range string `json:"range" yaml:"range"`

	// Unit is the measurement unit as printed, e.g. "mmol/L".
	Unit string `json:"unit" yaml:"unit"`

	// Value is the measured value, validated to the form -?digits.digits*.
	Value string `json:"value" yaml:"value"`

	// Name is the measurement label, e.g. "Glukoz".
	Name string `json:"name" yaml:"name"`
}

// Key identifies a stored measurement. Two records with equal keys are the
// same logical measurement; a later one replaces the earlier one entirely.
type Key struct {
	Date string
	Name string
}

// Key returns the composite identity of m.
func (m Measurement) Key() Key {
	return Key{Date: m.Date, Name: m.Name}
}
