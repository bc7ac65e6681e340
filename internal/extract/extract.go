// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns source text into validated measurement records.
//
// Two extractors share the pipeline: Markup for the pipe-delimited lines
// the normalizer emits, Delimited for raw semicolon-separated exports.
// Both produce candidates that go through the same validator; candidates
// that fail validation are filtered out, never reported.
package extract

import "github.com/probelio/labextract/pkg/types"

// Extractor parses source text into candidate measurements. Candidates
// are not yet validated.
type Extractor interface {
	Extract(text string) []types.Measurement
}

// Filter returns the valid subset of candidates in order.
func Filter(candidates []types.Measurement) []types.Measurement {
	var valid []types.Measurement
	for _, c := range candidates {
		if Valid(c) {
			valid = append(valid, c)
		}
	}
	return valid
}
