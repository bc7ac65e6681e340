// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textenc decodes raw source bytes into UTF-8 text. Hospital
// exports arrive in whatever encoding the exporting workstation used —
// UTF-8 with or without BOM, windows-1254, ISO-8859-9 — so every read
// goes through charset detection first.
package textenc

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw bytes to a UTF-8 string using the best-guess
// charset. Valid UTF-8 passes through untouched, minus a BOM; anything
// else is decoded with the detected encoding. Detection failures fall
// back to treating the bytes as UTF-8 rather than erroring: a wrong guess
// mangles text, but the downstream line grammars reject mangled rows, so
// a best-effort decode is always safe to return.
func Decode(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)

	if utf8.Valid(raw) {
		return string(raw), nil
	}

	best, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return string(raw), nil
	}

	enc, err := htmlindex.Get(best.Charset)
	if err != nil {
		return string(raw), nil
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("decoding %s input: %w", best.Charset, err)
	}
	return string(decoded), nil
}

// ReadFile reads path and decodes its content.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(raw)
}
