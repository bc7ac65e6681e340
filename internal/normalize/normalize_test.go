// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"strings"
	"testing"
)

func TestStripAttributes(t *testing.T) {
	in := `<div class="t m0" id="pf1" data-page-no="1" data-data='{"ctm":[1,0]}'><span class="fc2">x</span></div>`
	got := StripAttributes(in)
	for _, attr := range []string{"class=", "id=", "data-data=", "data-page-no="} {
		if strings.Contains(got, attr) {
			t.Errorf("StripAttributes left %q in %q", attr, got)
		}
	}
	if !strings.Contains(got, "x") {
		t.Errorf("StripAttributes dropped text content: %q", got)
	}
}

func TestTightenClosingBracket(t *testing.T) {
	if got := TightenClosingBracket("<div   ><span >"); got != "<div><span>" {
		t.Errorf("TightenClosingBracket = %q", got)
	}
}

func TestBoundaryRules(t *testing.T) {
	in := "a</div></div><div><div>b</div><div>c"
	got := MarkCellBoundaries(MarkRowBoundaries(in))
	if got != "a|b c" {
		t.Errorf("boundary rules = %q, want %q", got, "a|b c")
	}
}

func TestScrubCells(t *testing.T) {
	tests := []struct{ in, want string }{
		{"7.6*", "7.6"},
		{"a| b |c", "a|b|c"},
		{"| x |", "|x|"},
	}
	for _, tt := range tests {
		if got := ScrubCells(tt.in); got != tt.want {
			t.Errorf("ScrubCells(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitAtTimestamps(t *testing.T) {
	in := "header 01/10/2023 09:15|a|b 02/10/2023 10:00|c"
	got := SplitAtTimestamps(in)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "01/10/2023 09:15") || !strings.HasPrefix(lines[2], "02/10/2023 10:00") {
		t.Errorf("timestamps not at line starts: %q", got)
	}
}

func TestKeepTimestampLines(t *testing.T) {
	in := "Tetkik Sonuç Birim\n01/10/2023 09:15|7.6|x\npage 2 of 3\n02/10/2023 10:00|1.0|y"
	got := KeepTimestampLines(in)
	want := "01/10/2023 09:15|7.6|x\n02/10/2023 10:00|1.0|y"
	if got != want {
		t.Errorf("KeepTimestampLines = %q, want %q", got, want)
	}
}

func TestFixDecimalCommas(t *testing.T) {
	tests := []struct{ in, want string }{
		{"7,8", "7.8"},
		{"3.5-5,5", "3.5-5.5"},
		{"1,234,5", "1.234.5"},
		{"no digits, here", "no digits, here"},
		{"4,5 and 6,25", "4.5 and 6.25"},
	}
	for _, tt := range tests {
		if got := FixDecimalCommas(tt.in); got != tt.want {
			t.Errorf("FixDecimalCommas(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestNormalizeReportPage runs the whole chain over a reduced converter
// page: a banner, a header row, and one measurement row spread across
// nested cell wrappers.
func TestNormalizeReportPage(t *testing.T) {
	in := `<div id="page1" data-page-no="1">` +
		`<div class="t">Tetkik Ad&#305; Sonu&#231; Birim</div>` +
		`<div class="row" >` +
		`<div><div>01/10/2023 09:15</div></div>` +
		`<div><div>7.6*</div></div>` +
		`<div><div>3.5-5,5</div></div>` +
		`<div><div>mmol/L</div></div>` +
		`<div><div>7,8</div></div>` +
		`<div><div>Glukoz</div></div>` +
		`<div><div>sayfa 1</div></div>` +
		`</div></div>`

	got := Normalize(in)
	want := "01/10/2023 09:15|7.6|3.5-5.5|mmol/L|7.8|Glukoz|sayfa 1"
	if got != want {
		t.Errorf("Normalize = %q, want %q", got, want)
	}
}

func TestNormalizeNoRows(t *testing.T) {
	if got := Normalize("<div><span>no measurements here</span></div>"); got != "" {
		t.Errorf("Normalize = %q, want empty", got)
	}
}
