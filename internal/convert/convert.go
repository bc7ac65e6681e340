// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert invokes pdf2htmlEX to turn a PDF report into the HTML
// the normalizer consumes. The converter is an external collaborator:
// its exit status and diagnostics are surfaced to the operator but never
// alter extracted data.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/probelio/labextract/pkg/types"
)

const converterBin = "pdf2htmlEX"

// Converter turns one PDF into browser-displayable HTML and returns the
// path of the generated file.
type Converter interface {
	Convert(pdfPath string) (htmlPath string, err error)
}

// executor abstracts command execution for testing.
type executor interface {
	Run(name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) Run(name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

// PDF2HTML runs the pdf2htmlEX binary from a configured directory,
// depositing <base>.html under the scratch output directory.
type PDF2HTML struct {
	cfg  types.ConvertConfig
	exec executor
	log  io.Writer
}

// NewPDF2HTML returns a converter using the binary in cfg.ExeDir,
// writing converter diagnostics to log. It verifies the binary exists
// before returning.
func NewPDF2HTML(cfg types.ConvertConfig, log io.Writer) (*PDF2HTML, error) {
	bin := filepath.Join(cfg.ExeDir, converterBin)
	if _, err := os.Stat(bin); err != nil {
		return nil, fmt.Errorf("converter binary not found at %s: %w", bin, err)
	}
	return &PDF2HTML{cfg: cfg, exec: osExecutor{}, log: log}, nil
}

// Convert runs the converter on pdfPath. The output path is derived from
// the PDF base name; a run that exits zero but deposits nothing there is
// still a failure.
func (c *PDF2HTML) Convert(pdfPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	htmlPath := filepath.Join(c.cfg.OutDir, base+".html")

	args := []string{
		"--embed", "cfijo",
		"--dest-dir", c.cfg.OutDir,
		"--optimize-text", "1",
		"--process-nontext", "0",
		pdfPath,
	}

	var stderr bytes.Buffer
	err := c.exec.Run(filepath.Join(c.cfg.ExeDir, converterBin), args, c.log, &stderr)
	if stderr.Len() > 0 {
		fmt.Fprint(c.log, stderr.String())
	}
	if err != nil {
		return "", fmt.Errorf("running %s on %s: %w", converterBin, filepath.Base(pdfPath), err)
	}

	if _, err := os.Stat(htmlPath); err != nil {
		return "", fmt.Errorf("%s produced no output for %s: %w", converterBin, filepath.Base(pdfPath), err)
	}
	return htmlPath, nil
}
