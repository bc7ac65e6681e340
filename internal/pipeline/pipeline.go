// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the batch extraction: enumerate source files,
// decode, extract, validate, and merge each one to completion before the
// next begins. The store is the only shared resource and is opened
// load-then-store per merge, so an interrupted run keeps everything
// merged so far.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/probelio/labextract/internal/convert"
	"github.com/probelio/labextract/internal/extract"
	"github.com/probelio/labextract/internal/normalize"
	"github.com/probelio/labextract/internal/store"
	"github.com/probelio/labextract/internal/textenc"
)

// BatchResult summarizes one source batch.
type BatchResult struct {
	// Files is the number of matching source files seen.
	Files int `yaml:"files"`

	// Records is the number of validated records merged.
	Records int `yaml:"records"`

	// Failed is the number of files that errored.
	Failed int `yaml:"failed"`
}

// HasFailures reports whether any file in the batch failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Pipeline wires the shared stages — decode, validate, merge — around a
// per-kind extraction step.
type Pipeline struct {
	store *store.Store
	log   io.Writer
}

// New returns a pipeline merging into st and writing per-file status
// lines to log.
func New(st *store.Store, log io.Writer) *Pipeline {
	return &Pipeline{store: st, log: log}
}

// ProcessCSVDir runs the delimited-export path over every .csv file in
// dir. A missing directory fails the batch; a failing file is reported
// and the batch continues.
func (p *Pipeline) ProcessCSVDir(dir string) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading export directory %s: %w", dir, err)
	}

	var res BatchResult
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		res.Files++

		text, err := textenc.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Fprintf(p.log, "failed:  %s (%v)\n", e.Name(), err)
			res.Failed++
			continue
		}

		n, sum, err := p.mergeText(extract.Delimited{}, text)
		if err != nil {
			fmt.Fprintf(p.log, "failed:  %s (%v)\n", e.Name(), err)
			res.Failed++
			continue
		}
		res.Records += n
		p.logMerge(e.Name(), n, sum)
	}

	fmt.Fprintf(p.log, "\nCSV batch: %d file(s), %d record(s) merged, %d failed\n",
		res.Files, res.Records, res.Failed)
	return res, nil
}

// ProcessPDFDir runs the markup path over every .pdf file in dir: convert
// with conv, decode the deposited HTML, normalize, extract, merge. The
// converter scratch directory outDir is cleared after each file.
func (p *Pipeline) ProcessPDFDir(dir string, conv convert.Converter, outDir string) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading report directory %s: %w", dir, err)
	}

	os.RemoveAll(outDir)

	var res BatchResult
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		res.Files++

		htmlPath, err := conv.Convert(filepath.Join(dir, e.Name()))
		if err != nil {
			fmt.Fprintf(p.log, "failed:  %s (%v)\n", e.Name(), err)
			res.Failed++
			os.RemoveAll(outDir)
			continue
		}

		text, err := textenc.ReadFile(htmlPath)
		if err != nil {
			fmt.Fprintf(p.log, "failed:  %s (%v)\n", e.Name(), err)
			res.Failed++
			os.RemoveAll(outDir)
			continue
		}

		n, sum, err := p.mergeText(extract.Markup{}, normalize.Normalize(text))
		os.RemoveAll(outDir)
		if err != nil {
			fmt.Fprintf(p.log, "failed:  %s (%v)\n", e.Name(), err)
			res.Failed++
			continue
		}
		res.Records += n
		p.logMerge(e.Name(), n, sum)
	}

	fmt.Fprintf(p.log, "\nPDF batch: %d file(s), %d record(s) merged, %d failed\n",
		res.Files, res.Records, res.Failed)
	return res, nil
}

// mergeText extracts candidates from text with x, validates them, and
// merges the survivors. An empty batch still merges, which rewrites the
// store unchanged.
func (p *Pipeline) mergeText(x extract.Extractor, text string) (int, store.MergeSummary, error) {
	batch := extract.Filter(x.Extract(text))
	sum, err := p.store.Merge(batch)
	return len(batch), sum, err
}

func (p *Pipeline) logMerge(name string, n int, sum store.MergeSummary) {
	fmt.Fprintf(p.log, "merged:  %s (%d record(s), %d new, %d replaced)\n",
		name, n, sum.Added, sum.Replaced)
	if sum.State == store.LoadCorrupt {
		fmt.Fprintf(p.log, "warning: store reset, previous content was unreadable\n")
	}
}
