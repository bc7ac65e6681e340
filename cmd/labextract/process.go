package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/probelio/labextract/internal/convert"
	"github.com/probelio/labextract/internal/pipeline"
	"github.com/probelio/labextract/internal/store"
	"github.com/probelio/labextract/pkg/types"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Extract measurements from CSV and PDF drops into the store",
	Long: `Process runs the extraction pipeline: CSV exports first, then PDF
reports. Each source file is decoded, parsed, validated, and merged into
the JSON store before the next file begins, so an interrupted run keeps
everything merged so far. A failing source file is reported and skipped;
a missing drop directory fails its batch but not the other one.`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().String("pdf-dir", "", `directory of incoming PDF reports (default "pdf")`)
	processCmd.Flags().String("csv-dir", "", `directory of incoming CSV exports (default "csv")`)
	processCmd.Flags().String("exe-dir", "", `directory containing the pdf2htmlEX binary (default "exe")`)
	processCmd.Flags().String("out-dir", "", `scratch directory for converter output (default "out")`)
	processCmd.Flags().String("data-file", "", `JSON store path (default "data.json")`)
	processCmd.Flags().String("report", "", "run report YAML path; empty disables the report")
	processCmd.Flags().Bool("skip-pdf", false, "skip the PDF batch")
	processCmd.Flags().Bool("skip-csv", false, "skip the CSV batch")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := types.PipelineConfig{
		Sources: types.SourcesConfig{
			PDFDir: flagOrConfig(cmd, "pdf-dir", "sources.pdf_dir", "pdf"),
			CSVDir: flagOrConfig(cmd, "csv-dir", "sources.csv_dir", "csv"),
		},
		Convert: types.ConvertConfig{
			ExeDir: flagOrConfig(cmd, "exe-dir", "convert.exe_dir", "exe"),
			OutDir: flagOrConfig(cmd, "out-dir", "convert.out_dir", "out"),
		},
		Store: types.StoreConfig{
			DataFile: flagOrConfig(cmd, "data-file", "store.data_file", "data.json"),
		},
		Report: types.ReportConfig{
			File: flagOrConfig(cmd, "report", "report.file", ""),
		},
	}
	skipPDF, _ := cmd.Flags().GetBool("skip-pdf")
	skipCSV, _ := cmd.Flags().GetBool("skip-csv")

	p := pipeline.New(store.New(cfg.Store.DataFile), os.Stdout)
	rep := pipeline.NewReport(cfg.Store.DataFile)

	var failed int

	if !skipCSV {
		res, err := p.ProcessCSVDir(cfg.Sources.CSVDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "csv batch: %v\n", err)
			failed++
		}
		rep.CSV = &res
	}

	if !skipPDF {
		res, err := runPDFBatch(p, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pdf batch: %v\n", err)
			failed++
		}
		rep.PDF = &res
	}

	rep.Finish()
	if cfg.Report.File != "" {
		if err := pipeline.WriteReport(rep, cfg.Report.File); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d batch(es) failed", failed)
	}
	return nil
}

func runPDFBatch(p *pipeline.Pipeline, cfg types.PipelineConfig) (pipeline.BatchResult, error) {
	conv, err := convert.NewPDF2HTML(cfg.Convert, os.Stdout)
	if err != nil {
		return pipeline.BatchResult{}, err
	}
	return p.ProcessPDFDir(cfg.Sources.PDFDir, conv, cfg.Convert.OutDir)
}
