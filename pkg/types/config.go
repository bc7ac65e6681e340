package types

// SourcesConfig names the drop directories for incoming source files.
type SourcesConfig struct {
	// PDFDir holds incoming PDF reports.
	PDFDir string `json:"pdf_dir" yaml:"pdf_dir"`

	// CSVDir holds incoming semicolon-delimited exports.
	CSVDir string `json:"csv_dir" yaml:"csv_dir"`
}

// ConvertConfig holds settings for the PDF-to-HTML conversion step.
type ConvertConfig struct {
	// ExeDir is the directory containing the pdf2htmlEX binary.
	ExeDir string `json:"exe_dir" yaml:"exe_dir"`

	// OutDir is the scratch directory the converter deposits HTML into.
	// It is removed after each source file.
	OutDir string `json:"out_dir" yaml:"out_dir"`
}

// StoreConfig holds settings for the merged measurement store.
type StoreConfig struct {
	// DataFile is the JSON store path (default "data.json").
	DataFile string `json:"data_file" yaml:"data_file"`
}

// IndexConfig holds settings for the SQLite query index.
type IndexConfig struct {
	// DBFile is the index database path (default "index/labextract.db").
	DBFile string `json:"db_file" yaml:"db_file"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ReportConfig holds settings for the optional run report.
type ReportConfig struct {
	// File is the run report path; empty disables the report.
	File string `json:"file" yaml:"file"`
}

// PipelineConfig groups all stage configurations. The CLI builds it from
// flags and the config file and passes it into the pipeline at
// construction; stages hold no package-level state.
type PipelineConfig struct {
	Sources SourcesConfig `json:"sources" yaml:"sources"`
	Convert ConvertConfig `json:"convert" yaml:"convert"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Index   IndexConfig   `json:"index" yaml:"index"`
	Report  ReportConfig  `json:"report" yaml:"report"`
}
