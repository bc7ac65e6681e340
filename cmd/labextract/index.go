package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/probelio/labextract/internal/index"
	"github.com/probelio/labextract/internal/store"
	"github.com/probelio/labextract/pkg/types"
)

const defaultIndexDB = "index/labextract.db"

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the SQLite query index from the store",
	Long: `Index loads the JSON store and rebuilds the SQLite index used by the
query command. The index is derived data and safe to delete; rebuilding
replaces its content wholesale.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("data-file", "", `JSON store path (default "data.json")`)
	indexCmd.Flags().String("index-db", "", `index database path (default "`+defaultIndexDB+`")`)

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	dataFile := flagOrConfig(cmd, "data-file", "store.data_file", "data.json")
	dbFile := flagOrConfig(cmd, "index-db", "index.db_file", defaultIndexDB)

	db, err := index.Open(types.IndexConfig{
		DBFile:     dbFile,
		MaxResults: viper.GetInt("index.max_results"),
	})
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := db.Rebuild(store.New(dataFile))
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d measurement(s) from %s\n", n, dataFile)
	return nil
}
