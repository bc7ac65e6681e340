package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/probelio/labextract/internal/index"
	"github.com/probelio/labextract/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the measurement index",
	Long: `Query searches the SQLite index by measurement name substring and date
prefix. Run "labextract index" first to build or refresh the index.`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().String("index-db", "", `index database path (default "`+defaultIndexDB+`")`)
	queryCmd.Flags().String("name", "", "filter by measurement name substring")
	queryCmd.Flags().String("date", "", `filter by date prefix (e.g. "01/10/2023")`)
	queryCmd.Flags().Int("limit", 0, "maximum number of results (default 20)")
	queryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	dbFile := flagOrConfig(cmd, "index-db", "index.db_file", defaultIndexDB)
	name, _ := cmd.Flags().GetString("name")
	date, _ := cmd.Flags().GetString("date")
	limit, _ := cmd.Flags().GetInt("limit")
	asJSON, _ := cmd.Flags().GetBool("json")

	db, err := index.Open(types.IndexConfig{
		DBFile:     dbFile,
		MaxResults: viper.GetInt("index.max_results"),
	})
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := db.Query(index.QueryOptions{Name: name, DatePrefix: date, Limit: limit})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(results)
	}

	for _, m := range results {
		fmt.Printf("%s  %-30s %s %s (%s)\n", m.Date, m.Name, m.Value, m.Unit, m.Range)
	}
	fmt.Printf("%d result(s)\n", len(results))
	return nil
}
