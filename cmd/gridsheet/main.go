// Package main provides the CLI entry point for gridsheet.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/grid"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/tablefile"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/xlsxio"
)

var (
	configPath string
	verbose    bool
	sheetName  string
	printArea  bool
	pretty     bool

	opts = gridsheet.DefaultOptions()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Inspect and edit spreadsheet grids",
		Long: `gridsheet loads a worksheet (xlsx, JSON, JSON5 or YAML) into a dense grid
with merged cells, and lets you inspect, search, edit and convert it.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML options file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Worksheet to read (default: first sheet)")
	rootCmd.PersistentFlags().BoolVar(&printArea, "print-area", false, "Read only the sheet's print area")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(
		newInspectCmd(),
		newConvertCmd(),
		newEditCmd(),
		newFindCmd(),
		newSelectCmd(),
		newLabelCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	log.SetPrefix("gridsheet: ")
	log.SetFlags(0)
	log.SetOutput(io.Discard)
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	}

	opts = gridsheet.DefaultOptions()
	if configPath != "" {
		loaded, err := gridsheet.LoadOptions(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		opts = loaded
		log.Printf("options loaded from %s", configPath)
	}
	return nil
}

func isWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}
	return false
}

// loadGrid reads path and converts it into a grid using the current options.
func loadGrid(path string) (*grid.Grid, string, error) {
	var (
		table models.SparseTable
		name  = sheetName
	)
	if isWorkbook(path) {
		sheet, err := xlsxio.Load(path, xlsxio.ReadOptions{Sheet: sheetName, PrintArea: printArea})
		if err != nil {
			return nil, "", err
		}
		table, name = sheet.Table, sheet.Name
	} else {
		var err error
		if table, err = tablefile.Load(path); err != nil {
			return nil, "", err
		}
	}
	log.Printf("read %s: %d rows, %d merges, %d style hints", path, len(table.Rows), len(table.Merges), len(table.Styles))

	importOpts, err := opts.ImportOptions()
	if err != nil {
		return nil, "", err
	}
	g, err := gridsheet.Import(table, importOpts)
	if err != nil {
		return nil, "", err
	}
	rows, cols := g.Dimensions()
	log.Printf("grid %dx%d", rows, cols)
	return g, name, nil
}

func saveGrid(path, sheet string, g *grid.Grid) error {
	table := gridsheet.Export(g)
	log.Printf("write %s: %d rows, %d merges", path, len(table.Rows), len(table.Merges))
	if isWorkbook(path) {
		return xlsxio.Save(path, sheet, table)
	}
	return tablefile.Save(path, table)
}
