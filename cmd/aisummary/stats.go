package aisummary

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shawndavis1/ai-test-framework/internal/console"
	"github.com/shawndavis1/ai-test-framework/internal/loader"
	"github.com/shawndavis1/ai-test-framework/internal/report"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [results-dir]",
	Short: "Print the statistics block sent to the model, without calling it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		s, err := loader.New(console.NewTextEmitter(os.Stderr), logger).Load(resultsDir(args, cfg))
		if err != nil {
			return err
		}
		return printStats(os.Stdout, s, jsonOutput)
	},
}

func printStats(w io.Writer, s *models.RunSummary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	text, err := report.Input(s)
	if err != nil {
		return err
	}
	fmt.Fprint(w, text)
	return nil
}
