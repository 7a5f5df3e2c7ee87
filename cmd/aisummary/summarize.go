package aisummary

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shawndavis1/ai-test-framework/internal/console"
	"github.com/shawndavis1/ai-test-framework/internal/output"
	"github.com/shawndavis1/ai-test-framework/internal/summary"
	"github.com/shawndavis1/ai-test-framework/pkg/models"
	"github.com/spf13/cobra"
)

func newProfileCmd(name string) *cobra.Command {
	profile, ok := summary.Lookup(name)
	if !ok {
		panic("unknown profile " + name)
	}

	return &cobra.Command{
		Use:   profile.Name + " [results-dir]",
		Short: profile.Short,
		Long: fmt.Sprintf(`%s.

RESULTS-DIR defaults to "reports". When it contains summary.json that report
is summarized as-is; otherwise every *-result.json file is counted.

Examples:
  aisummary %[2]s
  aisummary %[2]s allure-results --output summary.txt
  aisummary %[2]s reports --provider anthropic --json`, profile.Short, profile.Name),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, args, profile)
		},
	}
}

func runSummarize(cmd *cobra.Command, args []string, profile summary.Profile) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := summary.Run(cmd.Context(), summary.Params{
		Dir:     resultsDir(args, cfg),
		Profile: profile,
		Config:  cfg,
		Emitter: console.NewTextEmitter(os.Stderr),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	return printSummary(os.Stdout, s, profile, jsonOutput)
}

func printSummary(w io.Writer, s *models.Summary, profile summary.Profile, asJSON bool) error {
	if asJSON {
		return output.WriteJSON(w, s)
	}
	if !profile.Echo {
		return nil
	}

	bold := color.New(color.Bold)
	fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, "===== 🧠 AI Test Summary =====")
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Text)

	dim := color.New(color.FgHiBlack)
	_, _ = dim.Fprintf(w, "\nModel: %s | Tokens: %d in / %d out\n", s.Model, s.InputTokens, s.OutputTokens)
	return nil
}
