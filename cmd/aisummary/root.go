package aisummary

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shawndavis1/ai-test-framework/internal/config"
	"github.com/shawndavis1/ai-test-framework/internal/errs"
	"github.com/shawndavis1/ai-test-framework/internal/llm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile    string
	provider   string
	model      string
	outputPath string
	jsonOutput bool
	verbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "aisummary",
	Short: "AI summaries of automated test runs",
	Long: `aisummary reads a test results directory (Allure *-result.json files or an
aggregate summary.json), asks a language model to summarize the run and
writes the summary to ai_summary.txt for posting from CI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errs.ExitCode(err))
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVarP(&provider, "provider", "p", "", "LLM provider (openai, anthropic, google)")
	pf.StringVarP(&model, "model", "m", "", "Specific model name")
	pf.StringVarP(&outputPath, "output", "o", "", "Summary file (default "+config.DefaultOutput+")")
	pf.BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, name := range []string{"lead", "assistant"} {
		rootCmd.AddCommand(newProfileCmd(name))
	}
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves settings; explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if changed("provider") {
		cfg.Provider = llm.Provider(provider)
	}
	if changed("model") {
		cfg.Model = model
	}
	if changed("output") {
		cfg.Output = outputPath
	}
	return cfg, nil
}

// resultsDir returns the positional directory argument or the configured default.
func resultsDir(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.ResultsDir
}
