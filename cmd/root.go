package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sikiriki12/imgx/internal/config"
	"github.com/sikiriki12/imgx/internal/errdefs"
	"github.com/sikiriki12/imgx/internal/logging"
	"github.com/sikiriki12/imgx/internal/providers"
)

// Populated at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagVerbose   bool
	flagCodeOnly  bool
	flagQuiet     bool
	flagJSON      bool
	flagImagesDir string
	flagModel     string
	flagSystem    string
	flagTimeout   float64
	flagAPIKey    string
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "imgx",
	Short: "Analyze and transform images with multimodal models",
	Long: `imgx sends images and prompts to a multimodal generation model and
renders the typed pieces of the response: answer text, model reasoning,
generated code, code execution output, and generated images.

Examples:
  $ imgx analyze photo.jpg "What is in this picture?"
  $ imgx analyze chart.png receipt.jpg "Total all amounts" --verbose
  $ imgx chat sketch.png "Turn this into a watercolor"`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetDebug(flagDebug)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return errdefs.Inputf("unknown command %q, run 'imgx --help' for usage", args[0])
		}
		return cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Show reasoning, code, execution output, and image notices")
	pf.BoolVar(&flagCodeOnly, "code-only", false, "Print only generated code")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress primary output (generated images are still saved)")
	pf.BoolVar(&flagJSON, "json", false, "Emit the full response as JSON")
	pf.StringVarP(&flagImagesDir, "images-dir", "o", "", "Directory for generated images (default current directory)")
	pf.StringVarP(&flagModel, "model", "m", "", "Model identifier")
	pf.StringVarP(&flagSystem, "system", "s", "", "System instruction")
	pf.Float64VarP(&flagTimeout, "timeout", "t", 0, "Request timeout in seconds (fractional allowed)")
	pf.StringVarP(&flagAPIKey, "api-key", "k", "", "Gemini API key (overrides GEMINI_API_KEY)")
	pf.BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errdefs.Input(err)
	})
}

// Execute runs the root command, translating any failure into a diagnostic
// line and a process exit code. This is the only place exit codes are
// decided.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errdefs.ExitCode(err))
	}
}

// loadConfig resolves the effective configuration: defaults, then config
// file, then environment, then explicitly set flags. A missing API key is
// rejected here so every command fails the same way.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		logging.SetDebug(true)
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = flagModel
	}
	if flags.Changed("system") {
		cfg.System = flagSystem
	}
	if flags.Changed("images-dir") {
		cfg.ImagesDir = flagImagesDir
	}
	if flags.Changed("timeout") {
		cfg.TimeoutSeconds = flagTimeout
	}
	if flags.Changed("api-key") {
		cfg.APIKey = flagAPIKey
	}

	if cfg.APIKey == "" {
		return nil, errdefs.Inputf("API key required: set GEMINI_API_KEY or pass --api-key")
	}

	logging.Debugf("config: model=%s images_dir=%s timeout=%s api_key=%s",
		cfg.Model, cfg.ImagesDir, cfg.Timeout(), maskAPIKey(cfg.APIKey))
	return cfg, nil
}

func maskAPIKey(key string) string {
	if len(key) < 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func providerConfig(cfg *config.Config) providers.Config {
	return providers.Config{
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Model:             cfg.Model,
		SystemInstruction: cfg.System,
		Timeout:           cfg.Timeout(),
	}
}
