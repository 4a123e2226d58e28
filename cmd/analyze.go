/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sikiriki12/imgx/internal/errdefs"
	"github.com/sikiriki12/imgx/internal/fragment"
	"github.com/sikiriki12/imgx/internal/imaging"
	"github.com/sikiriki12/imgx/internal/providers"
	"github.com/sikiriki12/imgx/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <source>... <prompt>",
	Short: "Send images and a prompt to the model and render the response",
	Long: `Analyze sends one or more images together with a prompt and renders the
typed response. The last argument is always the prompt; every argument
before it is an image source.

A source may be a file path, an http(s) URL, "-" for stdin, or the word
"clipboard" for the system clipboard image.`,
	Example: `  imgx analyze photo.jpg "What is in this picture?"
  imgx analyze a.png b.png "What changed between these?" --verbose
  imgx analyze https://example.com/chart.png "Summarize this chart"
  screencapture -i /dev/stdout | imgx analyze - "Describe this" --json
  imgx analyze clipboard "Extract all text" --quiet -o out`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errdefs.Inputf("analyze needs at least one image source and a prompt")
		}
		return nil
	},
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sources, prompt := args[:len(args)-1], args[len(args)-1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	payloads, err := imaging.NewLoader().LoadAll(ctx, sources)
	if err != nil {
		return err
	}

	parts := make([]providers.Part, 0, len(payloads)+1)
	for _, p := range payloads {
		parts = append(parts, providers.ImagePart(p.MIMEType, p.Data))
	}
	parts = append(parts, providers.TextPart(prompt))

	client := providers.NewGemini(providerConfig(cfg))
	response, err := client.Generate(ctx, parts)
	if err != nil {
		return err
	}

	// Persistence and rendering both consume the fragment sequence; a
	// failed write still leaves the rendered answer useful, so render
	// first and surface the write error after.
	fragments := fragment.Classify(response)
	_, saveErr := imaging.SaveImages(fragments, cfg.ImagesDir)

	mode := render.Select(flagJSON, flagQuiet, flagCodeOnly, flagVerbose)
	if err := render.New(mode).Render(fragments, cmd.OutOrStdout()); err != nil {
		return err
	}
	return saveErr
}
