package cmd

import (
	"context"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sikiriki12/imgx/internal/errdefs"
	"github.com/sikiriki12/imgx/internal/fragment"
	"github.com/sikiriki12/imgx/internal/imaging"
	"github.com/sikiriki12/imgx/internal/logging"
	"github.com/sikiriki12/imgx/internal/providers"
	"github.com/sikiriki12/imgx/internal/render"
)

const defaultChatPrompt = "Describe this image."

var chatCmd = &cobra.Command{
	Use:   "chat <image> [prompt]",
	Short: "Hold a conversation about an image",
	Long: `Chat opens an interactive session seeded with one image. The optional
second argument is the opening prompt. Later turns are plain text read from
the terminal; type "exit" or "quit" (or press ctrl+d) to end the session.`,
	Example: `  imgx chat sketch.png
  imgx chat photo.jpg "Make this look like a renaissance painting" -o out`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 || len(args) > 2 {
			return errdefs.Inputf("chat needs an image source and optionally an opening prompt")
		}
		return nil
	},
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	payload, err := imaging.NewLoader().Load(ctx, args[0])
	if err != nil {
		return err
	}

	prompt := defaultChatPrompt
	if len(args) == 2 {
		prompt = args[1]
	}

	client := providers.NewGemini(providerConfig(cfg))
	session := providers.NewChatSession(client)
	renderer := render.New(render.Select(flagJSON, flagQuiet, flagCodeOnly, flagVerbose))
	out := cmd.OutOrStdout()

	logging.Infof("chat with %s, type 'exit' or 'quit' to end", client.Model())

	opening := []providers.Part{
		providers.ImagePart(payload.MIMEType, payload.Data),
		providers.TextPart(prompt),
	}
	if err := chatTurn(ctx, session, opening, renderer, cfg.ImagesDir, out); err != nil {
		logging.Errorf("%v", err)
	}

	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") || strings.EqualFold(line, "quit") {
			return nil
		}

		turn := []providers.Part{providers.TextPart(line)}
		if err := chatTurn(ctx, session, turn, renderer, cfg.ImagesDir, out); err != nil {
			logging.Errorf("%v", err)
		}
	}
}

// chatTurn sends one turn and renders its response. A failed turn leaves
// the session history untouched, so the caller keeps the loop running. A
// failed image write is reported without suppressing the rendered reply.
func chatTurn(ctx context.Context, session *providers.ChatSession, parts []providers.Part, renderer render.Renderer, imagesDir string, out io.Writer) error {
	response, err := session.Send(ctx, parts)
	if err != nil {
		return err
	}

	fragments := fragment.Classify(response)
	if _, err := imaging.SaveImages(fragments, imagesDir); err != nil {
		logging.Errorf("saving images: %v", err)
	}
	return renderer.Render(fragments, out)
}
