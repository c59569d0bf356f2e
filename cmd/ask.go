package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gelaxyai/gelaxy/internal/chat"
	"github.com/gelaxyai/gelaxy/internal/clipboard"
	"github.com/gelaxyai/gelaxy/internal/codegen"
	"github.com/gelaxyai/gelaxy/internal/config"
	"github.com/gelaxyai/gelaxy/internal/conversation"
	"github.com/gelaxyai/gelaxy/internal/errors"
	"github.com/gelaxyai/gelaxy/internal/logger"
)

var (
	askCodeOnly bool
	askCopy     bool
)

var askCmd = &cobra.Command{
	Use:   "ask <prompt...>",
	Short: "Generate code for a single request without the TUI",
	Long: `Sends one request to the configured backend and prints the reply.

Examples:
  gelaxy ask "reverse a linked list"
  gelaxy ask --language go --code "parse a CSV file" > main.go
  gelaxy ask --copy "debounce a function"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askCodeOnly, "code", false, "Print only the code block")
	askCmd.Flags().BoolVar(&askCopy, "copy", false, "Copy the code block to the system clipboard")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if debugMode {
		if err := logger.Init(logFile); err != nil {
			return err
		}
		defer logger.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	gen, err := codegen.New(cfg)
	if err != nil {
		return err
	}

	var clip clipboard.Writer
	if askCopy {
		clip = clipboard.NewSystem()
	}
	return ask(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, gen, clip, strings.Join(args, " "))
}

// ask runs one turn through a fresh controller and prints the reply to out.
// A failed turn is returned as an error carrying the user-facing message.
func ask(ctx context.Context, out, errOut io.Writer, cfg *config.Config, gen codegen.Generator, clip clipboard.Writer, prompt string) error {
	ctrl := conversation.New(conversation.Options{
		Locale:   cfg.Locale,
		Language: cfg.Language,
		Timeout:  cfg.Timeout,
	})

	turn, ok := ctrl.Send(prompt)
	if !ok {
		return errors.EmptyPrompt()
	}

	settled := ctrl.Settle(ctrl.Run(ctx, gen, *turn))
	if n := settled.Notification; n != nil {
		return errors.GenerationFailed(n.Message, nil)
	}

	reply := chat.ParseReply(settled.Appended.Content)
	if askCodeOnly {
		fmt.Fprintln(out, reply.Code)
	} else {
		fmt.Fprintln(out, settled.Appended.Content)
	}

	if clip != nil && reply.HasCode {
		if err := clip.WriteText(reply.Code); err != nil {
			fmt.Fprintf(errOut, "Warning: %v\n", err)
		} else {
			fmt.Fprintln(errOut, ctrl.Strings().Copied)
		}
	}
	return nil
}
