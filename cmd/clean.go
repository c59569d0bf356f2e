package cmd

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log file",
	Long: `Removes the debug log written by --debug runs.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), logFile)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader, out io.Writer, path string) error {
	info, err := os.Stat(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	fmt.Fprintln(out, "This will remove:")
	fmt.Fprintf(out, "  - %s (%d bytes)\n", path, info.Size())

	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("error removing %s: %w", path, err)
	}
	fmt.Fprintln(out, "Cleaned.")
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
