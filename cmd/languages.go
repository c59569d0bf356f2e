package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gelaxyai/gelaxy/internal/catalog"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported programming languages",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		def := catalog.Default().ID
		fmt.Fprintln(out, "Available languages:")
		fmt.Fprintln(out)
		for _, l := range catalog.All() {
			marker := " "
			if l.ID == def {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s %-12s %s\n", marker, l.Icon, l.ID, l.Label)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
