package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description and link",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "lingvobot — Russian linguistic analysis powered by GigaChat")
			fmt.Fprintln(out, "https://github.com/gimalovartem2-bit/lingvobot")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
