package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bishopart"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bishop",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bishop version %s\n", bishopart.Version)
		},
	}
}
