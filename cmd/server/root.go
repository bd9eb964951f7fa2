package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tip-me-api",
	Short: "Tip Me - tip collection API for service workers",
	Long: `Tip Me is a tip-collection service.

Customers tip baristas through a public handle, baristas request payouts of
what they collected, and admins moderate tip and payout status.

Run 'tip-me-api serve' to start the server, or 'tip-me-api seed' to plant the
demo barista and admin accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
