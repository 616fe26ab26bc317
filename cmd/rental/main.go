package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Apeirom/rental-manager/internal/interfaces/cli"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rental",
		Short: "Sistema de gestão de aluguéis no terminal",
	}

	rootCmd.AddCommand(
		cli.InitCmd(),
		cli.MenuCmd(),
		cli.ReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
