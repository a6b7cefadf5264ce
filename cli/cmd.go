package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint   string
	secureConn bool
)

var rootCmd = &cobra.Command{
	Use:   "treecli",
	Short: "Treecli is a simple command-line tool for merkletree interaction",
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "localhost:10000", "merkletree server endpoint")
	rootCmd.PersistentFlags().BoolVar(&secureConn, "secure", false, "connect with TLS")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(digestCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
