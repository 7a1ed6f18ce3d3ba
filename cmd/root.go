/*
Copyright © 2025 Harshilmalhotra
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docqa-be",
	Short: "Document question-answering service",
	Long: `A service that answers natural-language questions about PDF documents.

Given a document URL and a list of questions, the service downloads the
document, extracts its text, splits it into LLM-sized chunks and produces
one answer per question. Run "start" to serve the HTTP API or "ask" to
answer questions once from the command line.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
