/*
Copyright © 2025 Harshilmalhotra
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Harshilmalhotra/bfhl-internal-hack/config"
)

// askCmd runs the pipeline once from the command line, without the server.
var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer questions about a document from the command line",
	Run: func(cmd *cobra.Command, args []string) {
		documentURL, _ := cmd.Flags().GetString("document")
		questions, _ := cmd.Flags().GetStringArray("question")
		if documentURL == "" || len(questions) == 0 {
			log.Fatal("--document and at least one --question are required")
		}

		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		docService, err := buildDocumentService(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		answers, err := docService.Run(ctx, documentURL, questions, func(stage, message string) {
			log.Printf("[%s] %s", stage, message)
		})
		if err != nil {
			log.Fatalf("Run failed: %v", err)
		}

		for i, answer := range answers {
			fmt.Printf("Q%d: %s\nA%d: %s\n\n", i+1, questions[i], i+1, answer)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringP("document", "d", "", "URL of the PDF document")
	askCmd.Flags().StringArrayP("question", "q", nil, "question to answer (repeatable)")
}
