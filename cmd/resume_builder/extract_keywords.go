package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/keywords"
)

var (
	extractTextFile string
	extractURL      string
	extractAsJSON   bool
)

var extractKeywordsCmd = &cobra.Command{
	Use:   "extract-keywords",
	Short: "Extract keywords from a job description",
	Long:  "Extract the sorted, deduplicated keyword set from a job description text file or URL.",
	RunE:  runExtractKeywords,
}

func init() {
	extractKeywordsCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to job description text file")
	extractKeywordsCmd.Flags().StringVarP(&extractURL, "url", "u", "", "URL to fetch the job description from")
	extractKeywordsCmd.Flags().BoolVar(&extractAsJSON, "json", false, "Output as a JSON array")

	rootCmd.AddCommand(extractKeywordsCmd)
}

func runExtractKeywords(cmd *cobra.Command, _ []string) error {
	if extractTextFile == "" && extractURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if extractTextFile != "" && extractURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var text string
	if extractTextFile != "" {
		cleaned, err := ingestion.FromFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		text = cleaned
	} else {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		result, err := fetch.URL(ctx, extractURL, fetch.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to fetch job description: %w", err)
		}
		text = ingestion.CleanText(result.Text)
	}

	kws := keywords.Extract(text)
	if extractAsJSON {
		return json.NewEncoder(os.Stdout).Encode(kws)
	}
	for _, kw := range kws {
		fmt.Println(kw)
	}
	return nil
}
