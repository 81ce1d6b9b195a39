package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/fetch"
	"github.com/jonathan/resume-builder/internal/ingestion"
	"github.com/jonathan/resume-builder/internal/keywords"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeResumePath string
	analyzeKeywords   string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Score a resume document against a job description from a text file or URL. Reports the final match score, keyword coverage, and the matched and missing keywords.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeJobURL, "job-url", "u", "", "URL to fetch the job description from")
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to resume document JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeKeywords, "keywords", "k", "", "Job keywords (JSON array or comma-separated); skips extraction")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "browser", false, "Render SPA job pages in a headless browser when needed")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a detailed match report")

	analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeJobFile == "" && analyzeJobURL == "" && analyzeKeywords == "" {
		return fmt.Errorf("one of --job, --job-url or --keywords must be provided")
	}
	if analyzeJobFile != "" && analyzeJobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	// The resume load and the job description fetch are independent.
	var (
		doc     *types.ResumeDocument
		jobText string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doc, err = loadResumeDocument(analyzeResumePath)
		return err
	})
	g.Go(func() error {
		var err error
		jobText, err = loadJobText(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	jdKeywords := keywords.Parse(analyzeKeywords)
	if analyzeKeywords == "" {
		jdKeywords = keywords.Extract(jobText)
	}
	if len(jdKeywords) == 0 {
		return fmt.Errorf("no keywords found in the job description")
	}

	resumeText := keywords.Flatten(doc)
	diff := keywords.Diff(keywords.Extract(resumeText), jdKeywords)
	stats := keywords.MatchStats(resumeText, jdKeywords)
	score := keywords.Score(diff, jdKeywords, keywords.SectionCompleteness(doc))

	if analyzeVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchReport(score, diff, stats)
		return nil
	}
	fmt.Printf("Score: %d/100 (%d of %d keywords matched)\n",
		score.FinalScore, len(diff.Present), len(jdKeywords))
	return nil
}

// loadResumeDocument reads a resume JSON file, checks it against the document
// schema, and decodes it.
func loadResumeDocument(path string) (*types.ResumeDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}
	if err := schemas.ValidateResumeDocument(data); err != nil {
		return nil, fmt.Errorf("invalid resume document: %w", err)
	}
	var doc types.ResumeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	return &doc, nil
}

func loadJobText(ctx context.Context) (string, error) {
	switch {
	case analyzeJobFile != "":
		text, err := ingestion.FromFile(analyzeJobFile)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return text, nil
	case analyzeJobURL != "":
		opts := fetch.DefaultOptions()
		if !analyzeUseBrowser {
			text, err := fetch.URL(ctx, analyzeJobURL, opts)
			if err != nil {
				return "", fmt.Errorf("failed to fetch job description: %w", err)
			}
			return ingestion.CleanText(text.Text), nil
		}
		text, err := fetch.JobDescription(ctx, analyzeJobURL, opts, analyzeVerbose)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job description: %w", err)
		}
		return ingestion.CleanText(text), nil
	default:
		return "", nil
	}
}
