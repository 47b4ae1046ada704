package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/coverletter-agent/internal/config"
	"github.com/jonathan/coverletter-agent/internal/extract"
	"github.com/jonathan/coverletter-agent/internal/llm"
	"github.com/jonathan/coverletter-agent/internal/prompts"
)

var (
	generateResume   string
	generateJobURL   string
	generateJobText  string
	generateNoStream bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter from the command line",
	Long:  `Generate a cover letter for a resume file and a job posting (URL or pasted text), streamed to stdout.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateResume, "resume", "", "Path to resume file (pdf, docx, or txt)")
	generateCmd.Flags().StringVar(&generateJobURL, "job-url", "", "URL of the job posting")
	generateCmd.Flags().StringVar(&generateJobText, "job", "", "Job description text")
	generateCmd.Flags().BoolVar(&generateNoStream, "no-stream", false, "Print the letter in one piece instead of streaming")
	_ = generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generateJobURL == "" && generateJobText == "" {
		return fmt.Errorf("either --job-url or --job is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	data, err := os.ReadFile(generateResume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	resume := extract.Document(filepath.Base(generateResume), data)
	if resume.Warning != "" {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", resume.Warning)
	}

	target := generateJobText
	if generateJobURL != "" {
		page := extract.WebPage(ctx, generateJobURL, cfg.UseBrowser)
		if page.Warning != "" {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", page.Warning)
		}
		target = page.Text
	}

	candidate := extract.Truncate(resume.Text, cfg.CandidateTextLimit)
	target = extract.Truncate(target, cfg.TargetTextLimit)
	prompt := prompts.Compose(candidate, target)

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if generateNoStream {
		letter, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Println(letter)
		return nil
	}

	opts := llm.DefaultStreamOptions()
	opts.MaxOutputTokens = cfg.MaxOutputTokens
	stream := client.GenerateStream(ctx, prompt, opts)

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		fmt.Print(chunk)
	}
}
