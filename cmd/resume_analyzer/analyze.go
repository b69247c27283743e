package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze one or more resumes against a job description",
	Long: `Scores resume files (.pdf, .docx, .txt) against a job description and prints
keyword matches, section scores, and feedback. Multiple --resume flags are
analyzed concurrently.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResumes    []string
	analyzeJob        string
	analyzeJobURL     string
	analyzeMaxItems   int
	analyzeJSON       bool
	analyzeReportDir  string
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCmd.Flags().StringSliceVarP(&analyzeResumes, "resume", "r", nil, "Resume file to analyze (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().IntVar(&analyzeMaxItems, "max-items", 0, "Cap on keyword lists in results (0 uses the default)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON instead of formatted output")
	analyzeCmd.Flags().StringVar(&analyzeReportDir, "report", "", "Directory to write LaTeX report files into")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCmd)
}

// fileAnalysis pairs a resume file with its analysis result.
type fileAnalysis struct {
	Filename string          `json:"filename"`
	Result   analyzer.Result `json:"result"`
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("max-items") {
		cfg.MaxItems = analyzeMaxItems
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	if len(analyzeResumes) == 0 {
		return fmt.Errorf("at least one --resume file is required")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	jobText, err := loadJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	analyses, err := analyzeFiles(analyzeResumes, jobText, cfg.MaxItems)
	if err != nil {
		return err
	}

	if analyzeReportDir != "" {
		if err := writeReports(analyses, analyzeReportDir); err != nil {
			return err
		}
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analyses)
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, a := range analyses {
		fmt.Printf("\n=== %s ===\n", a.Filename)
		printer.PrintSummary(a.Result)
		printer.PrintKeywords(a.Result.Keywords)
		printer.PrintFeedback(a.Result.Feedback)
		if cfg.Verbose {
			printer.PrintDensity(a.Result.KeywordDensity)
		}
	}

	return nil
}

// loadJobDescription reads the job text from a file or fetches it from a URL.
func loadJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}

	text, err := fetch.JobDescription(ctx, cfg.JobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// analyzeFiles extracts and scores each resume concurrently. Results keep
// the order of the input paths.
func analyzeFiles(paths []string, jobText string, maxItems int) ([]fileAnalysis, error) {
	analyses := make([]fileAnalysis, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			filename := filepath.Base(path)
			text, err := extract.FromUpload(filename, data)
			if err != nil {
				return fmt.Errorf("failed to extract text from %s: %w", path, err)
			}

			analyses[i] = fileAnalysis{
				Filename: filename,
				Result:   analyzer.Analyze(text, jobText, maxItems),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return analyses, nil
}

// writeReports renders a LaTeX report per analysis into dir.
func writeReports(analyses []fileAnalysis, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	now := time.Now().UTC()
	for _, a := range analyses {
		doc, err := report.Render(a.Result, a.Filename, now)
		if err != nil {
			return fmt.Errorf("failed to render report for %s: %w", a.Filename, err)
		}

		base := strings.TrimSuffix(a.Filename, filepath.Ext(a.Filename))
		outPath := filepath.Join(dir, base+".tex")
		if err := os.WriteFile(outPath, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write report %s: %w", outPath, err)
		}
	}
	return nil
}
