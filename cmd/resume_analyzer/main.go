// Package main provides the entry point for the Resume Analyzer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "resume_analyzer",
	Short:   "Resume vs job description analyzer",
	Long:    "Resume Analyzer scores resumes against job descriptions using keyword matching and TF-IDF similarity, and generates actionable feedback via CLI or REST API.",
	Version: "1.0.0",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
