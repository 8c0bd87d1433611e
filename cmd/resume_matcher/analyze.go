package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/lexicon"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.txt> [more.txt ...]",
	Short: "Analyze resume text files",
	Long:  "Extract a candidate profile from each resume text file, score it, and print the analysis. Multiple files are analyzed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	_, log, err := loadConfig()
	if err != nil {
		return err
	}
	analyzer := analysis.New(lexicon.Default(), log)

	results := make([]*analysis.Result, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume file: %w", err)
			}
			results[i] = analyzer.AnalyzeResume(string(data))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if analyzeJSON {
		return json.NewEncoder(os.Stdout).Encode(results)
	}

	for i, result := range results {
		if i > 0 {
			fmt.Println()
		}
		printAnalysis(args[i], result)
	}
	return nil
}

func printAnalysis(path string, result *analysis.Result) {
	fmt.Printf("Analysis for %s\n", path)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Overall score:\t%.2f\n", result.Scores.Overall)
	fmt.Fprintf(w, "Skills score:\t%.2f\n", result.Scores.Skills)
	fmt.Fprintf(w, "Experience score:\t%.2f\n", result.Scores.Experience)
	fmt.Fprintf(w, "Education score:\t%.2f\n", result.Scores.Education)
	fmt.Fprintf(w, "Experience years:\t%.1f\n", result.Profile.ExperienceYears)
	fmt.Fprintf(w, "Education level:\t%s\n", result.EducationLevel)
	fmt.Fprintf(w, "Industry:\t%s\n", result.Profile.Industry)
	fmt.Fprintf(w, "Skills:\t%s\n", strings.Join(result.Profile.SkillTerms(), ", "))
	w.Flush()

	if len(result.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
}
