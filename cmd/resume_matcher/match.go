package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/lexicon"
	"github.com/jonathan/resume-matcher/internal/matching"
)

var (
	matchLimit   int
	matchJSON    bool
	matchCatalog string
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.txt>",
	Short: "Match a resume against the job catalog",
	Long:  "Analyze a resume text file and rank the configured job catalog by fit, best matches first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVar(&matchLimit, "limit", matching.DefaultLimit, "Maximum number of matches to show")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().StringVar(&matchCatalog, "catalog", "", "Path to a JSON catalog file (overrides config)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if matchCatalog != "" {
		cfg.CatalogPath = matchCatalog
		cfg.DatabaseURL = ""
	}
	if !cmd.Flags().Changed("limit") && cfg.MatchLimit > 0 {
		matchLimit = cfg.MatchLimit
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open job store: %w", err)
	}
	defer closeStore()

	jobs, err := store.ListActiveJobPostings(ctx)
	if err != nil {
		return fmt.Errorf("failed to list job postings: %w", err)
	}

	lex := lexicon.Default()
	result := analysis.New(lex, log).AnalyzeResume(string(data))
	matches := matching.New(lex).FindMatches(result.Profile, jobs, matchLimit)

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(matches)
	}

	if len(matches) == 0 {
		fmt.Println("No matching jobs found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSCORE\tTITLE\tCOMPANY\tMISSING SKILLS")
	for i, m := range matches {
		fmt.Fprintf(w, "%d\t%.2f\t%s\t%s\t%s\n",
			i+1, m.MatchScore, m.Job.Title, m.Job.Company, strings.Join(m.MissingSkills, ", "))
	}
	w.Flush()

	for _, m := range matches {
		if len(m.MatchReasons) > 0 {
			fmt.Printf("\n%s at %s:\n", m.Job.Title, m.Job.Company)
			for _, reason := range m.MatchReasons {
				fmt.Printf("  - %s\n", reason)
			}
		}
	}
	return nil
}
