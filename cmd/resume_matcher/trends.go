package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/trends"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	trendsJSON    bool
	trendsCatalog string
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show job market trends for the catalog",
	Long:  "Aggregate the configured job catalog into market statistics: in-demand skills, industry and experience distributions, and remote work share.",
	RunE:  runTrends,
}

func init() {
	trendsCmd.Flags().BoolVar(&trendsJSON, "json", false, "Print the report as JSON")
	trendsCmd.Flags().StringVar(&trendsCatalog, "catalog", "", "Path to a JSON catalog file (overrides config)")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if trendsCatalog != "" {
		cfg.CatalogPath = trendsCatalog
		cfg.DatabaseURL = ""
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

	report, err := trends.Report(jobs)
	if err != nil {
		return err
	}

	if trendsJSON {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	fmt.Printf("Job market trends (%d active postings)\n\n", report.TotalJobs)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TOP SKILLS\tCOUNT")
	for _, s := range report.TopSkills {
		fmt.Fprintf(w, "%s\t%d\n", s.Skill, s.Count)
	}
	w.Flush()

	printDistribution("Industries", report.IndustryDistribution)
	printDistribution("Experience levels", report.ExperienceLevels)
	printDistribution("Salary ranges", report.SalaryRanges)

	fmt.Printf("\nRemote work: %.2f%% of postings\n", report.RemoteWorkPercentage)
	return nil
}

func printDistribution(title string, counts []types.LabelCount) {
	if len(counts) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s\t%d\n", c.Label, c.Count)
	}
	w.Flush()
}
