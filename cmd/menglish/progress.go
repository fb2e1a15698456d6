package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kvgkvg/MEnglish/internal/learning"
	"github.com/kvgkvg/MEnglish/internal/progress"
	"github.com/kvgkvg/MEnglish/internal/statistics"
)

func newProgressCommand() *cobra.Command {
	progressCommand := &cobra.Command{
		Use:   "progress",
		Short: "Show review progress",
	}

	progressCommand.AddCommand(newProgressSetCommand())
	progressCommand.AddCommand(newProgressDueCommand())
	progressCommand.AddCommand(newProgressStatsCommand())

	return progressCommand
}

func newProgressSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <set-id>",
		Short: "Show the review status of a set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			summary, err := a.service.SetSummary(cmd.Context(), a.cfg.User.ID, args[0])
			if err != nil {
				return err
			}
			printSetSummary(cmd.OutOrStdout(), summary)
			return nil
		},
	}
}

func newProgressDueCommand() *cobra.Command {
	var all bool

	command := &cobra.Command{
		Use:   "due",
		Short: "List the sets that need review and the upcoming reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			summaries, err := a.service.SetSummaries(cmd.Context(), a.cfg.User.ID)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			listed := progress.DueSets(summaries)
			if all {
				listed = summaries
			}
			if len(listed) == 0 {
				_, _ = fmt.Fprintln(w, "Nothing to review right now.")
			} else {
				printSummaries(w, listed)
			}
			_, _ = fmt.Fprintln(w)
			printForecast(w, progress.ReviewForecast(summaries))
			return nil
		},
	}
	command.Flags().BoolVar(&all, "all", false, "list every set, not only the due ones")

	return command
}

func newProgressStatsCommand() *cobra.Command {
	var year, month int

	command := &cobra.Command{
		Use:   "stats",
		Short: "Show session statistics and the current streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			ctx := cmd.Context()
			result, err := a.service.Statistics(ctx, a.cfg.User.ID, year, month)
			if err != nil {
				return err
			}
			stats, err := a.service.UserStats(ctx, a.cfg.User.ID)
			if err != nil {
				return err
			}
			printStatistics(cmd.OutOrStdout(), result, stats)
			return nil
		},
	}
	command.Flags().IntVar(&year, "year", 0, "only count sessions of this year")
	command.Flags().IntVar(&month, "month", 0, "only count sessions of this month (1-12)")

	return command
}

func levelColor(level progress.Mastery) *color.Color {
	switch level.Color {
	case "green":
		return color.New(color.FgGreen)
	case "blue":
		return color.New(color.FgBlue)
	case "yellow":
		return color.New(color.FgYellow)
	}
	return color.New(color.FgRed)
}

func formatReviewDate(date *time.Time, isDue bool) string {
	switch {
	case date == nil:
		return "-"
	case isDue:
		return "now"
	}
	return date.Format(time.DateOnly)
}

func printSetSummary(w io.Writer, summary progress.SetReviewSummary) {
	_, _ = fmt.Fprintf(w, "Set: %s\n", summary.SetID)
	_, _ = fmt.Fprintf(w, "Words: %d (studied %d, mastered %d)\n", summary.WordCount, summary.StudiedCount, summary.MasteredCount)
	_, _ = fmt.Fprintf(w, "Memory score: %d%% ", summary.MemoryScore)
	_, _ = levelColor(summary.Level).Fprintln(w, summary.Level.Label)
	_, _ = fmt.Fprintf(w, "Next review: %s\n", formatReviewDate(summary.NextReviewDate, summary.IsDue))
	if summary.WordCount > 0 {
		_, _ = fmt.Fprintln(w, progress.ReviewInterval(summary.MemoryScore))
	}
}

func printSummaries(w io.Writer, summaries []progress.SetReviewSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SET\tNAME\tWORDS\tSCORE\tLEVEL\tNEXT REVIEW")
	for _, s := range summaries {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d%%\t%s\t%s\n",
			s.SetID, s.Name, s.WordCount, s.MemoryScore, s.Level.Label,
			formatReviewDate(s.NextReviewDate, s.IsDue),
		)
	}
	_ = tw.Flush()
}

func printForecast(w io.Writer, days []progress.DayReview) {
	if len(days) == 0 {
		_, _ = fmt.Fprintln(w, "No reviews scheduled.")
		return
	}

	_, _ = fmt.Fprintln(w, "Review calendar:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, day := range days {
		names := make([]string, len(day.Sets))
		for i, s := range day.Sets {
			names[i] = s.SetID
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%d sets\t%d words\t%v\n", day.Date, len(day.Sets), day.WordCount, names)
	}
	_ = tw.Flush()
}

func printStatistics(w io.Writer, result statistics.StatisticsResult, stats learning.UserStats) {
	_, _ = fmt.Fprintf(w, "Current streak: %d days (longest %d)\n", stats.CurrentStreak, stats.LongestStreak)
	if stats.LastActivityDate != nil {
		_, _ = fmt.Fprintf(w, "Last activity: %s\n", stats.LastActivityDate.Format(time.DateOnly))
	}
	_, _ = fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "PERIOD\tSESSIONS\tAVERAGE\tSETS")
	for _, p := range result.Periods {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", p.Period, p.SessionsCount, formatAverage(p.AverageScore, p.ScoredCount), p.SetsStudied)
	}
	agg := result.Aggregate
	_, _ = fmt.Fprintf(tw, "TOTAL\t%d\t%s\t%d\n", agg.SessionsCount, formatAverage(agg.AverageScore, agg.ScoredCount), agg.SetsStudied)
	_ = tw.Flush()

	if len(result.BySession) == 0 {
		return
	}
	types := make([]string, 0, len(result.BySession))
	for t := range result.BySession {
		types = append(types, string(t))
	}
	sort.Strings(types)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Sessions by mode:")
	for _, t := range types {
		_, _ = fmt.Fprintf(w, "  %s: %d\n", t, result.BySession[learning.SessionType(t)])
	}
}

func formatAverage(average, scored int) string {
	if scored == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", average)
}
