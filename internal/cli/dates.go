// ABOUTME: Dates command group for daily activity counters
// ABOUTME: list with date range filters, add for recording events, save
package cli

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/wordbook/internal/app"
	"github.com/harper/wordbook/internal/store"
)

var (
	datesJSONOutput bool
	datesSince      string
	datesUntil      string
	dateFlag        string
	dateMode        string
)

var datesCmd = &cobra.Command{
	Use:     "dates",
	Aliases: []string{"d"},
	Short:   "Show and record daily study activity",
}

var datesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List daily activity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		var since, until *time.Time
		if datesSince != "" {
			t, err := dateparse.ParseLocal(datesSince)
			if err != nil {
				return fmt.Errorf("invalid --since date: %w", err)
			}
			since = &t
		}
		if datesUntil != "" {
			t, err := dateparse.ParseLocal(datesUntil)
			if err != nil {
				return fmt.Errorf("invalid --until date: %w", err)
			}
			until = &t
		}

		days := a.GetDates()
		if since != nil || until != nil {
			days = a.DatesInRange(since, until)
		}

		out := cmd.OutOrStdout()
		if datesJSONOutput {
			if days == nil {
				days = []store.DailyActivity{}
			}
			return writeJSON(out, days)
		}

		fmt.Fprintln(out, "Date\t\tAdd\tUpdate\tQuiz")
		fmt.Fprintln(out, "----\t\t---\t------\t----")
		for _, day := range days {
			quiz := "-"
			if day.Quiz != nil {
				quiz = fmt.Sprintf("%d", *day.Quiz)
			}
			fmt.Fprintf(out, "%s\t%d\t%d\t%s\n", day.Date, day.Add, day.Update, quiz)
		}
		return nil
	},
}

var datesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record an activity event",
	Long: `Record one add, update, or quiz event for a day.

The day defaults to today. --date accepts most common date formats
(2025-03-01, 03/01/2025, March 1 2025).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		date := a.Today()
		if dateFlag != "" {
			t, err := dateparse.ParseLocal(dateFlag)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}
			date = t.Format(store.DateLayout)
		}

		if err := a.AddDate(cmd.Context(), app.DateInput{Date: date}, dateMode); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Recorded %s on %s\n", dateMode, date)
		return nil
	},
}

var datesSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite date.json from the loaded counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if err := a.SaveDates(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", a.Files().Path(store.DatesFile))
		return nil
	},
}

func init() {
	datesListCmd.Flags().BoolVar(&datesJSONOutput, "json", false, "Output as JSON")
	datesListCmd.Flags().StringVar(&datesSince, "since", "", "Start date (inclusive)")
	datesListCmd.Flags().StringVar(&datesUntil, "until", "", "End date (inclusive)")

	datesAddCmd.Flags().StringVar(&dateFlag, "date", "", "Day to record (default today)")
	datesAddCmd.Flags().StringVar(&dateMode, "mode", string(store.ModeQuiz), "Event kind: add, update, or quiz")

	datesCmd.AddCommand(datesListCmd)
	datesCmd.AddCommand(datesAddCmd)
	datesCmd.AddCommand(datesSaveCmd)
	rootCmd.AddCommand(datesCmd)
}
