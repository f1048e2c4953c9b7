package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	calendarMonth string
	calendarFrom  string
	calendarTo    string
)

var calendarCmd = &cobra.Command{
	Use:   "calendar <client-email|client-id>",
	Short: "Print a client's calendar with per-day status",
	Long: `Print one line per date with the status the apps would show.

OUTPUT FORMAT:

  DATE  WEEKDAY  WEEK  STATUS  WORKOUTS

  Completed workouts are marked with [x].

EXAMPLES:

  coachctl calendar jo@example.com                  # Current month
  coachctl calendar jo@example.com --month 2024-03
  coachctl calendar 65f0c0... --from 2024-03-01 --to 2024-03-14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		svc, err := newServices(false)
		if err != nil {
			return err
		}
		clientID, err := lookupClient(ctx, args[0])
		if err != nil {
			return err
		}

		today, err := svc.schedule.Today(ctx, clientID)
		if err != nil {
			return err
		}
		from, to, err := resolveRange(calendarMonth, calendarFrom, calendarTo, today)
		if err != nil {
			return err
		}

		view, err := svc.schedule.GetCalendar(ctx, clientID, from, to)
		if err != nil {
			return fmt.Errorf("build calendar: %w", err)
		}
		streak, err := svc.schedule.GetStreak(ctx, clientID)
		if err != nil {
			return fmt.Errorf("compute streak: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("client %s  today %s  weeks %d\n", view.ClientID, view.Today, view.MaxWeek)
		for _, d := range view.Days {
			week := faint.Sprintf("w%-2d", d.Week)
			fmt.Printf("%s %s %s %s %s\n",
				d.Date,
				faint.Sprint(weekdayOf(d.Date)),
				week,
				statusLabel(d.Status),
				workoutNames(d.Workouts))
		}
		fmt.Printf("streak %d, longest %d\n", streak.Current, streak.Longest)
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "month to print (YYYY-MM)")
	calendarCmd.Flags().StringVar(&calendarFrom, "from", "", "first date (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarTo, "to", "", "last date (YYYY-MM-DD)")
	rootCmd.AddCommand(calendarCmd)
}
