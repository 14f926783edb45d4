package main

import (
	"github.com/spf13/cobra"

	"github.com/reugn/reldate/reldate"
)

func (a *app) monthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month",
		Short: "Nth weekday of every month",
		Long: "Prints the Nth weekday of every month, starting with the month of the seed. " +
			"Months with fewer occurrences of the weekday yield their last occurrence.",
		Example: "  reldate month -d 6 -o 3    # 3rd Friday of every month",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, "day", "ord"); err != nil {
				return err
			}
			c, err := a.newCommand(cmd, reldate.KindMonth)
			if err != nil {
				return err
			}
			day, _ := cmd.Flags().GetString("day")
			if c.Weekday, err = reldate.ParseWeekday(day); err != nil {
				return err
			}
			c.Ordinal, _ = cmd.Flags().GetInt("ord")
			return a.print(cmd, c)
		},
	}
	cmd.Flags().StringP("day", "d", "", "day of week, 1 (Sunday) to 7 (Saturday) or a day name")
	cmd.Flags().IntP("ord", "o", 0, "occurrence of the day within the month, starting at 1")
	addRangeFlags(cmd)
	return cmd
}

func (a *app) weekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "week",
		Short:   "Every occurrence of a weekday",
		Long:    "Prints every occurrence of a weekday, starting on or after the seed.",
		Example: "  reldate week -d 4 -c 3     # the next three Tuesdays",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, "day"); err != nil {
				return err
			}
			c, err := a.newCommand(cmd, reldate.KindWeek)
			if err != nil {
				return err
			}
			day, _ := cmd.Flags().GetString("day")
			if c.Weekday, err = reldate.ParseWeekday(day); err != nil {
				return err
			}
			return a.print(cmd, c)
		},
	}
	cmd.Flags().StringP("day", "d", "", "day of week, 1 (Sunday) to 7 (Saturday) or a day name")
	addRangeFlags(cmd)
	return cmd
}

func (a *app) yearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Nth day of every year",
		Long: "Prints the Nth day of every year, starting with the year of the seed unless that day has passed. " +
			"Day 366 of a common year is January 1 of the following year.",
		Example: "  reldate year -d 256        # Programmers' Day",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, "day"); err != nil {
				return err
			}
			c, err := a.newCommand(cmd, reldate.KindYear)
			if err != nil {
				return err
			}
			c.DayOfYear, _ = cmd.Flags().GetInt("day")
			return a.print(cmd, c)
		},
	}
	cmd.Flags().IntP("day", "d", 0, "day of the year, 1 to 366")
	addRangeFlags(cmd)
	return cmd
}

func (a *app) cronCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cron",
		Short:   "Days on which a cron expression fires",
		Long:    "Prints every day, on or after the seed, on which a cron expression fires at least once.",
		Example: "  reldate cron -e \"0 0 * * 5#3\"   # 3rd Friday of every month",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireFlags(cmd, "expr"); err != nil {
				return err
			}
			c, err := a.newCommand(cmd, reldate.KindCron)
			if err != nil {
				return err
			}
			c.Expression, _ = cmd.Flags().GetString("expr")
			return a.print(cmd, c)
		},
	}
	cmd.Flags().StringP("expr", "e", "", "cron expression with 5, 6 or 7 fields")
	addRangeFlags(cmd)
	return cmd
}
