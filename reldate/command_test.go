package reldate_test

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/reugn/reldate/internal/assert"
	"github.com/reugn/reldate/reldate"
)

func TestParseKind(t *testing.T) {
	t.Parallel()
	for value, kind := range map[string]reldate.Kind{
		"month": reldate.KindMonth,
		"Week":  reldate.KindWeek,
		"YEAR":  reldate.KindYear,
		"cron":  reldate.KindCron,
	} {
		parsed, err := reldate.ParseKind(value)
		assert.NoError(t, err)
		assert.Equal(t, parsed, kind)
		assert.Equal(t, parsed.String(), strings.ToLower(value))
	}

	_, err := reldate.ParseKind("day")
	assert.ErrorIs(t, err, reldate.ErrIllegalArgument)
	assert.Equal(t, reldate.Kind(42).String(), "Kind(42)")
}

func TestCommandExecute(t *testing.T) {
	t.Parallel()
	month := reldate.NewCommand(reldate.KindMonth, reldate.Date(2024, time.January, 15))
	month.Weekday = reldate.Sunday
	month.Ordinal = 1

	week := reldate.NewCommand(reldate.KindWeek, reldate.Date(2024, time.January, 1))
	week.Weekday = reldate.Tuesday
	week.Count = 3

	year := reldate.NewCommand(reldate.KindYear, reldate.Date(2024, time.January, 20))
	year.DayOfYear = 13
	year.Count = 2

	fifthFriday := reldate.NewCommand(reldate.KindMonth, reldate.Date(2024, time.February, 10))
	fifthFriday.Weekday = reldate.Friday
	fifthFriday.Ordinal = 5
	fifthFriday.Count = 1

	cron := reldate.NewCommand(reldate.KindCron, reldate.Date(2024, time.January, 1))
	cron.Expression = "0 0 * * 5#3"
	cron.Count = 2

	tests := []struct {
		command  reldate.Command
		expected []time.Time
	}{
		{month, []time.Time{
			reldate.Date(2024, time.January, 7),
			reldate.Date(2024, time.February, 4),
			reldate.Date(2024, time.March, 3),
			reldate.Date(2024, time.April, 7),
			reldate.Date(2024, time.May, 5),
		}},
		{week, []time.Time{
			reldate.Date(2024, time.January, 2),
			reldate.Date(2024, time.January, 9),
			reldate.Date(2024, time.January, 16),
		}},
		{year, []time.Time{
			reldate.Date(2025, time.January, 13),
			reldate.Date(2026, time.January, 13),
		}},
		{fifthFriday, []time.Time{
			reldate.Date(2024, time.February, 23),
		}},
		{cron, []time.Time{
			reldate.Date(2024, time.January, 19),
			reldate.Date(2024, time.February, 16),
		}},
	}

	for _, tt := range tests {
		dates, err := tt.command.Execute()
		assert.NoError(t, err)
		assert.Equal(t, dates, tt.expected)

		again, err := tt.command.Execute()
		assert.NoError(t, err)
		assert.Equal(t, again, dates)
	}
}

func TestCommandSeedTimeOfDay(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindWeek, time.Date(2024, time.January, 2, 18, 45, 0, 0, time.Local))
	cmd.Weekday = reldate.Tuesday
	cmd.Count = 1

	dates, err := cmd.Execute()
	assert.NoError(t, err)
	assert.Equal(t, dates, []time.Time{reldate.Date(2024, time.January, 2)})
}

func TestCommandValidate(t *testing.T) {
	t.Parallel()
	seed := reldate.Date(2024, time.January, 1)
	tests := []struct {
		name     string
		command  reldate.Command
		problems []string
	}{
		{
			name:     "zero count and ordinal",
			command:  reldate.Command{Kind: reldate.KindMonth, Seed: seed, Weekday: reldate.Monday},
			problems: []string{"count 0 must be positive", "ordinal 0 must be positive"},
		},
		{
			name:     "negative count",
			command:  reldate.Command{Kind: reldate.KindWeek, Seed: seed, Count: -2, Weekday: reldate.Monday},
			problems: []string{"count -2 must be positive"},
		},
		{
			name:     "weekday out of range",
			command:  reldate.Command{Kind: reldate.KindWeek, Seed: seed, Count: 1, Weekday: 8},
			problems: []string{"weekday 8 is out of range 1-7"},
		},
		{
			name:     "day of year out of range",
			command:  reldate.Command{Kind: reldate.KindYear, Seed: seed, Count: 1, DayOfYear: 367},
			problems: []string{"day of year 367 is out of range 1-366"},
		},
		{
			name:     "unknown kind",
			command:  reldate.Command{Seed: seed, Count: 1},
			problems: []string{"unknown rule kind 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.command.Validate()
			assert.ErrorIs(t, err, reldate.ErrIllegalArgument)
			for _, problem := range tt.problems {
				if !strings.Contains(err.Error(), problem) {
					t.Fatalf("%q does not report %q", err, problem)
				}
			}
			dates, err := tt.command.Execute()
			assert.NotEqual(t, err, nil)
			assert.Equal(t, len(dates), 0)
		})
	}
}

func TestCommandFirstDayOfCalendar(t *testing.T) {
	t.Parallel()
	cmd := reldate.Command{Kind: reldate.KindYear, Count: 2, DayOfYear: 1}
	assert.NoError(t, cmd.Validate())

	dates, err := cmd.Execute()
	assert.NoError(t, err)
	assert.Equal(t, dates, []time.Time{
		reldate.Date(1, time.January, 1),
		reldate.Date(2, time.January, 1),
	})
}

func TestCommandExhaustedCron(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindCron, reldate.Date(2023, time.June, 1))
	cmd.Expression = "0 0 0 1 1 * 2024"
	cmd.Count = math.MaxInt

	dates, err := cmd.Execute()
	assert.NoError(t, err)
	assert.Equal(t, dates, []time.Time{reldate.Date(2024, time.January, 1)})

	var out bytes.Buffer
	assert.NoError(t, reldate.Run(context.Background(), cmd, &out, time.DateOnly))
	assert.Equal(t, out.String(), "2024-01-01\n")
}

func TestCommandValidateCron(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindCron, reldate.Date(2024, time.January, 1))
	cmd.Expression = "every day"
	assert.ErrorIs(t, cmd.Validate(), reldate.ErrCronParse)
}

func TestCommandRule(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindMonth, reldate.Date(2024, time.January, 1))
	cmd.Weekday = reldate.Monday
	cmd.Ordinal = 2
	rule, err := cmd.Rule()
	assert.NoError(t, err)
	assert.Equal(t, rule.Description(), "2nd Monday of every month")

	cmd.Kind = reldate.KindYear
	_, err = cmd.Rule()
	assert.ErrorIs(t, err, reldate.ErrIllegalArgument)
}

func TestRun(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindWeek, reldate.Date(2024, time.January, 1))
	cmd.Weekday = reldate.Tuesday
	cmd.Count = 3

	var out bytes.Buffer
	assert.NoError(t, reldate.Run(context.Background(), cmd, &out, ""))
	assert.Equal(t, out.String(), "Tuesday, 2 January, 2024\n"+
		"Tuesday, 9 January, 2024\n"+
		"Tuesday, 16 January, 2024\n")

	out.Reset()
	assert.NoError(t, reldate.Run(context.Background(), cmd, &out, time.DateOnly))
	assert.Equal(t, out.String(), "2024-01-02\n2024-01-09\n2024-01-16\n")
}

func TestRunInvalid(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindWeek, reldate.Date(2024, time.January, 1))
	cmd.Count = 0

	var out bytes.Buffer
	err := reldate.Run(context.Background(), cmd, &out, "")
	assert.ErrorIs(t, err, reldate.ErrIllegalArgument)
	assert.Equal(t, out.Len(), 0)
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindYear, reldate.Date(2024, time.January, 1))
	cmd.DayOfYear = 100

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	assert.ErrorIs(t, reldate.Run(ctx, cmd, &out, ""), context.Canceled)
	assert.Equal(t, out.Len(), 0)
}

func TestRunCancelledWhileWriting(t *testing.T) {
	t.Parallel()
	cmd := reldate.NewCommand(reldate.KindWeek, reldate.Date(2024, time.January, 1))
	cmd.Weekday = reldate.Tuesday
	cmd.Count = math.MaxInt

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := &cancelWriter{cancel: cancel}
	assert.ErrorIs(t, reldate.Run(ctx, cmd, w, time.DateOnly), context.Canceled)
	assert.Equal(t, w.String(), "2024-01-02\n")
}

// cancelWriter cancels its context after the first write.
type cancelWriter struct {
	bytes.Buffer
	cancel context.CancelFunc
}

func (w *cancelWriter) Write(p []byte) (int, error) {
	defer w.cancel()
	return w.Buffer.Write(p)
}
