package reldate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/reugn/reldate/logger"
)

// DefaultCount is the number of dates a Command produces unless told
// otherwise.
const DefaultCount = 5

// Kind selects the rule a Command evaluates.
type Kind int

// Rule kinds.
const (
	KindMonth Kind = iota + 1
	KindWeek
	KindYear
	KindCron
)

var kindNames = map[Kind]string{
	KindMonth: "month",
	KindWeek:  "week",
	KindYear:  "year",
	KindCron:  "cron",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by value, ignoring case.
func ParseKind(value string) (Kind, error) {
	lower := strings.ToLower(strings.TrimSpace(value))
	for kind, name := range kindNames {
		if name == lower {
			return kind, nil
		}
	}
	return 0, illegalArgumentError(fmt.Sprintf("unknown rule %q", value))
}

// Command is a fully specified date calculation: a rule kind, the seed and
// count shared by all kinds, and the parameters of the selected kind.
// Fields that do not apply to Kind are ignored.
type Command struct {
	Kind  Kind
	Seed  time.Time
	Count int

	// Weekday is used by KindMonth and KindWeek.
	Weekday Weekday
	// Ordinal is used by KindMonth.
	Ordinal int
	// DayOfYear is used by KindYear.
	DayOfYear int
	// Expression is used by KindCron.
	Expression string
}

// NewCommand returns a Command of the given kind with DefaultCount.
func NewCommand(kind Kind, seed time.Time) Command {
	return Command{
		Kind:  kind,
		Seed:  seed,
		Count: DefaultCount,
	}
}

// Validate reports every invalid field of the command at once. Any Seed
// is valid, including the zero time.Time (January 1 of year 1).
func (c Command) Validate() error {
	var errs errors.M
	errs.Append(validateCount(c.Count))
	switch c.Kind {
	case KindMonth:
		errs.Append(validateWeekday(c.Weekday), validateOrdinal(c.Ordinal))
	case KindWeek:
		errs.Append(validateWeekday(c.Weekday))
	case KindYear:
		errs.Append(validateDayOfYear(c.DayOfYear))
	case KindCron:
		if _, err := NewCronRule(c.Expression); err != nil {
			errs.Append(err)
		}
	default:
		errs.Append(illegalArgumentError(fmt.Sprintf("unknown rule kind %d", int(c.Kind))))
	}
	return errs.Err()
}

// Rule returns the Rule selected by the command.
func (c Command) Rule() (Rule, error) {
	switch c.Kind {
	case KindMonth:
		return NewMonthRule(c.Weekday, c.Ordinal)
	case KindWeek:
		return NewWeekRule(c.Weekday)
	case KindYear:
		return NewYearRule(c.DayOfYear)
	case KindCron:
		return NewCronRule(c.Expression)
	default:
		return nil, illegalArgumentError(fmt.Sprintf("unknown rule kind %d", int(c.Kind)))
	}
}

// prepare validates the command and returns its rule and truncated seed.
func (c Command) prepare() (Rule, time.Time, error) {
	if err := c.Validate(); err != nil {
		return nil, time.Time{}, err
	}
	rule, err := c.Rule()
	if err != nil {
		return nil, time.Time{}, err
	}
	seed := Truncate(c.Seed)
	logger.Debug("Evaluating rule", "kind", c.Kind, "rule", rule.Description(),
		"seed", seed.Format(time.DateOnly), "count", c.Count)
	return rule, seed, nil
}

func (c Command) exhausted(rule Rule, produced int) {
	logger.Warn("Rule exhausted", "rule", rule.Description(),
		"requested", c.Count, "produced", produced)
}

// Execute validates the command and returns its first Count dates.
// Only a cron expression without further fire times yields fewer.
func (c Command) Execute() ([]time.Time, error) {
	rule, seed, err := c.prepare()
	if err != nil {
		return nil, err
	}
	dates := Take(rule.Dates(seed), c.Count)
	if len(dates) < c.Count {
		c.exhausted(rule, len(dates))
	}
	return dates, nil
}

// Run executes cmd and writes one line per date to w using layout. Dates
// are written as they are resolved, and ctx is checked before each one.
// Nothing is written if the command is invalid.
func Run(ctx context.Context, cmd Command, w io.Writer, layout string) error {
	rule, seed, err := cmd.prepare()
	if err != nil {
		return err
	}
	n := 0
	for date := range rule.Dates(seed) {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Trace("Resolved date", "rule", rule.Description(), "n", n+1,
			"date", date.Format(time.DateOnly))
		if _, err := fmt.Fprintln(w, Format(date, layout)); err != nil {
			return err
		}
		if n++; n == cmd.Count {
			return nil
		}
	}
	cmd.exhausted(rule, n)
	return nil
}
