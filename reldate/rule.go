package reldate

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/gorhill/cronexpr"
)

// Rule produces the dates matching a relative date rule.
type Rule interface {
	// Dates returns the lazy, unbounded sequence of matching dates
	// relative to seed.
	Dates(seed time.Time) iter.Seq[time.Time]

	// Description returns a human readable form of the rule.
	Description() string
}

var (
	_ Rule = (*MonthRule)(nil)
	_ Rule = (*WeekRule)(nil)
	_ Rule = (*YearRule)(nil)
	_ Rule = (*CronRule)(nil)
)

// MonthRule matches the Nth weekday of every month.
type MonthRule struct {
	Weekday Weekday
	Ordinal int
}

// NewMonthRule returns a new MonthRule. A month with fewer than ordinal
// occurrences of weekday resolves to its last occurrence.
func NewMonthRule(weekday Weekday, ordinal int) (*MonthRule, error) {
	if err := validateWeekday(weekday); err != nil {
		return nil, err
	}
	if err := validateOrdinal(ordinal); err != nil {
		return nil, err
	}
	return &MonthRule{Weekday: weekday, Ordinal: ordinal}, nil
}

// Dates implements the Rule interface.
func (r *MonthRule) Dates(seed time.Time) iter.Seq[time.Time] {
	return MonthSequence(seed, r.Weekday.Std(), r.Ordinal)
}

// Description implements the Rule interface.
func (r *MonthRule) Description() string {
	return fmt.Sprintf("%d%s %s of every month", r.Ordinal, ordinalSuffix(r.Ordinal), r.Weekday)
}

// WeekRule matches every occurrence of a weekday.
type WeekRule struct {
	Weekday Weekday
}

// NewWeekRule returns a new WeekRule.
func NewWeekRule(weekday Weekday) (*WeekRule, error) {
	if err := validateWeekday(weekday); err != nil {
		return nil, err
	}
	return &WeekRule{Weekday: weekday}, nil
}

// Dates implements the Rule interface.
func (r *WeekRule) Dates(seed time.Time) iter.Seq[time.Time] {
	return WeekSequence(seed, r.Weekday.Std())
}

// Description implements the Rule interface.
func (r *WeekRule) Description() string {
	return "every " + r.Weekday.String()
}

// YearRule matches the Nth day of every year.
type YearRule struct {
	Day int
}

// NewYearRule returns a new YearRule for the given day of the year, 1-366.
func NewYearRule(dayOfYear int) (*YearRule, error) {
	if err := validateDayOfYear(dayOfYear); err != nil {
		return nil, err
	}
	return &YearRule{Day: dayOfYear}, nil
}

// Dates implements the Rule interface.
func (r *YearRule) Dates(seed time.Time) iter.Seq[time.Time] {
	return YearSequence(seed, r.Day)
}

// Description implements the Rule interface.
func (r *YearRule) Description() string {
	return fmt.Sprintf("%d%s day of every year", r.Day, ordinalSuffix(r.Day))
}

// CronRule matches the days on which a cron expression fires.
type CronRule struct {
	expression string
	expr       *cronexpr.Expression
}

// NewCronRule returns a new CronRule. The expression may have 5, 6 or 7
// fields and supports the L, W and # modifiers.
func NewCronRule(expression string) (*CronRule, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, cronParseError("empty expression")
	}
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, cronParseError(err.Error())
	}
	return &CronRule{expression: expression, expr: expr}, nil
}

// Expression returns the cron expression of the rule.
func (r *CronRule) Expression() string {
	return r.expression
}

// Dates implements the Rule interface.
func (r *CronRule) Dates(seed time.Time) iter.Seq[time.Time] {
	return CronSequence(seed, r.expr)
}

// Description implements the Rule interface.
func (r *CronRule) Description() string {
	return fmt.Sprintf("days matching %q", r.expression)
}

func validateWeekday(weekday Weekday) error {
	if !weekday.Valid() {
		return illegalArgumentError(fmt.Sprintf("weekday %d is out of range 1-7", weekday))
	}
	return nil
}

func validateOrdinal(ordinal int) error {
	if ordinal < 1 {
		return illegalArgumentError(fmt.Sprintf("ordinal %d must be positive", ordinal))
	}
	return nil
}

func validateDayOfYear(day int) error {
	if day < 1 || day > 366 {
		return illegalArgumentError(fmt.Sprintf("day of year %d is out of range 1-366", day))
	}
	return nil
}

func validateCount(count int) error {
	if count < 1 {
		return illegalArgumentError(fmt.Sprintf("count %d must be positive", count))
	}
	return nil
}
