// Package filter compiles expression-based filters over job listings for
// the CLI, using the expr language.
//
// Expressions see the job as Job plus a few flattened shortcuts:
//
//	Title contains "go" and IsRemote
//	Company startsWith "acme" and daysSince(Job.CreatedAt) < 14
//	SalaryMin >= 90000
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jobo-world/jobo-go/jobo"
)

// Filter is a compiled job filter expression.
type Filter struct {
	program    *vm.Program
	expression string
}

// helpers are the static functions available inside expressions.
var helpers = map[string]any{
	"daysSince": func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	},
	"daysAgo": func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	},
	"monthsAgo": func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	},
	"parseDate": func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	},
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"now":   time.Now,
}

// Compile compiles a filter expression. The expression must evaluate to a
// boolean.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(buildEnv(jobo.Job{})),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter expression: %w", err)
	}

	return &Filter{
		program:    program,
		expression: expression,
	}, nil
}

// Match evaluates the filter against one job.
func (f *Filter) Match(job jobo.Job) (bool, error) {
	result, err := expr.Run(f.program, buildEnv(job))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter: %w", err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return a boolean")
	}
	return matched, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expression
}

// buildEnv exposes the job plus flattened shortcuts for common fields.
func buildEnv(job jobo.Job) map[string]any {
	env := map[string]any{
		"Job":      job,
		"Title":    job.Title,
		"Company":  job.Company.Name,
		"Source":   job.Source,
		"IsRemote": job.IsRemote,
	}

	var salaryMin, salaryMax float64
	if job.Compensation != nil {
		if job.Compensation.Min != nil {
			salaryMin = *job.Compensation.Min
		}
		if job.Compensation.Max != nil {
			salaryMax = *job.Compensation.Max
		}
	}
	env["SalaryMin"] = salaryMin
	env["SalaryMax"] = salaryMax

	var countries []string
	for _, loc := range job.Locations {
		if loc.Country != nil {
			countries = append(countries, *loc.Country)
		}
	}
	env["Countries"] = countries

	for name, fn := range helpers {
		env[name] = fn
	}
	return env
}
