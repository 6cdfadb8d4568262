package filter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobo-world/jobo-go/jobo"
)

func sampleJob() jobo.Job {
	return jobo.Job{
		ID:      uuid.New(),
		Title:   "Senior Go Engineer",
		Company: jobo.JobCompany{ID: uuid.New(), Name: "Acme"},
		Locations: []jobo.JobLocation{
			{City: jobo.String("Berlin"), Country: jobo.String("DE")},
		},
		Compensation: &jobo.JobCompensation{
			Min: jobo.Float64(90000),
			Max: jobo.Float64(120000),
		},
		Source:    "greenhouse",
		SourceID:  "gh-1",
		CreatedAt: time.Now().AddDate(0, 0, -3),
		IsRemote:  true,
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "empty", expression: ""},
		{name: "whitespace", expression: "   "},
		{name: "syntax error", expression: "Title contains"},
		{name: "non-boolean result", expression: "SalaryMin + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			assert.Error(t, err)
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "title match", expression: `Title contains "Go"`, want: true},
		{name: "title no match", expression: `Title contains "Rust"`, want: false},
		{name: "case helpers", expression: `lower(Title) contains "go"`, want: true},
		{name: "remote flag", expression: `IsRemote`, want: true},
		{name: "salary floor", expression: `SalaryMin >= 80000`, want: true},
		{name: "salary too low", expression: `SalaryMin >= 150000`, want: false},
		{name: "source", expression: `Source == "greenhouse"`, want: true},
		{name: "country list", expression: `"DE" in Countries`, want: true},
		{name: "recency", expression: `daysSince(Job.CreatedAt) < 7`, want: true},
		{name: "combined", expression: `IsRemote and Company == "Acme" and SalaryMax > 100000`, want: true},
	}

	job := sampleJob()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Match(job)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestMatchWithoutCompensation(t *testing.T) {
	job := sampleJob()
	job.Compensation = nil

	f, err := Compile(`SalaryMin == 0`)
	require.NoError(t, err)

	matched, err := f.Match(job)
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestString(t *testing.T) {
	f, err := Compile(`IsRemote`)
	require.NoError(t, err)
	assert.Equal(t, "IsRemote", f.String())
}
