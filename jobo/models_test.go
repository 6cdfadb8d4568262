package jobo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRoundTrip(t *testing.T) {
	posted := time.Date(2026, 8, 15, 9, 30, 0, 0, time.UTC)
	original := Job{
		ID:          uuid.New(),
		Title:       "Senior Go Engineer",
		Company:     JobCompany{ID: uuid.New(), Name: "Acme"},
		Description: "Build things.",
		ListingURL:  "https://jobs.example.com/1",
		ApplyURL:    "https://jobs.example.com/1/apply",
		Locations: []JobLocation{
			{
				City:      String("Berlin"),
				Country:   String("DE"),
				Latitude:  Float64(52.52),
				Longitude: Float64(13.405),
			},
		},
		Compensation: &JobCompensation{
			Min:      Float64(90000),
			Max:      Float64(120000),
			Currency: String("EUR"),
			Period:   String("year"),
		},
		EmploymentType: String("full-time"),
		Source:         "greenhouse",
		SourceID:       "gh-1",
		CreatedAt:      posted,
		UpdatedAt:      posted,
		DatePosted:     &posted,
		IsRemote:       true,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Job
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestJobAbsentOptionalsStayNil(t *testing.T) {
	payload := `{
		"id": "5f0c54f4-94d5-4bdc-9c10-e22b2c05b83c",
		"title": "Engineer",
		"company": {"id": "0e4ffe38-6c5e-4c95-b59f-2cf53d9a05d5", "name": "Acme"},
		"description": "",
		"listing_url": "https://jobs.example.com/1",
		"apply_url": "https://jobs.example.com/1/apply",
		"source": "workday",
		"source_id": "wd-1",
		"created_at": "2026-08-01T00:00:00Z",
		"updated_at": "2026-08-01T00:00:00Z",
		"is_remote": false
	}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(payload), &job))

	assert.Nil(t, job.Compensation)
	assert.Nil(t, job.EmploymentType)
	assert.Nil(t, job.WorkplaceType)
	assert.Nil(t, job.ExperienceLevel)
	assert.Nil(t, job.DatePosted)
	assert.Nil(t, job.ValidThrough)
	assert.Empty(t, job.Locations)
	require.NoError(t, job.Validate())
}

func TestJobUnknownFieldsIgnored(t *testing.T) {
	// Forward compatibility: the API may add fields at any time.
	payload := `{
		"id": "5f0c54f4-94d5-4bdc-9c10-e22b2c05b83c",
		"title": "Engineer",
		"company": {"id": "0e4ffe38-6c5e-4c95-b59f-2cf53d9a05d5", "name": "Acme", "logo_url": "x"},
		"description": "d",
		"listing_url": "u",
		"apply_url": "a",
		"source": "lever",
		"source_id": "lv-1",
		"created_at": "2026-08-01T00:00:00Z",
		"updated_at": "2026-08-01T00:00:00Z",
		"is_remote": true,
		"brand_new_field": {"nested": [1, 2, 3]}
	}`

	var job Job
	require.NoError(t, json.Unmarshal([]byte(payload), &job))
	assert.Equal(t, "Engineer", job.Title)
	assert.True(t, job.IsRemote)
}

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(j *Job)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(j *Job) {},
		},
		{
			name:    "missing id",
			mutate:  func(j *Job) { j.ID = uuid.Nil },
			wantErr: "missing id",
		},
		{
			name:    "missing title",
			mutate:  func(j *Job) { j.Title = "" },
			wantErr: "missing title",
		},
		{
			name:    "missing source",
			mutate:  func(j *Job) { j.Source = "" },
			wantErr: "missing source",
		},
		{
			name: "latitude out of range",
			mutate: func(j *Job) {
				j.Locations = []JobLocation{{Latitude: Float64(91)}}
			},
			wantErr: "latitude",
		},
		{
			name: "longitude out of range",
			mutate: func(j *Job) {
				j.Locations = []JobLocation{{Longitude: Float64(-181)}}
			},
			wantErr: "longitude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := testJob("engineer")
			tt.mutate(&job)

			err := job.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateJobsWrapsAsValidationError(t *testing.T) {
	bad := testJob("engineer")
	bad.Locations = []JobLocation{{Latitude: Float64(123)}}

	err := validateJobs([]Job{testJob("ok"), bad})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestLocationFilterOmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(LocationFilter{Country: String("US")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"country":"US"}`, string(data))
}

func TestFeedRequestOmitsUnsetCursor(t *testing.T) {
	data, err := json.Marshal(JobFeedRequest{BatchSize: 100})
	require.NoError(t, err)
	assert.JSONEq(t, `{"batch_size":100}`, string(data))
}
