package jobo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JobCompany is the company associated with a job listing.
type JobCompany struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// JobLocation is a geographic location attached to a job. All fields are
// optional; absent fields stay nil.
type JobLocation struct {
	Location  *string  `json:"location,omitempty"`
	City      *string  `json:"city,omitempty"`
	State     *string  `json:"state,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Validate checks coordinate ranges.
func (l *JobLocation) Validate() error {
	if l.Latitude != nil && (*l.Latitude < -90 || *l.Latitude > 90) {
		return fmt.Errorf("latitude %v out of range [-90, 90]", *l.Latitude)
	}
	if l.Longitude != nil && (*l.Longitude < -180 || *l.Longitude > 180) {
		return fmt.Errorf("longitude %v out of range [-180, 180]", *l.Longitude)
	}
	return nil
}

// JobCompensation holds compensation details for a job.
type JobCompensation struct {
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	Period      *string  `json:"period,omitempty"`
	RawText     *string  `json:"raw_text,omitempty"`
	IsEstimated bool     `json:"is_estimated"`
}

// Job is a job listing returned by the API.
type Job struct {
	ID              uuid.UUID        `json:"id"`
	Title           string           `json:"title"`
	Company         JobCompany       `json:"company"`
	Description     string           `json:"description"`
	ListingURL      string           `json:"listing_url"`
	ApplyURL        string           `json:"apply_url"`
	Locations       []JobLocation    `json:"locations,omitempty"`
	Compensation    *JobCompensation `json:"compensation,omitempty"`
	EmploymentType  *string          `json:"employment_type,omitempty"`
	WorkplaceType   *string          `json:"workplace_type,omitempty"`
	ExperienceLevel *string          `json:"experience_level,omitempty"`
	Source          string           `json:"source"`
	SourceID        string           `json:"source_id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DatePosted      *time.Time       `json:"date_posted,omitempty"`
	ValidThrough    *time.Time       `json:"valid_through,omitempty"`
	IsRemote        bool             `json:"is_remote"`
}

// Validate checks required fields and numeric ranges on a decoded job.
func (j *Job) Validate() error {
	if j.ID == uuid.Nil {
		return fmt.Errorf("job is missing id")
	}
	if j.Title == "" {
		return fmt.Errorf("job %s is missing title", j.ID)
	}
	if j.Source == "" {
		return fmt.Errorf("job %s is missing source", j.ID)
	}
	for i := range j.Locations {
		if err := j.Locations[i].Validate(); err != nil {
			return fmt.Errorf("job %s location %d: %w", j.ID, i, err)
		}
	}
	return nil
}

// validateJobs runs Validate over a decoded page of jobs and converts the
// first failure into a validation-kind error.
func validateJobs(jobs []Job) error {
	for i := range jobs {
		if err := jobs[i].Validate(); err != nil {
			return newValidationError("invalid job in response", err)
		}
	}
	return nil
}

// LocationFilter is a structured location filter for the feed endpoint.
// Provided fields are combined with AND semantics server-side.
type LocationFilter struct {
	Country *string `json:"country,omitempty"`
	Region  *string `json:"region,omitempty"`
	City    *string `json:"city,omitempty"`
}

// JobFeedRequest is the body for POST /api/feed/jobs.
type JobFeedRequest struct {
	Locations   []LocationFilter `json:"locations,omitempty"`
	Sources     []string         `json:"sources,omitempty"`
	IsRemote    *bool            `json:"is_remote,omitempty"`
	PostedAfter *time.Time       `json:"posted_after,omitempty"`
	Cursor      string           `json:"cursor,omitempty"`
	BatchSize   int              `json:"batch_size,omitempty"`
}

// JobFeedResponse is the cursor-paginated feed page. NextCursor is present
// iff HasMore is true.
type JobFeedResponse struct {
	Jobs       []Job   `json:"jobs"`
	NextCursor *string `json:"next_cursor,omitempty"`
	HasMore    bool    `json:"has_more"`
}

// ExpiredJobIDsResponse is a cursor-paginated page of expired job IDs.
type ExpiredJobIDsResponse struct {
	JobIDs     []uuid.UUID `json:"job_ids"`
	NextCursor *string     `json:"next_cursor,omitempty"`
	HasMore    bool        `json:"has_more"`
}

// JobSearchRequest is the body for POST /api/jobs/search.
type JobSearchRequest struct {
	Queries     []string   `json:"queries,omitempty"`
	Locations   []string   `json:"locations,omitempty"`
	Sources     []string   `json:"sources,omitempty"`
	IsRemote    *bool      `json:"is_remote,omitempty"`
	PostedAfter *time.Time `json:"posted_after,omitempty"`
	Page        int        `json:"page,omitempty"`
	PageSize    int        `json:"page_size,omitempty"`
}

// JobSearchResponse is the page-based search result. Page numbers are
// 1-indexed.
type JobSearchResponse struct {
	Jobs       []Job `json:"jobs"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// HasMorePages reports whether pages remain after the current one.
func (r *JobSearchResponse) HasMorePages() bool {
	return r.Page < r.TotalPages
}

// GeocodedLocation is one resolved location from the geocoder.
type GeocodedLocation struct {
	DisplayName string   `json:"display_name"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Country     *string  `json:"country,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// GeocodeResult is the response from GET /api/locations/geocode.
type GeocodeResult struct {
	Input     string             `json:"input"`
	Succeeded bool               `json:"succeeded"`
	Locations []GeocodedLocation `json:"locations"`
}

// FormField is a single form field in an auto-apply session.
type FormField struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Label    string   `json:"label,omitempty"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FieldAnswer is a write-only answer for one form field.
type FieldAnswer struct {
	FieldID string `json:"field_id"`
	Value   string `json:"value"`
}

// AutoApplySession is the server-side session state reflected back to the
// client. The client keeps no state machine of its own; IsTerminal marks a
// completed or ended session.
type AutoApplySession struct {
	SessionID  uuid.UUID   `json:"session_id"`
	Provider   string      `json:"provider"`
	Fields     []FormField `json:"fields"`
	Status     string      `json:"status,omitempty"`
	IsTerminal bool        `json:"is_terminal"`
}

type startSessionRequest struct {
	ApplyURL string `json:"apply_url"`
}

type setAnswersRequest struct {
	SessionID uuid.UUID     `json:"session_id"`
	Answers   []FieldAnswer `json:"answers"`
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Float64 returns a pointer to f, for optional request fields.
func Float64(f float64) *float64 { return &f }
