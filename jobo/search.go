package jobo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultSearchPage     = 1
	defaultSearchPageSize = 25
)

// SearchService exposes the full-text job search endpoints.
type SearchService struct {
	client *Client
}

// SearchOptions are the query parameters for the simple search endpoint.
type SearchOptions struct {
	// Query is a free-text search query.
	Query string
	// Location is a location string filter.
	Location string
	// Sources is a comma-separated list of ATS/source identifiers.
	Sources string
	// Remote filters to remote-only (true) or on-site-only (false) jobs.
	Remote *bool
	// PostedAfter restricts results to jobs posted after this UTC time.
	PostedAfter *time.Time
	// Page is the 1-indexed page number. Defaults to 1.
	Page int
	// PageSize is the number of results per page. Defaults to 25; the
	// upper bound is enforced server-side.
	PageSize int
}

// Search queries GET /api/jobs with simple query parameters.
func (s *SearchService) Search(ctx context.Context, opts SearchOptions) (*JobSearchResponse, error) {
	params := url.Values{}
	if opts.Query != "" {
		params.Set("q", opts.Query)
	}
	if opts.Location != "" {
		params.Set("location", opts.Location)
	}
	if opts.Sources != "" {
		params.Set("sources", opts.Sources)
	}
	if opts.Remote != nil {
		params.Set("remote", strconv.FormatBool(*opts.Remote))
	}
	if opts.PostedAfter != nil {
		params.Set("posted_after", opts.PostedAfter.Format(time.RFC3339))
	}

	page := opts.Page
	if page <= 0 {
		page = defaultSearchPage
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var resp JobSearchResponse
	if err := s.client.do(ctx, http.MethodGet, "/api/jobs", params, nil, &resp); err != nil {
		return nil, err
	}
	if err := validateJobs(resp.Jobs); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchAdvanced queries POST /api/jobs/search with a structured body
// supporting multiple queries and locations.
func (s *SearchService) SearchAdvanced(ctx context.Context, req JobSearchRequest) (*JobSearchResponse, error) {
	if req.Page <= 0 {
		req.Page = defaultSearchPage
	}
	if req.PageSize <= 0 {
		req.PageSize = defaultSearchPageSize
	}

	var resp JobSearchResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/jobs/search", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := validateJobs(resp.Jobs); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IterJobs returns an iterator over every search result, walking the pages
// of the advanced search endpoint. Any Page set on req is ignored; the walk
// always starts at page 1.
func (s *SearchService) IterJobs(req JobSearchRequest) *Iter[Job] {
	return newIter(func(ctx context.Context, token string) ([]Job, string, bool, error) {
		page := defaultSearchPage
		if token != "" {
			parsed, err := strconv.Atoi(token)
			if err != nil {
				return nil, "", false, newValidationError("invalid page token", err)
			}
			page = parsed
		}

		pageReq := req
		pageReq.Page = page
		resp, err := s.SearchAdvanced(ctx, pageReq)
		if err != nil {
			return nil, "", false, err
		}

		s.client.logger.Debug().
			Int("page", resp.Page).
			Int("count", len(resp.Jobs)).
			Int("total_pages", resp.TotalPages).
			Msg("Retrieved search page")

		return resp.Jobs, strconv.Itoa(page + 1), resp.HasMorePages(), nil
	})
}
