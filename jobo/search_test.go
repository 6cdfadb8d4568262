package jobo

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testJob builds a minimal valid job fixture.
func testJob(title string) Job {
	return Job{
		ID:         uuid.New(),
		Title:      title,
		Company:    JobCompany{ID: uuid.New(), Name: "Acme"},
		ListingURL: "https://jobs.example.com/" + title,
		ApplyURL:   "https://jobs.example.com/" + title + "/apply",
		Source:     "greenhouse",
		SourceID:   "gh-" + title,
	}
}

func TestSearchQueryParameters(t *testing.T) {
	var gotQuery map[string][]string
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)
		gotQuery = r.URL.Query()
		json.NewEncoder(w).Encode(JobSearchResponse{Page: 1, TotalPages: 1})
	})

	_, err := client.Search.Search(context.Background(), SearchOptions{
		Query:    "engineer",
		Location: "Berlin",
		Sources:  "greenhouse,workday",
		Remote:   Bool(true),
		Page:     2,
		PageSize: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"engineer"}, gotQuery["q"])
	assert.Equal(t, []string{"Berlin"}, gotQuery["location"])
	assert.Equal(t, []string{"greenhouse,workday"}, gotQuery["sources"])
	assert.Equal(t, []string{"true"}, gotQuery["remote"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
	assert.Equal(t, []string{"50"}, gotQuery["page_size"])
}

func TestSearchDefaults(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "25", q.Get("page_size"))
		assert.Empty(t, q.Get("q"))
		assert.Empty(t, q.Get("remote"))
		json.NewEncoder(w).Encode(JobSearchResponse{Page: 1, TotalPages: 0})
	})

	resp, err := client.Search.Search(context.Background(), SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, resp.Jobs)
}

func TestSearchAdvancedBody(t *testing.T) {
	var gotBody JobSearchRequest
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobs/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(JobSearchResponse{
			Jobs:       []Job{testJob("backend")},
			Total:      1,
			Page:       1,
			PageSize:   25,
			TotalPages: 1,
		})
	})

	resp, err := client.Search.SearchAdvanced(context.Background(), JobSearchRequest{
		Queries:   []string{"go", "backend"},
		Locations: []string{"Berlin", "Remote"},
		IsRemote:  Bool(true),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "backend"}, gotBody.Queries)
	assert.Equal(t, []string{"Berlin", "Remote"}, gotBody.Locations)
	require.NotNil(t, gotBody.IsRemote)
	assert.True(t, *gotBody.IsRemote)
	assert.Equal(t, 1, gotBody.Page)
	assert.Equal(t, 25, gotBody.PageSize)

	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "backend", resp.Jobs[0].Title)
}

func TestSearchIterJobsWalksPages(t *testing.T) {
	pages := [][]Job{
		{testJob("one"), testJob("two")},
		{testJob("three")},
		{testJob("four")},
	}

	var requestedPages []int
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req JobSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		requestedPages = append(requestedPages, req.Page)
		require.LessOrEqual(t, req.Page, len(pages))
		json.NewEncoder(w).Encode(JobSearchResponse{
			Jobs:       pages[req.Page-1],
			Total:      4,
			Page:       req.Page,
			PageSize:   2,
			TotalPages: len(pages),
		})
	})

	it := client.Search.IterJobs(JobSearchRequest{Queries: []string{"engineer"}, PageSize: 2})
	jobs, err := it.Collect(context.Background())
	require.NoError(t, err)

	var titles []string
	for _, job := range jobs {
		titles = append(titles, job.Title)
	}
	assert.Equal(t, []string{"one", "two", "three", "four"}, titles)
	assert.Equal(t, []int{1, 2, 3}, requestedPages)
}

func TestSearchIterJobsPropagatesPageError(t *testing.T) {
	client := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req JobSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Page >= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(JobSearchResponse{
			Jobs:       []Job{testJob("p" + strconv.Itoa(req.Page))},
			Page:       req.Page,
			TotalPages: 3,
		})
	})

	it := client.Search.IterJobs(JobSearchRequest{})
	var titles []string
	for it.Next(context.Background()) {
		titles = append(titles, it.Item().Title)
	}

	assert.Equal(t, []string{"p1"}, titles)
	assert.ErrorIs(t, it.Err(), ErrServer)
}
