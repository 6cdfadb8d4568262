package jobo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultFeedBatchSize = 1000

// FeedService exposes the bulk job feed endpoints.
type FeedService struct {
	client *Client
}

// Jobs fetches a single batch from POST /api/feed/jobs. A cursor returned
// in the response is valid only for the immediately following call; do not
// reorder or replay stale cursors.
func (s *FeedService) Jobs(ctx context.Context, req JobFeedRequest) (*JobFeedResponse, error) {
	if req.BatchSize <= 0 {
		req.BatchSize = defaultFeedBatchSize
	}

	var resp JobFeedResponse
	if err := s.client.do(ctx, http.MethodPost, "/api/feed/jobs", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := validateJobs(resp.Jobs); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IterJobs returns an iterator over the whole feed, following cursors until
// the server reports no more results. Any Cursor set on req is ignored; the
// walk always starts from the beginning of the feed.
func (s *FeedService) IterJobs(req JobFeedRequest) *Iter[Job] {
	return newIter(func(ctx context.Context, token string) ([]Job, string, bool, error) {
		batchReq := req
		batchReq.Cursor = token
		resp, err := s.Jobs(ctx, batchReq)
		if err != nil {
			return nil, "", false, err
		}

		s.client.logger.Debug().
			Int("count", len(resp.Jobs)).
			Bool("has_more", resp.HasMore).
			Msg("Retrieved feed batch")

		next := ""
		if resp.NextCursor != nil {
			next = *resp.NextCursor
		}
		return resp.Jobs, next, resp.HasMore, nil
	})
}

// ExpiredJobIDsOptions are the parameters for the expired job IDs endpoint.
type ExpiredJobIDsOptions struct {
	// ExpiredSince is the UTC timestamp to look back from. The server
	// accepts at most 7 days in the past.
	ExpiredSince time.Time
	// Cursor is the pagination cursor from a previous response.
	Cursor string
	// BatchSize is the number of IDs per batch. Defaults to 1000.
	BatchSize int
}

// ExpiredJobIDs fetches a single batch from GET /api/feed/jobs/expired.
func (s *FeedService) ExpiredJobIDs(ctx context.Context, opts ExpiredJobIDsOptions) (*ExpiredJobIDsResponse, error) {
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultFeedBatchSize
	}

	params := url.Values{}
	params.Set("expired_since", opts.ExpiredSince.Format(time.RFC3339))
	params.Set("batch_size", strconv.Itoa(batchSize))
	if opts.Cursor != "" {
		params.Set("cursor", opts.Cursor)
	}

	var resp ExpiredJobIDsResponse
	if err := s.client.do(ctx, http.MethodGet, "/api/feed/jobs/expired", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IterExpiredJobIDs returns an iterator over all expired job IDs since the
// given time. Any Cursor set on opts is ignored.
func (s *FeedService) IterExpiredJobIDs(opts ExpiredJobIDsOptions) *Iter[uuid.UUID] {
	return newIter(func(ctx context.Context, token string) ([]uuid.UUID, string, bool, error) {
		batchOpts := opts
		batchOpts.Cursor = token
		resp, err := s.ExpiredJobIDs(ctx, batchOpts)
		if err != nil {
			return nil, "", false, err
		}

		next := ""
		if resp.NextCursor != nil {
			next = *resp.NextCursor
		}
		return resp.JobIDs, next, resp.HasMore, nil
	})
}
