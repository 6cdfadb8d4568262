// Package jobo provides a typed client for the Jobo Enterprise Jobs API.
//
// The API exposes full-text job search, a bulk job feed, location
// geocoding, and application-automation endpoints. This package is a pure
// binding: request construction, typed response models, auto-pagination,
// and a closed error taxonomy. Ranking, scraping, and geocoding all happen
// server-side.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := jobo.NewClient(
//	    os.Getenv("JOBO_API_KEY"),
//	    jobo.WithTimeout(30*time.Second),
//	    jobo.WithLogger(logger),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
// Endpoints are grouped into services on the client:
//
//	resp, err := client.Search.Search(ctx, jobo.SearchOptions{Query: "engineer"})
//
// # Pagination
//
// Every paginated resource offers a single-page fetch and an iterator that
// follows pages or cursors until exhaustion:
//
//	it := client.Feed.IterJobs(jobo.JobFeedRequest{Sources: []string{"greenhouse"}})
//	for it.Next(ctx) {
//	    fmt.Println(it.Item().Title)
//	}
//	if err := it.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Iterators fetch one page at a time, strictly in order, and are
// single-use. Stream delivers the same sequence over a channel for
// consumers that select across sources; cancelling the context stops the
// walk without poisoning the client.
//
// # Error handling
//
// All failures are *APIError values matching a closed set of sentinels via
// errors.Is: ErrAuthentication, ErrValidation, ErrRateLimit (carrying
// RetryAfter), ErrServer, and ErrConnection. The client performs no retries
// of its own; retry policy belongs to the caller.
package jobo
