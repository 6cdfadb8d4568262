package jobo

import "context"

// pageFunc fetches one page of a paginated resource. The empty token
// requests the first page. It returns the page's items, the token for the
// following page, and whether more pages remain.
type pageFunc[T any] func(ctx context.Context, token string) (items []T, next string, more bool, err error)

// Iter lazily walks a paginated resource, one item at a time, in the style
// of bufio.Scanner:
//
//	it := client.Feed.IterJobs(jobo.JobFeedRequest{})
//	for it.Next(ctx) {
//	    process(it.Item())
//	}
//	if err := it.Err(); err != nil {
//	    // handle the first failed page fetch
//	}
//
// An Iter is single-use and forward-only: once exhausted, or once a page
// fetch has failed, it cannot be restarted. Items already returned before a
// failure remain valid; the error surfaces through Err after they have been
// consumed. Pages are fetched strictly sequentially, one in flight at a
// time, and only when the previous page's items are drained.
type Iter[T any] struct {
	fetch pageFunc[T]

	buf   []T
	pos   int
	cur   T
	token string
	done  bool
	err   error
}

func newIter[T any](fetch pageFunc[T]) *Iter[T] {
	return &Iter[T]{fetch: fetch}
}

// Next advances to the next item, fetching the next page when the current
// one is exhausted. It returns false when no items remain or a page fetch
// failed; check Err to tell the two apart.
func (it *Iter[T]) Next(ctx context.Context) bool {
	for {
		if it.pos < len(it.buf) {
			it.cur = it.buf[it.pos]
			it.pos++
			return true
		}

		if it.done || it.err != nil {
			var zero T
			it.cur = zero
			return false
		}

		if err := ctx.Err(); err != nil {
			it.err = err
			it.done = true
			continue
		}

		items, next, more, err := it.fetch(ctx, it.token)
		if err != nil {
			it.err = err
			it.done = true
			continue
		}

		it.buf = items
		it.pos = 0

		if !more {
			it.done = true
			continue
		}

		// A page claiming more results must supply a fresh token;
		// anything else would loop forever on the same page.
		if next == "" || next == it.token {
			it.err = &APIError{
				Kind:   KindValidation,
				Detail: "pagination reported more results but returned no usable cursor",
			}
			it.done = true
			continue
		}

		it.token = next
	}
}

// Item returns the item produced by the last successful call to Next.
func (it *Iter[T]) Item() T {
	return it.cur
}

// Err returns the error that terminated iteration, or nil after a clean
// exhaustion.
func (it *Iter[T]) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect(ctx context.Context) ([]T, error) {
	var out []T
	for it.Next(ctx) {
		out = append(out, it.Item())
	}
	return out, it.Err()
}

// Result carries one streamed item or the terminal error of a Stream walk.
type Result[T any] struct {
	Item T
	Err  error
}

// Stream drives the iterator from a goroutine and delivers items over a
// channel, for consumers that select across several sources. The channel is
// closed after the last item, or after a single terminal Result carrying
// the error that stopped the walk. Cancelling ctx aborts the pending page
// fetch and releases the goroutine; the client itself stays usable.
func (it *Iter[T]) Stream(ctx context.Context) <-chan Result[T] {
	ch := make(chan Result[T])
	go func() {
		defer close(ch)
		for it.Next(ctx) {
			select {
			case ch <- Result[T]{Item: it.Item()}:
			case <-ctx.Done():
				return
			}
		}
		if err := it.Err(); err != nil {
			select {
			case ch <- Result[T]{Err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}
