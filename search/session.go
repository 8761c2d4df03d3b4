// Package search provides the place-search orchestration pipeline.
// It coordinates paginated nearby-search sessions, result projection,
// marker/card binding, route previews, and profile fetches against the
// provider boundaries defined in the root package.
package search

import (
	"context"

	"github.com/fwojciec/petdex"
)

// State is the lifecycle state of a search session.
type State int

// Session states. A session moves Idle → Paginating → Complete, or to
// Aborted when a newer session supersedes it mid-pagination.
const (
	Idle State = iota
	Paginating
	Complete
	Aborted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Paginating:
		return "paginating"
	case Complete:
		return "complete"
	case Aborted:
		return "aborted"
	}
	return "unknown"
}

// Session is one logical search operation, possibly spanning multiple
// paginated fetches. Exactly one session is current at a time; callbacks
// belonging to a superseded session are recognized by token comparison and
// dropped without touching shared state.
type Session struct {
	// Token identifies the session. Tokens are allocated from a
	// monotonically increasing counter; a session is live while its token
	// equals the coordinator's latest.
	Token uint64

	Origin       petdex.LatLng
	Category     petdex.Category
	RadiusMeters int

	state State
	pages int
	done  chan struct{}
}

// State reports the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Pages reports how many result pages the session has applied.
func (s *Session) Pages() int {
	return s.pages
}

// Done returns a channel closed when the session reaches Complete or
// Aborted. It lets synchronous callers wait for a search they started.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// ProgressType indicates the type of session progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressPage
	ProgressSuperseded
	ProgressCompleted
)

// ProgressEvent reports progress as a search session proceeds.
type ProgressEvent struct {
	Type  ProgressType
	Token uint64

	// Found is the accumulated result count so far (pre-filtering).
	Found int

	// Shown is the displayed result count. Set on ProgressCompleted.
	Shown int

	// Err carries the page error that ended pagination early, if any.
	// A session that ends this way still completes with partial results.
	Err error
}

// ProgressFunc is a callback for reporting session progress.
type ProgressFunc func(event ProgressEvent)

// paginate drives a session's page loop. It runs on its own goroutine; every
// resumption point after an asynchronous completion re-checks that the
// session is still live before mutating shared state.
func (c *Coordinator) paginate(ctx context.Context, sess *Session) {
	req := petdex.SearchRequest{
		Origin:       sess.Origin,
		Category:     sess.Category,
		RadiusMeters: sess.RadiusMeters,
	}

	page, err := c.searcher.Search(ctx, req)
	for {
		if err != nil {
			// Partial results beat no results: a page error ends
			// pagination but keeps what was already accumulated.
			c.complete(sess, err)
			return
		}

		more := c.applyPage(sess, page)
		if !more {
			return
		}

		page, err = c.searcher.NextPage(ctx, page.NextPageToken)
	}
}

// applyPage appends one page of results to the live session. Returns true
// when pagination should continue with the page's next-page token.
func (c *Coordinator) applyPage(sess *Session, page *petdex.Page) bool {
	c.mu.Lock()

	if !c.liveLocked(sess) {
		c.abortLocked(sess)
		c.mu.Unlock()
		return false
	}

	c.accumulated = append(c.accumulated, page.Places...)
	sess.pages++
	found := len(c.accumulated)
	c.mu.Unlock()

	c.emit(ProgressEvent{Type: ProgressPage, Token: sess.Token, Found: found})

	if page.NextPageToken == "" {
		c.complete(sess, nil)
		return false
	}
	return true
}

// complete finishes a session: dedupes the accumulated results, renders,
// and publishes the final counts. A session that is no longer live aborts
// instead.
func (c *Coordinator) complete(sess *Session, pageErr error) {
	c.mu.Lock()

	if !c.liveLocked(sess) {
		c.abortLocked(sess)
		c.mu.Unlock()
		return
	}

	c.accumulated = petdex.Dedupe(c.accumulated, c.origin)
	sess.state = Complete
	c.renderLocked()
	found := len(c.accumulated)
	shown := len(c.displayed)
	close(sess.done)
	c.mu.Unlock()

	c.emit(ProgressEvent{
		Type:  ProgressCompleted,
		Token: sess.Token,
		Found: found,
		Shown: shown,
		Err:   pageErr,
	})
}

// abortLocked marks a superseded session aborted. Idempotent; the caller
// holds the coordinator mutex.
func (c *Coordinator) abortLocked(sess *Session) {
	if sess.state == Aborted {
		return
	}
	sess.state = Aborted
	close(sess.done)
	go c.emit(ProgressEvent{Type: ProgressSuperseded, Token: sess.Token})
}

// liveLocked reports whether sess is still the current session.
func (c *Coordinator) liveLocked(sess *Session) bool {
	return c.session == sess && sess.state == Paginating
}

func (c *Coordinator) emit(event ProgressEvent) {
	if c.progress != nil {
		c.progress(event)
	}
}
