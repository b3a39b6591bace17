package collector

import (
	stderrors "errors"
	"fmt"

	"github.com/go-kratos/kratos/v2/errors"
)

// Error taxonomy for inventory sources. Only the reason and code are compared
// by errors.Is, so values wrapped with WithCause still match.
var (
	// ErrNotApplicable means the category has no meaning on this platform.
	ErrNotApplicable = errors.New(501, "NOT_APPLICABLE", "not supported on this platform")
	// ErrSourceUnavailable means the expected instrumentation API is missing or inaccessible.
	ErrSourceUnavailable = errors.New(503, "SOURCE_UNAVAILABLE", "instrumentation unavailable")
	// ErrQueryFailed means the source was reachable but the query failed or returned malformed data.
	ErrQueryFailed = errors.New(500, "QUERY_FAILED", "query failed")
	// ErrShapeMismatch means two sequences destined for aligned display differ in length.
	ErrShapeMismatch = errors.New(422, "SHAPE_MISMATCH", "sequence lengths differ")
)

var errNoInstances = stderrors.New("no instances returned")

// queryFailed wraps cause as a QueryFailed error naming what was queried.
func queryFailed(what string, cause error) error {
	if errors.Is(cause, ErrNotApplicable) || errors.Is(cause, ErrSourceUnavailable) || errors.Is(cause, ErrQueryFailed) {
		return cause
	}
	return ErrQueryFailed.WithCause(fmt.Errorf("%s: %w", what, cause))
}

// noteFor renders err as the single explanatory note of a result.
func noteFor(err error) string {
	if e := errors.FromError(err); e != nil && e.Reason != errors.UnknownReason {
		if cause := e.Unwrap(); cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, cause)
		}
		return e.Message
	}
	return err.Error()
}
