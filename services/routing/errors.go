package routing

import "errors"

// ErrStaleRoutingResult indicates a routing result whose request id does not
// match the request that was submitted. Mixing candidate sets from different
// requests would display an inconsistent order, so this is surfaced to the
// caller rather than silently dropped.
var ErrStaleRoutingResult = errors.New("routing result does not match submitted request id")
