// Package dateutil converts between Unix timestamps (whole seconds since
// 1970-01-01T00:00:00Z) and the three UTC calendar string shapes used for
// temporal literals: %Y-%m-%d, %H:%M:%S and %Y-%m-%d %H:%M:%S.
//
// All functions are pure and safe for concurrent use. The only source of
// nondeterminism is the Clock passed to CurrentTimestamp.
//
// Timestamps outside [MinTimestamp, MaxTimestamp] have no four-digit year
// representation; formatting them returns an out_of_range AppError rather
// than producing a string that would not parse back.
package dateutil
