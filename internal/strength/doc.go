// Package strength implements the rule-based password scorer, the
// qualitative labeler and the recommendation generator.
//
// All functions are pure: they read only their arguments and never fail.
package strength
