// Package pipeline evaluates passwords by running a sequence of steps.
//
// Each step receives the evaluation report built so far and fills in its
// part: the rule checks and score, the band and message, the
// recommendations, the crack-time estimate and the blacklist verdict.
// DefaultPipeline assembles these steps in that order.
//
// Steps share nothing but the report, so a pipeline can be rebuilt cheaply
// for every password. BatchProcessor does exactly that to evaluate a list of
// passwords concurrently with errgroup while keeping the input order.
package pipeline
