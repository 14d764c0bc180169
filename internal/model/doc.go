// Package model defines the core data structures used throughout passcheck.
//
// This package contains the following main types:
//   - CheckResult: The five rule facts derived from a password
//   - Band: The qualitative strength band (weak, medium, strong)
//   - CrackTimeReport: Estimated crack times per attacker scenario
//   - Verdict: The blacklist outcome, including the disabled and unavailable sentinels
//   - EvaluationReport: The aggregate result of evaluating one password
//   - BatchSummary: Totals over a list of evaluated passwords
//
// Models live in their own package so that the strength, pipeline, report and
// database packages can share them without import cycles. All of them are
// serializable to JSON; the evaluated password itself never is.
package model
