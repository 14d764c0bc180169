package pipeline

import (
	"context"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/passcheck/internal/blacklist"
	"github.com/nao1215/passcheck/internal/estimator"
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/strength"
)

// ScoreStep evaluates the five rules and stores the checks and score.
type ScoreStep struct {
	charset strength.Charset
}

// NewScoreStep creates a ScoreStep using charset.
func NewScoreStep(charset strength.Charset) *ScoreStep {
	return &ScoreStep{charset: charset}
}

// Name returns the step name.
func (s *ScoreStep) Name() string {
	return "score"
}

// Do implements Step.
func (s *ScoreStep) Do(_ context.Context, report *model.EvaluationReport) error {
	report.Checks = strength.Check(report.Password, s.charset)
	report.Score = report.Checks.Passed()
	return nil
}

// LabelStep maps the score to a band and message.
type LabelStep struct{}

// NewLabelStep creates a LabelStep.
func NewLabelStep() *LabelStep {
	return &LabelStep{}
}

// Name returns the step name.
func (s *LabelStep) Name() string {
	return "label"
}

// Do implements Step.
func (s *LabelStep) Do(_ context.Context, report *model.EvaluationReport) error {
	report.Band, report.Message = strength.Label(report.Score)
	return nil
}

// RecommendStep lists a suggestion for every failed rule.
type RecommendStep struct {
	charset strength.Charset
}

// NewRecommendStep creates a RecommendStep using charset.
func NewRecommendStep(charset strength.Charset) *RecommendStep {
	return &RecommendStep{charset: charset}
}

// Name returns the step name.
func (s *RecommendStep) Name() string {
	return "recommend"
}

// Do implements Step.
func (s *RecommendStep) Do(_ context.Context, report *model.EvaluationReport) error {
	report.Recommendations = strength.Recommend(report.Password, report.Score, s.charset)
	return nil
}

// EstimateStep asks an Estimator for crack times and copies them into the report.
type EstimateStep struct {
	estimator estimator.Estimator
}

// NewEstimateStep creates an EstimateStep. A nil estimator reports unknown crack times.
func NewEstimateStep(est estimator.Estimator) *EstimateStep {
	if est == nil {
		est = estimator.Nop{}
	}
	return &EstimateStep{estimator: est}
}

// Name returns the step name.
func (s *EstimateStep) Name() string {
	return "estimate"
}

// Do implements Step.
func (s *EstimateStep) Do(_ context.Context, report *model.EvaluationReport) error {
	result := s.estimator.Estimate(report.Password)
	if result == nil || len(result.Scenarios) == 0 {
		report.CrackTimes = model.CrackTimeReport{Unknown: true}
		return nil
	}

	crackTimes := model.CrackTimeReport{
		Scenarios:    make([]model.CrackTime, 0, len(result.Scenarios)),
		GuessesLog10: result.GuessesLog10,
		Entropy:      result.Entropy,
		Score:        result.Score,
	}
	for _, sc := range result.Scenarios {
		crackTimes.Scenarios = append(crackTimes.Scenarios, model.CrackTime{
			Scenario: capitalize(sc.Name),
			Display:  sc.Display,
		})
	}
	report.CrackTimes = crackTimes
	return nil
}

// capitalize upper-cases the first letter of s and lower-cases the rest.
// Casers keep state, so new ones are created for each call.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// BlacklistStep records the blacklist verdict.
type BlacklistStep struct {
	checker *blacklist.Checker
}

// NewBlacklistStep creates a BlacklistStep.
func NewBlacklistStep(checker *blacklist.Checker) *BlacklistStep {
	return &BlacklistStep{checker: checker}
}

// Name returns the step name.
func (s *BlacklistStep) Name() string {
	return "blacklist"
}

// Do implements Step.
func (s *BlacklistStep) Do(ctx context.Context, report *model.EvaluationReport) error {
	report.Blacklist = s.checker.Check(ctx, report.Password)
	return nil
}

// DefaultPipelineConfig holds configuration for the default pipeline.
type DefaultPipelineConfig struct {
	// Charset selects the character classes of the rule checks.
	Charset strength.Charset

	// Estimator produces crack times. Nil means unknown crack times.
	Estimator estimator.Estimator

	// Checker performs the blacklist lookup. The blacklist step is added
	// only when the checker is enabled.
	Checker *blacklist.Checker
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineCharset sets the character classes used by the rule checks.
func WithPipelineCharset(cs strength.Charset) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Charset = cs
	}
}

// WithPipelineEstimator sets the crack-time estimator.
func WithPipelineEstimator(est estimator.Estimator) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Estimator = est
	}
}

// WithPipelineBlacklist sets the blacklist checker.
func WithPipelineBlacklist(checker *blacklist.Checker) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Checker = checker
	}
}

// DefaultPipeline creates a pipeline that runs score, label, recommend,
// estimate and, when a checker is enabled, blacklist. Without a blacklist
// step the report keeps model.VerdictDisabled.
func DefaultPipeline(pipelineOpts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	p := New(pipelineOpts...)

	cfg := &DefaultPipelineConfig{
		Charset:   strength.CharsetASCII,
		Estimator: estimator.NewZxcvbn(),
	}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p.AddSteps(
		NewScoreStep(cfg.Charset),
		NewLabelStep(),
		NewRecommendStep(cfg.Charset),
		NewEstimateStep(cfg.Estimator),
	)
	if cfg.Checker.Enabled() {
		p.AddStep(NewBlacklistStep(cfg.Checker))
	}
	return p
}
