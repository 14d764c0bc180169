package model

// BatchSummary aggregates the results of evaluating a list of passwords.
type BatchSummary struct {
	// Total is the number of evaluated passwords.
	Total int `json:"total"`

	// WeakCount is the number of passwords in the weak band.
	WeakCount int `json:"weak_count"`

	// MediumCount is the number of passwords in the medium band.
	MediumCount int `json:"medium_count"`

	// StrongCount is the number of passwords in the strong band.
	StrongCount int `json:"strong_count"`

	// CheckedCount is the number of passwords with a definite blacklist verdict.
	CheckedCount int `json:"checked_count"`

	// BlacklistedCount is the number of passwords found on the blacklist.
	BlacklistedCount int `json:"blacklisted_count"`

	// UnavailableCount is the number of evaluations whose blacklist lookup failed.
	UnavailableCount int `json:"unavailable_count"`

	// FailedCount is the number of evaluations that recorded an error.
	FailedCount int `json:"failed_count"`

	// AverageScore is the mean rule-based score.
	AverageScore float64 `json:"average_score"`
}

// Summarize builds a BatchSummary from evaluation reports. Nil entries are skipped.
func Summarize(reports []*EvaluationReport) *BatchSummary {
	s := &BatchSummary{}
	total := 0
	for _, r := range reports {
		if r == nil {
			continue
		}
		s.Total++
		total += r.Score
		if r.Error != "" {
			s.FailedCount++
		}

		switch r.Band {
		case BandStrong:
			s.StrongCount++
		case BandMedium:
			s.MediumCount++
		default:
			s.WeakCount++
		}

		if r.Blacklist.Determined() {
			s.CheckedCount++
		}
		switch r.Blacklist {
		case VerdictBlacklisted:
			s.BlacklistedCount++
		case VerdictUnavailable:
			s.UnavailableCount++
		case VerdictDisabled, VerdictNotBlacklisted:
		}
	}
	if s.Total > 0 {
		s.AverageScore = float64(total) / float64(s.Total)
	}
	return s
}
