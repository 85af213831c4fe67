// Package ai defines the provider-neutral interface for the optional
// screening advisor. The advisor reviews a finished rule-based analysis
// and adds a free-form second opinion; it never changes scores or the
// recommendation.
package ai

import (
	"context"

	"recruit-assist/internal/recruit"
)

// ScreeningAdvice is the advisor's commentary on one candidate analysis.
type ScreeningAdvice struct {
	Summary   string
	Strengths []string
	Concerns  []string
	Raw       string
}

// Advisor produces screening advice for a candidate already scored
// against a position.
type Advisor interface {
	Review(ctx context.Context, candidate *recruit.CandidateProfile, job *recruit.JobRequirement, result *recruit.MatchingResult) (*ScreeningAdvice, error)
}
