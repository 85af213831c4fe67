package recruit

// Recommendation is the hiring verdict derived from the overall score.
type Recommendation string

const (
	RecommendationPass      Recommendation = "pass"
	RecommendationInterview Recommendation = "interview"
	RecommendationReject    Recommendation = "reject"
)

// IsValid reports whether the value is one of the known verdicts.
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationPass, RecommendationInterview, RecommendationReject:
		return true
	default:
		return false
	}
}

func (r Recommendation) String() string {
	return string(r)
}

// MatchingResult is the weighted evaluation of one candidate against one
// job requirement. The overall score is always the weighted sum of the four
// sub-scores and the recommendation is a pure function of the overall score.
// A result is built once per (candidate, job) pair and not mutated.
type MatchingResult struct {
	CandidateName        string            `json:"candidate_name"`
	OverallScore         float64           `json:"overall_score"`
	SkillMatchScore      float64           `json:"skill_match_score"`
	ExperienceMatchScore float64           `json:"experience_match_score"`
	CultureFitScore      float64           `json:"culture_fit_score"`
	EducationMatchScore  float64           `json:"education_match_score"`
	DetailedAnalysis     map[string]string `json:"detailed_analysis"`
	Recommendation       Recommendation    `json:"recommendation"`
	InterviewFocusAreas  []string          `json:"interview_focus_areas"`
}
