// Package interview generates stage-appropriate interview plans from a
// candidate profile, a job requirement and its matching result.
package interview

import "recruit-assist/internal/recruit"

// Category is one of the eight skill categories questions and criteria
// are tagged with.
type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryCommunication  Category = "communication"
	CategoryLeadership     Category = "leadership"
	CategoryProblemSolving Category = "problem_solving"
	CategoryTeamwork       Category = "teamwork"
	CategoryAdaptability   Category = "adaptability"
	CategoryCreativity     Category = "creativity"
	CategoryWorkEthic      Category = "work_ethic"
)

// Label returns the Japanese display name of the category.
func (c Category) Label() string {
	switch c {
	case CategoryTechnical:
		return "技術スキル"
	case CategoryCommunication:
		return "コミュニケーション"
	case CategoryLeadership:
		return "リーダーシップ"
	case CategoryProblemSolving:
		return "問題解決能力"
	case CategoryTeamwork:
		return "チームワーク"
	case CategoryAdaptability:
		return "適応力"
	case CategoryCreativity:
		return "創造性"
	case CategoryWorkEthic:
		return "職業倫理"
	default:
		return string(c)
	}
}

// Question is a static interview question template, indexed by category
// and stage. Templates are read-only after registry construction.
type Question struct {
	ID                string        `json:"id"`
	Category          Category      `json:"category"`
	Stage             recruit.Stage `json:"stage"`
	Question          string        `json:"question"`
	FollowUpQuestions []string      `json:"follow_up_questions"`
	EvaluationPoints  []string      `json:"evaluation_points"`
	GoodAnswerExample string        `json:"good_answer_example"`
	RedFlags          []string      `json:"red_flags"`
	// TimeLimitMinutes is zero when the question carries no time guidance.
	TimeLimitMinutes int `json:"time_limit_minutes,omitempty"`
}

// Criteria is a static evaluation rubric entry with descriptions for the
// five answer quality levels.
type Criteria struct {
	Category    Category          `json:"skill_category"`
	Name        string            `json:"criteria_name"`
	Description string            `json:"description"`
	Levels      map[string]string `json:"evaluation_levels"`
	Weight      float64           `json:"weight"`
}

// Plan is the generated interview plan for one candidate, job and stage.
type Plan struct {
	CandidateName      string        `json:"candidate_name"`
	Position           string        `json:"position"`
	Stage              recruit.Stage `json:"stage"`
	DurationMinutes    int           `json:"duration_minutes"`
	Questions          []Question    `json:"questions"`
	EvaluationCriteria []Criteria    `json:"evaluation_criteria"`
	FocusAreas         []string      `json:"focus_areas"`
	SpecialNotes       []string      `json:"special_notes"`
}
