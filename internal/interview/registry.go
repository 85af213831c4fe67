package interview

import "recruit-assist/internal/recruit"

// Registry is the template store for interview questions and evaluation
// criteria. It is constructed explicitly and passed to the generator so
// tests can substitute deterministic or minimal template sets. A registry
// is read-only after construction and safe for concurrent use.
type Registry struct {
	questions []Question
	criteria  []Criteria
}

func NewRegistry(questions []Question, criteria []Criteria) *Registry {
	return &Registry{questions: questions, criteria: criteria}
}

// DefaultRegistry returns a registry loaded with the built-in Japanese
// question bank and the five-criteria rubric.
func DefaultRegistry() *Registry {
	return NewRegistry(defaultQuestions(), defaultCriteria())
}

// QuestionsFor returns all template questions tagged with the category and
// stage, in template order.
func (r *Registry) QuestionsFor(category Category, stage recruit.Stage) []Question {
	var questions []Question
	for _, q := range r.questions {
		if q.Category == category && q.Stage == stage {
			questions = append(questions, q)
		}
	}
	return questions
}

// CriteriaFor returns the rubric subset for a stage: basic aptitude for
// the first interview, the full set for the second, and culture/drive
// categories for the final one. Selection is a pure filter.
func (r *Registry) CriteriaFor(stage recruit.Stage) []Criteria {
	if stage == recruit.StageSecond {
		return append([]Criteria(nil), r.criteria...)
	}

	wanted := map[Category]bool{}
	switch stage {
	case recruit.StageFirst:
		wanted[CategoryTechnical] = true
		wanted[CategoryCommunication] = true
		wanted[CategoryProblemSolving] = true
	case recruit.StageFinal:
		wanted[CategoryAdaptability] = true
		wanted[CategoryWorkEthic] = true
		wanted[CategoryTeamwork] = true
	}

	var criteria []Criteria
	for _, c := range r.criteria {
		if wanted[c.Category] {
			criteria = append(criteria, c)
		}
	}
	return criteria
}
