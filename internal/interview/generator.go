package interview

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"recruit-assist/internal/recruit"
)

// stageDurations fixes the planned interview length per stage.
var stageDurations = map[recruit.Stage]int{
	recruit.StageFirst:  60,
	recruit.StageSecond: 90,
	recruit.StageFinal:  45,
}

type categoryQuota struct {
	category Category
	count    int
}

// stageQuotas lists how many questions to draw per category for each
// stage. Order is significant: questions appear in the plan category by
// category in this order.
var stageQuotas = map[recruit.Stage][]categoryQuota{
	recruit.StageFirst: {
		{CategoryTechnical, 3},
		{CategoryCommunication, 2},
		{CategoryProblemSolving, 2},
	},
	recruit.StageSecond: {
		{CategoryTechnical, 2},
		{CategoryLeadership, 2},
		{CategoryTeamwork, 2},
		{CategoryCommunication, 1},
	},
	recruit.StageFinal: {
		{CategoryWorkEthic, 2},
		{CategoryAdaptability, 1},
		{CategoryCreativity, 1},
	},
}

// Scores below this threshold pull extra attention during planning.
const weakScoreThreshold = 70

// Generator builds interview plans from the template registry. The random
// source used for question sampling is injected so outputs are
// reproducible under test; it is request-local state, so a Generator must
// not be shared across goroutines.
type Generator struct {
	registry *Registry
	rand     *rand.Rand
}

// NewGenerator creates a plan generator backed by the given registry. A
// nil source seeds from the current time.
func NewGenerator(registry *Registry, src rand.Source) *Generator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Generator{registry: registry, rand: rand.New(src)}
}

// GeneratePlan builds the plan for one candidate, job, matching result and
// stage. It fails only when the stage is not one of first/second/final.
func (g *Generator) GeneratePlan(candidate *recruit.CandidateProfile, job *recruit.JobRequirement, result *recruit.MatchingResult, stage recruit.Stage) (*Plan, error) {
	if !stage.IsValid() {
		return nil, fmt.Errorf("%w: %q", recruit.ErrUnknownStage, stage)
	}

	return &Plan{
		CandidateName:      candidate.Name,
		Position:           job.PositionTitle,
		Stage:              stage,
		DurationMinutes:    stageDurations[stage],
		Questions:          g.selectQuestions(result, stage),
		EvaluationCriteria: g.registry.CriteriaFor(stage),
		FocusAreas:         append([]string(nil), result.InterviewFocusAreas...),
		SpecialNotes:       specialNotes(candidate, result),
	}, nil
}

// selectQuestions draws questions per category quota, sampling uniformly
// without replacement. A category with fewer templates than its quota
// yields all available questions. A weak skill score raises the technical
// quota by one.
func (g *Generator) selectQuestions(result *recruit.MatchingResult, stage recruit.Stage) []Question {
	var selected []Question
	for _, quota := range stageQuotas[stage] {
		count := quota.count
		if quota.category == CategoryTechnical && result.SkillMatchScore < weakScoreThreshold {
			count++
		}

		available := g.registry.QuestionsFor(quota.category, stage)
		selected = append(selected, g.sample(available, count)...)
	}
	return selected
}

func (g *Generator) sample(questions []Question, count int) []Question {
	if count >= len(questions) {
		return questions
	}

	picked := make([]Question, 0, count)
	for _, idx := range g.rand.Perm(len(questions))[:count] {
		picked = append(picked, questions[idx])
	}
	return picked
}

// specialNotes generates the ordered advisory notes. Every condition is
// evaluated independently; there is no early exit.
func specialNotes(candidate *recruit.CandidateProfile, result *recruit.MatchingResult) []string {
	var notes []string

	if result.SkillMatchScore < 60 {
		notes = append(notes, "⚠️ 技術スキルが要件を大きく下回っています。具体的な経験と学習意欲を重点的に確認してください。")
	}
	if result.ExperienceMatchScore < 70 {
		notes = append(notes, "⚠️ 経験年数が不足しています。実務経験の質と学習能力を詳しく評価してください。")
	}
	if result.OverallScore > 85 {
		notes = append(notes, "✅ 総合的に高い評価です。より高度な責任を任せられる可能性があります。")
	}
	if candidate.HasLanguage("英語") {
		notes = append(notes, "📝 英語スキルがあります。グローバルプロジェクトへの参加可能性を確認してください。")
	}
	if len(candidate.Certifications) > 0 {
		notes = append(notes, fmt.Sprintf("📝 取得資格: %s。学習意欲と専門性を評価してください。", strings.Join(candidate.Certifications, ", ")))
	}

	return notes
}
