// Package matching computes weighted multi-factor match scores between a
// candidate profile and a job requirement.
package matching

import (
	"fmt"
	"strings"

	"recruit-assist/internal/recruit"
)

// Fixed category weights. They sum to 1.0.
const (
	weightSkill      = 0.40
	weightExperience = 0.25
	weightCulture    = 0.20
	weightEducation  = 0.15
)

// Recommendation thresholds, inclusive on the lower bound of each band.
const (
	passThreshold      = 80
	interviewThreshold = 60
)

// educationRanks orders recognized education levels. Unknown required
// levels default to the rank of 大学.
var educationRanks = map[string]int{
	"高等学校": 1,
	"専門学校": 2,
	"短期大学": 3,
	"大学":   4,
	"大学院":  5,
}

const defaultEducationRank = 4

// Matcher scores candidates against job requirements. The bound company
// profile is carried for future culture analysis; the current indicator set
// does not read its field values. A Matcher holds no mutable state and is
// safe for concurrent use.
type Matcher struct {
	company *recruit.CompanyProfile
}

func NewMatcher(company *recruit.CompanyProfile) *Matcher {
	return &Matcher{company: company}
}

// Match computes the four sub-scores, the weighted overall score, the
// recommendation and the interview focus areas for one candidate against
// one job requirement. It fails only on malformed numeric invariants;
// inputs are otherwise assumed well-formed.
func (m *Matcher) Match(candidate *recruit.CandidateProfile, job *recruit.JobRequirement) (*recruit.MatchingResult, error) {
	if candidate.ExperienceYears < 0 {
		return nil, &recruit.InputShapeError{Document: "candidate profile", Field: "experience_years", Reason: "must not be negative"}
	}
	if job.RequiredYears < 0 {
		return nil, &recruit.InputShapeError{Document: "job requirement", Field: "required_years", Reason: "must not be negative"}
	}

	skillScore := skillMatch(candidate, job.RequiredSkills, job.PreferredSkills)
	experienceScore := experienceMatch(candidate.ExperienceYears, job.RequiredYears)
	cultureScore := cultureFit(candidate)
	educationScore := educationMatch(candidate.Education, job.EducationLevel)

	overall := skillScore*weightSkill +
		experienceScore*weightExperience +
		cultureScore*weightCulture +
		educationScore*weightEducation

	return &recruit.MatchingResult{
		CandidateName:        candidate.Name,
		OverallScore:         overall,
		SkillMatchScore:      skillScore,
		ExperienceMatchScore: experienceScore,
		CultureFitScore:      cultureScore,
		EducationMatchScore:  educationScore,
		DetailedAnalysis:     detailedAnalysis(candidate, job, skillScore, experienceScore, cultureScore, educationScore),
		Recommendation:       recommend(overall),
		InterviewFocusAreas:  focusAreas(skillScore, experienceScore),
	}, nil
}

// skillMatch scores required-skill coverage out of 80 points and
// preferred-skill coverage out of 20. A job without required skills is a
// full match, and a missing preferred list yields the full 20 points so
// its absence never penalizes the candidate.
func skillMatch(candidate *recruit.CandidateProfile, required, preferred []string) float64 {
	if len(required) == 0 {
		return 100
	}

	requiredScore := coverage(candidate, required) * 80

	preferredScore := 20.0
	if len(preferred) > 0 {
		preferredScore = coverage(candidate, preferred) * 20
	}

	return min(100, requiredScore+preferredScore)
}

// coverage is the fraction of the skill list present in the candidate's
// skill set.
func coverage(candidate *recruit.CandidateProfile, skills []string) float64 {
	matches := 0
	for _, skill := range skills {
		if candidate.HasSkill(skill) {
			matches++
		}
	}
	return float64(matches) / float64(len(skills))
}

// experienceMatch scores candidate years against required years. Meeting
// the requirement within 1.5x is ideal; overqualification never drops
// below 95. A shortfall scores proportionally, capped at 80. When no
// experience is required the match is automatically full.
func experienceMatch(candidateYears, requiredYears int) float64 {
	if requiredYears == 0 {
		return 100
	}

	if candidateYears >= requiredYears {
		if float64(candidateYears) <= float64(requiredYears)*1.5 {
			return 100
		}
		return 95
	}

	ratio := float64(candidateYears) / float64(requiredYears)
	return max(0, ratio*80)
}

const cultureIndicatorTotal = 3

// cultureFit is a coarse proxy built from three binary indicators: English
// language skill, at least three years of experience, and at least one
// certification. Each satisfied indicator contributes a third of the score.
func cultureFit(candidate *recruit.CandidateProfile) float64 {
	return float64(cultureIndicatorCount(candidate)) / cultureIndicatorTotal * 100
}

func cultureIndicatorCount(candidate *recruit.CandidateProfile) int {
	indicators := 0
	if candidate.HasLanguage("英語") {
		indicators++
	}
	if candidate.ExperienceYears >= 3 {
		indicators++
	}
	if len(candidate.Certifications) > 0 {
		indicators++
	}
	return indicators
}

// educationMatch compares the candidate's highest recognized education
// level against the required level on the fixed ordinal scale.
func educationMatch(education []string, requiredLevel string) float64 {
	required, ok := educationRanks[requiredLevel]
	if !ok {
		required = defaultEducationRank
	}

	candidateMax := 0
	for _, entry := range education {
		for level, rank := range educationRanks {
			if strings.Contains(entry, level) && rank > candidateMax {
				candidateMax = rank
			}
		}
	}

	if candidateMax >= required {
		return 100
	}
	return float64(candidateMax) / float64(required) * 100
}

func recommend(overall float64) recruit.Recommendation {
	switch {
	case overall >= passThreshold:
		return recruit.RecommendationPass
	case overall >= interviewThreshold:
		return recruit.RecommendationInterview
	default:
		return recruit.RecommendationReject
	}
}

// detailedAnalysis builds one narrative string per scoring category, each
// prefixed with the numeric score.
func detailedAnalysis(candidate *recruit.CandidateProfile, job *recruit.JobRequirement, skill, experience, culture, education float64) map[string]string {
	analysis := make(map[string]string, 4)

	var matched []string
	for _, s := range job.RequiredSkills {
		if candidate.HasSkill(s) {
			matched = append(matched, s)
		}
	}
	if len(matched) > 0 {
		analysis["skill_analysis"] = fmt.Sprintf("必須スキルマッチ度: %.1f%% - 適合スキル: %s", skill, strings.Join(matched, ", "))
	} else {
		analysis["skill_analysis"] = fmt.Sprintf("必須スキルマッチ度: %.1f%% - 適合する必須スキルが不足", skill)
	}

	if candidate.ExperienceYears >= job.RequiredYears {
		analysis["experience_analysis"] = fmt.Sprintf("経験年数評価: %.1f%% - 経験年数は要件を満たしています", experience)
	} else {
		shortage := job.RequiredYears - candidate.ExperienceYears
		analysis["experience_analysis"] = fmt.Sprintf("経験年数評価: %.1f%% - 経験年数が%d年不足", experience, shortage)
	}

	analysis["culture_analysis"] = fmt.Sprintf("文化適合性: %.1f%% - 適合指標 %d/%d", culture, cultureIndicatorCount(candidate), cultureIndicatorTotal)

	if education >= 100 {
		analysis["education_analysis"] = fmt.Sprintf("学歴要件: %.1f%% - 学歴は要件を満たしています", education)
	} else {
		analysis["education_analysis"] = fmt.Sprintf("学歴要件: %.1f%% - 学歴が要件水準に届いていません", education)
	}

	return analysis
}

// focusAreas lists the topics to probe during interviews. Conditional
// weakness items come first, followed by the three fixed baseline items.
func focusAreas(skillScore, experienceScore float64) []string {
	var areas []string

	if skillScore < 70 {
		areas = append(areas, "技術スキル・専門知識")
	}
	if experienceScore < 70 {
		areas = append(areas, "実務経験・プロジェクト実績")
	}

	return append(areas,
		"コミュニケーション能力",
		"チームワーク・協調性",
		"問題解決能力",
	)
}
