package matching

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"recruit-assist/internal/recruit"
)

var testCompany = &recruit.CompanyProfile{
	CompanyName: "株式会社テックイノベーション",
	Values:      []string{"革新性", "協調性"},
}

func testJob() *recruit.JobRequirement {
	return &recruit.JobRequirement{
		PositionTitle:   "Webエンジニア",
		Department:      "開発部",
		RequiredSkills:  []string{"Python", "JavaScript", "React"},
		PreferredSkills: []string{"Docker", "AWS"},
		ExperienceLevel: recruit.ExperienceMid,
		RequiredYears:   3,
		EducationLevel:  "大学",
	}
}

func TestMatchNoRequiredSkillsScoresFull(t *testing.T) {
	t.Parallel()

	job := testJob()
	job.RequiredSkills = nil

	result, err := NewMatcher(testCompany).Match(&recruit.CandidateProfile{Name: "候補者"}, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SkillMatchScore != 100 {
		t.Fatalf("expected skill score 100, got %v", result.SkillMatchScore)
	}
}

func TestMatchSkillCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		skills    []string
		required  []string
		preferred []string
		expect    float64
	}{
		{
			name:     "partial required without preferred list",
			skills:   []string{"JavaScript"},
			required: []string{"HTML", "CSS", "JavaScript"},
			// 1/3 x 80 + full 20 for the absent preferred list.
			expect: 1.0/3.0*80 + 20,
		},
		{
			name:      "full required and preferred",
			skills:    []string{"Python", "Docker"},
			required:  []string{"Python"},
			preferred: []string{"Docker"},
			expect:    100,
		},
		{
			name:      "preferred misses are only the 20 point share",
			skills:    []string{"Python"},
			required:  []string{"Python"},
			preferred: []string{"Docker", "AWS"},
			expect:    80,
		},
		{
			name:     "no matches at all",
			skills:   nil,
			required: []string{"Python"},
			expect:   20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := testJob()
			job.RequiredSkills = tt.required
			job.PreferredSkills = tt.preferred
			candidate := &recruit.CandidateProfile{Name: "候補者", Skills: tt.skills}

			result, err := NewMatcher(testCompany).Match(candidate, job)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(result.SkillMatchScore-tt.expect) > 1e-9 {
				t.Fatalf("expected skill score %v, got %v", tt.expect, result.SkillMatchScore)
			}
		})
	}
}

func TestMatchExperienceBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		candidateYears int
		requiredYears  int
		expect         float64
	}{
		{name: "exact requirement", candidateYears: 5, requiredYears: 5, expect: 100},
		{name: "within ideal range boundary", candidateYears: 6, requiredYears: 4, expect: 100},
		{name: "six years against five is within 1.5x", candidateYears: 6, requiredYears: 5, expect: 100},
		{name: "overqualified never below 95", candidateYears: 20, requiredYears: 3, expect: 95},
		{name: "shortfall scores proportionally", candidateYears: 2, requiredYears: 4, expect: 40},
		{name: "zero candidate years", candidateYears: 0, requiredYears: 4, expect: 0},
		{name: "zero required years is automatic full match", candidateYears: 0, requiredYears: 0, expect: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := testJob()
			job.RequiredSkills = nil
			job.RequiredYears = tt.requiredYears
			candidate := &recruit.CandidateProfile{Name: "候補者", ExperienceYears: tt.candidateYears}

			result, err := NewMatcher(testCompany).Match(candidate, job)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.ExperienceMatchScore != tt.expect {
				t.Fatalf("expected experience score %v, got %v", tt.expect, result.ExperienceMatchScore)
			}
		})
	}
}

func TestMatchCultureIndicators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		candidate *recruit.CandidateProfile
		expect    float64
	}{
		{
			name:      "no indicators",
			candidate: &recruit.CandidateProfile{Name: "候補者"},
			expect:    0,
		},
		{
			name:      "english only",
			candidate: &recruit.CandidateProfile{Name: "候補者", Languages: []string{"英語"}},
			expect:    100.0 / 3,
		},
		{
			name: "all indicators",
			candidate: &recruit.CandidateProfile{
				Name:            "候補者",
				Languages:       []string{"英語"},
				ExperienceYears: 4,
				Certifications:  []string{"TOEIC"},
			},
			expect: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := NewMatcher(testCompany).Match(tt.candidate, testJob())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(result.CultureFitScore-tt.expect) > 1e-9 {
				t.Fatalf("expected culture score %v, got %v", tt.expect, result.CultureFitScore)
			}
		})
	}
}

func TestMatchEducationRanks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		education []string
		required  string
		expect    float64
	}{
		{name: "meets requirement", education: []string{"大学卒業"}, required: "大学", expect: 100},
		{name: "exceeds requirement", education: []string{"大学院卒業"}, required: "大学", expect: 100},
		{name: "below requirement", education: []string{"高等学校卒業"}, required: "大学", expect: 25},
		{name: "highest entry wins", education: []string{"高等学校卒業", "大学卒業"}, required: "大学", expect: 100},
		{name: "unknown required level defaults to daigaku", education: []string{"専門学校卒業"}, required: "不明な学歴", expect: 50},
		// 短期大学 embeds 大学 as a substring, so the higher rank wins.
		{name: "overlapping level names take the max rank", education: []string{"短期大学卒業"}, required: "大学", expect: 100},
		{name: "no recognized education", education: nil, required: "大学", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := testJob()
			job.EducationLevel = tt.required
			candidate := &recruit.CandidateProfile{Name: "候補者", Education: tt.education}

			result, err := NewMatcher(testCompany).Match(candidate, job)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.EducationMatchScore != tt.expect {
				t.Fatalf("expected education score %v, got %v", tt.expect, result.EducationMatchScore)
			}
		})
	}
}

func TestMatchOverallIsWeightedSum(t *testing.T) {
	t.Parallel()

	candidate := &recruit.CandidateProfile{
		Name:            "田中 太郎",
		Skills:          []string{"Python", "JavaScript"},
		ExperienceYears: 2,
		Education:       []string{"大学卒業"},
		Languages:       []string{"英語"},
	}

	result, err := NewMatcher(testCompany).Match(candidate, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := result.SkillMatchScore*0.40 +
		result.ExperienceMatchScore*0.25 +
		result.CultureFitScore*0.20 +
		result.EducationMatchScore*0.15

	if math.Abs(result.OverallScore-expected) > 1e-9 {
		t.Fatalf("expected overall %v, got %v", expected, result.OverallScore)
	}
}

func TestRecommendationBands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score  float64
		expect recruit.Recommendation
	}{
		{score: 100, expect: recruit.RecommendationPass},
		{score: 80, expect: recruit.RecommendationPass},
		{score: 79.999, expect: recruit.RecommendationInterview},
		{score: 60, expect: recruit.RecommendationInterview},
		{score: 59.999, expect: recruit.RecommendationReject},
		{score: 0, expect: recruit.RecommendationReject},
	}

	for _, tt := range tests {
		if got := recommend(tt.score); got != tt.expect {
			t.Fatalf("score %v: expected %s, got %s", tt.score, tt.expect, got)
		}
	}
}

func TestFocusAreasBaselineSuffix(t *testing.T) {
	t.Parallel()

	baseline := []string{"コミュニケーション能力", "チームワーク・協調性", "問題解決能力"}

	tests := []struct {
		name       string
		skill      float64
		experience float64
		expect     []string
	}{
		{
			name:       "no weaknesses",
			skill:      90,
			experience: 90,
			expect:     baseline,
		},
		{
			name:       "skill weakness first",
			skill:      50,
			experience: 90,
			expect:     append([]string{"技術スキル・専門知識"}, baseline...),
		},
		{
			name:       "both weaknesses in fixed order",
			skill:      50,
			experience: 50,
			expect:     append([]string{"技術スキル・専門知識", "実務経験・プロジェクト実績"}, baseline...),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := focusAreas(tt.skill, tt.experience); !reflect.DeepEqual(got, tt.expect) {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}

func TestMatchStrongCandidateScenario(t *testing.T) {
	t.Parallel()

	candidate := &recruit.CandidateProfile{
		Name:            "田中 太郎",
		Skills:          []string{"Python", "JavaScript", "React", "SQL"},
		ExperienceYears: 6,
		Education:       []string{"大学卒業"},
		Certifications:  []string{"AWS認定ソリューションアーキテクト"},
		Languages:       []string{"英語"},
	}
	job := &recruit.JobRequirement{
		PositionTitle:   "Webエンジニア",
		RequiredSkills:  []string{"Python", "JavaScript", "React", "SQL"},
		ExperienceLevel: recruit.ExperienceSenior,
		RequiredYears:   5,
		EducationLevel:  "大学",
	}

	result, err := NewMatcher(testCompany).Match(candidate, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SkillMatchScore != 100 {
		t.Fatalf("expected skill score 100, got %v", result.SkillMatchScore)
	}
	// 6 years against 5 required is within the 1.5x ideal range.
	if result.ExperienceMatchScore != 100 {
		t.Fatalf("expected experience score 100, got %v", result.ExperienceMatchScore)
	}
	if result.Recommendation != recruit.RecommendationPass {
		t.Fatalf("expected pass, got %s", result.Recommendation)
	}
}

func TestMatchDetailedAnalysis(t *testing.T) {
	t.Parallel()

	candidate := &recruit.CandidateProfile{
		Name:            "候補者",
		Skills:          []string{"Python"},
		ExperienceYears: 1,
	}

	result, err := NewMatcher(testCompany).Match(candidate, testJob())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range []string{"skill_analysis", "experience_analysis", "culture_analysis", "education_analysis"} {
		if result.DetailedAnalysis[key] == "" {
			t.Fatalf("expected analysis entry for %q", key)
		}
	}
	if !strings.Contains(result.DetailedAnalysis["skill_analysis"], "Python") {
		t.Fatalf("expected matched skill in analysis: %q", result.DetailedAnalysis["skill_analysis"])
	}
	if !strings.Contains(result.DetailedAnalysis["experience_analysis"], "2年不足") {
		t.Fatalf("expected shortfall in analysis: %q", result.DetailedAnalysis["experience_analysis"])
	}
}

func TestMatchRejectsNegativeYears(t *testing.T) {
	t.Parallel()

	candidate := &recruit.CandidateProfile{Name: "候補者", ExperienceYears: -1}

	_, err := NewMatcher(testCompany).Match(candidate, testJob())
	if err == nil {
		t.Fatal("expected error for negative experience years")
	}

	var shapeErr *recruit.InputShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("expected InputShapeError, got %T", err)
	}
}
