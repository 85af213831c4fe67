package recruit

import (
	"errors"
	"testing"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want Stage
	}{
		{in: "first", want: StageFirst},
		{in: "1st", want: StageFirst},
		{in: "second", want: StageSecond},
		{in: "2nd", want: StageSecond},
		{in: "final", want: StageFinal},
	}

	for _, tc := range tests {
		got, err := ParseStage(tc.in)
		if err != nil {
			t.Fatalf("ParseStage(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseStage(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseStage("third"); !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("expected ErrUnknownStage, got %v", err)
	}
}

func TestStageLabel(t *testing.T) {
	if got := StageFirst.Label(); got != "1次面接" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := StageSecond.Label(); got != "2次面接" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := StageFinal.Label(); got != "最終面接" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestJobRequirementValidate(t *testing.T) {
	valid := func() *JobRequirement {
		return &JobRequirement{
			PositionTitle:   "バックエンドエンジニア",
			ExperienceLevel: ExperienceMid,
			RequiredYears:   3,
			SalaryRange:     SalaryRange{Min: 400, Max: 700},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid job rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*JobRequirement)
		field  string
	}{
		{
			name:   "empty title",
			mutate: func(j *JobRequirement) { j.PositionTitle = "" },
			field:  "position_title",
		},
		{
			name:   "unknown level",
			mutate: func(j *JobRequirement) { j.ExperienceLevel = "expert" },
			field:  "experience_level",
		},
		{
			name:   "negative years",
			mutate: func(j *JobRequirement) { j.RequiredYears = -1 },
			field:  "required_years",
		},
		{
			name:   "inverted salary range",
			mutate: func(j *JobRequirement) { j.SalaryRange = SalaryRange{Min: 800, Max: 500} },
			field:  "salary_range",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			job := valid()
			tc.mutate(job)

			err := job.Validate()
			var shapeErr *InputShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("expected InputShapeError, got %v", err)
			}
			if shapeErr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, shapeErr.Field)
			}
		})
	}
}

func TestCompanyProfileValidate(t *testing.T) {
	company := &CompanyProfile{CompanyName: "テスト株式会社"}
	if err := company.Validate(); err != nil {
		t.Fatalf("valid company rejected: %v", err)
	}

	company.CompanyName = ""
	if err := company.Validate(); !IsInputShape(err) {
		t.Fatalf("expected InputShapeError, got %v", err)
	}
}

func TestProfileLookups(t *testing.T) {
	profile := &CandidateProfile{
		Skills:    []string{"Python", "SQL"},
		Languages: []string{"英語"},
	}

	if !profile.HasSkill("Python") {
		t.Fatal("expected Python to be found")
	}
	if profile.HasSkill("python") {
		t.Fatal("skill match must be exact")
	}
	if !profile.HasLanguage("英語") {
		t.Fatal("expected 英語 to be found")
	}
	if profile.HasLanguage("中国語") {
		t.Fatal("unexpected language match")
	}
}
