package recruit

// ExperienceLevel is the seniority band a position is targeted at.
type ExperienceLevel string

const (
	ExperienceJunior ExperienceLevel = "junior"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// IsValid reports whether the value is one of the known seniority bands.
func (l ExperienceLevel) IsValid() bool {
	switch l {
	case ExperienceJunior, ExperienceMid, ExperienceSenior:
		return true
	default:
		return false
	}
}

// SalaryRange is an annual salary band in units of 10k JPY.
type SalaryRange struct {
	Min int `json:"min" mapstructure:"min"`
	Max int `json:"max" mapstructure:"max"`
}

// JobRequirement describes a single open position. One instance exists per
// position and is immutable once constructed.
type JobRequirement struct {
	PositionTitle   string          `json:"position_title" mapstructure:"position_title"`
	Department      string          `json:"department" mapstructure:"department"`
	RequiredSkills  []string        `json:"required_skills" mapstructure:"required_skills"`
	PreferredSkills []string        `json:"preferred_skills" mapstructure:"preferred_skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level" mapstructure:"experience_level"`
	RequiredYears   int             `json:"required_years" mapstructure:"required_years"`
	EducationLevel  string          `json:"education_level" mapstructure:"education_level"`
	SalaryRange     SalaryRange     `json:"salary_range" mapstructure:"salary_range"`
	EmploymentType  string          `json:"employment_type" mapstructure:"employment_type"`
	RemoteWork      bool            `json:"remote_work" mapstructure:"remote_work"`
	TravelRequired  bool            `json:"travel_required" mapstructure:"travel_required"`
}

// Validate checks the invariants a job requirement must satisfy before it
// can be used for matching.
func (j *JobRequirement) Validate() error {
	if j.PositionTitle == "" {
		return &InputShapeError{Document: "job requirement", Field: "position_title", Reason: "must not be empty"}
	}
	if !j.ExperienceLevel.IsValid() {
		return &InputShapeError{Document: "job requirement", Field: "experience_level", Reason: "must be one of junior, mid, senior"}
	}
	if j.RequiredYears < 0 {
		return &InputShapeError{Document: "job requirement", Field: "required_years", Reason: "must not be negative"}
	}
	if j.SalaryRange.Min > j.SalaryRange.Max {
		return &InputShapeError{Document: "job requirement", Field: "salary_range", Reason: "min must not exceed max"}
	}
	return nil
}

// JobRequirements is the catalog of open positions, keyed by title.
type JobRequirements struct {
	Items []*JobRequirement
}

func (j *JobRequirements) Len() int {
	return len(j.Items)
}

func (j *JobRequirements) Titles() []string {
	titles := make([]string, 0, len(j.Items))
	for _, job := range j.Items {
		titles = append(titles, job.PositionTitle)
	}
	return titles
}

func (j *JobRequirements) FindByTitle(title string) *JobRequirement {
	for _, job := range j.Items {
		if job.PositionTitle == title {
			return job
		}
	}
	return nil
}
