package recruit

// WorkRecord is a single employment entry extracted from a resume.
type WorkRecord struct {
	Period      string `json:"period"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

// CandidateProfile is the structured record extracted from resume text.
// Fields are best-effort: unmatched patterns degrade to empty values.
// A profile is built once per extraction and not mutated afterwards.
type CandidateProfile struct {
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	ExperienceYears int          `json:"experience_years"`
	Skills          []string     `json:"skills"`
	Education       []string     `json:"education"`
	WorkHistory     []WorkRecord `json:"work_history"`
	Certifications  []string     `json:"certifications"`
	Languages       []string     `json:"languages"`
}

// HasSkill reports whether the candidate lists the exact skill.
func (p *CandidateProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// HasLanguage reports whether the candidate lists the exact language.
func (p *CandidateProfile) HasLanguage(lang string) bool {
	for _, l := range p.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// CompanyProfile describes the hiring company. It is loaded once from the
// configuration store and treated as read-only during matching.
type CompanyProfile struct {
	CompanyName     string   `json:"company_name" mapstructure:"company_name"`
	Mission         string   `json:"mission" mapstructure:"mission"`
	Vision          string   `json:"vision" mapstructure:"vision"`
	Values          []string `json:"values" mapstructure:"values"`
	CultureKeywords []string `json:"culture_keywords" mapstructure:"culture_keywords"`
	WorkStyle       []string `json:"work_style" mapstructure:"work_style"`
}

// Validate checks the fields required to build a usable company profile.
func (c *CompanyProfile) Validate() error {
	if c.CompanyName == "" {
		return &InputShapeError{Document: "company profile", Field: "company_name", Reason: "must not be empty"}
	}
	return nil
}
