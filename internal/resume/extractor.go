// Package resume extracts structured candidate profiles from raw resume
// text using deterministic pattern and keyword rules. Extraction is
// deliberately approximate: its precision limits are documented per field
// and callers must not assume semantic accuracy beyond them.
package resume

import (
	"fmt"
	"strings"

	"recruit-assist/internal/recruit"
)

// NameUnknown is the sentinel used when no name label pattern matches.
const NameUnknown = "名前不明"

// Extractor converts resume text into candidate profiles. It keeps no
// state between invocations and Extract is safe for concurrent use.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract builds a candidate profile from raw resume text. It never fails:
// every field degrades to its empty or sentinel value when the text does
// not match the corresponding pattern.
func (e *Extractor) Extract(text string) *recruit.CandidateProfile {
	history := e.extractWorkHistory(text)

	return &recruit.CandidateProfile{
		Name:            e.extractName(text),
		Email:           e.extractEmail(text),
		Phone:           e.extractPhone(text),
		Skills:          e.extractSkills(text),
		WorkHistory:     history,
		ExperienceYears: experienceYears(history),
		Education:       e.extractEducation(text),
		Certifications:  e.extractCertifications(text),
		Languages:       e.extractLanguages(text),
	}
}

// extractName tries the label patterns in priority order and returns the
// first capture trimmed. Patterns are never merged.
func (e *Extractor) extractName(text string) string {
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return NameUnknown
}

func (e *Extractor) extractEmail(text string) string {
	return emailPattern.FindString(text)
}

func (e *Extractor) extractPhone(text string) string {
	for _, pattern := range phonePatterns {
		if m := pattern.FindString(text); m != "" {
			return m
		}
	}
	return ""
}

// extractSkills adds every known skill keyword found in the text via a
// case-insensitive substring test. The category itself is never added.
func (e *Extractor) extractSkills(text string) []string {
	lower := strings.ToLower(text)

	var skills []string
	seen := make(map[string]struct{})
	for _, category := range skillCategories {
		for _, keyword := range skillKeywords[category] {
			if _, ok := seen[keyword]; ok {
				continue
			}
			if strings.Contains(lower, strings.ToLower(keyword)) {
				skills = append(skills, keyword)
				seen[keyword] = struct{}{}
			}
		}
	}
	return skills
}

// extractWorkHistory emits one synthetic record per "<year>年<month>月"
// occurrence in document order. This is a structural placeholder, not true
// segmentation of employment blocks.
func (e *Extractor) extractWorkHistory(text string) []recruit.WorkRecord {
	matches := workDatePattern.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}

	history := make([]recruit.WorkRecord, 0, len(matches))
	for i, m := range matches {
		history = append(history, recruit.WorkRecord{
			Period:      fmt.Sprintf("%s年%s月", m[1], m[2]),
			Company:     fmt.Sprintf("会社%d", i+1),
			Position:    fmt.Sprintf("職位%d", i+1),
			Description: "職務内容",
		})
	}
	return history
}

// experienceYears derives years from the record count. This is a documented
// heuristic, not a calendar-accurate computation; replacing it with true
// date-range parsing changes downstream scores and needs sign-off first.
func experienceYears(history []recruit.WorkRecord) int {
	return len(history) * 2
}

func (e *Extractor) extractEducation(text string) []string {
	var education []string
	for _, keyword := range educationKeywords {
		if strings.Contains(text, keyword) {
			education = append(education, keyword+"卒業")
		}
	}
	return education
}

func (e *Extractor) extractCertifications(text string) []string {
	var certs []string
	for _, keyword := range certificationKeywords {
		if strings.Contains(text, keyword) {
			certs = append(certs, keyword)
		}
	}
	return certs
}

func (e *Extractor) extractLanguages(text string) []string {
	var langs []string
	for _, keyword := range languageKeywords {
		if strings.Contains(text, keyword) {
			langs = append(langs, keyword)
		}
	}
	return langs
}
