// Package store persists the company profile and the job requirement
// catalog as JSON documents in a configuration directory. Loading
// reconstructs the exact field sets of the domain records; documents that
// miss required fields surface an InputShapeError to the caller.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"recruit-assist/internal/recruit"
)

const (
	companyFileName = "company_profile.json"
	jobsFileName    = "job_requirements.json"
)

// ErrNotFound is returned when a requested document has not been set up yet.
var ErrNotFound = errors.New("document not found")

// Store reads and writes the recruitment configuration documents.
type Store struct {
	dir    string
	logger *zap.Logger
}

func New(dir string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) companyPath() string {
	return filepath.Join(s.dir, companyFileName)
}

func (s *Store) jobsPath() string {
	return filepath.Join(s.dir, jobsFileName)
}

// LoadCompany reads the persisted company profile. It returns ErrNotFound
// when no profile has been saved.
func (s *Store) LoadCompany() (*recruit.CompanyProfile, error) {
	raw, err := s.readDocument(s.companyPath())
	if err != nil {
		return nil, err
	}

	var company recruit.CompanyProfile
	if err := mapstructure.Decode(raw, &company); err != nil {
		return nil, fmt.Errorf("decoding company profile: %w", err)
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	s.logger.Debug("loaded company profile", zap.String("company", company.CompanyName))
	return &company, nil
}

// SaveCompany validates and writes the company profile document.
func (s *Store) SaveCompany(company *recruit.CompanyProfile) error {
	if err := company.Validate(); err != nil {
		return err
	}
	return s.writeDocument(s.companyPath(), company)
}

// LoadJobs reads the job requirement catalog. A missing catalog file
// yields ErrNotFound; every entry is validated on load.
func (s *Store) LoadJobs() (*recruit.JobRequirements, error) {
	raw, err := s.readDocument(s.jobsPath())
	if err != nil {
		return nil, err
	}

	// Titles are sorted so the catalog order is stable between loads.
	titles := make([]string, 0, len(raw))
	for title := range raw {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	jobs := &recruit.JobRequirements{}
	for _, title := range titles {
		var job recruit.JobRequirement
		if err := mapstructure.Decode(raw[title], &job); err != nil {
			return nil, fmt.Errorf("decoding job requirement %q: %w", title, err)
		}
		if err := job.Validate(); err != nil {
			return nil, err
		}
		jobs.Items = append(jobs.Items, &job)
	}

	s.logger.Debug("loaded job requirements", zap.Int("count", jobs.Len()))
	return jobs, nil
}

// SaveJob validates the job requirement and merges it into the catalog
// under its position title, replacing any previous entry.
func (s *Store) SaveJob(job *recruit.JobRequirement) error {
	if err := job.Validate(); err != nil {
		return err
	}

	catalog := make(map[string]any)
	raw, err := s.readDocument(s.jobsPath())
	switch {
	case err == nil:
		for title, doc := range raw {
			catalog[title] = doc
		}
	case errors.Is(err, ErrNotFound):
	default:
		return err
	}

	catalog[job.PositionTitle] = job
	return s.writeDocument(s.jobsPath(), catalog)
}

func (s *Store) readDocument(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return raw, nil
}

func (s *Store) writeDocument(path string, doc any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Info("saved document", zap.String("path", path))
	return nil
}
