package resume

import (
	"errors"
	"fmt"
)

// PersonalInfo holds identity and contact details.
type PersonalInfo struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// SkillCategory groups related skills under a named category.
// Categories are an ordered slice, not a map, so chunk building is
// deterministic across runs.
type SkillCategory struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

// Job is a single position in the work history.
type Job struct {
	Company          string   `yaml:"company"`
	Location         string   `yaml:"location"`
	Position         string   `yaml:"position"`
	Period           string   `yaml:"period"`
	Responsibilities []string `yaml:"responsibilities"`
	Technologies     []string `yaml:"technologies"`
}

// Education is a single degree entry.
type Education struct {
	Institution string `yaml:"institution"`
	Location    string `yaml:"location"`
	Degree      string `yaml:"degree"`
	Period      string `yaml:"period"`
}

// Certification is a single professional credential.
type Certification struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
}

// Profile is the structured source data the query engine answers from.
type Profile struct {
	PersonalInfo PersonalInfo `yaml:"personal_info"`
	Summary      string       `yaml:"summary"`

	// YearsSummary is a pre-authored sentence answering the canonical
	// "how many years of experience" question. Emitted as its own chunk
	// when the work history is non-empty.
	YearsSummary string `yaml:"years_summary"`

	Skills         []SkillCategory `yaml:"skills"`
	Experience     []Job           `yaml:"experience"`
	Education      []Education     `yaml:"education"`
	Certifications []Certification `yaml:"certifications"`
}

// Validation errors.
var (
	ErrNameRequired  = errors.New("profile name is required")
	ErrTitleRequired = errors.New("profile title is required")
	ErrProfileEmpty  = errors.New("profile has no answerable sections")
)

// Validate checks that the profile contains enough data to build an index.
func (p *Profile) Validate() error {
	if p.PersonalInfo.Name == "" {
		return ErrNameRequired
	}
	if p.PersonalInfo.Title == "" {
		return ErrTitleRequired
	}
	if p.Summary == "" && len(p.Skills) == 0 && len(p.Experience) == 0 &&
		len(p.Education) == 0 && len(p.Certifications) == 0 {
		return ErrProfileEmpty
	}
	for i, cat := range p.Skills {
		if cat.Name == "" {
			return fmt.Errorf("skill category %d has no name", i)
		}
	}
	for i, job := range p.Experience {
		if job.Company == "" {
			return fmt.Errorf("experience entry %d has no company", i)
		}
	}
	return nil
}
