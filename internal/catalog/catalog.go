// Package catalog holds the page's compiled-in content.
package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/folio/internal/validation"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

//go:embed catalog.yaml
var embedded []byte

// EmbeddedSource names the compiled-in document in errors and logs.
const EmbeddedSource = "catalog.yaml"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Catalog is the full page content, in display order.
type Catalog struct {
	Profile    Profile         `yaml:"profile" validate:"required"`
	Experience []Experience    `yaml:"experience" validate:"min=1,dive"`
	Projects   []Project       `yaml:"projects" validate:"min=1,dive"`
	Skills     []SkillCategory `yaml:"skills" validate:"min=1,dive"`
	Education  Education       `yaml:"education" validate:"required"`
	Footer     string          `yaml:"footer" validate:"required"`
}

// Profile is the hero content.
type Profile struct {
	Name     string       `yaml:"name" validate:"required"`
	Headline string       `yaml:"headline" validate:"required"`
	Tagline  string       `yaml:"tagline"`
	Social   []SocialLink `yaml:"social" validate:"dive"`
}

// SocialLink is an outbound profile link shown under the hero.
type SocialLink struct {
	Kind string `yaml:"kind" validate:"required,oneof=github linkedin mail"`
	Href string `yaml:"href" validate:"required,link"`
}

// Label is the short text shown for the link.
func (s SocialLink) Label() string {
	switch s.Kind {
	case "github":
		return "GitHub"
	case "linkedin":
		return "LinkedIn"
	case "mail":
		return "Mail"
	default:
		return s.Kind
	}
}

// Project is a portfolio project card.
type Project struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Demo        string `yaml:"demo" validate:"required,link"`
	Repo        string `yaml:"repo" validate:"required,link"`
}

// Experience is one employer.
type Experience struct {
	Company  string       `yaml:"company" validate:"required"`
	Role     string       `yaml:"role" validate:"required"`
	Duration string       `yaml:"duration" validate:"required"`
	Projects []SubProject `yaml:"projects" validate:"min=1,dive"`
}

// SubProject is an engagement within an experience entry.
type SubProject struct {
	Name   string   `yaml:"name" validate:"required"`
	Points []string `yaml:"points" validate:"min=1,dive,required"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Title  string   `yaml:"title" validate:"required"`
	Skills []string `yaml:"skills" validate:"min=1,dive,required"`
}

// Education is the single education record.
type Education struct {
	Institution string   `yaml:"institution" validate:"required"`
	Degree      string   `yaml:"degree" validate:"required"`
	Period      string   `yaml:"period" validate:"required"`
	Grade       string   `yaml:"grade"`
	Coursework  []string `yaml:"coursework" validate:"dive,required"`
}

// Default decodes and validates the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(embedded, EmbeddedSource)
}

// MustDefault is Default for program start-up; the embedded document is
// covered by tests, so a failure here is a build defect.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse decodes a catalog document and validates it.
func Parse(data []byte, source string) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, folioerrors.NewParseError(source, extractLine(err), err)
	}
	if err := validation.Struct(c); err != nil {
		return nil, err
	}
	return &c, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
