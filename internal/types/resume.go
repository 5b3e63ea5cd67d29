// Package types provides type definitions for structured data used throughout the resume-themes system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Resume represents a JSON Resume document.
// Every section is optional; themes skip sections that are empty.
type Resume struct {
	Schema       string        `json:"$schema,omitempty"`
	Basics       *Basics       `json:"basics,omitempty"`
	Work         []Work        `json:"work,omitempty"`
	Volunteer    []Volunteer   `json:"volunteer,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Awards       []Award       `json:"awards,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Publications []Publication `json:"publications,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
	References   []Reference   `json:"references,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Meta         *Meta         `json:"meta,omitempty"`
}

// Basics holds the candidate's identity and contact details
type Basics struct {
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// Location is the postal location of the candidate
type Location struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

// Profile is a social network profile
type Profile struct {
	Network  string `json:"network,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Work is a single position held
type Work struct {
	Name       string   `json:"name,omitempty"`
	Position   string   `json:"position,omitempty"`
	URL        string   `json:"url,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills,omitempty"` // theme extension, shown by modern-classic
}

// Volunteer is a single volunteering engagement
type Volunteer struct {
	Organization string   `json:"organization,omitempty"`
	Position     string   `json:"position,omitempty"`
	URL          string   `json:"url,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Education is a single course of study
type Education struct {
	Institution string   `json:"institution,omitempty"`
	URL         string   `json:"url,omitempty"`
	Area        string   `json:"area,omitempty"`
	StudyType   string   `json:"studyType,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Score       string   `json:"score,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

// Award is a received award
type Award struct {
	Title   string `json:"title,omitempty"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Certificate is an obtained certification
type Certificate struct {
	Name   string `json:"name,omitempty"`
	Date   string `json:"date,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	URL    string `json:"url,omitempty"`
}

// Publication is a published work
type Publication struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// Skill is a skill area with keywords
type Skill struct {
	Name     string   `json:"name,omitempty"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Language is a spoken language
type Language struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// Interest is a personal interest
type Interest struct {
	Name     string   `json:"name,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Reference is a reference from a colleague
type Reference struct {
	Name      string `json:"name,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// Project is a career project
type Project struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	URL         string   `json:"url,omitempty"`
	URLText     string   `json:"urlText,omitempty"` // theme extension: link label
	Roles       []string `json:"roles,omitempty"`
	Entity      string   `json:"entity,omitempty"`
	Type        string   `json:"type,omitempty"`
	Skills      []string `json:"skills,omitempty"` // theme extension: tech stack
}

// Meta carries document metadata and the theme's localisation overrides
type Meta struct {
	Canonical     string         `json:"canonical,omitempty"`
	Version       string         `json:"version,omitempty"`
	LastModified  string         `json:"lastModified,omitempty"`
	Lang          string         `json:"lang,omitempty"`
	SectionTitles *SectionTitles `json:"sectionTitles,omitempty"`
}

// SectionTitles overrides the headings printed for each section
type SectionTitles struct {
	Projects         string `json:"projects,omitempty"`
	Education        string `json:"education,omitempty"`
	References       string `json:"references,omitempty"`
	Experience       string `json:"experience,omitempty"`
	Contact          string `json:"contact,omitempty"`
	Languages        string `json:"languages,omitempty"`
	Interests        string `json:"interests,omitempty"`
	Volunteer        string `json:"volunteer,omitempty"`
	Awards           string `json:"awards,omitempty"`
	Publications     string `json:"publications,omitempty"`
	Certificates     string `json:"certificates,omitempty"`
	Skills           string `json:"skills,omitempty"`
	Summary          string `json:"summary,omitempty"`
	ProjectSkills    string `json:"projectSkills,omitempty"`
	ExperienceSkills string `json:"experienceSkills,omitempty"`
}

// Language codes for the bundled section title translations.
const (
	LangEN = "en"
	LangFR = "fr"
)

var englishTitles = SectionTitles{
	Projects:         "Projects",
	Education:        "Education",
	References:       "References",
	Experience:       "Experience",
	Contact:          "Contact",
	Languages:        "Languages",
	Interests:        "Interests",
	Volunteer:        "Volunteer",
	Awards:           "Awards",
	Publications:     "Publications",
	Certificates:     "Certificates",
	Skills:           "Skills",
	Summary:          "Summary",
	ProjectSkills:    "Tech Stack",
	ExperienceSkills: "Skills",
}

var frenchTitles = SectionTitles{
	Projects:         "Projets",
	Education:        "Formation",
	References:       "Références",
	Experience:       "Expérience",
	Contact:          "Contact",
	Languages:        "Langues",
	Interests:        "Centres d'intérêt",
	Volunteer:        "Bénévolat",
	Awards:           "Distinctions",
	Publications:     "Publications",
	Certificates:     "Certifications",
	Skills:           "Compétences",
	Summary:          "Profil",
	ProjectSkills:    "Technologies",
	ExperienceSkills: "Compétences",
}

// DefaultMeta returns the metadata applied when a document has none.
// Unknown languages fall back to English titles.
func DefaultMeta(lang string) *Meta {
	titles := englishTitles
	code := LangEN
	if normalizeLang(lang) == LangFR {
		titles = frenchTitles
		code = LangFR
	}
	return &Meta{
		Lang:          code,
		SectionTitles: &titles,
	}
}

// WithDefaults returns a shallow copy of r whose Meta is filled in for lang.
// An existing Meta is kept, only missing titles are completed.
func (r *Resume) WithDefaults(lang string) *Resume {
	out := *r
	defaults := DefaultMeta(lang)
	if r.Meta == nil {
		out.Meta = defaults
		return &out
	}

	meta := *r.Meta
	if meta.Lang == "" {
		meta.Lang = defaults.Lang
	}
	if meta.SectionTitles == nil {
		meta.SectionTitles = defaults.SectionTitles
	} else {
		titles := meta.SectionTitles.merge(*defaults.SectionTitles)
		meta.SectionTitles = &titles
	}
	out.Meta = &meta
	return &out
}

// Language returns the normalised document language, "en" when unset.
func (r *Resume) Language() string {
	if r == nil || r.Meta == nil || r.Meta.Lang == "" {
		return LangEN
	}
	return normalizeLang(r.Meta.Lang)
}

// Title returns the candidate name, or "Resume" when the document has none.
func (r *Resume) Title() string {
	if r == nil || r.Basics == nil || r.Basics.Name == "" {
		return "Resume"
	}
	return r.Basics.Name
}

// StripPhone removes the phone number from basics, used before publishing.
func (r *Resume) StripPhone() {
	if r.Basics != nil {
		r.Basics.Phone = ""
	}
}

func (t SectionTitles) merge(defaults SectionTitles) SectionTitles {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&t.Projects, defaults.Projects)
	fill(&t.Education, defaults.Education)
	fill(&t.References, defaults.References)
	fill(&t.Experience, defaults.Experience)
	fill(&t.Contact, defaults.Contact)
	fill(&t.Languages, defaults.Languages)
	fill(&t.Interests, defaults.Interests)
	fill(&t.Volunteer, defaults.Volunteer)
	fill(&t.Awards, defaults.Awards)
	fill(&t.Publications, defaults.Publications)
	fill(&t.Certificates, defaults.Certificates)
	fill(&t.Skills, defaults.Skills)
	fill(&t.Summary, defaults.Summary)
	fill(&t.ProjectSkills, defaults.ProjectSkills)
	fill(&t.ExperienceSkills, defaults.ExperienceSkills)
	return t
}

// normalizeLang lowercases a language tag and keeps its primary subtag ("FR", "fr-CA" -> "fr").
func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}
	return lang
}
