// Package allowlist flags résumé properties that the JSON Resume schema does not declare.
//
// The published schema allows additional properties almost everywhere, so a typo such
// as "endDat" passes schema validation silently. This package walks the document with a
// closed allow-list per section and reports every unknown key with its location.
package allowlist

import "sort"

// SectionKind identifies the schema section an object belongs to
type SectionKind int

const (
	// Unknown has an empty allow-list: every key is rejected.
	Unknown SectionKind = iota
	Root
	Basics
	Location
	Profile
	Work
	Volunteer
	Education
	Award
	Certificate
	Publication
	Skill
	Language
	Interest
	Reference
	Project
)

var sectionNames = map[SectionKind]string{
	Unknown:     "unknown",
	Root:        "root",
	Basics:      "basics",
	Location:    "location",
	Profile:     "profile",
	Work:        "work",
	Volunteer:   "volunteer",
	Education:   "education",
	Award:       "award",
	Certificate: "certificate",
	Publication: "publication",
	Skill:       "skill",
	Language:    "language",
	Interest:    "interest",
	Reference:   "reference",
	Project:     "project",
}

func (k SectionKind) String() string {
	if name, ok := sectionNames[k]; ok {
		return name
	}
	return sectionNames[Unknown]
}

// ParseSectionKind maps a section name ("work", "award", ...) to its kind.
// Names are matched exactly; anything else returns Unknown and false.
func ParseSectionKind(name string) (SectionKind, bool) {
	for kind, n := range sectionNames {
		if kind != Unknown && n == name {
			return kind, true
		}
	}
	return Unknown, false
}

// SchemaKey is always accepted, wherever it appears.
const SchemaKey = "$schema"

type keySet map[string]struct{}

func newKeySet(keys ...string) keySet {
	s := make(keySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// allowed lists the properties each section may contain.
var allowed = map[SectionKind]keySet{
	Root: newKeySet("basics", "work", "volunteer", "education", "awards", "certificates",
		"publications", "skills", "languages", "interests", "references", "projects",
		"meta", "$schema"),
	Basics:      newKeySet("name", "label", "image", "email", "phone", "url", "summary", "location", "profiles"),
	Location:    newKeySet("address", "postalCode", "city", "countryCode", "region"),
	Profile:     newKeySet("network", "username", "url"),
	Work:        newKeySet("name", "position", "url", "startDate", "endDate", "summary", "highlights", "location"),
	Volunteer:   newKeySet("organization", "position", "url", "startDate", "endDate", "summary", "highlights"),
	Education:   newKeySet("institution", "url", "area", "studyType", "startDate", "endDate", "score", "courses"),
	Award:       newKeySet("title", "date", "awarder", "summary"),
	Certificate: newKeySet("name", "date", "issuer", "url"),
	Publication: newKeySet("name", "publisher", "releaseDate", "url", "summary"),
	Skill:       newKeySet("name", "level", "keywords"),
	Language:    newKeySet("language", "fluency"),
	Interest:    newKeySet("name", "keywords"),
	Reference:   newKeySet("name", "reference"),
	Project:     newKeySet("name", "description", "highlights", "keywords", "startDate", "endDate", "url", "roles", "entity", "type"),
}

// Allows reports whether key is permitted in section k.
func (k SectionKind) Allows(key string) bool {
	if key == SchemaKey {
		return true
	}
	_, ok := allowed[k][key]
	return ok
}

// AllowedKeys returns the permitted properties of k in sorted order.
func (k SectionKind) AllowedKeys() []string {
	keys := make([]string, 0, len(allowed[k]))
	for key := range allowed[k] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// child describes a nested value the walker descends into.
type child struct {
	Key   string
	Kind  SectionKind
	Array bool // each element of an array value is checked as Kind
}

// children drives the recursion. Only root and basics have nested sections; item
// objects (a single work entry, a skill, ...) are checked for their own keys only.
//
// Element kinds are the singular of the plural key, except work and volunteer which
// keep their name.
var children = map[SectionKind][]child{
	Root: {
		{Key: "basics", Kind: Basics},
		{Key: "work", Kind: Work, Array: true},
		{Key: "volunteer", Kind: Volunteer, Array: true},
		{Key: "education", Kind: Education, Array: true},
		{Key: "awards", Kind: Award, Array: true},
		{Key: "certificates", Kind: Certificate, Array: true},
		{Key: "publications", Kind: Publication, Array: true},
		{Key: "skills", Kind: Skill, Array: true},
		{Key: "languages", Kind: Language, Array: true},
		{Key: "interests", Kind: Interest, Array: true},
		{Key: "references", Kind: Reference, Array: true},
		{Key: "projects", Kind: Project, Array: true},
	},
	Basics: {
		{Key: "location", Kind: Location},
		{Key: "profiles", Kind: Profile, Array: true},
	},
}
