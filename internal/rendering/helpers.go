package rendering

import (
	"html/template"
	"net/url"
	"path"
	"strings"

	"github.com/jonathan/resume-themes/internal/types"
)

// ContactItem is one entry of the contact line
type ContactItem struct {
	Kind     string // email, phone, location, url, profile
	Label    string // aria-label
	Text     string
	Href     template.URL
	External bool
}

// ContactItems builds the contact line: email, phone, location, website, then every
// profile that has a URL. Links are checked with SafeURL; a blocked link keeps its text.
func ContactItems(b *types.Basics) []ContactItem {
	if b == nil {
		return nil
	}

	var items []ContactItem
	if b.Email != "" {
		items = append(items, ContactItem{Kind: "email", Label: "Email", Text: b.Email, Href: href("mailto:" + b.Email)})
	}
	if b.Phone != "" {
		items = append(items, ContactItem{Kind: "phone", Label: "Phone", Text: b.Phone, Href: href("tel:" + b.Phone)})
	}
	if loc := Location(b.Location); loc != "" {
		items = append(items, ContactItem{Kind: "location", Label: "Location", Text: loc})
	}
	if b.URL != "" {
		items = append(items, ContactItem{Kind: "url", Label: "Website", Text: DisplayURL(b.URL), Href: href(b.URL), External: true})
	}
	for _, p := range b.Profiles {
		if p.URL == "" {
			continue
		}
		text := p.Network
		if text == "" {
			text = p.Username
		}
		items = append(items, ContactItem{Kind: "profile", Label: p.Network, Text: text, Href: href(p.URL), External: true})
	}
	return items
}

// Location joins city, region and country code with ", ", skipping empty parts.
func Location(loc *types.Location) string {
	if loc == nil {
		return ""
	}
	return joinNonEmpty(", ", loc.City, loc.Region, loc.CountryCode)
}

// SectionTitle returns the heading for section key ("experience", "projectSkills", ...)
// from meta, falling back to the English default.
func SectionTitle(meta *types.Meta, key string) string {
	var titles types.SectionTitles
	if meta != nil && meta.SectionTitles != nil {
		titles = *meta.SectionTitles
	}
	defaults := *types.DefaultMeta(types.LangEN).SectionTitles

	pick := func(v, d string) string {
		if v != "" {
			return v
		}
		return d
	}

	switch key {
	case "projects":
		return pick(titles.Projects, defaults.Projects)
	case "education":
		return pick(titles.Education, defaults.Education)
	case "references":
		return pick(titles.References, defaults.References)
	case "experience", "work":
		return pick(titles.Experience, defaults.Experience)
	case "contact":
		return pick(titles.Contact, defaults.Contact)
	case "languages":
		return pick(titles.Languages, defaults.Languages)
	case "interests":
		return pick(titles.Interests, defaults.Interests)
	case "volunteer":
		return pick(titles.Volunteer, defaults.Volunteer)
	case "awards":
		return pick(titles.Awards, defaults.Awards)
	case "publications":
		return pick(titles.Publications, defaults.Publications)
	case "certificates":
		return pick(titles.Certificates, defaults.Certificates)
	case "skills":
		return pick(titles.Skills, defaults.Skills)
	case "summary":
		return pick(titles.Summary, defaults.Summary)
	case "projectSkills":
		return pick(titles.ProjectSkills, defaults.ProjectSkills)
	case "experienceSkills":
		return pick(titles.ExperienceSkills, defaults.ExperienceSkills)
	}
	return key
}

// phrases are the short connecting words themes print between fields.
var phrases = map[string]map[string]string{
	types.LangEN: {"at": "at", "awardedBy": "Awarded by", "publishedBy": "Published by", "issuedBy": "Issued by", "in": "in"},
	types.LangFR: {"at": "chez", "awardedBy": "Décerné par", "publishedBy": "Publié par", "issuedBy": "Délivré par", "in": "en"},
}

// Phrase returns the connecting word key in lang, English when lang has no translation.
func Phrase(lang, key string) string {
	if p, ok := phrases[lang][key]; ok {
		return p
	}
	return phrases[types.LangEN][key]
}

// ProjectLinkText is the label of a project link: urlText when set, otherwise the
// last path segment of the URL (the repository name for a GitHub link).
func ProjectLinkText(p types.Project) string {
	if p.URLText != "" {
		return p.URLText
	}
	u, err := url.Parse(p.URL)
	if err != nil || u.Path == "" || u.Path == "/" {
		return DisplayURL(p.URL)
	}
	return path.Base(strings.TrimSuffix(u.Path, "/"))
}

// href marks a URL that already went through SafeURL as trusted for html/template,
// which would otherwise rewrite tel: and sms: links.
func href(raw string) template.URL {
	return template.URL(SafeURL(raw)) //nolint:gosec // filtered by SafeURL
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"safeURL":      href,
		"displayURL":   DisplayURL,
		"contact":      ContactItems,
		"location":     Location,
		"title":        SectionTitle,
		"phrase":       Phrase,
		"projectLink":  ProjectLinkText,
		"joinNonEmpty": joinNonEmpty,
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"dateRange": func(start, end, lang string) string {
			return FormatDateRange(start, end, lang, DateShort)
		},
		"longDateRange": func(start, end, lang string) string {
			return FormatDateRange(start, end, lang, DateLong)
		},
		"numericDateRange": func(start, end, lang string) string {
			return FormatDateRange(start, end, lang, DateNumeric)
		},
		"date": func(date, lang string) string {
			if date == "" {
				return ""
			}
			return FormatDate(date, lang, DateShort)
		},
	}
}
