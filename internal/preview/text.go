// Package preview prints a plain-text version of a résumé for a quick read in the terminal.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-themes/internal/types"
)

const width = 70

// Text writes the plain-text preview of r to w.
func Text(w io.Writer, r *types.Resume) error {
	var sb strings.Builder
	p := &printer{sb: &sb}

	basics := r.Basics
	if basics == nil {
		basics = &types.Basics{}
	}

	name := basics.Name
	if name == "" {
		name = "N/A"
	}
	p.line(strings.Repeat("=", width))
	p.line(center(name, width))
	p.line(center(basics.Label, width))
	p.line(strings.Repeat("=", width))

	if basics.Email != "" || basics.Phone != "" {
		p.section("Contact", "-")
		if basics.Email != "" {
			p.linef("Email: %s", basics.Email)
		}
		if basics.Phone != "" {
			p.linef("Phone: %s", basics.Phone)
		}
		if loc := basics.Location; loc != nil && (loc.City != "" || loc.Region != "") {
			p.linef("Location: %s", joinNonEmpty(", ", loc.City, loc.Region, loc.CountryCode))
		}
	}

	if len(basics.Profiles) > 0 {
		p.section("Profiles", "-")
		for _, profile := range basics.Profiles {
			p.linef("• %s: %s", orNA(profile.Network), orNA(profile.URL))
		}
	}

	if basics.Summary != "" {
		p.section("Summary", "=")
		p.line(basics.Summary)
	}

	var work []types.Work
	for _, job := range r.Work {
		if job.Name != "" {
			work = append(work, job)
		}
	}
	if len(work) > 0 {
		p.section("Work Experience", "=")
		for _, job := range work {
			p.linef("\n%s at %s", orNA(job.Position), job.Name)
			if dates := dateRange(job.StartDate, job.EndDate); dates != "" {
				p.linef("  %s", dates)
			}
			if job.Summary != "" {
				p.linef("  %s", job.Summary)
			}
			p.bullets(job.Highlights)
		}
	}

	var education []types.Education
	for _, edu := range r.Education {
		if edu.Institution != "" {
			education = append(education, edu)
		}
	}
	if len(education) > 0 {
		p.section("Education", "=")
		for _, edu := range education {
			p.linef("\n%s", orNA(joinNonEmpty(" in ", edu.StudyType, edu.Area)))
			p.linef("  %s", edu.Institution)
			if dates := dateRange(edu.StartDate, edu.EndDate); dates != "" {
				p.linef("  %s", dates)
			}
			if edu.Score != "" {
				p.linef("  GPA: %s", edu.Score)
			}
		}
	}

	if len(r.Skills) > 0 {
		p.section("Skills", "=")
		for _, skill := range r.Skills {
			heading := "\n" + orNA(skill.Name)
			if skill.Level != "" {
				heading += " (" + skill.Level + ")"
			}
			p.line(heading)
			if len(skill.Keywords) > 0 {
				p.linef("  %s", strings.Join(skill.Keywords, ", "))
			}
		}
	}

	var projects []types.Project
	for _, project := range r.Projects {
		if project.Name != "" {
			projects = append(projects, project)
		}
	}
	if len(projects) > 0 {
		p.section("Projects", "=")
		for _, project := range projects {
			p.linef("\n%s", project.Name)
			if project.URL != "" {
				p.linef("  URL: %s", project.URL)
			}
			if project.Description != "" {
				p.linef("  %s", project.Description)
			}
			p.bullets(project.Highlights)
			if len(project.Keywords) > 0 {
				p.linef("  Technologies: %s", strings.Join(project.Keywords, ", "))
			}
		}
	}

	if len(r.Languages) > 0 {
		p.section("Languages", "=")
		for _, lang := range r.Languages {
			p.linef("• %s: %s", orNA(lang.Language), orNA(lang.Fluency))
		}
	}

	if len(r.Interests) > 0 {
		p.section("Interests", "=")
		for _, interest := range r.Interests {
			if len(interest.Keywords) > 0 {
				p.linef("• %s: %s", orNA(interest.Name), strings.Join(interest.Keywords, ", "))
			} else {
				p.linef("• %s", orNA(interest.Name))
			}
		}
	}

	if len(r.Certificates) > 0 {
		p.section("Certifications", "=")
		for _, cert := range r.Certificates {
			p.linef("• %s", orNA(cert.Name))
			if cert.Issuer != "" {
				p.linef("  Issued by: %s", cert.Issuer)
			}
			if cert.Date != "" {
				p.linef("  Date: %s", cert.Date)
			}
		}
	}

	if len(r.Awards) > 0 {
		p.section("Awards", "=")
		for _, award := range r.Awards {
			p.linef("• %s", orNA(award.Title))
			if award.Awarder != "" {
				p.linef("  From: %s", award.Awarder)
			}
			if award.Date != "" {
				p.linef("  Date: %s", award.Date)
			}
		}
	}

	p.line("\n" + strings.Repeat("=", width))
	p.line("")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

type printer struct {
	sb *strings.Builder
}

func (p *printer) line(s string) {
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) section(title, underline string) {
	p.line("\n" + title)
	p.line(strings.Repeat(underline, len([]rune(title))))
}

func (p *printer) bullets(items []string) {
	for _, item := range items {
		p.linef("  • %s", item)
	}
}

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - Present"
	default:
		return start + " - " + end
	}
}

// center pads s on both sides to n runes, extra padding going to the right.
func center(s string, n int) string {
	length := len([]rune(s))
	if length >= n {
		return s
	}
	left := (n - length) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-length-left)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
