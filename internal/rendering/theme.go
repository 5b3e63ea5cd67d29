package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"sort"
	"strings"

	"github.com/jonathan/resume-themes/internal/types"
)

//go:embed templates
var templateFS embed.FS

const (
	layoutTemplate   = "layout"
	combinedTemplate = "combined"
)

// ThemeSpec describes a theme before its templates are parsed
type ThemeSpec struct {
	ID          string
	Name        string
	Fonts       []string // Google Fonts families, e.g. "Inter:wght@400;700"
	TitleFormat string   // fmt pattern for <title>, receives the candidate name
	Combined    bool     // supports the dual-language document
}

// Theme renders a résumé into a complete HTML document
type Theme struct {
	ThemeSpec
	tmpl *template.Template
	css  template.CSS
}

type page struct {
	Theme  *Theme
	Resume *types.Resume
	Lang   string
	Title  string
	CSS    template.CSS
}

type combinedPage struct {
	Theme *Theme
	Title string
	CSS   template.CSS
	EN    *page
	FR    *page
}

// NewTheme parses the shared layout and the theme's body template and stylesheet from fsys.
// fsys must contain templates/layout.html.tmpl, templates/combined.html.tmpl,
// templates/partials.html.tmpl, templates/themes/<id>/body.html.tmpl and
// templates/themes/<id>/style.css.
func NewTheme(spec ThemeSpec, fsys fs.FS) (*Theme, error) {
	dir := "templates/themes/" + spec.ID

	tmpl, err := template.New(spec.ID).Funcs(funcMap()).ParseFS(fsys,
		"templates/layout.html.tmpl",
		"templates/combined.html.tmpl",
		"templates/partials.html.tmpl",
		dir+"/body.html.tmpl",
	)
	if err != nil {
		return nil, &TemplateError{Theme: spec.ID, Message: "failed to parse templates", Cause: err}
	}

	css, err := fs.ReadFile(fsys, dir+"/style.css")
	if err != nil {
		return nil, &TemplateError{Theme: spec.ID, Message: "failed to read stylesheet", Cause: err}
	}

	return &Theme{
		ThemeSpec: spec,
		tmpl:      tmpl,
		css:       template.CSS(css), //nolint:gosec // embedded stylesheet
	}, nil
}

// FontsURL returns the Google Fonts stylesheet URL, or "" for a theme using system fonts.
func (t *Theme) FontsURL() template.URL {
	if len(t.Fonts) == 0 {
		return ""
	}
	families := make([]string, len(t.Fonts))
	for i, f := range t.Fonts {
		families[i] = "family=" + strings.ReplaceAll(f, " ", "+")
	}
	return template.URL("https://fonts.googleapis.com/css2?" + strings.Join(families, "&") + "&display=swap")
}

// SupportsCombined reports whether the theme can render the dual-language document.
func (t *Theme) SupportsCombined() bool {
	return t.Combined
}

// Render renders r as a complete HTML document.
func (t *Theme) Render(r *types.Resume) (string, error) {
	if r == nil {
		return "", &RenderError{Message: "resume is nil"}
	}
	return t.execute(layoutTemplate, t.newPage(r, r.Language()))
}

// RenderCombined renders the English and French résumés into one document with a
// language toggle. Both languages are printed, French on a new page.
func (t *Theme) RenderCombined(en, fr *types.Resume) (string, error) {
	if !t.Combined {
		return "", &RenderError{Message: fmt.Sprintf("theme %s does not support dual-language output", t.ID)}
	}
	if en == nil || fr == nil {
		return "", &RenderError{Message: "both English and French resumes are required"}
	}

	enPage := t.newPage(en, types.LangEN)
	frPage := t.newPage(fr, types.LangFR)
	frPage.Resume.Meta.Lang = types.LangFR
	frPage.Lang = types.LangFR

	return t.execute(combinedTemplate, &combinedPage{
		Theme: t,
		Title: fmt.Sprintf("%s - Curriculum Vitae", en.Title()),
		CSS:   t.css,
		EN:    enPage,
		FR:    frPage,
	})
}

func (t *Theme) newPage(r *types.Resume, lang string) *page {
	withMeta := r.WithDefaults(lang)
	format := t.TitleFormat
	if format == "" {
		format = "%s"
	}
	return &page{
		Theme:  t,
		Resume: withMeta,
		Lang:   withMeta.Language(),
		Title:  fmt.Sprintf(format, r.Title()),
		CSS:    t.css,
	}
}

func (t *Theme) execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := t.tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", &TemplateError{Theme: t.ID, Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// Registry maps theme IDs to themes
type Registry struct {
	themes map[string]*Theme
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]*Theme)}
}

// Register adds t, replacing any theme with the same ID.
func (r *Registry) Register(t *Theme) {
	r.themes[t.ID] = t
}

// Lookup returns the theme registered under id.
func (r *Registry) Lookup(id string) (*Theme, error) {
	t, ok := r.themes[id]
	if !ok {
		return nil, &UnknownThemeError{ID: id, Available: r.IDs()}
	}
	return t, nil
}

// IDs returns the registered theme IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Themes returns the registered themes sorted by ID.
func (r *Registry) Themes() []*Theme {
	themes := make([]*Theme, 0, len(r.themes))
	for _, id := range r.IDs() {
		themes = append(themes, r.themes[id])
	}
	return themes
}

// DefaultThemeID is rendered when no theme is named.
const DefaultThemeID = "nordic-minimal"

// BuiltinThemes lists the themes bundled with the binary.
var BuiltinThemes = []ThemeSpec{
	{
		ID:          "modern-classic",
		Name:        "Modern Classic",
		Fonts:       []string{"Inter:wght@400;500;600;700;800"},
		TitleFormat: "%s - Resume",
		Combined:    true,
	},
	{
		ID:          "nordic-minimal",
		Name:        "Nordic Minimal",
		Fonts:       []string{"Lato:wght@300;400;700"},
		TitleFormat: "%s - Curriculum Vitae",
	},
	{
		ID:          "typewriter-modern",
		Name:        "Typewriter Modern",
		Fonts:       []string{"Courier Prime:wght@400;700", "Work Sans:wght@400;500;600;700"},
		TitleFormat: "%s - Resume",
	},
	{
		ID:          "tailwind",
		Name:        "Tailwind",
		Fonts:       []string{"Inter:wght@400;500;600;700;800"},
		TitleFormat: "Resume - %s",
	},
	{
		ID:          "french-atelier",
		Name:        "French Atelier",
		Fonts:       []string{"Playfair Display:wght@400;700;900", "Work Sans:wght@400;500;600"},
		TitleFormat: "%s",
	},
	{
		ID:          "bold-header",
		Name:        "Bold Header",
		TitleFormat: "%s - Resume",
	},
}

// DefaultRegistry returns a registry holding every builtin theme.
// It panics if an embedded template does not parse.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, spec := range BuiltinThemes {
		theme, err := NewTheme(spec, templateFS)
		if err != nil {
			panic(err)
		}
		reg.Register(theme)
	}
	return reg
}
