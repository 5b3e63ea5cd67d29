package rendering

import (
	"fmt"
	"strings"
	"time"
)

// DateStyle selects how months are printed in a date range
type DateStyle string

const (
	DateShort   DateStyle = "short"   // Jan 2020
	DateLong    DateStyle = "long"    // January 2020
	DateNumeric DateStyle = "numeric" // 01/2020
)

type monthNames struct {
	short [12]string
	long  [12]string
}

var presentLabels = map[string]string{
	"en": "Present",
	"fr": "Présent",
	"es": "Presente",
	"de": "Heute",
	"it": "Presente",
	"pt": "Presente",
}

var months = map[string]monthNames{
	"en": {
		short: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		long:  [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	},
	"fr": {
		short: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		long:  [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	},
	"es": {
		short: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		long:  [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	},
	"de": {
		short: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		long:  [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	},
	"it": {
		short: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		long:  [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	},
	"pt": {
		short: [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		long:  [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	},
}

// baseLocale reduces "fr-FR" or "pt_BR" to "fr" / "pt"; unsupported locales become "en".
func baseLocale(locale string) string {
	base := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}
	if _, ok := months[base]; !ok {
		return "en"
	}
	return base
}

// PresentLabel returns the word used for an open-ended range in locale.
func PresentLabel(locale string) string {
	return presentLabels[baseLocale(locale)]
}

// FormatDateRange formats an ISO 8601 date range ("2020-01", "2021-03-15", "2019")
// as "<start> - <end>". A missing end prints the locale's "Present" label and a
// missing start yields "". Dates that are not ISO 8601 are printed as given.
func FormatDateRange(start, end, locale string, style DateStyle) string {
	if start == "" {
		return ""
	}
	return FormatDate(start, locale, style) + " - " + formatEnd(end, locale, style)
}

func formatEnd(end, locale string, style DateStyle) string {
	if end == "" {
		return PresentLabel(locale)
	}
	return FormatDate(end, locale, style)
}

// FormatDate formats a single ISO 8601 date. A year-only date stays a bare year.
func FormatDate(date, locale string, style DateStyle) string {
	date = strings.TrimSpace(date)

	var t time.Time
	var err error
	switch len(date) {
	case len("2006-01"):
		t, err = time.Parse("2006-01", date)
	case len("2006-01-02"):
		t, err = time.Parse("2006-01-02", date)
	default:
		return date
	}
	if err != nil {
		return date
	}

	names := months[baseLocale(locale)]
	month := int(t.Month()) - 1
	switch style {
	case DateLong:
		return fmt.Sprintf("%s %d", names.long[month], t.Year())
	case DateNumeric:
		sep := "/"
		if baseLocale(locale) == "de" {
			sep = "."
		}
		return fmt.Sprintf("%02d%s%d", month+1, sep, t.Year())
	default:
		return fmt.Sprintf("%s %d", names.short[month], t.Year())
	}
}
