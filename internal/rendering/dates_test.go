package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		locale     string
		style      DateStyle
		want       string
	}{
		{"open range", "2020-01", "", "en", DateShort, "Jan 2020 - Present"},
		{"closed range", "2016-05", "2019-12", "en", DateShort, "May 2016 - Dec 2019"},
		{"full dates", "2021-03-15", "2022-11-02", "en", DateShort, "Mar 2021 - Nov 2022"},
		{"years only", "2014", "2016", "en", DateShort, "2014 - 2016"},
		{"no start", "", "2020-01", "en", DateShort, ""},
		{"french short", "2020-02", "", "fr", DateShort, "févr. 2020 - Présent"},
		{"french region", "2020-02", "", "fr-CA", DateShort, "févr. 2020 - Présent"},
		{"long", "2020-01", "2021-06", "en", DateLong, "January 2020 - June 2021"},
		{"numeric", "2020-01", "", "en", DateNumeric, "01/2020 - Present"},
		{"german numeric", "2020-01", "", "de", DateNumeric, "01.2020 - Heute"},
		{"unknown locale", "2020-01", "", "xx", DateShort, "Jan 2020 - Present"},
		{"free text", "Spring 2020", "", "en", DateShort, "Spring 2020 - Present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateRange(tt.start, tt.end, tt.locale, tt.style))
		})
	}
}

func TestFormatDate_InvalidMonth(t *testing.T) {
	assert.Equal(t, "2020-13", FormatDate("2020-13", "en", DateShort))
}

func TestPresentLabel(t *testing.T) {
	assert.Equal(t, "Present", PresentLabel("en"))
	assert.Equal(t, "Présent", PresentLabel("FR"))
	assert.Equal(t, "Presente", PresentLabel("pt_BR"))
	assert.Equal(t, "Present", PresentLabel(""))
}
