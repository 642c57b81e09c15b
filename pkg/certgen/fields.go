package certgen

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var placeholderRe = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\}\}`)

// Month names for long-form Indonesian dates.
var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// FormatDate renders an ISO-8601 date string as "2 Januari 2006". Dates are
// cosmetic: empty or unparseable input renders as an empty string and never
// blocks the certificate.
func FormatDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%d %s %d", t.Day(), monthNames[t.Month()-1], t.Year())
		}
	}

	return ""
}

func formatDateRange(start, end string) string {
	return fmt.Sprintf("%s - %s", FormatDate(start), FormatDate(end))
}

// fieldValues builds the semantic field map for one certificate. Keys cover
// both naming generations of the template editor ("participant_*" and
// "recipient_*", plus the legacy "unit_kerja").
func fieldValues(data CertificateData, tpl Template) map[string]string {
	values := map[string]string{
		"participant_name":     data.RecipientName,
		"recipient_name":       data.RecipientName,
		"participant_company":  data.RecipientCompany,
		"recipient_company":    data.RecipientCompany,
		"unit_kerja":           data.RecipientCompany,
		"participant_position": data.RecipientPosition,
		"recipient_position":   data.RecipientPosition,
		"program_title":        data.ProgramTitle,
		"program_date":         formatDateRange(data.ProgramStartDate, data.ProgramEndDate),
		"program_start_date":   FormatDate(data.ProgramStartDate),
		"program_end_date":     FormatDate(data.ProgramEndDate),
		"completion_date":      FormatDate(data.CompletionDate),
		"trainer_name":         data.TrainerName,
		"trainer_level":        data.TrainerLevel,
		"certificate_number":   data.CertificateNumber,
		"signatory_name":       tpl.SignatoryName,
		"signatory_position":   tpl.SignatoryPosition,
	}
	return values
}

// ResolveFieldText turns one configured field into the concrete string to
// draw. Resolution order, first match wins:
//  1. value containing "{{" is a template string; every known token is
//     substituted, unknown tokens stay literal so broken templates fail
//     visibly on the certificate rather than dropping data.
//  2. a non-empty value is used verbatim.
//  3. an empty value falls back to looking up the field name itself.
//
// An unresolvable field returns "" and its draw step is skipped entirely.
func ResolveFieldText(name string, fc FieldConfig, data CertificateData, tpl Template) string {
	values := fieldValues(data, tpl)

	if strings.Contains(fc.Value, "{{") {
		return placeholderRe.ReplaceAllStringFunc(fc.Value, func(match string) string {
			token := placeholderRe.FindStringSubmatch(match)[1]
			if v, ok := values[token]; ok {
				return v
			}
			return match
		})
	}

	if fc.Value != "" {
		return fc.Value
	}

	return values[name]
}
