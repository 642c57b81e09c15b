package certgen

import (
	"strings"
	"testing"
)

func testData() CertificateData {
	return CertificateData{
		CertificateNumber: "CERT-2024-0001",
		RecipientName:     "Jane Doe",
		RecipientCompany:  "PT Maju Bersama",
		ProgramTitle:      "Leadership Fundamentals",
		ProgramStartDate:  "2024-03-04",
		ProgramEndDate:    "2024-03-08",
		CompletionDate:    "2024-03-08",
		TrainerName:       "Budi Santoso",
	}
}

func testTemplate() Template {
	return Template{
		SignatoryName:     "Dewi Lestari",
		SignatoryPosition: "Direktur Akademi",
	}
}

func TestResolveFieldText(t *testing.T) {
	data := testData()
	tpl := testTemplate()

	tests := []struct {
		name     string
		field    string
		config   FieldConfig
		expected string
	}{
		{
			name:     "empty value falls back to field name lookup",
			field:    "participant_name",
			config:   FieldConfig{},
			expected: "Jane Doe",
		},
		{
			name:     "recipient alias resolves to the same value",
			field:    "recipient_name",
			config:   FieldConfig{},
			expected: "Jane Doe",
		},
		{
			name:     "unit_kerja resolves to recipient company",
			field:    "unit_kerja",
			config:   FieldConfig{},
			expected: "PT Maju Bersama",
		},
		{
			name:     "literal value used verbatim",
			field:    "participant_name",
			config:   FieldConfig{Value: "Sertifikat Kelulusan"},
			expected: "Sertifikat Kelulusan",
		},
		{
			name:     "placeholder substitution",
			field:    "title",
			config:   FieldConfig{Value: "Diberikan kepada {{participant_name}}"},
			expected: "Diberikan kepada Jane Doe",
		},
		{
			name:     "multiple placeholders",
			field:    "summary",
			config:   FieldConfig{Value: "{{participant_name}} - {{program_title}}"},
			expected: "Jane Doe - Leadership Fundamentals",
		},
		{
			name:     "unknown placeholder stays literal",
			field:    "title",
			config:   FieldConfig{Value: "{{participant_name}} {{no_such_field}}"},
			expected: "Jane Doe {{no_such_field}}",
		},
		{
			name:     "signatory fields come from the template",
			field:    "signatory_name",
			config:   FieldConfig{},
			expected: "Dewi Lestari",
		},
		{
			name:     "program date range",
			field:    "program_date",
			config:   FieldConfig{},
			expected: "4 Maret 2024 - 8 Maret 2024",
		},
		{
			name:     "completion date long form",
			field:    "completion_date",
			config:   FieldConfig{},
			expected: "8 Maret 2024",
		},
		{
			name:     "unknown field with empty value renders empty",
			field:    "nonexistent",
			config:   FieldConfig{},
			expected: "",
		},
		{
			name:     "absent optional attribute renders empty",
			field:    "recipient_position",
			config:   FieldConfig{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveFieldText(tt.field, tt.config, data, tpl)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestResolveFieldTextRoundTrip(t *testing.T) {
	data := testData()
	data.RecipientName = "Siti Nurhaliza binti Tarudin"

	got := ResolveFieldText("x", FieldConfig{Value: "{{recipient_name}}"}, data, testTemplate())
	if got != data.RecipientName {
		t.Fatalf("expected %q, got %q", data.RecipientName, got)
	}
	if strings.Contains(got, "{{") || strings.Contains(got, "}}") {
		t.Fatalf("residual placeholder braces in %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"date only", "2024-01-02", "2 Januari 2024"},
		{"rfc3339", "2024-12-31T10:30:00Z", "31 Desember 2024"},
		{"empty", "", ""},
		{"whitespace", "  ", ""},
		{"garbage", "not-a-date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.input); got != tt.expected {
				t.Errorf("FormatDate(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
