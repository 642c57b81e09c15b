package certgen

import "testing"

func TestFieldConfigValidate(t *testing.T) {
	valid := FieldConfig{
		Position: Position{X: 100, Y: 200},
		Font:     Font{Family: "Helvetica", Size: 24, Color: "#1A2B3C"},
		Width:    400,
		Align:    TextAlignCenter,
	}

	tests := []struct {
		name    string
		mutate  func(fc *FieldConfig)
		wantErr bool
	}{
		{"valid", func(fc *FieldConfig) {}, false},
		{"empty align allowed", func(fc *FieldConfig) { fc.Align = "" }, false},
		{"empty color allowed", func(fc *FieldConfig) { fc.Font.Color = "" }, false},
		{"zero font size", func(fc *FieldConfig) { fc.Font.Size = 0 }, true},
		{"negative font size", func(fc *FieldConfig) { fc.Font.Size = -5 }, true},
		{"bad color", func(fc *FieldConfig) { fc.Font.Color = "red" }, true},
		{"short hex color", func(fc *FieldConfig) { fc.Font.Color = "#FFF" }, true},
		{"negative width", func(fc *FieldConfig) { fc.Width = -1 }, true},
		{"unknown align", func(fc *FieldConfig) { fc.Align = "middle" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := valid
			tt.mutate(&fc)
			err := fc.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateFields(t *testing.T) {
	fields := map[string]FieldConfig{
		"participant_name": {Font: Font{Size: 24}},
		"broken":           {Font: Font{Size: 0}},
	}

	if err := ValidateFields(fields); err == nil {
		t.Fatal("expected an error for the broken field")
	}

	delete(fields, "broken")
	if err := ValidateFields(fields); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
