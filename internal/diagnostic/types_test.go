package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	require.NoError(t, d.Error())

	d.AddWarning(CodeRedundantOffer, "target already satisfied", "offers[0]", "")
	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())

	d.AddError(CodeUnknownFactory, `unknown factory "uk_to_eur"`, "offers[1]", "factory").
		Suggestions = []string{"uk_to_eu"}
	d.AddError(CodeEmptyName, "name is required", "types[0]", "name")

	require.True(t, d.HasErrors())
	assert.EqualError(t, d.Error(),
		`[offers[1]] factory: [unknown_factory] unknown factory "uk_to_eur" (did you mean uk_to_eu?); `+
			`[types[0]] name: [empty_name] name is required`)
	assert.Len(t, d.All(), 3)
	assert.Equal(t, SeverityWarning, d.All()[2].Severity)
}

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name string
		d    Diagnostic
		want string
	}{
		{"message only", Diagnostic{Message: "boom"}, "boom"},
		{"code", Diagnostic{Code: "c", Message: "boom"}, "[c] boom"},
		{"subject", Diagnostic{Subject: "offers[0]", Message: "boom"}, "[offers[0]]: boom"},
		{"subject and field", Diagnostic{Subject: "offers[0]", Field: "to", Message: "boom"}, "[offers[0]] to: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
