package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_ErrorCombinesMessages(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError("duplicate_name", "surface name declared twice", "Join", "")
	d.AddError("bad_type", "cannot parse type", "Drop", "reason")
	d.AddWarning("skipped", "not a record", "", "")

	require.True(t, d.HasErrors())
	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Join]: [duplicate_name] surface name declared twice; [Drop] reason: [bad_type] cannot parse type",
		err.Error())
}

func TestDiagnostics_All(t *testing.T) {
	var a Diagnostics
	a.AddInfo("note", "first", "", "")
	a.AddWarningAt("chunks.go:3:1", "skipped", "declaration skipped", "Broken")
	a.AddError("boom", "failed", "", "")

	all := a.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
	assert.Equal(t, "chunks.go:3:1 [Broken]: [skipped] declaration skipped", all[1].String())
	assert.Equal(t, "[boom] failed", all[0].String())
	assert.Equal(t, "first", Diagnostic{Message: "first"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(42).String())
}

func collected() Diagnostics {
	var d Diagnostics
	d.AddError("duplicate_name", "surface name declared twice", "Join", "")

	return d
}

func TestDiagnostics_ReadOnReturnedValue(t *testing.T) {
	assert.True(t, collected().HasErrors())
	assert.False(t, collected().IsValid())
	assert.Len(t, collected().All(), 1)
	assert.EqualError(t, collected().Error(), "[Join]: [duplicate_name] surface name declared twice")
}
