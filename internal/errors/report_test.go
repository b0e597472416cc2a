package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapReportRoundTrip(t *testing.T) {
	rep := New(RES001, PhaseResolve, "undefined variable: x").WithData("raw", "x")
	err := fmt.Errorf("resolving module /root: %w", WrapReport(rep))

	got, ok := AsReport(err)
	require.True(t, ok, "expected AsReport to find the wrapped report")
	assert.Equal(t, RES001, got.Code)
	assert.Equal(t, "x", got.Data["raw"])
}

func TestWrapReportNil(t *testing.T) {
	assert.Nil(t, WrapReport(nil))
}

func TestReportToJSONCompactIncludesCodeAndSchema(t *testing.T) {
	rep := New(TC001, PhaseTypecheck, "multiple types").WithPath("/root/main")
	js, err := rep.ToJSON(true)
	require.NoError(t, err)
	assert.Contains(t, js, `"code":"TC001"`)
	assert.Contains(t, js, `"schema":"ingc.error/v1"`)
}

func TestWithSuggestionsNoop(t *testing.T) {
	rep := New(RES003, PhaseMerge, "unresolved import")
	rep.WithSuggestions()
	assert.Nil(t, rep.Fix)

	rep.WithSuggestions("foo", "bar")
	require.NotNil(t, rep.Fix)
	assert.Equal(t, []string{"foo", "bar"}, rep.Fix.Suggestions)
}
