package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() map[string]any {
	return map[string]any{
		"summary": "Engineer with ten years of backend experience.",
		"experiences": []any{
			map[string]any{"company": "Acme Corp", "description": "Built the billing platform."},
			map[string]any{"company": "Globex", "description": "Led the search team."},
		},
		"accomplishment_projects": []any{
			map[string]any{"title": "Indexer", "description": "Rewrote the document indexer."},
		},
		"education": []any{
			map[string]any{"field_of_study": "Computer Science", "school": "State University"},
			map[string]any{"field_of_study": "Mathematics", "school": "City College"},
		},
	}
}

func TestNormalize_AllFieldsInOrder(t *testing.T) {
	rec := Normalize(fullProfile())

	require.Len(t, rec.Fields, 6)
	assert.Equal(t, "Summary", rec.Fields[0].Label)
	assert.Equal(t, "Experience 1", rec.Fields[1].Label)
	assert.Equal(t, "Experience 2", rec.Fields[2].Label)
	assert.Equal(t, "Project", rec.Fields[3].Label)
	assert.Equal(t, "Education 1", rec.Fields[4].Label)
	assert.Equal(t, "Education 2", rec.Fields[5].Label)
	assert.Equal(t, SourceLookup, rec.Source)
}

func TestNormalize_MissingEducation(t *testing.T) {
	raw := fullProfile()
	delete(raw, "education")

	rec := Normalize(raw)

	for _, f := range rec.Fields {
		assert.NotContains(t, f.Label, "Education")
	}
}

func TestNormalize_TwoCompleteEducationEntries(t *testing.T) {
	rec := Normalize(fullProfile())
	flat := rec.Flatten()

	assert.Equal(t, 2, strings.Count(flat, "Education"))
	first := strings.Index(flat, "Computer Science")
	second := strings.Index(flat, "Mathematics")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second, "education entries must keep source order")
}

func TestNormalize_PartialExperienceSkippedEntirely(t *testing.T) {
	raw := fullProfile()
	raw["experiences"] = []any{
		map[string]any{"company": "Acme Corp"},
		map[string]any{"company": "Globex", "description": "Led the search team."},
	}

	rec := Normalize(raw)
	flat := rec.Flatten()

	assert.NotContains(t, flat, "Acme Corp")
	assert.Contains(t, flat, "Experience 2: Led the search team. (at Globex)")
	// There must be no half-filled experience line.
	assert.NotContains(t, flat, "Experience 1")
}

func TestNormalize_EmptyRecord(t *testing.T) {
	rec := Normalize(map[string]any{})
	assert.Empty(t, rec.Fields)
	assert.Empty(t, rec.Flatten())
}

func TestFlatten_LabelValueLines(t *testing.T) {
	rec := Record{Fields: []Field{
		{Label: "Summary", Value: "hello"},
		{Label: "Project", Value: "world"},
	}}

	assert.Equal(t, "Summary: hello\nProject: world", rec.Flatten())
}

func TestEmpty_MarksSourceFailed(t *testing.T) {
	rec := Empty()
	assert.Equal(t, SourceFailed, rec.Source)
	assert.Empty(t, rec.Flatten())
}
