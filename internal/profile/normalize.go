package profile

import (
	"fmt"
	"strings"
)

// Source records how a profile Record was produced, so callers can tell
// "lookup found nothing" apart from "lookup errored".
type Source string

const (
	// SourceLookup means the record came from a successful profile lookup.
	SourceLookup Source = "lookup"
	// SourceFailed means the lookup errored and an empty record was substituted.
	SourceFailed Source = "lookup_failed"
)

// Field is one labeled line of the flattened profile.
type Field struct {
	Label string
	Value string
}

// Record is a normalized profile: an ordered list of labeled free-text
// fields. Missing source fields are omitted entirely.
type Record struct {
	Fields []Field
	Source Source
}

// Empty returns an all-blank record produced because the lookup failed.
func Empty() Record {
	return Record{Source: SourceFailed}
}

// Normalize copies a fixed, ordered list of fields out of the raw profile
// mapping. Entries needing two source values (an experience needs both a
// company and a description) are skipped entirely when either is missing.
func Normalize(raw map[string]any) Record {
	rec := Record{Source: SourceLookup}

	if summary := stringField(raw, "summary"); summary != "" {
		rec.add("Summary", summary)
	}

	experiences := objectList(raw, "experiences")
	for i := 0; i < 2 && i < len(experiences); i++ {
		company := stringField(experiences[i], "company")
		description := stringField(experiences[i], "description")
		if company == "" || description == "" {
			continue
		}
		rec.add(fmt.Sprintf("Experience %d", i+1), fmt.Sprintf("%s (at %s)", description, company))
	}

	if projects := objectList(raw, "accomplishment_projects"); len(projects) > 0 {
		title := stringField(projects[0], "title")
		description := stringField(projects[0], "description")
		if title != "" && description != "" {
			rec.add("Project", fmt.Sprintf("%s, %s", title, description))
		}
	}

	education := objectList(raw, "education")
	for i := 0; i < 2 && i < len(education); i++ {
		field := stringField(education[i], "field_of_study")
		school := stringField(education[i], "school")
		if field == "" || school == "" {
			continue
		}
		rec.add(fmt.Sprintf("Education %d", i+1), fmt.Sprintf("%s, %s", field, school))
	}

	return rec
}

// Flatten renders the record as one "label: value" line per field, in
// declaration order.
func (r Record) Flatten() string {
	lines := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	return strings.Join(lines, "\n")
}

func (r *Record) add(label, value string) {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func objectList(m map[string]any, key string) []map[string]any {
	list, ok := m[key].([]any)
	if !ok {
		return nil
	}
	objects := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if obj, ok := item.(map[string]any); ok {
			objects = append(objects, obj)
		}
	}
	return objects
}
