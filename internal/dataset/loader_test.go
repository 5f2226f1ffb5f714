package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidschrooten/open-academic-records/internal/records"
)

const subjectsJSON = `{
  "data": {
    "subjects": [
      {"id": "1", "name": "Compilers", "code": "CS440", "creditHours": 3, "marks": 88},
      {"id": "2", "name": "Databases", "code": "CS340", "creditHours": "4", "marks": null}
    ]
  }
}`

const subjectsYAML = `
subjects:
  - id: "1"
    name: Compilers
    code: CS440
    creditHours: 3
    marks: 88
  - id: "2"
    name: Databases
    code: CS340
    creditHours: 4
`

const subjectsTOML = `
[[subjects]]
id = "1"
name = "Compilers"
code = "CS440"
creditHours = 3
marks = 88

[[subjects]]
id = "2"
name = "Databases"
code = "CS340"
creditHours = 4
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Formats(t *testing.T) {
	marks := 88.0
	want := []records.Subject{
		{ID: "1", Name: "Compilers", Code: "CS440", CreditHours: 3, Marks: &marks},
		{ID: "2", Name: "Databases", Code: "CS340", CreditHours: 4},
	}

	tests := []struct {
		name    string
		file    string
		content string
		path    string
	}{
		{"json", "subjects.json", subjectsJSON, "data.subjects"},
		{"yaml", "subjects.yaml", subjectsYAML, "subjects"},
		{"yml", "subjects.yml", subjectsYAML, "subjects"},
		{"toml", "subjects.toml", subjectsTOML, "subjects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, err := Load(writeFile(t, tt.file, tt.content), Options{Path: tt.path})
			require.NoError(t, err)
			require.Len(t, recs, 2)

			subjects, err := Decode[records.Subject](recs)
			require.NoError(t, err)
			if diff := cmp.Diff(want, subjects); diff != "" {
				t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_SingleObject(t *testing.T) {
	path := writeFile(t, "profile.json", `{"name": "Ada Lovelace", "email": "ada@example.com"}`)

	recs, err := Load(path, Options{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "ada@example.com", recs[0].Field("email"))
}

func TestLoad_FormatOverride(t *testing.T) {
	path := writeFile(t, "subjects.data", subjectsYAML)

	recs, err := Load(path, Options{Path: "subjects", Format: FormatYAML})
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "subjects.csv", "id,name"), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "subjects.json", subjectsJSON), Options{Path: "data.projects"})
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = Load(writeFile(t, "subjects.yaml", subjectsYAML), Options{Path: "subjects.7"})
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = Load(writeFile(t, "broken.json", `{"subjects": [`), Options{})
	assert.Error(t, err)

	_, err = Load(writeFile(t, "scalars.json", `[1, 2]`), Options{})
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), Options{})
	assert.Error(t, err)
}

func TestWalk_ListIndex(t *testing.T) {
	recs, err := Parse([]byte(subjectsYAML), FormatYAML, "subjects.1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Databases", recs[0].Field("name"))
}

func TestDecode_Projects(t *testing.T) {
	recs := []records.Record{
		{"id": "p1", "title": "Grade Tracker", "technologies": []any{"Go", "SQLite"}, "status": "completed"},
	}

	projects, err := Decode[records.Project](recs)
	require.NoError(t, err)
	want := []records.Project{{ID: "p1", Title: "Grade Tracker", Technologies: []string{"Go", "SQLite"}, Status: "completed"}}
	if diff := cmp.Diff(want, projects); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}
