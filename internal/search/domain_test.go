package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidschrooten/open-academic-records/internal/records"
)

func ptr(f float64) *float64 { return &f }

func TestSubjectSearch(t *testing.T) {
	subjects := []records.Subject{
		{ID: "1", SemesterID: "fall", Name: "Operating Systems", Code: "CS330", Marks: ptr(78), Grade: "B+"},
		{ID: "2", SemesterID: "fall", Name: "Linear Algebra", Code: "MA210", Marks: ptr(92), Grade: "A"},
		{ID: "3", SemesterID: "spring", Name: "Compilers", Code: "CS440", Grade: ""},
	}
	engine := NewSubjectSearch(subjects)

	result := engine.Search(Options{Filters: []Filter{InSemester("fall"), MarksBetween(75, 95)}})
	require.Len(t, result.Items, 2)

	result = engine.Search(Options{Filters: []Filter{WithGrades("A", "A-")}})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Linear Algebra", result.Items[0].Name)

	result = engine.Search(Options{Query: "cs", Sort: &Sort{Field: "marks", Direction: Desc}})
	require.Len(t, result.Items, 2)
	assert.Equal(t, "CS330", result.Items[0].Code)
	assert.Equal(t, "CS440", result.Items[1].Code, "subjects without marks sort last")
}

func TestProjectSearch(t *testing.T) {
	projects := []records.Project{
		{ID: "1", Title: "Grade Tracker", Technologies: []string{"Go", "PostgreSQL"}, Status: "completed"},
		{ID: "2", Title: "Portfolio Site", Technologies: []string{"React"}, Status: "in-progress"},
	}
	engine := NewProjectSearch(projects)

	result := engine.Search(Options{Filters: []Filter{UsingTechnology("postgres")}})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Grade Tracker", result.Items[0].Title)

	result = engine.Search(Options{Filters: []Filter{WithStatus("in-progress")}})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "2", result.Items[0].ID)

	result = engine.Search(Options{Query: "react"})
	require.Len(t, result.Items, 1)
}

func TestCertificateSearch(t *testing.T) {
	certs := []records.Certificate{
		{ID: "1", Title: "Cloud Practitioner", Issuer: "Amazon Web Services"},
		{ID: "2", Title: "Machine Learning", Issuer: "Coursera"},
	}
	engine := NewCertificateSearch(certs)

	result := engine.Search(Options{Filters: []Filter{IssuedBy("amazon")}})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cloud Practitioner", result.Items[0].Title)

	result = engine.Search(Options{Query: "machne", Fuzzy: true})
	assert.Empty(t, result.Items, "fuzzy compares the whole title")

	result = engine.Search(Options{Query: "coursra", Fuzzy: true})
	require.Len(t, result.Items, 1)
}

func TestSemesterSearch(t *testing.T) {
	semesters := []records.Semester{
		{ID: "1", Name: "Fall 2023", Year: 2023, Term: "fall"},
		{ID: "2", Name: "Spring 2024", Year: 2024, Term: "spring"},
	}
	engine := NewSemesterSearch(semesters)

	result := engine.Search(Options{Filters: []Filter{InYear(2024)}})
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Spring 2024", result.Items[0].Name)
}

func TestSemesterSearch_MissingDatesSortLast(t *testing.T) {
	semesters := []records.Semester{
		{ID: "1", Name: "Summer Session", Year: 2024},
		{ID: "2", Name: "Spring 2024", Year: 2024, StartDate: "2024-01-15"},
		{ID: "3", Name: "Fall 2023", Year: 2023, StartDate: "2023-09-01"},
	}
	engine := NewSemesterSearch(semesters)

	for _, dir := range []Direction{Asc, Desc} {
		result := engine.Search(Options{Sort: &Sort{Field: "startDate", Direction: dir}})
		require.Len(t, result.Items, 3)
		assert.Equal(t, "1", result.Items[2].ID, "semester without a start date sorts last (%s)", dir)
	}
}

func TestFieldsFor(t *testing.T) {
	fields, ok := FieldsFor("projects")
	assert.True(t, ok)
	assert.Equal(t, ProjectFields, fields)

	_, ok = FieldsFor("grades")
	assert.False(t, ok)
}
