package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marks(f float64) *float64 { return &f }

func TestGradeFor(t *testing.T) {
	tests := []struct {
		marks  float64
		letter string
		points float64
	}{
		{100, "A", 4.0},
		{85, "A", 4.0},
		{84.9, "A-", 3.67},
		{71, "B", 3.0},
		{50, "D", 1.0},
		{49.5, "F", 0},
		{0, "F", 0},
	}

	for _, tt := range tests {
		g := GradeFor(tt.marks)
		assert.Equal(t, tt.letter, g.Letter, "marks %v", tt.marks)
		assert.Equal(t, tt.points, g.Points, "marks %v", tt.marks)
	}
}

func TestSemesterGPA(t *testing.T) {
	subjects := []Subject{
		{Name: "Calculus", CreditHours: 3, Marks: marks(90)},
		{Name: "Physics", CreditHours: 4, Marks: marks(72)},
		{Name: "Lab", CreditHours: 1},
	}

	gpa, ok := SemesterGPA(subjects)
	require.True(t, ok)
	// (4.0*3 + 3.0*4) / 7
	assert.Equal(t, 3.43, gpa)
}

func TestSemesterGPA_NothingGraded(t *testing.T) {
	_, ok := SemesterGPA([]Subject{{Name: "Lab", CreditHours: 1}})
	assert.False(t, ok)

	_, ok = SemesterGPA(nil)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	semesters := []Semester{
		{ID: "s1", Name: "Fall 2023"},
		{ID: "s2", Name: "Spring 2024"},
	}
	subjects := []Subject{
		{SemesterID: "s2", CreditHours: 3, Marks: marks(60)},
		{SemesterID: "s1", CreditHours: 3, Marks: marks(88)},
		{SemesterID: "s1", CreditHours: 2},
		{SemesterID: "unknown", CreditHours: 3, Marks: marks(99)},
	}

	summaries := Summarize(semesters, subjects)
	require.Len(t, summaries, 2)

	assert.Equal(t, "Fall 2023", summaries[0].Semester.Name)
	require.NotNil(t, summaries[0].GPA)
	assert.Equal(t, 4.0, *summaries[0].GPA)
	assert.Equal(t, 5.0, summaries[0].CreditHours)
	assert.Equal(t, 2, summaries[0].Subjects)

	require.NotNil(t, summaries[1].GPA)
	assert.Equal(t, 1.67, *summaries[1].GPA)
}

func TestFieldAccessors(t *testing.T) {
	s := Subject{Name: "Algorithms", Code: "CS201"}
	assert.Equal(t, "Algorithms", s.Field("name"))
	assert.Nil(t, s.Field("marks"), "nil marks must be an untyped nil")
	assert.Nil(t, s.Field("grade"))
	assert.Nil(t, s.Field("missing"))

	p := Project{Technologies: []string{"Go", "React"}}
	assert.Equal(t, "Go, React", p.Field("technologies"))

	var r Record
	assert.Nil(t, r.Field("anything"))
}

func TestFieldAccessors_EmptyStringsAreAbsent(t *testing.T) {
	tests := []struct {
		name   string
		record Fielder
		fields []string
	}{
		{"semester", Semester{}, []string{"id", "userId", "name", "term", "startDate", "endDate"}},
		{"subject", Subject{}, []string{"id", "semesterId", "name", "code", "grade", "instructor"}},
		{"project", Project{}, []string{"id", "title", "description", "status", "startDate"}},
		{"certificate", Certificate{}, []string{"id", "title", "issuer", "issueDate", "expiryDate"}},
		{"profile", Profile{}, []string{"id", "name", "email", "phone", "studentId", "department", "program", "bio", "website"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, field := range tt.fields {
				assert.Nil(t, tt.record.Field(field), field)
			}
		})
	}

	assert.Equal(t, 0, Semester{}.Field("year"), "numeric fields keep their zero value")
	assert.Equal(t, "2024-01-15", Semester{StartDate: "2024-01-15"}.Field("startDate"))
}
