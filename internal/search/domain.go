package search

import "github.com/davidschrooten/open-academic-records/internal/records"

// Searchable fields per record kind
var (
	SubjectFields     = []string{"name", "code", "instructor", "grade"}
	ProjectFields     = []string{"title", "description", "technologies", "status"}
	CertificateFields = []string{"title", "issuer", "credentialId"}
	SemesterFields    = []string{"name", "term"}
)

// NewSubjectSearch creates an engine over subjects
func NewSubjectSearch(subjects []records.Subject, opts ...Option) *Engine[records.Subject] {
	return New(subjects, SubjectFields, opts...)
}

// NewProjectSearch creates an engine over projects
func NewProjectSearch(projects []records.Project, opts ...Option) *Engine[records.Project] {
	return New(projects, ProjectFields, opts...)
}

// NewCertificateSearch creates an engine over certificates
func NewCertificateSearch(certificates []records.Certificate, opts ...Option) *Engine[records.Certificate] {
	return New(certificates, CertificateFields, opts...)
}

// NewSemesterSearch creates an engine over semesters
func NewSemesterSearch(semesters []records.Semester, opts ...Option) *Engine[records.Semester] {
	return New(semesters, SemesterFields, opts...)
}

// FieldsFor returns the searchable fields of a record kind
func FieldsFor(kind string) ([]string, bool) {
	switch kind {
	case "subjects", "subject":
		return SubjectFields, true
	case "projects", "project":
		return ProjectFields, true
	case "certificates", "certificate":
		return CertificateFields, true
	case "semesters", "semester":
		return SemesterFields, true
	}
	return nil, false
}

// InSemester keeps subjects of one semester
func InSemester(semesterID string) Filter {
	return Filter{Field: "semesterId", Operator: OpEquals, Value: semesterID}
}

// MarksBetween keeps subjects whose marks fall in [lo, hi]
func MarksBetween(lo, hi float64) Filter {
	return Filter{Field: "marks", Operator: OpBetween, Value: []float64{lo, hi}}
}

// WithGrades keeps subjects holding one of the letter grades
func WithGrades(grades ...string) Filter {
	return Filter{Field: "grade", Operator: OpIn, Value: grades}
}

// UsingTechnology keeps projects whose technology list mentions tech
func UsingTechnology(tech string) Filter {
	return Filter{Field: "technologies", Operator: OpContains, Value: tech}
}

// WithStatus keeps projects in the given status
func WithStatus(status string) Filter {
	return Filter{Field: "status", Operator: OpEquals, Value: status}
}

// IssuedBy keeps certificates whose issuer mentions issuer
func IssuedBy(issuer string) Filter {
	return Filter{Field: "issuer", Operator: OpContains, Value: issuer}
}

// InYear keeps semesters of one academic year
func InYear(year int) Filter {
	return Filter{Field: "year", Operator: OpEquals, Value: year}
}
