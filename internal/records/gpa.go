package records

import "math"

// GradePoint maps a minimum mark to a letter grade on a 4.0 scale
type GradePoint struct {
	Letter   string  `json:"letter"`
	Points   float64 `json:"points"`
	MinMarks float64 `json:"minMarks"`
}

// DefaultScale is ordered from the highest band to the lowest
var DefaultScale = []GradePoint{
	{Letter: "A", Points: 4.0, MinMarks: 85},
	{Letter: "A-", Points: 3.67, MinMarks: 80},
	{Letter: "B+", Points: 3.33, MinMarks: 75},
	{Letter: "B", Points: 3.0, MinMarks: 71},
	{Letter: "B-", Points: 2.67, MinMarks: 68},
	{Letter: "C+", Points: 2.33, MinMarks: 64},
	{Letter: "C", Points: 2.0, MinMarks: 61},
	{Letter: "C-", Points: 1.67, MinMarks: 58},
	{Letter: "D+", Points: 1.33, MinMarks: 54},
	{Letter: "D", Points: 1.0, MinMarks: 50},
	{Letter: "F", Points: 0, MinMarks: 0},
}

// GradeFor returns the band of DefaultScale that marks falls into
func GradeFor(marks float64) GradePoint {
	for _, g := range DefaultScale {
		if marks >= g.MinMarks {
			return g
		}
	}
	return DefaultScale[len(DefaultScale)-1]
}

// SemesterGPA computes the credit-weighted GPA of subjects. Subjects without
// marks or credit hours are skipped; ok is false when nothing was graded.
func SemesterGPA(subjects []Subject) (gpa float64, ok bool) {
	var points, credits float64
	for _, s := range subjects {
		if s.Marks == nil || s.CreditHours <= 0 {
			continue
		}
		points += GradeFor(*s.Marks).Points * s.CreditHours
		credits += s.CreditHours
	}
	if credits == 0 {
		return 0, false
	}
	return round2(points / credits), true
}

// CumulativeGPA is the credit-weighted GPA across every graded subject
func CumulativeGPA(subjects []Subject) (float64, bool) {
	return SemesterGPA(subjects)
}

// SemesterSummary is the per-semester GPA report
type SemesterSummary struct {
	Semester    Semester `json:"semester"`
	GPA         *float64 `json:"gpa"`
	CreditHours float64  `json:"creditHours"`
	Subjects    int      `json:"subjects"`
}

// Summarize groups subjects by semester, preserving the order of semesters.
// Subjects whose semester is unknown are ignored.
func Summarize(semesters []Semester, subjects []Subject) []SemesterSummary {
	bySemester := make(map[string][]Subject, len(semesters))
	for _, s := range subjects {
		bySemester[s.SemesterID] = append(bySemester[s.SemesterID], s)
	}

	summaries := make([]SemesterSummary, 0, len(semesters))
	for _, sem := range semesters {
		subs := bySemester[sem.ID]
		summary := SemesterSummary{Semester: sem, Subjects: len(subs)}
		for _, s := range subs {
			summary.CreditHours += s.CreditHours
		}
		if gpa, ok := SemesterGPA(subs); ok {
			summary.GPA = &gpa
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
