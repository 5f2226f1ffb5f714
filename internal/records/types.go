package records

import "strings"

// Fielder exposes named attributes of a record. A nil result means the
// attribute is null or absent.
type Fielder interface {
	Field(name string) any
}

// Record is a loosely typed record as decoded from JSON, YAML or TOML
type Record map[string]any

// Field returns the value stored under name
func (r Record) Field(name string) any {
	if r == nil {
		return nil
	}
	return r[name]
}

// Clone returns a shallow copy of the record
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Semester is one academic term of a student
type Semester struct {
	ID        string   `json:"id"`
	UserID    string   `json:"userId"`
	Name      string   `json:"name"`
	Year      int      `json:"year"`
	Term      string   `json:"term"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	GPA       *float64 `json:"gpa,omitempty"`
}

func (s Semester) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(s.ID)
	case "userId":
		return stringOrNil(s.UserID)
	case "name":
		return stringOrNil(s.Name)
	case "year":
		return s.Year
	case "term":
		return stringOrNil(s.Term)
	case "startDate":
		return stringOrNil(s.StartDate)
	case "endDate":
		return stringOrNil(s.EndDate)
	case "gpa":
		return floatOrNil(s.GPA)
	}
	return nil
}

// Subject is a course taken within a semester
type Subject struct {
	ID          string   `json:"id"`
	SemesterID  string   `json:"semesterId"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	CreditHours float64  `json:"creditHours"`
	Marks       *float64 `json:"marks,omitempty"`
	Grade       string   `json:"grade"`
	Instructor  string   `json:"instructor"`
}

func (s Subject) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(s.ID)
	case "semesterId":
		return stringOrNil(s.SemesterID)
	case "name":
		return stringOrNil(s.Name)
	case "code":
		return stringOrNil(s.Code)
	case "creditHours":
		return s.CreditHours
	case "marks":
		return floatOrNil(s.Marks)
	case "grade":
		return stringOrNil(s.Grade)
	case "instructor":
		return stringOrNil(s.Instructor)
	}
	return nil
}

// Project is a portfolio entry
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Status       string   `json:"status"`
	GithubURL    string   `json:"githubUrl"`
	LiveURL      string   `json:"liveUrl"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
}

func (p Project) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(p.ID)
	case "title":
		return stringOrNil(p.Title)
	case "description":
		return stringOrNil(p.Description)
	case "technologies":
		if len(p.Technologies) == 0 {
			return nil
		}
		return strings.Join(p.Technologies, ", ")
	case "status":
		return stringOrNil(p.Status)
	case "githubUrl":
		return stringOrNil(p.GithubURL)
	case "liveUrl":
		return stringOrNil(p.LiveURL)
	case "startDate":
		return stringOrNil(p.StartDate)
	case "endDate":
		return stringOrNil(p.EndDate)
	}
	return nil
}

// Certificate is an earned credential
type Certificate struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	IssueDate     string `json:"issueDate"`
	ExpiryDate    string `json:"expiryDate"`
	CredentialID  string `json:"credentialId"`
	CredentialURL string `json:"credentialUrl"`
}

func (c Certificate) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(c.ID)
	case "title":
		return stringOrNil(c.Title)
	case "issuer":
		return stringOrNil(c.Issuer)
	case "issueDate":
		return stringOrNil(c.IssueDate)
	case "expiryDate":
		return stringOrNil(c.ExpiryDate)
	case "credentialId":
		return stringOrNil(c.CredentialID)
	case "credentialUrl":
		return stringOrNil(c.CredentialURL)
	}
	return nil
}

// Profile holds the student's personal details
type Profile struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	StudentID  string `json:"studentId"`
	Department string `json:"department"`
	Program    string `json:"program"`
	Bio        string `json:"bio"`
	Website    string `json:"website"`
}

func (p Profile) Field(name string) any {
	switch name {
	case "id":
		return stringOrNil(p.ID)
	case "name":
		return stringOrNil(p.Name)
	case "email":
		return stringOrNil(p.Email)
	case "phone":
		return stringOrNil(p.Phone)
	case "studentId":
		return stringOrNil(p.StudentID)
	case "department":
		return stringOrNil(p.Department)
	case "program":
		return stringOrNil(p.Program)
	case "bio":
		return stringOrNil(p.Bio)
	case "website":
		return stringOrNil(p.Website)
	}
	return nil
}

// floatOrNil keeps a nil pointer from becoming a non-nil interface
func floatOrNil(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// stringOrNil reads the empty string as an absent field
func stringOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
