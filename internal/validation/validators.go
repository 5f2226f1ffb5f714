package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-module/carbon/v2"

	"github.com/davidschrooten/open-academic-records/internal/values"
)

// singleton
var validate = validator.New()

// now is swapped in tests
var now = time.Now

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern    = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	lowerPattern   = regexp.MustCompile(`[a-z]`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// Validators holds the named predicates usable in rules
var Validators = map[string]Func{
	"email":          Email,
	"phone":          Phone,
	"name":           Name,
	"marks":          Marks,
	"creditHours":    CreditHours,
	"semesterName":   SemesterName,
	"subjectName":    SubjectName,
	"projectTitle":   ProjectTitle,
	"url":            URL,
	"date":           Date,
	"futureDate":     FutureDate,
	"pastDate":       PastDate,
	"strongPassword": StrongPassword,
}

// LookupValidator returns the named validator
func LookupValidator(name string) (Func, bool) {
	fn, ok := Validators[name]
	return fn, ok
}

func valid() Result { return Result{IsValid: true} }

func invalid(msg string) Result { return Result{Message: msg} }

func warning(msg string) Result { return Result{Message: msg, IsWarning: true} }

func text(value any) string {
	s, _ := values.ToString(value)
	return s
}

// checkVar runs a go-playground tag against a single value
func checkVar(v any, tag string) bool {
	return validate.Var(v, tag) == nil
}

// Email checks for a local part, an @ and a dotted domain
func Email(value any) Result {
	if !emailPattern.MatchString(text(value)) {
		return invalid("Please enter a valid email address")
	}
	return valid()
}

// Phone ignores spaces, dashes and parentheses before matching digits
func Phone(value any) Result {
	digits := phoneSeparators.ReplaceAllString(text(value), "")
	if !phonePattern.MatchString(digits) {
		return invalid("Please enter a valid phone number")
	}
	return valid()
}

// Name accepts 2-50 letters and spaces
func Name(value any) Result {
	s := text(value)
	if !checkVar(s, "min=2,max=50") || !namePattern.MatchString(s) {
		return invalid("Name must be 2-50 characters and contain only letters and spaces")
	}
	return valid()
}

// Marks accepts numbers from 0 to 100
func Marks(value any) Result {
	if !checkVar(values.ToNumber(value), "gte=0,lte=100") {
		return invalid("Marks must be between 0 and 100")
	}
	return valid()
}

// CreditHours accepts numbers from 1 to 6
func CreditHours(value any) Result {
	if !checkVar(values.ToNumber(value), "gte=1,lte=6") {
		return invalid("Credit hours must be between 1 and 6")
	}
	return valid()
}

// SemesterName accepts 3-30 characters
func SemesterName(value any) Result {
	if !checkVar(text(value), "min=3,max=30") {
		return invalid("Semester name must be 3-30 characters")
	}
	return valid()
}

// SubjectName accepts 2-100 characters
func SubjectName(value any) Result {
	if !checkVar(text(value), "min=2,max=100") {
		return invalid("Subject name must be 2-100 characters")
	}
	return valid()
}

// ProjectTitle accepts 5-200 characters
func ProjectTitle(value any) Result {
	if !checkVar(text(value), "min=5,max=200") {
		return invalid("Project title must be 5-200 characters")
	}
	return valid()
}

// URL accepts absolute URLs only
func URL(value any) Result {
	if !checkVar(text(value), "url") {
		return invalid("Please enter a valid URL")
	}
	return valid()
}

// Date accepts anything parseDate can read
func Date(value any) Result {
	if _, ok := parseDate(value); !ok {
		return invalid("Please enter a valid date")
	}
	return valid()
}

// FutureDate only ever warns
func FutureDate(value any) Result {
	t, ok := parseDate(value)
	if !ok || !t.After(now()) {
		return warning("Date should be in the future")
	}
	return valid()
}

// PastDate only ever warns
func PastDate(value any) Result {
	t, ok := parseDate(value)
	if !ok || !t.Before(now()) {
		return warning("Date should be in the past")
	}
	return valid()
}

// StrongPassword lists every missing requirement in a fixed order
func StrongPassword(value any) Result {
	s := text(value)

	var missing []string
	if !lowerPattern.MatchString(s) {
		missing = append(missing, "lowercase letter")
	}
	if !upperPattern.MatchString(s) {
		missing = append(missing, "uppercase letter")
	}
	if !digitPattern.MatchString(s) {
		missing = append(missing, "number")
	}
	if !specialPattern.MatchString(s) {
		missing = append(missing, "special character")
	}
	if len([]rune(s)) < 8 {
		missing = append(missing, "8+ characters")
	}

	if len(missing) > 0 {
		return invalid("Password must contain: " + strings.Join(missing, ", "))
	}
	return valid()
}

// FileInfo describes an uploaded file
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// FileSize builds a validator rejecting files larger than maxMB megabytes.
// The value may be a FileInfo, a decoded file object or a byte count.
func FileSize(maxMB float64) Func {
	limit := maxMB * 1024 * 1024
	msg := fmt.Sprintf("File size must be less than %gMB", maxMB)
	return func(value any) Result {
		size, ok := fileSize(value)
		if !ok || size > limit {
			return invalid(msg)
		}
		return valid()
	}
}

// FileType builds a validator accepting only the listed MIME types.
// The value may be a FileInfo, a decoded file object or a MIME type.
func FileType(allowed ...string) Func {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	msg := fmt.Sprintf("File type must be one of: %s", strings.Join(allowed, ", "))
	return func(value any) Result {
		mime, ok := fileType(value)
		if !ok {
			return invalid(msg)
		}
		if _, allowed := set[mime]; !allowed {
			return invalid(msg)
		}
		return valid()
	}
}

func fileSize(value any) (float64, bool) {
	switch v := value.(type) {
	case FileInfo:
		return float64(v.Size), true
	case *FileInfo:
		if v == nil {
			return 0, false
		}
		return float64(v.Size), true
	case map[string]any:
		return fileSize(v["size"])
	}
	n := values.ToNumber(value)
	if math.IsNaN(n) || !values.IsNumeric(value) {
		return 0, false
	}
	return n, true
}

func fileType(value any) (string, bool) {
	switch v := value.(type) {
	case FileInfo:
		return v.Type, true
	case *FileInfo:
		if v == nil {
			return "", false
		}
		return v.Type, true
	case map[string]any:
		return fileType(v["type"])
	case string:
		return v, true
	}
	return "", false
}

// isoLayouts covers what browsers and JSON encoders emit, including zoneless
// datetime-local values which are read in the local zone
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

// parseDate accepts time values, epoch milliseconds, ISO 8601 timestamps and
// any layout carbon understands
func parseDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t, true
			}
		}
		c := carbon.Parse(s)
		if c.Error != nil || c.IsZero() {
			return time.Time{}, false
		}
		return c.Carbon2Time(), true
	}
	if values.IsNumeric(value) {
		return time.UnixMilli(int64(values.ToNumber(value))), true
	}
	return time.Time{}, false
}
