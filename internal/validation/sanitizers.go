package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/davidschrooten/open-academic-records/internal/records"
	"github.com/davidschrooten/open-academic-records/internal/values"
)

// Sanitizer normalizes a raw form value
type Sanitizer func(value any) any

var (
	nonLetters    = regexp.MustCompile(`[^a-zA-Z\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
	phoneJunk     = regexp.MustCompile(`[^\d+\-() ]`)
	schemePrefix  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)
	// leading decimal literal, the way parseFloat reads it
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// Sanitizers holds the named sanitizers usable in field mappings
var Sanitizers = map[string]Sanitizer{
	"name":   SanitizeName,
	"email":  SanitizeEmail,
	"phone":  SanitizePhone,
	"text":   SanitizeText,
	"number": SanitizeNumber,
	"url":    SanitizeURL,
}

// LookupSanitizer returns the named sanitizer
func LookupSanitizer(name string) (Sanitizer, bool) {
	fn, ok := Sanitizers[name]
	return fn, ok
}

// SanitizeName keeps letters and single spaces only
func SanitizeName(value any) any {
	s := nonLetters.ReplaceAllString(text(value), "")
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}

// SanitizeEmail trims and lowercases
func SanitizeEmail(value any) any {
	return strings.ToLower(strings.TrimSpace(text(value)))
}

// SanitizePhone keeps digits, '+', '-', parentheses and spaces
func SanitizePhone(value any) any {
	return phoneJunk.ReplaceAllString(text(value), "")
}

// SanitizeText collapses whitespace runs and trims
func SanitizeText(value any) any {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text(value), " "))
}

// SanitizeNumber reads the leading number from value. Anything without one
// becomes 0.
func SanitizeNumber(value any) any {
	if values.IsNumeric(value) {
		n := values.ToNumber(value)
		if math.IsNaN(n) {
			return 0.0
		}
		return n
	}

	s := strings.TrimSpace(text(value))
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}

	n, err := strconv.ParseFloat(floatPrefix.FindString(s), 64)
	if errors.Is(err, strconv.ErrRange) {
		return n
	}
	if err != nil {
		return 0.0
	}
	return n
}

// SanitizeURL defaults scheme-less URLs to https
func SanitizeURL(value any) any {
	s := strings.TrimSpace(text(value))
	if s == "" || schemePrefix.MatchString(s) {
		return s
	}
	return "https://" + s
}

// SanitizeFormData returns a copy of data with each mapped field passed
// through its sanitizer. Unmapped and nil fields are copied as-is.
func SanitizeFormData(data records.Record, mapping map[string]Sanitizer) records.Record {
	out := data.Clone()
	for field, sanitize := range mapping {
		value, ok := out[field]
		if !ok || value == nil || sanitize == nil {
			continue
		}
		out[field] = sanitize(value)
	}
	return out
}
