package validation

// Forms lists the forms with a canned rule set, in display order
var Forms = []string{"profile", "semester", "subject", "project", "certificate"}

func ProfileRules() []Rule {
	return []Rule{
		{Field: "name", Required: true, Validator: Name},
		{Field: "email", Required: true, Validator: Email},
		{Field: "phone", Validator: Phone},
		{Field: "website", Validator: URL},
	}
}

func SemesterRules() []Rule {
	return []Rule{
		{Field: "name", Required: true, Validator: SemesterName},
		{Field: "startDate", Validator: Date},
		{Field: "endDate", Validator: Date},
	}
}

func SubjectRules() []Rule {
	return []Rule{
		{Field: "name", Required: true, Validator: SubjectName},
		{Field: "creditHours", Required: true, Validator: CreditHours},
		{Field: "marks", Validator: Marks},
	}
}

func ProjectRules() []Rule {
	return []Rule{
		{Field: "title", Required: true, Validator: ProjectTitle},
		{Field: "githubUrl", Validator: URL},
		{Field: "liveUrl", Validator: URL},
		{Field: "startDate", Validator: Date},
		{Field: "endDate", Validator: Date},
	}
}

// CertificateRules warns about future issue dates and past expiry dates
func CertificateRules() []Rule {
	return []Rule{
		{Field: "title", Required: true},
		{Field: "issuer", Required: true},
		{Field: "issueDate", Required: true, Validator: Date},
		{Field: "issueDate", Validator: PastDate},
		{Field: "expiryDate", Validator: FutureDate},
		{Field: "credentialUrl", Validator: URL},
	}
}

// UploadRules checks the "file" field of an upload form
func UploadRules(maxMB float64, allowed []string) []Rule {
	return []Rule{
		{Field: "file", Required: true, Validator: FileSize(maxMB)},
		{Field: "file", Validator: FileType(allowed...)},
	}
}

// FormRules returns the rule set registered for form
func FormRules(form string) ([]Rule, bool) {
	switch form {
	case "profile":
		return ProfileRules(), true
	case "semester":
		return SemesterRules(), true
	case "subject":
		return SubjectRules(), true
	case "project":
		return ProjectRules(), true
	case "certificate":
		return CertificateRules(), true
	}
	return nil, false
}

// FormSanitizers returns the field to sanitizer mapping used before
// validating form
func FormSanitizers(form string) (map[string]Sanitizer, bool) {
	switch form {
	case "profile":
		return map[string]Sanitizer{
			"name":    SanitizeName,
			"email":   SanitizeEmail,
			"phone":   SanitizePhone,
			"bio":     SanitizeText,
			"website": SanitizeURL,
		}, true
	case "semester":
		return map[string]Sanitizer{
			"name": SanitizeText,
		}, true
	case "subject":
		return map[string]Sanitizer{
			"name":        SanitizeText,
			"code":        SanitizeText,
			"instructor":  SanitizeName,
			"creditHours": SanitizeNumber,
			"marks":       SanitizeNumber,
		}, true
	case "project":
		return map[string]Sanitizer{
			"title":       SanitizeText,
			"description": SanitizeText,
			"githubUrl":   SanitizeURL,
			"liveUrl":     SanitizeURL,
		}, true
	case "certificate":
		return map[string]Sanitizer{
			"title":         SanitizeText,
			"issuer":        SanitizeText,
			"credentialUrl": SanitizeURL,
		}, true
	}
	return nil, false
}
