package services

import (
	"consulting_site_go/models"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field length limits for the contact form
const (
	FullNameMinLength = 2
	FullNameMaxLength = 100
	PhoneMinLength    = 10
	PhoneMaxLength    = 20
	CompanyMaxLength  = 100
	MessageMinLength  = 10
	MessageMaxLength  = 1000
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9_%+'\-]+(?:\.[A-Za-z0-9_%+'\-]+)*@[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9\-]*[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9\s\-+()]+$`)
)

// ContactForm holds the raw values of the contact form as the visitor typed them
type ContactForm struct {
	FullName      string
	Email         string
	Phone         string
	Company       string
	Budget        string
	Message       string
	GDPRConsent   bool
	TermsAccepted bool
	Honeypot      string
}

// ValidationErrors maps a form field to the i18n key of its error message
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// Has reports whether the field failed validation
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Trimmed returns a copy with surrounding whitespace removed from text fields
func (f ContactForm) Trimmed() ContactForm {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Company = strings.TrimSpace(f.Company)
	f.Budget = strings.TrimSpace(f.Budget)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// IsBot reports whether the hidden honeypot field was filled in
func (f ContactForm) IsBot() bool {
	return f.Honeypot != ""
}

// IsComplete reports whether the required fields look filled in.
// It is the lighter per-keystroke check that gates the footer, not full validation.
func (f ContactForm) IsComplete() bool {
	return utf8.RuneCountInString(f.FullName) >= FullNameMinLength &&
		strings.Contains(f.Email, "@") &&
		utf8.RuneCountInString(f.Message) >= MessageMinLength &&
		f.GDPRConsent
}

// Validate checks every field of the trimmed form and returns nil when all rules hold.
// The honeypot is not reported here; callers check IsBot first.
func (f ContactForm) Validate() ValidationErrors {
	f = f.Trimmed()
	errs := ValidationErrors{}

	switch n := utf8.RuneCountInString(f.FullName); {
	case n < FullNameMinLength:
		errs["fullName"] = "contact.errors.full_name_short"
	case n > FullNameMaxLength:
		errs["fullName"] = "contact.errors.full_name_long"
	}

	if !IsValidEmail(f.Email) {
		errs["email"] = "contact.errors.email_invalid"
	}

	if f.Phone != "" && !IsValidPhone(f.Phone) {
		errs["phone"] = "contact.errors.phone_invalid"
	}

	if utf8.RuneCountInString(f.Company) > CompanyMaxLength {
		errs["company"] = "contact.errors.company_long"
	}

	if !IsValidBudget(f.Budget) {
		errs["budget"] = "contact.errors.budget_invalid"
	}

	switch n := utf8.RuneCountInString(f.Message); {
	case n < MessageMinLength:
		errs["message"] = "contact.errors.message_short"
	case n > MessageMaxLength:
		errs["message"] = "contact.errors.message_long"
	}

	if !f.GDPRConsent {
		errs["gdprConsent"] = "contact.errors.gdpr_required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Submission converts the trimmed form into the endpoint payload
func (f ContactForm) Submission() models.ContactSubmission {
	f = f.Trimmed()
	return models.ContactSubmission{
		FullName:    f.FullName,
		Email:       f.Email,
		Phone:       f.Phone,
		Company:     f.Company,
		Budget:      f.Budget,
		Message:     f.Message,
		GDPRConsent: f.GDPRConsent,
	}
}

// IsValidEmail reports whether s has the shape of an email address
func IsValidEmail(s string) bool {
	return len(s) <= 254 && emailPattern.MatchString(s)
}

// IsValidPhone checks length and the allowed character set: digits, spaces, - + ( )
func IsValidPhone(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < PhoneMinLength || n > PhoneMaxLength {
		return false
	}
	return phonePattern.MatchString(s)
}

// IsValidBudget reports whether s is empty or one of the offered brackets
func IsValidBudget(s string) bool {
	if s == models.BudgetNotDefined {
		return true
	}
	for _, b := range models.BudgetBrackets {
		if s == b {
			return true
		}
	}
	return false
}
