package models

// Budget brackets offered on the contact form
const (
	BudgetUnder25k   = "<25k"
	Budget25To100k   = "25-100k"
	Budget100To500k  = "100-500k"
	BudgetOver500k   = "500k+"
	BudgetNotDefined = ""
)

// BudgetBrackets lists the selectable brackets in display order.
var BudgetBrackets = []string{BudgetUnder25k, Budget25To100k, Budget100To500k, BudgetOver500k}

// ContactSubmission is the JSON payload accepted by POST /api/contact
type ContactSubmission struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Message     string `json:"message"`
	GDPRConsent bool   `json:"gdprConsent"`
}

// HasRequiredFields reports whether name, email, message and GDPR consent are all present.
func (s ContactSubmission) HasRequiredFields() bool {
	return s.FullName != "" && s.Email != "" && s.Message != "" && s.GDPRConsent
}

// ContactResponse is the success body returned by the endpoint
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the failure body returned by the endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}
