package services

import (
	"consulting_site_go/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContactForm() ContactForm {
	return ContactForm{
		FullName:    "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+44 7700 900123",
		Company:     "Acme Ltd",
		Budget:      models.Budget25To100k,
		Message:     "We would like to discuss a growth plan.",
		GDPRConsent: true,
	}
}

func TestContactFormValidate(t *testing.T) {
	t.Run("Valid form", func(t *testing.T) {
		assert.Nil(t, validContactForm().Validate())
	})

	t.Run("Optional fields may be empty", func(t *testing.T) {
		form := validContactForm()
		form.Phone = ""
		form.Company = ""
		form.Budget = ""
		assert.Nil(t, form.Validate())
	})

	tests := []struct {
		name   string
		modify func(*ContactForm)
		field  string
		key    string
	}{
		{"Name too short", func(f *ContactForm) { f.FullName = "J" }, "fullName", "contact.errors.full_name_short"},
		{"Name only spaces", func(f *ContactForm) { f.FullName = "   " }, "fullName", "contact.errors.full_name_short"},
		{"Name too long", func(f *ContactForm) { f.FullName = strings.Repeat("a", 101) }, "fullName", "contact.errors.full_name_long"},
		{"Email without domain", func(f *ContactForm) { f.Email = "jane@" }, "email", "contact.errors.email_invalid"},
		{"Email without tld", func(f *ContactForm) { f.Email = "jane@example" }, "email", "contact.errors.email_invalid"},
		{"Phone too short", func(f *ContactForm) { f.Phone = "123" }, "phone", "contact.errors.phone_invalid"},
		{"Phone with letters", func(f *ContactForm) { f.Phone = "0800 CALL NOW" }, "phone", "contact.errors.phone_invalid"},
		{"Company too long", func(f *ContactForm) { f.Company = strings.Repeat("c", 101) }, "company", "contact.errors.company_long"},
		{"Unknown budget", func(f *ContactForm) { f.Budget = "1M" }, "budget", "contact.errors.budget_invalid"},
		{"Message too short", func(f *ContactForm) { f.Message = "123456789" }, "message", "contact.errors.message_short"},
		{"Message too long", func(f *ContactForm) { f.Message = strings.Repeat("m", 1001) }, "message", "contact.errors.message_long"},
		{"No consent", func(f *ContactForm) { f.GDPRConsent = false }, "gdprConsent", "contact.errors.gdpr_required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validContactForm()
			tt.modify(&form)

			errs := form.Validate()
			assert.Len(t, errs, 1)
			assert.True(t, errs.Has(tt.field))
			assert.Equal(t, tt.key, errs[tt.field])
		})
	}

	t.Run("Length boundaries", func(t *testing.T) {
		form := validContactForm()
		form.FullName = "Jo"
		form.Message = strings.Repeat("m", 10)
		form.Phone = "+1 (555) 123-4567"
		assert.Nil(t, form.Validate())

		form.Message = strings.Repeat("m", 1000)
		form.FullName = strings.Repeat("n", 100)
		assert.Nil(t, form.Validate())
	})

	t.Run("Whitespace is trimmed before checks", func(t *testing.T) {
		form := validContactForm()
		form.FullName = "  Jo  "
		form.Email = " jane@example.com "
		assert.Nil(t, form.Validate())
	})

	t.Run("Error lists fields in order", func(t *testing.T) {
		errs := ContactForm{}.Validate()
		assert.Equal(t, "invalid fields: email, fullName, gdprConsent, message", errs.Error())
	})
}

func TestContactFormIsComplete(t *testing.T) {
	assert.True(t, validContactForm().IsComplete())

	form := validContactForm()
	form.GDPRConsent = false
	assert.False(t, form.IsComplete())

	form = validContactForm()
	form.Email = "jane"
	assert.False(t, form.IsComplete())

	form = validContactForm()
	form.Message = "short"
	assert.False(t, form.IsComplete())

	assert.False(t, ContactForm{}.IsComplete())
}

func TestContactFormIsBot(t *testing.T) {
	form := validContactForm()
	assert.False(t, form.IsBot())
	form.Honeypot = "http://spam.example"
	assert.True(t, form.IsBot())
}

func TestContactFormSubmission(t *testing.T) {
	form := validContactForm()
	form.FullName = "  Jane Doe "
	form.Message = "\tWe would like to discuss a growth plan.\n"
	form.Honeypot = ""

	sub := form.Submission()
	assert.Equal(t, "Jane Doe", sub.FullName)
	assert.Equal(t, "We would like to discuss a growth plan.", sub.Message)
	assert.Equal(t, models.Budget25To100k, sub.Budget)
	assert.True(t, sub.GDPRConsent)
}

func TestIsValidBudget(t *testing.T) {
	for _, b := range models.BudgetBrackets {
		assert.True(t, IsValidBudget(b), b)
	}
	assert.True(t, IsValidBudget(""))
	assert.False(t, IsValidBudget("lots"))
}
