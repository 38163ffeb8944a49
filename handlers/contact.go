package handlers

import (
	"consulting_site_go/middleware"
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/templates/partials"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// APIContact is the JSON endpoint behind the contact form.
// Mail delivery problems are logged by the service and never fail the request.
func (h *Handler) APIContact(c echo.Context) error {
	var sub models.ContactSubmission
	if err := json.NewDecoder(c.Request().Body).Decode(&sub); err != nil {
		// A JSON value that is not an object carries none of the required fields
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: services.ErrMissingRequiredFields.Error()})
		}
		c.Logger().Errorf("Contact form error: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}

	err := h.contact.Submit(c.Request().Context(), sub, h.submissionMeta(c))
	switch {
	case errors.Is(err, services.ErrMissingRequiredFields):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case err != nil:
		c.Logger().Errorf("Contact form error: %v", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(http.StatusOK, models.ContactResponse{Success: true, Message: "Form submitted successfully"})
}

// CheckContact updates the form-complete flag as the visitor types and
// returns the footer contents, which only show once the form is complete.
func (h *Handler) CheckContact(c echo.Context) error {
	state := h.visitorState(c)
	form := contactFormFrom(c)
	state.SetFormComplete(form.Trimmed().IsComplete())

	return render(c, partials.FooterContent(h.footerView(state, h.regionContent(c))))
}

// ContactFormFresh returns an empty form, used once the success message has been shown
func (h *Handler) ContactFormFresh(c echo.Context) error {
	return render(c, partials.ContactFormBody(h.contactFormView(c, services.ContactForm{})))
}

// SubmitContact handles the HTMX form post. Validation and delivery errors
// are rendered into the form with a 200 so HTMX swaps them in.
func (h *Handler) SubmitContact(c echo.Context) error {
	state := h.visitorState(c)
	form := contactFormFrom(c)
	view := h.contactFormView(c, form)

	if h.turnstile != nil && !form.IsBot() {
		if err := h.turnstile.Verify(c.Request().Context(), c.FormValue(services.TurnstileFormField), c.RealIP()); err != nil {
			c.Logger().Warnf("Contact form verification failed: %v", err)
			view.Notice = "contact.errors.verification_failed"
			return render(c, partials.ContactFormBody(view))
		}
	}

	flow := services.NewContactFlow(services.ServiceSubmitter{Service: h.contact, Meta: h.submissionMeta(c)}, state)
	outcome, err := flow.Submit(c.Request().Context(), form)

	var (
		validationErrs services.ValidationErrors
		submitErr      *services.SubmitError
	)
	switch {
	case errors.As(err, &validationErrs):
		view.Errors = validationErrs
	case errors.Is(err, services.ErrSubmissionInFlight):
		view.Notice = "contact.errors.in_flight"
	case errors.As(err, &submitErr):
		view.Notice = submitErr.Message
	case err != nil:
		view.Notice = services.GenericSubmitFailure
	case outcome == services.OutcomeSubmitted:
		view = h.contactFormView(c, services.ContactForm{})
		view.Success = true
		c.Response().Header().Set("HX-Trigger", "contactSubmitted")
		if err := render(c, partials.ContactFormBody(view)); err != nil {
			return err
		}
		return render(c, partials.FooterOOB(h.footerView(state, h.regionContent(c))))
	}

	return render(c, partials.ContactFormBody(view))
}

func (h *Handler) contactFormView(c echo.Context, form services.ContactForm) partials.ContactFormView {
	return partials.ContactFormView{
		Form:             form,
		ResetAfter:       int(services.SuccessDisplayDuration / time.Second),
		PhonePrefix:      h.regionContent(c).PhoneFormat,
		TurnstileSiteKey: h.cfg.TurnstileSiteKey,
	}
}

func (h *Handler) submissionMeta(c echo.Context) services.SubmissionMeta {
	return services.SubmissionMeta{
		Lang:      middleware.GetLocale(c),
		Region:    middleware.GetRegion(c),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// contactFormFrom reads the form-encoded contact fields
func contactFormFrom(c echo.Context) services.ContactForm {
	return services.ContactForm{
		FullName:      c.FormValue("fullName"),
		Email:         c.FormValue("email"),
		Phone:         c.FormValue("phone"),
		Company:       c.FormValue("company"),
		Budget:        c.FormValue("budget"),
		Message:       c.FormValue("message"),
		GDPRConsent:   formBool(c.FormValue("gdprConsent")),
		TermsAccepted: formBool(c.FormValue("termsAccepted")),
		Honeypot:      c.FormValue("website"),
	}
}

func formBool(v string) bool {
	switch v {
	case "true", "on", "1":
		return true
	default:
		return false
	}
}
