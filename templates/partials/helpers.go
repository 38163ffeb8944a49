package partials

import (
	"consulting_site_go/models"
	"consulting_site_go/services"
	"consulting_site_go/services/i18n"
	"consulting_site_go/templates/components"
	"context"
	"fmt"
	"strconv"
)

// fieldError returns the translated error for a form field, or ""
func fieldError(ctx context.Context, errs services.ValidationErrors, field string) string {
	key, ok := errs[field]
	if !ok {
		return ""
	}
	return i18n.T(ctx, key)
}

// fieldClass marks invalid inputs
func fieldClass(errs services.ValidationErrors, field string) string {
	if errs.Has(field) {
		return "input input-error"
	}
	return "input"
}

// budgetOptions pairs each bracket with its label key
var budgetOptions = []struct {
	Value string
	Label string
}{
	{models.BudgetUnder25k, "contact.budget_under_25k"},
	{models.Budget25To100k, "contact.budget_25_100k"},
	{models.Budget100To500k, "contact.budget_100_500k"},
	{models.BudgetOver500k, "contact.budget_over_500k"},
}

// vatRate formats the VAT percentage without trailing zeros
func vatRate(content models.RegionContent) string {
	return strconv.FormatFloat(content.VatRate, 'f', -1, 64)
}

func tArgs(ctx context.Context, key string, name string, value interface{}) string {
	return i18n.T(ctx, key, map[string]interface{}{name: value})
}

// resetTrigger is the hx-trigger that reloads the form after the success display
func resetTrigger(seconds int) string {
	return fmt.Sprintf("load delay:%ds", seconds)
}

func categoryDescription(cat models.CookieCategory) string {
	return "cookies." + string(cat) + "_desc"
}

func categoryLabel(cat models.CookieCategory) string {
	return "cookies." + string(cat)
}

// vatVals builds the hx-vals payload for the VAT prompt buttons
func vatVals(decision string) string {
	return components.JSON(map[string]string{"decision": decision})
}

func boolAttr(b bool) string {
	return strconv.FormatBool(b)
}

func currentMarker(current bool) string {
	if current {
		return "page"
	}
	return "false"
}
