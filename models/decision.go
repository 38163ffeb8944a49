package models

// VatDecision is the visitor's answer to the VAT prompt
type VatDecision string

const (
	VatUnset    VatDecision = ""
	VatIncluded VatDecision = "included"
	VatExcluded VatDecision = "excluded"
)

// ParseVatDecision maps a form value to a VatDecision. Unknown values are unset.
func ParseVatDecision(value string) VatDecision {
	switch value {
	case "included", "include", "true":
		return VatIncluded
	case "excluded", "exclude", "false":
		return VatExcluded
	default:
		return VatUnset
	}
}

// DecisionSnapshot is a point-in-time copy of a visitor's decision state
type DecisionSnapshot struct {
	VatDecision             VatDecision
	IsFormComplete          bool
	LegalComplianceAccepted bool
	ShowPrimarySidebar      bool
}
