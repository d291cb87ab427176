// Package domain holds the core types of the QuickFix assistant:
// the intent/service taxonomy, conversation state, knowledge records
// and the wire contracts of the chat API.
package domain

import "strings"

// Language is one of the three fixed language codes the assistant speaks.
type Language string

const (
	LangEnglish Language = "en"
	LangSinhala Language = "si"
	LangTamil   Language = "ta"
)

// Languages lists the supported language codes.
var Languages = []Language{LangEnglish, LangSinhala, LangTamil}

// Intent is the coarse purpose of a user message.
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentEmergency Intent = "emergency"
	IntentBooking   Intent = "booking"
	IntentPricing   Intent = "pricing"
	IntentPayment   Intent = "payment"
	IntentStatus    Intent = "status"
	IntentCancel    Intent = "cancel"
	IntentComplaint Intent = "complaint"
	IntentRating    Intent = "rating"
	IntentThanks    Intent = "thanks"

	// IntentDefault is the sentinel returned when no pattern matched.
	IntentDefault Intent = "default"
)

// ServiceType is one of the fixed home-repair categories the platform
// dispatches technicians for.
type ServiceType string

const (
	ServicePlumbing        ServiceType = "plumbing"
	ServiceElectrical      ServiceType = "electrical"
	ServiceCarpentry       ServiceType = "carpentry"
	ServicePainting        ServiceType = "painting"
	ServiceCleaning        ServiceType = "cleaning"
	ServiceApplianceRepair ServiceType = "appliance_repair"
	ServiceHVAC            ServiceType = "hvac"
	ServiceLocksmith       ServiceType = "locksmith"
)

// ServiceTypes lists all service categories in declaration order.
// The order is a contract: the entity extractor and the price table
// iterate it, and callers depend on the resulting precedence.
var ServiceTypes = []ServiceType{
	ServicePlumbing,
	ServiceElectrical,
	ServiceCarpentry,
	ServicePainting,
	ServiceCleaning,
	ServiceApplianceRepair,
	ServiceHVAC,
	ServiceLocksmith,
}

// Display returns the human-readable form of the service type
// (underscores become spaces, e.g. "appliance repair").
func (s ServiceType) Display() string {
	return strings.ReplaceAll(string(s), "_", " ")
}
