// Package checkout validates the delivery and payment forms and runs the
// simulated payment step that gates order placement.
package checkout

import (
	"regexp"
	"strings"

	"bitefinder/internal/domain"
)

// Payment method tags accepted at checkout.
const (
	MethodCard = "card"
	MethodUPI  = "upi"
	MethodCOD  = "cod"
)

var (
	phoneRe   = regexp.MustCompile(`^\d{10}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
	cardRe    = regexp.MustCompile(`^\d{16}$`)
	expiryRe  = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvRe     = regexp.MustCompile(`^\d{3}$`)
)

// CardDetails is the card payment form.
type CardDetails struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// Payment is the payment form: a method tag plus the fields that method
// requires.
type Payment struct {
	Method string      `json:"method"`
	Card   CardDetails `json:"card"`
	UPIID  string      `json:"upiId"`
}

// ValidateAddress checks every address field and reports all violations
// together. An empty map means the address is valid.
func ValidateAddress(a domain.DeliveryAddress) map[string]string {
	fields := make(map[string]string)
	if strings.TrimSpace(a.Name) == "" {
		fields["name"] = "Name is required"
	}
	if !phoneRe.MatchString(a.Phone) {
		fields["phone"] = "Phone must be 10 digits"
	}
	if strings.TrimSpace(a.Address) == "" {
		fields["address"] = "Address is required"
	}
	if !pincodeRe.MatchString(a.Pincode) {
		fields["pincode"] = "Pincode must be 6 digits"
	}
	return fields
}

// ValidatePayment checks the fields required by the chosen method.
// Cash on delivery needs nothing. An unknown method is itself a violation.
func ValidatePayment(p Payment) map[string]string {
	fields := make(map[string]string)
	switch p.Method {
	case MethodCard:
		if !cardRe.MatchString(strings.ReplaceAll(p.Card.Number, " ", "")) {
			fields["cardNumber"] = "Card number must be 16 digits"
		}
		if !expiryRe.MatchString(p.Card.Expiry) {
			fields["expiry"] = "Expiry must be MM/YY format"
		}
		if !cvvRe.MatchString(p.Card.CVV) {
			fields["cvv"] = "CVV must be 3 digits"
		}
		if strings.TrimSpace(p.Card.NameOnCard) == "" {
			fields["nameOnCard"] = "Name on card is required"
		}
	case MethodUPI:
		if strings.TrimSpace(p.UPIID) == "" || !strings.Contains(p.UPIID, "@") {
			fields["upiId"] = "Valid UPI ID is required"
		}
	case MethodCOD:
	default:
		fields["method"] = "Unknown payment method"
	}
	return fields
}
