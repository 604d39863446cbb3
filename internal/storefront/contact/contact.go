// Package contact builds the storefront's order hand-off links. Checkout is
// conversational: the cart turns into a prefilled WhatsApp message, with phone
// and email links as fallbacks.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rahulmehra/fashionstore/internal/storefront/cart"
)

// Channels holds the merchant's reachable endpoints.
type Channels struct {
	// Phone in international format without a leading plus, e.g. "919876543210".
	Phone string
	// Email receiving order enquiries.
	Email string
}

// WhatsAppLink returns a wa.me URL that opens a chat with the merchant,
// prefilled with message when it is non-empty.
func (c Channels) WhatsAppLink(message string) string {
	link := "https://wa.me/" + digitsOnly(c.Phone)
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}
	return link
}

// TelLink returns a tel: URI for the merchant's phone.
func (c Channels) TelLink() string {
	return "tel:+" + digitsOnly(c.Phone)
}

// MailtoLink returns a mailto: URI, optionally with a subject.
func (c Channels) MailtoLink(subject string) string {
	link := "mailto:" + c.Email
	if subject != "" {
		link += "?subject=" + url.QueryEscape(subject)
	}
	return link
}

// OrderMessage renders cart line items as the plain-text enquiry sent over
// WhatsApp. Returns an empty string for an empty cart.
func OrderMessage(items []cart.LineItem, total float64) string {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Hi! I would like to order:\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s, %s) x%d - ₹%.0f\n",
			item.Product.Name, item.SelectedSize, item.SelectedColor,
			item.Quantity, item.Product.Price*float64(item.Quantity))
	}
	fmt.Fprintf(&b, "\nTotal: ₹%.0f", total)
	return b.String()
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
