// Package contact builds the WhatsApp hand-off for inquiry submissions.
package contact

import (
	"fmt"
	"net/url"
	"strings"

	"estatehub/server/internal/models"
)

// BuildWhatsAppMessage formats an inquiry the way the broker expects it in
// chat: bold labels, one field per line, optional property and area context.
func BuildWhatsAppMessage(inquiry *models.Inquiry) string {
	var b strings.Builder

	b.WriteString("*New Inquiry from Website*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", inquiry.Name)
	fmt.Fprintf(&b, "*Email:* %s\n", inquiry.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n", inquiry.Phone)
	fmt.Fprintf(&b, "*Message:* %s", inquiry.Message)

	if inquiry.PropertyID != "" {
		fmt.Fprintf(&b, "\nProperty ID: %s", inquiry.PropertyID)
	}
	if inquiry.AreaSlug != "" {
		fmt.Fprintf(&b, "\nArea: %s", inquiry.AreaSlug)
	}

	fmt.Fprintf(&b, "\n\n*Source:* %s", inquiry.Source)
	return b.String()
}

// BuildWhatsAppURL returns a wa.me deep link that opens a chat with the
// given number and the message prefilled.
func BuildWhatsAppURL(number, message string) string {
	// QueryEscape encodes spaces as '+', which WhatsApp renders literally.
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, escaped)
}
