// Package whatsapp builds the pre-filled chat message and deep link used to
// hand a submitted quote over to a human seller.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sorvetes-mauriti/api/internal/domain"
)

// DefaultBaseURL is the wa.me click-to-chat entry point.
const DefaultBaseURL = "https://wa.me"

// FormatOrderItems renders the order block, one "• {qty}x {name}" line per
// item. An empty item list yields an empty string.
func FormatOrderItems(items []domain.OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("• %dx %s", item.Quantity, item.Name))
	}
	return strings.Join(lines, "\n")
}

// BuildMessage assembles the quote request message: fixed B2B header, the
// lead's contact details, the order block, and the fixed closing line.
func BuildMessage(lead domain.Lead, items []domain.OrderItem) string {
	orderText := FormatOrderItems(items)
	return "🚀 *Novo Orçamento B2B*\n\n" +
		"*Cliente:* " + lead.Name + "\n" +
		"*WhatsApp:* " + lead.WhatsApp + "\n" +
		"*Cidade:* " + lead.City + "\n\n" +
		"*Pedido:*\n" + orderText + "\n\n" +
		"Aguardo contato!"
}

// BuildLink produces the deep link that opens the chat pre-populated with the
// quote message. The phone number is E.164 without the leading plus; the
// message is fully percent-encoded (spaces as %20, never '+').
func BuildLink(baseURL, phoneNumber string, lead domain.Lead, items []domain.OrderItem) string {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	message := BuildMessage(lead, items)
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return strings.TrimRight(baseURL, "/") + "/" + phoneNumber + "?text=" + encoded
}
