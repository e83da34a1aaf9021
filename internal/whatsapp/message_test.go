package whatsapp

import (
	"strings"
	"testing"

	"github.com/sorvetes-mauriti/api/internal/domain"
)

var testLead = domain.Lead{
	Name:     "João Silva",
	WhatsApp: "88999990000",
	City:     "Mauriti - CE",
}

var testItems = []domain.OrderItem{
	{Name: "Picolé de Limão", Quantity: 48, Category: "Picolé"},
	{Name: "Açaí 1L", Quantity: 12, Category: "Açaí"},
}

func TestFormatOrderItems(t *testing.T) {
	got := FormatOrderItems(testItems)
	want := "• 48x Picolé de Limão\n• 12x Açaí 1L"
	if got != want {
		t.Fatalf("FormatOrderItems = %q, want %q", got, want)
	}
}

func TestFormatOrderItemsEmpty(t *testing.T) {
	if got := FormatOrderItems(nil); got != "" {
		t.Fatalf("expected empty string for no items, got %q", got)
	}
}

func TestBuildMessageContainsLeadAndOrder(t *testing.T) {
	message := BuildMessage(testLead, testItems)

	if !strings.HasPrefix(message, "🚀 *Novo Orçamento B2B*") {
		t.Fatalf("message missing header: %q", message)
	}
	for _, fragment := range []string{
		"*Cliente:* João Silva",
		"*WhatsApp:* 88999990000",
		"*Cidade:* Mauriti - CE",
		"• 48x Picolé de Limão",
		"• 12x Açaí 1L",
		"Aguardo contato!",
	} {
		if !strings.Contains(message, fragment) {
			t.Fatalf("message missing %q:\n%s", fragment, message)
		}
	}
}

func TestBuildLinkShape(t *testing.T) {
	link := BuildLink("", "558899310129", testLead, testItems)

	if !strings.HasPrefix(link, "https://wa.me/558899310129?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
	if strings.Contains(link, " ") {
		t.Fatalf("link contains literal spaces: %q", link)
	}
	if strings.Contains(link, "+") {
		t.Fatalf("spaces must be %%20-encoded, found '+': %q", link)
	}
	if !strings.Contains(link, "%20") {
		t.Fatalf("expected %%20-encoded spaces in %q", link)
	}
}

func TestBuildLinkTrimsBaseURLSlash(t *testing.T) {
	link := BuildLink("https://wa.me/", "558899310129", testLead, nil)
	if !strings.HasPrefix(link, "https://wa.me/558899310129?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}
}
