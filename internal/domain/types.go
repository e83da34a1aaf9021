package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ProductID identifies a product within one catalog load. The spreadsheet
// source emits ids as either JSON strings or numbers; both decode to the
// canonical string form.
type ProductID string

// UnmarshalJSON accepts string and numeric id representations.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("product id: %w", err)
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// MarshalJSON emits the canonical string form.
func (id ProductID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Product is one sellable catalog entry. Products are immutable once loaded;
// the full set is replaced wholesale on each successful load.
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"img,omitempty"`
	Tag         string    `json:"tag,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
}

// Lead holds the prospective reseller's contact details collected before the
// order handoff.
type Lead struct {
	Name     string `json:"name"`
	WhatsApp string `json:"whatsapp"`
	City     string `json:"city"`
}

// OrderItem is derived at submission time by joining cart quantities against
// the loaded products. The JSON tags match the spreadsheet sink's Portuguese
// column names and must not change.
type OrderItem struct {
	Name     string `json:"nome"`
	Quantity int    `json:"quantidade"`
	Category string `json:"categoria,omitempty"`
}
