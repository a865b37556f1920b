package domain

// Product is one catalog record. Fields mirror the admin catalog sheet,
// so everything is free text, price included. The whole collection is
// replaced on each admin write.
type Product struct {
	Name        string `json:"name"`
	Desc        string `json:"desc"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Material    string `json:"material"`
	Brand       string `json:"brand"`
	Price       string `json:"price"`
	// Available is a free-text status. "Disponible" (or empty) means in
	// stock; any other value marks the product out of stock.
	Available string `json:"available,omitempty"`
}

// InStock reports whether the product can be offered. Absence of a
// status defaults to in stock.
func (p Product) InStock() bool {
	return p.Available == "" || p.Available == "Disponible"
}

// Campaign is one batch of tracked outbound communication. Emailed
// campaigns carry a recipient count; "qr-" prefixed ids are link-based
// public campaigns with Total=0.
type Campaign struct {
	ID      string            `json:"id"`
	Date    string            `json:"date"`
	Subject string            `json:"subject"`
	PDFURL  string            `json:"pdfUrl"`
	Total   int               `json:"total"`
	Sent    int               `json:"sent"`
	Opens   map[string]string `json:"opens"`
	Clicks  map[string]string `json:"clicks"`
	Type    string            `json:"type,omitempty"`
}

// Client is a chat contact, keyed by phone number.
type Client struct {
	ID          string `json:"id"`
	Phone       string `json:"phone"`
	LastMessage string `json:"lastMessage"`
	LastSeen    string `json:"lastSeen"`
	Messages    int    `json:"messages"`
}

// CatalogDoc is one admin-managed content document (price lists,
// promotional sheets) stored under a name.
type CatalogDoc struct {
	Name      string         `json:"name"`
	Data      map[string]any `json:"data"`
	UpdatedAt string         `json:"updatedAt"`
}

// SMTPConfig is caller-supplied custom transport credentials for a bulk
// send. When absent the simulated transport is used.
type SMTPConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	User string `json:"user"`
	Pass string `json:"pass"`
	From string `json:"from"`
}

// Appointment is one row of the booking ledger.
type Appointment struct {
	ID         string `db:"id" json:"id"`
	ClientName string `db:"client_name" json:"clientName"`
	Phone      string `db:"phone" json:"phone"`
	Service    string `db:"service" json:"service"`
	SlotStart  string `db:"slot_start" json:"slotStart"`
	Status     string `db:"status" json:"status"` // PLACED | CANCELLED
	CreatedAt  string `db:"created_at" json:"createdAt"`
}
