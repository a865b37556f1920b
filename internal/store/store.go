package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"ferresur/internal/domain"
)

// Collection names.
const (
	ColProducts  = "products"
	ColCampaigns = "campaigns"
	ColClients   = "clients"
	ColCatalogs  = "catalogs"
)

// Store reads and writes whole named collections. There is no row-level
// access: every mutation is read collection, modify, write collection,
// so concurrent writers are last-writer-wins.
type Store struct{ db *sqlx.DB }

func New(db *sqlx.DB) *Store { return &Store{db: db} }

// Read unmarshals the named collection into v. A missing or corrupt
// document degrades to the empty collection: v is left at its zero value
// and no error is returned.
func (s *Store) Read(name string, v any) error {
	var body string
	err := s.db.Get(&body, `SELECT body FROM collections WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(body), v); err != nil {
		log.Printf("[store] corrupt collection %q, treating as empty: %v", name, err)
	}
	return nil
}

// Write replaces the named collection wholesale.
func (s *Store) Write(name string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO collections(name, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at
	`, name, string(body), time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) Products() ([]domain.Product, error) {
	var out []domain.Product
	err := s.Read(ColProducts, &out)
	return out, err
}

func (s *Store) SaveProducts(products []domain.Product) error {
	return s.Write(ColProducts, products)
}

func (s *Store) Campaigns() ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := s.Read(ColCampaigns, &out)
	return out, err
}

func (s *Store) SaveCampaigns(campaigns []domain.Campaign) error {
	return s.Write(ColCampaigns, campaigns)
}

func (s *Store) Clients() ([]domain.Client, error) {
	var out []domain.Client
	err := s.Read(ColClients, &out)
	return out, err
}

func (s *Store) SaveClients(clients []domain.Client) error {
	return s.Write(ColClients, clients)
}

func (s *Store) Catalogs() ([]domain.CatalogDoc, error) {
	var out []domain.CatalogDoc
	err := s.Read(ColCatalogs, &out)
	return out, err
}

func (s *Store) SaveCatalogs(docs []domain.CatalogDoc) error {
	return s.Write(ColCatalogs, docs)
}
