package store

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ferresur/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: collections are whole-document read-modify-write,
	// and :memory: databases are per-connection.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a demo catalog if the products collection is empty (idempotent)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Named collections, one JSON document each (products, campaigns,
-- clients, catalogs). Whole document replaced on every write.
CREATE TABLE IF NOT EXISTS collections(
  name TEXT PRIMARY KEY,
  body TEXT NOT NULL,
  updated_at TEXT
);

-- Appointment booking ledger
CREATE TABLE IF NOT EXISTS appointments(
  id TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  service TEXT NOT NULL,
  slot_start TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'PLACED' CHECK (status IN ('PLACED','CANCELLED')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_appointments_slot ON appointments(slot_start);
CREATE INDEX IF NOT EXISTS idx_appointments_created ON appointments(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	s := New(db)
	var products []domain.Product
	if err := s.Read(ColProducts, &products); err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products")

	demo := []domain.Product{
		{Name: "Lámpara colgante industrial", Desc: "Lámpara de techo estilo industrial, casquillo E27",
			Category: "Eléctricos", Subcategory: "Iluminación", Material: "Metal", Brand: "Lumek", Price: "45900", Available: "Disponible"},
		{Name: "Foco LED 9W luz cálida", Desc: "Bombillo LED bajo consumo, rosca E27",
			Category: "Eléctricos", Subcategory: "Iluminación", Material: "Policarbonato", Brand: "Lumek", Price: "8500", Available: "Disponible"},
		{Name: "Tubo PVC presión 1/2\"", Desc: "Tubo de agua potable, tramo de 6 metros",
			Category: "Plomería", Subcategory: "Tubería", Material: "PVC", Brand: "Tigre", Price: "12300", Available: "Disponible"},
		{Name: "Grifo monomando lavamanos", Desc: "Grifería cromada para lavamanos con sifón incluido",
			Category: "Plomería", Subcategory: "Grifería", Material: "Cromo", Brand: "Corona", Price: "89000", Available: "Agotado"},
	}
	return s.Write(ColProducts, demo)
}
