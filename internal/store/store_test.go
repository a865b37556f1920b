package store_test

import (
	"testing"

	"ferresur/internal/domain"
	"ferresur/internal/store"
)

func memdb(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return store.New(db)
}

func TestReadMissingCollectionIsEmpty(t *testing.T) {
	s := memdb(t)
	var campaigns []domain.Campaign
	if err := s.Read("campaigns", &campaigns); err != nil {
		t.Fatalf("missing collection must not error: %v", err)
	}
	if len(campaigns) != 0 {
		t.Fatalf("expected empty collection, got %d", len(campaigns))
	}
}

func TestReadCorruptCollectionDegradesToEmpty(t *testing.T) {
	db, err := store.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Exec(
		`INSERT INTO collections(name, body) VALUES ('campaigns', '{not json')`,
	); err != nil {
		t.Fatal(err)
	}

	s := store.New(db)
	var campaigns []domain.Campaign
	if err := s.Read("campaigns", &campaigns); err != nil {
		t.Fatalf("corrupt collection must degrade, not error: %v", err)
	}
	if len(campaigns) != 0 {
		t.Fatalf("expected empty collection, got %d", len(campaigns))
	}
}

func TestWriteReplacesWholesale(t *testing.T) {
	s := memdb(t)
	first := []domain.Product{{Name: "Uno"}, {Name: "Dos"}}
	if err := s.SaveProducts(first); err != nil {
		t.Fatal(err)
	}
	second := []domain.Product{{Name: "Tres"}}
	if err := s.SaveProducts(second); err != nil {
		t.Fatal(err)
	}
	got, err := s.Products()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Tres" {
		t.Fatalf("write must replace the whole collection, got %+v", got)
	}
}

func TestSeedProductsOnce(t *testing.T) {
	s := memdb(t)
	products, err := s.Products()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) == 0 {
		t.Fatal("fresh database should carry the demo catalog")
	}
}

func TestUpsertClientIncrementsMessages(t *testing.T) {
	s := memdb(t)
	for _, msg := range []string{"hola", "busco una lámpara"} {
		if err := s.UpsertClient("+57 3001234567", msg); err != nil {
			t.Fatal(err)
		}
	}
	clients, err := s.Clients()
	if err != nil {
		t.Fatal(err)
	}
	if len(clients) != 1 {
		t.Fatalf("same phone must upsert, got %d clients", len(clients))
	}
	c := clients[0]
	if c.Messages != 2 || c.LastMessage != "busco una lámpara" {
		t.Fatalf("unexpected client record: %+v", c)
	}
	if c.ID == "" {
		t.Fatal("client id missing")
	}
}
