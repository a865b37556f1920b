package recommend

import (
	"strings"
	"testing"

	"ferresur/internal/domain"
)

func fixtureCatalog() []domain.Product {
	return []domain.Product{
		{Name: "Lámpara colgante industrial", Desc: "Lámpara de techo estilo industrial",
			Category: "Eléctricos", Subcategory: "Iluminación", Material: "Metal", Brand: "Lumek", Price: "45900", Available: "Disponible"},
		{Name: "Foco LED 9W", Desc: "Bombillo LED bajo consumo",
			Category: "Eléctricos", Subcategory: "Iluminación", Brand: "Lumek", Price: "8500"},
		{Name: "Plafón LED cuadrado", Desc: "Luminaria de techo para interiores",
			Category: "Eléctricos", Subcategory: "Iluminación", Price: "22000", Available: "Disponible"},
		{Name: "Cinta aislante", Desc: "Cinta para empalmes eléctricos",
			Category: "Eléctricos", Subcategory: "Accesorios", Price: "1500"},
		{Name: "Tubo PVC presión 1/2\"", Desc: "Tubo de agua potable",
			Category: "Plomería", Subcategory: "Tubería", Material: "PVC", Price: "12300"},
		{Name: "Grifo monomando", Desc: "Grifería cromada con sifón",
			Category: "Plomería", Subcategory: "Grifería", Price: "89000", Available: "Agotado"},
	}
}

func TestRecommendReturnsAtMostFour(t *testing.T) {
	out := Recommend("lámpara luz foco led techo", fixtureCatalog())
	if len(out) > 4 {
		t.Fatalf("expected at most 4 products, got %d", len(out))
	}
	if len(out) == 0 {
		t.Fatal("expected some recommendations")
	}
}

func TestRecommendEmptyQueryReturnsGenericPicks(t *testing.T) {
	out := Recommend("", fixtureCatalog())
	if len(out) == 0 {
		t.Fatal("empty query should still return top picks (base score 1)")
	}
	// Price boosts cap at +5, so the big-ticket items tie and catalog
	// order decides.
	if out[0].Name != "Lámpara colgante industrial" {
		t.Fatalf("expected first catalog product first, got %q", out[0].Name)
	}
	if len(out) != 4 {
		t.Fatalf("expected top 4 of the 5 eligible products, got %d", len(out))
	}
}

func TestRecommendExcludesUnavailable(t *testing.T) {
	out := Recommend("grifo monomando cromada", fixtureCatalog())
	for _, p := range out {
		if p.Name == "Grifo monomando" {
			t.Fatal("product marked Agotado must never be recommended")
		}
	}
}

func TestRecommendKeywordBeatsPriceBoost(t *testing.T) {
	out := Recommend("cinta aislante", fixtureCatalog())
	if len(out) == 0 || out[0].Name != "Cinta aislante" {
		t.Fatalf("token matches (+3 each) must outrank price boosts, got %+v", out)
	}
}

func TestRecommendCategoryBoost(t *testing.T) {
	// "agua" carries the plumbing boost: the tube should beat same-token
	// electrical products.
	out := Recommend("tubo agua", fixtureCatalog())
	if len(out) == 0 || out[0].Name != "Tubo PVC presión 1/2\"" {
		t.Fatalf("expected plumbing product first for a plumbing query, got %+v", out)
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Producto A", Category: "Varios"},
		{Name: "Producto B", Category: "Varios"},
		{Name: "Producto C", Category: "Varios"},
	}
	out := Recommend("", catalog)
	if len(out) != 3 {
		t.Fatalf("expected 3 products, got %d", len(out))
	}
	for i, want := range []string{"Producto A", "Producto B", "Producto C"} {
		if out[i].Name != want {
			t.Fatalf("tie order broken at %d: got %q want %q", i, out[i].Name, want)
		}
	}
}

func TestRecommendDropsZeroScores(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Martillo", Category: "Herramientas"}, // no price, no token match
	}
	if out := Recommend("lámpara", catalog); len(out) != 0 {
		t.Fatalf("zero-score products must be dropped, got %+v", out)
	}
}

func TestMatchBestNoTokensInNameOrDesc(t *testing.T) {
	if _, ok := MatchBest("escalera aluminio", fixtureCatalog()); ok {
		t.Fatal("expected no match when no token appears in any name/desc")
	}
}

func TestMatchBestPrefersNameHits(t *testing.T) {
	p, ok := MatchBest("quiero un grifo", fixtureCatalog())
	if !ok {
		t.Fatal("expected a match")
	}
	if p.Name != "Grifo monomando" {
		t.Fatalf("expected name hit to win, got %q", p.Name)
	}
}

func TestMatchBestIgnoresAvailability(t *testing.T) {
	// Out-of-stock products still match; that is how "agotado" replies
	// get detected.
	p, ok := MatchBest("grifo", fixtureCatalog())
	if !ok || p.Available != "Agotado" {
		t.Fatalf("expected the out-of-stock product, got %+v ok=%v", p, ok)
	}
}

func TestMatchBestFirstMaxWins(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Llave inglesa chica", Desc: ""},
		{Name: "Llave inglesa grande", Desc: ""},
	}
	p, ok := MatchBest("llave inglesa", catalog)
	if !ok || p.Name != "Llave inglesa chica" {
		t.Fatalf("ties must keep the first-seen candidate, got %+v", p)
	}
}

func TestParsePrice(t *testing.T) {
	if v, ok := ParsePrice(" 12300 "); !ok || v != 12300 {
		t.Fatalf("plain number should parse, got %v ok=%v", v, ok)
	}
	for _, bad := range []string{"", "a cotizar", "10-20"} {
		if _, ok := ParsePrice(bad); ok {
			t.Fatalf("%q should not parse", bad)
		}
	}
}

func TestPriceLineLocaleFormatting(t *testing.T) {
	line := PriceLine("45900")
	if !strings.Contains(line, "45.900") {
		t.Fatalf("expected Spanish thousands separator, got %q", line)
	}
	if fallback := PriceLine("consultar"); !strings.Contains(fallback, "a cotizar") {
		t.Fatalf("expected quote fallback, got %q", fallback)
	}
}
