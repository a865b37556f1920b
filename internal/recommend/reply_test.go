package recommend

import (
	"strings"
	"testing"

	"ferresur/internal/domain"
)

func TestReplyBlankMessageGreets(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		if got := Reply(msg, fixtureCatalog()); got != msgGreeting {
			t.Fatalf("blank message %q should greet, got %q", msg, got)
		}
	}
}

func TestReplyPanelWithoutQualifiersAsks(t *testing.T) {
	got := Reply("necesito un tablero para la casa", fixtureCatalog())
	if got != msgPanelClarify {
		t.Fatalf("panel talk without installation details must ask back, got %q", got)
	}
}

func TestReplyPanelWithQualifiersDoesNotAsk(t *testing.T) {
	got := Reply("breaker trifásico de 220", fixtureCatalog())
	if got == msgPanelClarify {
		t.Fatal("qualified panel question must not trigger the clarifying rule")
	}
}

func TestReplyEmptyCatalog(t *testing.T) {
	if got := Reply("busco una lámpara", nil); got != msgNoCatalog {
		t.Fatalf("empty catalog should report no products, got %q", got)
	}
}

func TestReplyOutOfStockWithAlternatives(t *testing.T) {
	catalog := []domain.Product{
		{Name: "Lámpara de techo clásica", Desc: "Lámpara colgante para sala",
			Category: "Eléctricos", Subcategory: "Iluminación", Price: "35000", Available: "Agotado"},
		{Name: "Plafón LED cuadrado", Desc: "Luminaria de techo",
			Category: "Eléctricos", Subcategory: "Iluminación", Price: "22000", Available: "Disponible"},
		{Name: "Foco LED 9W", Desc: "Bombillo bajo consumo",
			Category: "Eléctricos", Subcategory: "Iluminación", Price: "8500"},
	}
	got := Reply("tienes lámpara de techo", catalog)
	if !strings.Contains(got, "agotado") {
		t.Fatalf("expected an out-of-stock reply, got %q", got)
	}
	if !strings.Contains(got, "Plafón LED cuadrado") {
		t.Fatalf("expected same-category alternatives, got %q", got)
	}
	if !strings.Contains(got, "Precio") {
		t.Fatalf("alternatives must carry a price line, got %q", got)
	}
}

func TestReplyInStockConfirms(t *testing.T) {
	got := Reply("tienes foco led?", fixtureCatalog())
	if !strings.Contains(got, "Foco LED 9W") || !strings.Contains(got, "disponible") {
		t.Fatalf("expected a short availability confirmation, got %q", got)
	}
}

func TestReplyAvailabilityFallsThroughWhenNothingNamed(t *testing.T) {
	// Availability keyword but no product named: rule 4 declines and the
	// recommendation rule answers instead.
	got := Reply("tienen taladros inalámbricos", fixtureCatalog())
	if strings.Contains(got, "agotado") {
		t.Fatalf("nothing named should not produce an out-of-stock reply, got %q", got)
	}
	if got == msgNoCatalog || got == msgPanelClarify {
		t.Fatalf("wrong branch fired: %q", got)
	}
}

func TestReplyRecommendationList(t *testing.T) {
	got := Reply("busco una lámpara para el techo", fixtureCatalog())
	if !strings.Contains(got, "•") {
		t.Fatalf("expected a bulleted list, got %q", got)
	}
	if !strings.Contains(got, msgListClosing) {
		t.Fatalf("expected the closing prompt, got %q", got)
	}
}

func TestReplyNothingFound(t *testing.T) {
	catalog := []domain.Product{{Name: "Martillo", Category: "Herramientas"}}
	if got := Reply("cemento blanco", catalog); got != msgNoMatch {
		t.Fatalf("expected the generic try-again message, got %q", got)
	}
}
