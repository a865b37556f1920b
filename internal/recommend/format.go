package recommend

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"ferresur/internal/domain"
)

var esPrinter = message.NewPrinter(language.Spanish)

// PriceLine renders the price row of a list item: a locale-formatted
// amount ("$ 45.900") or the quote fallback for free-text prices.
func PriceLine(price string) string {
	v, ok := ParsePrice(price)
	if !ok {
		return "Precio: a cotizar, escríbenos"
	}
	return esPrinter.Sprintf("Precio: $ %v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// itemLine renders one bulleted product entry:
//
//	• Lámpara colgante industrial (Eléctricos · Iluminación · Metal)
//	  Precio: $ 45.900
func itemLine(p domain.Product) string {
	var b strings.Builder
	b.WriteString("• ")
	b.WriteString(p.Name)
	var descriptor []string
	for _, part := range []string{p.Category, p.Subcategory, p.Material} {
		if part != "" {
			descriptor = append(descriptor, part)
		}
	}
	if len(descriptor) > 0 {
		b.WriteString(" (" + strings.Join(descriptor, " · ") + ")")
	}
	b.WriteString("\n  ")
	b.WriteString(PriceLine(p.Price))
	return b.String()
}

func itemList(products []domain.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, itemLine(p))
	}
	return strings.Join(lines, "\n")
}
