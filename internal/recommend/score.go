package recommend

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ferresur/internal/domain"
)

// Domain boost patterns over the incoming message. The category checks
// are substring matches so sheet variants like "Material Eléctrico" or
// "Plomería y Grifería" still qualify.
var (
	reLighting = regexp.MustCompile(`l[áa]mpara|luz|luces|foco|bombill|ilumina`)
	rePlumbing = regexp.MustCompile(`tub(o|er[íi])|agua|grifo|griver|llave|sif[óo]n|plomer`)
)

func isElectrical(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "eléctr") || strings.Contains(c, "electr") || strings.Contains(c, "ilumin")
}

func isPlumbing(category string) bool {
	c := strings.ToLower(category)
	return strings.Contains(c, "plomer") || strings.Contains(c, "grifer") || strings.Contains(c, "hidr")
}

// tokenize splits on whitespace and lowercases; empty words are dropped.
func tokenize(query string) []string {
	var out []string
	for _, w := range strings.Fields(query) {
		out = append(out, strings.ToLower(w))
	}
	return out
}

func fullText(p domain.Product) string {
	return strings.ToLower(strings.Join([]string{
		p.Name, p.Desc, p.Category, p.Subcategory, p.Material, p.Brand,
	}, " "))
}

// ParsePrice reads the free-text price field. It fails on anything that
// is not a plain number ("a cotizar", empty, ranges).
func ParsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Recommend ranks in-stock products against the query and returns the
// top 4. Tokens score +3 each on a substring hit over the product's full
// text; lighting and plumbing queries get a +4 category boost; price
// adds up to +5 so pricier stock floats when keyword scores tie. A zero
// score drops the product. Ties keep catalog order.
func Recommend(query string, catalog []domain.Product) []domain.Product {
	tokens := tokenize(query)
	base := 0.0
	if len(tokens) == 0 {
		// Empty query still yields generic top picks.
		base = 1.0
	}
	lower := strings.ToLower(query)
	lighting := reLighting.MatchString(lower)
	plumbing := rePlumbing.MatchString(lower)

	type candidate struct {
		product domain.Product
		score   float64
	}
	var candidates []candidate
	for _, p := range catalog {
		if !p.InStock() {
			continue
		}
		hay := fullText(p)
		score := base
		for _, t := range tokens {
			if strings.Contains(hay, t) {
				score += 3
			}
		}
		if lighting && isElectrical(p.Category) {
			score += 4
		}
		if plumbing && isPlumbing(p.Category) {
			score += 4
		}
		if v, ok := ParsePrice(p.Price); ok {
			score += math.Min(v/1000, 5)
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, candidate{product: p, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	limit := 4
	if len(candidates) < limit {
		limit = len(candidates)
	}
	out := make([]domain.Product, 0, limit)
	for _, c := range candidates[:limit] {
		out = append(out, c.product)
	}
	return out
}

// MatchBest finds the single product the query most likely refers to:
// 3 points per token found in the name plus 1 per token found in
// name+desc. First seen wins ties; an all-zero field gives no match.
// Availability is deliberately ignored here, out-of-stock lookups are
// how "agotado" replies get detected.
func MatchBest(query string, catalog []domain.Product) (domain.Product, bool) {
	tokens := tokenize(query)
	var best domain.Product
	bestScore := 0
	for _, p := range catalog {
		name := strings.ToLower(p.Name)
		nameDesc := name + " " + strings.ToLower(p.Desc)
		score := 0
		for _, t := range tokens {
			if strings.Contains(name, t) {
				score += 3
			}
			if strings.Contains(nameDesc, t) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = p
		}
	}
	return best, bestScore > 0
}
