package recommend

import (
	"fmt"
	"regexp"
	"strings"

	"ferresur/internal/domain"
)

// Availability questions and electrical-panel talk, matched on the
// lowercased message.
var (
	reAvailability = regexp.MustCompile(`disponible|tienes|tienen|ten[ée]s|hay |en stock|queda|manejan|venden`)
	rePanel        = regexp.MustCompile(`tablero|breaker|t[ée]rmica|pastilla|interruptor|centro de carga`)
	reInstallKind  = regexp.MustCompile(`monof[áa]sic|bif[áa]sic|trif[áa]sic|110|220|amper`)
)

const (
	msgGreeting = "¡Hola! 👋 Soy el asistente de FerreSur. Cuéntame qué producto buscas " +
		"(por ejemplo: lámparas, tubería, grifería) y te recomiendo opciones."
	msgPanelClarify = "Para recomendarte un tablero o protección eléctrica necesito un par de datos: " +
		"¿la instalación es monofásica, bifásica o trifásica, y de cuántos amperios?"
	msgNoCatalog = "Por ahora no tengo productos cargados en el catálogo. Intenta de nuevo más tarde."
	msgNoMatch   = "No encontré productos que coincidan con lo que buscas. ¿Me cuentas un poco más? " +
		"Por ejemplo el ambiente o el tipo de instalación donde lo vas a usar."
	msgListClosing = "Responde con el nombre del producto que te interese y te doy más detalles."
)

// convo is the per-message evaluation context shared by the rules.
type convo struct {
	message string
	lower   string
	catalog []domain.Product
}

// A rule pairs a predicate with its handler. Handlers may return "" to
// decline and let evaluation continue (rule 4 falls through when the
// availability question names no known product).
type rule struct {
	name string
	when func(convo) bool
	then func(convo) string
}

// Ordered decision table; first non-empty answer wins. Precedence
// matters: blank check before everything, catalog check before any rule
// that consults it.
var rules = []rule{
	{
		name: "greeting",
		when: func(cv convo) bool { return strings.TrimSpace(cv.message) == "" },
		then: func(convo) string { return msgGreeting },
	},
	{
		name: "panel-clarify",
		when: func(cv convo) bool {
			return rePanel.MatchString(cv.lower) && !reInstallKind.MatchString(cv.lower)
		},
		then: func(convo) string { return msgPanelClarify },
	},
	{
		name: "empty-catalog",
		when: func(cv convo) bool { return len(cv.catalog) == 0 },
		then: func(convo) string { return msgNoCatalog },
	},
	{
		name: "availability",
		when: func(cv convo) bool { return reAvailability.MatchString(cv.lower) },
		then: answerAvailability,
	},
	{
		name: "recommend",
		when: func(convo) bool { return true },
		then: answerRecommend,
	},
}

// Reply synthesizes the chat answer for one incoming message.
func Reply(message string, catalog []domain.Product) string {
	cv := convo{message: message, lower: strings.ToLower(message), catalog: catalog}
	for _, r := range rules {
		if !r.when(cv) {
			continue
		}
		if answer := r.then(cv); answer != "" {
			return answer
		}
	}
	return msgNoMatch
}

func answerAvailability(cv convo) string {
	p, ok := MatchBest(cv.message, cv.catalog)
	if !ok {
		// Nothing recognizable named; defer to the recommendation rule.
		return ""
	}
	if p.InStock() {
		return fmt.Sprintf("✅ ¡Sí! %s está disponible. ¿Quieres que te comparta más detalles?", p.Name)
	}
	reply := fmt.Sprintf("😔 %s está agotado por el momento.", p.Name)
	alternatives := Recommend(p.Category+" "+p.Subcategory, cv.catalog)
	if len(alternatives) > 0 {
		reply += "\n\nTe pueden interesar estas alternativas:\n" + itemList(alternatives)
	}
	return reply
}

func answerRecommend(cv convo) string {
	picks := Recommend(cv.message, cv.catalog)
	if len(picks) == 0 {
		return msgNoMatch
	}
	return "Esto es lo que te puedo recomendar:\n\n" + itemList(picks) + "\n\n" + msgListClosing
}
