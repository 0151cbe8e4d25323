package events

import "strings"

type Kind string

const (
	KindFeed   Kind = "feed"
	KindSleep  Kind = "sleep"
	KindDiaper Kind = "diaper"
)

// Kinds lista los tipos conocidos en el orden en que se muestran.
var Kinds = []Kind{KindFeed, KindSleep, KindDiaper}

// ParseKind normaliza el valor guardado. Acepta las etiquetas heredadas
// ("Feed Event", "Sleep Event", "Nappy Event"). Un valor desconocido se
// devuelve tal cual; Known() decide si se clasifica.
func ParseKind(s string) Kind {
	switch normalize(s) {
	case "feed", "feed_event":
		return KindFeed
	case "sleep", "sleep_event":
		return KindSleep
	case "diaper", "nappy", "nappy_event", "diaper_event":
		return KindDiaper
	default:
		return Kind(strings.TrimSpace(s))
	}
}

func (k Kind) Known() bool {
	switch k {
	case KindFeed, KindSleep, KindDiaper:
		return true
	default:
		return false
	}
}

// Title es la etiqueta para listados.
func (k Kind) Title() string {
	switch k {
	case KindFeed:
		return "Feed Event"
	case KindSleep:
		return "Sleep Event"
	case KindDiaper:
		return "Nappy Event"
	default:
		return "Unknown Event"
	}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
