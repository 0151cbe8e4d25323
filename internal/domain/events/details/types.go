package details

import "strings"

type FeedSide string

const (
	FeedSideBreastLeft  FeedSide = "breast_left"
	FeedSideBreastRight FeedSide = "breast_right"
	FeedSideBottle      FeedSide = "bottle"
)

// ParseFeedSide acepta también "Breast Left", "Breast Right", "Bottle".
func ParseFeedSide(s string) FeedSide {
	switch normalize(s) {
	case "breast_left", "left":
		return FeedSideBreastLeft
	case "breast_right", "right":
		return FeedSideBreastRight
	case "bottle":
		return FeedSideBottle
	default:
		return FeedSide(strings.TrimSpace(s))
	}
}

func (f FeedSide) Known() bool {
	switch f {
	case FeedSideBreastLeft, FeedSideBreastRight, FeedSideBottle:
		return true
	default:
		return false
	}
}

type DiaperType string

const (
	DiaperTypeWet      DiaperType = "wet"
	DiaperTypeWetDirty DiaperType = "wet_dirty"
)

// ParseDiaperType acepta también "Wet" y "Wet Dirty".
func ParseDiaperType(s string) DiaperType {
	switch normalize(s) {
	case "wet":
		return DiaperTypeWet
	case "wet_dirty", "wetdirty":
		return DiaperTypeWetDirty
	default:
		return DiaperType(strings.TrimSpace(s))
	}
}

func (d DiaperType) Known() bool {
	switch d {
	case DiaperTypeWet, DiaperTypeWetDirty:
		return true
	default:
		return false
	}
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}
