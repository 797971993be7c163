package sort

import (
	"mipfam/models/constants"
	"strings"
)

const (
	Undefined constants.SortOrder = ""
	RankScore constants.SortOrder = "rank"
	Position  constants.SortOrder = "position"
)

func CastToSortOrder(text string) constants.SortOrder {
	switch strings.ToLower(text) {
	case "rank", "rankscore", "rank_score":
		return RankScore
	case "position", "pos":
		return Position
	default:
		return Undefined
	}
}

// FromPositionFlag maps a boolean "sort by position" switch onto a sort order.
func FromPositionFlag(byPosition bool) constants.SortOrder {
	if byPosition {
		return Position
	}
	return RankScore
}
