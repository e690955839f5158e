package services

import (
	"sort"

	"property-matcher/models"
)

// RankMatches pairs every property with every buyer and orders the pairs by
// descending score. Equal scores keep property order, then buyer order.
func RankMatches(properties []models.Property, buyers []models.Buyer) []models.Match {
	matches := make([]models.Match, 0, len(properties)*len(buyers))
	for _, p := range properties {
		for _, b := range buyers {
			matches = append(matches, models.NewMatch(p, b))
		}
	}
	return rank(matches)
}

// MatchesForBuyer ranks every property against a single buyer.
func MatchesForBuyer(buyer models.Buyer, properties []models.Property) []models.Match {
	return RankMatches(properties, []models.Buyer{buyer})
}

// MatchesForProperty ranks every buyer against a single property.
func MatchesForProperty(property models.Property, buyers []models.Buyer) []models.Match {
	return RankMatches([]models.Property{property}, buyers)
}

func rank(matches []models.Match) []models.Match {
	scores := make([]int, len(matches))
	for i, m := range matches {
		scores[i] = m.Score()
	}
	idx := make([]int, len(matches))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return scores[idx[a]] > scores[idx[b]] })

	out := make([]models.Match, len(matches))
	for i, j := range idx {
		out[i] = matches[j]
	}
	return out
}
