package chatbot

import "strings"

// MatchThreshold is the score a fuzzy candidate must exceed to be accepted.
const MatchThreshold = 0.3

// Match finds the reply for an already normalized input.
// An exact key wins outright. Otherwise every key is scored by word overlap and the
// first key with the highest score above MatchThreshold wins. With no candidate the
// table's fallback text is returned.
func Match(normalized string, table *IntentTable) MatchResult {
	if r, ok := table.Lookup(normalized); ok {
		return MatchResult{Kind: MatchExact, Key: normalized, Score: 1, Response: r}
	}

	inputWords := strings.Fields(normalized)
	bestKey := ""
	bestScore := 0.0
	for _, key := range table.keys {
		s := overlap(inputWords, strings.Fields(key))
		if s > MatchThreshold && s > bestScore {
			bestScore = s
			bestKey = key
		}
	}

	if bestScore > MatchThreshold {
		return MatchResult{Kind: MatchFuzzy, Key: bestKey, Score: bestScore, Response: table.responses[bestKey]}
	}
	return MatchResult{Kind: MatchFallback, Score: bestScore, Response: table.FallbackText()}
}

// overlap counts word pairs where either word contains the other, divided by the
// longer word list.
func overlap(inputWords, keyWords []string) float64 {
	n := max(len(inputWords), len(keyWords))
	if n == 0 {
		return 0
	}

	score := 0
	for _, iw := range inputWords {
		for _, kw := range keyWords {
			if strings.Contains(iw, kw) || strings.Contains(kw, iw) {
				score++
			}
		}
	}
	return float64(score) / float64(n)
}
