package mock

import (
	"math/rand"
	"strings"

	"finsearch/internal/model"
)

// Field weights for a single term match.
const (
	headlineWeight       = 0.30
	companyExactWeight   = 0.25
	companyPartialWeight = 0.15
	categoryWeight       = 0.15
	contentWeight        = 0.10

	neutralScore = 0.5
	minScore     = 0.1
	maxScore     = 1.0
)

// relevance scores an article against the normalized query terms. The final
// score lands in [0.1, 1.0] with a jitter of at most 10% of the base score to
// break ties; seed the rng for reproducible output.
func relevance(a model.Article, terms []string, rng *rand.Rand) float64 {
	if len(terms) == 0 {
		return neutralScore
	}

	headline := strings.ToLower(a.Headline)
	content := strings.ToLower(a.Content)

	score := 0.0
	for _, term := range terms {
		term = strings.ToLower(term)

		if strings.Contains(headline, term) {
			score += headlineWeight
		}

		// At most one company contribution per term; exact beats partial.
		best := 0.0
		for _, c := range a.Companies {
			name := strings.ToLower(c.Name)
			if name == term {
				best = companyExactWeight
				break
			}
			if strings.Contains(name, term) {
				best = companyPartialWeight
			}
		}
		score += best

		for _, cat := range a.Categories {
			lower := strings.ToLower(cat)
			if lower == term || strings.Contains(lower, term) {
				score += categoryWeight
				break
			}
		}

		if strings.Contains(content, term) {
			score += contentWeight
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	score += rng.Float64() * 0.1 * score
	if score > maxScore {
		score = maxScore
	}
	return score
}
