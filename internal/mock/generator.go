package mock

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"finsearch/internal/catalog"
	"finsearch/internal/model"
)

const snippetLength = 120

// generator fabricates one plausible article at a time. All randomness flows
// through the injected rng so seeded tests are deterministic.
type generator struct {
	rng     *rand.Rand
	sampler *timeSampler
}

// genSpec biases a single generation. Zero values mean no bias.
type genSpec struct {
	terms     []string
	keyword   string
	company   string
	sentiment string
}

func (g *generator) article(spec genSpec) model.Article {
	company := g.resolveCompany(spec)
	sentiment := g.resolveSentiment(spec)
	score := g.sentimentScore(sentiment)

	headline := g.headline(spec.keyword, company)

	primary := model.Company{
		Name:      company,
		Ticker:    strings.ToUpper(company[:min(3, len(company))]),
		Sentiment: sentiment,
		Mentions:  5 + g.rng.Intn(10),
	}
	companies := []model.Company{primary}

	// Roughly a third of articles mention 1-2 further companies, each with
	// fewer mentions than the primary.
	if g.rng.Float64() < 0.3 {
		for _, name := range g.pickOthers(company, 1+g.rng.Intn(2)) {
			companies = append(companies, model.Company{
				Name:      name,
				Ticker:    strings.ToUpper(name[:min(3, len(name))]),
				Sentiment: catalog.Sentiments[g.rng.Intn(len(catalog.Sentiments))],
				Mentions:  1 + g.rng.Intn(4),
			})
		}
	}

	categories := g.categories(spec.keyword, company, len(companies) > 1)
	content := g.content(headline, companies, sentiment)

	snippet := content
	if len(snippet) > snippetLength {
		snippet = snippet[:snippetLength] + "..."
	}

	maxDays := generalHorizon
	if kw, ok := catalog.Keywords[spec.keyword]; ok && kw.Trending {
		maxDays = trendingHorizon
	}

	return model.Article{
		ID:             g.id(),
		Headline:       headline,
		URL:            fmt.Sprintf("http://example.com/article/%s", g.id()),
		Content:        content,
		Snippet:        snippet,
		Source:         g.source(spec.keyword),
		PublishedAt:    g.sampler.sample(maxDays),
		Sentiment:      sentiment,
		SentimentScore: score,
		Companies:      companies,
		Categories:     categories,
		RelevanceScore: 0.5, // recomputed against the query by the engine
	}
}

// resolveCompany picks the primary company: forced value, then a company
// named in the query terms, then a keyword-biased pick, then uniform random.
func (g *generator) resolveCompany(spec genSpec) string {
	if spec.company != "" {
		return spec.company
	}

	for _, term := range spec.terms {
		if name, ok := catalog.IsCompany(term); ok {
			return name
		}
	}

	if kw, ok := catalog.Keywords[spec.keyword]; ok && len(kw.Companies) > 0 {
		return kw.Companies[g.rng.Intn(len(kw.Companies))]
	}

	return catalog.Companies[g.rng.Intn(len(catalog.Companies))]
}

func (g *generator) resolveSentiment(spec genSpec) string {
	if spec.sentiment != "" {
		return spec.sentiment
	}

	// Earnings news tends to carry a strong signal either way.
	if spec.keyword == "earnings" && g.rng.Float64() > 0.6 {
		if g.rng.Float64() > 0.5 {
			return model.SentimentPositive
		}
		return model.SentimentNegative
	}

	return catalog.Sentiments[g.rng.Intn(len(catalog.Sentiments))]
}

// sentimentScore samples uniformly inside the sub-range the label dictates.
func (g *generator) sentimentScore(sentiment string) float64 {
	switch sentiment {
	case model.SentimentPositive:
		return 0.3 + g.rng.Float64()*0.7
	case model.SentimentNegative:
		return -1.0 + g.rng.Float64()*0.7
	default:
		return -0.3 + g.rng.Float64()*0.6
	}
}

func (g *generator) headline(keyword, company string) string {
	sector := catalog.Sectors[g.rng.Intn(len(catalog.Sectors))]
	pool := catalog.HeadlineTemplates

	if kw, ok := catalog.Keywords[keyword]; ok {
		if len(kw.Sectors) > 0 {
			sector = kw.Sectors[g.rng.Intn(len(kw.Sectors))]
		}
		if len(kw.Templates) > 0 {
			pool = kw.Templates
		}
	}

	template := pool[g.rng.Intn(len(pool))]
	other := g.pickOthers(company, 1)[0]

	r := strings.NewReplacer(
		"{company}", company,
		"{company2}", other,
		"{sector}", sector,
		"{region}", catalog.Regions[g.rng.Intn(len(catalog.Regions))],
		"{movement}", catalog.Movements[g.rng.Intn(len(catalog.Movements))],
		"{product_type}", catalog.ProductTypes[g.rng.Intn(len(catalog.ProductTypes))],
		"{announcement_type}", catalog.AnnouncementTypes[g.rng.Intn(len(catalog.AnnouncementTypes))],
		"{quarter}", strconv.Itoa(1+g.rng.Intn(4)),
		"{beat_miss}", catalog.BeatMiss[g.rng.Intn(len(catalog.BeatMiss))],
		"{earnings_change}", catalog.EarningsChanges[g.rng.Intn(len(catalog.EarningsChanges))],
		"{ai_field}", catalog.AIFields[g.rng.Intn(len(catalog.AIFields))],
	)
	return r.Replace(template)
}

func (g *generator) content(headline string, companies []model.Company, sentiment string) string {
	phrases := catalog.SentimentPhrases[sentiment]
	if phrases == nil {
		phrases = catalog.SentimentPhrases[model.SentimentNeutral]
	}
	first := phrases[g.rng.Intn(len(phrases))]
	second := first
	for second == first {
		second = phrases[g.rng.Intn(len(phrases))]
	}

	primary := companies[0].Name
	sector := catalog.Sectors[g.rng.Intn(len(catalog.Sectors))]

	var b strings.Builder
	fmt.Fprintf(&b, "This article discusses %s's recent developments. ", primary)
	fmt.Fprintf(&b, "The company has been %s in the %s sector. ", first, sector)
	fmt.Fprintf(&b, "Analysts note that %s is %s compared to its competitors. ", primary, second)
	b.WriteString(headline)
	b.WriteString(" This news comes as the industry faces rapid changes and evolving consumer demands.")

	for _, extra := range companies[1:] {
		relation := catalog.RelationTypes[g.rng.Intn(len(catalog.RelationTypes))]
		fmt.Fprintf(&b, " %s, a %s of %s, is also mentioned in the report.", extra.Name, relation, primary)
	}

	b.WriteString(" Investors are closely monitoring the situation to determine long-term implications for the company's market position.")
	return b.String()
}

func (g *generator) categories(keyword, company string, multiCompany bool) []string {
	var primary string
	switch keyword {
	case "ai":
		if g.rng.Float64() > 0.7 {
			primary = "Technology"
		} else {
			primary = "Communications"
		}
	case "energy":
		if g.rng.Float64() > 0.3 {
			primary = "Energy"
		} else {
			primary = "Utilities"
		}
	default:
		if sector, ok := catalog.SectorsByCompany[company]; ok {
			primary = sector
			if company == "Tesla" && g.rng.Float64() > 0.5 {
				primary = "Consumer Goods"
			}
		} else {
			primary = catalog.Sectors[g.rng.Intn(len(catalog.Sectors))]
		}
	}

	categories := []string{primary}
	if multiCompany || g.rng.Float64() < 0.2 {
		for _, extra := range g.pickSectors(primary, 1+g.rng.Intn(2)) {
			categories = append(categories, extra)
		}
	}
	return categories
}

func (g *generator) source(keyword string) string {
	if kw, ok := catalog.Keywords[keyword]; ok && len(kw.Sources) > 0 && g.rng.Float64() > 0.4 {
		return kw.Sources[g.rng.Intn(len(kw.Sources))]
	}
	return catalog.Sources[g.rng.Intn(len(catalog.Sources))]
}

// pickOthers returns n distinct companies, none equal to exclude.
func (g *generator) pickOthers(exclude string, n int) []string {
	var candidates []string
	for _, c := range catalog.Companies {
		if c != exclude {
			candidates = append(candidates, c)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

func (g *generator) pickSectors(exclude string, n int) []string {
	var candidates []string
	for _, s := range catalog.Sectors {
		if s != exclude {
			candidates = append(candidates, s)
		}
	}
	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

func (g *generator) id() string {
	return fmt.Sprintf("%d-%d-%d",
		1000+g.rng.Intn(9000), 1000+g.rng.Intn(9000), 1000+g.rng.Intn(9000))
}

// withPublishedWithin replaces the article timestamp with one inside the
// given window, used when backfilled results must honor a time filter.
func (g *generator) withPublishedWithin(a model.Article, window time.Duration, now time.Time) model.Article {
	a.PublishedAt = now.Add(-time.Duration(g.rng.Int63n(int64(window))))
	return a
}
