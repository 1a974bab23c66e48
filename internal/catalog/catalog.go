// Package catalog holds the fixed publisher, company, sector and keyword data
// that drives term extraction and synthetic article generation.
package catalog

import "strings"

var Sources = []string{
	"Bloomberg", "Reuters", "CNBC", "Financial Times",
	"Wall Street Journal", "MarketWatch", "Barron's",
}

var Companies = []string{
	"Apple", "Microsoft", "Google", "Amazon", "Tesla",
	"Meta", "Nvidia", "IBM", "Intel", "AMD",
}

var Sectors = []string{
	"Technology", "Finance", "Healthcare", "Energy",
	"Consumer Goods", "Communications", "Utilities",
}

var Sentiments = []string{"positive", "negative", "neutral"}

// Keyword is a dictionary entry that biases generation and term expansion.
// Empty slices mean "no preference".
type Keyword struct {
	Templates []string
	Companies []string
	Sectors   []string
	Sources   []string
	// Trending keywords get a shorter publication horizon.
	Trending bool
}

var Keywords = map[string]Keyword{
	"earnings": {
		Templates: []string{
			"{company} Reports Q{quarter} Earnings: {beat_miss} Analyst Expectations",
			"{company} {beat_miss} Earnings Forecast in Latest Quarter",
			"Wall Street Reacts to {company}'s Earnings Report",
			"Earnings Alert: {company} Reports {earnings_change} in Profits",
		},
		Companies: []string{"Apple", "Microsoft", "Google", "Amazon", "Tesla"},
	},
	"ai": {
		Templates: []string{
			"{company} Unveils New AI Strategy to Compete with {company2}",
			"{company}'s AI Investment Pays Off with Breakthrough in {ai_field}",
			"{company} CEO: AI Will Transform Our {sector} Business",
			"Analysts Optimistic About {company}'s AI Roadmap",
		},
		Companies: []string{"Microsoft", "Google", "Amazon", "Nvidia", "Meta", "IBM"},
		Sectors:   []string{"Technology", "Communications"},
		Sources:   []string{"CNBC", "Bloomberg", "Wall Street Journal"},
		Trending:  true,
	},
	"market": {
		Templates: []string{
			"Market Volatility Impacts {company}'s Stock Performance",
			"{company} Navigates Challenging Market Conditions",
			"Bull Market: Is {company} Still a Good Investment?",
			"{company} Gains Market Share in Competitive {sector} Sector",
		},
		Trending: true,
	},
	"energy": {
		Templates: []string{
			"{company} Announces Renewable Energy Initiative",
			"{company} Invests in Sustainable Energy Solutions",
			"Energy Crisis: How {company} is Adapting",
			"{company} Reduces Carbon Footprint with New Energy Strategy",
		},
		Sectors: []string{"Energy", "Utilities"},
		Sources: []string{"Bloomberg", "Financial Times", "Reuters"},
	},
}

var HeadlineTemplates = []string{
	"{company} Reports Strong Quarterly Earnings, Stock {movement}",
	"{company} Announces New {product_type} Products",
	"{company} Faces Regulatory Scrutiny in {region}",
	"{company} Expands Operations in {region}",
	"{company} CEO Discusses Future of {sector}",
	"Investors React to {company}'s Latest {announcement_type}",
	"{company} Stock {movement} After Analyst Upgrade",
	"{company} Partners with {company2} on New Initiative",
	"Market Analysis: What's Next for {company}?",
	"{sector} Sector Outlook: Focus on {company}",
}

var (
	Regions           = []string{"US", "Europe", "Asia", "Global"}
	Movements         = []string{"Surges", "Drops", "Rises", "Falls", "Stabilizes"}
	ProductTypes      = []string{"Consumer", "Enterprise", "Cloud", "AI", "IoT", "Mobile"}
	AnnouncementTypes = []string{"Earnings Report", "Product Launch", "Strategic Plan", "Restructuring"}
	BeatMiss          = []string{"Beats", "Misses", "Meets"}
	EarningsChanges   = []string{"Significant Increase", "Modest Growth", "Slight Decline", "Unexpected Drop"}
	AIFields          = []string{"Natural Language", "Computer Vision", "Predictive Analytics", "Robotics"}
)

// SentimentPhrases feed content generation; each pool matches one label.
var SentimentPhrases = map[string][]string{
	"positive": {
		"exceeding expectations", "strong growth", "positive outlook",
		"market leader", "impressive results", "bullish forecast",
	},
	"negative": {
		"falling short of expectations", "concerning trend", "bearish outlook",
		"facing challenges", "disappointing results", "market pressure",
	},
	"neutral": {
		"as expected", "steady performance", "mixed results",
		"ongoing development", "stable outlook", "measured approach",
	},
}

// RelationTypes describe how an additional company relates to the primary one.
var RelationTypes = []string{"competitor", "partner", "supplier", "rival", "industry peer"}

// SectorsByCompany maps each company to its primary sector. Tesla straddles
// two, handled by the generator.
var SectorsByCompany = map[string]string{
	"Apple":     "Technology",
	"Microsoft": "Technology",
	"Google":    "Technology",
	"IBM":       "Technology",
	"Intel":     "Technology",
	"AMD":       "Technology",
	"Nvidia":    "Technology",
	"Meta":      "Communications",
	"Amazon":    "Consumer Goods",
	"Tesla":     "Technology",
}

// IsCompany reports whether name matches a known company, ignoring case.
func IsCompany(name string) (string, bool) {
	for _, c := range Companies {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// IsSector reports whether name matches a known sector, ignoring case.
func IsSector(name string) (string, bool) {
	for _, s := range Sectors {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}
