// ABOUTME: Static routing table from (category, country) to candidate feed URLs
// ABOUTME: Curated working feeds; search-engine RSS endpoints are avoided on purpose

package search

// categorySources maps a category to its default candidate feeds.
var categorySources = map[string][]string{
	"technology": {
		"https://feeds.feedburner.com/oreilly/radar",
		"https://techcrunch.com/feed/",
		"https://www.theverge.com/rss/index.xml",
	},
	"business": {
		"https://feeds.reuters.com/reuters/businessNews",
		"https://feeds.feedburner.com/businessinsider",
	},
	"sports": {
		"https://www.espn.com/espn/rss/news",
		"https://feeds.skysports.com/feeds/11095",
	},
	"general": {
		"https://feeds.bbci.co.uk/news/rss.xml",
		"https://rss.cnn.com/rss/edition.rss",
	},
	"entertainment": {
		"https://feeds.feedburner.com/variety/headlines",
	},
	"health": {
		"https://feeds.feedburner.com/webmd/health-news",
		"https://www.medicalnewstoday.com/feeds/news.xml",
	},
	"science": {
		"https://feeds.feedburner.com/sciencedaily",
		"https://www.nature.com/nature.rss",
	},
}

// countrySources adds country-specific feeds on top of a category's defaults.
var countrySources = map[string]map[string][]string{
	"in": {
		"technology": {
			"https://www.medianama.com/feed/",
		},
		"business": {
			"https://economictimes.indiatimes.com/rssfeedstopstories.cms",
			"https://www.business-standard.com/rss/home_page_top_stories.rss",
		},
		"sports": {
			"https://sports.ndtv.com/rss/latest",
			"https://www.cricbuzz.com/rss-feed/cricket-news",
		},
		"general": {
			"https://timesofindia.indiatimes.com/rssfeedstopstories.cms",
			"https://www.thehindu.com/feeder/default.rss",
		},
		"entertainment": {
			"https://www.bollywoodhungama.com/rss/news.xml",
		},
	},
}

// globalSource is appended to every candidate list for broader coverage.
const globalSource = "https://feeds.reuters.com/Reuters/worldNews"

// CandidateURLs resolves the fixed candidate feed list for a search. An
// unmatched category contributes no category-specific sources; the global
// source is always appended.
func CandidateURLs(category, country string) []string {
	urls := append([]string{}, categorySources[category]...)
	if byCategory, ok := countrySources[country]; ok {
		urls = append(urls, byCategory[category]...)
	}
	return append(urls, globalSource)
}
