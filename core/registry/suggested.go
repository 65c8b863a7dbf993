// ABOUTME: Curated starter feeds offered to users with an empty feed list

package registry

// SuggestedFeed is a read-only curated entry; it becomes a Subscription
// only when the user registers it.
type SuggestedFeed struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Language    string `json:"language"`
	Region      string `json:"region"`
}

var suggestedFeeds = []SuggestedFeed{
	{
		Name:        "TechCrunch",
		URL:         "https://techcrunch.com/feed/",
		Description: "Global startup and technology news",
		Category:    "tech",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "The Verge",
		URL:         "https://www.theverge.com/rss/index.xml",
		Description: "Technology, science, art, and culture",
		Category:    "tech",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "Ars Technica",
		URL:         "https://feeds.arstechnica.com/arstechnica/index",
		Description: "Technology news and in-depth analysis",
		Category:    "tech",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "Wired",
		URL:         "https://www.wired.com/feed/rss",
		Description: "Technology, business, science, and design",
		Category:    "tech",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "Reuters Business",
		URL:         "https://feeds.reuters.com/reuters/businessNews",
		Description: "Global business and financial news",
		Category:    "business",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "BBC News",
		URL:         "https://feeds.bbci.co.uk/news/rss.xml",
		Description: "World news from BBC",
		Category:    "news",
		Language:    "en",
		Region:      "global",
	},
	{
		Name:        "The Hindu",
		URL:         "https://www.thehindu.com/feeder/default.rss",
		Description: "Indian national news",
		Category:    "news",
		Language:    "en",
		Region:      "in",
	},
	{
		Name:        "Economic Times",
		URL:         "https://economictimes.indiatimes.com/rssfeedstopstories.cms",
		Description: "Indian business and markets",
		Category:    "business",
		Language:    "en",
		Region:      "in",
	},
}

// Suggested returns the curated starter feeds, optionally filtered by
// category ("" matches everything).
func Suggested(category string) []SuggestedFeed {
	if category == "" {
		return suggestedFeeds
	}
	out := make([]SuggestedFeed, 0)
	for _, f := range suggestedFeeds {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}
