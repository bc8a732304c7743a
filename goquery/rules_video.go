package goquery

import "regexp"

var watchURLPattern = regexp.MustCompile(`[?&]v=([\w-]+)`)

// VideoRules extracts video-platform identifiers. The platform's channel
// name also serves as the author, taking priority over generic author
// rules.
func VideoRules() RuleSet {
	channelName := func(p *Page) string {
		if v := p.Attr(`span[itemprop="author"] link[itemprop="name"]`, "content"); v != "" {
			return v
		}
		return p.Attr(`link[itemprop="name"]`, "content")
	}
	return RuleSet{
		Name: "video",
		Rules: []Rule{
			{FieldVideoID, func(p *Page) string { return p.Attr(`meta[itemprop="videoId"]`, "content") }},
			{FieldVideoID, func(p *Page) string {
				m := watchURLPattern.FindStringSubmatch(p.MetaProperty("og:url"))
				if m == nil {
					return ""
				}
				return m[1]
			}},
			{FieldChannelName, channelName},
			{FieldChannelID, func(p *Page) string { return p.Attr(`meta[itemprop="channelId"]`, "content") }},
			{FieldAuthor, channelName},
		},
	}
}
