package goquery

import (
	"regexp"
	"strings"
)

var (
	communityPathPattern = regexp.MustCompile(`/r/([^/]+)`)
	numericRunPattern    = regexp.MustCompile(`[\d.,]+`)
)

// CommunityRules extracts forum/community post metadata: the community name
// from the canonical-URL social meta tag, the author from a byline link,
// and the upvote counter.
func CommunityRules() RuleSet {
	return RuleSet{
		Name: "community",
		Rules: []Rule{
			{FieldCommunity, func(p *Page) string {
				m := communityPathPattern.FindStringSubmatch(p.MetaProperty("og:url"))
				if m == nil {
					return ""
				}
				return m[1]
			}},
			{FieldAuthor, func(p *Page) string { return p.MetaName("author") }},
			{FieldAuthor, func(p *Page) string {
				return p.Text(`[data-testid="post_author_by_line"] a[href*="/user/"]`)
			}},
			{FieldUpvotes, func(p *Page) string {
				text := p.Text(`[data-testid="post-vote-count"]`)
				if text == "" {
					text = p.Text("._1rZjMh_0")
				}
				// First numeric run with thousands separators stripped;
				// absent when the counter holds no digits.
				run := numericRunPattern.FindString(text)
				if run == "" {
					return ""
				}
				return strings.Map(func(r rune) rune {
					if r >= '0' && r <= '9' {
						return r
					}
					return -1
				}, run)
			}},
		},
	}
}
