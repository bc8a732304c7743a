package goquery

// Field identifies the metadata field a rule extracts.
type Field string

// Canonical fields.
const (
	FieldTitle         Field = "title"
	FieldDescription   Field = "description"
	FieldImage         Field = "image"
	FieldLogo          Field = "logo"
	FieldAuthor        Field = "author"
	FieldPublisher     Field = "publisher"
	FieldDatePublished Field = "datePublished"
	FieldDateModified  Field = "dateModified"
	FieldURL           Field = "url"
	FieldVideoID       Field = "videoId"
	FieldChannelName   Field = "channelName"
	FieldChannelID     Field = "channelId"
	FieldHandle        Field = "handle"
	FieldCreator       Field = "creator"
	FieldPrice         Field = "price"
	FieldProductTitle  Field = "productTitle"
	FieldCommunity     Field = "community"
	FieldUpvotes       Field = "upvotes"
)

const extraPrefix = "extra:"

// ExtraField names a non-canonical field retained in the record's Extra map.
func ExtraField(name string) Field {
	return Field(extraPrefix + name)
}

// Rule is a single extraction attempt for one field. Extract returns a
// candidate value or "" for no match.
type Rule struct {
	Field   Field
	Extract func(p *Page) string
}

// RuleSet is a named, ordered group of rules.
type RuleSet struct {
	Name  string
	Rules []Rule
}

// DefaultRuleSets returns the rule sets in their fixed priority order.
// Ordering is load-bearing: the improved product-image set runs before the
// standard marketplace set so a product photo beats a site logo; platform
// sets run before generic sets for the same fields; generic image precedes
// logo because logo is a fallback signal, not a replacement; canonical URL
// runs last.
func DefaultRuleSets() []RuleSet {
	return []RuleSet{
		DateRules(),
		ProductImageRules(),
		MarketplaceRules(),
		VideoRules(),
		CommunityRules(),
		AuthorRules(),
		PublisherRules(),
		TitleRules(),
		DescriptionRules(),
		SocialCardRules(),
		ImageRules(),
		LogoRules(),
		CanonicalURLRules(),
		ExtraRules(),
	}
}

// DateRules extracts publication and modification dates. Dates run first;
// they are field-independent of everything that follows.
func DateRules() RuleSet {
	return RuleSet{
		Name: "date",
		Rules: []Rule{
			{FieldDatePublished, func(p *Page) string { return p.MetaProperty("article:published_time") }},
			{FieldDatePublished, func(p *Page) string { return p.Attr(`meta[itemprop="datePublished"]`, "content") }},
			{FieldDatePublished, func(p *Page) string { return p.Attr(`time[itemprop="datePublished"]`, "datetime") }},
			{FieldDatePublished, func(p *Page) string { return p.MetaName("date") }},
			{FieldDatePublished, func(p *Page) string { return p.Attr("time[datetime]", "datetime") }},
			{FieldDateModified, func(p *Page) string { return p.MetaProperty("article:modified_time") }},
			{FieldDateModified, func(p *Page) string { return p.MetaProperty("og:updated_time") }},
			{FieldDateModified, func(p *Page) string { return p.Attr(`meta[itemprop="dateModified"]`, "content") }},
		},
	}
}

// AuthorRules extracts the author from generic markup.
func AuthorRules() RuleSet {
	return RuleSet{
		Name: "author",
		Rules: []Rule{
			{FieldAuthor, func(p *Page) string { return p.MetaName("author") }},
			{FieldAuthor, func(p *Page) string { return p.MetaProperty("article:author") }},
			{FieldAuthor, func(p *Page) string { return p.Text(`a[rel="author"]`) }},
			{FieldAuthor, func(p *Page) string { return p.Attr(`[itemprop="author"] [itemprop="name"]`, "content") }},
			{FieldAuthor, func(p *Page) string { return p.Text(`[itemprop="author"] [itemprop="name"]`) }},
		},
	}
}

// PublisherRules extracts the publishing site's name.
func PublisherRules() RuleSet {
	return RuleSet{
		Name: "publisher",
		Rules: []Rule{
			{FieldPublisher, func(p *Page) string { return p.MetaProperty("og:site_name") }},
			{FieldPublisher, func(p *Page) string { return p.MetaName("publisher") }},
			{FieldPublisher, func(p *Page) string { return p.MetaName("application-name") }},
		},
	}
}

// TitleRules extracts the page title.
func TitleRules() RuleSet {
	return RuleSet{
		Name: "title",
		Rules: []Rule{
			{FieldTitle, func(p *Page) string { return p.MetaProperty("og:title") }},
			{FieldTitle, func(p *Page) string { return p.MetaName("twitter:title") }},
			{FieldTitle, func(p *Page) string { return p.Text("title") }},
			{FieldTitle, func(p *Page) string { return p.Text("h1") }},
		},
	}
}

// DescriptionRules extracts the page description.
func DescriptionRules() RuleSet {
	return RuleSet{
		Name: "description",
		Rules: []Rule{
			{FieldDescription, func(p *Page) string { return p.MetaProperty("og:description") }},
			{FieldDescription, func(p *Page) string { return p.MetaName("twitter:description") }},
			{FieldDescription, func(p *Page) string { return p.MetaName("description") }},
		},
	}
}

// SocialCardRules extracts social-card handles.
func SocialCardRules() RuleSet {
	return RuleSet{
		Name: "socialcard",
		Rules: []Rule{
			{FieldHandle, func(p *Page) string { return p.MetaName("twitter:site") }},
			{FieldHandle, func(p *Page) string { return p.MetaProperty("twitter:site") }},
			{FieldCreator, func(p *Page) string { return p.MetaName("twitter:creator") }},
			{FieldCreator, func(p *Page) string { return p.MetaProperty("twitter:creator") }},
		},
	}
}

// ImageRules extracts the primary page image. Candidates are resolved to
// absolute URLs; unresolvable candidates are skipped.
func ImageRules() RuleSet {
	return RuleSet{
		Name: "image",
		Rules: []Rule{
			{FieldImage, func(p *Page) string { return p.Abs(p.MetaProperty("og:image")) }},
			{FieldImage, func(p *Page) string { return p.Abs(p.MetaProperty("og:image:url")) }},
			{FieldImage, func(p *Page) string { return p.Abs(p.MetaName("twitter:image")) }},
			{FieldImage, func(p *Page) string { return p.Abs(p.MetaName("twitter:image:src")) }},
			{FieldImage, func(p *Page) string { return p.Abs(p.Attr(`meta[itemprop="image"]`, "content")) }},
			{FieldImage, func(p *Page) string { return p.Abs(p.Attr(`link[rel="image_src"]`, "href")) }},
		},
	}
}

// LogoRules extracts the site logo/favicon signal. This is a fallback
// visual and therefore runs after the image set.
func LogoRules() RuleSet {
	rules := []Rule{
		{FieldLogo, func(p *Page) string { return p.Abs(p.MetaProperty("og:logo")) }},
		{FieldLogo, func(p *Page) string { return p.Abs(p.Attr(`meta[itemprop="logo"]`, "content")) }},
		{FieldLogo, func(p *Page) string { return p.Abs(p.Attr(`img[itemprop="logo"]`, "src")) }},
	}
	for _, sel := range faviconSelectors {
		sel := sel
		rules = append(rules, Rule{FieldLogo, func(p *Page) string {
			href := p.Attr(sel, "href")
			if isDataURI(href) {
				return ""
			}
			return p.Abs(href)
		}})
	}
	return RuleSet{Name: "logo", Rules: rules}
}

// CanonicalURLRules resolves the canonical URL. Runs last: it falls back to
// the caller-supplied base URL once every other source is exhausted.
func CanonicalURLRules() RuleSet {
	return RuleSet{
		Name: "url",
		Rules: []Rule{
			{FieldURL, func(p *Page) string { return p.Abs(p.Attr(`link[rel="canonical"]`, "href")) }},
			{FieldURL, func(p *Page) string { return p.Abs(p.MetaProperty("og:url")) }},
			{FieldURL, func(p *Page) string {
				if p.base == nil {
					return ""
				}
				return p.base.String()
			}},
		},
	}
}

// ExtraRules retains additional fields outside the canonical list.
func ExtraRules() RuleSet {
	return RuleSet{
		Name: "extra",
		Rules: []Rule{
			{ExtraField("keywords"), func(p *Page) string { return p.MetaName("keywords") }},
			{ExtraField("section"), func(p *Page) string { return p.MetaProperty("article:section") }},
			{ExtraField("locale"), func(p *Page) string { return p.MetaProperty("og:locale") }},
			{ExtraField("themeColor"), func(p *Page) string { return p.MetaName("theme-color") }},
		},
	}
}
