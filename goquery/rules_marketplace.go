package goquery

// ProductImageRules is the improved product-image set. It must run before
// MarketplaceRules so an actual product photo wins over a generic site
// logo for the image field.
func ProductImageRules() RuleSet {
	srcOrDataSrc := func(p *Page, selector string) string {
		if v := p.Abs(p.Attr(selector, "src")); v != "" {
			return v
		}
		return p.Abs(p.Attr(selector, "data-src"))
	}
	return RuleSet{
		Name: "product-image",
		Rules: []Rule{
			// Product main image, most specific selector first.
			{FieldImage, func(p *Page) string { return srcOrDataSrc(p, "img[data-a-dynamic-image]") }},
			{FieldImage, func(p *Page) string { return srcOrDataSrc(p, ".a-dynamic-image img") }},
			{FieldImage, func(p *Page) string { return srcOrDataSrc(p, "img.a-dynamic-image") }},
			{FieldImage, func(p *Page) string { return srcOrDataSrc(p, `img[alt*="product"]`) }},
		},
	}
}

// MarketplaceRules extracts price and product title from marketplace
// product pages.
func MarketplaceRules() RuleSet {
	return RuleSet{
		Name: "marketplace",
		Rules: []Rule{
			{FieldPrice, func(p *Page) string { return p.Text(".a-price .a-offscreen") }},
			{FieldPrice, func(p *Page) string { return p.Text("#priceblock_ourprice") }},
			{FieldPrice, func(p *Page) string { return p.Attr(`meta[itemprop="price"]`, "content") }},
			{FieldProductTitle, func(p *Page) string { return p.Text("#productTitle") }},
			{FieldProductTitle, func(p *Page) string { return p.Text("#title") }},
		},
	}
}
