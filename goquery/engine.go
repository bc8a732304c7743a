// Package goquery implements the metadata rule engine and favicon discovery
// on top of PuerkitoBio/goquery. Rules are grouped into ordered rule sets;
// for each field the first rule yielding a non-empty candidate wins.
package goquery

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marrow"
)

// Ensure Extractor implements marrow.MetadataExtractor at compile time.
var _ marrow.MetadataExtractor = (*Extractor)(nil)

// Extractor applies ordered rule sets against a parsed document.
type Extractor struct {
	rules []RuleSet
}

// NewExtractor creates an Extractor with the default rule sets in their
// fixed priority order.
func NewExtractor() *Extractor {
	return &Extractor{rules: DefaultRuleSets()}
}

// NewExtractorWithRules creates an Extractor with custom rule sets,
// evaluated in the given order.
func NewExtractorWithRules(rules []RuleSet) *Extractor {
	return &Extractor{rules: rules}
}

// ExtractMetadata parses the HTML and evaluates every rule set in order,
// committing the first non-empty candidate per field. A rule that matches
// nothing simply yields no candidate; an empty record is a valid outcome.
func (e *Extractor) ExtractMetadata(html string, baseURL string) (marrow.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return marrow.Metadata{}, marrow.Errorf(marrow.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &Page{doc: doc}
	if base, err := url.Parse(baseURL); err == nil && base.IsAbs() {
		page.base = base
	}

	var meta marrow.Metadata
	committed := make(map[Field]bool)

	for _, set := range e.rules {
		for _, rule := range set.Rules {
			if committed[rule.Field] {
				continue
			}
			value := strings.TrimSpace(rule.Extract(page))
			if value == "" {
				continue
			}
			if commit(&meta, rule.Field, value) {
				committed[rule.Field] = true
			}
		}
	}

	return meta, nil
}

// commit writes a candidate value into the record. Returns false when the
// value cannot be used for the field (e.g. a non-numeric upvote count), so
// later rules for the field still get a chance.
func commit(meta *marrow.Metadata, field Field, value string) bool {
	switch field {
	case FieldTitle:
		meta.Title = value
	case FieldDescription:
		meta.Description = value
	case FieldImage:
		meta.Image = value
	case FieldLogo:
		meta.Logo = value
	case FieldAuthor:
		meta.Author = value
	case FieldPublisher:
		meta.Publisher = value
	case FieldDatePublished:
		meta.DatePublished = value
	case FieldDateModified:
		meta.DateModified = value
	case FieldURL:
		meta.URL = value
	case FieldVideoID:
		meta.VideoID = value
	case FieldChannelName:
		meta.ChannelName = value
	case FieldChannelID:
		meta.ChannelID = value
	case FieldHandle:
		meta.Handle = value
	case FieldCreator:
		meta.Creator = value
	case FieldPrice:
		meta.Price = value
	case FieldProductTitle:
		meta.ProductTitle = value
	case FieldCommunity:
		meta.Community = value
	case FieldUpvotes:
		n, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		meta.Upvotes = &n
	default:
		name, ok := strings.CutPrefix(string(field), extraPrefix)
		if !ok {
			return false
		}
		if meta.Extra == nil {
			meta.Extra = make(map[string]string)
		}
		meta.Extra[name] = value
	}
	return true
}

// Page wraps a parsed document with its base URL and provides the query
// helpers rules are written against.
type Page struct {
	doc  *goquery.Document
	base *url.URL
}

// MetaProperty returns the content of a meta element matched by its
// property attribute (Open Graph style).
func (p *Page) MetaProperty(property string) string {
	return p.Attr(`meta[property="`+property+`"]`, "content")
}

// MetaName returns the content of a meta element matched by its name
// attribute.
func (p *Page) MetaName(name string) string {
	return p.Attr(`meta[name="`+name+`"]`, "content")
}

// Attr returns the named attribute of the first element matching selector.
func (p *Page) Attr(selector, name string) string {
	v, _ := p.doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

// Text returns the text content of the first element matching selector.
func (p *Page) Text(selector string) string {
	return strings.TrimSpace(p.doc.Find(selector).First().Text())
}

// Abs resolves a possibly-relative reference against the page's base URL.
// Returns "" for unresolvable input so the candidate is skipped rather than
// committed.
func (p *Page) Abs(href string) string {
	return resolveRef(p.base, href)
}

// resolveRef resolves href against base. With no base only absolute hrefs
// survive.
func resolveRef(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		ref = base.ResolveReference(ref)
	}
	if !ref.IsAbs() {
		return ""
	}
	return ref.String()
}
