package marrow

// Metadata is the structured field-value record describing a page, built
// incrementally by the metadata rule engine. Every field is optional;
// absence of one field never blocks extraction of others. The engine
// commits the first non-empty candidate per field, so each field holds at
// most one value.
type Metadata struct {
	// Core fields.
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Image         string `json:"image,omitempty"`
	Logo          string `json:"logo,omitempty"`
	Author        string `json:"author,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	DatePublished string `json:"datePublished,omitempty"`
	DateModified  string `json:"dateModified,omitempty"`
	URL           string `json:"url,omitempty"`

	// Video platform fields.
	VideoID     string `json:"videoId,omitempty"`
	ChannelName string `json:"channelName,omitempty"`
	ChannelID   string `json:"channelId,omitempty"`

	// Social platform fields.
	Handle  string `json:"handle,omitempty"`
	Creator string `json:"creator,omitempty"`

	// Marketplace fields.
	Price        string `json:"price,omitempty"`
	ProductTitle string `json:"productTitle,omitempty"`

	// Forum/community fields.
	Community string `json:"community,omitempty"`
	Upvotes   *int   `json:"upvotes,omitempty"`

	// Extra holds any additional fields discovered by rules that are not
	// part of the canonical field list.
	Extra map[string]string `json:"extra,omitempty"`
}

// Clone returns a deep copy of the metadata record.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Upvotes != nil {
		v := *m.Upvotes
		out.Upvotes = &v
	}
	if m.Extra != nil {
		out.Extra = make(map[string]string, len(m.Extra))
		for k, v := range m.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// MetadataExtractor evaluates extraction rules against HTML and returns a
// metadata record. An empty record is a valid, non-error outcome: no rule
// failure is ever fatal.
type MetadataExtractor interface {
	// ExtractMetadata parses the HTML and applies the rule sets in priority
	// order. baseURL is used to resolve relative references and may be
	// empty. The only error condition is a document that cannot be parsed
	// at all.
	ExtractMetadata(html string, baseURL string) (Metadata, error)
}
