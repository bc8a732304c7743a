// Package marrow extracts clean article text, a representative image, and
// structured metadata from raw, pre-fetched HTML. It runs a multi-stage
// pipeline: metadata rule evaluation, main-content extraction,
// sanitization, plain-text projection, and image resolution with fallbacks.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, bluemonday/).
package marrow
