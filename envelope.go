package marrow

// Envelope is the JSON wire format shared by the CLI file mode and the
// HTTP service mode.
type Envelope struct {
	Success bool          `json:"success"`
	URL     string        `json:"url,omitempty"`
	Data    *EnvelopeData `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
	Code    string        `json:"code,omitempty"`
}

// EnvelopeData carries the extraction payload of a success envelope. Debug
// is populated only when the caller asked for the per-stage snapshot.
type EnvelopeData struct {
	Content  string   `json:"content"`
	Image    *string  `json:"image"`
	Metadata Metadata `json:"metadata"`
	Debug    *Debug   `json:"debug,omitempty"`
}

// SuccessEnvelope wraps an extraction result for the wire. url is optional
// and echoed back by the service mode.
func SuccessEnvelope(result *Result, url string) Envelope {
	return Envelope{
		Success: true,
		URL:     url,
		Data: &EnvelopeData{
			Content:  result.Content,
			Image:    result.Image,
			Metadata: result.Metadata,
			Debug:    result.Debug,
		},
	}
}

// ErrorEnvelope wraps a failure with a stable machine-readable code.
func ErrorEnvelope(message string, code string) Envelope {
	return Envelope{
		Success: false,
		Error:   message,
		Code:    code,
	}
}
