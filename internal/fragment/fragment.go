// Package fragment defines the typed pieces of a model response and the
// classifier that extracts them.
package fragment

// Kind discriminates the fragment variants.
type Kind string

const (
	KindNarration       Kind = "narration"
	KindReasoning       Kind = "reasoning"
	KindCode            Kind = "code"
	KindExecutionResult Kind = "execution_result"
	KindImage           Kind = "image"
)

// Fragment is one typed piece of a model response, in response order.
// Content carries the text for every kind except image, which carries its
// payload in MIMEType and Data instead.
type Fragment struct {
	Kind     Kind   `json:"type"`
	Content  string `json:"content"`
	MIMEType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"`
}
