package form

// MessageKind classifies the user-facing status message.
type MessageKind string

const (
	// MessageNone means no message is displayed.
	MessageNone MessageKind = ""
	// MessageError marks a validation or settlement failure.
	MessageError MessageKind = "error"
	// MessageSuccess marks a settled swap.
	MessageSuccess MessageKind = "success"
)

// Message is the status record surfaced to display collaborators.
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}
