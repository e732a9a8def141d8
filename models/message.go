package models

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is one entry in the append-only conversation transcript.
// Messages are never mutated after being appended.
type Message struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"` // base64-encoded photo attached by the user
}
