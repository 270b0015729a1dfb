package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Part is one fragment of a message. The concrete type is one of
// TextPart, DataPart or RawPart.
type Part interface {
	Kind() string
}

// TextPart carries plain text.
type TextPart struct {
	Text string
}

// Kind implements Part.
func (TextPart) Kind() string { return "text" }

// MarshalJSON writes the part with its discriminator.
func (p TextPart) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}{Kind: p.Kind(), Text: p.Text})
}

// DataPart carries a list of structured items, some of which may be
// nested text parts.
type DataPart struct {
	Data []any
}

// Kind implements Part.
func (DataPart) Kind() string { return "data" }

// MarshalJSON writes the part with its discriminator.
func (p DataPart) MarshalJSON() ([]byte, error) {
	data := p.Data
	if data == nil {
		data = []any{}
	}
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Data []any  `json:"data"`
	}{Kind: p.Kind(), Data: data})
}

// RawPart keeps a part of an unrecognised shape so it can be echoed back as received.
type RawPart struct {
	kind string
	raw  json.RawMessage
}

// Kind implements Part.
func (p RawPart) Kind() string { return p.kind }

// MarshalJSON returns the original bytes.
func (p RawPart) MarshalJSON() ([]byte, error) {
	if len(p.raw) == 0 {
		return []byte("{}"), nil
	}
	return p.raw, nil
}

// Message is a single chat turn exchanged with the agent.
type Message struct {
	Role      Role   `json:"role"`
	Parts     []Part `json:"parts"`
	MessageID string `json:"messageId"`
	Kind      string `json:"kind"`
}

// NewAgentMessage builds an agent reply carrying a single text part.
func NewAgentMessage(text string) Message {
	return Message{
		Role:      RoleAgent,
		Parts:     []Part{TextPart{Text: text}},
		MessageID: uuid.NewString(),
		Kind:      "message",
	}
}

// UnmarshalJSON decodes and validates a message, resolving each part to its concrete type.
func (m *Message) UnmarshalJSON(b []byte) error {
	var wire struct {
		Role      *Role             `json:"role"`
		Parts     []json.RawMessage `json:"parts"`
		MessageID string            `json:"messageId"`
		Kind      *string           `json:"kind"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	if wire.Role == nil {
		return fmt.Errorf("%w: role is required", ErrInvalidMessage)
	}
	if *wire.Role != RoleUser && *wire.Role != RoleAgent {
		return fmt.Errorf("%w: unsupported role %q", ErrInvalidMessage, *wire.Role)
	}
	if wire.Parts == nil {
		return fmt.Errorf("%w: parts are required", ErrInvalidMessage)
	}

	parts := make([]Part, 0, len(wire.Parts))
	for i, raw := range wire.Parts {
		part, err := DecodePart(raw)
		if err != nil {
			return fmt.Errorf("%w: part %d: %v", ErrInvalidMessage, i, err)
		}
		parts = append(parts, part)
	}

	kind := "message"
	if wire.Kind != nil {
		if *wire.Kind != "message" {
			return fmt.Errorf("%w: unsupported kind %q", ErrInvalidMessage, *wire.Kind)
		}
		kind = *wire.Kind
	}

	id := wire.MessageID
	if id == "" {
		id = uuid.NewString()
	}

	*m = Message{Role: *wire.Role, Parts: parts, MessageID: id, Kind: kind}
	return nil
}

// DecodePart resolves a raw JSON part into TextPart, DataPart or RawPart.
func DecodePart(raw json.RawMessage) (Part, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("part must be an object")
	}

	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(trimmed, &head); err != nil {
		return nil, err
	}

	switch head.Kind {
	case "text":
		var p struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("text part: %w", err)
		}
		return TextPart{Text: p.Text}, nil
	case "data":
		var p struct {
			Data any `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("data part: %w", err)
		}
		if items, ok := p.Data.([]any); ok {
			return DataPart{Data: items}, nil
		}
	}

	return RawPart{kind: head.Kind, raw: append(json.RawMessage(nil), trimmed...)}, nil
}
