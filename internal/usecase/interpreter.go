package usecase

import (
	"regexp"
	"strings"

	"PostCraft/internal/domain"
)

var urlExpr = regexp.MustCompile(`https?://[^\s<>"]+`)

// Interpreter pulls the blog URL out of an inbound chat message.
// The platforms it reports are the configured targets, never caller input.
type Interpreter struct {
	targets []string
}

// NewInterpreter binds the resolved target platforms.
func NewInterpreter(targets []string) *Interpreter {
	return &Interpreter{targets: append([]string(nil), targets...)}
}

// ExtractURLAndPlatforms returns the first URL found in the message's usable text.
func (i *Interpreter) ExtractURLAndPlatforms(msg domain.Message) (string, []string, error) {
	var fragments []string

	for _, part := range msg.Parts {
		switch p := part.(type) {
		case domain.TextPart:
			if usableText(p.Text) {
				fragments = append(fragments, p.Text)
			}
		case domain.DataPart:
			for _, item := range p.Data {
				if text, ok := nestedText(item); ok && usableText(text) {
					fragments = append(fragments, text)
				}
			}
		case domain.RawPart:
			// unknown part kinds carry no text we understand
		}
	}

	if len(fragments) == 0 {
		return "", nil, domain.ErrNoTextFound
	}

	url := urlExpr.FindString(strings.Join(fragments, " "))
	if url == "" {
		return "", nil, domain.ErrNoURLFound
	}

	return url, append([]string(nil), i.targets...), nil
}

// usableText filters out markup and injected greeting boilerplate.
func usableText(text string) bool {
	if text == "" || strings.HasPrefix(text, "<") {
		return false
	}
	return !strings.Contains(strings.ToLower(text), "assist you")
}

func nestedText(item any) (string, bool) {
	obj, ok := item.(map[string]any)
	if !ok || obj["kind"] != "text" {
		return "", false
	}
	text, ok := obj["text"].(string)
	return text, ok
}
