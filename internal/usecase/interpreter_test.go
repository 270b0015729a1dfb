package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PostCraft/internal/domain"
)

func userMessage(parts ...domain.Part) domain.Message {
	return domain.Message{Role: domain.RoleUser, Parts: parts, MessageID: "m-1", Kind: "message"}
}

func TestExtractURLFromTextPart(t *testing.T) {
	t.Parallel()

	in := NewInterpreter([]string{"linkedin", "twitter"})
	url, platforms, err := in.ExtractURLAndPlatforms(userMessage(
		domain.TextPart{Text: "Please convert https://blog.example.com/post-1 thanks"},
	))

	require.NoError(t, err)
	assert.Equal(t, "https://blog.example.com/post-1", url)
	assert.Equal(t, []string{"linkedin", "twitter"}, platforms)
}

func TestExtractURLFromNestedDataPart(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(domain.DefaultTargets())
	msg := userMessage(
		domain.TextPart{Text: "<p>markup</p>"},
		domain.DataPart{Data: []any{
			map[string]any{"kind": "text", "text": "See http://example.org/a?b=1"},
			map[string]any{"kind": "image", "text": "https://ignored.example.com"},
			"not an object",
		}},
	)

	url, _, err := in.ExtractURLAndPlatforms(msg)
	require.NoError(t, err)
	assert.Equal(t, "http://example.org/a?b=1", url)
}

func TestExtractURLFirstMatchWins(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(domain.DefaultTargets())
	url, _, err := in.ExtractURLAndPlatforms(userMessage(
		domain.TextPart{Text: "first https://one.example.com/x"},
		domain.TextPart{Text: "second https://two.example.com/y"},
	))

	require.NoError(t, err)
	assert.Equal(t, "https://one.example.com/x", url)
}

func TestExtractURLStopsAtQuotesAndBrackets(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(domain.DefaultTargets())
	url, _, err := in.ExtractURLAndPlatforms(userMessage(
		domain.TextPart{Text: `link "https://example.com/quoted" here`},
	))

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/quoted", url)
}

func TestExtractURLFiltersBoilerplate(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(domain.DefaultTargets())
	_, _, err := in.ExtractURLAndPlatforms(userMessage(
		domain.TextPart{Text: "<div>https://example.com/in-markup</div>"},
		domain.TextPart{Text: "How can I Assist You with https://example.com/greeting"},
		domain.TextPart{Text: ""},
	))

	assert.ErrorIs(t, err, domain.ErrNoTextFound)
}

func TestExtractURLMissing(t *testing.T) {
	t.Parallel()

	in := NewInterpreter(domain.DefaultTargets())
	_, _, err := in.ExtractURLAndPlatforms(userMessage(domain.TextPart{Text: "hello there, no link"}))

	assert.ErrorIs(t, err, domain.ErrNoURLFound)
}

func TestExtractURLIgnoresUnknownParts(t *testing.T) {
	t.Parallel()

	var msg domain.Message
	require.NoError(t, json.Unmarshal([]byte(`{"role":"user","parts":[{"kind":"file","file":{"uri":"https://example.com/f"}}]}`), &msg))

	in := NewInterpreter(domain.DefaultTargets())
	_, _, err := in.ExtractURLAndPlatforms(msg)
	assert.ErrorIs(t, err, domain.ErrNoTextFound)
}

func TestInterpreterReturnsCopyOfTargets(t *testing.T) {
	t.Parallel()

	in := NewInterpreter([]string{"twitter"})
	_, platforms, err := in.ExtractURLAndPlatforms(userMessage(domain.TextPart{Text: "https://example.com"}))
	require.NoError(t, err)

	platforms[0] = "mutated"
	_, again, err := in.ExtractURLAndPlatforms(userMessage(domain.TextPart{Text: "https://example.com"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"twitter"}, again)
}
