package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"PostCraft/internal/domain"
)

var sample = domain.BlogContent{
	URL:     "https://techblog.com/ai-trends",
	Title:   "AI Trends",
	Content: "Models are getting smaller. Agents are everywhere.",
	Excerpt: "Models are getting smaller.",
}

func TestTwitterPrompt(t *testing.T) {
	t.Parallel()

	p := NewRegistry().Build(domain.PlatformTwitter, sample)

	assert.Contains(t, p, "Twitter thread")
	assert.Contains(t, p, "3-5 tweets")
	assert.Contains(t, p, "Tweet 1/n:")
	assert.Contains(t, p, "hashtags in the final tweet")
	assert.Contains(t, p, "Blog Title: AI Trends")
	assert.Contains(t, p, "Blog Content: "+sample.Content)
	assert.Contains(t, p, "Blog URL: "+sample.URL)
}

func TestLinkedInPrompt(t *testing.T) {
	t.Parallel()

	p := NewRegistry().Build(domain.PlatformLinkedIn, sample)

	assert.Contains(t, p, "LinkedIn post")
	assert.Contains(t, p, "300-800 words")
	assert.Contains(t, p, "3-5 key insights")
	assert.Contains(t, p, "3-5 relevant hashtags")
	assert.Contains(t, p, "question")
	assert.Contains(t, p, "Reference the original blog URL ("+sample.URL+")")
}

func TestGenericPromptForUnknownPlatform(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	b := r.Resolve("mastodon")

	assert.Equal(t, "mastodon", b.Platform())
	p := b.Build(sample)
	assert.Contains(t, p, "social media post for mastodon")
	assert.Contains(t, p, "Blog URL: "+sample.URL)
	assert.NotContains(t, p, "Tweet 1/n")
}

type fixedBuilder struct{}

func (fixedBuilder) Platform() string { return domain.PlatformTwitter }
func (fixedBuilder) Build(domain.BlogContent) string { return "fixed" }

func TestRegisterReplacesBuilder(t *testing.T) {
	t.Parallel()

	r := &Registry{}
	r.Register(fixedBuilder{})

	assert.Equal(t, "fixed", r.Build(domain.PlatformTwitter, sample))
}
