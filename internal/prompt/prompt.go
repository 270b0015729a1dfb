package prompt

import (
	"fmt"
	"strings"

	"PostCraft/internal/domain"
)

// Builder renders the instruction sent to a provider for one platform.
type Builder interface {
	Platform() string
	Build(blog domain.BlogContent) string
}

// Registry keeps a mapping from platform names to their prompt builders.
// Platforms without a builder get the generic prompt.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry builds a registry preloaded with the Twitter and LinkedIn builders.
func NewRegistry() *Registry {
	r := &Registry{builders: map[string]Builder{}}
	r.Register(TwitterThread{})
	r.Register(LinkedInPost{})
	return r
}

// Register adds or replaces a builder.
func (r *Registry) Register(b Builder) {
	if r.builders == nil {
		r.builders = map[string]Builder{}
	}
	r.builders[b.Platform()] = b
}

// Resolve returns the builder for platform, falling back to a generic one.
func (r *Registry) Resolve(platform string) Builder {
	if b, ok := r.builders[platform]; ok {
		return b
	}
	return Generic{platform: platform}
}

// Build is shorthand for Resolve(platform).Build(blog).
func (r *Registry) Build(platform string, blog domain.BlogContent) string {
	return r.Resolve(platform).Build(blog)
}

func writeSource(sb *strings.Builder, blog domain.BlogContent) {
	sb.WriteString(fmt.Sprintf("Blog Title: %s\n", blog.Title))
	sb.WriteString(fmt.Sprintf("Blog Content: %s\n", blog.Content))
	sb.WriteString(fmt.Sprintf("Blog URL: %s\n\n", blog.URL))
}

func writeRequirements(sb *strings.Builder, items []string) {
	sb.WriteString("Requirements:\n")
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// TwitterThread asks for a numbered 3-5 tweet thread.
type TwitterThread struct{}

// Platform implements Builder.
func (TwitterThread) Platform() string { return domain.PlatformTwitter }

// Build implements Builder.
func (TwitterThread) Build(blog domain.BlogContent) string {
	var sb strings.Builder
	sb.WriteString("Create a Twitter thread based on the following blog content. ")
	sb.WriteString("The thread should tell a complete story and give the reader real value.\n\n")
	writeSource(&sb, blog)
	writeRequirements(&sb, []string{
		"Write a thread of 3-5 tweets",
		`Number every tweet as "1/n", "2/n" and so on`,
		"The first tweet hooks the reader and introduces the topic",
		"Middle tweets develop the main points and insights",
		"The final tweet gives a call-to-action or key takeaway",
		"Put relevant hashtags in the final tweet",
		"Each tweet must make sense on its own and flow into the next",
		"Use line breaks where they help readability",
	})
	sb.WriteString("Format the response as:\n")
	sb.WriteString("Tweet 1/n: [content]\n")
	sb.WriteString("Tweet 2/n: [content]\n")
	sb.WriteString("Tweet 3/n: [content]\n")
	sb.WriteString("...\n\n")
	sb.WriteString("Output only the thread, with no extra text or explanation.")
	return sb.String()
}

// LinkedInPost asks for a long-form professional post.
type LinkedInPost struct{}

// Platform implements Builder.
func (LinkedInPost) Platform() string { return domain.PlatformLinkedIn }

// Build implements Builder.
func (LinkedInPost) Build(blog domain.BlogContent) string {
	var sb strings.Builder
	sb.WriteString("Create a comprehensive LinkedIn post based on the following blog content. ")
	sb.WriteString("It should be a full social version that gives professionals substantial value.\n\n")
	writeSource(&sb, blog)
	writeRequirements(&sb, []string{
		"Write a detailed, professional post of 300-800 words",
		"Open with a strong hook",
		"Include 3-5 key insights or takeaways from the blog",
		"Add professional commentary or a personal perspective",
		"Use paragraphs and bullet points where appropriate",
		"End the body with 3-5 relevant hashtags",
		"Close with a question that invites engagement",
		"Keep the tone professional but conversational",
		fmt.Sprintf("Reference the original blog URL (%s)", blog.URL),
	})
	sb.WriteString("Output only the LinkedIn post, with no extra text or explanation.")
	return sb.String()
}

// Generic is used for platforms that have no dedicated builder.
type Generic struct {
	platform string
}

// Platform implements Builder.
func (g Generic) Platform() string { return g.platform }

// Build implements Builder.
func (g Generic) Build(blog domain.BlogContent) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Create an engaging social media post for %s based on the following blog content.\n\n", g.platform))
	writeSource(&sb, blog)
	sb.WriteString("Write content suited to the platform that gives value and drives engagement.")
	return sb.String()
}
