package domain

// BlogContent is the cleaned article extracted from a single blog URL.
type BlogContent struct {
	URL     string
	Title   string
	Content string
	Excerpt string
}

// SocialPost is the generated copy for one target platform.
type SocialPost struct {
	Platform string
	Content  string
}

// Platform names understood by the prompt registry.
const (
	PlatformLinkedIn  = "linkedin"
	PlatformTwitter   = "twitter"
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
)

// DefaultTargets is the platform pair posts are generated for.
func DefaultTargets() []string {
	return []string{PlatformLinkedIn, PlatformTwitter}
}
