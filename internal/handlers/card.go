package handlers

import "net/http"

// AgentCard is the discovery document served at /.well-known/agent.json.
type AgentCard struct {
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	URL                string         `json:"url"`
	Version            string         `json:"version"`
	Provider           CardProvider   `json:"provider"`
	Capabilities       Capabilities   `json:"capabilities"`
	Authentication     Authentication `json:"authentication"`
	DefaultInputModes  []string       `json:"defaultInputModes"`
	DefaultOutputModes []string       `json:"defaultOutputModes"`
	Skills             []Skill        `json:"skills"`
}

// CardProvider names the organization behind the agent.
type CardProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// Capabilities advertises optional protocol features.
type Capabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications"`
	StateTransitionHistory bool `json:"stateTransitionHistory"`
}

// Authentication lists accepted schemes; the agent accepts anonymous calls.
type Authentication struct {
	Schemes     []string `json:"schemes"`
	Credentials *string  `json:"credentials"`
}

// Skill is one capability offered by the agent.
type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Examples    []string `json:"examples"`
	InputModes  []string `json:"inputModes"`
	OutputModes []string `json:"outputModes"`
}

// NewAgentCard builds the card advertised under agentURL.
func NewAgentCard(agentURL string) AgentCard {
	textOnly := []string{"text/plain"}
	return AgentCard{
		Name:        AgentName,
		Description: "Transforms blog posts into engaging social media content. Automatically generates Twitter threads and comprehensive LinkedIn posts from any blog URL.",
		URL:         agentURL,
		Version:     "1.0.0",
		Provider: CardProvider{
			Organization: "PostCraft",
			URL:          agentURL,
		},
		Capabilities: Capabilities{
			StateTransitionHistory: true,
		},
		Authentication:     Authentication{Schemes: []string{}},
		DefaultInputModes:  textOnly,
		DefaultOutputModes: textOnly,
		Skills: []Skill{
			{
				ID:          "generate_social_posts",
				Name:        "Generate Social Media Posts",
				Description: "Analyzes a blog post URL and creates Twitter threads and comprehensive LinkedIn posts",
				Tags:        []string{"social-media", "content", "blog", "twitter", "linkedin"},
				Examples: []string{
					"https://example.com/blog/my-post",
					"Convert https://techblog.com/ai-trends to social media",
					"Create posts from https://medium.com/my-article",
				},
				InputModes:  textOnly,
				OutputModes: textOnly,
			},
		},
	}
}

// AgentCard serves the discovery document.
func (h *Handler) AgentCard(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.card)
}
