package response_models

const (
	SlideTypeChoice       = "choice"
	SlideTypeIntro        = "intro"
	SlideTypeQuestion     = "question"
	SlideTypePersonalData = "personal_data"
	SlideTypeLoading      = "loading"
)

type SlideOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon,omitempty"`
}

// SlideConfig describes one screen of the funnel. The catalog is static
// configuration served to the client, not user data.
type SlideConfig struct {
	ID            int           `json:"id"`
	Type          string        `json:"type"`
	Title         string        `json:"title,omitempty"`
	Subtitle      string        `json:"subtitle,omitempty"`
	Question      string        `json:"question,omitempty"`
	Options       []SlideOption `json:"options,omitempty"`
	AnswerKey     string        `json:"answer_key,omitempty"`
	ButtonText    string        `json:"button_text,omitempty"`
	NoRetreat     bool          `json:"no_retreat,omitempty"`
	RequiredKeys  []string      `json:"required_keys,omitempty"`
	NoAutoAdvance bool          `json:"no_auto_advance,omitempty"`
}
