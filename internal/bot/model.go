package bot

// ActionKind tells the transport layer what kind of reply to send.
type ActionKind string

const (
	ActionIgnored ActionKind = "IGNORED"
	ActionPrompt  ActionKind = "PROMPT"
	ActionSummary ActionKind = "SUMMARY"
)

// Action is the outbound result of handling one inbound message.
type Action struct {
	Kind ActionKind `json:"type"`
	Text string     `json:"text,omitempty"`
}

func Ignored() Action {
	return Action{Kind: ActionIgnored}
}

func Prompt(text string) Action {
	return Action{Kind: ActionPrompt, Text: text}
}

func Summary(text string) Action {
	return Action{Kind: ActionSummary, Text: text}
}
