package llm

// ChatMessage is a role-tagged turn in the shape chat-completion APIs expect.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoleUser tags caller-authored turns. Stored histories do not distinguish
// assistant-authored entries, so every turn is sent as a user turn rather
// than guessing an alternation.
const RoleUser = "user"

// BuildMessages maps a plain transcript onto role-tagged turns, preserving
// order.
func BuildMessages(messages []string) []ChatMessage {
	tagged := make([]ChatMessage, 0, len(messages))
	for _, m := range messages {
		tagged = append(tagged, ChatMessage{Role: RoleUser, Content: m})
	}
	return tagged
}
