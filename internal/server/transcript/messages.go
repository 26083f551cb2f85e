package transcript

import "github.com/dmitrijs2005/picdiary/internal/provider/llm"

// Messages converts entries into the model's message list.
func Messages(entries []Entry) []llm.Message {
	out := make([]llm.Message, len(entries))
	for i, e := range entries {
		out[i] = llm.Message{Role: e.Role, Content: e.Text}
	}
	return out
}
