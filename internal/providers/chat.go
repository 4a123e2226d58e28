package providers

import "context"

// ChatSession is a client-side, append-only conversation history for a
// Gemini client. The service is stateless: every turn retransmits the full
// history.
type ChatSession struct {
	client  *Gemini
	history []Content
}

// NewChatSession starts an empty conversation.
func NewChatSession(client *Gemini) *ChatSession {
	return &ChatSession{client: client}
}

// Send appends the user parts to the history and requests the next model
// turn. On failure the user parts are rolled back so the history only ever
// holds completed turns.
func (s *ChatSession) Send(ctx context.Context, parts []Part) (*GenerateResponse, error) {
	s.history = append(s.history, Content{Role: "user", Parts: parts})

	response, err := s.client.generate(ctx, s.history)
	if err != nil {
		s.history = s.history[:len(s.history)-1]
		return nil, err
	}

	if len(response.Candidates) > 0 {
		reply := response.Candidates[0].Content
		if reply.Role == "" {
			reply.Role = "model"
		}
		s.history = append(s.history, reply)
	}
	return response, nil
}

// History returns the conversation so far.
func (s *ChatSession) History() []Content {
	return s.history
}
