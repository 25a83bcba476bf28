package nlu

import "context"

// ScriptedOracle replays canned replies in order. Used by tests and as a
// drop-in when no API key is configured in development.
type ScriptedOracle struct {
	Replies []string
	Err     error
	next    int
	Calls   []string
}

func (s *ScriptedOracle) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.Calls = append(s.Calls, prompt)
	if s.Err != nil {
		return "", s.Err
	}
	if s.next >= len(s.Replies) {
		if len(s.Replies) == 0 {
			return "", context.DeadlineExceeded
		}
		return s.Replies[len(s.Replies)-1], nil
	}
	reply := s.Replies[s.next]
	s.next++
	return reply, nil
}
