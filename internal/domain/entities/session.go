package entities

// ConversationState is the per-user conversational state.
type ConversationState string

const (
	StateIdle           ConversationState = "idle"
	StateAwaitingAnswer ConversationState = "awaiting_answer"
)

// Session is the mutable per-user training state. Exactly one Session
// exists per user; the session store serializes access to it.
type Session struct {
	Level     Level
	Direction Direction
	Cursor    int
	Current   *VocabItem // set only while awaiting an answer
	State     ConversationState
}

// NewSession returns a session with the default settings.
func NewSession() *Session {
	return &Session{
		Level:     LevelBeginner,
		Direction: DirectionENToAR,
		Cursor:    0,
		Current:   nil,
		State:     StateIdle,
	}
}

// Reset restores the session to its defaults.
func (s *Session) Reset() {
	*s = *NewSession()
}

// SetLevel changes the level and restarts the cycle at its first item.
// A pending question keeps the old item until the next train/next.
func (s *Session) SetLevel(level Level) {
	s.Level = level
	s.Cursor = 0
}
