package intake

import (
	"sync"
	"time"
)

// TurnRole tags who produced a conversation turn.
type TurnRole string

const (
	TurnRoleUser      TurnRole = "user"
	TurnRoleAssistant TurnRole = "assistant"
)

// Turn is one utterance in the conversation. Immutable once appended.
type Turn struct {
	Role TurnRole
	Text string
	At   time.Time
}

// State is the turn-policy state of a session.
type State string

const (
	// StateIdle means no draft is active: session start or just after finalize.
	StateIdle State = "idle"
	// StateCollecting means a draft is in progress and incomplete.
	StateCollecting State = "collecting"
)

// Session is the explicit per-conversation state passed into every intake
// call and returned updated. Draft and history live only in memory and are
// scoped to the active draft.
type Session struct {
	UserID  uint
	State   State
	Draft   Draft
	History []Turn
}

// NewSession returns an idle session for the given user.
func NewSession(userID uint) Session {
	return Session{UserID: userID, State: StateIdle}
}

// appendTurn returns the session with the turn appended to its history.
func (s Session) appendTurn(role TurnRole, text string) Session {
	s.History = append(s.History[:len(s.History):len(s.History)], Turn{
		Role: role,
		Text: text,
		At:   time.Now(),
	})
	return s
}

// resetDraft clears the draft and history after a finalize.
func (s Session) resetDraft() Session {
	s.Draft = Draft{}
	s.History = nil
	s.State = StateIdle
	return s
}

// Registry hands out sessions one turn at a time. A session with a turn in
// flight rejects further submissions until the turn completes.
type Registry struct {
	mu    sync.Mutex
	slots map[uint]*slot
}

type slot struct {
	busy    bool
	session Session
}

// NewRegistry constructs an empty session registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[uint]*slot)}
}

// ErrBusy is returned by Acquire while the session already has a turn in flight.
type busyError struct{}

func (busyError) Error() string { return "session has a turn in flight" }

var ErrBusy error = busyError{}

// Acquire returns the current session for the user and marks it busy. The
// caller must invoke exactly one of Commit or Release when the turn is done.
func (r *Registry) Acquire(userID uint) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sl, ok := r.slots[userID]
	if !ok {
		sl = &slot{session: NewSession(userID)}
		r.slots[userID] = sl
	}
	if sl.busy {
		return Session{}, ErrBusy
	}
	sl.busy = true
	return sl.session, nil
}

// Commit stores the updated session and clears the busy flag.
func (r *Registry) Commit(userID uint, session Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sl, ok := r.slots[userID]; ok {
		sl.session = session
		sl.busy = false
	}
}

// Release clears the busy flag without updating the session, for turns that
// failed before producing a new state.
func (r *Registry) Release(userID uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if sl, ok := r.slots[userID]; ok {
		sl.busy = false
	}
}
