// Package transcript keeps the in-progress interview exchanges, one per
// session. Transcripts live in memory only and are dropped after a period of
// inactivity.
package transcript

import (
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/picdiary/internal/common"
	"github.com/google/uuid"
)

// Roles of transcript entries.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Entry is one (role, text) line of a transcript.
type Entry struct {
	Role string
	Text string
}

// Seed builds the two-entry seed every transcript starts from.
func Seed(persona, openingNote string) []Entry {
	return []Entry{
		{Role: RoleSystem, Text: persona},
		{Role: RoleSystem, Text: openingNote},
	}
}

// TrimSystemPrefix returns entries without their leading system-role run.
// The result shares no memory with entries.
func TrimSystemPrefix(entries []Entry) []Entry {
	i := 0
	for i < len(entries) && entries[i].Role == RoleSystem {
		i++
	}
	out := make([]Entry, len(entries)-i)
	copy(out, entries[i:])
	return out
}

type session struct {
	// step serializes whole interview steps of this session.
	step sync.Mutex

	owner   string
	entries []Entry
	touched time.Time
	// closed marks a session closed while a step was running. The step
	// still sees it; Exclusive removes it once the step ends.
	closed bool
}

// Store is a set of session-scoped transcripts. It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	seed     []Entry
	ttl      time.Duration
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates an empty store. Every new or reset transcript starts with
// a copy of seed. Sessions idle for longer than ttl are removed by Sweep;
// ttl <= 0 disables expiry.
func NewStore(seed []Entry, ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		seed:     append([]Entry(nil), seed...),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) seedCopy() []Entry {
	return append(make([]Entry, 0, len(s.seed)+8), s.seed...)
}

// get returns the session and marks it as used. Callers hold s.mu.
func (s *Store) get(id string) (*session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, common.ErrSessionNotFound
	}
	sess.touched = s.now()
	return sess, nil
}

// Create opens a new seeded transcript owned by owner and returns its id.
func (s *Store) Create(owner string) string {
	id := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		owner:   owner,
		entries: s.seedCopy(),
		touched: s.now(),
	}
	return id
}

// Reset replaces the transcript contents with the seed.
func (s *Store) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.entries = s.seedCopy()
	return nil
}

// Append adds one entry. The role must not be blank.
func (s *Store) Append(id, role, text string) error {
	if strings.TrimSpace(role) == "" {
		return common.ErrorValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return err
	}
	sess.entries = append(sess.entries, Entry{Role: role, Text: text})
	return nil
}

// Snapshot returns a copy of the transcript. With excludeSystemPrefix the
// leading system entries are dropped.
func (s *Store) Snapshot(id string, excludeSystemPrefix bool) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	if excludeSystemPrefix {
		return TrimSystemPrefix(sess.entries), nil
	}
	out := make([]Entry, len(sess.entries))
	copy(out, sess.entries)
	return out, nil
}

// Owner reports who opened the session.
func (s *Store) Owner(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.closed {
		return "", common.ErrSessionNotFound
	}
	return sess.owner, nil
}

// live reports whether sess is still the open session stored under id.
func (s *Store) live(id string, sess *session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id] == sess && !sess.closed
}

// Exclusive runs fn while holding the session's step lock, so at most one
// answer or finalize runs per session at a time. The store itself stays
// available to other sessions while fn runs. A session closed while fn runs
// is removed only after fn returns.
func (s *Store) Exclusive(id string, fn func() error) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && !sess.closed {
		sess.touched = s.now()
	}
	s.mu.Unlock()
	if !ok || sess.closed {
		return common.ErrSessionNotFound
	}

	sess.step.Lock()
	defer sess.step.Unlock()

	if !s.live(id, sess) {
		return common.ErrSessionNotFound
	}

	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sess.closed && s.sessions[id] == sess {
			delete(s.sessions, id)
		}
	}()
	return fn()
}

// Close removes the session. When a step is running, removal waits for it
// to finish and the session only stops accepting new steps.
func (s *Store) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	if !sess.step.TryLock() {
		sess.closed = true
		return
	}
	delete(s.sessions, id)
	sess.step.Unlock()
}

// Sweep drops sessions idle since before now-ttl and returns how many were
// removed. Sessions with a running step are never idle.
func (s *Store) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if !sess.touched.Before(cutoff) || !sess.step.TryLock() {
			continue
		}
		delete(s.sessions, id)
		sess.step.Unlock()
		n++
	}
	return n
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, sess := range s.sessions {
		if !sess.closed {
			n++
		}
	}
	return n
}
