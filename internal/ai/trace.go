package ai

import "github.com/google/uuid"

// Decision is one recorded command the engine issued, correlated by a UUID
// the way internal/experience's collector stamps experience records: a
// replay or a test can look up why a particular Build/Dismantle/Attack
// command went out by its DecisionID.
type Decision struct {
	ID      string
	Kind    string
	TimeMS  int64
	Summary string
}

// Tracer keeps a bounded ring of the engine's most recent decisions. It
// never blocks or grows unbounded: once Capacity is reached the oldest
// decision is dropped to make room for the newest.
type Tracer struct {
	capacity int
	recent   []Decision
}

func NewTracer(capacity int) *Tracer {
	if capacity <= 0 {
		capacity = 64
	}
	return &Tracer{capacity: capacity}
}

// Record stamps a fresh DecisionID, appends the decision to the ring, and
// returns the ID so the caller can attach it to whatever host command it is
// about to issue.
func (t *Tracer) Record(kind string, nowMS int64, summary string) string {
	id := uuid.New().String()
	t.recent = append(t.recent, Decision{ID: id, Kind: kind, TimeMS: nowMS, Summary: summary})
	if len(t.recent) > t.capacity {
		t.recent = t.recent[len(t.recent)-t.capacity:]
	}
	return id
}

// Recent returns every decision still held in the ring, oldest first.
func (t *Tracer) Recent() []Decision {
	out := make([]Decision, len(t.recent))
	copy(out, t.recent)
	return out
}
