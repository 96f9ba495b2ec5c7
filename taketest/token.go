package taketest

import "sync"

// Recorder issues tokens and accumulates their drop/clone counts.
type Recorder struct {
	mu          sync.Mutex
	drops       map[string]int
	clones      map[string]int
	doubleDrops int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		drops:  make(map[string]int),
		clones: make(map[string]int),
	}
}

// Token issues a named token. Clones of a token share its name and report
// into the same counters.
func (r *Recorder) Token(name string) *Token {
	return &Token{rec: r, name: name}
}

// Drops returns how many times tokens with this name have been dropped.
func (r *Recorder) Drops(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.drops[name]
}

// Clones returns how many times tokens with this name have been cloned.
func (r *Recorder) Clones(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clones[name]
}

// TotalDrops returns the drop count across all token names.
func (r *Recorder) TotalDrops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.drops {
		n += c
	}
	return n
}

// NoneDropped reports whether no token has been dropped yet.
func (r *Recorder) NoneDropped() bool {
	return r.TotalDrops() == 0
}

// DoubleDrops returns how many times any single token instance was dropped
// more than once. Any nonzero value is a double-destruction bug.
func (r *Recorder) DoubleDrops() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.doubleDrops
}

// Token is a tracked payload. It implements the library's Dropper and
// Cloner contracts structurally.
type Token struct {
	rec     *Recorder
	name    string
	dropped bool
}

// Name returns the token's name.
func (t *Token) Name() string {
	return t.name
}

// Dropped reports whether this token instance has been dropped.
func (t *Token) Dropped() bool {
	return t.dropped
}

// Drop records a destructor invocation. A second Drop on the same instance
// is counted separately as a double drop.
func (t *Token) Drop() {
	t.rec.mu.Lock()
	defer t.rec.mu.Unlock()
	if t.dropped {
		t.rec.doubleDrops++
	}
	t.dropped = true
	t.rec.drops[t.name]++
}

// Clone records a duplication and returns a fresh instance with the same
// name.
func (t *Token) Clone() *Token {
	t.rec.mu.Lock()
	defer t.rec.mu.Unlock()
	t.rec.clones[t.name]++
	return &Token{rec: t.rec, name: t.name}
}
