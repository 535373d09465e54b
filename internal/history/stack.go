// Package history keeps a bounded undo/redo sequence of board snapshots.
package history

import "github.com/lgbarn/chesscore/internal/chess"

// DefaultCapacity is the number of snapshots kept when no capacity is given.
const DefaultCapacity = 1024

// Policy decides what Push does once every slot is in use.
type Policy int

const (
	// RejectWhenFull ignores the push: the newest position is not recorded
	// and Push returns false. Existing entries and cursors are untouched.
	RejectWhenFull Policy = iota
	// EvictOldest drops the oldest snapshot to make room, so the stack
	// always holds the most recent positions.
	EvictOldest
)

// String returns the string representation of a policy.
func (p Policy) String() string {
	if p == EvictOldest {
		return "evict-oldest"
	}
	return "reject"
}

// Snapshot is an immutable copy of a board taken at a point in time.
type Snapshot struct {
	board chess.Board
}

// Board returns a copy of the recorded board.
func (s Snapshot) Board() *chess.Board {
	b := s.board
	return &b
}

// Stack is an ordered sequence of snapshots with a current position and a
// redo ceiling. It always satisfies 0 <= current <= top < capacity.
type Stack struct {
	snapshots []Snapshot // len(snapshots) == top+1
	current   int
	capacity  int
	policy    Policy
}

// Option configures a Stack.
type Option func(*Stack)

// WithCapacity sets the maximum number of snapshots, the initial one
// included. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(s *Stack) {
		if n >= 1 {
			s.capacity = n
		}
	}
}

// WithPolicy sets the capacity exhaustion policy.
func WithPolicy(p Policy) Option {
	return func(s *Stack) {
		s.policy = p
	}
}

// New creates a stack seeded with the initial board at index 0.
func New(initial *chess.Board, opts ...Option) *Stack {
	s := &Stack{
		capacity: DefaultCapacity,
		policy:   RejectWhenFull,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshots = make([]Snapshot, 1, min(s.capacity, 64))
	s.snapshots[0] = Snapshot{board: *initial}
	return s
}

// Push records board as the newest position. Any positions beyond the
// current one (an abandoned redo branch) are discarded first. When the
// stack is full the configured policy applies; Push reports whether the
// board was recorded.
func (s *Stack) Push(board *chess.Board) bool {
	if s.current < s.top() {
		s.snapshots = s.snapshots[:s.current+1]
	}

	if len(s.snapshots) >= s.capacity {
		if s.policy != EvictOldest {
			return false
		}
		if s.capacity == 1 {
			s.snapshots[0] = Snapshot{board: *board}
			return true
		}
		copy(s.snapshots, s.snapshots[1:])
		s.snapshots = s.snapshots[:len(s.snapshots)-1]
	}

	s.snapshots = append(s.snapshots, Snapshot{board: *board})
	s.current = s.top()
	return true
}

// Undo steps back one position and copies it into out. It returns false,
// leaving out untouched, when already at the first position.
func (s *Stack) Undo(out *chess.Board) bool {
	if s.current == 0 {
		return false
	}
	s.current--
	*out = s.snapshots[s.current].board
	return true
}

// Redo steps forward one position and copies it into out. It returns
// false, leaving out untouched, when there is nothing to redo.
func (s *Stack) Redo(out *chess.Board) bool {
	if s.current >= s.top() {
		return false
	}
	s.current++
	*out = s.snapshots[s.current].board
	return true
}

// CanUndo reports whether Undo would succeed.
func (s *Stack) CanUndo() bool {
	return s.current > 0
}

// CanRedo reports whether Redo would succeed.
func (s *Stack) CanRedo() bool {
	return s.current < s.top()
}

// Current returns the index of the position shown to the player.
func (s *Stack) Current() int {
	return s.current
}

// Top returns the redo ceiling: the index of the newest recorded position.
func (s *Stack) Top() int {
	return s.top()
}

// Len returns the number of recorded snapshots, top+1.
func (s *Stack) Len() int {
	return len(s.snapshots)
}

// Capacity returns the maximum number of snapshots.
func (s *Stack) Capacity() int {
	return s.capacity
}

// Policy returns the capacity exhaustion policy.
func (s *Stack) Policy() Policy {
	return s.policy
}

// At returns the snapshot at index i, if recorded.
func (s *Stack) At(i int) (Snapshot, bool) {
	if i < 0 || i >= len(s.snapshots) {
		return Snapshot{}, false
	}
	return s.snapshots[i], true
}

func (s *Stack) top() int {
	return len(s.snapshots) - 1
}
