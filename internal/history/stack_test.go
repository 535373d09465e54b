package history

import (
	"testing"

	"github.com/lgbarn/chesscore/internal/chess"
	"github.com/lgbarn/chesscore/internal/testutil"
)

// numbered returns distinct boards: board i has a white king on square i.
func numbered(n int) []*chess.Board {
	boards := make([]*chess.Board, n)
	for i := range boards {
		b := chess.NewBoard()
		b.Set(chess.MustSquare(i%8, i/8%8), chess.W(chess.King))
		if i >= 64 {
			b.ToMove = chess.Black
		}
		boards[i] = b
	}
	return boards
}

// checkInvariant asserts 0 <= current <= top < capacity.
func checkInvariant(t *testing.T, s *Stack) {
	t.Helper()
	if s.Current() < 0 || s.Current() > s.Top() || s.Top() >= s.Capacity() {
		t.Fatalf("invariant broken: current=%d top=%d capacity=%d", s.Current(), s.Top(), s.Capacity())
	}
}

func TestNew(t *testing.T) {
	initial := chess.NewInitialBoard()
	s := New(initial)

	testutil.AssertEqual(t, s.Current(), 0)
	testutil.AssertEqual(t, s.Top(), 0)
	testutil.AssertEqual(t, s.Capacity(), DefaultCapacity)
	testutil.AssertEqual(t, s.Policy(), RejectWhenFull)
	testutil.AssertFalse(t, s.CanUndo())
	testutil.AssertFalse(t, s.CanRedo())

	snap, ok := s.At(0)
	testutil.AssertTrue(t, ok)
	testutil.AssertBoardEqual(t, snap.Board(), initial)
	checkInvariant(t, s)
}

func TestNew_SnapshotIsACopy(t *testing.T) {
	initial := chess.NewInitialBoard()
	s := New(initial)
	initial.Clear(chess.Sq("e1"))

	snap, _ := s.At(0)
	testutil.AssertEqual(t, snap.Board().Get(chess.Sq("e1")), chess.W(chess.King))

	// Changing a returned board must not reach the stored snapshot either.
	snap.Board().Clear(chess.Sq("d1"))
	again, _ := s.At(0)
	testutil.AssertEqual(t, again.Board().Get(chess.Sq("d1")), chess.W(chess.Queen))
}

func TestOptions(t *testing.T) {
	tests := []struct {
		name         string
		opts         []Option
		wantCapacity int
		wantPolicy   Policy
	}{
		{"defaults", nil, DefaultCapacity, RejectWhenFull},
		{"capacity", []Option{WithCapacity(8)}, 8, RejectWhenFull},
		{"zero capacity ignored", []Option{WithCapacity(0)}, DefaultCapacity, RejectWhenFull},
		{"evict", []Option{WithPolicy(EvictOldest)}, DefaultCapacity, EvictOldest},
		{"both", []Option{WithCapacity(2), WithPolicy(EvictOldest)}, 2, EvictOldest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(chess.NewBoard(), tt.opts...)
			testutil.AssertEqual(t, s.Capacity(), tt.wantCapacity)
			testutil.AssertEqual(t, s.Policy(), tt.wantPolicy)
		})
	}
}

func TestPushUndoRedo(t *testing.T) {
	boards := numbered(4)
	s := New(boards[0])
	for _, b := range boards[1:] {
		testutil.AssertTrue(t, s.Push(b))
		checkInvariant(t, s)
	}
	testutil.AssertEqual(t, s.Current(), 3)
	testutil.AssertEqual(t, s.Top(), 3)

	out := chess.NewBoard()
	for want := 2; want >= 0; want-- {
		testutil.AssertTrue(t, s.Undo(out))
		testutil.AssertBoardEqual(t, out, boards[want])
		testutil.AssertEqual(t, s.Current(), want)
		checkInvariant(t, s)
	}

	sentinel := chess.NewInitialBoard()
	out = sentinel.Copy()
	testutil.AssertFalse(t, s.Undo(out), "undo past the first position")
	testutil.AssertBoardEqual(t, out, sentinel, "failed undo must leave the board alone")

	for want := 1; want <= 3; want++ {
		testutil.AssertTrue(t, s.Redo(out))
		testutil.AssertBoardEqual(t, out, boards[want])
	}
	out = sentinel.Copy()
	testutil.AssertFalse(t, s.Redo(out), "redo past the newest position")
	testutil.AssertBoardEqual(t, out, sentinel, "failed redo must leave the board alone")
}

func TestPush_TruncatesRedoBranch(t *testing.T) {
	boards := numbered(5)
	s := New(boards[0])
	s.Push(boards[1])
	s.Push(boards[2])
	s.Push(boards[3])

	out := chess.NewBoard()
	s.Undo(out)
	s.Undo(out)
	testutil.AssertEqual(t, s.Current(), 1)
	testutil.AssertTrue(t, s.CanRedo())

	testutil.AssertTrue(t, s.Push(boards[4]))
	testutil.AssertEqual(t, s.Current(), 2)
	testutil.AssertEqual(t, s.Top(), 2)
	testutil.AssertFalse(t, s.CanRedo())

	snap, _ := s.At(2)
	testutil.AssertBoardEqual(t, snap.Board(), boards[4])
	_, ok := s.At(3)
	testutil.AssertFalse(t, ok, "abandoned branch still reachable")
	checkInvariant(t, s)
}

func TestPush_RejectWhenFull(t *testing.T) {
	boards := numbered(5)
	s := New(boards[0], WithCapacity(3))

	testutil.AssertTrue(t, s.Push(boards[1]))
	testutil.AssertTrue(t, s.Push(boards[2]))
	testutil.AssertFalse(t, s.Push(boards[3]), "push beyond capacity")
	testutil.AssertFalse(t, s.Push(boards[4]), "push beyond capacity")

	testutil.AssertEqual(t, s.Len(), 3)
	testutil.AssertEqual(t, s.Current(), 2)
	for i := 0; i < 3; i++ {
		snap, _ := s.At(i)
		testutil.AssertBoardEqual(t, snap.Board(), boards[i])
	}
	checkInvariant(t, s)

	// After an undo the truncated branch frees a slot again.
	out := chess.NewBoard()
	s.Undo(out)
	testutil.AssertTrue(t, s.Push(boards[3]))
	snap, _ := s.At(2)
	testutil.AssertBoardEqual(t, snap.Board(), boards[3])
}

func TestPush_EvictOldest(t *testing.T) {
	boards := numbered(10)
	s := New(boards[0], WithCapacity(4), WithPolicy(EvictOldest))

	for _, b := range boards[1:] {
		testutil.AssertTrue(t, s.Push(b))
		checkInvariant(t, s)
	}

	testutil.AssertEqual(t, s.Len(), 4)
	testutil.AssertEqual(t, s.Current(), 3)
	for i := 0; i < 4; i++ {
		snap, _ := s.At(i)
		testutil.AssertBoardEqual(t, snap.Board(), boards[6+i], "slot %d", i)
	}

	// Only the newest positions can be undone to.
	out := chess.NewBoard()
	undos := 0
	for s.Undo(out) {
		undos++
	}
	testutil.AssertEqual(t, undos, 3)
	testutil.AssertBoardEqual(t, out, boards[6])
}

func TestPush_EvictOldestCapacityOne(t *testing.T) {
	boards := numbered(3)
	s := New(boards[0], WithCapacity(1), WithPolicy(EvictOldest))

	testutil.AssertTrue(t, s.Push(boards[1]))
	testutil.AssertTrue(t, s.Push(boards[2]))
	testutil.AssertEqual(t, s.Len(), 1)
	testutil.AssertFalse(t, s.CanUndo())

	snap, _ := s.At(0)
	testutil.AssertBoardEqual(t, snap.Board(), boards[2])
	checkInvariant(t, s)
}

func TestPolicy_String(t *testing.T) {
	testutil.AssertEqual(t, RejectWhenFull.String(), "reject")
	testutil.AssertEqual(t, EvictOldest.String(), "evict-oldest")
}
