package engine

import "testing"

// TestRowScoreTable verifies the award per simultaneous clear count.
func TestRowScoreTable(t *testing.T) {
	want := [5]uint32{0, 100, 300, 500, 800}
	for n := uint8(0); n <= 4; n++ {
		if got := RowScore(n); got != want[n] {
			t.Errorf("RowScore(%d) = %d, want %d", n, got, want[n])
		}
	}
}

// TestRowScoreOutOfRange verifies more than four rows is a contract
// violation that fails loudly.
func TestRowScoreOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RowScore(5) did not panic")
		}
	}()
	RowScore(5)
}

// clearRows locks a piece that completes n rows at the bottom of an
// otherwise prepared board and returns the session afterwards.
func clearRows(t *testing.T, n int) Session {
	t.Helper()
	s := NewSession(42, DefaultRules())
	for y := BoardHeight - n; y < BoardHeight; y++ {
		fillRowExcept(&s.Board, y, 4)
	}
	// A vertical I fills the column-4 gap across up to four rows.
	s.Active = Piece{Kind: KindI, Shape: BaseShape(KindI).Rotate(), X: 4, Y: int8(BoardHeight - 4)}
	s.Tick() // cannot move down; locks and clears
	return s
}

// TestScorePerClearCount verifies clearing 1-4 rows in one lock awards
// 100, 300, 500, 800.
func TestScorePerClearCount(t *testing.T) {
	want := map[int]uint32{1: 100, 2: 300, 3: 500, 4: 800}
	for n, score := range want {
		s := clearRows(t, n)
		if s.Score != score {
			t.Errorf("clearing %d rows: Score = %d, want %d", n, s.Score, score)
		}
	}
}

// TestNoClearNoScore verifies a non-clearing lock leaves score and speed
// unchanged.
func TestNoClearNoScore(t *testing.T) {
	s := clearRows(t, 0)
	if s.Score != 0 {
		t.Errorf("Score = %d after non-clearing lock, want 0", s.Score)
	}
	if s.TickMs != DefaultRules().InitialTickMs {
		t.Errorf("TickMs = %d after non-clearing lock, want %d", s.TickMs, DefaultRules().InitialTickMs)
	}
}

// TestSpeedFloor verifies the interval decreases by the fixed step per
// clearing lock and never drops below the minimum.
func TestSpeedFloor(t *testing.T) {
	s := NewSession(42, DefaultRules())
	r := DefaultRules()

	for i := 0; i < 100; i++ {
		prev := s.TickMs
		s.applyLineClears(1)
		if s.TickMs < r.MinTickMs {
			t.Fatalf("TickMs = %d fell below the %d floor", s.TickMs, r.MinTickMs)
		}
		if prev > r.MinTickMs && s.TickMs != prev-r.TickStepMs && s.TickMs != r.MinTickMs {
			t.Fatalf("TickMs stepped %d -> %d, want -%d or floor", prev, s.TickMs, r.TickStepMs)
		}
	}
	if s.TickMs != r.MinTickMs {
		t.Errorf("TickMs = %d after 100 clears, want the %d floor", s.TickMs, r.MinTickMs)
	}
}

// TestZeroRulesPlayable verifies a zero Rules value still yields a
// running session with the default starting interval.
func TestZeroRulesPlayable(t *testing.T) {
	s := NewSession(42, Rules{})
	if s.TickMs != DefaultRules().InitialTickMs {
		t.Errorf("TickMs = %d with zero rules, want default %d", s.TickMs, DefaultRules().InitialTickMs)
	}
	s.applyLineClears(4)
	if s.Score != 800 {
		t.Errorf("Score = %d, want 800", s.Score)
	}
}
