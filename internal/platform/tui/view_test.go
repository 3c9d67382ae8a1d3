package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

func testSnapshot(t *testing.T) tetris.Snapshot {
	t.Helper()
	o, ok := tetris.Lookup(tetris.TagO)
	if !ok {
		t.Fatal("O piece missing from catalog")
	}
	i, _ := tetris.Lookup(tetris.TagI)

	var b tetris.Board
	b[tetris.BoardHeight-1][0] = tetris.TagZ

	active := tetris.NewPiece(o)
	ghost := active.Moved(0, tetris.BoardHeight-2)
	return tetris.Snapshot{
		Board:    b,
		Active:   active,
		Next:     tetris.NewPiece(i),
		Ghost:    ghost,
		Score:    1200,
		Level:    3,
		Lines:    21,
		Interval: 512 * time.Millisecond,
		State:    tetris.StateRunning,
	}
}

func TestDrawGameLayout(t *testing.T) {
	s := core.NewScreen(PlayfieldW, PlayfieldH)
	keys := NewKeyMap(config.DefaultKeyBindings())
	DrawGame(s, testSnapshot(t), keys)

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("well corner = %q, want '┌'", got)
	}
	if got := s.Get(wellW-1, wellH-1); got != '┘' {
		t.Errorf("well bottom corner = %q, want '┘'", got)
	}

	// Active O at x=4 starts at screen column 1+4*cellW on the first board row.
	cell := s.GetCell(1+4*cellW, 1)
	if cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("active cell = %+v, want yellow block", cell)
	}

	settled := s.GetCell(1, tetris.BoardHeight)
	if settled.Rune != '█' || settled.Color != core.ColorRed {
		t.Errorf("settled Z cell = %+v, want red block", settled)
	}

	ghost := s.GetCell(1+4*cellW, tetris.BoardHeight)
	if ghost.Rune != '░' {
		t.Errorf("ghost cell = %q, want '░'", ghost.Rune)
	}

	text := s.String()
	for _, want := range []string{"NEXT", "SCORE", "1200", "LEVEL", "LINES", "21", "512ms"} {
		if !strings.Contains(text, want) {
			t.Errorf("side panel missing %q", want)
		}
	}
	if strings.Contains(text, "PAUSED") || strings.Contains(text, "GAME OVER") {
		t.Error("running game should have no overlay")
	}
}

func TestDrawGameOverlays(t *testing.T) {
	keys := NewKeyMap(config.DefaultKeyBindings())

	tests := []struct {
		state tetris.State
		want  []string
	}{
		{tetris.StatePaused, []string{"PAUSED", "p/esc resume"}},
		{tetris.StateGameOver, []string{"GAME OVER", "score 1200", "r restart"}},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			snap := testSnapshot(t)
			snap.State = tc.state

			s := core.NewScreen(PlayfieldW, PlayfieldH)
			DrawGame(s, snap, keys)
			text := s.String()
			for _, want := range tc.want {
				if !strings.Contains(text, want) {
					t.Errorf("overlay missing %q:\n%s", want, text)
				}
			}
		})
	}
}

func TestDrawGameOverHidesActivePiece(t *testing.T) {
	snap := testSnapshot(t)
	snap.State = tetris.StateGameOver
	snap.Board = tetris.Board{}

	s := core.NewScreen(PlayfieldW, PlayfieldH)
	DrawGame(s, snap, NewKeyMap(config.DefaultKeyBindings()))

	if got := s.GetCell(1+4*cellW, 1); got.Rune == '█' {
		t.Error("active piece drawn after game over")
	}
}

func TestStatsRows(t *testing.T) {
	st := &tetris.Stats{}
	st.Observe(tetris.Event{Kind: tetris.EventPlaced, Piece: tetris.TagT, Lines: 4}, tetris.Snapshot{})

	rows := statsRows(st)
	if len(rows) != len(tetris.Catalog())+4 {
		t.Fatalf("got %d rows, want %d", len(rows), len(tetris.Catalog())+4)
	}

	counts := make(map[string]string)
	for _, r := range rows {
		counts[r[0]] = r[1]
	}
	if counts["T"] != "1" || counts["I"] != "0" || counts["tetris"] != "1" || counts["single"] != "0" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

// containsPlain reports whether s contains want once ANSI styling is removed.
func containsPlain(s, want string) bool {
	return strings.Contains(ansi.Strip(s), want)
}

func TestDrawGameSizesScreenAndCentersPreview(t *testing.T) {
	s := core.NewScreen(0, 0)
	DrawGame(s, testSnapshot(t), NewKeyMap(config.DefaultKeyBindings()))

	if s.Width() != PlayfieldW || s.Height() != PlayfieldH {
		t.Fatalf("screen is %dx%d, want %dx%d", s.Width(), s.Height(), PlayfieldW, PlayfieldH)
	}

	// The I piece is 8 columns wide in a 12 column box: 2 free columns each side.
	row := []rune(s.Row(2))
	for x := sideX + 1; x < sideX+sideW-1; x++ {
		inside := x >= sideX+3 && x < sideX+11
		if got := row[x] == '█'; got != inside {
			t.Errorf("preview column %d filled = %v, want %v (row %q)", x, got, inside, string(row))
		}
	}
}
