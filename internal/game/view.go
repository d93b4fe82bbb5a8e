// internal/game/view.go
package game

import (
	"github.com/google/uuid"

	engine "github.com/pdillon/blockfall/engine"
)

// ViewPiece describes the falling piece for clients: the kind name plus
// the absolute cell coordinates it currently covers.
type ViewPiece struct {
	Kind  string   `json:"kind"`
	X     int8     `json:"x"`
	Y     int8     `json:"y"`
	Cells [][2]int `json:"cells"`
}

// ViewState is a full client-facing snapshot of a game. Board rows are
// the raw bit rows, least significant bit leftmost, row 0 at the top.
type ViewState struct {
	GameID   uuid.UUID `json:"gameId"`
	Started  bool      `json:"started"`
	Paused   bool      `json:"paused"`
	GameOver bool      `json:"gameOver"`
	Score    uint32    `json:"score"`
	TickMs   uint16    `json:"tickMs"`
	TickID   int       `json:"tickId"`

	Rows  [engine.BoardHeight]uint16 `json:"rows"`
	Piece *ViewPiece                 `json:"piece,omitempty"`
}

// viewState builds the snapshot from the live session.
// Assumes lock is held by caller.
func (g *Game) viewState() ViewState {
	v := ViewState{
		GameID:   g.ID,
		Started:  g.Started,
		Paused:   g.Engine.IsPaused(),
		GameOver: g.Engine.IsOver(),
		Score:    g.Engine.CurrentScore(),
		TickMs:   g.Engine.TickMs,
		TickID:   g.TickID,
		Rows:     g.Engine.BoardSnapshot().Rows,
	}

	if !v.GameOver {
		p := g.Engine.ActivePiece()
		vp := &ViewPiece{Kind: p.Kind.String(), X: p.X, Y: p.Y}
		for dy := uint8(0); dy < p.Shape.H; dy++ {
			for dx := uint8(0); dx < p.Shape.W; dx++ {
				if p.Shape.Cell(dx, dy) {
					vp.Cells = append(vp.Cells, [2]int{int(p.X) + int(dx), int(p.Y) + int(dy)})
				}
			}
		}
		v.Piece = vp
	}
	return v
}
