// bot.go
package bots

import (
	"context"

	"github.com/notnil/chess"
)

// ChessBot is implemented by every move picker. BestMove returns nil when
// the side to move has no legal move.
type ChessBot interface {
	BestMove(ctx context.Context, game *chess.Game) (*chess.Move, error)
	Name() string
}

// gameMove maps a move found on another position back to the game's own
// move value.
func gameMove(game *chess.Game, m *chess.Move) *chess.Move {
	if m == nil {
		return nil
	}
	for _, valid := range game.ValidMoves() {
		if valid.S1() == m.S1() && valid.S2() == m.S2() && valid.Promo() == m.Promo() {
			return valid
		}
	}
	return nil
}
