package engine

import "github.com/notnil/chess"

// Position is the mutable game state the engine searches over. M is the
// move type; the engine never inspects a move except through the methods
// below. White is the maximizing side.
type Position[M any] interface {
	LegalMoves() ([]M, error)
	// Apply and Undo mutate the position in place. Undo must exactly
	// reverse the most recent Apply.
	Apply(m M) error
	Undo() error

	IsGameOver() bool
	IsCheckmate() bool
	IsDrawn() bool
	SideToMove() chess.Color

	PieceAt(sq chess.Square) chess.Piece
	Attacks(side chess.Color, sq chess.Square) bool

	MovedPiece(m M) chess.PieceType
	IsCastling(m M) bool

	// Clone returns an independent copy that may be searched from another
	// goroutine.
	Clone() Position[M]
}

func maximizingToMove[M any](pos Position[M]) bool {
	return pos.SideToMove() == chess.White
}
