// Package game adapts github.com/notnil/chess to the engine's Position
// contract.
package game

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"

	"chessengine/engine"
)

var (
	ErrIllegalMove   = errors.New("illegal move")
	ErrNothingToUndo = errors.New("no move to undo")
)

// Board is a mutable position backed by a stack of immutable
// chess.Position values. Apply pushes, Undo pops, so an undo always
// restores the exact previous state including castling and en passant
// rights.
type Board struct {
	history []*chess.Position
}

var _ engine.Position[*chess.Move] = (*Board)(nil)

// NewBoard parses a FEN string.
func NewBoard(fen string) (b *Board, err error) {
	// the chess package may panic on positions it cannot represent, such as
	// a missing king
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, fmt.Errorf("%w: %v", engine.ErrInvalidPosition, r)
		}
	}()
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInvalidPosition, err)
	}
	return FromPosition(chess.NewGame(opt).Position())
}

func NewStartingBoard() *Board {
	return &Board{history: []*chess.Position{chess.StartingPosition()}}
}

// FromPosition wraps pos after checking that it can be searched.
func FromPosition(pos *chess.Position) (*Board, error) {
	if pos == nil {
		return nil, fmt.Errorf("%w: nil position", engine.ErrInvalidPosition)
	}
	if err := validate(pos); err != nil {
		return nil, err
	}
	return &Board{history: []*chess.Position{pos}}, nil
}

func validate(pos *chess.Position) error {
	board := pos.Board()
	kings := map[chess.Color]int{}
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if p := board.Piece(sq); p.Type() == chess.King {
			kings[p.Color()]++
		}
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return fmt.Errorf("%w: want one king per side, got white=%d black=%d",
			engine.ErrInvalidPosition, kings[chess.White], kings[chess.Black])
	}
	waiting := pos.Turn().Other()
	if inCheck(board, waiting) {
		return fmt.Errorf("%w: side %s is in check but not to move", engine.ErrInvalidPosition, waiting)
	}
	return nil
}

// Position returns the current position.
func (b *Board) Position() *chess.Position {
	return b.history[len(b.history)-1]
}

// Ply is the number of moves applied since the board was created.
func (b *Board) Ply() int {
	return len(b.history) - 1
}

// String returns the current position as FEN.
func (b *Board) String() string {
	return b.Position().String()
}

func (b *Board) LegalMoves() ([]*chess.Move, error) {
	return b.Position().ValidMoves(), nil
}

// Apply plays m. The move is matched by value against the legal moves of
// the current position, so moves decoded elsewhere are accepted.
func (b *Board) Apply(m *chess.Move) error {
	if m == nil {
		return fmt.Errorf("%w: nil move", ErrIllegalMove)
	}
	pos := b.Position()
	for _, legal := range pos.ValidMoves() {
		if legal.S1() == m.S1() && legal.S2() == m.S2() && legal.Promo() == m.Promo() {
			b.history = append(b.history, pos.Update(legal))
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, pos)
}

func (b *Board) Undo() error {
	if len(b.history) == 1 {
		return ErrNothingToUndo
	}
	b.history[len(b.history)-1] = nil
	b.history = b.history[:len(b.history)-1]
	return nil
}

func (b *Board) IsGameOver() bool {
	return b.IsCheckmate() || b.IsDrawn()
}

func (b *Board) IsCheckmate() bool {
	return b.Position().Status() == chess.Checkmate
}

func (b *Board) IsDrawn() bool {
	pos := b.Position()
	return pos.Status() == chess.Stalemate || insufficientMaterial(pos.Board())
}

func (b *Board) SideToMove() chess.Color {
	return b.Position().Turn()
}

func (b *Board) PieceAt(sq chess.Square) chess.Piece {
	return b.Position().Board().Piece(sq)
}

func (b *Board) Attacks(side chess.Color, sq chess.Square) bool {
	return attacked(b.Position().Board(), side, sq)
}

func (b *Board) MovedPiece(m *chess.Move) chess.PieceType {
	return b.PieceAt(m.S1()).Type()
}

func (b *Board) IsCastling(m *chess.Move) bool {
	return m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle)
}

// Clone rebuilds the current position from FEN so the copy shares nothing
// with b. History is not carried over; the clone cannot undo past its root.
func (b *Board) Clone() engine.Position[*chess.Move] {
	opt, err := chess.FEN(b.String())
	if err != nil {
		// a FEN produced by chess.Position always parses
		panic(fmt.Sprintf("game: clone %q: %v", b.String(), err))
	}
	return &Board{history: []*chess.Position{chess.NewGame(opt).Position()}}
}
