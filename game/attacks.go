package game

import "github.com/notnil/chess"

type offset struct{ file, rank int }

var (
	knightJumps = []offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps   = []offset{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	rookRays    = []offset{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopRays  = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

func squareAt(file, rank int) (chess.Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, false
	}
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// attacked reports whether any piece of color by attacks sq, whatever
// stands on sq.
func attacked(board *chess.Board, by chess.Color, sq chess.Square) bool {
	file, rank := int(sq.File()), int(sq.Rank())

	is := func(s chess.Square, types ...chess.PieceType) bool {
		p := board.Piece(s)
		if p == chess.NoPiece || p.Color() != by {
			return false
		}
		for _, t := range types {
			if p.Type() == t {
				return true
			}
		}
		return false
	}

	// a white pawn attacks upward, so it sits one rank below its target
	pawnRank := rank - 1
	if by == chess.Black {
		pawnRank = rank + 1
	}
	for _, df := range []int{-1, 1} {
		if s, ok := squareAt(file+df, pawnRank); ok && is(s, chess.Pawn) {
			return true
		}
	}

	for _, o := range knightJumps {
		if s, ok := squareAt(file+o.file, rank+o.rank); ok && is(s, chess.Knight) {
			return true
		}
	}
	for _, o := range kingSteps {
		if s, ok := squareAt(file+o.file, rank+o.rank); ok && is(s, chess.King) {
			return true
		}
	}

	slide := func(rays []offset, types ...chess.PieceType) bool {
		for _, o := range rays {
			f, r := file+o.file, rank+o.rank
			for {
				s, ok := squareAt(f, r)
				if !ok {
					break
				}
				if board.Piece(s) != chess.NoPiece {
					if is(s, types...) {
						return true
					}
					break
				}
				f, r = f+o.file, r+o.rank
			}
		}
		return false
	}
	return slide(rookRays, chess.Rook, chess.Queen) || slide(bishopRays, chess.Bishop, chess.Queen)
}

func inCheck(board *chess.Board, color chess.Color) bool {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if p := board.Piece(sq); p.Type() == chess.King && p.Color() == color {
			return attacked(board, color.Other(), sq)
		}
	}
	return false
}

// insufficientMaterial reports positions where neither side can mate:
// bare kings, a single minor piece, or bishops that all share a square
// colour.
func insufficientMaterial(board *chess.Board) bool {
	knights := 0
	var bishopShades [2]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		switch board.Piece(sq).Type() {
		case chess.NoPieceType, chess.King:
		case chess.Knight:
			knights++
		case chess.Bishop:
			bishopShades[(int(sq.File())+int(sq.Rank()))%2]++
		default:
			return false
		}
	}
	bishops := bishopShades[0] + bishopShades[1]
	if knights+bishops <= 1 {
		return true
	}
	return knights == 0 && (bishopShades[0] == 0 || bishopShades[1] == 0)
}
