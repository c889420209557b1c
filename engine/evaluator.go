package engine

import (
	"math"

	"github.com/notnil/chess"
)

// Score is always from White's point of view.
type Score = float64

const (
	// MateScore is the magnitude of a checkmate. It dominates any material sum.
	MateScore Score = 1_000_000
	Draw      Score = 0
)

var Infinity = math.Inf(1)

var centerSquares = []chess.Square{chess.D4, chess.E4, chess.D5, chess.E5}

// Evaluator scores leaf and terminal positions.
type Evaluator[M any] interface {
	Evaluate(pos Position[M]) Score
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc[M any] func(pos Position[M]) Score

func (f EvaluatorFunc[M]) Evaluate(pos Position[M]) Score {
	return f(pos)
}

// DefaultEvaluator sums material, mobility and center control.
type DefaultEvaluator[M any] struct {
	cfg EvalConfig
}

func NewDefaultEvaluator[M any](cfg EvalConfig) *DefaultEvaluator[M] {
	return &DefaultEvaluator[M]{cfg: cfg}
}

func (e *DefaultEvaluator[M]) Evaluate(pos Position[M]) Score {
	if pos.IsCheckmate() {
		// the side to move has been mated
		if maximizingToMove(pos) {
			return -MateScore
		}
		return MateScore
	}
	if pos.IsDrawn() {
		return Draw
	}

	score := e.materialScore(pos)
	if e.cfg.Mobility {
		score += e.mobilityScore(pos)
	}
	if e.cfg.Center {
		score += e.centerControl(pos)
	}
	return score
}

func (e *DefaultEvaluator[M]) pieceValue(pt chess.PieceType) Score {
	switch pt {
	case chess.Pawn:
		return e.cfg.Pawn
	case chess.Knight:
		return e.cfg.Knight
	case chess.Bishop:
		return e.cfg.Bishop
	case chess.Rook:
		return e.cfg.Rook
	case chess.Queen:
		return e.cfg.Queen
	case chess.King:
		return e.cfg.King
	default:
		return 0
	}
}

func (e *DefaultEvaluator[M]) materialScore(pos Position[M]) Score {
	var score Score
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := pos.PieceAt(sq)
		if piece == chess.NoPiece {
			continue
		}
		value := e.pieceValue(piece.Type())
		if piece.Color() == chess.White {
			score += value
		} else {
			score -= value
		}
	}
	return score
}

func (e *DefaultEvaluator[M]) mobilityScore(pos Position[M]) Score {
	moves, err := pos.LegalMoves()
	if err != nil {
		return 0
	}
	score := e.cfg.MobilityWeight * Score(len(moves))
	if !maximizingToMove(pos) {
		score = -score
	}
	return score
}

func (e *DefaultEvaluator[M]) centerControl(pos Position[M]) Score {
	var score Score
	for _, sq := range centerSquares {
		if pos.Attacks(chess.White, sq) {
			score += e.cfg.CenterBonus
		}
		if pos.Attacks(chess.Black, sq) {
			score -= e.cfg.CenterBonus
		}
	}
	return score
}
