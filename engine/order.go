package engine

import (
	"sort"

	"github.com/notnil/chess"
)

// Orderer returns moves in the order they should be searched. It must
// return a permutation of its input and must not mutate the position.
type Orderer[M any] interface {
	Order(pos Position[M], moves []M) []M
}

// KingSafetyOrderer pushes non-castling king moves to the back and
// castling to the front. Everything else keeps its relative order.
type KingSafetyOrderer[M any] struct {
	cfg OrderConfig
}

func NewKingSafetyOrderer[M any](cfg OrderConfig) *KingSafetyOrderer[M] {
	return &KingSafetyOrderer[M]{cfg: cfg}
}

func (o *KingSafetyOrderer[M]) Order(pos Position[M], moves []M) []M {
	type weighted struct {
		move   M
		weight Score
	}
	ws := make([]weighted, len(moves))
	for i, m := range moves {
		ws[i] = weighted{move: m, weight: o.weight(pos, m)}
	}
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].weight > ws[j].weight
	})

	ordered := make([]M, len(ws))
	for i, w := range ws {
		ordered[i] = w.move
	}
	return ordered
}

func (o *KingSafetyOrderer[M]) weight(pos Position[M], m M) Score {
	if pos.MovedPiece(m) != chess.King {
		return 0
	}
	if pos.IsCastling(m) {
		return o.cfg.CastleBonus
	}
	return o.cfg.KingMovePenalty
}
