package engine

import "fmt"

type searcher[M any] struct {
	pos        Position[M]
	evaluator  Evaluator[M]
	orderer    Orderer[M]
	exhaustive bool
	nodes      int
}

func (e *Engine[M]) newSearcher(pos Position[M]) *searcher[M] {
	return &searcher[M]{
		pos:        pos,
		evaluator:  e.evaluator,
		orderer:    e.orderer,
		exhaustive: e.cfg.Exhaustive,
	}
}

// Search returns the minimax value of pos, depth plies deep, inside the
// (alpha, beta) window. pos is mutated during the search and restored
// before a successful return.
func (e *Engine[M]) Search(pos Position[M], depth int, alpha, beta Score, maximizing bool) (Score, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: depth must not be negative, got %d", ErrConfiguration, depth)
	}
	return e.newSearcher(pos).search(depth, 0, alpha, beta, maximizing)
}

func (s *searcher[M]) search(depth, ply int, alpha, beta Score, maximizing bool) (Score, error) {
	s.nodes++
	if depth == 0 || s.pos.IsGameOver() {
		return s.leaf(ply), nil
	}

	moves, err := s.pos.LegalMoves()
	if err != nil {
		return 0, fmt.Errorf("legal moves: %w", err)
	}
	// no moves but not game over: treat as drawn rather than trust the rules layer
	if len(moves) == 0 {
		return Draw, nil
	}

	best := -Infinity
	if !maximizing {
		best = Infinity
	}
	for _, m := range s.orderer.Order(s.pos, moves) {
		if err := s.pos.Apply(m); err != nil {
			return 0, fmt.Errorf("apply %v: %w", m, err)
		}
		current, err := s.search(depth-1, ply+1, alpha, beta, !maximizing)
		if err != nil {
			return 0, err
		}
		if err := s.pos.Undo(); err != nil {
			return 0, fmt.Errorf("undo %v: %w", m, err)
		}

		if maximizing {
			best = max(best, current)
			alpha = max(alpha, best)
		} else {
			best = min(best, current)
			beta = min(beta, best)
		}
		if !s.exhaustive && beta <= alpha {
			break
		}
	}
	return best, nil
}

// leaf evaluates the position and pulls mate scores toward zero by the
// distance from the root, so faster mates outrank slower ones.
func (s *searcher[M]) leaf(ply int) Score {
	score := s.evaluator.Evaluate(s.pos)
	if s.pos.IsCheckmate() {
		switch {
		case score > 0:
			score -= Score(ply)
		case score < 0:
			score += Score(ply)
		}
	}
	return score
}
