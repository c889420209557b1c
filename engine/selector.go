package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of SelectBestMove. Found is false when the side to
// move has no legal move.
type Result[M any] struct {
	Move  M
	Score Score
	Found bool
	Nodes int
	Depth int
}

type rootScore struct {
	score Score
	nodes int
	done  bool
}

// SelectBestMove searches every root move depth plies deep and returns the
// best one for the side to move. Each root move gets a fresh full window,
// so there is no pruning across root siblings. ctx and Config.TimeLimit are
// checked between root moves only; once at least one move has been scored a
// deadline returns the best of the scored moves.
func (e *Engine[M]) SelectBestMove(ctx context.Context, pos Position[M], depth int) (Result[M], error) {
	res := Result[M]{Depth: depth}
	if depth <= 0 {
		return res, fmt.Errorf("%w: depth must be positive, got %d", ErrConfiguration, depth)
	}
	if e.cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.TimeLimit)
		defer cancel()
	}

	moves, err := pos.LegalMoves()
	if err != nil {
		return res, fmt.Errorf("root moves: %w", err)
	}
	if len(moves) == 0 {
		e.logger.Info().Msg("no legal move available")
		return res, nil
	}
	moves = e.orderer.Order(pos, moves)

	var scores []rootScore
	if e.cfg.Workers > 1 && len(moves) > 1 {
		scores, err = e.searchRootParallel(ctx, pos, moves, depth)
	} else {
		scores, err = e.searchRoot(ctx, pos, moves, depth)
	}
	if err != nil {
		return res, err
	}

	rootMax := maximizingToMove(pos)
	best := -Infinity
	if !rootMax {
		best = Infinity
	}
	bestIdx, searched := -1, 0
	for i, s := range scores {
		if !s.done {
			continue
		}
		searched++
		res.Nodes += s.nodes
		if (rootMax && s.score > best) || (!rootMax && s.score < best) {
			best = s.score
			bestIdx = i
		}
	}
	if searched == 0 {
		return res, ctx.Err()
	}
	if searched < len(moves) {
		e.logger.Warn().Int("searched", searched).Int("moves", len(moves)).Msg("deadline reached before all root moves were searched")
	}
	if bestIdx < 0 {
		bestIdx = e.randomIndex(len(moves))
		best = scores[bestIdx].score
		e.logger.Debug().Msg("no root move beat the sentinel, picking at random")
	}

	res.Move = moves[bestIdx]
	res.Score = best
	res.Found = true
	e.logger.Info().
		Str("move", fmt.Sprint(res.Move)).
		Float64("score", res.Score).
		Int("depth", depth).
		Int("nodes", res.Nodes).
		Msg("move selected")
	return res, nil
}

func (e *Engine[M]) searchRoot(ctx context.Context, pos Position[M], moves []M, depth int) ([]rootScore, error) {
	scores := make([]rootScore, len(moves))
	for i, m := range moves {
		if ctx.Err() != nil {
			break
		}
		s, err := e.scoreRootMove(pos, m, depth)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return scores, nil
}

// searchRootParallel gives every root move its own copy of the position.
func (e *Engine[M]) searchRootParallel(ctx context.Context, pos Position[M], moves []M, depth int) ([]rootScore, error) {
	scores := make([]rootScore, len(moves))
	clones := make([]Position[M], len(moves))
	for i := range moves {
		clones[i] = pos.Clone()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, m := range moves {
		i, m := i, m // per-iteration copies (go directive < 1.22)
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			s, err := e.scoreRootMove(clones[i], m, depth)
			if err != nil {
				return err
			}
			scores[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func (e *Engine[M]) scoreRootMove(pos Position[M], m M, depth int) (rootScore, error) {
	if err := pos.Apply(m); err != nil {
		return rootScore{}, fmt.Errorf("apply %v: %w", m, err)
	}
	s := e.newSearcher(pos)
	score, err := s.search(depth-1, 1, -Infinity, Infinity, maximizingToMove(pos))
	if err != nil {
		return rootScore{}, err
	}
	if err := pos.Undo(); err != nil {
		return rootScore{}, fmt.Errorf("undo %v: %w", m, err)
	}

	e.logger.Debug().
		Str("move", fmt.Sprint(m)).
		Float64("score", score).
		Int("nodes", s.nodes).
		Msg("root move searched")
	return rootScore{score: score, nodes: s.nodes, done: true}, nil
}

func (e *Engine[M]) randomIndex(n int) int {
	seed := e.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed)).Intn(n)
}
