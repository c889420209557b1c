package bots

import (
	"context"
	"errors"
	"fmt"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"chessengine/engine"
	"chessengine/game"
)

type MinimaxBot struct {
	Depth  int
	engine *engine.Engine[*chess.Move]
}

func NewMinimaxBot(cfg engine.Config, logger zerolog.Logger) (*MinimaxBot, error) {
	e, err := engine.New(cfg, engine.WithLogger[*chess.Move](logger))
	if err != nil {
		return nil, err
	}
	return &MinimaxBot{Depth: cfg.Depth, engine: e}, nil
}

func (b *MinimaxBot) Name() string {
	return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
}

func (b *MinimaxBot) BestMove(ctx context.Context, g *chess.Game) (*chess.Move, error) {
	if g == nil {
		return nil, errors.New("nil game")
	}
	board, err := game.FromPosition(g.Position())
	if err != nil {
		return nil, err
	}
	res, err := b.engine.SelectBestMove(ctx, board, b.Depth)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, nil
	}
	return gameMove(g, res.Move), nil
}
