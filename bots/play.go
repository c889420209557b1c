package bots

import (
	"context"
	"fmt"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
)

// Play alternates white and black on g until the game ends, a bot has no
// move, or maxPlies moves have been played in total (0 means no limit).
func Play(ctx context.Context, g *chess.Game, white, black ChessBot, maxPlies int, logger zerolog.Logger) error {
	for g.Outcome() == chess.NoOutcome {
		if maxPlies > 0 && len(g.Moves()) >= maxPlies {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		bot := white
		if g.Position().Turn() == chess.Black {
			bot = black
		}
		move, err := bot.BestMove(ctx, g)
		if err != nil {
			return fmt.Errorf("%s: %w", bot.Name(), err)
		}
		if move == nil {
			logger.Info().Str("bot", bot.Name()).Msg("no move available")
			break
		}
		if err := g.Move(move); err != nil {
			return fmt.Errorf("%s played %s: %w", bot.Name(), move, err)
		}
		logger.Debug().Str("bot", bot.Name()).Str("move", move.String()).Int("ply", len(g.Moves())).Msg("move played")
	}
	logger.Info().Str("outcome", string(g.Outcome())).Str("method", fmt.Sprint(g.Method())).Msg("game finished")
	return nil
}
