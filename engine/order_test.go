package engine_test

import (
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"chessengine/engine"
)

func TestKingSafetyOrderer(t *testing.T) {
	b := newBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	before := b.String()
	moves, err := b.LegalMoves()
	require.NoError(t, err)

	orderer := engine.NewKingSafetyOrderer[*chess.Move](engine.DefaultConfig().Order)
	ordered := orderer.Order(b, moves)

	require.ElementsMatch(t, moveNames(moves), moveNames(ordered), "ordering must not change the move set")
	require.Equal(t, before, b.String(), "ordering must not touch the position")

	names := moveNames(ordered)
	require.ElementsMatch(t, []string{"e1g1", "e1c1"}, names[:2], "castling goes first")
	require.ElementsMatch(t, []string{"e1d1", "e1d2", "e1e2", "e1f2", "e1f1"}, names[len(names)-5:], "king steps go last")
	for _, m := range ordered[2 : len(ordered)-5] {
		require.NotEqual(t, chess.King, b.MovedPiece(m))
	}
}

func TestKingSafetyOrdererIsStable(t *testing.T) {
	b := newBoard(t, startFEN)
	moves, err := b.LegalMoves()
	require.NoError(t, err)

	ordered := engine.NewKingSafetyOrderer[*chess.Move](engine.DefaultConfig().Order).Order(b, moves)
	require.Equal(t, moveNames(moves), moveNames(ordered), "no king moves, so order is unchanged")
}

func TestKingSafetyOrdererWeights(t *testing.T) {
	// a positive king penalty flips the preference
	cfg := engine.OrderConfig{CastleBonus: 0, KingMovePenalty: 50}
	b := newBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	moves, err := b.LegalMoves()
	require.NoError(t, err)

	ordered := engine.NewKingSafetyOrderer[*chess.Move](cfg).Order(b, moves)
	require.Equal(t, chess.King, b.MovedPiece(ordered[0]))
	require.Equal(t, chess.Rook, b.MovedPiece(ordered[len(ordered)-1]))
}
