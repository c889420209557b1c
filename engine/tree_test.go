package engine_test

import (
	"errors"

	"github.com/notnil/chess"

	"chessengine/engine"
)

// node is a hand-built game tree. Moves are child indexes.
type node struct {
	score    engine.Score
	terminal bool
	children []*node
}

func leaf(score engine.Score) *node {
	return &node{score: score}
}

func branch(children ...*node) *node {
	return &node{children: children}
}

var errApply = errors.New("apply failed")

// treePosition walks a node tree. White is to move at even depths.
type treePosition struct {
	path    []*node
	failAt  *node
	applies int
	undos   int
}

func newTree(root *node) *treePosition {
	return &treePosition{path: []*node{root}}
}

func (p *treePosition) current() *node {
	return p.path[len(p.path)-1]
}

func (p *treePosition) LegalMoves() ([]int, error) {
	moves := make([]int, len(p.current().children))
	for i := range moves {
		moves[i] = i
	}
	return moves, nil
}

func (p *treePosition) Apply(m int) error {
	child := p.current().children[m]
	if child == p.failAt {
		return errApply
	}
	p.applies++
	p.path = append(p.path, child)
	return nil
}

func (p *treePosition) Undo() error {
	p.undos++
	p.path = p.path[:len(p.path)-1]
	return nil
}

func (p *treePosition) IsGameOver() bool { return p.current().terminal }
func (p *treePosition) IsCheckmate() bool { return false }
func (p *treePosition) IsDrawn() bool { return false }

func (p *treePosition) SideToMove() chess.Color {
	if len(p.path)%2 == 1 {
		return chess.White
	}
	return chess.Black
}

func (p *treePosition) PieceAt(chess.Square) chess.Piece { return chess.NoPiece }
func (p *treePosition) Attacks(chess.Color, chess.Square) bool { return false }
func (p *treePosition) MovedPiece(int) chess.PieceType { return chess.NoPieceType }
func (p *treePosition) IsCastling(int) bool { return false }

func (p *treePosition) Clone() engine.Position[int] {
	return &treePosition{path: append([]*node(nil), p.path...), failAt: p.failAt}
}

// leafScores evaluates a tree position to its node score and counts calls.
type leafScores struct {
	calls int
}

func (l *leafScores) Evaluate(pos engine.Position[int]) engine.Score {
	l.calls++
	return pos.(*treePosition).current().score
}

// textbookTree is the usual two-ply example: minimax value 3 via move 0.
func textbookTree() *node {
	return branch(
		branch(leaf(3), leaf(12), leaf(8)),
		branch(leaf(2), leaf(4), leaf(6)),
		branch(leaf(14), leaf(5), leaf(2)),
	)
}

// nodeScore is a stateless evaluator, safe for parallel searches.
var nodeScore = engine.EvaluatorFunc[int](func(pos engine.Position[int]) engine.Score {
	return pos.(*treePosition).current().score
})
