// Package solver finds the shortest sequence of moves that sorts a board.
package solver

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

var (
	ErrUnsolvable = errors.New("board cannot be sorted")
	ErrLimit      = errors.New("search limit reached")
)

// DefaultLimit bounds the number of distinct boards a search may visit.
const DefaultLimit = 200000

type node struct {
	board  shelves.Board
	move   shelves.Move
	parent *node
}

/*
	Breadth-first search over boards reachable from the start board.
	Boards that only differ by shelf order are searched once, since shelf
	order does not change which positions can be reached.
	A limit <= 0 means DefaultLimit.
*/
func Solve(ctx context.Context, height int, board shelves.Board, limit int) ([]shelves.Move, error) {
	if !shelves.IsValid(height, board) {
		return nil, ErrUnsolvable
	}
	if shelves.IsFinished(height, board) {
		return []shelves.Move{}, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	start := &node{board: board.Clone()}
	visited := map[string]bool{Key(start.board): true}
	queue := []*node{start}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := queue[0]
		queue = queue[1:]

		for _, m := range shelves.LegalMoves(height, cur.board) {
			next := cur.board.Clone()
			if err := m.Apply(height, next); err != nil {
				continue
			}

			key := Key(next)
			if visited[key] {
				continue
			}
			visited[key] = true

			child := &node{board: next, move: m, parent: cur}
			if shelves.IsFinished(height, next) {
				return path(child), nil
			}
			if len(visited) > limit {
				return nil, ErrLimit
			}
			queue = append(queue, child)
		}
	}

	return nil, ErrUnsolvable
}

// Plan tries for a shortest solution and falls back to Find when the
// breadth-first search runs into its limit.
func Plan(ctx context.Context, height int, board shelves.Board, limit int) ([]shelves.Move, error) {
	moves, err := Solve(ctx, height, board, limit)
	if errors.Is(err, ErrLimit) {
		return Find(ctx, height, board, limit)
	}
	return moves, err
}

// Hint returns the first move of a solution found by Find.
func Hint(ctx context.Context, height int, board shelves.Board, limit int) (shelves.Move, error) {
	moves, err := Find(ctx, height, board, limit)
	if err != nil {
		return shelves.Move{}, err
	}
	if len(moves) == 0 {
		return shelves.Move{}, ErrUnsolvable
	}
	return moves[0], nil
}

func path(n *node) []shelves.Move {
	moves := []shelves.Move{}
	for ; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// Key identifies a board up to shelf order.
func Key(board shelves.Board) string {
	parts := make([]string, len(board))
	for i, s := range board {
		var sb strings.Builder
		for j, c := range s {
			if j > 0 {
				sb.WriteRune(',')
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
		parts[i] = sb.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
