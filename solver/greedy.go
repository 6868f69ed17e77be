package solver

import (
	"container/heap"
	"context"

	"github.com/garlicgarrison/shelf-sort/shelves"
)

type item struct {
	*node
	cost int
}

// frontier is a min-heap on cost.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool { return f[i].cost < f[j].cost }

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*item))
}

func (f *frontier) Pop() interface{} {
	old := *f
	it := old[len(old)-1]
	*f = old[:len(old)-1]
	return it
}

/*
	Best-first search ordered by how scrambled a board looks. It settles for
	the first solution it meets, which is usually far faster than Solve on
	big boards but not always the shortest.
*/
func Find(ctx context.Context, height int, board shelves.Board, limit int) ([]shelves.Move, error) {
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
	queue := &frontier{{node: start, cost: Scramble(start.board)}}

	for queue.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cur := heap.Pop(queue).(*item)
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

			child := &node{board: next, move: m, parent: cur.node}
			if shelves.IsFinished(height, next) {
				return path(child), nil
			}
			if len(visited) > limit {
				return nil, ErrLimit
			}
			heap.Push(queue, &item{node: child, cost: Scramble(next)})
		}
	}

	return nil, ErrUnsolvable
}

// Scramble grows with every color boundary inside a shelf and every extra
// shelf a color is spread over.
func Scramble(board shelves.Board) int {
	score := 0
	spread := make(map[shelves.Color]int)
	for _, s := range board {
		seen := make(map[shelves.Color]bool)
		for i, c := range s {
			if i > 0 && s[i-1] != c {
				score++
			}
			if !seen[c] {
				seen[c] = true
				spread[c]++
			}
		}
	}
	for _, n := range spread {
		score += n - 1
	}
	return score
}
