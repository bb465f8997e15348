/*
Package heightstat measures how tall an unbalanced [bst.Tree] grows under a
random workload. It only uses the public API of the tree.
*/
package heightstat

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/bst/internal/bst"
	"golang.org/x/sync/errgroup"
)

var Log = logrus.New()

type Sweep struct {
	From    int
	To      int
	Step    int
	Ops     int // inserts and deletes applied after the initial build, each
	Workers int
	Seed    uint64
	Verify  bool
}

type Measure struct {
	N       int     `json:"n"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Sqrt    float64 `json:"sqrt_n"`
	Lg      float64 `json:"lg_n"`
}

// Build returns a tree of exactly n distinct random keys drawn from [0, 2n).
// n must not be negative.
func Build(n int, r *rand.Rand) *bst.Tree[int, int] {
	tree := bst.New[int, int]()
	for tree.Size() != n {
		tree.Put(r.IntN(2*n), 1)
	}
	return tree
}

/*
Churn applies up to ops inserts and ops deletes of random keys drawn from
[0, n*n). A coin decides between insert and delete until one of the two
budgets is spent; the rest of the run uses the other kind. Deleting a key
that is not in the tree still spends a delete. Churn does nothing unless n
is positive.
*/
func Churn(tree *bst.Tree[int, int], ops, n int, r *rand.Rand) {
	if n <= 0 {
		return
	}
	var inserts, deletes int
	for inserts+deletes < 2*ops {
		insert := r.IntN(2) == 0
		key := r.IntN(n * n)
		if insert && inserts < ops || !insert && deletes >= ops {
			tree.Put(key, 1)
			inserts++
		} else {
			tree.Delete(key)
			deletes++
		}
	}
}

// AverageLeafDepth returns the mean depth of the leaves of tree, counting
// the root as depth 0. An empty tree has an average depth of 0.
func AverageLeafDepth[K, V any](tree *bst.Tree[K, V]) float64 {
	var sum, leaves int
	tree.LevelOrder(func(depth int, leaf bool) {
		if leaf {
			sum += depth
			leaves++
		}
	})
	if leaves == 0 {
		return 0
	}
	return float64(sum) / float64(leaves)
}

func check[K, V any](tree *bst.Tree[K, V], n int) error {
	if err := tree.Check(); err != nil {
		return fmt.Errorf("tree of size %d: %w", n, err)
	}
	return nil
}

func trial(n, ops int, r *rand.Rand, verify bool) (*bst.Tree[int, int], error) {
	tree := Build(n, r)
	Churn(tree, ops, n, r)
	if verify {
		if err := check(tree, n); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

/*
MeasureN runs two independent trials for n, one measured by average leaf
depth and one by maximum depth. n must be positive. ctx is checked before
each trial.
*/
func MeasureN(ctx context.Context, n, ops int, r *rand.Rand, verify bool) (Measure, error) {
	if n <= 0 {
		return Measure{}, fmt.Errorf("tree size must be positive, got %d", n)
	}
	m := Measure{
		N:    n,
		Sqrt: math.Sqrt(float64(n)),
		Lg:   math.Log2(float64(n)),
	}

	if err := ctx.Err(); err != nil {
		return m, err
	}
	tree, err := trial(n, ops, r, verify)
	if err != nil {
		return m, err
	}
	m.Average = AverageLeafDepth(tree)

	if err := ctx.Err(); err != nil {
		return m, err
	}
	tree, err = trial(n, ops, r, verify)
	if err != nil {
		return m, err
	}
	m.Max = float64(tree.MaxDepth())

	return m, nil
}

/*
Run measures every n of the sweep, From to To inclusive in increments of
Step. Values of n are measured concurrently by at most Workers goroutines,
each on its own trees with a generator seeded from Seed and n, so results do
not depend on scheduling. Measures are returned in increasing n.
*/
func Run(ctx context.Context, s Sweep) ([]Measure, error) {
	if s.From <= 0 || s.Step <= 0 || s.To < s.From {
		return nil, fmt.Errorf("invalid sweep %d..%d step %d", s.From, s.To, s.Step)
	}

	var (
		count    = (s.To-s.From)/s.Step + 1
		measures = make([]Measure, count)
	)

	g, gCtx := errgroup.WithContext(ctx)
	if s.Workers > 0 {
		g.SetLimit(s.Workers)
	}

	for i := range count {
		n := s.From + i*s.Step
		g.Go(func() error {
			r := rand.New(rand.NewPCG(s.Seed, uint64(n)))
			m, err := MeasureN(gCtx, n, s.Ops, r, s.Verify)
			if err != nil {
				return err
			}
			measures[i] = m

			Log.WithFields(logrus.Fields{
				"n": n, "average": m.Average, "max": m.Max,
			}).Debug("measured")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return measures, nil
}
