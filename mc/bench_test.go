package mc_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/mlindqvist/voxelmatch/blockset"
	"github.com/mlindqvist/voxelmatch/gridbox"
	"github.com/mlindqvist/voxelmatch/mc"
)

// BenchmarkRun times one hill-climbing attempt (a single Run call, bounded
// to one clockCheckInterval's worth of iterations via oneShotClock) against
// a fixed, fully-fillable D=6 cube pair.
func BenchmarkRun(b *testing.B) {
	d := 6
	front := make(gridbox.Silhouette, d)
	for i := range front {
		front[i] = make([]bool, d)
		for j := range front[i] {
			front[i][j] = true
		}
	}
	opts := mc.DefaultOptions()
	rng := rand.New(rand.NewSource(11))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g1, _ := gridbox.NewGridBox(front, front)
		g2, _ := gridbox.NewGridBox(front, front)
		hole1 := g1.MakeHole()
		hole2 := g2.MakeHole()
		bs := blockset.New()
		budget := mc.NewSolveBudget(time.Second, oneShotClock())

		mc.Run(rng, g1, g2, hole1, hole2, bs, opts, budget)
	}
}
