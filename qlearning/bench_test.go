package qlearning_test

import (
	"testing"

	"github.com/katalvlaran/swarmroute/citygen"
	"github.com/katalvlaran/swarmroute/qlearning"
)

// BenchmarkTrain measures 500 training episodes on a generated 41×41 city.
func BenchmarkTrain(b *testing.B) {
	g, err := citygen.New(citygen.WithSeed(1)).Generate()
	if err != nil {
		b.Fatal(err)
	}
	o := qlearning.DefaultOptions()
	o.Seed = 1
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l, err := qlearning.NewLearner(g, o)
		if err != nil {
			b.Fatal(err)
		}
		l.Train(500)
	}
}
