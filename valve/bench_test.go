package valve_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/paretosearch/bitset"
	"github.com/katalvlaran/paretosearch/frontier"
	"github.com/katalvlaran/paretosearch/valve"
)

func BenchmarkSolo_Bitset(b *testing.B) {
	m := mustModel(b, exampleDefs(b), valve.DefaultConfig())
	for i := 0; i < b.N; i++ {
		_, _ = valve.SolveSolo(context.Background(), m, 30, bitset.Set(0))
	}
}

func BenchmarkSolo_NameSet(b *testing.B) {
	m := mustModel(b, exampleDefs(b), valve.DefaultConfig())
	for i := 0; i < b.N; i++ {
		_, _ = valve.SolveSolo(context.Background(), m, 30, m.EmptyNames())
	}
}

func BenchmarkDuo(b *testing.B) {
	m := mustModel(b, exampleDefs(b), valve.DefaultConfig())
	for i := 0; i < b.N; i++ {
		_, _ = valve.MaxReleasedDuo(context.Background(), m, 26)
	}
}

func BenchmarkDuo_SingleWorker(b *testing.B) {
	m := mustModel(b, exampleDefs(b), valve.DefaultConfig())
	for i := 0; i < b.N; i++ {
		_, _ = valve.MaxReleasedDuo(context.Background(), m, 26, frontier.WithWorkers(1))
	}
}
