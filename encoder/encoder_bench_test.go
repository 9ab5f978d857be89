package encoder

import (
	"fmt"
	"testing"

	"github.com/arloliu/labello/format"
)

func benchData(cardinality, size int) []string {
	data := make([]string, size)
	for i := range data {
		data[i] = fmt.Sprintf("category-%d", i%cardinality)
	}

	return data
}

func BenchmarkFit_Ordinal(b *testing.B) {
	for _, cardinality := range []int{2, 5, 100, 1000} {
		data := benchData(cardinality, 10_000)
		b.Run(fmt.Sprintf("cardinality-%d", cardinality), func(b *testing.B) {
			enc := NewOrdinal[string]()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = enc.Fit(data)
			}
		})
	}
}

func BenchmarkFit_OrdinalWithCeiling(b *testing.B) {
	data := benchData(1000, 10_000)
	enc := NewOrdinal[string]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Fit(data, WithMaxClasses[string](100))
	}
}

func BenchmarkFit_OneHot(b *testing.B) {
	for _, cardinality := range []int{2, 100, 1000} {
		data := benchData(cardinality, 10_000)
		b.Run(fmt.Sprintf("cardinality-%d", cardinality), func(b *testing.B) {
			enc := NewOneHot[string]()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = enc.Fit(data)
			}
		})
	}
}

func BenchmarkTransform(b *testing.B) {
	data := benchData(100, 10_000)
	enc := NewOrdinal[string]()
	if err := enc.Fit(data); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enc.Transform(data)
	}
}

func BenchmarkInverseTransform(b *testing.B) {
	data := benchData(100, 10_000)
	enc := NewOrdinal[string]()
	if err := enc.Fit(data); err != nil {
		b.Fatal(err)
	}
	tr := enc.Transform(data)
	if tr.Strategy() != format.StrategyOrdinal {
		b.Fatal("unexpected strategy")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.InverseTransform(tr); err != nil {
			b.Fatal(err)
		}
	}
}
