package tuplemapper

import "testing"

type benchTarget struct {
	Model

	Name  string  `tuple:"name"`
	Age   int     `tuple:"age"`
	Score float64 `tuple:"score"`
}

func benchTuple() Tuple {
	return NewRow(
		Element{Alias: "name", Value: "bench"},
		Element{Alias: "age", Value: 42},
		Element{Alias: "score", Value: 99.5},
	)
}

func BenchmarkInto_CachedMetadata(b *testing.B) {
	m := New()
	tuple := benchTuple()
	var d benchTarget
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Into(&d, tuple); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInto_UncachedMetadata(b *testing.B) {
	m := NewWithOptions(WithMetadataCache(false))
	tuple := benchTuple()
	var d benchTarget
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := m.Into(&d, tuple); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMapList(b *testing.B) {
	m := New()
	tuples := make([]Tuple, 100)
	for i := range tuples {
		tuples[i] = benchTuple()
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := MapList[benchTarget](m, tuples); err != nil {
			b.Fatal(err)
		}
	}
}
