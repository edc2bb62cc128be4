package rope

import (
	"fmt"
	"testing"
)

func BenchmarkFromString(b *testing.B) {
	for _, lines := range []int{100, 10_000, 100_000} {
		s := sampleText(lines)
		b.Run(fmt.Sprintf("bytes=%d", len(s)), func(b *testing.B) {
			b.SetBytes(int64(len(s)))
			b.ReportAllocs()
			for b.Loop() {
				if r := FromString(s); r.ByteLen() != len(s) {
					b.Fatalf("unexpected length %d", r.ByteLen())
				}
			}
		})
	}
}

func BenchmarkAppendString(b *testing.B) {
	line := sampleText(4)
	for _, n := range []int{100, 10_000} {
		b.Run(fmt.Sprintf("appends=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				var r Rope
				for range n {
					r.AppendString(line)
				}
				if r.ByteLen() != n*len(line) {
					b.Fatalf("unexpected length %d", r.ByteLen())
				}
			}
		})
	}
}
