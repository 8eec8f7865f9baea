package session

import "testing"

func BenchmarkNewToken(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewToken(); err != nil {
			b.Fatal(err)
		}
	}
}
