package mdhtml

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func BenchmarkParseSample(b *testing.B) {
	data := string(mustReadSample(b, "testdata/sample.md"))
	dialects := map[string]Dialect{"basic": Basic, "gfm": GFM}
	for name, d := range dialects {
		d := d
		b.Run(name, func(b *testing.B) {
			parser := NewParser(WithDialect(d))
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = parser.Parse(data)
			}
		})
	}
}

func BenchmarkParseFreshParser(b *testing.B) {
	data := string(mustReadSample(b, "testdata/sample.md"))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = ParseGFM(data)
	}
}

func BenchmarkParseNoCache(b *testing.B) {
	data := string(mustReadSample(b, "testdata/sample.md"))
	parser := NewParser(WithCacheLimit(0))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		_ = parser.Parse(data)
	}
}

func BenchmarkParseLargeDocument(b *testing.B) {
	data := string(bytes.Repeat(mustReadSample(b, "testdata/sample.md"), 50))
	parser := NewParser()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.Parse(data)
	}
}

func BenchmarkPoolParallel(b *testing.B) {
	data := string(mustReadSample(b, "testdata/sample.md"))
	pool := NewPool()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = pool.Parse(data)
		}
	})
}

func BenchmarkFormatInline(b *testing.B) {
	line := "Some **bold**, *em*, `code`, [a link](https://example.com) and ~~old~~ text."
	parser := NewParser(WithCacheLimit(0))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = parser.formatInline(line)
	}
}

func BenchmarkParseURL(b *testing.B) {
	data := mustReadSample(b, "testdata/sample.md")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	parser := NewParser()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseURL(context.Background(), URLRequest{
			URL:    server.URL,
			Client: server.Client(),
			Parser: parser,
		}); err != nil {
			b.Fatalf("parse url: %v", err)
		}
	}
}

func mustReadSample(b *testing.B, path string) []byte {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return data
}
