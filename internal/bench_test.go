package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func BenchmarkSearch(b *testing.B) {
	dir := b.TempDir()
	var files []string
	body := strings.Repeat("some filler line without a hit\n", 200) + "the needle line\n"
	for i := 0; i < 64; i++ {
		fp := filepath.Join(dir, fmt.Sprintf("f%d.txt", i))
		if err := os.WriteFile(fp, []byte(body), 0644); err != nil {
			b.Fatal(err)
		}
		files = append(files, fp)
	}

	engine := NewEngine(Config{Workers: 4}, &captureReporter{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matches, err := engine.Search(files, "needle")
		if err != nil {
			b.Fatal(err)
		}
		if len(matches) != 64 {
			b.Fatalf("expected 64 matches, got %d", len(matches))
		}
	}
}
