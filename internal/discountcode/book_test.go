package discountcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Lixing-Zhang/foodstand-pos/internal/pricing"
	"github.com/shopspring/decimal"
)

// setupTestFiles creates temporary code files and returns their paths
func setupTestFiles(t *testing.T) (string, string) {
	t.Helper()

	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "codes1.txt")
	file2 := filepath.Join(tmpDir, "codes2.txt")

	content1 := "# weekday vouchers\nPERRO10 percentage 10\nMENOS20 fixed 20\n\nMITAD percentage 50\n"
	if err := os.WriteFile(file1, []byte(content1), 0644); err != nil {
		t.Fatalf("failed to create test file 1: %v", err)
	}

	// MITAD is redefined and wins over file 1
	content2 := "MITAD fixed 15\nCUMPLE fixed 30.50\n"
	if err := os.WriteFile(file2, []byte(content2), 0644); err != nil {
		t.Fatalf("failed to create test file 2: %v", err)
	}

	return file1, file2
}

func TestBook_Load(t *testing.T) {
	t.Run("successful load from multiple files", func(t *testing.T) {
		file1, file2 := setupTestFiles(t)

		book := NewBook()
		if err := book.Load(context.Background(), []string{file1, file2}); err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}

		stats := book.Stats()
		if stats["total_sources"] != 2 {
			t.Errorf("expected 2 sources loaded, got %v", stats["total_sources"])
		}
		if stats["total_codes"] != 4 {
			t.Errorf("expected 4 codes, got %v", stats["total_codes"])
		}
	})

	t.Run("empty sources", func(t *testing.T) {
		book := NewBook()
		if err := book.Load(context.Background(), nil); !errors.Is(err, ErrNoSources) {
			t.Errorf("expected ErrNoSources, got %v", err)
		}
	})

	t.Run("non-existent file", func(t *testing.T) {
		book := NewBook()
		if err := book.Load(context.Background(), []string{"/non/existent/codes.txt"}); err == nil {
			t.Error("expected error for non-existent file, got nil")
		}
	})

	t.Run("failed load keeps previous codes", func(t *testing.T) {
		file1, _ := setupTestFiles(t)

		book := NewBook()
		if err := book.Load(context.Background(), []string{file1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := book.Load(context.Background(), []string{"/non/existent/codes.txt"}); err == nil {
			t.Fatal("expected error for non-existent file")
		}
		if _, ok := book.Lookup(context.Background(), "PERRO10"); !ok {
			t.Error("previous codes should survive a failed reload")
		}
	})
}

func TestBook_Lookup(t *testing.T) {
	file1, file2 := setupTestFiles(t)

	book := NewBook()
	if err := book.Load(context.Background(), []string{file1, file2}); err != nil {
		t.Fatalf("failed to load files: %v", err)
	}

	tests := []struct {
		name      string
		code      string
		found     bool
		wantMode  pricing.Mode
		wantValue string
	}{
		{"percentage code", "PERRO10", true, pricing.ModePercentage, "10"},
		{"fixed code", "MENOS20", true, pricing.ModeFixed, "20"},
		{"later source overrides", "MITAD", true, pricing.ModeFixed, "15"},
		{"decimal value", "CUMPLE", true, pricing.ModeFixed, "30.5"},
		{"case insensitive", "perro10", true, pricing.ModePercentage, "10"},
		{"whitespace handling", "  MENOS20  ", true, pricing.ModeFixed, "20"},
		{"unknown code", "NOEXISTE", false, pricing.ModeNone, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := book.Lookup(context.Background(), tt.code)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.code, ok, tt.found)
			}
			if got.Mode() != tt.wantMode {
				t.Errorf("Lookup(%q) mode = %s, want %s", tt.code, got.Mode(), tt.wantMode)
			}
			if !got.Value().Equal(decimal.RequireFromString(tt.wantValue)) {
				t.Errorf("Lookup(%q) value = %s, want %s", tt.code, got.Value(), tt.wantValue)
			}
		})
	}
}

func TestParseCodes_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing value", "PERRO10 percentage\n", "line 1"},
		{"unknown mode", "# header\nPERRO10 gratis 10\n", "line 2"},
		{"non-numeric value", "PERRO10 fixed diez\n", "invalid discount value"},
		{"negative value", "PERRO10 fixed -5\n", "invalid discount value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseCodes(strings.NewReader(tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBook_Lookup_ConcurrentAccess(t *testing.T) {
	file1, file2 := setupTestFiles(t)

	book := NewBook()
	if err := book.Load(context.Background(), []string{file1, file2}); err != nil {
		t.Fatalf("failed to load files: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if _, ok := book.Lookup(context.Background(), "PERRO10"); !ok {
				t.Errorf("goroutine %d: expected PERRO10 to be found", n)
			}
		}(i)
	}

	// Reload while readers are running
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := book.Load(context.Background(), []string{file1}); err != nil {
			t.Errorf("reload failed: %v", err)
		}
	}()

	wg.Wait()
}
