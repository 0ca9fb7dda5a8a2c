package item_test

import (
	"testing"

	"github.com/kimneyapti/notifier/internal/domain/item"
)

func TestCategory_Symbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category item.Category
		want     string
	}{
		{item.CategoryActiveTask, "🎯"},
		{item.CategoryBug, "🐛"},
		{item.CategoryLogic, "⚙️"},
		{item.CategoryIdea, "💡"},
		{"", "📋"},
		{"feature", "📋"},
		{"Bug", "📋"},
		{" idea", "📋"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			if got := tt.category.Symbol(); got != tt.want {
				t.Errorf("Category(%q).Symbol() = %q, want %q", tt.category, got, tt.want)
			}
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range []item.Category{item.CategoryActiveTask, item.CategoryBug, item.CategoryLogic, item.CategoryIdea} {
		if !c.IsValid() {
			t.Errorf("Category(%q).IsValid() = false, want true", c)
		}
	}
	for _, c := range []item.Category{"", "task", "ACTIVETASK"} {
		if c.IsValid() {
			t.Errorf("Category(%q).IsValid() = true, want false", c)
		}
	}
}

// FuzzCategory_Symbol checks that Symbol is total and stable: every tag maps
// to a non-empty glyph, the same one on every call, and only the four known
// tags escape the default glyph.
func FuzzCategory_Symbol(f *testing.F) {
	for _, seed := range []string{"activeTask", "bug", "logic", "idea", "", "📋", "activetask", "\x00"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, tag string) {
		c := item.Category(tag)
		first := c.Symbol()
		if first == "" {
			t.Fatalf("Category(%q).Symbol() is empty", tag)
		}
		if again := c.Symbol(); again != first {
			t.Fatalf("Category(%q).Symbol() unstable: %q then %q", tag, first, again)
		}
		if !c.IsValid() && first != item.DefaultSymbol {
			t.Fatalf("Category(%q).Symbol() = %q, want default %q", tag, first, item.DefaultSymbol)
		}
		if c.IsValid() && first == item.DefaultSymbol {
			t.Fatalf("Category(%q).Symbol() = default glyph for a known tag", tag)
		}
	})
}
