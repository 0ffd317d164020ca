package gotdiff

import (
	"testing"
	"time"
)

func TestHashContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple text", "<p>Hello World</p>"},
		{"empty string", ""},
		{"multibyte", "<p>你好世界 👍</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := HashContent(tt.input)
			if len(result) != 32 {
				t.Errorf("HashContent(%q) length = %d, want 32", tt.input, len(result))
			}
			if HashContent(tt.input) != result {
				t.Errorf("HashContent(%q) is not deterministic", tt.input)
			}
		})
	}
}

func TestHashContent_WhitespaceMatters(t *testing.T) {
	if HashContent("<p>a</p>") == HashContent("<p>a</p>\n") {
		t.Error("trailing newline should change the hash")
	}
	if HashContent("a b") == HashContent("a  b") {
		t.Error("inner whitespace should change the hash")
	}
}

func TestCacheKey(t *testing.T) {
	result := CacheKey("aaaa", "bbbb", "b100.l3.e5.p3.t0s")
	expected := "aaaa:bbbb:b100.l3.e5.p3.t0s"

	if result != expected {
		t.Errorf("CacheKey() = %q, want %q", result, expected)
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		opts []DifferOption
		want string
	}{
		{"defaults", nil, "b100.l3.e5.p3.t0s"},
		{
			name: "context and proximity",
			opts: []DifferOption{WithContextBudget(40), WithContextLines(2), WithContextExtendLines(0), WithProximityLines(1)},
			want: "b40.l2.e0.p1.t0s",
		},
		{"diff timeout", []DifferOption{WithDiffTimeout(time.Second)}, "b100.l3.e5.p3.t1s"},
		{"custom text differ", []DifferOption{WithTextDiffer(scriptedDiffer{})}, "b100.l3.e5.p3.gotdiff.scriptedDiffer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewDiffer(tt.opts...).fingerprint(); got != tt.want {
				t.Errorf("fingerprint() = %q, want %q", got, tt.want)
			}
		})
	}
}
