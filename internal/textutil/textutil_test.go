package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "just plain text", "just plain text"},
		{"tags removed", "<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"nested markup", "<div><p>hello <span>world</span></p></div>", "hello world"},
		{"script content dropped", "before <script>alert(1)</script> after", "before  after"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestFirstSentence(t *testing.T) {
	text := "Bonds are debt instruments. They pay periodic interest. Maturity varies."
	assert.Equal(t, "Bonds are debt instruments.", FirstSentence(text, 200))
}

func TestFirstSentence_Truncates(t *testing.T) {
	text := "This single very long sentence keeps going without any terminal punctuation whatsoever for quite a while"
	got := FirstSentence(text, 40)
	assert.LessOrEqual(t, len(got), 45)
	assert.Contains(t, got, "…")
}

func TestFirstSentence_Empty(t *testing.T) {
	assert.Equal(t, "", FirstSentence("   ", 80))
}
