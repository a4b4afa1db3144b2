package words_test

import (
	"testing"

	"pento/internal/platform/words"
)

func TestCount(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		text string
		want int
	}{
		{name: "empty", text: "", want: 0},
		{name: "whitespace only", text: "  \n\t ", want: 0},
		{name: "single word", text: "hello", want: 1},
		{name: "leading and trailing space", text: "  two words  ", want: 2},
		{name: "mixed separators", text: "one\ntwo\tthree four", want: 4},
		{name: "repeated spaces collapse", text: "a   b     c", want: 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := words.Count(tc.text); got != tc.want {
				t.Fatalf("Count(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}
