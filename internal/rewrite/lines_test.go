package rewrite

import (
	"reflect"
	"testing"
)

func TestBuildLineOffsets(t *testing.T) {
	tests := []struct {
		content string
		want    []int
	}{
		{"", []int{0}},
		{"abc", []int{0}},
		{"abc\n", []int{0}},
		{"abc\nde\nf", []int{0, 4, 7}},
		{"\n\n", []int{0, 1}},
	}
	for _, tt := range tests {
		if got := BuildLineOffsets(tt.content); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BuildLineOffsets(%q) = %v, want %v", tt.content, got, tt.want)
		}
	}
}

func TestLineIndexLineOf(t *testing.T) {
	li := NewLineIndex("abc\nde\nf")
	cases := map[int]int{0: 0, 3: 0, 4: 1, 6: 1, 7: 2, 100: 2}
	for offset, want := range cases {
		if got := li.LineOf(offset); got != want {
			t.Errorf("LineOf(%d) = %d, want %d", offset, got, want)
		}
	}
	if li.Lines() != 3 {
		t.Errorf("Lines() = %d, want 3", li.Lines())
	}
}
