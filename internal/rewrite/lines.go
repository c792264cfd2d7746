package rewrite

import "sort"

// LineIndex maps byte offsets of a document to 0-based line numbers.
type LineIndex struct {
	offsets []int // byte offset where each line begins
}

// NewLineIndex builds a LineIndex over content.
func NewLineIndex(content string) *LineIndex {
	return &LineIndex{offsets: BuildLineOffsets(content)}
}

// LineOf returns the 0-based line index that contains offset.
func (li *LineIndex) LineOf(offset int) int {
	i := sort.Search(len(li.offsets), func(i int) bool {
		return li.offsets[i] > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// Lines returns the number of lines in the indexed content.
func (li *LineIndex) Lines() int {
	return len(li.offsets)
}

// BuildLineOffsets returns a slice of byte offsets where each new line begins.
// E.g. if content[0]=='a' and content[5]=='\n', then offsets = [0,6,...].
func BuildLineOffsets(content string) []int {
	offsets := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' && i+1 < len(content) {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}
