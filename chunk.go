package diffy

import "strings"

// Chunk is a maximal run of consecutive lines that share a tag.
type Chunk struct {
	Tag   Tag
	Lines []Line
}

// String returns the canonical form of every line in the chunk, concatenated.
func (c Chunk) String() string {
	var b strings.Builder
	for _, l := range c.Lines {
		b.WriteString(l.String())
	}
	return b.String()
}

// buildChunks splits script into chunks. The chunks partition the script:
// concatenating their lines gives back the script.
func buildChunks(script []Line) []Chunk {
	var chunks []Chunk
	start := 0
	for i := 1; i <= len(script); i++ {
		if i < len(script) && script[i].Tag == script[start].Tag {
			continue
		}
		chunks = append(chunks, Chunk{Tag: script[start].Tag, Lines: script[start:i:i]})
		start = i
	}
	return chunks
}
