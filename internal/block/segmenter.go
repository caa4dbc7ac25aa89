package block

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/maheshrk/storyclip/internal/subtitle"
)

// Segmenter partitions an entry sequence into blocks whose sizes vary
// pseudo-randomly between MinSize and MaxSize.
//
// Precondition: MinSize >= 1 and MaxSize >= MinSize. The command layer
// clamps its flag values before constructing a Segmenter; the segmenter
// itself does not validate.
type Segmenter struct {
	MinSize int
	MaxSize int

	rng *rand.Rand
}

// NewSegmenter creates a segmenter backed by a system-seeded random
// source. Two runs over identical input may group differently; use
// NewSegmenterWithSource for reproducible output.
func NewSegmenter(minSize, maxSize int) *Segmenter {
	return NewSegmenterWithSource(
		minSize,
		maxSize,
		rand.NewSource(time.Now().UnixNano()),
	)
}

// NewSegmenterWithSource creates a segmenter drawing block sizes from
// the given source.
func NewSegmenterWithSource(
	minSize, maxSize int,
	src rand.Source,
) *Segmenter {
	return &Segmenter{
		MinSize: minSize,
		MaxSize: maxSize,
		rng:     rand.New(src),
	}
}

// Segment groups entries into consecutive blocks.
//
// While entries remain it draws a block size uniformly from
// [MinSize, MaxSize] (clamped to what is left). Two rules keep trailing
// blocks from falling below MinSize: when no more than MinSize entries
// remain they all go into one final block, and when a drawn size would
// strand a non-zero remainder smaller than MinSize the remainder is
// merged into the current block instead. The final block may therefore
// exceed MaxSize; interior blocks never do.
func (s *Segmenter) Segment(entries []subtitle.Entry) []Block {
	var blocks []Block
	cursor := 0

	for cursor < len(entries) {
		remaining := len(entries) - cursor
		id := fmt.Sprintf("block-%d", len(blocks)+1)

		if remaining <= s.MinSize {
			blocks = append(blocks, newBlock(id, entries[cursor:]))
			break
		}

		effectiveMin := s.MinSize
		if effectiveMin > remaining {
			effectiveMin = remaining
		}
		effectiveMax := s.MaxSize
		if effectiveMax > remaining {
			effectiveMax = remaining
		}

		size := effectiveMin + s.rng.Intn(effectiveMax-effectiveMin+1)

		leftover := remaining - size
		if leftover > 0 && leftover < s.MinSize {
			// Taking size entries would strand an undersized tail;
			// absorb it into this block.
			blocks = append(blocks, newBlock(id, entries[cursor:]))
			break
		}

		blocks = append(blocks, newBlock(id, entries[cursor:cursor+size]))
		cursor += size
	}

	return blocks
}
