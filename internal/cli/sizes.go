package cli

// clampBlockSizes corrects block size configuration at the flag
// boundary: the minimum is at least 1 and the maximum at least the
// minimum. The segmenter documents these as preconditions and does not
// re-validate.
func clampBlockSizes(minSize, maxSize int) (int, int) {
	if minSize < 1 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return minSize, maxSize
}
