package stack

// These aliases expose unexported identifiers to the external test package.
const (
	SampleSize    = sampleSize
	ExcerptLength = excerptLength
)

var Excerpt = excerpt
