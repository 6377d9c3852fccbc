package insight

// SampleSize exposes sampleSize to the external test package.
const SampleSize = sampleSize
