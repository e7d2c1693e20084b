package generator

import "errors"

// Error taxonomy for the generation pipeline. Only ErrGeneration is fatal
// for a request; retrieval and metadata extraction degrade locally and are
// never surfaced to the caller.
var (
	// ErrGeneration marks a failed generative model call. Surfaced in the
	// result envelope with success=false.
	ErrGeneration = errors.New("article generation failed")

	// ErrMetadataExtraction marks a failed LLM-assisted metadata call.
	// Recovered internally via the deterministic fallback.
	ErrMetadataExtraction = errors.New("metadata extraction failed")
)
