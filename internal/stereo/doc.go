// Package stereo recovers a strongly-typed stereo invocation from the
// loosely-structured positional arguments shared by the pipeline tools.
//
// The accepted grammar is:
//
//	<image> ... <image> [<camera> ... <camera>] <prefix> [<dem>]
//
// The package separates images from cameras, extracts the output prefix
// and an optional terrain model, and validates that every referenced path
// exists. A malformed invocation aborts the whole parse; there is no
// partial recovery.
//
// It also carries the small input-file helpers the tools share: metadata
// keyword parsing, plain list and vector files, and reading the target
// body name from the text header of an ISIS cube.
package stereo
