// Package georef answers one question: does a path read as a
// georeferenced raster? It is used to detect an optional terrain model
// supplied as the final positional argument of a stereo invocation.
//
// The probe is deliberately result-returning rather than error-returning:
// a file that does not exist, is not a TIFF, or carries no georeferencing
// tags all produce the same false answer. Nothing is propagated and no
// file handle outlives the call.
package georef
