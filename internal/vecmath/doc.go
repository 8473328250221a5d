// Package vecmath provides the small fixed-arity numeric tuples used as
// command-line option values: 2D points and 2D/3D bounding boxes.
//
// Every type is parsed through one generic token pipeline: the raw option
// fragments are joined, re-split on any run of commas and whitespace, and
// checked against the declared arity before any element is converted. This
// lets users write "1,2", "1 2", or "1, 2" interchangeably.
//
// All types implement pflag.Value so they can be registered directly as
// cobra flag values.
package vecmath
