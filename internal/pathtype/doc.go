// Package pathtype classifies filesystem paths by their textual extension.
// It decides whether a path names an image, a camera model, or a shapefile,
// using the fixed extension tables shared by all tools in the pipeline.
// Classification is a pure function of the path string; no file is opened.
package pathtype
