// Package main provides the entry point for the stereoprep CLI.
//
// stereoprep validates the positional arguments of a stereo correlation
// invocation before the heavy pipeline tools run. It disambiguates
// images from camera models, detects an optional trailing terrain
// model, and checks that every input exists.
//
// Usage:
//
//	stereoprep check <images> [<cameras>] <output-prefix> [<dem>]
//	stereoprep history
//
// See --help for all available options.
package main

// main is the entry point for stereoprep.
func main() {
	Execute()
}
