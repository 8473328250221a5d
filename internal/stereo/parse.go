package stereo

import (
	"fmt"
	"io"
	"os"

	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/pathtype"
)

// GeoProber reports whether a path reads as a georeferenced raster.
// It is consulted once per parse, on the final positional argument, to
// detect an optional terrain model. Implementations must be
// side-effect-free beyond the boolean answer.
type GeoProber interface {
	Probe(path string) bool
}

// Invocation is the validated result of parsing the positional arguments.
// Prefix is never empty and never classifies as an image or a camera.
// DEMPath is empty when no terrain model was supplied.
type Invocation struct {
	// Images are the input image paths, in argument order.
	Images []string

	// Cameras are the camera model paths, in argument order. Empty when
	// the images carry their own camera information.
	Cameras []string

	// Prefix is the output prefix for all files the tools will produce.
	Prefix string

	// DEMPath is the optional terrain model, detected by the georeference
	// probe on the last positional argument.
	DEMPath string
}

// Parser parses the positional arguments of a stereo invocation.
type Parser struct {
	// prober detects a trailing terrain model argument.
	prober GeoProber

	// warnOut receives advisory warnings. Warnings never abort the parse.
	warnOut io.Writer

	// stat checks path existence; replaced in tests.
	stat func(string) (os.FileInfo, error)
}

// Option configures a Parser.
type Option func(*Parser)

// WithWarningWriter directs advisory warnings to w instead of stderr.
func WithWarningWriter(w io.Writer) Option {
	return func(p *Parser) {
		p.warnOut = w
	}
}

// NewParser creates a Parser using the given georeference prober.
func NewParser(prober GeoProber, opts ...Option) *Parser {
	p := &Parser{
		prober:  prober,
		warnOut: os.Stderr,
		stat:    os.Stat,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse consumes the raw positional tokens and produces a validated
// Invocation. The accepted grammar is:
//
//	<image> ... <image> [<camera> ... <camera>] <prefix> [<dem>]
//
// The last token is first speculatively probed as a georeferenced raster;
// a failed probe means "no terrain model" and is never an error. The
// output prefix is then popped and validated, the remainder is separated
// into images and cameras, and every resulting path is checked for
// existence. The first missing path aborts the parse.
func (p *Parser) Parse(tokens []string) (*Invocation, error) {
	inv := &Invocation{}

	// Work on a copy; the caller's slice is never modified.
	files := make([]string, len(tokens))
	copy(files, tokens)

	if len(files) > 0 && p.prober.Probe(files[len(files)-1]) {
		inv.DEMPath = files[len(files)-1]
		files = files[:len(files)-1]
	}

	if len(files) < 3 {
		return nil, ErrTooFewInputs
	}

	inv.Prefix = files[len(files)-1]
	if inv.Prefix == "" || pathtype.HasImageExt(inv.Prefix) || pathtype.HasCamExt(inv.Prefix) {
		return nil, &InvalidPrefixError{Prefix: inv.Prefix}
	}
	files = files[:len(files)-1]

	images, cameras, err := SeparateImagesFromCameras(files, false)
	if err != nil {
		return nil, err
	}
	inv.Images = images
	inv.Cameras = cameras

	// Advisory only: a pre-existing file at the prefix is usually a
	// mistyped invocation, but it is not ours to reject.
	if _, err := p.stat(inv.Prefix); err == nil {
		fmt.Fprintf(p.warnOut,
			"It appears that the output prefix exists as a file: %s. Perhaps this was not intended.\n",
			inv.Prefix)
	}

	for _, img := range inv.Images {
		if _, err := p.stat(img); err != nil {
			return nil, &MissingImageError{Path: img}
		}
	}
	for _, cam := range inv.Cameras {
		if _, err := p.stat(cam); err != nil {
			return nil, &MissingCameraError{Path: cam}
		}
	}

	return inv, nil
}
