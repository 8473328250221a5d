package stereo

import (
	"errors"
	"fmt"
)

// Argument errors share fixed message text: the pipeline's driver scripts
// and GUI match on these strings, so they must not be reworded. The
// trailing newline is left to whoever prints the message.
//
// Design decision: Errors that carry no dynamic content are package-level
// sentinels, matching with errors.Is. Errors naming an offending path are
// typed, matching with errors.As, so callers can recover the path without
// string surgery.
var (
	// ErrTooFewInputs is returned when fewer than three positional
	// arguments remain after terrain model detection.
	ErrTooFewInputs = errors.New("Expecting at least three inputs to stereo.")

	// ErrOddPairing is returned when images and cameras are positionally
	// paired but the combined count is odd.
	ErrOddPairing = errors.New("Expecting as many images as cameras.")

	// ErrCountMismatch is returned when a non-empty camera list does not
	// match the image list in length.
	ErrCountMismatch = errors.New("Expecting the number of images and cameras to agree.")
)

// InvalidPrefixError reports an output prefix that is empty or that
// classifies as an image or a camera.
type InvalidPrefixError struct {
	// Prefix is the rejected output prefix.
	Prefix string
}

// Error returns the fixed-form message naming the rejected prefix.
func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("Invalid output prefix: %s.", e.Prefix)
}

// NotImageError reports a path in image position without an image extension.
type NotImageError struct {
	// Path is the offending path.
	Path string
}

// Error returns the fixed-form message naming the offending path.
func (e *NotImageError) Error() string {
	return fmt.Sprintf("Expecting an image, got: %s.", e.Path)
}

// NotCameraError reports a path in camera position that is not camera-eligible.
type NotCameraError struct {
	// Path is the offending path.
	Path string
}

// Error returns the fixed-form message naming the offending path.
func (e *NotCameraError) Error() string {
	return fmt.Sprintf("Expecting a camera, got: %s.", e.Path)
}

// MissingImageError reports an image path that does not exist on disk.
type MissingImageError struct {
	// Path is the missing path.
	Path string
}

// Error returns the fixed-form message naming the missing path.
func (e *MissingImageError) Error() string {
	return fmt.Sprintf("Cannot find the image file: %s.", e.Path)
}

// MissingCameraError reports a camera path that does not exist on disk.
type MissingCameraError struct {
	// Path is the missing path.
	Path string
}

// Error returns the fixed-form message naming the missing path.
func (e *MissingCameraError) Error() string {
	return fmt.Sprintf("Cannot find the camera file: %s.", e.Path)
}
