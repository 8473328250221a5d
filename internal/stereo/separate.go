package stereo

import (
	"github.com/Dexter-Lab-IITMandi/StereoPipeline/internal/pathtype"
)

// SeparateImagesFromCameras partitions a flat list of image and camera
// paths into an image list and a camera list.
//
// Several invocation shapes must be recognized:
//
//  1. img1.cub ... imgN.cub                          cubes carrying their own camera
//  2. img1.tif ... imgN.tif cub1.cub ... cubN.cub    projected images with cube cameras
//  3. img1.tif ... imgN.tif                          metadata embedded in the image
//  4. img1.tif ... imgN.tif cam1 ... camN            separate camera files
//
// Images and cameras may arrive interleaved, so the inputs are first
// stably reordered with all images in front. When cameras are present the
// list is split exactly in half by position: camera files routinely share
// extensions with images (notably cub), so the split trusts the argument
// ordering convention rather than content inspection.
//
// When equalizeSizes is true the camera list is right-padded with empty
// strings until it matches the image list in length.
func SeparateImagesFromCameras(inputs []string, equalizeSizes bool) (images, cameras []string, err error) {
	// Stable partition: images first, camera candidates after.
	reordered := make([]string, 0, len(inputs))
	var candidates []string
	for _, in := range inputs {
		if pathtype.HasImageExt(in) {
			reordered = append(reordered, in)
		} else {
			candidates = append(candidates, in)
		}
	}
	reordered = append(reordered, candidates...)

	hasCub := false
	hasNonCub := false
	hasCam := false
	for _, in := range reordered {
		if pathtype.Ext(in) == "cub" {
			hasCub = true
		} else {
			hasNonCub = true
		}
		if pathtype.HasCamExt(in) {
			hasCam = true
		}
	}

	if (hasCub && !hasNonCub) || !hasCam {
		// Only cubes, or no camera-extension files at all: everything is
		// an image (shapes 1 and 3 above).
		images = append(images, reordered...)
	} else {
		// Images followed by cameras, split purely by count.
		if len(reordered)%2 != 0 {
			return nil, nil, ErrOddPairing
		}
		half := len(reordered) / 2
		images = append(images, reordered[:half]...)
		cameras = append(cameras, reordered[half:]...)
	}

	for _, img := range images {
		if !pathtype.HasImageExt(img) {
			return nil, nil, &NotImageError{Path: img}
		}
	}
	for _, cam := range cameras {
		if !pathtype.HasCamExt(cam) {
			return nil, nil, &NotCameraError{Path: cam}
		}
	}

	// Scenario transitions are the only way to get here with differing
	// non-empty lists; the half split guarantees equality by construction.
	if len(images) != len(cameras) && len(cameras) != 0 {
		return nil, nil, ErrCountMismatch
	}

	if equalizeSizes {
		for len(cameras) < len(images) {
			cameras = append(cameras, "")
		}
	}

	return images, cameras, nil
}
