package pathtype

import (
	"path/filepath"
	"strings"
)

// categoryUnknownStr is the string representation for unknown category values.
const categoryUnknownStr = "unknown"

// Category represents the role a path plays in a stereo invocation,
// derived purely from its extension.
type Category string

// Path category constants.
const (
	// CategoryUnknown represents a path with no recognized extension.
	CategoryUnknown Category = ""
	// CategoryImage represents a raster image path.
	CategoryImage Category = "image"
	// CategoryCamera represents a camera model path.
	CategoryCamera Category = "camera"
	// CategoryShapefile represents an ESRI shapefile path.
	CategoryShapefile Category = "shapefile"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	if c == CategoryUnknown {
		return categoryUnknownStr
	}
	return string(c)
}

// IsValid returns true if this is a known category.
func (c Category) IsValid() bool {
	switch c {
	case CategoryImage, CategoryCamera, CategoryShapefile:
		return true
	default:
		return false
	}
}

// ParseCategory converts a string to Category.
func ParseCategory(s string) Category {
	switch s {
	case "image":
		return CategoryImage
	case "camera":
		return CategoryCamera
	case "shapefile":
		return CategoryShapefile
	default:
		return CategoryUnknown
	}
}

// imageExts are the extensions recognized as raster images.
// The cub extension appears here and in cameraExts: an ISIS cube carries
// both the pixels and the camera model.
var imageExts = map[string]bool{
	"tif": true, "tiff": true, "ntf": true,
	"png": true, "jpeg": true, "jpg": true, "jp2": true,
	"img": true, "cub": true,
	"bip": true, "bil": true, "bsq": true,
}

// pinholeExts are the extensions of pinhole-family camera model files.
var pinholeExts = map[string]bool{
	"cahvor": true, "cahv": true,
	"pin": true, "pinhole": true,
	"tsai": true, "cmod": true, "cahvore": true,
}

// cameraExts are the extensions of non-pinhole camera model files.
// Together with pinholeExts and cub these form the camera-eligible set.
var cameraExts = map[string]bool{
	"cub": true, "xml": true, "dim": true,
	"rpb": true, "json": true, "isd": true,
}

// Ext returns the extension of path without the leading dot, with case
// preserved. Extension matching against the category tables is an exact,
// lower-case literal match, so "IMG.TIF" does not classify as an image.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// HasImageExt returns true if path has a recognized image extension.
func HasImageExt(path string) bool {
	return imageExts[Ext(path)]
}

// HasPinholeExt returns true if path has a pinhole camera model extension.
func HasPinholeExt(path string) bool {
	return pinholeExts[Ext(path)]
}

// HasCamExt returns true if path is camera-eligible: a pinhole camera
// model, a metadata camera file (xml, dim, rpb, json, isd), or an ISIS
// cube.
func HasCamExt(path string) bool {
	return HasPinholeExt(path) || cameraExts[Ext(path)]
}

// HasShpExt returns true if path has a shapefile extension.
func HasShpExt(path string) bool {
	return Ext(path) == "shp"
}

// HasTifOrNtfExt returns true if path has a tif or ntf extension.
func HasTifOrNtfExt(path string) bool {
	ext := Ext(path)
	return ext == "tif" || ext == "ntf"
}

// Classify maps a path to its Category. Images win over cameras for the
// shared cub extension; camera-eligibility must be queried separately
// through HasCamExt.
func Classify(path string) Category {
	switch {
	case HasImageExt(path):
		return CategoryImage
	case HasCamExt(path):
		return CategoryCamera
	case HasShpExt(path):
		return CategoryShapefile
	default:
		return CategoryUnknown
	}
}

// AllHaveExt returns true if every file in files ends with ext,
// case-insensitively. This is a bulk homogeneity filter, not a category
// check: unlike the tables above it tolerates any letter case.
func AllHaveExt(files []string, ext string) bool {
	ext = strings.ToLower(ext)
	for _, f := range files {
		if !strings.HasSuffix(strings.ToLower(f), ext) {
			return false
		}
	}
	return true
}

// FilesWithExt returns the files ending with ext, case-insensitively,
// preserving order. If prune is true the matches are also removed from
// the input slice, which is modified in place and returned as remaining.
func FilesWithExt(files []string, ext string, prune bool) (matches, remaining []string) {
	ext = strings.ToLower(ext)
	if !prune {
		for _, f := range files {
			if strings.HasSuffix(strings.ToLower(f), ext) {
				matches = append(matches, f)
			}
		}
		return matches, files
	}
	remaining = files[:0]
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f), ext) {
			matches = append(matches, f)
		} else {
			remaining = append(remaining, f)
		}
	}
	return matches, remaining
}
