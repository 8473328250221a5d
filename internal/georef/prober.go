package georef

import (
	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// GeoTIFF tag IDs in the root IFD. A raster is considered georeferenced
// when it carries a GeoKey directory, a full model transformation, or a
// pixel-scale plus tie-point pair.
const (
	tagModelPixelScale     = 0x830e // 33550
	tagModelTiepoint       = 0x8482 // 33922
	tagGeoKeyDirectory     = 0x87af // 34735
	tagModelTransformation = 0x85d8 // 34264
)

// Prober detects GeoTIFF georeferencing metadata in raster files.
//
// Design decision: The prober parses the TIFF IFD structure with go-exif
// instead of decoding pixels. A bare .tif starts with the TIFF byte-order
// header, so the same scanner that locates embedded Exif blocks parses the
// root IFD of a GeoTIFF directly.
type Prober struct {
	// ti is the tag index used to collect IFD entries. Collect drops
	// entries whose tags the index does not know, and none of the GeoTIFF
	// tags are standard Exif tags, so they must be registered up front.
	ti *exif.TagIndex
}

// NewProber creates a Prober with the GeoTIFF tags registered.
func NewProber() *Prober {
	return &Prober{ti: newGeoTagIndex()}
}

// newGeoTagIndex builds a tag index that knows the four GeoTIFF tags in
// addition to the standard set.
func newGeoTagIndex() *exif.TagIndex {
	ti := exif.NewTagIndex()
	for _, it := range []*exif.IndexedTag{
		{IfdPath: "IFD", Id: tagModelPixelScale, Name: "ModelPixelScaleTag",
			SupportedTypes: []exifcommon.TagTypePrimitive{exifcommon.TypeDouble}},
		{IfdPath: "IFD", Id: tagModelTiepoint, Name: "ModelTiepointTag",
			SupportedTypes: []exifcommon.TagTypePrimitive{exifcommon.TypeDouble}},
		{IfdPath: "IFD", Id: tagModelTransformation, Name: "ModelTransformationTag",
			SupportedTypes: []exifcommon.TagTypePrimitive{exifcommon.TypeDouble}},
		{IfdPath: "IFD", Id: tagGeoKeyDirectory, Name: "GeoKeyDirectoryTag",
			SupportedTypes: []exifcommon.TagTypePrimitive{exifcommon.TypeShort}},
	} {
		// Add only fails on re-registration, which cannot happen for a
		// fixed table of distinct ids.
		_ = ti.Add(it)
	}
	return ti
}

// Probe reports whether path reads as a georeferenced raster. Every
// failure mode collapses to false: missing file, unreadable file, not a
// TIFF, TIFF without georeferencing tags. The go-exif library can panic
// on malformed input, so the call is fenced with recover.
func (p *Prober) Probe(path string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	rawExif, err := exif.SearchFileAndExtractExif(path)
	if err != nil {
		return false
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return false
	}

	_, index, err := exif.Collect(im, p.ti, rawExif)
	if err != nil {
		return false
	}

	root := index.RootIfd
	if root == nil {
		return false
	}

	if hasTag(root, tagGeoKeyDirectory) || hasTag(root, tagModelTransformation) {
		return true
	}
	return hasTag(root, tagModelPixelScale) && hasTag(root, tagModelTiepoint)
}

// hasTag reports whether the IFD carries at least one entry with id.
func hasTag(ifd *exif.Ifd, id uint16) bool {
	results, err := ifd.FindTagWithId(id)
	return err == nil && len(results) > 0
}
