package stereo

import (
	"errors"
	"reflect"
	"testing"
)

func TestSeparateImagesFromCameras(t *testing.T) {
	t.Parallel()

	t.Run("cubes only are all images", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras([]string{"a.cub", "b.cub"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(images, []string{"a.cub", "b.cub"}) {
			t.Errorf("unexpected images: %v", images)
		}
		if len(cameras) != 0 {
			t.Errorf("expected no cameras, got %v", cameras)
		}
	})

	t.Run("no camera files means all images", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras([]string{"a.tif", "b.tif"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(images, []string{"a.tif", "b.tif"}) {
			t.Errorf("unexpected images: %v", images)
		}
		if len(cameras) != 0 {
			t.Errorf("expected no cameras, got %v", cameras)
		}
	})

	t.Run("images paired with cameras split in half", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif", "a.tsai", "b.tsai"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(images, []string{"a.tif", "b.tif"}) {
			t.Errorf("unexpected images: %v", images)
		}
		if !reflect.DeepEqual(cameras, []string{"a.tsai", "b.tsai"}) {
			t.Errorf("unexpected cameras: %v", cameras)
		}
	})

	t.Run("projected images with cube cameras", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif", "a.cub", "b.cub"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(images, []string{"a.tif", "b.tif"}) {
			t.Errorf("unexpected images: %v", images)
		}
		if !reflect.DeepEqual(cameras, []string{"a.cub", "b.cub"}) {
			t.Errorf("unexpected cameras: %v", cameras)
		}
	})

	t.Run("interleaved inputs are reordered", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras(
			[]string{"a.tif", "a.tsai", "b.tif", "b.tsai"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(images, []string{"a.tif", "b.tif"}) {
			t.Errorf("unexpected images: %v", images)
		}
		if !reflect.DeepEqual(cameras, []string{"a.tsai", "b.tsai"}) {
			t.Errorf("unexpected cameras: %v", cameras)
		}
	})

	t.Run("interleaving matches images-first ordering", func(t *testing.T) {
		t.Parallel()
		want, wantCams, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif", "c.tif", "a.xml", "b.xml", "c.xml"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, gotCams, err := SeparateImagesFromCameras(
			[]string{"a.xml", "a.tif", "b.xml", "b.tif", "c.tif", "c.xml"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("images differ: %v vs %v", got, want)
		}
		if !reflect.DeepEqual(gotCams, wantCams) {
			t.Errorf("cameras differ: %v vs %v", gotCams, wantCams)
		}
	})

	t.Run("odd count with cameras fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif", "a.tsai"}, false)
		if !errors.Is(err, ErrOddPairing) {
			t.Errorf("expected ErrOddPairing, got %v", err)
		}
	})

	t.Run("non-camera in camera position fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif", "a.tsai", "notes.txt"}, false)
		var notCam *NotCameraError
		if !errors.As(err, &notCam) {
			t.Fatalf("expected NotCameraError, got %v", err)
		}
		if notCam.Path != "notes.txt" {
			t.Errorf("unexpected path: %s", notCam.Path)
		}
	})

	t.Run("non-image in image position fails", func(t *testing.T) {
		t.Parallel()
		_, _, err := SeparateImagesFromCameras(
			[]string{"a.tif", "x.txt", "y.txt", "z.tsai"}, false)
		var notImg *NotImageError
		if !errors.As(err, &notImg) {
			t.Fatalf("expected NotImageError, got %v", err)
		}
		if notImg.Path != "x.txt" {
			t.Errorf("unexpected path: %s", notImg.Path)
		}
	})

	t.Run("equalize pads cameras with empty strings", func(t *testing.T) {
		t.Parallel()
		images, cameras, err := SeparateImagesFromCameras(
			[]string{"a.tif", "b.tif"}, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cameras) != len(images) {
			t.Fatalf("expected %d cameras, got %d", len(images), len(cameras))
		}
		for _, cam := range cameras {
			if cam != "" {
				t.Errorf("expected empty placeholder, got %q", cam)
			}
		}
	})

	t.Run("separation is idempotent on an all-image list", func(t *testing.T) {
		t.Parallel()
		first, _, err := SeparateImagesFromCameras([]string{"a.tif", "b.png"}, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _, err := SeparateImagesFromCameras(first, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("separation not idempotent: %v vs %v", first, second)
		}
	})

	t.Run("error messages keep their fixed wording", func(t *testing.T) {
		t.Parallel()
		if got := ErrOddPairing.Error(); got != "Expecting as many images as cameras." {
			t.Errorf("unexpected message: %q", got)
		}
		if got := ErrCountMismatch.Error(); got != "Expecting the number of images and cameras to agree." {
			t.Errorf("unexpected message: %q", got)
		}
		if got := (&NotImageError{Path: "x.txt"}).Error(); got != "Expecting an image, got: x.txt." {
			t.Errorf("unexpected message: %q", got)
		}
		if got := (&NotCameraError{Path: "x.txt"}).Error(); got != "Expecting a camera, got: x.txt." {
			t.Errorf("unexpected message: %q", got)
		}
	})
}
