// Package imaging decodes uploaded photos, fits them under a bounding box
// and re-encodes them as JPEG data URIs, so product and slide records stay
// self-contained with no separate file to fetch.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// Preset is a bounding box plus JPEG quality (0.0–1.0).
type Preset struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64
}

var (
	// ProductPreset fits product photos.
	ProductPreset = Preset{MaxWidth: 800, MaxHeight: 800, Quality: 0.85}
	// SlidePreset fits the wide carousel banners.
	SlidePreset = Preset{MaxWidth: 1200, MaxHeight: 600, Quality: 0.9}
)

// Compress decodes data, scales it under the preset's bounding box and
// returns a JPEG data URI. Only JPEG and PNG uploads are accepted, judged by
// the declared content type, not by sniffing. Callers cap input size (5 MB)
// before invoking; Compress does not enforce it.
//
// The clamp is sequential: width first, then height on the already-scaled
// result. An extreme aspect ratio can therefore under-fill one dimension;
// that matches the stored catalogs produced so far and must not change.
func Compress(data []byte, contentType string, p Preset) (string, error) {
	switch contentType {
	case "image/jpeg", "image/png":
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedImageFormat, contentType)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decodificar imagen: %w", err)
	}

	w, h := FitBox(src.Bounds().Dx(), src.Bounds().Dy(), p.MaxWidth, p.MaxHeight)

	// Opaque white matte: transparent PNG regions come out white, and the
	// JPEG encoder gets a fully opaque image.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(dst, dst.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)

	var buf bytes.Buffer
	opts := &jpeg.Options{Quality: int(math.Round(p.Quality * 100))}
	if err := jpeg.Encode(&buf, dst, opts); err != nil {
		return "", fmt.Errorf("codificar imagen: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// FitBox applies the two-step clamp: scale to maxW if the width overflows,
// then scale the result to maxH if the height still overflows.
func FitBox(w, h, maxW, maxH int) (int, int) {
	if w > maxW {
		h = int(math.Round(float64(h) * float64(maxW) / float64(w)))
		w = maxW
	}
	if h > maxH {
		w = int(math.Round(float64(w) * float64(maxH) / float64(h)))
		h = maxH
	}
	return w, h
}
