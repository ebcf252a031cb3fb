package procedural

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"SolarSystem/internal/logger"

	"github.com/alitto/pond/v2"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// BakeOptions describes the equirectangular texture produced by Bake.
type BakeOptions struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Radius  float64 `toml:"radius"`  // Radius of the sphere the texture wraps
	Workers int     `toml:"workers"` // 0 means one per CPU
}

func DefaultBakeOptions() BakeOptions {
	return BakeOptions{
		Width:   1024,
		Height:  512,
		Radius:  1,
		Workers: 0,
	}
}

// SpherePoint returns the point of a sphere at texture coordinates (u, v).
// u runs around the equator, v from the north pole (0) to the south pole (1).
// Sphere meshes use the same convention for their vertices.
func SpherePoint(u, v, radius float64) mgl64.Vec3 {
	phi := u * 2 * math.Pi
	theta := v * math.Pi
	return mgl64.Vec3{
		-radius * math.Cos(phi) * math.Sin(theta),
		radius * math.Cos(theta),
		radius * math.Sin(phi) * math.Sin(theta),
	}
}

// Pixel clamps a color into an opaque 8-bit pixel.
func Pixel(params Params, position mgl64.Vec3) color.RGBA {
	r, g, b := DysonSphere(params, position).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Bake evaluates the pattern over a sphere and returns it as an
// equirectangular texture. Rows are shaded concurrently; cancelling ctx stops
// the bake and returns ctx.Err().
func Bake(ctx context.Context, params Params, opts BakeOptions) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid bake size %dx%d", opts.Width, opts.Height)
	}
	if opts.Radius <= 0 {
		opts.Radius = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))

	pool := pond.NewPool(opts.Workers)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for y := 0; y < opts.Height; y++ {
		y := y
		group.SubmitErr(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			bakeRow(img, params, opts, y)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Log.Info("Texture baked",
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height),
		zap.Int("octaves", Octaves(params.Complexity)),
		zap.Duration("elapsed", time.Since(start)))

	return img, nil
}

// bakeRow writes one row. Rows never share pixels so no locking is needed.
func bakeRow(img *image.RGBA, params Params, opts BakeOptions, y int) {
	v := (float64(y) + 0.5) / float64(opts.Height)
	for x := 0; x < opts.Width; x++ {
		u := (float64(x) + 0.5) / float64(opts.Width)
		img.SetRGBA(x, y, Pixel(params, SpherePoint(u, v, opts.Radius)))
	}
}

// SaveTexture writes img as PNG or JPEG depending on the extension of path.
func SaveTexture(path string, img image.Image) error {
	var encoder imgio.Encoder
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encoder = imgio.PNGEncoder()
	case ".jpg", ".jpeg":
		encoder = imgio.JPEGEncoder(95)
	default:
		return fmt.Errorf("unsupported texture format %q", ext)
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("save texture %s: %w", path, err)
	}
	logger.Log.Info("Texture saved", zap.String("path", path))
	return nil
}

// Thumbnail scales img so its width is width pixels, keeping the aspect ratio.
func Thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	if width <= 0 || b.Dx() == 0 {
		width = 1
	}
	height := b.Dy() * width / max(b.Dx(), 1)
	if height < 1 {
		height = 1
	}
	return transform.Resize(img, width, height, transform.Linear)
}
