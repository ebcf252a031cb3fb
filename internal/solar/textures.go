package solar

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"

	"SolarSystem/internal/behaviour"
	"SolarSystem/internal/logger"
	"SolarSystem/internal/procedural"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Palette returns the noise parameters used to paint a stand-in texture for
// a body whose texture file is missing.
func Palette(kind behaviour.BodyKind) procedural.Params {
	p := procedural.DefaultParams()
	switch kind {
	case behaviour.BodySun:
		p.Scale = 1
		p.Complexity = 3
		p.Color = procedural.HexColor(0xffd24d)
		p.Background = procedural.HexColor(0xff5a00)
		p.Seed = mgl64.Vec3{11, 3, 7}
	case behaviour.BodyEarth:
		p.Scale = 1.5
		p.Color = procedural.HexColor(0xffc870)
		p.Background = procedural.HexColor(0x06122a)
		p.Seed = mgl64.Vec3{-4, 9, 2}
	case behaviour.BodyMoon:
		p.Scale = 2.5
		p.Complexity = 1
		p.Color = procedural.HexColor(0xd8d8d8)
		p.Background = procedural.HexColor(0x3a3a3a)
		p.Seed = mgl64.Vec3{5, -6, 1}
	}
	return p
}

// FallbackTexture bakes the stand-in texture of kind.
func FallbackTexture(ctx context.Context, kind behaviour.BodyKind, width, height int) (*image.RGBA, error) {
	opts := procedural.DefaultBakeOptions()
	opts.Width = width
	opts.Height = height
	img, err := procedural.Bake(ctx, Palette(kind), opts)
	if err != nil {
		return nil, fmt.Errorf("fallback texture for %s: %w", kind, err)
	}
	return img, nil
}

// textureOrFallback returns nil when path can be loaded from disk, otherwise
// a baked stand-in.
func textureOrFallback(ctx context.Context, kind behaviour.BodyKind, path string, width, height int) (*image.RGBA, error) {
	if path != "" {
		_, err := os.Stat(path)
		if err == nil {
			return nil, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("texture %s: %w", path, err)
		}
	}
	logger.Log.Info("Texture missing, baking fallback",
		zap.String("body", string(kind)),
		zap.String("path", path))
	return FallbackTexture(ctx, kind, width, height)
}
