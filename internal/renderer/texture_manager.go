package renderer

import (
	"fmt"
	"image"
	"sync"

	"SolarSystem/internal/logger"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	ActiveTextures int
}

type textureEntry struct {
	id   uint32
	refs int
}

// TextureManager shares GL textures between models. Textures are keyed by
// file path, or by name for baked images, and freed when the last model
// releases them.
type TextureManager struct {
	mu      sync.RWMutex
	entries map[string]*textureEntry
	keys    map[uint32]string
	stats   TextureStats
}

func NewTextureManager() *TextureManager {
	return &TextureManager{
		entries: make(map[string]*textureEntry),
		keys:    make(map[uint32]string),
	}
}

// LoadTexture decodes filePath with bild, or returns the cached texture.
// Every call adds a reference.
func (tm *TextureManager) LoadTexture(filePath string) (uint32, error) {
	if textureID, ok := tm.acquire(filePath); ok {
		return textureID, nil
	}

	img, err := imgio.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("load texture %s: %w", filePath, err)
	}
	return tm.upload(filePath, img), nil
}

// CreateTextureFromImage uploads img under name, or returns the texture
// already cached under that name.
func (tm *TextureManager) CreateTextureFromImage(img image.Image, name string) (uint32, error) {
	if textureID, ok := tm.acquire(name); ok {
		return textureID, nil
	}
	if img.Bounds().Empty() {
		return 0, fmt.Errorf("texture %s: empty image", name)
	}
	return tm.upload(name, img), nil
}

func (tm *TextureManager) acquire(key string) (uint32, bool) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	entry, ok := tm.entries[key]
	if !ok {
		tm.stats.CacheMisses++
		return 0, false
	}
	entry.refs++
	tm.stats.CacheHits++
	logger.Log.Debug("Texture cache hit",
		zap.String("key", key),
		zap.Uint32("textureID", entry.id),
		zap.Int("refs", entry.refs))
	return entry.id, true
}

func (tm *TextureManager) upload(key string, img image.Image) uint32 {
	rgba := clone.AsRGBA(img)
	size := rgba.Rect.Size()

	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(size.X), int32(size.Y),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// Longitude wraps, latitude stops at the poles
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	tm.mu.Lock()
	tm.track(key, textureID)
	tm.mu.Unlock()

	logger.Log.Info("Texture uploaded",
		zap.String("key", key),
		zap.Uint32("textureID", textureID),
		zap.Int("width", size.X),
		zap.Int("height", size.Y))

	return textureID
}

// track records a new texture with one reference. tm.mu must be held.
func (tm *TextureManager) track(key string, textureID uint32) {
	tm.entries[key] = &textureEntry{id: textureID, refs: 1}
	tm.keys[textureID] = key
	tm.stats.TotalTextures++
}

// ReleaseTexture drops one reference and deletes the texture with the last.
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	key, ok := tm.keys[textureID]
	if !ok {
		logger.Log.Warn("Attempted to release unknown texture", zap.Uint32("textureID", textureID))
		return
	}
	entry := tm.entries[key]
	entry.refs--
	if entry.refs > 0 {
		return
	}

	gl.DeleteTextures(1, &textureID)
	delete(tm.entries, key)
	delete(tm.keys, textureID)
	logger.Log.Info("Texture freed", zap.Uint32("textureID", textureID), zap.String("key", key))
}

func (tm *TextureManager) GetStats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := tm.stats
	stats.ActiveTextures = len(tm.entries)
	return stats
}

func (tm *TextureManager) LogStats() {
	stats := tm.GetStats()
	fields := []zap.Field{
		zap.Int("totalTextures", stats.TotalTextures),
		zap.Int("activeTextures", stats.ActiveTextures),
		zap.Int("cacheHits", stats.CacheHits),
		zap.Int("cacheMisses", stats.CacheMisses),
	}
	if lookups := stats.CacheHits + stats.CacheMisses; lookups > 0 {
		fields = append(fields, zap.Float64("hitRate", float64(stats.CacheHits)/float64(lookups)))
	}
	logger.Log.Info("Texture stats", fields...)
}

// Clear deletes every texture regardless of references.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for textureID := range tm.keys {
		id := textureID
		gl.DeleteTextures(1, &id)
	}
	tm.entries = make(map[string]*textureEntry)
	tm.keys = make(map[uint32]string)
}
