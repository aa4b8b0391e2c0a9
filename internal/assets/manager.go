// internal/assets/manager.go
package assets

import (
	"electro-shoot/pkg/logger"

	"github.com/sirupsen/logrus"
)

type releaser interface {
	Release()
}

// Manager caches the uploaded texture of every sprite.
type Manager struct {
	uploader Uploader
	textures map[string]Texture
}

// NewManager creates a Manager backed by uploader.
func NewManager(uploader Uploader) *Manager {
	return &Manager{
		uploader: uploader,
		textures: make(map[string]Texture),
	}
}

// Uploader exposes the backend used for sprite and atlas uploads.
func (m *Manager) Uploader() Uploader { return m.uploader }

// Texture returns the sprite's texture, uploading it on first use.
func (m *Manager) Texture(s *Sprite) Texture {
	if tex, ok := m.textures[s.Name]; ok {
		return tex
	}
	tex := m.uploader.Upload(s.Pixels, FilterNearest)
	m.textures[s.Name] = tex
	logger.Log.WithFields(logrus.Fields{
		"sprite": s.Name,
		"width":  s.Width(),
		"height": s.Height(),
	}).Debug("sprite texture uploaded")
	return tex
}

// Cleanup releases all cached textures.
func (m *Manager) Cleanup() {
	for name, tex := range m.textures {
		if r, ok := tex.(releaser); ok {
			r.Release()
		}
		delete(m.textures, name)
	}
	logger.Log.Debug("all sprite textures released")
}
