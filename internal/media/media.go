package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ai_dashboard_server/internal/types"
)

// ErrNoData is returned when there are no bytes to save.
var ErrNoData = errors.New("media has no data")

// Store writes generated media to disk and hands out public URLs.
type Store struct {
	dir     string
	baseURL string
	log     *zap.Logger
}

func NewStore(dir, baseURL string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	if baseURL == "" {
		baseURL = "/media"
	}
	return &Store{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), log: log}
}

// Dir is the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Saved describes a file written by Save.
type Saved struct {
	Name     string `json:"name"`
	MIMEType string `json:"mimeType"`
	URL      string `json:"url"`
}

// Save writes data as <uuid><ext> under the media directory.
// An empty mimeType is detected from the content.
func (s *Store) Save(data []byte, mimeType string) (Saved, error) {
	if len(data) == 0 {
		return Saved{}, ErrNoData
	}

	detected := mimetype.Detect(data)
	if mimeType == "" {
		mimeType = detected.String()
	}
	mimeType, _, _ = strings.Cut(mimeType, ";")
	ext := extension(mimeType, detected)

	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return Saved{}, fmt.Errorf("create media dir: %w", err)
	}

	name := uuid.NewString() + ext
	filePath := filepath.Join(s.dir, name)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return Saved{}, fmt.Errorf("write media file %s: %w", filePath, err)
	}

	s.log.Info("Media saved", zap.String("path", filePath), zap.String("mime", mimeType), zap.Int("bytes", len(data)))
	return Saved{Name: name, MIMEType: mimeType, URL: s.baseURL + "/" + path.Clean(name)}, nil
}

// SaveMedia saves generated media and records its URL on m.
func (s *Store) SaveMedia(m *types.Media) (Saved, error) {
	if m == nil {
		return Saved{}, ErrNoData
	}
	saved, err := s.Save(m.Data, m.MIMEType)
	if err != nil {
		return Saved{}, err
	}
	m.MIMEType = saved.MIMEType
	m.URL = saved.URL
	return saved, nil
}

func extension(mimeType string, detected *mimetype.MIME) string {
	if known := mimetype.Lookup(mimeType); known != nil && known.Extension() != "" {
		return known.Extension()
	}
	if detected != nil && detected.Extension() != "" {
		return detected.Extension()
	}
	return ".bin"
}

// DataURI encodes media as a data: URI, detecting the type when it is unset.
func DataURI(m *types.Media) string {
	if m == nil || len(m.Data) == 0 {
		return ""
	}
	mimeType := m.MIMEType
	if mimeType == "" {
		mimeType = mimetype.Detect(m.Data).String()
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(m.Data)
}
