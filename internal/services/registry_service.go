package services

import (
	"encoding/json"
	"math/rand"
	"strings"
	"sync"
	"unicode"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
	"pocketledger/internal/models"
	"pocketledger/internal/storage"
)

// ColorChooser picks an index into the custom-color palette. Production uses
// math/rand; tests inject a deterministic chooser.
type ColorChooser func(paletteSize int) int

// registryService owns category styles and the subcategory hierarchy.
// Matching is case-insensitive everywhere; the canonical stored key is
// whichever casing was registered first.
type registryService struct {
	mu     sync.Mutex
	blobs  storage.Blobs
	choose ColorChooser

	order     []string
	styles    map[string]models.CategoryStyle
	hierarchy map[string][]string
}

// NewRegistryService loads the registry from storage, falling back to the
// built-in seed set when the blob is missing or unreadable. A nil chooser
// defaults to math/rand.
func NewRegistryService(blobs storage.Blobs, choose ColorChooser) CategoryRegistrar {
	if choose == nil {
		choose = rand.Intn
	}
	s := &registryService{
		blobs:     blobs,
		choose:    choose,
		styles:    make(map[string]models.CategoryStyle),
		hierarchy: make(map[string][]string),
	}
	s.seedDefaults()
	s.load()
	return s
}

func (s *registryService) seedDefaults() {
	for _, name := range models.DefaultCategories {
		s.order = append(s.order, name)
		s.styles[name] = models.DefaultCategoryStyles[name]
		s.hierarchy[name] = nil
	}
}

// load merges the persisted snapshot over the seeded defaults. Corrupt data
// is logged and ignored so startup always succeeds.
func (s *registryService) load() {
	data, ok := s.blobs.ReadBlob(storage.BlobCategories)
	if !ok {
		return
	}

	var snap models.RegistrySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Get().Warnw("discarding corrupt category registry blob", "error", err)
		return
	}

	for _, name := range snap.Order {
		style, hasStyle := snap.Styles[name]
		if _, seeded := s.styles[name]; !seeded {
			s.order = append(s.order, name)
		}
		if hasStyle {
			s.styles[name] = style
		}
		if subs, ok := snap.Hierarchy[name]; ok {
			s.hierarchy[name] = subs
		} else if _, exists := s.hierarchy[name]; !exists {
			s.hierarchy[name] = nil
		}
	}
}

func (s *registryService) persist() error {
	snap := models.RegistrySnapshot{
		Order:     s.order,
		Styles:    s.styles,
		Hierarchy: s.hierarchy,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	if err := s.blobs.WriteBlob(storage.BlobCategories, data); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}

// Normalize trims the raw name, resolves case-insensitive matches to the
// existing key, and Title-Cases anything new. Blank input lands in the
// fallback category.
func (s *registryService) Normalize(raw string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.normalizeLocked(raw)
}

func (s *registryService) normalizeLocked(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return models.FallbackCategory
	}
	for _, existing := range s.order {
		if strings.EqualFold(existing, name) {
			return existing
		}
	}
	return titleCase(name)
}

// titleCase upper-cases the first rune and lower-cases the rest. Deliberately
// simple; not full Unicode title-casing.
func titleCase(name string) string {
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// RegisterCategory inserts name with a palette color and custom flag. No-op
// when the exact key already exists.
func (s *registryService) RegisterCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.styles[name]; exists {
		return nil
	}

	color := models.CustomCategoryColors[s.choose(len(models.CustomCategoryColors))]
	s.order = append(s.order, name)
	s.styles[name] = models.CategoryStyle{ColorClass: color, IsCustom: true}
	s.hierarchy[name] = nil
	return s.persist()
}

// RegisterSubcategory appends sub to category's list, creating the hierarchy
// key if the category has none yet. Blank names are ignored; a
// case-insensitive duplicate returns the entry that already holds its spot.
func (s *registryService) RegisterSubcategory(category, sub string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub = strings.TrimSpace(sub)
	if sub == "" {
		return "", nil
	}

	for _, existing := range s.hierarchy[category] {
		if strings.EqualFold(existing, sub) {
			return existing, nil
		}
	}

	s.hierarchy[category] = append(s.hierarchy[category], sub)
	return sub, s.persist()
}

// DeleteSubcategory removes the exact-match entry from category's list.
// Historical transactions keep their subcategory value; taxonomy deletion
// does not cascade.
func (s *registryService) DeleteSubcategory(category, sub string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.hierarchy[category]
	for i, existing := range subs {
		if existing == sub {
			s.hierarchy[category] = append(subs[:i], subs[i+1:]...)
			return s.persist()
		}
	}
	return nil
}

// AvailableCategories returns category names in insertion order: built-ins
// first, then customs in creation order.
func (s *registryService) AvailableCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Styles returns a copy of the style map.
func (s *registryService) Styles() map[string]models.CategoryStyle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.CategoryStyle, len(s.styles))
	for name, style := range s.styles {
		out[name] = style
	}
	return out
}

// StyleFor returns the style of the named category, or the neutral style if
// it was never registered.
func (s *registryService) StyleFor(name string) models.CategoryStyle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if style, ok := s.styles[name]; ok {
		return style
	}
	return models.NeutralStyle
}

// Hierarchy returns a copy of the category → subcategories map.
func (s *registryService) Hierarchy() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]string, len(s.hierarchy))
	for name, subs := range s.hierarchy {
		out[name] = append([]string(nil), subs...)
	}
	return out
}
