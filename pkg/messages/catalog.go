package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultLanguage is used when a catalog is created without WithDefaultLanguage.
const DefaultLanguage = "en"

// Catalog stores message trees per language. It is safe for concurrent use.
type Catalog struct {
	mu          sync.RWMutex
	trees       map[string]map[string]any
	defaultLang string
	langs       []string
	matcher     language.Matcher
	logger      *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when negotiation finds no match.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used to report missing messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		trees:       make(map[string]map[string]any),
		defaultLang: DefaultLanguage,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.rebuildLocked()
	return c
}

// Add merges a message tree into lang. Later values win on key conflicts.
func (c *Catalog) Add(lang string, tree map[string]any) {
	lang = normalize(lang)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.trees[lang] == nil {
		c.trees[lang] = make(map[string]any, len(tree))
	}
	merge(c.trees[lang], tree)
	c.rebuildLocked()
}

// Load parses content and adds every language it contains.
func (c *Catalog) Load(ctx context.Context, p Parser, content []byte) error {
	data, err := p.Parse(ctx, content)
	if err != nil {
		return err
	}
	for _, lang := range slices.Sorted(maps.Keys(data)) {
		c.Add(lang, data[lang])
	}
	c.logger.DebugContext(ctx, "messages loaded", slog.Any("languages", c.Languages()))
	return nil
}

// LoadFile loads a .json, .yaml or .yml file.
func (c *Catalog) LoadFile(ctx context.Context, filename string) error {
	p := NewParserForFile(filename)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	return c.Load(ctx, p, content)
}

// LoadFS loads every supported file of fsys matching pattern.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, pattern string) error {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return err
	}
	for _, name := range names {
		p := NewParserForFile(path.Base(name))
		if p == nil {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if err := c.Load(ctx, p, content); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Languages returns the loaded languages, default first.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.langs)
}

// Match negotiates the best loaded language for the requested ones, which
// may be plain tags or Accept-Language header values.
func (c *Catalog) Match(requested ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.langs) == 0 {
		return c.defaultLang
	}
	_, idx := language.MatchStrings(c.matcher, requested...)
	return c.langs[idx]
}

// Lookup returns the message stored under key for lang exactly, without
// negotiation or fallback.
func (c *Catalog) Lookup(lang, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tree, ok := c.trees[normalize(lang)]
	if !ok {
		return "", &ErrLanguageNotSupported{Lang: lang}
	}
	v, ok := find(tree, key)
	if !ok {
		return "", fmt.Errorf("messages: key %q not found for %s", key, lang)
	}
	return v, nil
}

// Message resolves key for the negotiated language, then for the default
// language, then falls back to fallback. Placeholders are interpolated with
// values in every case.
func (c *Catalog) Message(lang, key, fallback string, values map[string]any) string {
	matched := c.Match(lang)
	for _, l := range []string{matched, c.defaultLang} {
		if text, err := c.Lookup(l, key); err == nil {
			return Interpolate(text, values)
		}
	}
	if key != "" {
		c.logger.Debug("message not found", slog.String("lang", lang), slog.String("key", key))
	}
	return Interpolate(fallback, values)
}

func (c *Catalog) rebuildLocked() {
	langs := slices.Sorted(maps.Keys(c.trees))
	if i := slices.Index(langs, normalize(c.defaultLang)); i > 0 {
		langs = slices.Delete(langs, i, i+1)
		langs = slices.Insert(langs, 0, normalize(c.defaultLang))
	}

	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tags = append(tags, language.Make(l))
	}
	c.langs = langs
	c.matcher = language.NewMatcher(tags)
}

func normalize(lang string) string {
	return strings.ToLower(strings.ReplaceAll(lang, "_", "-"))
}

// find walks a tree along a dot-separated key.
func find(tree map[string]any, key string) (string, bool) {
	parts := strings.Split(key, ".")
	cur := tree
	for i, part := range parts {
		v, ok := cur[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if cur, ok = v.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if existing, ok := dst[k].(map[string]any); ok {
				merge(existing, sub)
				continue
			}
			cp := make(map[string]any, len(sub))
			merge(cp, sub)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}
