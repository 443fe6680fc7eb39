package messages

import (
	"context"
	"embed"
	"sync"
)

//go:embed locales/*.yaml
var locales embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns a shared catalog with the built-in rule messages for every
// bundled language. Callers may Add to it; the changes are process-wide.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCatalog = New()
		if err := defaultCatalog.LoadFS(context.Background(), locales, "locales/*.yaml"); err != nil {
			panic(err)
		}
	})
	return defaultCatalog
}
