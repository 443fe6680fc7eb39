// Package messages holds localized validation messages.
//
// A Catalog maps a language to a tree of messages addressed by dot-separated
// keys ("validation.required"). Catalogs are filled from YAML or JSON content,
// files, or an fs.FS; Default returns a catalog preloaded with the built-in
// rule messages.
//
//	cat := messages.Default()
//	msg := cat.Message("de", "validation.min_length", "Too short", map[string]any{"min": 3})
//
// Requested languages are negotiated against the loaded ones with
// golang.org/x/text/language, so "de-AT" resolves to "de" and unknown
// languages resolve to the catalog default. Placeholders use the {name}
// form and are replaced with fmt's %v rendering of the value.
package messages
