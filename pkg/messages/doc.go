// Package messages renders recorded validation failures into localized,
// human-readable text.
//
// The core engine pre-renders English messages at schema build time; this
// package replaces them per request using YAML message catalogs keyed by
// language and failure-code name, with %{name} placeholders filled from each
// failure's structured data and resolved field path.
//
// # Usage
//
//	catalog, err := messages.ParseYAML(catalogBytes)
//	if err != nil { ... }
//
//	lang := catalog.Match(r.Header.Get("Accept-Language"))
//	localized := catalog.Localize(lang, ctx.Errors())
//
// A catalog entry looks like:
//
//	de:
//	  required: "%{field} ist erforderlich"
//	  string_len_min: "%{field} muss mindestens %{min} Zeichen lang sein"
//
// Unknown languages fall back to the catalog's default language; unknown
// failure codes fall back to the message rendered at schema build time.
package messages
