package messages

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dynschema/dynschema"
)

// DefaultLanguage is used when no preferred language matches the catalog.
const DefaultLanguage = "en"

// codeKeys maps the engine's stable failure codes to catalog key names.
var codeKeys = map[int]string{
	dynschema.CodeRequired:      "required",
	dynschema.CodeTypeInt:       "type_int",
	dynschema.CodeTypeFloat:     "type_float",
	dynschema.CodeTypeBool:      "type_bool",
	dynschema.CodeTypeString:    "type_string",
	dynschema.CodeTypeArray:     "type_array",
	dynschema.CodeTypeObject:    "type_object",
	dynschema.CodeIntMin:        "int_min",
	dynschema.CodeIntMax:        "int_max",
	dynschema.CodeFloatMin:      "float_min",
	dynschema.CodeFloatMax:      "float_max",
	dynschema.CodeStringLenMin:  "string_len_min",
	dynschema.CodeStringLenMax:  "string_len_max",
	dynschema.CodeStringChoice:  "string_choice",
	dynschema.CodeStringPattern: "string_pattern",
	dynschema.CodeArrayLenMin:   "array_len_min",
	dynschema.CodeArrayLenMax:   "array_len_max",
	dynschema.CodeObjectLenMin:  "object_len_min",
	dynschema.CodeObjectLenMax:  "object_len_max",
	dynschema.CodeTypeUUID:      "type_uuid",
	dynschema.CodeTypeDate:      "type_date",
	dynschema.CodeTypeTime:      "type_time",
	dynschema.CodeTypeDateTime:  "type_datetime",
	dynschema.CodeDateMin:       "date_min",
	dynschema.CodeDateMax:       "date_max",
}

// paramRegex matches %{name} placeholders in message templates.
var paramRegex = regexp.MustCompile(`%\{([a-zA-Z0-9_]+)\}`)

// Catalog holds message templates per language and negotiates the best
// language for a request. Catalogs are immutable after parsing and safe for
// concurrent use.
type Catalog struct {
	defaultTag language.Tag
	tags       []language.Tag
	matcher    language.Matcher
	templates  map[string]map[string]string
}

// Option customizes catalog parsing.
type Option func(*options)

type options struct {
	defaultLang string
}

// WithDefaultLanguage overrides the fallback language (default "en").
func WithDefaultLanguage(lang string) Option {
	return func(o *options) { o.defaultLang = lang }
}

// ParseYAML parses a YAML message catalog mapping language codes to
// code-name/template pairs.
func ParseYAML(content []byte, opts ...Option) (*Catalog, error) {
	o := options{defaultLang: DefaultLanguage}
	for _, opt := range opts {
		opt(&o)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, errors.Join(ErrInvalidYAML, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}
	if _, ok := raw[o.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefaultLang, o.defaultLang)
	}

	// Sorted for deterministic matcher priority, with the default language
	// first so it wins when nothing else matches.
	langs := make([]string, 0, len(raw))
	for lang := range raw {
		if lang != o.defaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{o.defaultLang}, langs...)

	c := &Catalog{templates: make(map[string]map[string]string, len(raw))}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: bad language code %q", ErrInvalidYAML, lang)
		}
		c.tags = append(c.tags, tag)
		c.templates[lang] = raw[lang]
	}
	c.defaultTag = c.tags[0]
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Languages returns the catalog's language codes, default language first.
func (c *Catalog) Languages() []string {
	langs := make([]string, len(c.tags))
	for i, tag := range c.tags {
		langs[i] = tag.String()
	}
	return langs
}

// Match negotiates the best catalog language for the preferred languages,
// each given as a language tag or Accept-Language header value. Falls back
// to the catalog's default language.
func (c *Catalog) Match(preferred ...string) string {
	var tags []language.Tag
	for _, p := range preferred {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return c.defaultTag.String()
	}
	_, i, _ := c.matcher.Match(tags...)
	return c.tags[i].String()
}

// Render produces the localized message for one failure. Unknown languages
// use the default language; unknown codes fall back to the failure's
// build-time message.
func (c *Catalog) Render(lang string, inv dynschema.InvalidField) string {
	templates, ok := c.templates[lang]
	if !ok {
		templates = c.templates[c.defaultTag.String()]
	}

	key, ok := codeKeys[inv.Code]
	if !ok {
		return inv.Err
	}
	tmpl, ok := templates[key]
	if !ok {
		return inv.Err
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if name == "field" {
			return inv.Field
		}
		if val, ok := inv.Data[name]; ok {
			return formatValue(val)
		}
		return match
	})
}

// Localize returns a copy of the failures with every message replaced by its
// localized rendering. The input is left untouched.
func (c *Catalog) Localize(lang string, invs dynschema.Invalids) dynschema.Invalids {
	out := make(dynschema.Invalids, len(invs))
	for i, inv := range invs {
		out[i] = inv
		out[i].Err = c.Render(lang, inv)
	}
	return out
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
