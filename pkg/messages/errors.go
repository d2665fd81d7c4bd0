package messages

import "errors"

// Common catalog errors
var (
	ErrInvalidYAML        = errors.New("invalid YAML catalog")
	ErrEmptyCatalog       = errors.New("catalog contains no languages")
	ErrUnknownDefaultLang = errors.New("default language not present in catalog")
)
