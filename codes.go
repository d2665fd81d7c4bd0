package dynschema

// Stable numeric failure codes. These are part of the public contract:
// clients may switch on them, and message catalogs key off them, so values
// must never be reused or renumbered.
const (
	CodeRequired      = 1
	CodeTypeInt       = 2
	CodeTypeFloat     = 3
	CodeTypeBool      = 4
	CodeTypeString    = 5
	CodeTypeArray     = 6
	CodeTypeObject    = 7
	CodeIntMin        = 8
	CodeIntMax        = 9
	CodeFloatMin      = 10
	CodeFloatMax      = 11
	CodeStringLenMin  = 12
	CodeStringLenMax  = 13
	CodeStringChoice  = 14
	CodeStringPattern = 15
	CodeArrayLenMin   = 16
	CodeArrayLenMax   = 17
	CodeObjectLenMin  = 18
	CodeObjectLenMax  = 19
	CodeTypeUUID      = 20
	CodeTypeDate      = 21
	CodeTypeTime      = 22
	CodeTypeDateTime  = 23
	CodeDateMin       = 24
	CodeDateMax       = 25
)
