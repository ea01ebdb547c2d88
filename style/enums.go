package style

// Catalog text transform selection.
// ENUM(uppercase, lowercase, capitalize, sentencecase, transliterate)
type TransformKind int
