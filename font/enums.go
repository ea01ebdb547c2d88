package font

// Numeric glyph case selection.
// ENUM(default, upper, lower)
type NumberCase int

// Numeric glyph spacing selection.
// ENUM(default, proportional, monospaced)
type NumberSpacing int

// Fraction rendering style.
// ENUM(default, diagonal, vertical)
type FractionStyle int

// Vertical glyph position. Values are mutually exclusive - the last one set
// on Data wins.
// ENUM(default, superscript, subscript, ordinals, scientificInferior)
type VerticalPosition int

// Small caps glyph substitution scope.
// ENUM(default, lowercase, uppercase, all)
type SmallCaps int

// Weight of a resolved descriptor.
// ENUM(normal, medium, semibold, bold)
type Weight int

// Slant of a resolved descriptor.
// ENUM(normal, italic)
type Slant int

// Stretch of a resolved descriptor.
// ENUM(normal, condensed, expanded)
type Stretch int

// Text category parameterizing dynamic scaling.
// ENUM(body, callout, caption1, caption2, footnote, headline, subheadline, title1, title2, title3, largeTitle)
type TextCategory int
