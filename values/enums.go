package values

// CSS value type used to disambiguate arbitrary values. Candidates may carry
// it explicitly ("bg-[length:var(--x)]"), otherwise it is inferred from the
// value syntax.
// ENUM(color, length, percentage, number, integer, ratio, url, image, position, bg-size, line-width, angle, vector, family-name, generic-name, absolute-size, relative-size, any)
type DataType int
