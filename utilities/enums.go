package utilities

// Kind of a utility and of a candidate.
// ENUM(static, functional, arbitrary)
type Kind int

// Kind of a candidate value or modifier: named values are looked up in theme,
// arbitrary values ("[10px]") are used literally.
// ENUM(named, arbitrary)
type ValueKind int
