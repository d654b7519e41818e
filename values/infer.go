package values

import (
	"strings"

	"twc/css"
)

var (
	mathFunctions = map[string]bool{
		"calc": true, "min": true, "max": true, "clamp": true, "mod": true, "rem": true,
		"sin": true, "cos": true, "tan": true, "asin": true, "acos": true, "atan": true, "atan2": true,
		"pow": true, "sqrt": true, "hypot": true, "log": true, "exp": true, "round": true,
	}

	colorFunctions = map[string]bool{
		"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true,
		"lab": true, "lch": true, "oklab": true, "oklch": true,
		"color": true, "color-mix": true, "light-dark": true,
	}

	imageFunctions = map[string]bool{
		"url": true, "element": true, "image": true, "cross-fade": true, "image-set": true,
		"linear-gradient": true, "radial-gradient": true, "conic-gradient": true,
		"repeating-linear-gradient": true, "repeating-radial-gradient": true, "repeating-conic-gradient": true,
	}

	lengthUnits = map[string]bool{
		"cm": true, "mm": true, "q": true, "in": true, "pc": true, "pt": true, "px": true,
		"em": true, "ex": true, "ch": true, "rem": true, "lh": true, "rlh": true,
		"vw": true, "vh": true, "vmin": true, "vmax": true, "vb": true, "vi": true,
		"svw": true, "svh": true, "lvw": true, "lvh": true, "dvw": true, "dvh": true,
		"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
	}

	angleUnits = map[string]bool{"deg": true, "rad": true, "grad": true, "turn": true}

	positionKeywords = map[string]bool{"center": true, "top": true, "right": true, "bottom": true, "left": true}

	lineWidthKeywords = map[string]bool{"thin": true, "medium": true, "thick": true}

	genericNames = map[string]bool{
		"serif": true, "sans-serif": true, "monospace": true, "cursive": true, "fantasy": true,
		"system-ui": true, "ui-serif": true, "ui-sans-serif": true, "ui-monospace": true,
		"ui-rounded": true, "math": true, "emoji": true, "fangsong": true,
	}

	absoluteSizes = map[string]bool{
		"xx-small": true, "x-small": true, "small": true, "medium": true,
		"large": true, "x-large": true, "xx-large": true, "xxx-large": true,
	}

	relativeSizes = map[string]bool{"larger": true, "smaller": true}
)

var checks = map[DataType]func(string) bool{
	DataTypeColor:        IsColor,
	DataTypeLength:       IsLength,
	DataTypePercentage:   IsPercentage,
	DataTypeNumber:       IsNumber,
	DataTypeInteger:      IsInteger,
	DataTypeRatio:        IsRatio,
	DataTypeUrl:          IsURL,
	DataTypeImage:        IsImage,
	DataTypePosition:     IsPosition,
	DataTypeBgSize:       IsBackgroundSize,
	DataTypeLineWidth:    IsLineWidth,
	DataTypeAngle:        IsAngle,
	DataTypeVector:       IsVector,
	DataTypeFamilyName:   IsFamilyName,
	DataTypeGenericName:  func(v string) bool { return genericNames[v] },
	DataTypeAbsoluteSize: func(v string) bool { return absoluteSizes[v] },
	DataTypeRelativeSize: func(v string) bool { return relativeSizes[v] },
	DataTypeAny:          func(string) bool { return true },
}

// InferDataType returns the first of candidates matching syntax of value.
// Values starting with var() carry no syntax of their own and never match.
func InferDataType(value string, candidates ...DataType) (DataType, bool) {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "var(") {
		return DataTypeAny, false
	}
	for _, dt := range candidates {
		if check, ok := checks[dt]; ok && check(value) {
			return dt, true
		}
	}
	return DataTypeAny, false
}

// significant returns tokens of value without whitespace.
func significant(value string) []css.Token {
	var result []css.Token
	for _, t := range css.Tokenize(value) {
		if !t.IsWhitespace() {
			result = append(result, t)
		}
	}
	return result
}

// single returns the only token of value.
func single(value string) (css.Token, bool) {
	tokens := significant(value)
	if len(tokens) != 1 {
		return css.Token{}, false
	}
	return tokens[0], true
}

// HasMathFunction reports whether value contains a CSS math function call.
func HasMathFunction(value string) bool {
	if !strings.Contains(value, "(") {
		return false
	}
	for _, t := range css.Tokenize(value) {
		if mathFunctions[t.FunctionName()] {
			return true
		}
	}
	return false
}

// IsColor reports whether value is a hex color, a color function or a named color.
func IsColor(value string) bool {
	if namedColors[strings.ToLower(value)] {
		return true
	}
	tokens := significant(value)
	if len(tokens) == 0 {
		return false
	}
	switch first := tokens[0]; {
	case first.IsHash():
		return len(tokens) == 1
	case colorFunctions[first.FunctionName()]:
		return true
	}
	return false
}

// IsLength reports whether value is a number with a length unit or a math expression.
func IsLength(value string) bool {
	if t, ok := single(value); ok && t.IsDimension() && lengthUnits[t.Unit()] {
		return true
	}
	return HasMathFunction(value)
}

// IsPercentage reports whether value is a percentage or a math expression.
func IsPercentage(value string) bool {
	if t, ok := single(value); ok && t.IsPercentage() {
		return true
	}
	return HasMathFunction(value)
}

// IsNumber reports whether value is a plain number or a math expression.
func IsNumber(value string) bool {
	if t, ok := single(value); ok && t.IsNumber() {
		return true
	}
	return HasMathFunction(value)
}

// IsInteger reports whether value is a whole number or a math expression.
func IsInteger(value string) bool {
	if t, ok := single(value); ok && t.IsNumber() {
		return !strings.ContainsAny(t.Data, ".eE")
	}
	return HasMathFunction(value)
}

// IsRatio reports whether value is a ratio like "16 / 9" or a math expression.
func IsRatio(value string) bool {
	tokens := significant(value)
	if len(tokens) == 3 && tokens[0].IsNumber() && tokens[1].Data == "/" && tokens[2].IsNumber() {
		return true
	}
	return HasMathFunction(value)
}

// IsURL reports whether value is a single url() reference.
func IsURL(value string) bool {
	t, ok := single(value)
	if ok && t.FunctionName() == "url" {
		return true
	}
	tokens := significant(value)
	return len(tokens) > 0 && tokens[0].FunctionName() == "url" && strings.HasSuffix(value, ")")
}

// IsImage reports whether every comma separated layer of value is an image
// (url, gradient or other image function).
func IsImage(value string) bool {
	count := 0
	for _, layer := range css.SplitTopLevel(value, ',') {
		tokens := significant(layer)
		if len(tokens) == 0 {
			continue
		}
		if strings.HasPrefix(layer, "var(") {
			continue
		}
		if !imageFunctions[tokens[0].FunctionName()] {
			return false
		}
		count++
	}
	return count > 0
}

// IsPosition reports whether value is a background position, e.g. "center top"
// or "10px 50%".
func IsPosition(value string) bool {
	count := 0
	for _, layer := range css.SplitTopLevel(value, ',') {
		for _, part := range css.SplitTopLevel(layer, ' ') {
			if !positionKeywords[part] && !IsLength(part) && !IsPercentage(part) {
				return false
			}
		}
		count++
	}
	return count > 0
}

// IsBackgroundSize reports whether value is a background size, e.g. "cover",
// "auto 50%" or "10px 20px".
func IsBackgroundSize(value string) bool {
	count := 0
	for _, layer := range css.SplitTopLevel(value, ',') {
		if layer == "cover" || layer == "contain" {
			count++
			continue
		}
		parts := css.SplitTopLevel(layer, ' ')
		if len(parts) != 1 && len(parts) != 2 {
			return false
		}
		for _, part := range parts {
			if part != "auto" && !IsLength(part) && !IsPercentage(part) {
				return false
			}
		}
		count++
	}
	return count > 0
}

// IsLineWidth reports whether value is a border width keyword or a length.
func IsLineWidth(value string) bool {
	return lineWidthKeywords[value] || IsLength(value)
}

// IsAngle reports whether value is a number with an angle unit.
func IsAngle(value string) bool {
	t, ok := single(value)
	return ok && t.IsDimension() && angleUnits[t.Unit()]
}

// IsVector reports whether value is three space separated numbers, as used
// by rotate axis values.
func IsVector(value string) bool {
	tokens := significant(value)
	if len(tokens) != 3 {
		return false
	}
	for _, t := range tokens {
		if !t.IsNumber() {
			return false
		}
	}
	return true
}

// IsFamilyName reports whether value looks like a font family list.
func IsFamilyName(value string) bool {
	count := 0
	for _, part := range css.SplitTopLevel(value, ',') {
		if part[0] >= '0' && part[0] <= '9' {
			return false
		}
		if strings.HasPrefix(part, "var(") {
			continue
		}
		count++
	}
	return count > 0
}
