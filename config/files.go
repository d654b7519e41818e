package config

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// EnableColorOutput checks if colored log levels could be written to stream.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd())) && enableVT(stream)
}

// OutputName derives result file name from candidates source: directory and
// extension are dropped, characters not allowed in file names removed and ext
// appended. Standard input ("-") is named "stdin".
func OutputName(src, ext string) string {
	base := "stdin"
	if len(src) > 0 && src != "-" {
		base = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	}
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym < 0x20 || strings.ContainsRune(forbiddenChars+string(os.PathSeparator)+string(os.PathListSeparator), sym) {
			return -1
		}
		return sym
	}, base), ".")
	if len(out) == 0 {
		out = "output"
	}
	return out + ext
}
