//go:build !windows

package config

import "os"

// forbiddenChars may not appear in file names, besides path and list
// separators.
const forbiddenChars = ""

// enableVT prepares terminal stream for escape sequences, nothing to do on
// unix terminals.
func enableVT(*os.File) bool {
	return true
}
