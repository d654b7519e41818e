//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

const forbiddenChars = `<>":/\|?*`

// enableVT turns on VT100 sequence processing in Windows console, which is
// only available starting with Windows 10.
func enableVT(stream *os.File) bool {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}

	const enableVirtualTerminalProcessing uint32 = 0x4

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}
	return windows.SetConsoleMode(windows.Handle(stream.Fd()), mode|enableVirtualTerminalProcessing) == nil
}
