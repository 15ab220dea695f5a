//go:build !windows

package cli

// terminals outside windows understand ANSI already
func EnableANSI() {}
