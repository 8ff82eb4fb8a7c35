//go:build windows

package server

// setSocketPermissions is a no-op on Windows. The named pipe transport
// carries its own security descriptor, and the TCP fallback binds to
// loopback only.
func setSocketPermissions(path string) {
}
