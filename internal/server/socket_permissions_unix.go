//go:build !windows

package server

import "os"

// setSocketPermissions restricts the socket to the daemon's owner so
// other local users cannot drive the note store.
func setSocketPermissions(path string) {
	_ = os.Chmod(path, 0700)
}
