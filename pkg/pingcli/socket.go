//go:build !windows

package pingcli

import (
	"os"
	"path/filepath"

	"github.com/noteping/noteping/common"
)

func socketPath() string {
	if path := os.Getenv(common.SocketPathEnv); path != "" {
		return path
	}
	return filepath.Join(os.TempDir(), "noteping.sock")
}
