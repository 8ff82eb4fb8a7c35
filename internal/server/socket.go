package server

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

func forceTCP() bool {
	return os.Getenv(common.ForceTCPEnv) != ""
}
