// Package common provides shared types and constants used across the
// noteping client-server communication layer.
package common

// Environment variable names for configuration.
const (
	// SocketPathEnv is the environment variable for custom socket path.
	SocketPathEnv = "NOTEPING_SOCKET_PATH"

	// TCPPortEnv is the environment variable for custom TCP port.
	TCPPortEnv = "NOTEPING_TCP_PORT"

	// DBPathEnv is the environment variable for a custom notes database path.
	DBPathEnv = "NOTEPING_DB_PATH"

	// DebugEnv is the environment variable to enable debug logging.
	DebugEnv = "NOTEPING_DEBUG"

	// ForceTCPEnv forces the daemon onto the TCP transport even where a
	// socket or named pipe would be available.
	ForceTCPEnv = "NOTEPING_FORCE_TCP"

	// RPCSecretEnv holds the bearer token for the JSON-RPC endpoint.
	// The endpoint stays disabled while this is unset.
	RPCSecretEnv = "NOTEPING_RPC_SECRET"

	// NoNotifyEnv disables reminder presentation, leaving notes to be
	// saved without reminders.
	NoNotifyEnv = "NOTEPING_NO_NOTIFY"
)
