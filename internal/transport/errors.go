package transport

import "errors"

var (
	// ErrInvalidProxyAddress is returned when the proxy address is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")

	// ErrProxyCannotConnect is returned when the SOCKS5 proxy refuses the connection.
	ErrProxyCannotConnect = errors.New("cannot connect to SOCKS5 proxy")
)
