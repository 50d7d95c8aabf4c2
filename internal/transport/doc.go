// Package transport builds the HTTP clients used to download pages and to
// talk to the lead service.
//
// Connections go direct by default. When a SOCKS5 proxy address is
// configured every connection is dialed through it with
// golang.org/x/net/proxy. Per-site cookies and headers from the
// configuration file are injected by a RoundTripper so redirects carry them
// as well.
package transport
