package pkg

import (
	"net"
	"net/http"
	"strings"
)

// RequestIP returns the caller address of r, preferring proxy headers over
// the connection's remote address. The port, if any, is dropped.
func RequestIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// first hop is the original client
		ipAddr, _, _ = strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		ipAddr = strings.TrimSpace(ipAddr)
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		return host
	}
	return ipAddr
}

// IPIsLocal reports whether ipAddr is a loopback or private network address.
func IPIsLocal(ipAddr string) bool {
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if ipAddr == "localhost" {
		return true
	}
	ip := net.ParseIP(ipAddr)
	return ip != nil && (ip.IsLoopback() || ip.IsPrivate())
}
