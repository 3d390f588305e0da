package api

import (
	"net"
	"net/http"
)

func selfResolve(w http.ResponseWriter, r *http.Request) {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	if net.ParseIP(addr) == nil {
		abort(w, http.StatusBadRequest, "Cannot detect remote address")
		return
	}

	resolve(w, r, &resolveRequestStruct{Ips: []string{addr}})
}
