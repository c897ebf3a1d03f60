package middleware

import (
	"net/http"

	"github.com/2beens/postclient/pkg"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"method":       r.Method,
				"path":         r.URL.Path,
				"content_type": r.Header.Get("Content-Type"),
				"user_agent":   r.Header.Get("User-Agent"),
				"ip":           pkg.RequestIP(r),
				"local":        pkg.IPIsLocal(r.RemoteAddr),
			}).Trace(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
