package googleauth

import (
	"log"
	"net/http"
	"time"
)

// loggingTransport wraps an http.RoundTripper and logs outgoing Drive
// API requests with method, URL, latency and status. Enabled only in
// debug mode; upload bodies are binary media and are never dumped.
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log.Printf("[drive] -> %s %s", req.Method, req.URL.String())

	rt := t.base
	if rt == nil {
		rt = http.DefaultTransport
	}
	resp, err := rt.RoundTrip(req)
	if err != nil {
		log.Printf("[drive] <- error: %v (elapsed %v)", err, time.Since(start))
		return resp, err
	}
	log.Printf("[drive] <- status: %d (elapsed %v)", resp.StatusCode, time.Since(start))
	return resp, err
}
