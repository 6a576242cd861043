package session

import (
	"context"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"
)

var donePage = template.Must(template.New("done").Parse(`<!doctype html><html><head><meta charset="utf-8"><title>Callback received</title>
<style>body{font-family:system-ui,Arial,sans-serif;margin:2rem} li{font-family:monospace}</style>
</head><body>
<h2>{{if .Received}}Callback received{{else}}No callback data{{end}}</h2>
{{if .Received}}<p>Host: {{.Host}}</p>{{end}}
<p>You can close this window and return to the terminal.</p>
</body></html>`))

// Deliver handles a redirect delivery event
type Deliver func(u *url.URL) bool

// Endpoint receives browser redirects on a loopback address
type Endpoint struct {
	listenAddr string
	path       string
	scheme     string
	deliver    Deliver

	mu      sync.Mutex
	srv     *http.Server
	done    chan struct{}
	baseURL string
}

// Start starts listening, the server is shut down when ctx is done
func (e *Endpoint) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.srv != nil {
		return nil
	}
	ln, err := net.Listen("tcp", e.listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %v: %w", e.listenAddr, err)
	}
	e.baseURL = "http://" + ln.Addr().String()
	mux := http.NewServeMux()
	mux.Handle(e.path, e)
	e.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	e.done = make(chan struct{})
	srv, done := e.srv, e.done
	go func() {
		_ = srv.Serve(ln)
	}()
	go func() {
		select {
		case <-ctx.Done():
			_ = e.shutdown(srv)
		case <-done:
		}
	}()
	return nil
}

// RedirectURL returns callback URL, empty before Start
func (e *Endpoint) RedirectURL() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.baseURL == "" {
		return ""
	}
	return e.baseURL + e.path
}

// Close shuts the endpoint down
func (e *Endpoint) Close() error {
	return e.shutdown(nil)
}

// shutdown stops target, or the current server when target is nil; a stale target is ignored
func (e *Endpoint) shutdown(target *http.Server) error {
	e.mu.Lock()
	srv := e.srv
	if srv == nil || (target != nil && target != srv) {
		e.mu.Unlock()
		return nil
	}
	close(e.done)
	e.srv, e.done = nil, nil
	e.baseURL = ""
	e.mu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func (e *Endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != e.path {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	redirect := e.redirectURL(r)
	received := e.deliver(redirect)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = donePage.Execute(w, struct {
		Received bool
		Host     string
	}{received, redirect.Hostname()})
}

// redirectURL rebuilds the absolute redirect target, server side requests carry only the path and query
func (e *Endpoint) redirectURL(r *http.Request) *url.URL {
	ret := *r.URL
	ret.Scheme = e.scheme
	ret.Host = r.Host
	ret.User = nil
	return &ret
}

// NewEndpoint creates an endpoint
func NewEndpoint(listenAddr, path, scheme string, deliver Deliver) *Endpoint {
	if path == "" {
		path = DefaultPath
	}
	if path[0] != '/' {
		path = "/" + path
	}
	if scheme == "" {
		scheme = DefaultScheme
	}
	if listenAddr == "" {
		listenAddr = DefaultListenAddr
	}
	return &Endpoint{listenAddr: listenAddr, path: path, scheme: scheme, deliver: deliver}
}
