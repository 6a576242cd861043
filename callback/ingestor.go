package callback

import (
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/viant/customtab/internal/collection"
)

// Listener is notified with a snapshot after every state change, in install order.
// A listener must not ingest or clear on the same ingestor.
type Listener func(state *State)

// Ingestor converts redirect events into callback state
type Ingestor struct {
	mu        sync.Mutex // serialises install with listener notification
	state     atomic.Pointer[State]
	listeners *collection.SyncMap[string, Listener]
	logger    zerolog.Logger
}

// Ingest installs state built from u, nil u is a skipped event
func (i *Ingestor) Ingest(u *url.URL) bool {
	if u == nil {
		i.logger.Warn().Msg("redirect event without URI data")
		return false
	}
	state := &State{
		Scheme:     u.Scheme,
		Host:       u.Hostname(),
		Parameters: decodeQuery(u.RawQuery),
	}
	i.logURI(u, state)
	i.install(state)
	return true
}

// IngestURL parses raw and ingests it, blank or unparsable input is treated as absent
func (i *Ingestor) IngestURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return i.Ingest(nil)
	}
	u, err := url.Parse(raw)
	if err != nil {
		i.logger.Warn().Err(err).Str("uri", raw).Msg("ignored malformed redirect URI")
		return false
	}
	return i.Ingest(u)
}

// HasData returns true if current state has both scheme and host
func (i *Ingestor) HasData() bool {
	return i.state.Load().HasData()
}

// Parameter returns current state parameter value
func (i *Ingestor) Parameter(name string) (string, bool) {
	return i.state.Load().Parameter(name)
}

// Parameters returns a copy of current state parameters
func (i *Ingestor) Parameters() Parameters {
	return i.Snapshot().Parameters
}

// Snapshot returns a copy of the current state
func (i *Ingestor) Snapshot() *State {
	return i.state.Load().Clone()
}

// Clear resets state
func (i *Ingestor) Clear() {
	i.install(&State{})
}

// Subscribe registers listener, it returns subscription id
func (i *Ingestor) Subscribe(listener Listener) string {
	id := uuid.New().String()
	i.listeners.Put(id, listener)
	return id
}

// Unsubscribe removes listener
func (i *Ingestor) Unsubscribe(id string) bool {
	return i.listeners.Delete(id)
}

func (i *Ingestor) install(state *State) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.state.Store(state)
	i.listeners.Range(func(_ string, listener Listener) bool {
		listener(state.Clone())
		return true
	})
}

func (i *Ingestor) logURI(u *url.URL, state *State) {
	if i.logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	i.logger.Debug().
		Str("uri", u.String()).
		Str("scheme", state.Scheme).
		Str("host", state.Host).
		Str("path", u.Path).
		Str("query", u.RawQuery).
		Msg("callback received")
	for _, param := range state.Parameters {
		i.logger.Debug().Str("name", param.Name).Str("value", param.Value).Msg("callback parameter")
	}
}

// New creates an ingestor with empty state
func New(options ...Option) *Ingestor {
	ret := &Ingestor{
		listeners: collection.NewSyncMap[string, Listener](),
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		opt(ret)
	}
	ret.state.Store(&State{})
	return ret
}
