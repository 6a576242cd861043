package session

const (
	DefaultListenAddr = "127.0.0.1:0"
	DefaultPath       = "/callback"
	DefaultScheme     = "http"
	// eventBuffer bounds callbacks kept for Wait, older ones are dropped
	eventBuffer = 16
)
