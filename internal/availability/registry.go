package availability

import (
	"encoding/json"
	"net/http"
	"sync"
)

// Registry holds the current token set. Replace swaps the full set in one
// critical section, so readers never observe a partially registered set.
type Registry struct {
	lock   sync.RWMutex
	tokens map[string]Token
}

// Replace publishes a new token set, replacing the previous one.
func (r *Registry) Replace(tokens map[string]Token) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tokens = tokens
}

// Tokens returns a copy of the current token set.
func (r *Registry) Tokens() map[string]Token {
	r.lock.RLock()
	defer r.lock.RUnlock()
	tokens := make(map[string]Token, len(r.tokens))
	for name, token := range r.tokens {
		tokens[name] = token
	}
	return tokens
}

// ServeHTTP serves the current token set as JSON. Before the first slot poll
// completes, it responds with 503.
func (r *Registry) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	if r.tokens == nil {
		http.Error(w, "no tokens yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.tokens); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
