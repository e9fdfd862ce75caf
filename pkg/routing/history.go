package routing

import (
	"errors"
	"net/http"
	"strings"
	"sync"
)

// ErrHistoryUnsupported indicates the history cannot move through its entries.
var ErrHistoryUnsupported = errors.New("history traversal unsupported")

// ErrHistoryBoundary indicates a traversal past the first or last entry.
var ErrHistoryBoundary = errors.New("no history entry in that direction")

// History records navigation entries as URLs.
type History interface {
	// Location returns the URL of the active entry, or "" before the first push.
	Location() string

	// Push appends a new entry and makes it active.
	// Entries after the active one are discarded.
	Push(href string) error

	// Replace overwrites the active entry.
	Replace(href string) error

	// Go moves delta entries from the active one and returns the new location.
	Go(delta int) (string, error)
}

// MemoryHistory keeps navigation entries in process.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	pos     int
}

// NewMemoryHistory creates a history with no entries.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{pos: -1}
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pos < 0 {
		return ""
	}
	return h.entries[h.pos]
}

func (h *MemoryHistory) Push(href string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.pos+1], href)
	h.pos++
	return nil
}

func (h *MemoryHistory) Replace(href string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pos < 0 {
		h.entries = append(h.entries, href)
		h.pos = 0
		return nil
	}
	h.entries[h.pos] = href
	return nil
}

func (h *MemoryHistory) Go(delta int) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := h.pos + delta
	if h.pos < 0 || next < 0 || next >= len(h.entries) {
		return "", ErrHistoryBoundary
	}
	h.pos = next
	return h.entries[h.pos], nil
}

// Len returns the number of recorded entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// ResponseHistory records navigation on an HTTP response.
// The browser owns the entry stack, so push and replace both answer with a
// See Other redirect and traversal is unsupported.
type ResponseHistory struct {
	w        http.ResponseWriter
	r        *http.Request
	basePath string
	location string
}

// NewResponseHistory creates a history that redirects the given response.
// basePath is prepended to every route path to account for module mounting.
func NewResponseHistory(w http.ResponseWriter, r *http.Request, basePath string) *ResponseHistory {
	return &ResponseHistory{
		w:        w,
		r:        r,
		basePath: basePath,
		location: r.URL.RequestURI(),
	}
}

func (h *ResponseHistory) Location() string {
	return h.location
}

func (h *ResponseHistory) Push(href string) error {
	return h.redirect(href)
}

func (h *ResponseHistory) Replace(href string) error {
	return h.redirect(href)
}

func (h *ResponseHistory) Go(int) (string, error) {
	return "", ErrHistoryUnsupported
}

func (h *ResponseHistory) redirect(href string) error {
	target := joinBase(h.basePath, href)
	http.Redirect(h.w, h.r, target, http.StatusSeeOther)
	h.location = target
	return nil
}

// joinBase prefixes href with basePath. The root path under a prefix is the
// bare prefix, so "/" under "/portal" is "/portal" and "/?q=1" is "/portal?q=1".
func joinBase(basePath, href string) string {
	if basePath == "" || basePath == "/" {
		return href
	}
	if href == "/" || strings.HasPrefix(href, "/?") || strings.HasPrefix(href, "/#") {
		return basePath + href[1:]
	}
	return basePath + href
}
