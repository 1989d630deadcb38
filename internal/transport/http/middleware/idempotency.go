package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"hrconsole/internal/transport/http/api"
)

const IdempotencyHeader = "Idempotency-Key"

var ErrIdempotencyConflict = errors.New("idempotency key conflicts with existing request")

type storedResponse struct {
	hash        string
	status      int
	contentType string
	body        []byte
	expires     time.Time
}

// IdempotencyStore remembers responses to keyed mutations for a while so a
// retried request gets the first answer instead of running twice.
type IdempotencyStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]storedResponse
}

func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyStore{ttl: ttl, now: time.Now, entries: map[string]storedResponse{}}
}

func RequestHash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func idempotencyKey(userID, endpoint, key string) string {
	return userID + "|" + endpoint + "|" + key
}

func (s *IdempotencyStore) Check(userID, endpoint, key, requestHash string) (storedResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := idempotencyKey(userID, endpoint, key)
	entry, ok := s.entries[id]
	if !ok {
		return storedResponse{}, false, nil
	}
	if s.now().After(entry.expires) {
		delete(s.entries, id)
		return storedResponse{}, false, nil
	}
	if entry.hash != requestHash {
		return storedResponse{}, false, ErrIdempotencyConflict
	}
	return entry, true, nil
}

func (s *IdempotencyStore) Save(userID, endpoint, key, requestHash string, status int, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expires) {
			delete(s.entries, id)
		}
	}
	s.entries[idempotencyKey(userID, endpoint, key)] = storedResponse{
		hash:        requestHash,
		status:      status,
		contentType: contentType,
		body:        append([]byte(nil), body...),
		expires:     now.Add(s.ttl),
	}
}

type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (c *captureWriter) WriteHeader(code int) {
	if c.status == 0 {
		c.status = code
	}
	c.ResponseWriter.WriteHeader(code)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}

// Idempotent replays the stored response when a request repeats an
// Idempotency-Key with the same body, and answers 409 when the body differs.
// Requests without the header are not tracked. Server errors are not stored.
func Idempotent(store *IdempotencyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyHeader)
			if key == "" || store == nil {
				next.ServeHTTP(w, r)
				return
			}

			var raw []byte
			if r.Body != nil {
				var err error
				raw, err = io.ReadAll(r.Body)
				if err != nil {
					api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", GetRequestID(r.Context()))
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(raw))
			}

			userID := ""
			if user, ok := GetUser(r.Context()); ok {
				userID = user.UserID
			}
			endpoint := r.Method + " " + r.URL.Path
			hash := RequestHash(raw)

			stored, found, err := store.Check(userID, endpoint, key, hash)
			if errors.Is(err, ErrIdempotencyConflict) {
				api.Fail(w, http.StatusConflict, "idempotency_conflict", "idempotency key was used with a different payload", GetRequestID(r.Context()))
				return
			}
			if found {
				if stored.contentType != "" {
					w.Header().Set("Content-Type", stored.contentType)
				}
				w.Header().Set("Idempotent-Replay", "true")
				w.WriteHeader(stored.status)
				_, _ = w.Write(stored.body)
				return
			}

			capture := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(capture, r)
			if capture.status == 0 || capture.status >= http.StatusInternalServerError {
				return
			}
			store.Save(userID, endpoint, key, hash, capture.status, w.Header().Get("Content-Type"), capture.buf.Bytes())
		})
	}
}
