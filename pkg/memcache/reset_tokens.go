// pkg/mem/reset_tokens.go
package mem

import (
	"crypto/subtle"
	"strings"
	"sync"
	"time"
)

// OtpStore keeps one pending reset code per email.
type OtpStore interface {
	Set(email string, code string, ttl time.Duration)

	// Peek reports whether code is the live code for email without consuming it.
	// A wrong guess counts against the code.
	Peek(email string, code string) bool

	// Consume is Peek plus removal on success. A code is single-use.
	Consume(email string, code string) bool
}

// MaxOtpAttempts wrong guesses burn the pending code.
const MaxOtpAttempts = 5

type entry struct {
	code      string
	expiresAt time.Time
	attempts  int
}

type ResetTokens struct {
	mu   sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewResetTokens() *ResetTokens {
	return &ResetTokens{
		data: make(map[string]entry),
		now:  time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Set replaces any earlier code for the same email and sweeps expired entries.
func (s *ResetTokens) Set(email string, code string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.data {
		if now.After(e.expiresAt) {
			delete(s.data, k)
		}
	}
	s.data[normalizeEmail(email)] = entry{
		code:      code,
		expiresAt: now.Add(ttl),
	}
}

func (s *ResetTokens) Peek(email string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.check(normalizeEmail(email), code)
}

func (s *ResetTokens) Consume(email string, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(email)
	if !s.check(key, code) {
		return false
	}
	delete(s.data, key) // single-use
	return true
}

// check must run under the write lock.
func (s *ResetTokens) check(key, code string) bool {
	e, ok := s.data[key]
	if !ok {
		return false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key)
		return false
	}
	if subtle.ConstantTimeCompare([]byte(e.code), []byte(code)) == 1 {
		return true
	}

	e.attempts++
	if e.attempts >= MaxOtpAttempts {
		delete(s.data, key)
	} else {
		s.data[key] = e
	}
	return false
}
