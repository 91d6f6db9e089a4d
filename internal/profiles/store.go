package profiles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// RecordKey is the backend key holding the serialized profile set.
const RecordKey = "linguist_profiles"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotLoaded       = errors.New("profiles not loaded")
)

// AuthenticationError means the supplied password did not match. The
// learner may simply try again.
type AuthenticationError struct {
	ProfileID string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("wrong password for profile %q", e.ProfileID)
}

// MsgWrongPassword is the learner-facing text for an AuthenticationError.
const MsgWrongPassword = "Onjuist wachtwoord. Probeer het opnieuw."

// InvalidInputError reports a rejected argument.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Message
}

// Backend stores opaque payloads under string keys.
type Backend interface {
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	Put(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// Store caches the profile set in memory and writes every change through
// to the backend.
type Store struct {
	backend Backend

	mu       sync.Mutex
	profiles []Profile
	loaded   bool
}

// NewStore creates a Store on top of backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load reads the profile set. If nothing is stored yet, the seed set is
// persisted and returned.
func (s *Store) Load(ctx context.Context) ([]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok, err := s.backend.Get(ctx, RecordKey)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	if !ok {
		seed := Seed()
		if err := s.write(ctx, seed); err != nil {
			return nil, err
		}
		s.profiles, s.loaded = seed, true
		return clone(seed), nil
	}

	var profiles []Profile
	if err := json.Unmarshal(payload, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles (run `linguist reset` to start over): %w", err)
	}
	s.profiles, s.loaded = profiles, true
	return clone(profiles), nil
}

// Save persists the full ordered profile set.
func (s *Store) Save(ctx context.Context, profiles []Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(ctx, profiles); err != nil {
		return err
	}
	s.profiles, s.loaded = clone(profiles), true
	return nil
}

func (s *Store) write(ctx context.Context, profiles []Profile) error {
	payload, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("encode profiles: %w", err)
	}
	if err := s.backend.Put(ctx, RecordKey, payload); err != nil {
		return fmt.Errorf("save profiles: %w", err)
	}
	return nil
}

// List returns the cached profile set in stored order.
func (s *Store) List() []Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.profiles)
}

// Get returns the cached profile with id.
func (s *Store) Get(id string) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.find(id)
	if err != nil {
		return Profile{}, err
	}
	return s.profiles[i], nil
}

// Select reports whether signing in as id needs a password.
func (s *Store) Select(id string) (needsPassword bool, err error) {
	p, err := s.Get(id)
	if err != nil {
		return false, err
	}
	return p.HasPassword(), nil
}

// Authenticate checks password against the profile's password. Open
// profiles accept any password.
func (s *Store) Authenticate(id, password string) (Profile, error) {
	p, err := s.Get(id)
	if err != nil {
		return Profile{}, err
	}
	if p.HasPassword() && p.Password != password {
		return Profile{}, &AuthenticationError{ProfileID: id}
	}
	return p, nil
}

// RecordCompletion credits a finished lesson to the profile and persists
// the new statistics: points grow by score × PointsPerCorrectAnswer and the
// lesson and streak counters by one.
func (s *Store) RecordCompletion(ctx context.Context, id string, score int) (Profile, error) {
	if score < 0 {
		return Profile{}, &InvalidInputError{Message: fmt.Sprintf("negative score %d", score)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.find(id)
	if err != nil {
		return Profile{}, err
	}

	updated := clone(s.profiles)
	st := &updated[i].Stats
	st.TotalPoints += score * PointsPerCorrectAnswer
	st.CompletedLessons++
	st.StreakCount++

	if err := s.write(ctx, updated); err != nil {
		return Profile{}, err
	}
	s.profiles = updated
	return updated[i], nil
}

// Reset removes the stored profile set. The next Load reseeds it.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("reset profiles: %w", err)
	}
	s.profiles, s.loaded = nil, false
	return nil
}

// find returns the index of id. Callers hold s.mu.
func (s *Store) find(id string) (int, error) {
	if !s.loaded {
		return 0, ErrNotLoaded
	}
	for i, p := range s.profiles {
		if p.ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrProfileNotFound, id)
}

func clone(profiles []Profile) []Profile {
	if profiles == nil {
		return nil
	}
	return append([]Profile(nil), profiles...)
}
