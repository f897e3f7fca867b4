// Package pin is the lightweight secret gate in front of the journal.
// It is deliberately low-friction: no lockout, no rate limiting, no attempt
// counter. Wrong attempts are silently rejected, matching the contract the
// journal always had.
package pin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/haven/internal/storage"
)

// MinLength is the shortest PIN enrollment accepts.
const MinLength = 4

type State int

const (
	StateUnset State = iota
	StateLocked
	StateUnlocked
)

func (state State) String() string {
	switch state {
	case StateUnset:
		return "unset"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	}
	return "unknown"
}

var (
	ErrTooShort        = fmt.Errorf("pin must be at least %d characters", MinLength)
	ErrAlreadyEnrolled = errors.New("a pin is already enrolled")
)

// Gate compares attempts against the stored secret through a pluggable
// codec. The default codec stores the PIN verbatim, the behavior the
// original journal had; see Bcrypt for the opt-in hashed variant.
type Gate struct {
	store  storage.Store
	key    string
	codec  Codec
	secret string
	state  State
}

func NewGate(store storage.Store, key string, codec Codec) *Gate {
	if codec == nil {
		codec = Verbatim{}
	}
	gate := &Gate{store: store, key: key, codec: codec}

	secret, ok, _ := store.Get(key)
	if ok && secret != "" {
		gate.secret = secret
		gate.state = StateLocked
	}
	return gate
}

func (gate *Gate) State() State {
	return gate.state
}

// Enroll stores the first PIN and unlocks immediately. A short PIN is
// rejected without a state change. When the durable medium fails, the
// enrollment still holds for the session and the storage error is returned
// for the caller to warn about.
func (gate *Gate) Enroll(pinCode string) error {
	if gate.state != StateUnset {
		return ErrAlreadyEnrolled
	}
	if len(strings.TrimSpace(pinCode)) < MinLength {
		return ErrTooShort
	}

	sealed, err := gate.codec.Seal(pinCode)
	if err != nil {
		return fmt.Errorf("seal pin: %w", err)
	}

	gate.secret = sealed
	gate.state = StateUnlocked
	return gate.store.Set(gate.key, sealed)
}

// Attempt unlocks on a match and otherwise leaves the gate locked.
func (gate *Gate) Attempt(pinCode string) bool {
	if gate.state == StateUnset {
		return false
	}
	if gate.codec.Match(gate.secret, pinCode) {
		gate.state = StateUnlocked
		return true
	}
	return false
}

func (gate *Gate) Lock() {
	if gate.state == StateUnlocked {
		gate.state = StateLocked
	}
}
