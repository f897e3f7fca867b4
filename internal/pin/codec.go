package pin

import "golang.org/x/crypto/bcrypt"

// Codec seals a PIN for storage and matches attempts against the sealed
// form.
type Codec interface {
	Seal(pinCode string) (string, error)
	Match(stored string, attempt string) bool
}

// Verbatim stores the PIN as entered and compares byte-for-byte. This is
// the original behavior and provides no protection against anyone who can
// read the storage file.
type Verbatim struct{}

func (Verbatim) Seal(pinCode string) (string, error) {
	return pinCode, nil
}

func (Verbatim) Match(stored string, attempt string) bool {
	return stored == attempt
}

// Bcrypt stores a salted hash instead. Opt-in via the pin_hashing config
// flag; flipping the flag does not migrate a secret enrolled under the
// other codec.
type Bcrypt struct{}

func (Bcrypt) Seal(pinCode string) (string, error) {
	sealed, err := bcrypt.GenerateFromPassword([]byte(pinCode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(sealed), nil
}

func (Bcrypt) Match(stored string, attempt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(attempt)) == nil
}
