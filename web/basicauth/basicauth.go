package basicauth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"golang.org/x/crypto/scrypt"

	"github.com/iotaledger/rbviz/ierrors"
	"github.com/iotaledger/rbviz/lo"
)

// SaltGenerator generates a crypto-secure random salt.
func SaltGenerator(length int) ([]byte, error) {
	salt := make([]byte, length)

	if _, err := rand.Read(salt); err != nil {
		return nil, ierrors.Wrap(err, "generating salt failed")
	}

	return salt, nil
}

// DerivePasswordKey calculates the key based on password and salt.
func DerivePasswordKey(password []byte, salt []byte) ([]byte, error) {
	dk, err := scrypt.Key(password, salt, 1<<15, 8, 1, 32)
	if err != nil {
		return nil, ierrors.Wrap(err, "deriving password key failed")
	}

	return dk, nil
}

// VerifyPassword verifies if the password is correct.
func VerifyPassword(password []byte, salt []byte, storedPasswordKey []byte) (bool, error) {
	dk, err := DerivePasswordKey(password, salt)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(dk, storedPasswordKey) == 1, nil
}

// BasicAuth is a basic authentication implementation for a single user.
type BasicAuth struct {
	username     string
	passwordHash []byte
	passwordSalt []byte
}

// NewBasicAuth creates a BasicAuth from the hex encoded scrypt hash and salt of the password.
func NewBasicAuth(username string, passwordHashHex string, passwordSaltHex string) (*BasicAuth, error) {
	if len(username) == 0 {
		return nil, ierrors.New("username must not be empty")
	}

	passwordHash, err := decodeHex(passwordHashHex, "password hash")
	if err != nil {
		return nil, err
	}

	passwordSalt, err := decodeHex(passwordSaltHex, "password salt")
	if err != nil {
		return nil, err
	}

	return &BasicAuth{
		username:     username,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
	}, nil
}

// VerifyUsernameAndPassword returns true if the credentials match the configured user.
func (b *BasicAuth) VerifyUsernameAndPassword(username string, password string) bool {
	if username != b.username {
		return false
	}

	// error is ignored because it returns false in case it can't be derived
	return lo.Return1(VerifyPassword([]byte(password), b.passwordSalt, b.passwordHash))
}

// Protect wraps the handler so that it is only reachable with valid credentials.
func (b *BasicAuth) Protect(realm string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if username, password, ok := r.BasicAuth(); !ok || !b.VerifyUsernameAndPassword(username, password) {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+realm+`"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// decodeHex decodes a hex encoded 32 byte value.
func decodeHex(value string, name string) ([]byte, error) {
	if len(value) != 64 {
		return nil, ierrors.Errorf("%s must be 64 (hex encoded) in length", name)
	}

	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, ierrors.Wrapf(err, "%s must be hex encoded", name)
	}

	return decoded, nil
}
