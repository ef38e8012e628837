package state

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/daybook/pkg/store"
)

// ErrBadPIN is returned when a PIN does not match the stored hash.
var ErrBadPIN = errors.New("state: incorrect PIN")

// Locked reports whether a PIN is configured.
func (s *Store) Locked() bool {
	return s.PINHash != ""
}

// CheckPIN verifies pin against the stored hash. With no PIN set every input
// is accepted.
func (s *Store) CheckPIN(pin string) error {
	if s.PINHash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.PINHash), []byte(strings.TrimSpace(pin))); err != nil {
		return ErrBadPIN
	}
	return nil
}

// SetPIN hashes and persists a new PIN.
func (s *Store) SetPIN(kv store.Storage, pin string) error {
	pin = strings.TrimSpace(pin)
	if pin == "" {
		return errors.New("state: PIN must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("state: hash PIN: %w", err)
	}
	if err := kv.Write(store.KeyPIN, hash); err != nil {
		return err
	}
	s.PINHash = string(hash)
	return nil
}

// ClearPIN removes the PIN.
func (s *Store) ClearPIN(kv store.Storage) error {
	if err := kv.Erase(store.KeyPIN); err != nil {
		return err
	}
	s.PINHash = ""
	return nil
}
