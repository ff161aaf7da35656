package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinAdminPasswordLength is the shortest password cmd/hash-password will hash
const MinAdminPasswordLength = 14

var (
	ErrPasswordTooShort    = errors.New("admin password is too short")
	ErrPasswordHasUsername = errors.New("admin password contains the admin username")
	ErrPasswordHasSiteName = errors.New("admin password contains the site name")
	ErrPasswordTooSimple   = errors.New("admin password needs at least three character classes (upper, lower, digit, symbol)")
)

// siteName may not appear in the admin password
const siteName = "agenz"

// ValidateAdminPassword checks the single admin account's password before it is hashed.
// Long passphrases are preferred over symbol rules, so any three character classes will do.
func ValidateAdminPassword(password, username string) error {
	if n := utf8.RuneCountInString(password); n < MinAdminPasswordLength {
		return fmt.Errorf("%w: %d of %d characters", ErrPasswordTooShort, n, MinAdminPasswordLength)
	}

	lower := strings.ToLower(password)
	if username = strings.ToLower(strings.TrimSpace(username)); username != "" && strings.Contains(lower, username) {
		return ErrPasswordHasUsername
	}
	if strings.Contains(lower, siteName) {
		return ErrPasswordHasSiteName
	}

	var upper, low, digit, symbol int
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = 1
		case unicode.IsLower(r):
			low = 1
		case unicode.IsDigit(r):
			digit = 1
		case !unicode.IsSpace(r):
			symbol = 1
		}
	}
	if upper+low+digit+symbol < 3 {
		return ErrPasswordTooSimple
	}
	return nil
}
