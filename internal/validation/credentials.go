package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// Registration field error messages.
const (
	msgFullName = "Name must be at least two words containing only letters."
	msgEmail    = "Invalid email format."
	msgPassword = "Password must be at least 6 characters long with at least one lowercase letter, one uppercase letter, and one digit."
)

var fullNameRe = regexp.MustCompile(`^[a-zA-Z]+(\s+[a-zA-Z]+)+$`)

// Registration checks the registration credential format rules and returns a
// field name to message mapping for every failing field. An empty map means
// all fields passed.
func Registration(fullName, email, password string) map[string]string {
	errs := make(map[string]string)

	if !ValidFullName(fullName) {
		errs["fullName"] = msgFullName
	}
	if !ValidEmail(email) {
		errs["email"] = msgEmail
	}
	if !ValidPassword(password) {
		errs["password"] = msgPassword
	}
	return errs
}

// ValidFullName requires at least two whitespace-separated alphabetic words.
func ValidFullName(name string) bool {
	return fullNameRe.MatchString(strings.TrimSpace(name))
}

// ValidEmail accepts a permissive local@domain.tld shape: no whitespace,
// exactly one @, and at least one dot after it.
func ValidEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.Index(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// ValidPassword requires 6+ alphanumeric characters including at least one
// lowercase letter, one uppercase letter, and one digit.
func ValidPassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r) && r < 128:
			hasLower = true
		case unicode.IsUpper(r) && r < 128:
			hasUpper = true
		case unicode.IsDigit(r) && r < 128:
			hasDigit = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit
}
