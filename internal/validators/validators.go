package validators

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidEmail reports whether the string looks like an email address.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword enforces the password policy: at least 8 characters with
// an uppercase letter, a lowercase letter and a digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one number")
	}
	return nil
}

// ValidRole reports whether the role may be assigned through the admin API.
func ValidRole(role string) bool {
	return role == "student" || role == "instructor"
}

// MissingFields returns the sorted names of required fields whose values are
// empty, for building "Missing required fields" responses.
func MissingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// ValidFileExtension reports whether the filename carries one of the allowed
// extensions. Matching is case-insensitive.
func ValidFileExtension(filename string, allowed []string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return false
	}
	ext := strings.ToLower(filename[idx+1:])
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// ValidFileSize reports whether the file fits within the size limit.
func ValidFileSize(size, max int64) bool {
	return size <= max
}
