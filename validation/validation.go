package validation

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail checks for a simple local@domain.tld shape after trimming.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// PasswordCheck carries the outcome of a password strength check.
type PasswordCheck struct {
	Valid  bool
	Errors []string
}

// ValidatePasswordStrength requires length >= 8 with at least one
// uppercase, one lowercase and one digit. No symbol requirement.
func ValidatePasswordStrength(s string) PasswordCheck {
	var errs []string
	if len(s) < 8 {
		errs = append(errs, "password must be at least 8 characters long")
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range s {
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
		errs = append(errs, "password must contain an uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "password must contain a lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain a digit")
	}
	return PasswordCheck{Valid: len(errs) == 0, Errors: errs}
}

// SanitizeString trims the input, strips C0 control characters and NUL,
// and truncates to maxLength when maxLength > 0. It never panics.
func SanitizeString(s string, maxLength int) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if maxLength > 0 && len(out) > maxLength {
		out = out[:maxLength]
	}
	return out
}

// ValidateLength is an inclusive bounds check on the trimmed length.
func ValidateLength(s string, min, max int) bool {
	n := len(strings.TrimSpace(s))
	return n >= min && n <= max
}

// IsValidURL requires an http or https scheme with a host.
func IsValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".bmp"}

// Hosting services that serve images without a file extension in the path.
var imageHosts = []string{"cloudinary.com", "imgur.com", "unsplash.com", "googleusercontent.com", "supabase.co"}

// IsValidImageURL additionally requires a known image extension or a
// hosting-domain substring match. A heuristic, not a content-type check.
func IsValidImageURL(s string) bool {
	if !IsValidURL(s) {
		return false
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	for _, host := range imageHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// IsValidPrice accepts non-negative decimal strings. Zero is accepted.
func IsValidPrice(p string) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(p))
	if err != nil {
		return false
	}
	return !d.IsNegative()
}

// IsValidQuantity requires a strictly positive integer.
func IsValidQuantity(q string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(q))
	return err == nil && n > 0
}

// IsPositiveQuantity is the integer form of IsValidQuantity.
func IsPositiveQuantity(q int) bool {
	return q > 0
}

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", "+", "", ".", "")

// IsValidPhone strips separator characters and requires 7 to 15
// remaining digits.
func IsValidPhone(p string) bool {
	stripped := phoneSeparators.Replace(strings.TrimSpace(p))
	if len(stripped) < 7 || len(stripped) > 15 {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var postalPattern = regexp.MustCompile(`^[A-Za-z0-9 -]{3,10}$`)

// IsValidPostalCode accepts 3 to 10 alphanumeric, space or hyphen characters.
func IsValidPostalCode(p string) bool {
	return postalPattern.MatchString(strings.TrimSpace(p))
}
