package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// Every positional argument ends up as a URL path segment, so the shared
// rules reject anything that could escape that segment.
func validateSegment(code Code, kind, value string, maxLen int) error {
	if value == "" {
		return New(code, "%s cannot be empty", kind)
	}
	if len(value) > maxLen {
		return New(code, "%s too long (max %d characters)", kind, maxLen)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(code, "%s contains invalid control characters", kind)
		}
	}
	if value == "." || value == ".." {
		return New(code, "%s cannot be %q", kind, value)
	}
	if strings.ContainsAny(value, "/\\?#") {
		return New(code, "%s contains invalid characters: %q", kind, value)
	}
	return nil
}

// userNameRegex matches GitHub logins. Older accounts may carry doubled or
// trailing hyphens, so only a leading hyphen is rejected.
var userNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

// ValidateUser validates a GitHub user or organization login.
func ValidateUser(name string) error {
	if err := validateSegment(ErrCodeInvalidUser, "user name", name, 39); err != nil {
		return err
	}
	if !userNameRegex.MatchString(name) {
		return New(ErrCodeInvalidUser, "invalid GitHub user name: %q", name)
	}
	return nil
}

// repoNameRegex matches the characters GitHub keeps in repository names.
var repoNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// ValidateRepo validates a repository name (without the owner prefix).
func ValidateRepo(name string) error {
	if err := validateSegment(ErrCodeInvalidRepo, "repository name", name, 100); err != nil {
		return err
	}
	if !repoNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRepo, "invalid repository name: %q", name)
	}
	return nil
}

// ValidateTag validates a release tag. Tags are git refs and may contain
// slashes; callers path-escape them, so only emptiness, length and control
// characters are checked.
func ValidateTag(tag string) error {
	if tag == "" {
		return New(ErrCodeInvalidTag, "release tag cannot be empty")
	}
	if len(tag) > 255 {
		return New(ErrCodeInvalidTag, "release tag too long (max 255 characters)")
	}
	for _, r := range tag {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTag, "release tag contains invalid control characters")
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
