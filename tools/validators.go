package tools

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

const MIN_PASSWORD_LEN = 6

// CheckPassword returns what is wrong with the password, or "" when it is acceptable.
func CheckPassword(password string) string {
	if len(password) < MIN_PASSWORD_LEN {
		return "must be at least 6 characters"
	}
	return ""
}
