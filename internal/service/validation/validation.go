package validation

import "regexp"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func ValidateUsernameLength(username string) bool {
	return len(username) >= 3 && len(username) <= 20
}

func ValidateUsernameFormat(username string) bool {
	return usernamePattern.MatchString(username)
}

func ValidatePassword(password string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+=-]{8,16}$`)
	return re.MatchString(password)
}

func ValidateKills(kills int, maxKills int) bool {
	return kills >= 0 && kills <= maxKills
}

// ValidatePlacement treats zero as "not provided"; a provided placement must
// fit the roster size.
func ValidatePlacement(placement int, maxPlacement int) bool {
	if placement == 0 {
		return true
	}
	return placement >= 1 && placement <= maxPlacement
}
