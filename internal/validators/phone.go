package validators

import "strings"

// IsPhoneValid accepts the loose phone formats the booking wizard submits:
// an optional leading +, digits, and common separators. After stripping
// separators there must be 7 to 15 digits.
func IsPhoneValid(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return false
	}

	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}

	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separator, ignore
		default:
			return false
		}
	}

	return digits >= 7 && digits <= 15
}
