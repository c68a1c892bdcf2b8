// Package validate holds the precompiled format checks used during account
// registration and listing creation. It validates shape only; uniqueness,
// profanity, and range rules belong to the services.
package validate

import "regexp"

var (
	// Handle: ASCII letters and digits, 4 to 16 characters.
	handleRe = regexp.MustCompile(`^[a-zA-Z0-9]{4,16}$`)

	// Display name: no whitespace, 2 to 20 characters.
	displayNameRe = regexp.MustCompile(`^\S{2,20}$`)

	// Verification identifier: six digits, a dash, seven digits.
	verificationIDRe = regexp.MustCompile(`^\d{6}-\d{7}$`)

	// Price input: plain digits, or 1-3 digits followed by comma-separated
	// groups of three ("1,000" yes, "12,34" no).
	priceCommaRe = regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)
	pricePlainRe = regexp.MustCompile(`^\d+$`)
)

func Handle(s string) bool { return handleRe.MatchString(s) }

func DisplayName(s string) bool { return displayNameRe.MatchString(s) }

func VerificationID(s string) bool { return verificationIDRe.MatchString(s) }

func PriceInput(s string) bool {
	return priceCommaRe.MatchString(s) || pricePlainRe.MatchString(s)
}
