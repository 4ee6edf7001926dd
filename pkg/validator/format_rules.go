package validator

import (
	"regexp"
	"strings"
)

var (
	alphaCountryRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	creditCardRegex   = regexp.MustCompile(`^(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|6(?:011|5[0-9][0-9])[0-9]{12}|3[47][0-9]{13}|3(?:0[0-5]|[68][0-9])[0-9]{11}|(?:2131|1800|35\d{3})\d{11})$`)
	emailRegex        = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,6}$`)
	ipAddressRegex    = regexp.MustCompile(`^((25[0-5]|2[0-4][0-9]|1[0-9]{2}|[0-9]{1,2})\.){3}(25[0-5]|2[0-4][0-9]|1[0-9]{2}|[0-9]{1,2})$`)
	phoneCharsRegex   = regexp.MustCompile(`^[0-9+.\-() ]+$`)
	// Unanchored: any URL-shaped substring is accepted.
	urlRegex = regexp.MustCompile(`(?i)[-a-z0-9@:%_+.~#?&/=]{2,256}\.[a-z]{2,4}\b(/[-a-z0-9@:%_+.~#?&/=]*)?`)

	listSeparatorRegex = regexp.MustCompile(`\s*[,;]\s*`)
)

var formatRules = registry{
	"isAlphaCountryCode": matches(alphaCountryRegex),
	"isCreditCard":       matches(creditCardRegex),
	"isEmail":            matches(emailRegex),
	"isEmailList":        isEmailList,
	"isFileType":         isFileType,
	"isIpAddress":        matches(ipAddressRegex),
	"isPhoneCharacters":  matches(phoneCharsRegex),
	"isUrl":              matches(urlRegex),
}

func isEmailList(value string, _ []string) bool {
	for _, addr := range listSeparatorRegex.Split(value, -1) {
		if !emailRegex.MatchString(addr) {
			return false
		}
	}
	return true
}

// isFileType compares the extension after the last dot with the allowed types.
// Types may be separated by commas (split into several params by the parser)
// or semicolons (kept inside one param); both forms are accepted.
func isFileType(value string, params []string) bool {
	if len(params) == 0 {
		return false
	}

	ext := value[strings.LastIndex(value, ".")+1:]
	for _, allowed := range listSeparatorRegex.Split(strings.Join(params, ","), -1) {
		if allowed != "" && strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}
