package validator_test

import "testing"

func TestFormatRules(t *testing.T) {
	t.Parallel()
	v := newTestValidator(t)

	t.Run("isAlphaCountryCode", func(t *testing.T) {
		assertPasses(t, v, "isAlphaCountryCode", "USA", "DEU")
		assertFails(t, v, "isAlphaCountryCode", "usa", "US", "USAA")
		assertMessage(t, v, "isAlphaCountryCode", "us", "Must be a valid country")
	})

	t.Run("isCreditCard", func(t *testing.T) {
		assertPasses(t, v, "isCreditCard",
			"4111111111111111", // visa
			"4222222222222",    // visa, 13 digits
			"5500000000000004", // mastercard
			"340000000000009",  // amex
			"6011000000000004", // discover
			"30000000000004",   // diners club
			"3530111333300000", // jcb
		)
		assertFails(t, v, "isCreditCard", "1234567890123456", "4111", "4111-1111-1111-1111")
	})

	t.Run("isEmail", func(t *testing.T) {
		assertPasses(t, v, "isEmail", "a@b.com", "John.Doe+tag@example.co.uk", "user_1%x@sub-domain.org")
		assertFails(t, v, "isEmail", "not-an-email", "a@b", "a@b.c", "a b@c.com", "@example.com")
		assertMessage(t, v, "isEmail", "nope", "Invalid email address")
	})

	t.Run("isEmailList", func(t *testing.T) {
		assertPasses(t, v, "isEmailList", "a@b.com", "a@b.com, c@d.org;e@f.net", "a@b.com ; c@d.org")
		assertFails(t, v, "isEmailList", "a@b.com, nope", "a@b.com c@d.org")
		assertMessage(t, v, "isEmailList", "a@b.com, nope", "Invalid email address found in email address list")
	})

	t.Run("isFileType", func(t *testing.T) {
		assertPasses(t, v, "isFileType(jpg;png)", "photo.JPG", "image.png", "my.photo.jpg")
		assertPasses(t, v, "isFileType(jpg, png)", "photo.jpg", "image.PNG")
		assertPasses(t, v, "isFileType(gz)", "archive.tar.gz")
		assertFails(t, v, "isFileType(jpg;png)", "doc.pdf", "photo.jpeg", "png.gif")
		assertPasses(t, v, "isFileType(jpg)", "jpg")
		assertMessage(t, v, "isFileType(pdf)", "photo.jpg", "Must contain only pdf files")
		assertMessage(t, v, "isFileType(jpg;png)", "doc.pdf", "Must contain only jpg;png files")
	})

	t.Run("isFileType without types fails", func(t *testing.T) {
		assertFails(t, v, "isFileType", "photo.jpg")
		assertFails(t, v, "isFileType()", "photo.jpg")
	})

	t.Run("isIpAddress", func(t *testing.T) {
		assertPasses(t, v, "isIpAddress", "192.168.0.1", "255.255.255.255", "0.0.0.0", "10.0.0.254")
		assertFails(t, v, "isIpAddress", "256.1.1.1", "1.2.3", "1.2.3.4.5", "a.b.c.d", "192.168.0.1/24")
		assertMessage(t, v, "isIpAddress", "1.2.3", "Must contain a valid IP address")
	})

	t.Run("isPhoneCharacters", func(t *testing.T) {
		assertPasses(t, v, "isPhoneCharacters", "+1 (555) 123-4567", "555.123.4567", "5551234567")
		assertFails(t, v, "isPhoneCharacters", "555-CALL", "555#123")
	})

	t.Run("isUrl", func(t *testing.T) {
		assertPasses(t, v, "isUrl", "https://example.com", "example.com/path?q=1", "www.example.org", "http://sub.example.io/a/b")
		assertFails(t, v, "isUrl", "not a url", "localhost", "http://")
		assertMessage(t, v, "isUrl", "localhost", "Must contain a valid URL")
	})
}
