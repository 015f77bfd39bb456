package global

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("msisdn_intl", validateMsisdnIntl)
}

// validateNoXSS kiểm tra XSS trong các trường text tự do (mô tả, story, ghi chú đơn hàng)
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"innerHTML",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// msisdnPattern khớp số điện thoại quốc tế dạng +22370000000 (8-15 chữ số sau dấu +)
var msisdnPattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// validateMsisdnIntl kiểm tra số điện thoại WhatsApp ở định dạng quốc tế.
// Trường rỗng được coi là hợp lệ, dùng kèm required khi bắt buộc.
func validateMsisdnIntl(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return msisdnPattern.MatchString(value)
}
