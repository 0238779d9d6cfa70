package validations

import (
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	tagPattern  = regexp.MustCompile(`<[^>]*>`)
)

// MaxFreeTextLen bounds sanitized free-text fields such as special requests.
const MaxFreeTextLen = 1000

const dateLayout = "2006-01-02"

// IsUUID reports whether s is a canonical 8-4-4-4-12 hex UUID.
// urn: and braced forms are not accepted.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}

// IsDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// SanitizeFreeText strips <...> tag-like substrings, trims whitespace and
// truncates to MaxFreeTextLen runes. Returns nil when nothing is left.
func SanitizeFreeText(s string) *string {
	clean := strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
	if runes := []rune(clean); len(runes) > MaxFreeTextLen {
		clean = string(runes[:MaxFreeTextLen])
	}
	if clean == "" {
		return nil
	}
	return &clean
}

// RegisterCustomValidators installs the "ymd" rule on gin's binding engine.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		})
	}
}
