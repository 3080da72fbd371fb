package valueobject

import (
	"regexp"
	"strings"

	"github.com/oksasatya/go-hexagonal-auth/internal/domain/apperror"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a trimmed, lowercased and syntactically valid address.
// The zero value is not a valid Email; use NewEmail.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return Email{}, apperror.Validation("email must not be blank")
	}
	if !emailPattern.MatchString(normalized) {
		return Email{}, apperror.Newf(apperror.KindValidation, "invalid email format: %s", normalized)
	}
	return Email{value: normalized}, nil
}

func (e Email) String() string { return e.value }

func (e Email) Equal(other Email) bool { return e.value == other.value }

func (e Email) IsZero() bool { return e.value == "" }
