package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// DateString календарная дата в формате "YYYY-MM-DD"
// Используется для заблокированных дат и дат бронирования
type DateString string

var dateStringRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")

// NewDateString создает DateString из time.Time (отбрасывает время суток)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format("2006-01-02"))
}

// NewDateStringFromString создает DateString из строки с валидацией
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate проверяет формат YYYY-MM-DD и что дата существует в календаре
func (d DateString) Validate() error {
	if !dateStringRe.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	if _, err := time.Parse("2006-01-02", string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// Time возвращает дату как time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}
