package trackingid

import (
	"crypto/rand"
	"fmt"
)

// Алфавит кода отслеживания: база36 в верхнем регистре
// Код показывается клиенту и диктуется по телефону, поэтому короткий и без
// визуально неоднозначных нестандартных символов
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Длины кодов: короткий для обычной генерации, длинный как fallback
// после серии коллизий
const (
	ShortLength = 9
	LongLength  = 12
)

// Generate возвращает новый короткий код отслеживания
func Generate() (string, error) {
	return generate(ShortLength)
}

// GenerateLong возвращает длинный код отслеживания (fallback при коллизиях)
func GenerateLong() (string, error) {
	return generate(LongLength)
}

func generate(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("trackingid: failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return string(buf), nil
}
