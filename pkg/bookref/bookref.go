// Package bookref генерирует короткие человекочитаемые коды бронирований.
package bookref

import (
	"crypto/rand"
	"fmt"
)

// Length длина кода бронирования
const Length = 8

// alphabet без визуально похожих символов (0/O, 1/I/L)
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// New возвращает случайный код из Length символов
// Код не гарантированно уникален: уникальность обеспечивает
// ограничение БД, вызывающая сторона повторяет генерацию при коллизии
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("bookref: read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}
