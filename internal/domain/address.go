package domain

import "time"

// Address адрес обслуживания, принадлежит клиенту
// Бронирование ссылается на адрес по ID без снимка полей:
// адресные данные бронирования — это текущее состояние записи
type Address struct {
	ID         string
	UserID     string
	Label      string
	Line1      string
	Line2      *string
	City       string
	PostalCode string
	IsDefault  bool
	CreatedAt  time.Time
}
