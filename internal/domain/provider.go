package domain

import "time"

// Provider запись провайдера, связывающая его с учетной записью пользователя
// Разрешение ролей: пользователь действует как провайдер, только если
// для его UserID существует запись Provider
type Provider struct {
	ID          string
	UserID      string
	DisplayName string
	City        string
	CreatedAt   time.Time
}
