package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrRefConflict возвращается при коллизии кода бронирования
	// Вызывающая сторона генерирует новый код и повторяет вставку
	ErrRefConflict = errors.New("booking.repository: booking ref already exists")

	// ErrSlotTaken возвращается при нарушении уникального индекса занятости
	// (другое активное бронирование на то же время провайдера)
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrStatusGuard возвращается, когда условный update статуса не затронул строк:
	// бронирование исчезло или его статус уже не совпадает с ожидаемым
	ErrStatusGuard = errors.New("booking.repository: status precondition failed")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
