package pricecard

import "errors"

var (
	// ErrPriceCardNotFound возвращается, когда карточка не найдена
	ErrPriceCardNotFound = errors.New("pricecard.repository: price card not found")

	// ErrPriceCardInUse возвращается при попытке удалить карточку,
	// на которую ссылаются бронирования; такие карточки деактивируют
	ErrPriceCardInUse = errors.New("pricecard.repository: price card is referenced by bookings")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricecard.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricecard.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricecard.repository: failed to scan row")
)
