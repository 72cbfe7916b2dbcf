// Package pricing вычисляет стоимость бронирования по карточке каталога.
//
// Вычисление детерминировано: один и тот же снимок карточки и выбор
// дополнений всегда дают одинаковый результат. Это обязательное
// свойство, потому что расчет выполняется дважды — для предпросмотра
// и при фактическом создании бронирования — и результаты должны
// совпадать, пока каталог не изменился.
package pricing

import "github.com/svcmarket/booking-engine/internal/domain"

// Quote итог расчета стоимости
type Quote struct {
	BasePrice int64
	AddOns    []domain.AddOn // выбранное подмножество в порядке карточки
	Subtotal  int64
	Tax       int64
	Total     int64
	Currency  string
}

// TaxPolicy вычисляет налог от подытога
// Отдельный интерфейс, чтобы юрисдикционные правила подключались
// без изменения call sites
type TaxPolicy interface {
	Tax(subtotal int64) int64
}

// zeroTax текущая политика: налог всегда ноль
type zeroTax struct{}

func (zeroTax) Tax(int64) int64 { return 0 }

// Engine считает цены по заданной налоговой политике
type Engine struct {
	tax TaxPolicy
}

// NewEngine создает engine с нулевым налогом
func NewEngine() *Engine {
	return &Engine{tax: zeroTax{}}
}

// NewEngineWithTaxPolicy создает engine с заданной налоговой политикой
func NewEngineWithTaxPolicy(tax TaxPolicy) *Engine {
	return &Engine{tax: tax}
}

// Quote вычисляет стоимость карточки с выбранными дополнениями
// Выбор задается именами; имена, которых нет на карточке, молча
// игнорируются — это терпимо к устаревшим клиентским кешам каталога.
// Повторный выбор одного имени учитывается один раз.
func (e *Engine) Quote(card *domain.PriceCard, selectedAddOnNames []string) Quote {
	selected := make(map[string]bool, len(selectedAddOnNames))
	for _, name := range selectedAddOnNames {
		selected[name] = true
	}

	// Проходим по карточке, а не по выбору: порядок дополнений
	// в результате всегда совпадает с порядком на карточке
	addOns := make([]domain.AddOn, 0, len(card.AddOns))
	subtotal := card.BasePrice
	for _, addOn := range card.AddOns {
		if !selected[addOn.Name] {
			continue
		}
		addOns = append(addOns, addOn)
		subtotal += addOn.Price
	}

	tax := e.tax.Tax(subtotal)

	return Quote{
		BasePrice: card.BasePrice,
		AddOns:    addOns,
		Subtotal:  subtotal,
		Tax:       tax,
		Total:     subtotal + tax,
		Currency:  domain.DefaultCurrency,
	}
}
