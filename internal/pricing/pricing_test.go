package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcmarket/booking-engine/internal/domain"
)

func deepCleanCard() *domain.PriceCard {
	return &domain.PriceCard{
		ID:        "card-1",
		BasePrice: 6000,
		AddOns: []domain.AddOn{
			{Name: "deep clean", Price: 2500},
			{Name: "windows", Price: 1500},
		},
		DurationMinutes: 120,
		IsActive:        true,
	}
}

func TestQuoteBaseOnly(t *testing.T) {
	quote := NewEngine().Quote(deepCleanCard(), nil)

	assert.Equal(t, int64(6000), quote.BasePrice)
	assert.Equal(t, int64(6000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.Tax)
	assert.Equal(t, int64(6000), quote.Total)
	assert.Equal(t, domain.DefaultCurrency, quote.Currency)
	assert.Empty(t, quote.AddOns)
}

func TestQuoteWithAddOn(t *testing.T) {
	quote := NewEngine().Quote(deepCleanCard(), []string{"deep clean"})

	require.Len(t, quote.AddOns, 1)
	assert.Equal(t, "deep clean", quote.AddOns[0].Name)
	assert.Equal(t, int64(8500), quote.Subtotal)
	assert.Equal(t, int64(8500), quote.Total)
}

func TestQuoteUnknownAddOnIgnored(t *testing.T) {
	quote := NewEngine().Quote(deepCleanCard(), []string{"deep clean", "gold plating"})

	require.Len(t, quote.AddOns, 1)
	assert.Equal(t, int64(8500), quote.Total)
}

func TestQuoteDuplicateSelectionCountedOnce(t *testing.T) {
	quote := NewEngine().Quote(deepCleanCard(), []string{"deep clean", "deep clean"})

	require.Len(t, quote.AddOns, 1)
	assert.Equal(t, int64(8500), quote.Total)
}

func TestQuoteAddOnsInCardOrder(t *testing.T) {
	// выбор в обратном порядке, результат - в порядке карточки
	quote := NewEngine().Quote(deepCleanCard(), []string{"windows", "deep clean"})

	require.Len(t, quote.AddOns, 2)
	assert.Equal(t, "deep clean", quote.AddOns[0].Name)
	assert.Equal(t, "windows", quote.AddOns[1].Name)
	assert.Equal(t, int64(10000), quote.Total)
}

func TestQuoteDeterministic(t *testing.T) {
	engine := NewEngine()
	first := engine.Quote(deepCleanCard(), []string{"windows"})
	second := engine.Quote(deepCleanCard(), []string{"windows"})
	assert.Equal(t, first, second)
}

type flatTax struct{ amount int64 }

func (f flatTax) Tax(int64) int64 { return f.amount }

func TestQuoteTaxPolicy(t *testing.T) {
	quote := NewEngineWithTaxPolicy(flatTax{amount: 780}).Quote(deepCleanCard(), nil)

	assert.Equal(t, int64(6000), quote.Subtotal)
	assert.Equal(t, int64(780), quote.Tax)
	assert.Equal(t, int64(6780), quote.Total)
}
