package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FeePolicy вычисляет комиссию платформы в процентах от суммы заказа
type FeePolicy struct {
	percent decimal.Decimal
}

// NewFeePolicy создает FeePolicy. Процент должен быть в диапазоне [0, 100].
func NewFeePolicy(percent decimal.Decimal) (*FeePolicy, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return nil, fmt.Errorf("fee policy: percent must be within [0, 100], got %s", percent)
	}
	return &FeePolicy{percent: percent}, nil
}

// Percent возвращает процент комиссии
func (p *FeePolicy) Percent() decimal.Decimal {
	return p.percent
}

// Fee возвращает комиссию в центах, округление половины от нуля
func (p *FeePolicy) Fee(totalCents int64) int64 {
	return decimal.NewFromInt(totalCents).Mul(p.percent).Div(hundred).Round(0).IntPart()
}
