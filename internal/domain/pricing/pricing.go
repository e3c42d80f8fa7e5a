// Package pricing computes wash prices from the fixed price table and the
// 13% IVA.
package pricing

import (
	"carwash/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IVARate is the value-added tax applied to every base price.
var IVARate = decimal.RequireFromString("0.13")

var basePrices = map[entities.WashType]decimal.Decimal{
	entities.WashTypeBasic:   decimal.NewFromInt(8000),
	entities.WashTypePremium: decimal.NewFromInt(12000),
	entities.WashTypeDeluxe:  decimal.NewFromInt(20000),
}

// BasePrice returns the tabulated price of a wash type. La Joya has no
// tabulated price and is resolved from the agreed price instead.
func BasePrice(t entities.WashType) (decimal.Decimal, bool) {
	p, ok := basePrices[t]
	return p, ok
}

// CalculatePrices returns w with BasePrice, IVA and TotalPrice filled in.
//
// A La Joya wash without an agreed price yields a zero price; callers must
// reject that case before pricing.
func CalculatePrices(w entities.CarWash) entities.CarWash {
	if w.WashType == entities.WashTypeLaJoya {
		if w.PriceToAgree != nil {
			w.BasePrice = *w.PriceToAgree
		} else {
			w.BasePrice = decimal.Zero
		}
	} else {
		w.BasePrice = basePrices[w.WashType]
	}

	w.IVA = w.BasePrice.Mul(IVARate)
	w.TotalPrice = w.BasePrice.Add(w.IVA)
	return w
}
