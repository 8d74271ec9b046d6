package pipeline

import (
	"github.com/shopspring/decimal"

	"tablex/internal"
)

// 50/20 = 0.50*0.80, then a further 5, 10, 15 and 20 percent off that.
var tierMultipliers = [5]decimal.Decimal{
	decimal.RequireFromString("0.40"),
	decimal.RequireFromString("0.38"),
	decimal.RequireFromString("0.36"),
	decimal.RequireFromString("0.34"),
	decimal.RequireFromString("0.32"),
}

func discountTiers(listPrice *float64) internal.DiscountTiers {
	if listPrice == nil || *listPrice <= 0 {
		return internal.DiscountTiers{}
	}
	list := decimal.NewFromFloat(*listPrice)
	var p [5]*float64
	for i, m := range tierMultipliers {
		v, _ := list.Mul(m).Round(2).Float64()
		p[i] = &v
	}
	return internal.DiscountTiers{
		Price5020:   p[0],
		Price50205:  p[1],
		Price502010: p[2],
		Price502015: p[3],
		Price502020: p[4],
	}
}
