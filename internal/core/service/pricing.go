package service

import (
	"strconv"
	"strings"

	"github.com/MikeRez0/coinsend/internal/core/domain"
	"github.com/govalues/decimal"
)

// Price derives the order total from a selection. Unknown or empty
// selections and unusable custom amounts price at zero.
func Price(catalog domain.Catalog, selection domain.Selection) domain.Quote {
	zero := domain.Quote{Price: decimal.Zero}
	if selection.PackageID == "" {
		return zero
	}
	pkg, ok := catalog.Find(selection.PackageID)
	if !ok {
		return zero
	}
	if !pkg.IsCustom {
		return domain.Quote{Coins: pkg.Coins, Price: pkg.Price}
	}

	coins := ParseCustomAmount(selection.CustomAmount)
	if coins == 0 {
		return zero
	}
	price, err := decimal.MustNew(coins, 0).Mul(domain.CustomCoinPrice)
	if err != nil {
		return zero
	}
	return domain.Quote{Coins: coins, Price: price.Round(2)}
}

// ParseCustomAmount reads a whole coin count from free text. Anything that
// is not a non-negative decimal counts as zero; fractions are dropped.
func ParseCustomAmount(text string) int64 {
	d, err := decimal.Parse(strings.TrimSpace(text))
	if err != nil || d.Sign() <= 0 {
		return 0
	}
	coins, err := strconv.ParseInt(d.Trunc(0).String(), 10, 64)
	if err != nil {
		return 0
	}
	return coins
}
