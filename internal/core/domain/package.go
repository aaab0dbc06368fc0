package domain

import (
	"fmt"

	"github.com/govalues/decimal"
)

// CustomPackageID identifies the catalog entry with a user-entered amount.
const CustomPackageID = "custom"

// CustomCoinPrice is the per-coin price of custom amounts, derived from the
// catalog's pricing curve.
var CustomCoinPrice = decimal.MustNew(11, 3)

// Package is a catalog entry. Coins and Price are zero for the custom entry.
type Package struct {
	ID       string
	Coins    int64
	Price    decimal.Decimal
	IsCustom bool
}

type Catalog []Package

var defaultCatalog = Catalog{
	fixedPackage(30, "0.33"),
	fixedPackage(350, "3.79"),
	fixedPackage(700, "7.59"),
	fixedPackage(1400, "15.15"),
	fixedPackage(3500, "37.89"),
	fixedPackage(7000, "75.75"),
	fixedPackage(17500, "189.35"),
	{ID: CustomPackageID, IsCustom: true},
}

func fixedPackage(coins int64, price string) Package {
	return Package{
		ID:    fmt.Sprintf("%d", coins),
		Coins: coins,
		Price: decimal.MustParse(price),
	}
}

// DefaultCatalog returns a copy of the built-in package list.
func DefaultCatalog() Catalog {
	c := make(Catalog, len(defaultCatalog))
	copy(c, defaultCatalog)
	return c
}

func (c Catalog) Find(id string) (Package, bool) {
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return Package{}, false
}

// Validate checks that ids are unique, fixed entries are priced and
// exactly one custom entry exists.
func (c Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c))
	custom := 0
	for _, p := range c {
		if _, ok := seen[p.ID]; ok || p.ID == "" {
			return fmt.Errorf("%w: bad id %q", ErrInvalidCatalog, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.IsCustom {
			custom++
			continue
		}
		if p.Coins <= 0 || p.Price.Sign() <= 0 {
			return fmt.Errorf("%w: package %q has no coins or price", ErrInvalidCatalog, p.ID)
		}
	}
	if custom != 1 {
		return fmt.Errorf("%w: %d custom entries", ErrInvalidCatalog, custom)
	}
	return nil
}
