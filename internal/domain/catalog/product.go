// Package catalog holds the two sellable-item catalogs: generic products
// and extinguishers. Both are flat records keyed by a generated code
// (PRO-n / EXT-n) and expose a common read-only Lookup used when pricing
// ticket line items.
package catalog

import (
	"fmt"

	"extinsia/internal/shared/textutil"
)

// Product is a generic catalog item sold alongside extinguishers
// (signage, brackets, refill supplies and so on).
type Product struct {
	id    uint
	code  string
	name  string
	price int64
}

func NewProduct(name string, price int64) (*Product, error) {
	name = textutil.Title(name)
	if err := validateItemName(name, 2); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("price must be zero or greater")
	}

	return &Product{
		name:  name,
		price: price,
	}, nil
}

func ReconstructProduct(id uint, code, name string, price int64) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("product code is required")
	}

	return &Product{
		id:    id,
		code:  code,
		name:  name,
		price: price,
	}, nil
}

func (p *Product) ID() uint     { return p.id }
func (p *Product) Code() string { return p.code }
func (p *Product) Name() string { return p.name }
func (p *Product) Price() int64 { return p.price }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Product) SetCode(code string) error {
	if len(p.code) > 0 {
		return fmt.Errorf("product code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("product code cannot be empty")
	}
	p.code = code
	return nil
}

// Rename changes name and price in place. Later catalog edits never reach
// already-created tickets: those carry their own snapshot.
func (p *Product) Rename(name string, price int64) error {
	name = textutil.Title(name)
	if err := validateItemName(name, 2); err != nil {
		return err
	}
	if price < 0 {
		return fmt.Errorf("price must be zero or greater")
	}

	p.name = name
	p.price = price
	return nil
}

func validateItemName(name string, minLen int) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len([]rune(name)) < minLen {
		return fmt.Errorf("name must have at least %d characters", minLen)
	}
	return nil
}
