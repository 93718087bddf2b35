// Package dto carries the catalog item representations returned to
// callers, with JSON keys matching the legacy record layout.
package dto

import "extinsia/internal/domain/catalog"

type ProductDTO struct {
	Code  string `json:"codigo"`
	Name  string `json:"nombre"`
	Price int64  `json:"precio"`
}

func FromProduct(p *catalog.Product) *ProductDTO {
	return &ProductDTO{
		Code:  p.Code(),
		Name:  p.Name(),
		Price: p.Price(),
	}
}

func FromProducts(products []*catalog.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, len(products))
	for i, p := range products {
		dtos[i] = FromProduct(p)
	}
	return dtos
}

type ExtinguisherDTO struct {
	Code      string  `json:"codigo"`
	Name      string  `json:"nombre"`
	Price     int64   `json:"precio"`
	AgentType string  `json:"tipo"`
	Capacity  float64 `json:"capacidad"`
}

func FromExtinguisher(e *catalog.Extinguisher) *ExtinguisherDTO {
	return &ExtinguisherDTO{
		Code:      e.Code(),
		Name:      e.Name(),
		Price:     e.Price(),
		AgentType: e.AgentType(),
		Capacity:  e.Capacity(),
	}
}

func FromExtinguishers(extinguishers []*catalog.Extinguisher) []*ExtinguisherDTO {
	dtos := make([]*ExtinguisherDTO, len(extinguishers))
	for i, e := range extinguishers {
		dtos[i] = FromExtinguisher(e)
	}
	return dtos
}
