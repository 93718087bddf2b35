// Package dto carries the customer representations returned to callers,
// with JSON keys matching the legacy record layout.
package dto

import "extinsia/internal/domain/customer"

type CustomerDTO struct {
	Code         string `json:"codigo"`
	CompanyName  string `json:"nombre_empresa"`
	ManagerName  string `json:"nombre_encargado"`
	Address      string `json:"direccion"`
	Phone        string `json:"celular"`
	RenewalMonth string `json:"mes_vencimiento"`
}

func FromCustomer(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		Code:         c.Code(),
		CompanyName:  c.CompanyName(),
		ManagerName:  c.ManagerName(),
		Address:      c.Address(),
		Phone:        c.Phone(),
		RenewalMonth: c.RenewalMonth(),
	}
}

func FromCustomers(customers []*customer.Customer) []*CustomerDTO {
	dtos := make([]*CustomerDTO, len(customers))
	for i, c := range customers {
		dtos[i] = FromCustomer(c)
	}
	return dtos
}
