// Package customer holds the client companies serviced by the business.
// A customer is referenced by tickets through its generated CLI-n code;
// the data a ticket needs is copied at creation time, never joined back.
package customer

import (
	"fmt"
	"regexp"

	"extinsia/internal/shared/textutil"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// validMonths are the Spanish month names accepted for the service
// renewal month, as stored on disk by the legacy data set.
var validMonths = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

type Customer struct {
	id           uint
	code         string
	companyName  string
	managerName  string
	address      string
	phone        string
	renewalMonth string
}

func NewCustomer(companyName, managerName, address, phone, renewalMonth string) (*Customer, error) {
	c := &Customer{}
	if err := c.apply(companyName, managerName, address, phone, renewalMonth); err != nil {
		return nil, err
	}
	return c, nil
}

func ReconstructCustomer(id uint, code, companyName, managerName, address, phone, renewalMonth string) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("customer code is required")
	}

	return &Customer{
		id:           id,
		code:         code,
		companyName:  companyName,
		managerName:  managerName,
		address:      address,
		phone:        phone,
		renewalMonth: renewalMonth,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Code() string         { return c.code }
func (c *Customer) CompanyName() string  { return c.companyName }
func (c *Customer) ManagerName() string  { return c.managerName }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) RenewalMonth() string { return c.renewalMonth }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Customer) SetCode(code string) error {
	if len(c.code) > 0 {
		return fmt.Errorf("customer code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("customer code cannot be empty")
	}
	c.code = code
	return nil
}

// UpdateDetails replaces every editable field. Partial updates (keep the
// prior value when a field is omitted) are resolved by the caller before
// this is invoked.
func (c *Customer) UpdateDetails(companyName, managerName, address, phone, renewalMonth string) error {
	return c.apply(companyName, managerName, address, phone, renewalMonth)
}

func (c *Customer) apply(companyName, managerName, address, phone, renewalMonth string) error {
	companyName = textutil.Title(companyName)
	if len(companyName) == 0 {
		return fmt.Errorf("company name is required")
	}
	if len([]rune(companyName)) < 2 {
		return fmt.Errorf("company name must have at least 2 characters")
	}

	managerName = textutil.Title(managerName)
	if len(managerName) == 0 {
		return fmt.Errorf("manager name is required")
	}

	address = textutil.Clean(address)
	if len(address) == 0 {
		return fmt.Errorf("address is required")
	}

	phone = textutil.Clean(phone)
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("phone must have 10 digits")
	}

	renewalMonth = textutil.Title(renewalMonth)
	if !IsValidMonth(renewalMonth) {
		return fmt.Errorf("invalid renewal month %q", renewalMonth)
	}

	c.companyName = companyName
	c.managerName = managerName
	c.address = address
	c.phone = phone
	c.renewalMonth = renewalMonth
	return nil
}

// IsValidMonth reports whether the given name is one of the accepted
// Spanish month names.
func IsValidMonth(month string) bool {
	for _, m := range validMonths {
		if m == month {
			return true
		}
	}
	return false
}

// Months returns the accepted renewal month names in calendar order.
func Months() []string {
	months := make([]string, len(validMonths))
	copy(months, validMonths)
	return months
}

// MonthOf maps a calendar month number (1-12) to its Spanish name.
func MonthOf(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return validMonths[month-1]
}
