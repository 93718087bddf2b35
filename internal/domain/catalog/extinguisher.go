package catalog

import (
	"fmt"

	"extinsia/internal/shared/textutil"
)

// Extinguisher is a catalog item with its own code namespace (EXT-n).
// It carries the extinguishing agent type and the capacity in kilograms
// on top of the name/price every sellable item has.
type Extinguisher struct {
	id        uint
	code      string
	name      string
	price     int64
	agentType string
	capacity  float64
}

func NewExtinguisher(name string, price int64, agentType string, capacity float64) (*Extinguisher, error) {
	name = textutil.Title(name)
	if err := validateItemName(name, 3); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("price must be zero or greater")
	}
	agentType = textutil.Title(agentType)
	if len(agentType) == 0 {
		return nil, fmt.Errorf("agent type is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("capacity must be greater than zero")
	}

	return &Extinguisher{
		name:      name,
		price:     price,
		agentType: agentType,
		capacity:  capacity,
	}, nil
}

func ReconstructExtinguisher(id uint, code, name string, price int64, agentType string, capacity float64) (*Extinguisher, error) {
	if id == 0 {
		return nil, fmt.Errorf("extinguisher ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("extinguisher code is required")
	}

	return &Extinguisher{
		id:        id,
		code:      code,
		name:      name,
		price:     price,
		agentType: agentType,
		capacity:  capacity,
	}, nil
}

func (e *Extinguisher) ID() uint          { return e.id }
func (e *Extinguisher) Code() string      { return e.code }
func (e *Extinguisher) Name() string      { return e.name }
func (e *Extinguisher) Price() int64      { return e.price }
func (e *Extinguisher) AgentType() string { return e.agentType }
func (e *Extinguisher) Capacity() float64 { return e.capacity }

func (e *Extinguisher) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("extinguisher ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("extinguisher ID cannot be zero")
	}
	e.id = id
	return nil
}

func (e *Extinguisher) SetCode(code string) error {
	if len(e.code) > 0 {
		return fmt.Errorf("extinguisher code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("extinguisher code cannot be empty")
	}
	e.code = code
	return nil
}

func (e *Extinguisher) Rename(name string, price int64, agentType string, capacity float64) error {
	name = textutil.Title(name)
	if err := validateItemName(name, 3); err != nil {
		return err
	}
	if price < 0 {
		return fmt.Errorf("price must be zero or greater")
	}
	agentType = textutil.Title(agentType)
	if len(agentType) == 0 {
		return fmt.Errorf("agent type is required")
	}
	if capacity <= 0 {
		return fmt.Errorf("capacity must be greater than zero")
	}

	e.name = name
	e.price = price
	e.agentType = agentType
	e.capacity = capacity
	return nil
}
