// Package models holds the gorm persistence models. Table and column
// names keep the Spanish identifiers of the legacy data set so existing
// databases stay readable without a rename migration.
package models

import (
	"time"

	"gorm.io/datatypes"
)

type CustomerModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"column:codigo;uniqueIndex;size:20;not null"`
	CompanyName  string `gorm:"column:nombre_empresa;size:120;not null"`
	ManagerName  string `gorm:"column:nombre_encargado;size:120;not null"`
	Address      string `gorm:"column:direccion;size:200;not null"`
	Phone        string `gorm:"column:celular;size:10;not null"`
	RenewalMonth string `gorm:"column:mes_vencimiento;size:12;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CustomerModel) TableName() string {
	return "clientes"
}

type ProductModel struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"column:codigo;uniqueIndex;size:20;not null"`
	Name      string `gorm:"column:nombre;size:120;not null"`
	Price     int64  `gorm:"column:precio;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductModel) TableName() string {
	return "productos"
}

type ExtinguisherModel struct {
	ID        uint    `gorm:"primaryKey"`
	Code      string  `gorm:"column:codigo;uniqueIndex;size:20;not null"`
	Name      string  `gorm:"column:nombre;size:120;not null"`
	Price     int64   `gorm:"column:precio;not null"`
	AgentType string  `gorm:"column:tipo;size:60;not null"`
	Capacity  float64 `gorm:"column:capacidad;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ExtinguisherModel) TableName() string {
	return "extintores"
}

// TicketModel stores the resolved line items as a JSON document in the
// productos column, the same shape the legacy records used.
type TicketModel struct {
	ID           uint           `gorm:"primaryKey"`
	Code         string         `gorm:"column:codigo_ticket;uniqueIndex;size:20;not null"`
	Service      string         `gorm:"column:servicio;size:120;not null"`
	CustomerCode string         `gorm:"column:codigo_cliente;size:20;not null;index"`
	CustomerName string         `gorm:"column:cliente;size:120;not null"`
	Items        datatypes.JSON `gorm:"column:productos;not null"`
	Total        int64          `gorm:"column:total;not null"`
	CreatedAt    time.Time      `gorm:"column:fecha;not null"`
	UpdatedAt    time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Code         string `gorm:"column:codigo;uniqueIndex;size:20;not null"`
	Name         string `gorm:"column:nombre;size:120;not null"`
	Email        string `gorm:"column:email;uniqueIndex;size:120;not null"`
	PasswordHash string `gorm:"column:contrasena;size:100;not null"`
	Role         string `gorm:"column:rol;size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string {
	return "usuarios"
}
