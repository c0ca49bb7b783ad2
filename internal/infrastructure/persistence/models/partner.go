package models

import (
	"github.com/umitgh/procurement-system/internal/domain/partner"
)

// SupplierModel is the persistence model for the Supplier domain entity.
type SupplierModel struct {
	AggregateModel
	Name          string `gorm:"type:varchar(200);not null;index"`
	NameEn        string `gorm:"column:name_en;type:varchar(200)"`
	Email         string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone         string `gorm:"type:varchar(50)"`
	ContactPerson string `gorm:"type:varchar(100)"`
	TaxID         string `gorm:"column:tax_id;type:varchar(50)"`
	Address       string `gorm:"type:text"`
	Remarks       string `gorm:"type:text"`
	Active        bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		NameEn:            m.NameEn,
		Email:             m.Email,
		Phone:             m.Phone,
		ContactPerson:     m.ContactPerson,
		TaxID:             m.TaxID,
		Address:           m.Address,
		Remarks:           m.Remarks,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Supplier entity.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.NameEn = s.NameEn
	m.Email = s.Email
	m.Phone = s.Phone
	m.ContactPerson = s.ContactPerson
	m.TaxID = s.TaxID
	m.Address = s.Address
	m.Remarks = s.Remarks
	m.Active = s.Active
}

// SupplierModelFromDomain creates a new persistence model from a domain Supplier entity.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}

// CompanyModel is the persistence model for the Company domain entity.
type CompanyModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(200);not null"`
	TaxID   string `gorm:"column:tax_id;type:varchar(50)"`
	Address string `gorm:"type:text"`
	Active  bool   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *partner.Company {
	return &partner.Company{
		BaseAggregateRoot: m.ToAggregateRoot(),
		Name:              m.Name,
		TaxID:             m.TaxID,
		Address:           m.Address,
		Active:            m.Active,
	}
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *partner.Company) *CompanyModel {
	m := &CompanyModel{
		Name:    c.Name,
		TaxID:   c.TaxID,
		Address: c.Address,
		Active:  c.Active,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
