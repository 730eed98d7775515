package models

import "time"

// MinEmployees is the smallest employee count a company may declare.
const MinEmployees = 11

// Company is an employer profile owned by exactly one HR user.
type Company struct {
	ID                string `json:"_id"`
	CompanyName       string `json:"companyName"`
	Description       string `json:"description"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	NumberOfEmployees int    `json:"numberOfEmployees"`

	// CompanyEmail holds the AES-GCM ciphertext as stored, unless a read path
	// explicitly decrypts it.
	CompanyEmail string `json:"companyEmail"`

	// CompanyEmailHash is the keyed blind index of the plaintext email used
	// for the uniqueness check. Never serialized.
	CompanyEmailHash string `json:"-"`

	// CompanyHR is the ID of the owning HR user.
	CompanyHR string `json:"companyHR"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Company model.
func (c Company) TableName() string {
	return "companies"
}

// CreateCompanyRequest is the payload of POST /companies/createCompany.
type CreateCompanyRequest struct {
	CompanyName       string `json:"companyName" validate:"required"`
	Description       string `json:"description" validate:"required"`
	Industry          string `json:"industry" validate:"required"`
	Address           string `json:"address" validate:"required"`
	NumberOfEmployees int    `json:"numberOfEmployees" validate:"required,min=11"`
	CompanyEmail      string `json:"companyEmail" validate:"required,email"`
}

// CompanyUpdate carries the optional fields of PUT /companies/updateCompany.
type CompanyUpdate struct {
	CompanyName       *string `json:"companyName,omitempty" validate:"omitempty,min=1"`
	Description       *string `json:"description,omitempty" validate:"omitempty,min=1"`
	Industry          *string `json:"industry,omitempty" validate:"omitempty,min=1"`
	Address           *string `json:"address,omitempty" validate:"omitempty,min=1"`
	NumberOfEmployees *int    `json:"numberOfEmployees,omitempty" validate:"omitempty,min=11"`
	CompanyEmail      *string `json:"companyEmail,omitempty" validate:"omitempty,email"`

	// CompanyEmailHash is filled by the service when CompanyEmail is set.
	CompanyEmailHash *string `json:"-"`
}

// IsEmpty reports whether no field is set.
func (u CompanyUpdate) IsEmpty() bool {
	return u.CompanyName == nil && u.Description == nil && u.Industry == nil &&
		u.Address == nil && u.NumberOfEmployees == nil && u.CompanyEmail == nil
}

// CompanyIDParams holds the path parameters of company endpoints.
type CompanyIDParams struct {
	CompanyID string `json:"companyId" validate:"required,uuid"`
}

// CompanySearchQuery holds the query of GET /companies/searchCompanyByName.
type CompanySearchQuery struct {
	CompanyName string `json:"companyName" validate:"required"`
}
