package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table. Each row owns exactly one
// identity row; cpf and phone are stored as fixed-width digit strings so
// leading zeros survive round-trips.
type CustomerModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID  `gorm:"type:uuid;unique;not null"`
	User      *UserModel `gorm:"foreignKey:UserID"`
	CPF       string     `gorm:"column:cpf;type:varchar(11);unique;not null"`
	Phone     string     `gorm:"type:varchar(11);unique;not null"`
	Address   string     `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// SellerModel mirrors the 'sellers' table. The registration number carries a
// unique index; late collisions between concurrent creations surface as
// constraint violations and are retried by the registrar.
type SellerModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID             uuid.UUID  `gorm:"type:uuid;unique;not null"`
	User               *UserModel `gorm:"foreignKey:UserID"`
	RegistrationNumber int64      `gorm:"unique;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerModel) TableName() string {
	return "sellers"
}
