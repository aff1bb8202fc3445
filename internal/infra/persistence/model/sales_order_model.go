package model

import (
	"time"

	"github.com/google/uuid"
)

// SalesOrderModel mirrors the 'sales_orders' table. The three foreign keys are
// indexed for the per-seller and per-customer listings; the active-order-per-
// vehicle rule is enforced in the coordinator, not the schema.
type SalesOrderModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CreationDate   time.Time `gorm:"not null"`
	ConclusionDate *time.Time
	TotalValue     float64        `gorm:"not null"`
	Status         string         `gorm:"type:varchar(20);not null;default:'OPEN'"`
	SellerID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	CustomerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	VehicleID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Seller         *SellerModel   `gorm:"foreignKey:SellerID"`
	Customer       *CustomerModel `gorm:"foreignKey:CustomerID"`
	Vehicle        *VehicleModel  `gorm:"foreignKey:VehicleID"`
	Payment        *PaymentModel  `gorm:"foreignKey:SalesOrderID"`
}

// TableName explicitly sets the table name for GORM.
func (SalesOrderModel) TableName() string {
	return "sales_orders"
}

// PaymentModel mirrors the 'payments' table. The unique index on
// sales_order_id is the storage-level guarantee of one payment per order.
type PaymentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	PaymentDate  time.Time `gorm:"not null"`
	Price        float64   `gorm:"not null"`
	Method       string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	SalesOrderID uuid.UUID `gorm:"type:uuid;unique;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
