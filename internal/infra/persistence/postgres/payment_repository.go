package postgres

import (
	"context"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the domain.PaymentRepository interface using GORM.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// FindByOrderID retrieves the single payment recorded for an order.
func (repo *paymentRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel
	if err := repo.db.WithContext(ctx).First(&paymentM, "sales_order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order id")
	}

	return toPaymentDomain(&paymentM), nil
}

// ExistsByOrderID reports whether an order already has a payment recorded.
func (repo *paymentRepository) ExistsByOrderID(ctx context.Context, orderID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).
		Where("sales_order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check payment existence")
	}

	return count > 0, nil
}

// Create persists a payment. The unique index on sales_order_id is the last
// line of defense against two payments racing onto the same order.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt

	return nil
}

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:           data.ID,
		PaymentDate:  data.PaymentDate,
		Price:        data.Price,
		Method:       entity.PaymentMethod(data.Method),
		Status:       entity.PaymentStatus(data.Status),
		SalesOrderID: data.SalesOrderID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:           data.ID,
		PaymentDate:  data.PaymentDate,
		Price:        data.Price,
		Method:       string(data.Method),
		Status:       string(data.Status),
		SalesOrderID: data.SalesOrderID,
		CreatedAt:    data.CreatedAt,
	}
}
