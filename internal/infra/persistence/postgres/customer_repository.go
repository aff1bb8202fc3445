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

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a customer with its identity record joined.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		First(&customerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsByCPF reports whether any customer already uses the given cpf.
func (repo *customerRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("cpf = ?", cpf).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check cpf existence")
	}

	return count > 0, nil
}

// ExistsByPhone reports whether any customer already uses the given phone.
func (repo *customerRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).
		Where("phone = ?", phone).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check phone existence")
	}

	return count > 0, nil
}

// Create persists a new customer profile. The identity row is created
// separately by the user repository within the same transaction.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.User = nil

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err, domainerrors.ErrCPFAlreadyExists)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// ListActive returns customers whose identity record has not been excluded.
func (repo *customerRepository) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	var customerMs []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = customers.user_id").
		Where("users.status = ?", string(entity.UserStatusActive)).
		Order("customers.created_at").
		Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for _, customerM := range customerMs {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		UserID:    data.UserID,
		User:      toUserDomain(data.User),
		CPF:       data.CPF,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		UserID:    data.UserID,
		User:      fromUserDomain(data.User),
		CPF:       data.CPF,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
