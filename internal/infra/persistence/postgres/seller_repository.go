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

// sellerRepository implements the domain.SellerRepository interface using GORM.
type sellerRepository struct {
	db *gorm.DB
}

// NewSellerRepository is the constructor for sellerRepository.
func NewSellerRepository(db *gorm.DB) repository.SellerRepository {
	return &sellerRepository{db: db}
}

// FindByID retrieves a seller with its identity record joined.
func (repo *sellerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seller, error) {
	var sellerM model.SellerModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		First(&sellerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller by id")
	}

	return toSellerDomain(&sellerM), nil
}

// ExistsByRegistrationNumber reports whether a registration number is taken.
func (repo *sellerRepository) ExistsByRegistrationNumber(ctx context.Context, number int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.SellerModel{}).
		Where("registration_number = ?", number).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check registration number existence")
	}

	return count > 0, nil
}

// Create persists a new seller profile. A lost race on the registration
// number's unique index surfaces as repository.ErrRegistrationNumberTaken so
// the registrar can retry with a fresh draw.
func (repo *sellerRepository) Create(ctx context.Context, seller *entity.Seller) error {
	sellerM := fromSellerDomain(seller)
	sellerM.User = nil

	if err := repo.db.WithContext(ctx).Create(sellerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err, repository.ErrRegistrationNumberTaken)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create seller")
	}

	seller.ID = sellerM.ID
	seller.CreatedAt = sellerM.CreatedAt
	seller.UpdatedAt = sellerM.UpdatedAt

	return nil
}

// ListActive returns sellers whose identity record has not been excluded.
func (repo *sellerRepository) ListActive(ctx context.Context) ([]*entity.Seller, error) {
	var sellerMs []*model.SellerModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = sellers.user_id").
		Where("users.status = ?", string(entity.UserStatusActive)).
		Order("sellers.created_at").
		Find(&sellerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active sellers")
	}

	sellers := make([]*entity.Seller, 0, len(sellerMs))
	for _, sellerM := range sellerMs {
		sellers = append(sellers, toSellerDomain(sellerM))
	}

	return sellers, nil
}

// toSellerDomain converts a GORM SellerModel to a domain Seller entity.
func toSellerDomain(data *model.SellerModel) *entity.Seller {
	if data == nil {
		return nil
	}

	return &entity.Seller{
		ID:                 data.ID,
		UserID:             data.UserID,
		User:               toUserDomain(data.User),
		RegistrationNumber: data.RegistrationNumber,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromSellerDomain converts a domain Seller entity to a GORM SellerModel.
func fromSellerDomain(data *entity.Seller) *model.SellerModel {
	if data == nil {
		return nil
	}

	return &model.SellerModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		User:               fromUserDomain(data.User),
		RegistrationNumber: data.RegistrationNumber,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
