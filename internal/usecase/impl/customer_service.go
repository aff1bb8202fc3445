package impl

import (
	"context"
	"log/slog"

	"drivefleet/internal/domain/entity"
	domainerrors "drivefleet/internal/domain/errors"
	"drivefleet/internal/domain/repository"
	"drivefleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	userUsecase  usecase.UserUsecase
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	customerRepo repository.CustomerRepository,
	userUsecase usecase.UserUsecase,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager:    txManager,
		customerRepo: customerRepo,
		userUsecase:  userUsecase,
		logger:       logger,
	}
}

// Create registers the identity and the customer record in one transaction.
// A failure after the identity step rolls the identity back with it.
func (srv *customerService) Create(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if !entity.IsElevenDigits(input.CPF) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("cpf must be exactly 11 digits"), "customer creation failed")
	}
	if !entity.IsElevenDigits(input.Phone) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("phone must be exactly 11 digits"), "customer creation failed")
	}

	var created *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		cpfTaken, txErr := customerRepo.ExistsByCPF(ctx, input.CPF)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to check cpf uniqueness")
		}
		if cpfTaken {
			return errors.Wrap(domainerrors.ErrCPFAlreadyExists, "customer creation failed")
		}

		phoneTaken, txErr := customerRepo.ExistsByPhone(ctx, input.Phone)
		if txErr != nil {
			return errors.Wrap(txErr, "failed to check phone uniqueness")
		}
		if phoneTaken {
			return errors.Wrap(domainerrors.ErrPhoneAlreadyExists, "customer creation failed")
		}

		user, txErr := srv.userUsecase.RegisterTx(ctx, repoFactory, &input.User)
		if txErr != nil {
			return txErr
		}

		customer := &entity.Customer{
			UserID:  user.ID,
			User:    user,
			CPF:     input.CPF,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if txErr := customerRepo.Create(ctx, customer); txErr != nil {
			return errors.Wrap(txErr, "failed to create customer record")
		}
		created = customer

		return nil
	})
	if err != nil {
		srv.logger.Warn("Customer creation failed", slog.String("email", input.User.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer creation transaction")
	}
	srv.logger.Info("Customer created", slog.Any("customerID", created.ID))

	return created, nil
}

// GetByID looks up a customer with its identity joined.
func (srv *customerService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return customer, nil
}

// ListActive returns customers whose identity is still active.
func (srv *customerService) ListActive(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active customers")
	}

	return customers, nil
}

// Delete excludes the customer's identity. The customer row and its orders
// are never physically removed; the orders keep their reference.
func (srv *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customer, txErr := repoFactory.CustomerRepo().FindByID(ctx, id)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrCustomerNotFound) {
				return errors.Wrap(domainerrors.ErrCustomerNotFound, "deletion failed")
			}

			return errors.Wrap(txErr, "failed to find customer for deletion")
		}

		return srv.userUsecase.ExcludeTx(ctx, repoFactory, customer.UserID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute customer deletion transaction")
	}
	srv.logger.Info("Customer excluded", slog.Any("customerID", id))

	return nil
}
