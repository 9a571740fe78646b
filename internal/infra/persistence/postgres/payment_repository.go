// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// CreatePayment persists a new payment record. The unique bid_id constraint
// enforces exactly one payment per bid.
func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPaymentStateConflict.WrapMessage("payment already exists for this bid")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBidNotFound.WrapMessage("invalid bid reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindPaymentByBid retrieves the payment for a bid.
func (repo *paymentRepository) FindPaymentByBid(ctx context.Context, bidID uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("bid_id = ?", bidID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by bid")
	}

	return toPaymentDomain(&paymentM), nil
}

// UpdatePaymentStatus moves a payment from an expected status to a new one in
// a single conditional update. The WHERE clause serializes racing attempts.
func (repo *paymentRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, from, to entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentStateConflict
	}

	return nil
}

// UpdatePayment modifies an existing payment record.
func (repo *paymentRepository) UpdatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Save(paymentM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update payment")
	}

	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		BidID:         data.BidID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		Amount:        data.Amount,
		Method:        entity.PaymentMethod(data.Method),
		Status:        entity.PaymentStatus(data.Status),
		GatewayRef:    data.GatewayRef,
		FailureReason: data.FailureReason,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		CompletedAt:   data.CompletedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		BidID:         data.BidID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		Amount:        data.Amount,
		Method:        string(data.Method),
		Status:        data.Status.String(),
		GatewayRef:    data.GatewayRef,
		FailureReason: data.FailureReason,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		CompletedAt:   data.CompletedAt,
	}
}
