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

// bidRepository implements the repository.BidRepository interface.
type bidRepository struct {
	db *gorm.DB
}

// NewBidRepository is the constructor for bidRepository.
func NewBidRepository(db *gorm.DB) repository.BidRepository {
	return &bidRepository{
		db: db,
	}
}

// CreateBid persists a new bid.
func (repo *bidRepository) CreateBid(ctx context.Context, bid *entity.Bid) error {
	bidM := fromBidDomain(bid)

	if err := repo.db.WithContext(ctx).Create(bidM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("invalid product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required bid information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bid")
	}

	bid.ID = bidM.ID
	bid.CreatedAt = bidM.CreatedAt
	bid.UpdatedAt = bidM.UpdatedAt

	return nil
}

// FindBidByID retrieves a bid by its unique ID.
func (repo *bidRepository) FindBidByID(ctx context.Context, id uuid.UUID) (*entity.Bid, error) {
	var bidM model.BidModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bidM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBidNotFound
		}

		return nil, errors.Wrap(err, "failed to find bid by id")
	}

	return toBidDomain(&bidM), nil
}

// FindBidsByProduct retrieves all bids on a product, newest first.
func (repo *bidRepository) FindBidsByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Bid, error) {
	var bidModels []*model.BidModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&bidModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bids by product")
	}

	return toBidDomainList(bidModels), nil
}

// FindBidsBySeller retrieves bids across a seller's products, restricted to
// the given statuses when any are supplied.
func (repo *bidRepository) FindBidsBySeller(ctx context.Context, sellerID uuid.UUID, statuses ...entity.BidStatus) ([]*entity.Bid, error) {
	query := repo.db.WithContext(ctx).Where("seller_id = ?", sellerID)
	query = applyBidStatusFilter(query, statuses)

	var bidModels []*model.BidModel
	if err := query.Order("created_at DESC").Find(&bidModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bids by seller")
	}

	return toBidDomainList(bidModels), nil
}

// FindBidsByBuyer retrieves a buyer's bids, restricted to the given statuses
// when any are supplied.
func (repo *bidRepository) FindBidsByBuyer(ctx context.Context, buyerID uuid.UUID, statuses ...entity.BidStatus) ([]*entity.Bid, error) {
	query := repo.db.WithContext(ctx).Where("buyer_id = ?", buyerID)
	query = applyBidStatusFilter(query, statuses)

	var bidModels []*model.BidModel
	if err := query.Order("created_at DESC").Find(&bidModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bids by buyer")
	}

	return toBidDomainList(bidModels), nil
}

// CountOpenBidsByBuyerAndProduct counts the buyer's non-terminal bids on a product.
func (repo *bidRepository) CountOpenBidsByBuyerAndProduct(ctx context.Context, buyerID, productID uuid.UUID) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BidModel{}).
		Where("buyer_id = ? AND product_id = ? AND status NOT IN ?",
			buyerID, productID,
			[]string{entity.BidStatusSold.String(), entity.BidStatusArchived.String()}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count open bids")
	}

	return int(count), nil
}

// UpdateBidStatus moves a bid from an expected status to a new one in a
// single conditional update. The WHERE clause serializes racing transitions.
func (repo *bidRepository) UpdateBidStatus(ctx context.Context, id uuid.UUID, from, to entity.BidStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BidModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update bid status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBidStatusConflict
	}

	return nil
}

// UpdateBid modifies an existing bid record.
func (repo *bidRepository) UpdateBid(ctx context.Context, bid *entity.Bid) error {
	bidM := fromBidDomain(bid)

	if err := repo.db.WithContext(ctx).Save(bidM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update bid")
	}

	bid.UpdatedAt = bidM.UpdatedAt

	return nil
}

// applyBidStatusFilter restricts the query to the given statuses, if any.
func applyBidStatusFilter(query *gorm.DB, statuses []entity.BidStatus) *gorm.DB {
	if len(statuses) == 0 {
		return query
	}

	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	return query.Where("status IN ?", values)
}

// --- Mapper Functions ---

// toBidDomain converts a GORM BidModel to a domain Bid entity.
func toBidDomain(data *model.BidModel) *entity.Bid {
	if data == nil {
		return nil
	}

	return &entity.Bid{
		ID:            data.ID,
		ProductID:     data.ProductID,
		ProductName:   data.ProductName,
		ProductImage:  data.ProductImage,
		SellerID:      data.SellerID,
		BuyerID:       data.BuyerID,
		BuyerName:     data.BuyerName,
		BuyerMobile:   data.BuyerMobile,
		Amount:        data.Amount,
		Message:       data.Message,
		Status:        entity.BidStatus(data.Status),
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		SoldAt:        data.SoldAt,
	}
}

// toBidDomainList converts a slice of GORM BidModels to domain entities.
func toBidDomainList(models []*model.BidModel) []*entity.Bid {
	bids := make([]*entity.Bid, 0, len(models))
	for _, bidM := range models {
		bids = append(bids, toBidDomain(bidM))
	}

	return bids
}

// fromBidDomain converts a domain Bid entity to a GORM BidModel.
func fromBidDomain(data *entity.Bid) *model.BidModel {
	if data == nil {
		return nil
	}

	return &model.BidModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		ProductName:   data.ProductName,
		ProductImage:  data.ProductImage,
		SellerID:      data.SellerID,
		BuyerID:       data.BuyerID,
		BuyerName:     data.BuyerName,
		BuyerMobile:   data.BuyerMobile,
		Amount:        data.Amount,
		Message:       data.Message,
		Status:        data.Status.String(),
		PaymentMethod: data.PaymentMethod,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		SoldAt:        data.SoldAt,
	}
}
