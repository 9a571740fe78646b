// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"verdant/config"
	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/constants"
	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bidService implements the BidUsecase interface.
type bidService struct {
	txManager             repository.TransactionManager
	bidRepo               repository.BidRepository
	productRepo           repository.ProductRepository
	userRepo              repository.UserRepository
	chatRepo              repository.ChatRepository
	publisher             service.EventPublisher
	maxOpenBidsPerProduct int
	paymentLinkBaseURL    string
	logger                *slog.Logger
}

// BidServiceParams holds dependencies for BidService, injected by Fx.
type BidServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BidRepo     repository.BidRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	ChatRepo    repository.ChatRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewBidService is the constructor for bidService.
func NewBidService(params BidServiceParams) usecase.BidUsecase {
	maxOpenBids := 0
	linkBaseURL := ""
	if params.Config != nil {
		if params.Config.Market != nil {
			maxOpenBids = params.Config.Market.MaxOpenBidsPerProduct
		}
		if params.Config.Payment != nil {
			linkBaseURL = params.Config.Payment.LinkBaseURL
		}
	}

	return &bidService{
		txManager:             params.TxManager,
		bidRepo:               params.BidRepo,
		productRepo:           params.ProductRepo,
		userRepo:              params.UserRepo,
		chatRepo:              params.ChatRepo,
		publisher:             params.Publisher,
		maxOpenBidsPerProduct: maxOpenBids,
		paymentLinkBaseURL:    linkBaseURL,
		logger:                params.Logger,
	}
}

func (srv *bidService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PlaceBid creates a pending bid on an unsold product.
func (srv *bidService) PlaceBid(ctx context.Context, input *usecase.PlaceBidInput) (*entity.Bid, error) {
	srv.log(ctx).Info("Placing bid", slog.Any("productID", input.ProductID), slog.Any("buyerID", input.BuyerID))

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "bid target not found")
		}

		return nil, errors.Wrap(err, "failed to find product for bid")
	}

	if product.Sold {
		return nil, errors.Wrap(domainerrors.ErrProductAlreadySold, "cannot bid on a sold product")
	}

	if product.SellerID == input.BuyerID {
		return nil, errors.Wrap(domainerrors.ErrBidOnOwnProduct, "seller cannot bid on own product")
	}

	// Amount equal to the asking price is accepted.
	if input.Amount < product.Price {
		return nil, errors.Wrap(domainerrors.ErrBidTooLow, "amount below asking price")
	}

	if srv.maxOpenBidsPerProduct > 0 {
		open, err := srv.bidRepo.CountOpenBidsByBuyerAndProduct(ctx, input.BuyerID, input.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count open bids")
		}
		if open >= srv.maxOpenBidsPerProduct {
			return nil, errors.Wrap(domainerrors.ErrBidLimitExceeded, "open bid limit reached for this product")
		}
	}

	buyer, err := srv.userRepo.FindByID(ctx, input.BuyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load buyer for bid")
	}

	bid := &entity.Bid{
		ProductID:   product.ID,
		ProductName: product.Name,
		SellerID:    product.SellerID,
		BuyerID:     buyer.ID,
		BuyerName:   buyer.Name,
		Amount:      input.Amount,
		Message:     input.Message,
		Status:      entity.BidStatusPending,
	}
	if len(product.ImageURLs) > 0 {
		bid.ProductImage = product.ImageURLs[0]
	}
	if buyer.BuyerProfile != nil {
		bid.BuyerMobile = buyer.BuyerProfile.Mobile
	}

	if err := srv.bidRepo.CreateBid(ctx, bid); err != nil {
		srv.log(ctx).Error("Failed to create bid", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create bid")
	}

	srv.publishEvent(ctx, constants.EventBidPlaced, bid, bid.SellerID)

	return bid, nil
}

// ListProductBids returns all bids on a product to its seller.
func (srv *bidService) ListProductBids(ctx context.Context, productID, sellerID uuid.UUID) ([]*entity.Bid, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if !product.OwnedBy(sellerID) {
		return nil, errors.Wrap(domainerrors.ErrProductOwnershipViolation, "product not owned by caller")
	}

	bids, err := srv.bidRepo.FindBidsByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product bids")
	}

	return bids, nil
}

// ListSellerBids returns a seller's actionable bids. Sold and archived bids
// are filtered out in the query, not on the client.
func (srv *bidService) ListSellerBids(ctx context.Context, sellerID uuid.UUID) ([]*entity.Bid, error) {
	bids, err := srv.bidRepo.FindBidsBySeller(ctx, sellerID,
		entity.BidStatusPending, entity.BidStatusAccepted, entity.BidStatusAwaitingPayment)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller bids")
	}

	return bids, nil
}

// ListBuyerBids returns a buyer's history, all statuses except archived.
func (srv *bidService) ListBuyerBids(ctx context.Context, buyerID uuid.UUID) ([]*entity.Bid, error) {
	bids, err := srv.bidRepo.FindBidsByBuyer(ctx, buyerID,
		entity.BidStatusPending, entity.BidStatusAccepted, entity.BidStatusAwaitingPayment, entity.BidStatusSold)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer bids")
	}

	return bids, nil
}

// AcceptBid marks a pending bid accepted and opens the chat thread for it.
// Accepting an already accepted bid returns the existing thread.
func (srv *bidService) AcceptBid(ctx context.Context, bidID, sellerID uuid.UUID) (*usecase.AcceptBidOutput, error) {
	srv.log(ctx).Info("Accepting bid", slog.Any("bidID", bidID), slog.Any("sellerID", sellerID))

	var output usecase.AcceptBidOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bidRepo := repoFactory.BidRepo()
		chatRepo := repoFactory.ChatRepo()

		bid, err := srv.loadSellerBid(ctx, bidRepo, bidID, sellerID)
		if err != nil {
			return err
		}

		switch bid.Status {
		case entity.BidStatusPending:
			if err := bidRepo.UpdateBidStatus(ctx, bid.ID, entity.BidStatusPending, entity.BidStatusAccepted); err != nil {
				return errors.Wrap(err, "failed to mark bid accepted")
			}
			bid.Status = entity.BidStatusAccepted
		case entity.BidStatusAccepted:
			// Idempotent: fall through to return the existing thread.
		default:
			return errors.Wrap(domainerrors.ErrBidStatusConflict, "bid cannot be accepted in its current state")
		}

		thread, err := srv.findOrCreateThread(ctx, chatRepo, bid)
		if err != nil {
			return err
		}

		output.Bid = bid
		output.Thread = thread

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute accept bid transaction", slog.Any("bidID", bidID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute accept bid transaction")
	}

	return &output, nil
}

// SettleBid moves a bid to awaiting_payment, creates the payment record and
// posts the payment request into the chat in one transaction.
func (srv *bidService) SettleBid(ctx context.Context, bidID, sellerID uuid.UUID) (*usecase.SettleBidOutput, error) {
	srv.log(ctx).Info("Settling bid", slog.Any("bidID", bidID), slog.Any("sellerID", sellerID))

	var output usecase.SettleBidOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bidRepo := repoFactory.BidRepo()
		chatRepo := repoFactory.ChatRepo()
		paymentRepo := repoFactory.PaymentRepo()

		bid, err := srv.loadSellerBid(ctx, bidRepo, bidID, sellerID)
		if err != nil {
			return err
		}

		if !bid.Status.CanTransitionTo(entity.BidStatusAwaitingPayment) {
			return errors.Wrap(domainerrors.ErrBidStatusConflict, "bid cannot be settled in its current state")
		}

		if err := bidRepo.UpdateBidStatus(ctx, bid.ID, bid.Status, entity.BidStatusAwaitingPayment); err != nil {
			return errors.Wrap(err, "failed to mark bid awaiting payment")
		}
		bid.Status = entity.BidStatusAwaitingPayment

		payment := &entity.Payment{
			BidID:    bid.ID,
			BuyerID:  bid.BuyerID,
			SellerID: bid.SellerID,
			Amount:   bid.Amount,
			Status:   entity.PaymentStatusPending,
		}
		if err := paymentRepo.CreatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment record")
		}

		thread, err := srv.findOrCreateThread(ctx, chatRepo, bid)
		if err != nil {
			return err
		}

		message := srv.buildPaymentRequestMessage(thread, bid)
		if err := chatRepo.CreateMessage(ctx, message); err != nil {
			return errors.Wrap(err, "failed to post payment request message")
		}

		output.Bid = bid
		output.Payment = payment
		output.Message = message

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute settle bid transaction", slog.Any("bidID", bidID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute settle bid transaction")
	}

	srv.publishEvent(ctx, constants.EventBidAccepted, output.Bid, output.Bid.BuyerID)

	return &output, nil
}

// ArchiveBid hides a bid from the buyer's history.
func (srv *bidService) ArchiveBid(ctx context.Context, bidID, buyerID uuid.UUID) error {
	bid, err := srv.bidRepo.FindBidByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return errors.Wrap(domainerrors.ErrBidNotFound, "bid lookup failed")
		}

		return errors.Wrap(err, "failed to find bid by id")
	}

	if bid.BuyerID != buyerID {
		return errors.Wrap(domainerrors.ErrForbidden, "bid does not belong to caller")
	}

	if !bid.Status.CanTransitionTo(entity.BidStatusArchived) {
		return errors.Wrap(domainerrors.ErrBidStatusConflict, "bid cannot be archived in its current state")
	}

	if err := srv.bidRepo.UpdateBidStatus(ctx, bid.ID, bid.Status, entity.BidStatusArchived); err != nil {
		return errors.Wrap(err, "failed to archive bid")
	}

	srv.log(ctx).Info("Archived bid", slog.Any("bidID", bidID), slog.Any("buyerID", buyerID))

	return nil
}

func (srv *bidService) loadSellerBid(ctx context.Context, bidRepo repository.BidRepository, bidID, sellerID uuid.UUID) (*entity.Bid, error) {
	bid, err := bidRepo.FindBidByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBidNotFound, "bid lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find bid by id")
	}

	if bid.SellerID != sellerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "bid does not belong to caller's products")
	}

	return bid, nil
}

func (srv *bidService) findOrCreateThread(ctx context.Context, chatRepo repository.ChatRepository, bid *entity.Bid) (*entity.ChatThread, error) {
	thread, err := chatRepo.FindThreadByBid(ctx, bid.ID)
	if err == nil {
		return thread, nil
	}
	if !errors.Is(err, repository.ErrChatThreadNotFound) {
		return nil, errors.Wrap(err, "failed to find chat thread for bid")
	}

	thread = &entity.ChatThread{
		BidID:     bid.ID,
		ProductID: bid.ProductID,
		BuyerID:   bid.BuyerID,
		SellerID:  bid.SellerID,
	}
	if err := chatRepo.CreateThread(ctx, thread); err != nil {
		return nil, errors.Wrap(err, "failed to create chat thread")
	}

	return thread, nil
}

func (srv *bidService) buildPaymentRequestMessage(thread *entity.ChatThread, bid *entity.Bid) *entity.ChatMessage {
	url := fmt.Sprintf("%s/payments/%s", srv.paymentLinkBaseURL, bid.ID)

	return &entity.ChatMessage{
		ThreadID: thread.ID,
		SenderID: bid.SellerID,
		Kind:     entity.MessageKindAuto,
		Body:     fmt.Sprintf("Settlement accepted for %s. [Pay ₹%.2f](%s)", bid.ProductName, bid.Amount, url),
		Action: &entity.MessageAction{
			Type:   entity.ActionPaymentRequest,
			BidID:  bid.ID,
			Label:  "Pay now",
			URL:    url,
			Amount: bid.Amount,
		},
	}
}

func (srv *bidService) publishEvent(ctx context.Context, eventType string, bid *entity.Bid, recipientID uuid.UUID) {
	event := &entity.MarketEvent{
		ID:          uuid.New(),
		Type:        eventType,
		BidID:       bid.ID,
		ProductID:   bid.ProductID,
		ProductName: bid.ProductName,
		ActorID:     bid.BuyerID,
		RecipientID: recipientID,
		Amount:      bid.Amount,
		OccurredAt:  time.Now(),
	}
	if eventType == constants.EventBidAccepted {
		event.ActorID = bid.SellerID
	}

	// Push delivery is best effort; the marketplace state is already committed.
	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish market event", slog.String("type", eventType), slog.Any("bidID", bid.ID), slog.Any("error", err))
	}
}
