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

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	bidRepo     repository.BidRepository
	gateway     service.PaymentGateway
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	upiAddress  string
	payeeName   string
	logger      *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	BidRepo     repository.BidRepository
	Gateway     service.PaymentGateway
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	upiAddress := ""
	payeeName := ""
	if params.Config != nil {
		if params.Config.Payment != nil {
			upiAddress = params.Config.Payment.UPIAddress
		}
		payeeName = params.Config.Env.ServiceName
	}

	return &paymentService{
		txManager:   params.TxManager,
		paymentRepo: params.PaymentRepo,
		bidRepo:     params.BidRepo,
		gateway:     params.Gateway,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		upiAddress:  upiAddress,
		payeeName:   payeeName,
		logger:      params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPaymentByBid returns the payment summary for a bid the caller is party to.
func (srv *paymentService) GetPaymentByBid(ctx context.Context, bidID, userID uuid.UUID) (*usecase.PaymentSummary, error) {
	payment, bid, err := srv.loadPartyPayment(ctx, bidID, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.PaymentSummary{
		Payment:     payment,
		Bid:         bid,
		ProductName: bid.ProductName,
	}, nil
}

// GeneratePaymentQR renders the UPI QR code PNG for an open payment.
func (srv *paymentService) GeneratePaymentQR(ctx context.Context, bidID, userID uuid.UUID) ([]byte, error) {
	payment, bid, err := srv.loadPartyPayment(ctx, bidID, userID)
	if err != nil {
		return nil, err
	}

	if payment.Status == entity.PaymentStatusCompleted {
		return nil, errors.Wrap(domainerrors.ErrPaymentStateConflict, "payment already completed")
	}

	png, err := srv.qrService.GeneratePaymentQR(srv.upiAddress, srv.payeeName, payment.Amount, bid.ProductName)
	if err != nil {
		srv.log(ctx).Error("Failed to generate payment QR", slog.Any("bidID", bidID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// CompletePayment drives the payment state machine to completed and settles
// the sale. The processing hop is a conditional update, so concurrent
// completes on the same bid collapse to one winner.
func (srv *paymentService) CompletePayment(ctx context.Context, input *usecase.CompletePaymentInput) (*usecase.CompletePaymentOutput, error) {
	srv.log(ctx).Info("Completing payment", slog.Any("bidID", input.BidID), slog.String("method", string(input.Method)))

	if !input.Method.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment method")
	}

	payment, bid, err := srv.loadPartyPayment(ctx, input.BidID, input.BuyerID)
	if err != nil {
		return nil, err
	}

	if bid.BuyerID != input.BuyerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the buyer can complete the payment")
	}

	if !payment.Status.CanTransitionTo(entity.PaymentStatusProcessing) {
		return nil, errors.Wrap(domainerrors.ErrPaymentStateConflict, "payment cannot be completed in its current state")
	}

	if err := srv.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, payment.Status, entity.PaymentStatusProcessing); err != nil {
		if errors.Is(err, repository.ErrPaymentStateConflict) {
			return nil, errors.Wrap(domainerrors.ErrPaymentStateConflict, "payment already in progress")
		}

		return nil, errors.Wrap(err, "failed to mark payment processing")
	}
	payment.Status = entity.PaymentStatusProcessing

	// The charge runs outside any DB transaction; the gateway is slow.
	result, err := srv.gateway.Charge(ctx, service.ChargeRequest{
		PaymentID: payment.ID.String(),
		Amount:    payment.Amount,
		Method:    input.Method,
	})
	if err != nil {
		srv.failPayment(ctx, payment, err)

		return nil, errors.Wrap(domainerrors.ErrPaymentGatewayFailed, "gateway charge failed")
	}

	output, err := srv.settleCompletedCharge(ctx, payment, bid, input.Method, result.Reference)
	if err != nil {
		return nil, err
	}

	srv.publishCompletionEvent(ctx, output.Bid)

	return output, nil
}

func (srv *paymentService) settleCompletedCharge(
	ctx context.Context,
	payment *entity.Payment,
	bid *entity.Bid,
	method entity.PaymentMethod,
	gatewayRef string,
) (*usecase.CompletePaymentOutput, error) {
	var output usecase.CompletePaymentOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()
		bidRepo := repoFactory.BidRepo()
		productRepo := repoFactory.ProductRepo()
		chatRepo := repoFactory.ChatRepo()

		if err := paymentRepo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusProcessing, entity.PaymentStatusCompleted); err != nil {
			return errors.Wrap(err, "failed to mark payment completed")
		}

		now := time.Now()
		payment.Status = entity.PaymentStatusCompleted
		payment.Method = method
		payment.GatewayRef = gatewayRef
		payment.CompletedAt = &now
		if err := paymentRepo.UpdatePayment(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to record payment completion")
		}

		if err := bidRepo.UpdateBidStatus(ctx, bid.ID, entity.BidStatusAwaitingPayment, entity.BidStatusSold); err != nil {
			return errors.Wrap(err, "failed to mark bid sold")
		}
		bid.Status = entity.BidStatusSold
		bid.PaymentMethod = string(method)
		bid.SoldAt = &now
		if err := bidRepo.UpdateBid(ctx, bid); err != nil {
			return errors.Wrap(err, "failed to record bid sale")
		}

		// Conditional update: the second settlement on this product loses.
		if err := productRepo.MarkProductSold(ctx, bid.ProductID); err != nil {
			return errors.Wrap(err, "failed to mark product sold")
		}

		receipt, err := srv.postReceiptMessage(ctx, chatRepo, bid)
		if err != nil {
			return err
		}

		output.Payment = payment
		output.Bid = bid
		output.Receipt = receipt

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute payment settlement transaction", slog.Any("bidID", bid.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute payment settlement transaction")
	}

	return &output, nil
}

func (srv *paymentService) failPayment(ctx context.Context, payment *entity.Payment, cause error) {
	srv.log(ctx).Warn("Gateway charge failed", slog.Any("paymentID", payment.ID), slog.Any("error", cause))

	payment.FailureReason = cause.Error()
	if err := srv.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusProcessing, entity.PaymentStatusFailed); err != nil {
		srv.log(ctx).Error("Failed to mark payment failed", slog.Any("paymentID", payment.ID), slog.Any("error", err))

		return
	}
	payment.Status = entity.PaymentStatusFailed
	if err := srv.paymentRepo.UpdatePayment(ctx, payment); err != nil {
		srv.log(ctx).Error("Failed to record payment failure", slog.Any("paymentID", payment.ID), slog.Any("error", err))
	}
}

func (srv *paymentService) postReceiptMessage(ctx context.Context, chatRepo repository.ChatRepository, bid *entity.Bid) (*entity.ChatMessage, error) {
	thread, err := chatRepo.FindThreadByBid(ctx, bid.ID)
	if err != nil {
		if errors.Is(err, repository.ErrChatThreadNotFound) {
			// A settled bid always has a thread; tolerate its absence anyway.
			srv.log(ctx).Warn("No chat thread for settled bid", slog.Any("bidID", bid.ID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find chat thread for receipt")
	}

	receipt := &entity.ChatMessage{
		ThreadID: thread.ID,
		SenderID: bid.SellerID,
		Kind:     entity.MessageKindAuto,
		Body:     fmt.Sprintf("Payment of ₹%.2f received for %s. The sale is complete.", bid.Amount, bid.ProductName),
		Action: &entity.MessageAction{
			Type:   entity.ActionPaymentReceipt,
			BidID:  bid.ID,
			Amount: bid.Amount,
		},
	}

	if err := chatRepo.CreateMessage(ctx, receipt); err != nil {
		return nil, errors.Wrap(err, "failed to post receipt message")
	}

	return receipt, nil
}

func (srv *paymentService) publishCompletionEvent(ctx context.Context, bid *entity.Bid) {
	event := &entity.MarketEvent{
		ID:          uuid.New(),
		Type:        constants.EventPaymentCompleted,
		BidID:       bid.ID,
		ProductID:   bid.ProductID,
		ProductName: bid.ProductName,
		ActorID:     bid.BuyerID,
		RecipientID: bid.SellerID,
		Amount:      bid.Amount,
		OccurredAt:  time.Now(),
	}

	if err := srv.publisher.PublishMarketEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish payment completion event", slog.Any("bidID", bid.ID), slog.Any("error", err))
	}
}

func (srv *paymentService) loadPartyPayment(ctx context.Context, bidID, userID uuid.UUID) (*entity.Payment, *entity.Bid, error) {
	bid, err := srv.bidRepo.FindBidByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, repository.ErrBidNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrBidNotFound, "bid lookup failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find bid by id")
	}

	if bid.BuyerID != userID && bid.SellerID != userID {
		return nil, nil, errors.Wrap(domainerrors.ErrForbidden, "caller is not a party to this bid")
	}

	payment, err := srv.paymentRepo.FindPaymentByBid(ctx, bidID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrPaymentNotFound, "no payment for this bid")
		}

		return nil, nil, errors.Wrap(err, "failed to find payment by bid")
	}

	return payment, bid, nil
}
