package impl

import (
	"context"
	"testing"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	mockRepo "verdant/internal/mocks/repository"
	mockSvc "verdant/internal/mocks/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// paymentServiceFixtures holds all test dependencies for payment service tests.
type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	bidRepo     *mockRepo.MockBidRepository
	gateway     *mockSvc.MockPaymentGateway
	qrService   *mockSvc.MockQRCodeService
	publisher   *mockSvc.MockEventPublisher
	repoFactory *mockRepo.MockRepositoryFactory
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	bidRepo := mockRepo.NewMockBidRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)

	srv := NewPaymentService(PaymentServiceParams{
		TxManager:   txManager,
		PaymentRepo: paymentRepo,
		BidRepo:     bidRepo,
		Gateway:     gateway,
		QRService:   qrService,
		Publisher:   publisher,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	})

	return paymentServiceFixtures{
		service:     srv,
		txManager:   txManager,
		paymentRepo: paymentRepo,
		bidRepo:     bidRepo,
		gateway:     gateway,
		qrService:   qrService,
		publisher:   publisher,
		repoFactory: repoFactory,
	}
}

func (fx paymentServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestPaymentService_GetPaymentByBid_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()

	bid := &entity.Bid{
		ID:          bidID,
		ProductName: "Areca Palm",
		BuyerID:     buyerID,
		SellerID:    sellerID,
		Amount:      800,
		Status:      entity.BidStatusAwaitingPayment,
	}
	payment := &entity.Payment{
		ID:     uuid.New(),
		BidID:  bidID,
		Amount: 800,
		Status: entity.PaymentStatusPending,
	}

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(payment, nil)

	summary, err := fx.service.GetPaymentByBid(ctx, bidID, buyerID)
	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, payment, summary.Payment)
	assert.Equal(t, bid, summary.Bid)
	assert.Equal(t, "Areca Palm", summary.ProductName)
}

func TestPaymentService_GetPaymentByBid_SellerIsParty(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: uuid.New(), SellerID: sellerID}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: uuid.New(), BidID: bidID}, nil)

	summary, err := fx.service.GetPaymentByBid(ctx, bidID, sellerID)
	require.NoError(t, err)
	assert.NotNil(t, summary)
}

func TestPaymentService_GetPaymentByBid_NotAParty(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: uuid.New(), SellerID: uuid.New()}, nil)

	summary, err := fx.service.GetPaymentByBid(ctx, bidID, uuid.New())
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_GetPaymentByBid_NoPayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(nil, repository.ErrPaymentNotFound)

	summary, err := fx.service.GetPaymentByBid(ctx, bidID, buyerID)
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}

func TestPaymentService_GeneratePaymentQR_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, ProductName: "Bonsai", BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: uuid.New(), BidID: bidID, Amount: 2500, Status: entity.PaymentStatusPending}, nil)

	// Payee address and name come from the config, not the caller.
	fx.qrService.EXPECT().
		GeneratePaymentQR("verdant@upi", "verdant", 2500.0, "Bonsai").
		Return(png, nil)

	got, err := fx.service.GeneratePaymentQR(ctx, bidID, buyerID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPaymentService_GeneratePaymentQR_CompletedPaymentConflicts(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: uuid.New(), BidID: bidID, Status: entity.PaymentStatusCompleted}, nil)

	png, err := fx.service.GeneratePaymentQR(ctx, bidID, buyerID)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentStateConflict)
}

func TestPaymentService_CompletePayment_Success(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()
	paymentID := uuid.New()
	productID := uuid.New()
	threadID := uuid.New()

	bid := &entity.Bid{
		ID:          bidID,
		ProductID:   productID,
		ProductName: "Peace Lily",
		BuyerID:     buyerID,
		SellerID:    sellerID,
		Amount:      650,
		Status:      entity.BidStatusAwaitingPayment,
	}
	payment := &entity.Payment{
		ID:       paymentID,
		BidID:    bidID,
		BuyerID:  buyerID,
		SellerID: sellerID,
		Amount:   650,
		Status:   entity.PaymentStatusPending,
	}

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(payment, nil)

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusPending, entity.PaymentStatusProcessing).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, service.ChargeRequest{
			PaymentID: paymentID.String(),
			Amount:    650,
			Method:    entity.PaymentMethodUPI,
		}).
		Return(&service.ChargeResult{Reference: "SIM-REF-001"}, nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().PaymentRepo().Return(fx.paymentRepo)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	productRepo := mockRepo.NewMockProductRepository(t)
	fx.repoFactory.EXPECT().ProductRepo().Return(productRepo)
	chatRepo := mockRepo.NewMockChatRepository(t)
	fx.repoFactory.EXPECT().ChatRepo().Return(chatRepo)

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusProcessing, entity.PaymentStatusCompleted).
		Return(nil)

	fx.paymentRepo.EXPECT().
		UpdatePayment(ctx, payment).
		Return(nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusAwaitingPayment, entity.BidStatusSold).
		Return(nil)

	fx.bidRepo.EXPECT().
		UpdateBid(ctx, bid).
		Return(nil)

	productRepo.EXPECT().
		MarkProductSold(ctx, productID).
		Return(nil)

	chatRepo.EXPECT().
		FindThreadByBid(ctx, bidID).
		Return(&entity.ChatThread{ID: threadID, BidID: bidID}, nil)

	chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(nil)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, entity.PaymentStatusCompleted, output.Payment.Status)
	assert.Equal(t, entity.PaymentMethodUPI, output.Payment.Method)
	assert.Equal(t, "SIM-REF-001", output.Payment.GatewayRef)
	assert.NotNil(t, output.Payment.CompletedAt)

	assert.Equal(t, entity.BidStatusSold, output.Bid.Status)
	assert.Equal(t, "UPI", output.Bid.PaymentMethod)
	assert.NotNil(t, output.Bid.SoldAt)

	require.NotNil(t, output.Receipt)
	assert.Equal(t, threadID, output.Receipt.ThreadID)
	assert.Equal(t, entity.MessageKindAuto, output.Receipt.Kind)
	require.NotNil(t, output.Receipt.Action)
	assert.Equal(t, entity.ActionPaymentReceipt, output.Receipt.Action.Type)
	assert.Equal(t, 650.0, output.Receipt.Action.Amount)
}

func TestPaymentService_CompletePayment_UnknownMethod(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   uuid.New(),
		BuyerID: uuid.New(),
		Method:  entity.PaymentMethod("CHEQUE"),
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPaymentService_CompletePayment_SellerCannotComplete(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: uuid.New(), SellerID: sellerID}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: uuid.New(), BidID: bidID, Status: entity.PaymentStatusPending}, nil)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: sellerID,
		Method:  entity.PaymentMethodCard,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestPaymentService_CompletePayment_AlreadyCompleted(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: uuid.New(), BidID: bidID, Status: entity.PaymentStatusCompleted}, nil)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  entity.PaymentMethodUPI,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentStateConflict)
}

func TestPaymentService_CompletePayment_ConcurrentCompleteLoses(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	paymentID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, SellerID: uuid.New()}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(&entity.Payment{ID: paymentID, BidID: bidID, Status: entity.PaymentStatusPending}, nil)

	// Another request already moved the payment to processing.
	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusPending, entity.PaymentStatusProcessing).
		Return(repository.ErrPaymentStateConflict)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  entity.PaymentMethodUPI,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentStateConflict)
}

func TestPaymentService_CompletePayment_GatewayFailureMarksFailed(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	paymentID := uuid.New()

	payment := &entity.Payment{
		ID:      paymentID,
		BidID:   bidID,
		BuyerID: buyerID,
		Amount:  400,
		Status:  entity.PaymentStatusPending,
	}

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, SellerID: uuid.New(), Amount: 400}, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(payment, nil)

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusPending, entity.PaymentStatusProcessing).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("service.ChargeRequest")).
		Return(nil, errors.New("card declined"))

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusProcessing, entity.PaymentStatusFailed).
		Return(nil)

	fx.paymentRepo.EXPECT().
		UpdatePayment(ctx, payment).
		Return(nil)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  entity.PaymentMethodCard,
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentGatewayFailed)
	assert.Equal(t, entity.PaymentStatusFailed, payment.Status)
	assert.Equal(t, "card declined", payment.FailureReason)
}

func TestPaymentService_CompletePayment_FailedPaymentCanRetry(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()
	sellerID := uuid.New()
	paymentID := uuid.New()
	productID := uuid.New()

	bid := &entity.Bid{
		ID:        bidID,
		ProductID: productID,
		BuyerID:   buyerID,
		SellerID:  sellerID,
		Amount:    400,
		Status:    entity.BidStatusAwaitingPayment,
	}
	payment := &entity.Payment{
		ID:      paymentID,
		BidID:   bidID,
		BuyerID: buyerID,
		Amount:  400,
		Status:  entity.PaymentStatusFailed,
	}

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	fx.paymentRepo.EXPECT().
		FindPaymentByBid(ctx, bidID).
		Return(payment, nil)

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusFailed, entity.PaymentStatusProcessing).
		Return(nil)

	fx.gateway.EXPECT().
		Charge(ctx, mock.AnythingOfType("service.ChargeRequest")).
		Return(&service.ChargeResult{Reference: "SIM-REF-002"}, nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().PaymentRepo().Return(fx.paymentRepo)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	productRepo := mockRepo.NewMockProductRepository(t)
	fx.repoFactory.EXPECT().ProductRepo().Return(productRepo)
	chatRepo := mockRepo.NewMockChatRepository(t)
	fx.repoFactory.EXPECT().ChatRepo().Return(chatRepo)

	fx.paymentRepo.EXPECT().
		UpdatePaymentStatus(ctx, paymentID, entity.PaymentStatusProcessing, entity.PaymentStatusCompleted).
		Return(nil)

	fx.paymentRepo.EXPECT().
		UpdatePayment(ctx, payment).
		Return(nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusAwaitingPayment, entity.BidStatusSold).
		Return(nil)

	fx.bidRepo.EXPECT().
		UpdateBid(ctx, bid).
		Return(nil)

	productRepo.EXPECT().
		MarkProductSold(ctx, productID).
		Return(nil)

	// The thread is gone; the receipt is skipped but the sale still completes.
	chatRepo.EXPECT().
		FindThreadByBid(ctx, bidID).
		Return(nil, repository.ErrChatThreadNotFound)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(nil)

	output, err := fx.service.CompletePayment(ctx, &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  entity.PaymentMethodUPI,
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.PaymentStatusCompleted, output.Payment.Status)
	assert.Nil(t, output.Receipt)
}
