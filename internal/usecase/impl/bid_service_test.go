package impl

import (
	"context"
	"testing"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	mockRepo "verdant/internal/mocks/repository"
	mockSvc "verdant/internal/mocks/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bidServiceFixtures holds all test dependencies for bid service tests.
type bidServiceFixtures struct {
	service     usecase.BidUsecase
	txManager   *mockRepo.MockTransactionManager
	bidRepo     *mockRepo.MockBidRepository
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	chatRepo    *mockRepo.MockChatRepository
	publisher   *mockSvc.MockEventPublisher
	repoFactory *mockRepo.MockRepositoryFactory
}

func createTestBidService(t *testing.T) bidServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bidRepo := mockRepo.NewMockBidRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)

	service := NewBidService(BidServiceParams{
		TxManager:   txManager,
		BidRepo:     bidRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		ChatRepo:    chatRepo,
		Publisher:   publisher,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	})

	return bidServiceFixtures{
		service:     service,
		txManager:   txManager,
		bidRepo:     bidRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		chatRepo:    chatRepo,
		publisher:   publisher,
		repoFactory: repoFactory,
	}
}

// expectTransaction routes the transaction body through the mock factory so
// the test can set expectations on the repos used inside it.
func (fx bidServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
}

func TestBidService_PlaceBid_Success(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()

	product := &entity.Product{
		ID:        productID,
		SellerID:  sellerID,
		Name:      "Monstera Deliciosa",
		Price:     500,
		ImageURLs: []string{"https://img.test/monstera.jpg", "https://img.test/monstera2.jpg"},
	}
	buyer := &entity.User{
		ID:   buyerID,
		Name: "Asha",
		BuyerProfile: &entity.BuyerProfile{
			UserID: buyerID,
			Mobile: "9876543210",
		},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	fx.bidRepo.EXPECT().
		CountOpenBidsByBuyerAndProduct(ctx, buyerID, productID).
		Return(0, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, buyerID).
		Return(buyer, nil)

	fx.bidRepo.EXPECT().
		CreateBid(ctx, mock.AnythingOfType("*entity.Bid")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   buyerID,
		Amount:    550,
		Message:   "Can you ship this week?",
	})
	require.NoError(t, err)
	require.NotNil(t, bid)
	assert.Equal(t, entity.BidStatusPending, bid.Status)
	assert.Equal(t, productID, bid.ProductID)
	assert.Equal(t, sellerID, bid.SellerID)
	assert.Equal(t, buyerID, bid.BuyerID)
	assert.Equal(t, "Monstera Deliciosa", bid.ProductName)
	assert.Equal(t, "https://img.test/monstera.jpg", bid.ProductImage)
	assert.Equal(t, "Asha", bid.BuyerName)
	assert.Equal(t, "9876543210", bid.BuyerMobile)
	assert.Equal(t, 550.0, bid.Amount)
}

func TestBidService_PlaceBid_AtAskingPrice(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	buyerID := uuid.New()

	product := &entity.Product{
		ID:       productID,
		SellerID: uuid.New(),
		Name:     "Snake Plant",
		Price:    300,
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	fx.bidRepo.EXPECT().
		CountOpenBidsByBuyerAndProduct(ctx, buyerID, productID).
		Return(1, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, Name: "Ravi"}, nil)

	fx.bidRepo.EXPECT().
		CreateBid(ctx, mock.AnythingOfType("*entity.Bid")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   buyerID,
		Amount:    300,
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, bid.Amount)
}

func TestBidService_PlaceBid_ProductNotFound(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   uuid.New(),
		Amount:    100,
	})
	assert.Nil(t, bid)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestBidService_PlaceBid_ProductAlreadySold(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Price: 200, Sold: true}, nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   uuid.New(),
		Amount:    250,
	})
	assert.Nil(t, bid)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadySold)
}

func TestBidService_PlaceBid_OwnProduct(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID, Price: 200}, nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   sellerID,
		Amount:    250,
	})
	assert.Nil(t, bid)
	assert.ErrorIs(t, err, domainerrors.ErrBidOnOwnProduct)
}

func TestBidService_PlaceBid_BelowAskingPrice(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Price: 500}, nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   uuid.New(),
		Amount:    499.99,
	})
	assert.Nil(t, bid)
	assert.ErrorIs(t, err, domainerrors.ErrBidTooLow)
}

func TestBidService_PlaceBid_OpenBidLimitReached(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	buyerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Price: 100}, nil)

	// newTestConfig caps open bids per product at 3.
	fx.bidRepo.EXPECT().
		CountOpenBidsByBuyerAndProduct(ctx, buyerID, productID).
		Return(3, nil)

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   buyerID,
		Amount:    120,
	})
	assert.Nil(t, bid)
	assert.ErrorIs(t, err, domainerrors.ErrBidLimitExceeded)
}

func TestBidService_ListProductBids_Success(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID, Price: 100}, nil)

	expected := []*entity.Bid{
		{ID: uuid.New(), ProductID: productID, Status: entity.BidStatusPending},
		{ID: uuid.New(), ProductID: productID, Status: entity.BidStatusAccepted},
	}
	fx.bidRepo.EXPECT().
		FindBidsByProduct(ctx, productID).
		Return(expected, nil)

	bids, err := fx.service.ListProductBids(ctx, productID, sellerID)
	require.NoError(t, err)
	assert.Len(t, bids, 2)
}

func TestBidService_ListProductBids_NotOwner(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Price: 100}, nil)

	bids, err := fx.service.ListProductBids(ctx, productID, uuid.New())
	assert.Nil(t, bids)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestBidService_ListSellerBids_FiltersTerminalStatuses(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidsBySeller(ctx, sellerID,
			entity.BidStatusPending, entity.BidStatusAccepted, entity.BidStatusAwaitingPayment).
		Return([]*entity.Bid{{ID: uuid.New(), SellerID: sellerID}}, nil)

	bids, err := fx.service.ListSellerBids(ctx, sellerID)
	require.NoError(t, err)
	assert.Len(t, bids, 1)
}

func TestBidService_ListBuyerBids_IncludesSold(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidsByBuyer(ctx, buyerID,
			entity.BidStatusPending, entity.BidStatusAccepted, entity.BidStatusAwaitingPayment, entity.BidStatusSold).
		Return([]*entity.Bid{
			{ID: uuid.New(), BuyerID: buyerID, Status: entity.BidStatusSold},
		}, nil)

	bids, err := fx.service.ListBuyerBids(ctx, buyerID)
	require.NoError(t, err)
	assert.Len(t, bids, 1)
}

func TestBidService_AcceptBid_PendingOpensThread(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	productID := uuid.New()

	bid := &entity.Bid{
		ID:        bidID,
		ProductID: productID,
		SellerID:  sellerID,
		BuyerID:   buyerID,
		Status:    entity.BidStatusPending,
	}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusPending, entity.BidStatusAccepted).
		Return(nil)

	fx.chatRepo.EXPECT().
		FindThreadByBid(ctx, bidID).
		Return(nil, repository.ErrChatThreadNotFound)

	fx.chatRepo.EXPECT().
		CreateThread(ctx, mock.AnythingOfType("*entity.ChatThread")).
		Run(func(_ context.Context, thread *entity.ChatThread) {
			assert.Equal(t, bidID, thread.BidID)
			assert.Equal(t, productID, thread.ProductID)
			assert.Equal(t, buyerID, thread.BuyerID)
			assert.Equal(t, sellerID, thread.SellerID)
		}).
		Return(nil)

	output, err := fx.service.AcceptBid(ctx, bidID, sellerID)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, entity.BidStatusAccepted, output.Bid.Status)
	assert.NotNil(t, output.Thread)
}

func TestBidService_AcceptBid_AlreadyAcceptedIsIdempotent(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	bid := &entity.Bid{
		ID:       bidID,
		SellerID: sellerID,
		Status:   entity.BidStatusAccepted,
	}
	thread := &entity.ChatThread{ID: uuid.New(), BidID: bidID}

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	// No status update: the existing thread is returned as-is.
	fx.chatRepo.EXPECT().
		FindThreadByBid(ctx, bidID).
		Return(thread, nil)

	output, err := fx.service.AcceptBid(ctx, bidID, sellerID)
	require.NoError(t, err)
	assert.Equal(t, entity.BidStatusAccepted, output.Bid.Status)
	assert.Equal(t, thread.ID, output.Thread.ID)
}

func TestBidService_AcceptBid_NotSellersBid(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, SellerID: uuid.New(), Status: entity.BidStatusPending}, nil)

	output, err := fx.service.AcceptBid(ctx, bidID, uuid.New())
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBidService_AcceptBid_SoldBidConflicts(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, SellerID: sellerID, Status: entity.BidStatusSold}, nil)

	output, err := fx.service.AcceptBid(ctx, bidID, sellerID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBidStatusConflict)
}

func TestBidService_SettleBid_Success(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()
	buyerID := uuid.New()
	threadID := uuid.New()

	bid := &entity.Bid{
		ID:          bidID,
		ProductID:   uuid.New(),
		ProductName: "Fiddle Leaf Fig",
		SellerID:    sellerID,
		BuyerID:     buyerID,
		Amount:      1200,
		Status:      entity.BidStatusAccepted,
	}

	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	paymentRepo.EXPECT().
		CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).
		Return(nil)

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)
	fx.repoFactory.EXPECT().PaymentRepo().Return(paymentRepo)

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(bid, nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusAccepted, entity.BidStatusAwaitingPayment).
		Return(nil)

	fx.chatRepo.EXPECT().
		FindThreadByBid(ctx, bidID).
		Return(&entity.ChatThread{ID: threadID, BidID: bidID}, nil)

	fx.chatRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(nil)

	output, err := fx.service.SettleBid(ctx, bidID, sellerID)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, entity.BidStatusAwaitingPayment, output.Bid.Status)

	require.NotNil(t, output.Payment)
	assert.Equal(t, bidID, output.Payment.BidID)
	assert.Equal(t, buyerID, output.Payment.BuyerID)
	assert.Equal(t, sellerID, output.Payment.SellerID)
	assert.Equal(t, 1200.0, output.Payment.Amount)
	assert.Equal(t, entity.PaymentStatusPending, output.Payment.Status)

	require.NotNil(t, output.Message)
	assert.Equal(t, threadID, output.Message.ThreadID)
	assert.Equal(t, sellerID, output.Message.SenderID)
	assert.Equal(t, entity.MessageKindAuto, output.Message.Kind)
	require.NotNil(t, output.Message.Action)
	assert.Equal(t, entity.ActionPaymentRequest, output.Message.Action.Type)
	assert.Equal(t, "https://app.verdant.test/payments/"+bidID.String(), output.Message.Action.URL)
	assert.Equal(t, 1200.0, output.Message.Action.Amount)
}

func TestBidService_SettleBid_AwaitingPaymentConflicts(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)
	fx.repoFactory.EXPECT().PaymentRepo().Return(mockRepo.NewMockPaymentRepository(t))

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, SellerID: sellerID, Status: entity.BidStatusAwaitingPayment}, nil)

	output, err := fx.service.SettleBid(ctx, bidID, sellerID)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrBidStatusConflict)
}

func TestBidService_SettleBid_TransactionFailureRollsUp(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	sellerID := uuid.New()

	fx.expectTransaction(ctx)
	fx.repoFactory.EXPECT().BidRepo().Return(fx.bidRepo)
	fx.repoFactory.EXPECT().ChatRepo().Return(fx.chatRepo)
	fx.repoFactory.EXPECT().PaymentRepo().Return(mockRepo.NewMockPaymentRepository(t))

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, SellerID: sellerID, Status: entity.BidStatusPending}, nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusPending, entity.BidStatusAwaitingPayment).
		Return(errors.New("connection reset"))

	output, err := fx.service.SettleBid(ctx, bidID, sellerID)
	assert.Nil(t, output)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute settle bid transaction")
}

func TestBidService_ArchiveBid_Success(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, Status: entity.BidStatusPending}, nil)

	fx.bidRepo.EXPECT().
		UpdateBidStatus(ctx, bidID, entity.BidStatusPending, entity.BidStatusArchived).
		Return(nil)

	err := fx.service.ArchiveBid(ctx, bidID, buyerID)
	assert.NoError(t, err)
}

func TestBidService_ArchiveBid_NotBuyersBid(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: uuid.New(), Status: entity.BidStatusPending}, nil)

	err := fx.service.ArchiveBid(ctx, bidID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBidService_ArchiveBid_AwaitingPaymentCannotBeArchived(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	bidID := uuid.New()
	buyerID := uuid.New()

	fx.bidRepo.EXPECT().
		FindBidByID(ctx, bidID).
		Return(&entity.Bid{ID: bidID, BuyerID: buyerID, Status: entity.BidStatusAwaitingPayment}, nil)

	err := fx.service.ArchiveBid(ctx, bidID, buyerID)
	assert.ErrorIs(t, err, domainerrors.ErrBidStatusConflict)
}

func TestBidService_PlaceBid_PublishFailureDoesNotFailBid(t *testing.T) {
	fx := createTestBidService(t)

	ctx := context.Background()
	productID := uuid.New()
	buyerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Name: "Jade Plant", Price: 150}, nil)

	fx.bidRepo.EXPECT().
		CountOpenBidsByBuyerAndProduct(ctx, buyerID, productID).
		Return(0, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, buyerID).
		Return(&entity.User{ID: buyerID, Name: "Meera"}, nil)

	fx.bidRepo.EXPECT().
		CreateBid(ctx, mock.AnythingOfType("*entity.Bid")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishMarketEvent(ctx, mock.AnythingOfType("*entity.MarketEvent")).
		Return(errors.New("pubsub unavailable"))

	bid, err := fx.service.PlaceBid(ctx, &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   buyerID,
		Amount:    150,
	})
	require.NoError(t, err)
	assert.NotNil(t, bid)
}
