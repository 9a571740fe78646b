package handler

import (
	"time"

	"verdant/internal/domain/entity"
	"verdant/internal/domain/repository"
)

// View structs shape API payloads independently of the domain entities, so
// the wire format stays stable when entities grow fields.

type productView struct {
	ID          string   `json:"id"`
	SellerID    string   `json:"seller_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	ImageURLs   []string `json:"image_urls"`
	Sold        bool     `json:"sold"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func toProductView(product *entity.Product) productView {
	imageURLs := product.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}

	return productView{
		ID:          product.ID.String(),
		SellerID:    product.SellerID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Subcategory: product.Subcategory,
		ImageURLs:   imageURLs,
		Sold:        product.Sold,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
	}
}

func toProductViews(products []*entity.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type bidView struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductImage  string  `json:"product_image"`
	SellerID      string  `json:"seller_id"`
	BuyerID       string  `json:"buyer_id"`
	BuyerName     string  `json:"buyer_name"`
	BuyerMobile   string  `json:"buyer_mobile,omitempty"`
	Amount        float64 `json:"amount"`
	Message       string  `json:"message"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	SoldAt        *string `json:"sold_at,omitempty"`
}

func toBidView(bid *entity.Bid) bidView {
	view := bidView{
		ID:            bid.ID.String(),
		ProductID:     bid.ProductID.String(),
		ProductName:   bid.ProductName,
		ProductImage:  bid.ProductImage,
		SellerID:      bid.SellerID.String(),
		BuyerID:       bid.BuyerID.String(),
		BuyerName:     bid.BuyerName,
		BuyerMobile:   bid.BuyerMobile,
		Amount:        bid.Amount,
		Message:       bid.Message,
		Status:        bid.Status.String(),
		PaymentMethod: bid.PaymentMethod,
		CreatedAt:     bid.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     bid.UpdatedAt.Format(time.RFC3339),
	}
	if bid.SoldAt != nil {
		soldAt := bid.SoldAt.Format(time.RFC3339)
		view.SoldAt = &soldAt
	}

	return view
}

func toBidViews(bids []*entity.Bid) []bidView {
	views := make([]bidView, 0, len(bids))
	for _, bid := range bids {
		views = append(views, toBidView(bid))
	}

	return views
}

type threadView struct {
	ID        string `json:"id"`
	BidID     string `json:"bid_id"`
	ProductID string `json:"product_id"`
	BuyerID   string `json:"buyer_id"`
	SellerID  string `json:"seller_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toThreadView(thread *entity.ChatThread) threadView {
	return threadView{
		ID:        thread.ID.String(),
		BidID:     thread.BidID.String(),
		ProductID: thread.ProductID.String(),
		BuyerID:   thread.BuyerID.String(),
		SellerID:  thread.SellerID.String(),
		CreatedAt: thread.CreatedAt.Format(time.RFC3339),
		UpdatedAt: thread.UpdatedAt.Format(time.RFC3339),
	}
}

type messageView struct {
	ID        string                `json:"id"`
	ThreadID  string                `json:"thread_id"`
	SenderID  string                `json:"sender_id"`
	Kind      string                `json:"kind"`
	Body      string                `json:"body"`
	Action    *entity.MessageAction `json:"action,omitempty"`
	CreatedAt string                `json:"created_at"`
}

func toMessageView(message *entity.ChatMessage) messageView {
	return messageView{
		ID:        message.ID.String(),
		ThreadID:  message.ThreadID.String(),
		SenderID:  message.SenderID.String(),
		Kind:      string(message.Kind),
		Body:      message.Body,
		Action:    message.Action,
		CreatedAt: message.CreatedAt.Format(time.RFC3339),
	}
}

func toMessageViews(messages []*entity.ChatMessage) []messageView {
	views := make([]messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, toMessageView(message))
	}

	return views
}

type threadPreviewView struct {
	Thread      threadView   `json:"thread"`
	LastMessage *messageView `json:"last_message,omitempty"`
}

func toThreadPreviewViews(previews []*repository.ThreadPreview) []threadPreviewView {
	views := make([]threadPreviewView, 0, len(previews))
	for _, preview := range previews {
		view := threadPreviewView{Thread: toThreadView(preview.Thread)}
		if preview.LastMessage != nil {
			last := toMessageView(preview.LastMessage)
			view.LastMessage = &last
		}
		views = append(views, view)
	}

	return views
}

type paymentView struct {
	ID            string  `json:"id"`
	BidID         string  `json:"bid_id"`
	BuyerID       string  `json:"buyer_id"`
	SellerID      string  `json:"seller_id"`
	Amount        float64 `json:"amount"`
	Method        string  `json:"method,omitempty"`
	Status        string  `json:"status"`
	GatewayRef    string  `json:"gateway_ref,omitempty"`
	FailureReason string  `json:"failure_reason,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}

func toPaymentView(payment *entity.Payment) paymentView {
	view := paymentView{
		ID:            payment.ID.String(),
		BidID:         payment.BidID.String(),
		BuyerID:       payment.BuyerID.String(),
		SellerID:      payment.SellerID.String(),
		Amount:        payment.Amount,
		Method:        string(payment.Method),
		Status:        payment.Status.String(),
		GatewayRef:    payment.GatewayRef,
		FailureReason: payment.FailureReason,
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     payment.UpdatedAt.Format(time.RFC3339),
	}
	if payment.CompletedAt != nil {
		completedAt := payment.CompletedAt.Format(time.RFC3339)
		view.CompletedAt = &completedAt
	}

	return view
}

type deviceView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Platform  string `json:"platform"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}

func toDeviceView(device *entity.UserDevice) deviceView {
	return deviceView{
		ID:        device.ID.String(),
		UserID:    device.UserID.String(),
		Platform:  device.Platform,
		Active:    device.Active,
		CreatedAt: device.CreatedAt.Format(time.RFC3339),
	}
}
