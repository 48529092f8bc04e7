package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/nexaai/nexa-backend/ent"
	"github.com/nexaai/nexa-backend/ent/account"
	"github.com/nexaai/nexa-backend/pkg/cache"
	"github.com/nexaai/nexa-backend/pkg/domain"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/metrics"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// Invalidator drops cached premium statuses after a purchase lands.
type Invalidator interface {
	Broadcast(ctx context.Context, userID string)
}

// StripeConfig holds Stripe configuration
type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceStarter  string
	PricePlus     string
	PricePro      string
	SuccessURL    string
	CancelURL     string
}

// pack is a purchasable one-time token bundle. Packs are one-time payments,
// not subscriptions: buying any pack credits the paid balance and that
// balance is what grants premium access.
type pack struct {
	name        string
	tokens      int64
	priceUSD    float64
	description string
}

var packs = map[string]pack{
	"starter": {name: "starter", tokens: 500_000, priceUSD: 9.99, description: "500K tokens to get going"},
	"plus":    {name: "plus", tokens: 2_000_000, priceUSD: 29.99, description: "2M tokens for regular use"},
	"pro":     {name: "pro", tokens: 5_000_000, priceUSD: 59.99, description: "5M tokens for heavy use"},
}

// Service handles Stripe billing: token pack checkout, the webhook that
// credits the purchase, and the customer portal.
type Service struct {
	db          *ent.Client
	store       domain.BalanceStore
	cache       *cache.Client
	email       domain.EmailService
	invalidator Invalidator
	config      *StripeConfig
	metrics     *metrics.Metrics
	log         logger.Logger
}

// NewService creates a new billing service
func NewService(db *ent.Client, store domain.BalanceStore, cacheClient *cache.Client, email domain.EmailService, invalidator Invalidator, config *StripeConfig, m *metrics.Metrics, log logger.Logger) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:          db,
		store:       store,
		cache:       cacheClient,
		email:       email,
		invalidator: invalidator,
		config:      config,
		metrics:     m,
		log:         log,
	}
}

// CreateCheckoutSession creates a one-time payment checkout session for a
// token pack. The Stripe customer is created on first purchase and reused.
func (s *Service) CreateCheckoutSession(ctx context.Context, userID, packName string) (*models.CheckoutResponse, error) {
	p, ok := packs[packName]
	if !ok {
		return nil, domain.NewValidationError(fmt.Sprintf("unknown token pack: %s", packName))
	}
	priceID, err := s.priceIDForPack(packName)
	if err != nil {
		return nil, err
	}

	acct, err := s.db.Account.Query().
		Where(account.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	customerID, err := s.ensureStripeCustomer(ctx, acct)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"user_id": userID,
			"pack":    p.name,
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.log.Info("checkout session created", "user_id", userID, "pack", p.name, "session_id", sess.ID)

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// ensureStripeCustomer returns the account's Stripe customer ID, creating
// the customer and persisting the ID on first use.
func (s *Service) ensureStripeCustomer(ctx context.Context, acct *ent.Account) (string, error) {
	if acct.StripeCustomerID != nil && *acct.StripeCustomerID != "" {
		return *acct.StripeCustomerID, nil
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(acct.Email),
		Metadata: map[string]string{
			"user_id": acct.UserID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	if _, err := s.db.Account.UpdateOne(acct).
		SetStripeCustomerID(cust.ID).
		Save(ctx); err != nil {
		return "", domain.NewStoreUnavailableError(err)
	}

	return cust.ID, nil
}

// CreateCustomerPortalSession creates a Stripe customer portal session so
// users can see their payment history.
func (s *Service) CreateCustomerPortalSession(ctx context.Context, userID, returnURL string) (*models.CustomerPortalResponse, error) {
	acct, err := s.db.Account.Query().
		Where(account.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, domain.NewStoreUnavailableError(err)
	}

	if acct.StripeCustomerID == nil || *acct.StripeCustomerID == "" {
		return nil, domain.NewValidationError("account has no purchase history")
	}

	sess, err := billingportalsession.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(*acct.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &models.CustomerPortalResponse{URL: sess.URL}, nil
}

// HandleWebhook processes Stripe webhook events. Deliveries are
// deduplicated by event ID so a replay never credits tokens twice.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}

	if s.cache != nil {
		fresh, err := s.cache.SetNX(ctx, "stripe:event:"+event.ID, "1", 24*time.Hour)
		if err != nil {
			// Redis down: process anyway, AddTokens is keyed by session ID
			// in the grant log so a duplicate is at least auditable.
			s.log.Warn("webhook dedup unavailable", "event_id", event.ID, "error", err)
		} else if !fresh {
			s.log.Info("skipping replayed webhook event", "event_id", event.ID, "type", event.Type)
			return nil
		}
	}

	s.log.Info("stripe webhook received", "event_id", event.ID, "type", event.Type)

	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "charge.refunded":
		// Tokens already spent cannot be clawed back; flag for support.
		s.log.Warn("charge refunded, manual review needed", "event_id", event.ID)
		return nil
	case "payment_intent.payment_failed":
		s.log.Info("payment failed", "event_id", event.ID)
		return nil
	default:
		s.log.Info("unhandled webhook event type", "type", event.Type)
	}

	return nil
}

// handleCheckoutCompleted credits the purchased pack to the paid balance,
// invalidates the premium cache everywhere, and sends the receipt.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	userID, ok := sess.Metadata["user_id"]
	if !ok || userID == "" {
		return fmt.Errorf("user_id not found in session metadata")
	}
	p, ok := packs[sess.Metadata["pack"]]
	if !ok {
		return fmt.Errorf("unknown pack in session metadata: %q", sess.Metadata["pack"])
	}

	credit, err := s.store.AddTokens(ctx, userID, p.tokens, models.PoolPaid, models.GrantSourcePurchase, sess.ID)
	if err != nil {
		return fmt.Errorf("failed to credit token pack: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Broadcast(ctx, userID)
	}
	if s.metrics != nil {
		s.metrics.RecordTokenPackSold(p.name)
	}

	s.log.Info("✅ token pack credited",
		"user_id", userID,
		"pack", p.name,
		"tokens", p.tokens,
		"paid_balance", credit.PaidBalance)

	if s.email != nil && sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email := sess.CustomerDetails.Email
		go func() {
			if err := s.email.SendPurchaseReceipt(email, p.name, p.tokens, p.priceUSD); err != nil {
				s.log.Error("failed to send purchase receipt", "user_id", userID, "error", err)
			}
		}()
	}

	return nil
}

// priceIDForPack returns the Stripe price ID for a pack
func (s *Service) priceIDForPack(packName string) (string, error) {
	switch packName {
	case "starter":
		return s.config.PriceStarter, nil
	case "plus":
		return s.config.PricePlus, nil
	case "pro":
		return s.config.PricePro, nil
	default:
		return "", domain.NewValidationError(fmt.Sprintf("unknown token pack: %s", packName))
	}
}

// packOrder fixes the public listing order, cheapest first
var packOrder = []string{"starter", "plus", "pro"}

// GetPricing returns the public token pack listing, derived from the same
// pack table checkout charges against.
func (s *Service) GetPricing() *models.PricingResponse {
	out := make([]models.TokenPack, 0, len(packOrder))
	for _, name := range packOrder {
		p := packs[name]
		out = append(out, models.TokenPack{
			Name:        p.name,
			Tokens:      p.tokens,
			PriceUSD:    p.priceUSD,
			Description: p.description,
		})
	}
	return &models.PricingResponse{Packs: out}
}
