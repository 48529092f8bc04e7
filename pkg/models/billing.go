package models

// CheckoutRequest represents a request to create a token pack checkout session
type CheckoutRequest struct {
	Pack string `json:"pack" validate:"required,oneof=starter plus pro"`
}

// CheckoutResponse represents a checkout session response
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// CustomerPortalResponse represents a customer portal session response
type CustomerPortalResponse struct {
	URL string `json:"url"`
}

// TokenPack represents a purchasable token bundle
type TokenPack struct {
	Name        string  `json:"name"`
	Tokens      int64   `json:"tokens"`
	PriceUSD    float64 `json:"price_usd"`
	Description string  `json:"description"`
}

// PricingResponse represents the public token pack listing
type PricingResponse struct {
	Packs []TokenPack `json:"packs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Shortfall detail for insufficient balance rejections
	Required  int64 `json:"required,omitempty"`
	Available int64 `json:"available,omitempty"`
}
