package model

// GenerateRequest represents request for POST /wallet/generate
type GenerateRequest struct {
	Network string `json:"network,omitempty" example:"mainnet"`
}

// ImportRequest represents request for POST /wallet/import
type ImportRequest struct {
	PrivateKey string `json:"privateKey" binding:"required" example:"1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"`
	Network    string `json:"network,omitempty" example:"mainnet"`
}

// WalletResponse represents a derived wallet
type WalletResponse struct {
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey"`
	Address    string `json:"address"`
	Network    string `json:"network"`
	QR         string `json:"QR,omitempty"` // base64 PNG of the address
}

// ValidateResponse represents response for GET /wallet/validate.
// Valid reflects a structural check only, not checksum verification.
type ValidateResponse struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
}
