package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bitcoinbrisbane/LBRYAddress/internal/config"
	"github.com/bitcoinbrisbane/LBRYAddress/internal/model"
	"github.com/bitcoinbrisbane/LBRYAddress/lbry"

	"github.com/skip2/go-qrcode"
)

// WalletHandler holds configuration for wallet operations
type WalletHandler struct {
	defaultNetwork string
}

// NewWalletHandler creates a new WalletHandler with config values
func NewWalletHandler() (*WalletHandler, error) {
	defaultNetwork := config.GetDefaultNetwork()
	if _, err := lbry.ParseNetwork(defaultNetwork); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_NETWORK: %w", err)
	}

	return &WalletHandler{
		defaultNetwork: defaultNetwork,
	}, nil
}

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a fresh random private key and derives its public key and address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.GenerateRequest  false  "Target network (defaults to DEFAULT_NETWORK)"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *WalletHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	// Body is optional: an empty body means the default network
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err.Error(), model.CodeMalformedInput)
		return
	}

	network, err := h.resolveNetwork(req.Network)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), model.CodeUnknownNetwork)
		return
	}

	wallet, err := lbry.GenerateWallet(network)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	h.writeWallet(w, wallet)
}

// Import handles POST /wallet/import
// @Summary      Rebuild wallet from private key
// @Description  Derives the public key and address for a supplied 64-character hex private key
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.ImportRequest  true  "Private key and target network"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /wallet/import [post]
func (h *WalletHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), model.CodeMalformedInput)
		return
	}
	if req.PrivateKey == "" {
		writeError(w, http.StatusBadRequest, "privateKey is required", model.CodeMalformedInput)
		return
	}

	network, err := h.resolveNetwork(req.Network)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), model.CodeUnknownNetwork)
		return
	}

	wallet, err := lbry.WalletFromPrivateKey(req.PrivateKey, network)
	if err != nil {
		status, code := keyErrorStatus(err)
		writeError(w, status, err.Error(), code)
		return
	}

	h.writeWallet(w, wallet)
}

// Validate handles GET /wallet/validate
// @Summary      Structural address check
// @Description  Checks address length and first character only. A valid result is not cryptographic proof: the base-58 payload and checksum are not verified.
// @Tags         wallet
// @Produce      json
// @Param        address  query     string  true  "Address to check"
// @Success      200      {object}  model.ValidateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /wallet/validate [get]
func (h *WalletHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	address := r.URL.Query().Get("address")
	if address == "" {
		writeError(w, http.StatusBadRequest, "address query parameter is required", model.CodeMalformedInput)
		return
	}

	writeJSON(w, http.StatusOK, model.ValidateResponse{
		Address: address,
		Valid:   lbry.IsStructurallyValid(address),
	})
}

// resolveNetwork falls back to the configured default when the request
// omits the network
func (h *WalletHandler) resolveNetwork(raw string) (lbry.Network, error) {
	if raw == "" {
		raw = h.defaultNetwork
	}
	return lbry.ParseNetwork(raw)
}

// writeWallet attaches the address QR code and writes the wallet response
func (h *WalletHandler) writeWallet(w http.ResponseWriter, wallet *lbry.Wallet) {
	qr, err := generateQRCode(wallet.Address)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	writeJSON(w, http.StatusOK, model.WalletResponse{
		PrivateKey: wallet.PrivateKey,
		PublicKey:  wallet.PublicKey,
		Address:    wallet.Address,
		Network:    wallet.Network,
		QR:         qr,
	})
}

// keyErrorStatus maps key-material error kinds to an HTTP status and a
// stable error code
func keyErrorStatus(err error) (int, string) {
	switch {
	case lbry.IsMalformedInputError(err):
		return http.StatusBadRequest, model.CodeMalformedInput
	case lbry.IsWrongLengthError(err):
		return http.StatusBadRequest, model.CodeWrongLength
	case lbry.IsInvalidPrivateKeyError(err):
		return http.StatusUnprocessableEntity, model.CodeInvalidPrivateKey
	}
	return http.StatusInternalServerError, ""
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: message, Code: code})
}
