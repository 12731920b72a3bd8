package api

import (
	"net/http"

	_ "github.com/bitcoinbrisbane/LBRYAddress/docs"
	"github.com/bitcoinbrisbane/LBRYAddress/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter() (http.Handler, error) {
	walletHandler, err := handler.NewWalletHandler()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/validate", walletHandler.Validate)

	return mux, nil
}
