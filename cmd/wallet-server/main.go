// @title        LBRY Address API
// @version      1.0
// @description  Local LBRY wallet address derivation service
package main

import (
	"net/http"

	"github.com/bitcoinbrisbane/LBRYAddress/internal/api"
	"github.com/bitcoinbrisbane/LBRYAddress/internal/config"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := config.Init(); err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	router, err := api.SetupRouter()
	if err != nil {
		log.WithError(err).Fatal("failed to set up router")
	}

	addr := ":" + config.GetPort()
	log.WithFields(log.Fields{
		"addr":    addr,
		"network": config.GetDefaultNetwork(),
	}).Info("wallet server listening")

	if err := http.ListenAndServe(addr, router); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
