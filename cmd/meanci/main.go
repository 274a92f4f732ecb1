// meanci estimates confidence intervals for the mean of a normal
// population with z, t and bootstrap methods.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/aclements/go-meanci/cmd/meanci/cmd"
	"github.com/aclements/go-meanci/internal/logging"
)

func main() {
	if err := logging.ConfigureCommandLineLogging(os.Stderr, "info"); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.RootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
