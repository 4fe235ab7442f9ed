package syncform

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/datazip-inc/olake-syncform/protocol"
	"github.com/datazip-inc/olake-syncform/utils/logger"
	"github.com/datazip-inc/olake-syncform/utils/safego"
)

// Execute runs the syncform command line and exits the process.
func Execute() {
	defer safego.Recovery(true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := protocol.CreateRootCommand().ExecuteContext(ctx)
	if err != nil {
		logger.Fatal(err)
	}
}
