package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aretw0/track/pkg/adapters/amqp"
	"github.com/aretw0/track/pkg/adapters/fs"
)

// botCmd represents the bot command
var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Record entries sent as messages over AMQP",
	Long: `Consume "<category> <value>" messages from AMQP_QUEUE and append them to the
journal. When a message carries a reply-to queue, the bot answers with
"ok: <stored line>" or "error: <reason>" under the same correlation id.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		service, err := openService(cmd)
		if err != nil {
			fatal("Failed to open journal", err)
		}

		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, slog.Default())
		if err != nil {
			fatal("Failed to connect to AMQP", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := amqp.NewHandler(service, fs.FormatLine)

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return client.Consume(ctx, handler.Handle)
		})
		g.Go(func() error {
			<-ctx.Done()
			slog.Info("shutting down bot")
			return client.Close()
		})

		if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			fatal("Bot stopped", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
