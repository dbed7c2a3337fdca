package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/easyearn/admin-console/db"
	"github.com/easyearn/admin-console/internal/events"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Run the Pulsar consumer that stores console audit events",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		if appCfg.Pulsar.URL == "" || appCfg.Pulsar.TopicConsumer == "" {
			log.Fatal().Msg("pulsar.url and pulsar.topicConsumer are required")
		}

		auditDB, err := db.NewAuditDB(appCfg.Database.Driver, appCfg.Database.Source, &log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize audit database")
		}
		defer auditDB.Close()

		consumer, err := events.NewEventConsumer(appCfg.Pulsar.URL, appCfg.Pulsar.TopicConsumer, appCfg.Pulsar.Subscription)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event consumer")
		}
		defer consumer.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Info().Str("topic", appCfg.Pulsar.TopicConsumer).Msg("Waiting for audit events")

		for {
			msg, err := consumer.ReceiveMessage(ctx)
			if err != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					log.Info().Msg("Consumer stopped")
					return
				}
				log.Error().Err(err).Msg("Error receiving message")
				continue
			}

			event, err := events.DecodeAuditEvent(msg.Payload())
			if err != nil {
				log.Error().Err(err).Str("message_id", msg.ID().String()).Msg("Discarding malformed audit event")
				consumer.Nack(msg)
				continue
			}

			if err := auditDB.InsertAuditEvent(ctx, event); err != nil {
				log.Error().Err(err).Str("event_id", event.ID.String()).Msg("Failed to store audit event")
				consumer.Nack(msg)
				continue
			}

			if err := consumer.Ack(msg); err != nil {
				log.Warn().Err(err).Str("event_id", event.ID.String()).Msg("Failed to acknowledge audit event")
			}
			log.Debug().Str("event_id", event.ID.String()).Str("action", event.Action).Msg("Stored audit event")
		}
	},
}

func init() {
	rootCmd.AddCommand(consumeCmd)
}
