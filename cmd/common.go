package cmd

import (
	"context"
	"errors"
	"io/fs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/easyearn/admin-console/api/services"
	"github.com/easyearn/admin-console/db"
	"github.com/easyearn/admin-console/internal/appconfig"
	awsclient "github.com/easyearn/admin-console/internal/aws"
	"github.com/easyearn/admin-console/internal/events"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var appCfg *appconfig.Config

// commonSetUp sets up logging, reads an optional .env file and loads the config.
func commonSetUp() {
	setLogging(logLevel)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("Failed to read .env file")
	}

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("Failed to load config")
	}
}

// loadAWS returns the SDK config, or nil when no AWS region is configured.
func loadAWS(ctx context.Context) *aws.Config {
	if !appCfg.AWS.Enabled() {
		return nil
	}

	cfg, err := awsclient.LoadAWSConfig(ctx, appCfg.AWS.Region)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	return &cfg
}

// newAdminClient builds the admin API client, reading the token from Secrets
// Manager when a secret is configured.
func newAdminClient(ctx context.Context, awsCfg *aws.Config) *services.AdminClient {
	token := appCfg.AdminAPI.Token

	if appCfg.AdminAPI.TokenSecret != "" {
		if awsCfg == nil {
			log.Fatal().Msg("adminApi.tokenSecret requires aws.region to be set")
		}
		secret, err := awsclient.FetchAPIToken(ctx, awsclient.NewSecretsManagerClient(*awsCfg), appCfg.AdminAPI.TokenSecret)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read admin API token")
		}
		token = secret
	}

	log.Info().Str("url", appCfg.AdminAPI.URL).Bool("token", token != "").Msg("Admin API client configured")
	return services.NewAdminClient(appCfg.AdminAPI.URL, token, appCfg.AdminAPI.Timeout())
}

// newService wires the console services. The returned function releases the
// optional publisher and database.
func newService(ctx context.Context) (*services.Service, func()) {
	awsCfg := loadAWS(ctx)

	svc := &services.Service{
		Config: appCfg,
		API:    newAdminClient(ctx, awsCfg),
	}
	var closers []func()

	if appCfg.Pulsar.Enabled() {
		publisher, err := events.NewEventPublisher(appCfg.Pulsar.URL, appCfg.Pulsar.TopicProducer)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize event publisher")
		}
		svc.Events = publisher
		closers = append(closers, publisher.Close)
	}

	if appCfg.Database.Enabled() {
		auditDB, err := db.NewAuditDB(appCfg.Database.Driver, appCfg.Database.Source, &log.Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize audit database")
		}
		svc.Audit = auditDB
		closers = append(closers, func() { _ = auditDB.Close() })
	}

	if awsCfg != nil {
		if appCfg.AWS.SES.FromEmail != "" && appCfg.AWS.SES.ToEmail != "" {
			svc.Mailer = awsclient.NewMailer(awsclient.NewSESClient(*awsCfg), appCfg.AWS.SES.FromEmail, appCfg.AWS.SES.ToEmail)
		}

		arn, err := awsclient.CallerIdentity(ctx, awsclient.NewSTSClient(*awsCfg))
		if err != nil {
			log.Warn().Err(err).Msg("Could not resolve AWS caller identity")
		} else {
			log.Info().Str("arn", arn).Msg("AWS credentials resolved")
		}
	}

	return svc, func() {
		for _, c := range closers {
			c()
		}
	}
}
