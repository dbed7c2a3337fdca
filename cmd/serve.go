package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path"
	"syscall"
	"time"

	"github.com/easyearn/admin-console/api/handlers"
	"github.com/easyearn/admin-console/api/middleware"
	"github.com/easyearn/admin-console/api/services"
	docs "github.com/easyearn/admin-console/docs"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpSwagger "github.com/swaggo/http-swagger"
)

const shutdownTimeout = 10 * time.Second

// @title EasyEarn Admin Console API
// @version v1
// @description JSON mirror of the EasyEarn admin console operations.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for the admin console",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config and set up logging
		commonSetUp()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		service, cleanup := newService(ctx)
		defer cleanup()

		srv := &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			Handler:           newRouter(service),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("graceful shutdown failed")
			}
		}()

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("could not start server")
		}
		log.Info().Msg("Server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 8080, "port to run the server on")
}

func newRouter(service *services.Service) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.WithLogger)

	r.HandleFunc("/healthz", handlers.Healthz()).Methods(http.MethodGet)

	// JSON API routes
	api := r.PathPrefix(appCfg.BasePath).Subrouter()
	api.HandleFunc("/participations", handlers.ListParticipationsAPI(service)).Methods(http.MethodGet)
	api.HandleFunc("/participations/{participation-id}/approve", handlers.ApproveParticipationAPI(service)).Methods(http.MethodPost)
	api.HandleFunc("/participations/{participation-id}/reject", handlers.RejectParticipationAPI(service)).Methods(http.MethodPost)
	api.HandleFunc("/users", handlers.ListUsersAPI(service)).Methods(http.MethodGet)
	api.HandleFunc("/notifications", handlers.SendNotificationAPI(service)).Methods(http.MethodPost)

	// Docs
	docs.SwaggerInfo.Host = appCfg.Host
	docs.SwaggerInfo.BasePath = appCfg.BasePath
	r.PathPrefix(appCfg.DocsPath).Handler(httpSwagger.Handler(
		httpSwagger.URL(path.Join(appCfg.DocsPath, "/doc.json")),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	)).Methods(http.MethodGet)

	// Console pages
	ui := r.NewRoute().Subrouter()
	ui.Use(middleware.WithPreferences)
	ui.HandleFunc("/", handlers.Index()).Methods(http.MethodGet)
	ui.HandleFunc("/participations/{participation-id}/approve", handlers.ApproveRequest(service)).Methods(http.MethodPost)
	ui.HandleFunc("/participations/{participation-id}/reject", handlers.DenyRequest(service)).Methods(http.MethodPost)
	ui.HandleFunc("/notifications", handlers.SendNotification(service)).Methods(http.MethodPost)
	ui.HandleFunc("/preferences/theme", handlers.SetTheme()).Methods(http.MethodPost)
	ui.HandleFunc("/preferences/sidebar", handlers.SetSidebar()).Methods(http.MethodPost)
	ui.HandleFunc("/{section}", handlers.RenderSection(service)).Methods(http.MethodGet)

	return r
}
