package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ChiventHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	address   string
	logger    *zap.SugaredLogger
}

func NewChiventHttpServer(
	router *Router,
	muxRouter *mux.Router,
	address string,
	logger *zap.SugaredLogger,
) *ChiventHttpServer {
	return &ChiventHttpServer{
		router:    router,
		muxRouter: muxRouter,
		address:   address,
		logger:    logger,
	}
}

func (s *ChiventHttpServer) Start() {
	s.router.RegisterRoutes()

	// Define your HTTP server
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.muxRouter,
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		s.logger.Infof("[ChiventHttpServer] Starting server on %s", s.address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	s.logger.Info("[ChiventHttpServer] Shutting down the server...")

	// Create a deadline for the shutdown (e.g., 5 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Fatalf("Server forced to shutdown: %v", err)
	}

	s.logger.Info("[ChiventHttpServer] Server exiting")
}
