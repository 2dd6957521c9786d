package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"

	"crmd/internal/graph"
	"crmd/internal/store"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the GraphQL API server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphQL Playground at /graphql (GET) for interactive queries
  - Liveness probe at /health

Examples:
  # Start server on the configured port
  crmd serve

  # Start server on a custom port
  crmd serve --port 3000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore()
		if err != nil {
			return err
		}
		return runServer(st)
	},
}

func runServer(st *store.Store) error {
	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	// Create GraphQL server
	es := graph.NewExecutableSchema(graph.Config{
		Resolvers: &graph.Resolver{Store: st},
	})
	srv := handler.NewDefaultServer(es)

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      newRouter(srv),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		fmt.Printf("Starting server at http://localhost:%d/\n", port)
		fmt.Printf("GraphQL Playground: http://localhost:%d/graphql\n", port)
		serverErr <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		fmt.Printf("\nShutting down...\n")

		// Create context with timeout for graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		fmt.Println("Server stopped")
	}

	return nil
}

// newRouter assembles the gin routes around the GraphQL handler.
func newRouter(srv http.Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// GraphQL endpoint - API on POST, playground on GET
	router.POST("/graphql", gin.WrapH(srv))
	router.GET("/graphql", gin.WrapH(playground.Handler("CRM GraphQL", "/graphql")))

	return router
}

// requestID tags every response with an id for log correlation, keeping the
// caller's id when one is supplied.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			if generated, err := gonanoid.New(); err == nil {
				id = generated
			}
		}
		if id != "" {
			c.Writer.Header().Set("X-Request-Id", id)
		}
		c.Next()
	}
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
