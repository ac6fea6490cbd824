package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"cleaning_coop/internal/adapter/http/handlers"
	"cleaning_coop/internal/adapter/http/middleware"
	"cleaning_coop/internal/infrastructure/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies is everything the router needs. Cache may be nil.
type Dependencies struct {
	ServiceRequests *handlers.ServiceRequestHandler
	Assignments     *handlers.AssignmentHandler
	Companies       *handlers.CompanyHandler
	Estimates       *handlers.EstimateHandler
	Auth            *middleware.Auth
	Cache           cache.Store
	CachePrefix     string
	CacheTTL        time.Duration
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	if !deps.Auth.Enabled() {
		log.Printf("[http][routes] auth disabled, role gates pass through")
	}
	api := v1.Group("", deps.Auth.Authenticate())
	addRequestRoutes(api, deps)
	addAssignmentRoutes(api, deps)
	addCompanyRoutes(api, deps)
	return router
}

const shutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, port int, deps Dependencies) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][routes] listening addr=%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[http][routes] shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return err
	}
	return <-errCh
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
