package httpserver

import (
	"context"
	"log"

	"bitefinder/internal/cart"
	"bitefinder/internal/domain"
	userrepo "bitefinder/internal/repository/user"
	identitysvc "bitefinder/internal/service/identity"
	ordersvc "bitefinder/internal/service/order"
	restaurantsvc "bitefinder/internal/service/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type identityService interface {
	Signup(ctx context.Context, in identitysvc.SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Guest(ctx context.Context) (guestID, token string, err error)
	Logout(ctx context.Context, token string) error
	LookupSession(ctx context.Context, token string) (*identitysvc.Session, error)
	UpdateProfile(ctx context.Context, userID string, patch userrepo.ProfilePatch) (*domain.User, error)
	AccessTTLSeconds() int
}

type restaurantService interface {
	List(ctx context.Context, f restaurantsvc.Filters) ([]domain.Restaurant, error)
	Cuisines(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
}

type orderService interface {
	PlaceOrder(ctx context.Context, ownerID string, in ordersvc.PlaceOrderInput) (*domain.Order, error)
	Get(ctx context.Context, ownerID, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, ownerID string, limit int) ([]domain.Order, error)
}

// Deps carries everything the router needs.
type Deps struct {
	IdentitySvc   identityService
	RestaurantSvc restaurantService
	CartStore     cart.Store
	OrderSvc      orderService

	// PublicBaseURL is embedded in the tracking QR code.
	PublicBaseURL string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/auth/signup", signupHandler(deps.IdentitySvc))
	router.POST("/auth/login", loginHandler(deps.IdentitySvc))
	router.POST("/auth/guest", guestHandler(deps.IdentitySvc))

	router.GET("/restaurants", listRestaurantsHandler(deps.RestaurantSvc))
	router.GET("/restaurants/cuisines", cuisinesHandler(deps.RestaurantSvc))
	router.GET("/restaurants/:id", getRestaurantHandler(deps.RestaurantSvc))

	authed := router.Group("/", sessionMiddleware(deps.IdentitySvc))
	authed.POST("/auth/logout", logoutHandler(deps.IdentitySvc))
	authed.GET("/me", meHandler)
	authed.PATCH("/me", updateProfileHandler(deps.IdentitySvc))

	authed.GET("/cart", getCartHandler(deps.CartStore))
	authed.POST("/cart/items", addCartItemHandler(deps.CartStore, deps.RestaurantSvc))
	authed.PATCH("/cart/items/:restaurantId", updateCartItemHandler(deps.CartStore))
	authed.DELETE("/cart/items/:restaurantId", removeCartItemHandler(deps.CartStore))
	authed.DELETE("/cart", clearCartHandler(deps.CartStore))

	authed.POST("/checkout", checkoutHandler(deps.OrderSvc))
	authed.GET("/orders", listOrdersHandler(deps.OrderSvc))
	authed.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	authed.GET("/orders/:id/tracking", orderTrackingHandler(deps.OrderSvc))
	authed.GET("/orders/:id/qr", orderQRHandler(deps.OrderSvc, deps.PublicBaseURL))

	return router
}
