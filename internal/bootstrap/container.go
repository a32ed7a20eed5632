package bootstrap

import (
	"context"
	"log"
	"time"

	"freshsprout-be/internal/config"
	"freshsprout-be/internal/controller"
	"freshsprout-be/internal/pkg/logger"
	"freshsprout-be/internal/pkg/mailer"
	"freshsprout-be/internal/repository/unitofwork"
	"freshsprout-be/internal/service"
	"freshsprout-be/pkg/cart"
	pktNats "freshsprout-be/pkg/nats"
	"freshsprout-be/pkg/schedule"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v79"
	"gorm.io/gorm"
)

const (
	orderNotificationTopic = "notifications.order"
	swapNotificationTopic  = "notifications.swap"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	UserController        controller.IUserController
	ProductController     controller.IProductController
	CartController        controller.ICartController
	CheckoutController    controller.ICheckoutController
	PaymentController     controller.IPaymentController
	OrderController       controller.IOrderController
	ReplacementController controller.IReplacementController
	SupportController     controller.ISupportController
	AdminController       controller.IAdminController

	// Background services (run from main.go)
	NotifierService service.INotifierService

	Logger logger.ILogger
}

// ScheduleConfig translates the env-driven delivery settings into the pure
// rule configuration the schedule package consumes.
func ScheduleConfig(d config.DeliveryConfig) schedule.Config {
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		log.Printf("[WARN] Unknown timezone %q, falling back to UTC", d.Timezone)
		loc = time.UTC
	}

	return schedule.Config{
		OrderCutoff: schedule.Cutoff{
			Weekday: d.OrderCutoffWeekday,
			Hour:    d.OrderCutoffHour,
			Minute:  d.OrderCutoffMinute,
		},
		SwapCutoff: schedule.Cutoff{
			Weekday: d.SwapCutoffWeekday,
			Hour:    d.SwapCutoffHour,
			Minute:  d.SwapCutoffMinute,
		},
		HarvestWeekday:        d.HarvestWeekday,
		DeliveryWeekday:       d.DeliveryWeekday,
		FreeShippingThreshold: d.FreeShippingThreshold,
		DeliveryFee:           d.DeliveryFee,
		MonthlySwapCap:        d.MonthlySwapCap,
		Region:                d.Region,
		Currency:              d.Currency,
		Location:              loc,
	}
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	stripe.Key = cfg.Stripe.SecretKey

	scheduleCfg := ScheduleConfig(cfg.Delivery)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis-backed carts, with an in-process fallback when Redis is down.
	var cartStore cart.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Carts will not survive restarts", err)
		cartStore = cart.NewMemoryStore()
	} else {
		cartStore = cart.NewRedisStore(rdb)
	}

	catalogCache := gocache.New(5*time.Minute, 10*time.Minute)

	orderNotifier := service.NewPublisherService(orderNotificationTopic, pubSub)
	swapNotifier := service.NewPublisherService(swapNotificationTopic, pubSub)
	notifierService := service.NewNotifierService(pubSub, orderNotificationTopic, swapNotificationTopic, emailService, sysLogger)

	// Services
	authService := service.NewAuthService(uowFactory)
	userService := service.NewUserService(uowFactory)
	productService := service.NewProductService(uowFactory, catalogCache)
	cartService := service.NewCartService(uowFactory, cartStore, scheduleCfg)
	checkoutService := service.NewCheckoutService(uowFactory, cartStore, scheduleCfg)
	paymentService := service.NewPaymentService(uowFactory, cartStore, scheduleCfg, orderNotifier, natsPub, sysLogger)
	orderService := service.NewOrderService(uowFactory, natsPub, sysLogger)
	replacementService := service.NewReplacementService(uowFactory, scheduleCfg, swapNotifier, natsPub, sysLogger)
	supportService := service.NewSupportService(uowFactory)
	giftService := service.NewGiftService(uowFactory)

	return &Container{
		AuthController:        controller.NewAuthController(authService),
		UserController:        controller.NewUserController(userService),
		ProductController:     controller.NewProductController(productService),
		CartController:        controller.NewCartController(cartService),
		CheckoutController:    controller.NewCheckoutController(checkoutService),
		PaymentController:     controller.NewPaymentController(paymentService, sysLogger),
		OrderController:       controller.NewOrderController(orderService),
		ReplacementController: controller.NewReplacementController(replacementService),
		SupportController:     controller.NewSupportController(supportService),
		AdminController: controller.NewAdminController(
			productService,
			orderService,
			replacementService,
			supportService,
			giftService,
		),
		NotifierService: notifierService,
		Logger:          sysLogger,
	}
}
