package cmd

import (
	"log/slog"
	"net/http"

	"fooddelivery/internal/adapters/in/auth"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/in/realtime"
	"fooddelivery/internal/adapters/out/geocoder"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/paymenttoken"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/pricingrepo"
	"fooddelivery/internal/adapters/out/postgres/promotionrepo"
	"fooddelivery/internal/core/application/fanout"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/jobs"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"
)

const instrumentationName = "fooddelivery"

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	verifier *auth.JWTVerifier
	tokens   *paymenttoken.MemoryStore
	pricing  *pricingrepo.GormPricingProvider
	geocoder ports.Geocoder
	hub      *realtime.Hub
	kafka    *kafka.Publisher
	notifier *fanout.Fanout
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	verifier, err := auth.NewJWTVerifier(configs.JWTSecret)
	if err != nil {
		return nil, err
	}

	defaults := services.TariffConfig{
		BaseFee:   configs.PricingBaseFee,
		PerKmRate: configs.PricingPerKmRate,
		RadiusKm:  configs.PricingRadiusKm,
	}
	if configs.MerchantLat != nil && configs.MerchantLon != nil {
		origin, locErr := kernel.NewLocation(*configs.MerchantLat, *configs.MerchantLon)
		if locErr != nil {
			return nil, locErr
		}
		defaults.Origin = &origin
	}
	if err = defaults.Validate(); err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		verifier:   verifier,
		tokens:     paymenttoken.NewMemoryStore(configs.PaymentTokenTTL),
		pricing:    pricingrepo.NewGormPricingProvider(gormDB, defaults),
	}

	if configs.GeocoderURL != "" {
		client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		c.geocoder = geocoder.NewClient(configs.GeocoderURL, configs.GeocoderUserAgent, client)
	}

	policy := fanout.NewSubscriptionPolicy(orderrepo.NewGormOrderRepository(gormDB))
	c.hub = realtime.NewHub(verifier, policy, logger, realtime.DefaultSendBuffer)

	publishers := []ports.TopicPublisher{c.hub}
	if brokers := configs.KafkaBrokers(); len(brokers) > 0 {
		c.kafka = kafka.NewPublisher(brokers, configs.KafkaOrderChangedTopic, logger)
		publishers = append(publishers, c.kafka)
	}

	c.notifier, err = fanout.New(logger, otel.Meter(instrumentationName), configs.PublishTimeout, publishers...)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) Verifier() *auth.JWTVerifier {
	return c.verifier
}

func (c *CompositionRoot) Hub() *realtime.Hub {
	return c.hub
}

// Close releases the notification sinks.
func (c *CompositionRoot) Close() error {
	c.hub.Close()
	if c.kafka != nil {
		return c.kafka.Close()
	}
	return nil
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReassignCourierCommandHandler() commands.ReassignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignCourierCommandHandler(f, c.notifier, c.logger, c.configs.ReassignMaxActiveOrders)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(
		f,
		c.pricing,
		c.geocoder,
		c.CreateAssignCourierCommandHandler(),
		c.logger,
		commands.CreateOrderOptions{
			GeocodeTimeout: c.configs.GeocodeTimeout,
			AssignTimeout:  c.configs.AssignTimeout,
		},
	)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.orderUoWFactory(), c.notifier, c.logger, nil)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateIssuePaymentTokenCommandHandler() commands.IssuePaymentTokenCommandHandler {
	return commands.NewIssuePaymentTokenCommandHandler(c.orderUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	return commands.NewConfirmPaymentCommandHandler(c.orderUoWFactory(), c.tokens)
}

func (c *CompositionRoot) CreateSetCourierAvailabilityCommandHandler() commands.SetCourierAvailabilityCommandHandler {
	return commands.NewSetCourierAvailabilityCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierAccountStatusCommandHandler() commands.SetCourierAccountStatusCommandHandler {
	return commands.NewSetCourierAccountStatusCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateValidatePromotionQueryHandler() queries.ValidatePromotionQueryHandler {
	return queries.NewValidatePromotionQueryHandler(promotionrepo.NewGormPromotionRepository(c.gormDB), nil)
}

// CreateHTTPHandlers collects every use case served by the REST API.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus:       c.CreateUpdateOrderStatusCommandHandler(),
		ConfirmDelivery:         c.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:             c.CreateCancelOrderCommandHandler(),
		ReassignCourier:         c.CreateReassignCourierCommandHandler(),
		SetCourierAvailability:  c.CreateSetCourierAvailabilityCommandHandler(),
		SetCourierAccountStatus: c.CreateSetCourierAccountStatusCommandHandler(),
		IssuePaymentToken:       c.CreateIssuePaymentTokenCommandHandler(),
		ConfirmPayment:          c.CreateConfirmPaymentCommandHandler(),

		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetOrderHistory:   c.CreateGetOrderHistoryQueryHandler(),
		GetActiveOrders:   c.CreateGetActiveOrdersQueryHandler(),
		GetAllCouriers:    c.CreateGetAllCouriersQueryHandler(),
		ValidatePromotion: c.CreateValidatePromotionQueryHandler(),

		Pricing: c.pricing,
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	assignment := jobs.NewCourierAssignmentJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		c.CreateAssignCourierCommandHandler(),
		c.configs.AssignmentJobTimeout,
		c.logger,
	)
	sweep := jobs.NewPaymentTokenSweepJob(c.tokens, c.logger)
	return jobs.NewJobManager(assignment, sweep)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}
