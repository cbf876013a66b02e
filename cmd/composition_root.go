package cmd

import (
	"context"
	"log/slog"

	"fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/bcrypt"
	"fastfeet/internal/adapters/out/jwt"
	"fastfeet/internal/adapters/out/postgres"
	fastredis "fastfeet/internal/adapters/out/redis"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/services"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/jobs"
	"fastfeet/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	hasher     ports.PasswordHasher
	tokens     *jwt.TokenService
	revoker    ports.TokenRevoker
	publisher  ports.NotificationPublisher
	metrics    *metrics.Metrics
}

// NewCompositionRoot wires the adapters. publisher may be nil, in which case no
// notification relay is scheduled.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.NotificationPublisher,
	m *metrics.Metrics,
) (CompositionRoot, error) {
	tokens, err := jwt.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     bcrypt.NewHasher(),
		tokens:     tokens,
		revoker:    fastredis.NewRevocationStore(redisClient, fastredis.WithCheckObserver(m.ObserveRevocationCheck)),
		publisher:  publisher,
		metrics:    m,
	}, nil
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) recipientUoWFactory() commands.RecipientUoWFactory {
	return FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

func (c *CompositionRoot) CreateRevokeSessionCommandHandler() commands.RevokeSessionCommandHandler {
	return commands.NewRevokeSessionCommandHandler(c.revoker)
}

func (c *CompositionRoot) CreateBootstrapAdminCommandHandler() commands.BootstrapAdminCommandHandler {
	return commands.NewBootstrapAdminCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserCommandHandler() commands.UpdateUserCommandHandler {
	return commands.NewUpdateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() commands.CreateRecipientCommandHandler {
	return commands.NewCreateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateRecipientCommandHandler() commands.UpdateRecipientCommandHandler {
	return commands.NewUpdateRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRecipientCommandHandler() commands.DeleteRecipientCommandHandler {
	return commands.NewDeleteRecipientCommandHandler(c.recipientUoWFactory())
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDeliveryCommandHandler() commands.UpdateDeliveryCommandHandler {
	return commands.NewUpdateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDeliveryCommandHandler() commands.DeleteDeliveryCommandHandler {
	return commands.NewDeleteDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateTransitionDeliveryCommandHandler() commands.TransitionDeliveryCommandHandler {
	return commands.NewTransitionDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreatePublishNotificationsCommandHandler() commands.PublishNotificationsCommandHandler {
	return commands.NewPublishNotificationsCommandHandler(c.notificationUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecipientQueryHandler() queries.GetRecipientQueryHandler {
	return queries.NewGetRecipientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCourierDeliveriesQueryHandler() queries.ListCourierDeliveriesQueryHandler {
	return queries.NewListCourierDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyDeliveriesQueryHandler() queries.GetNearbyDeliveriesQueryHandler {
	return queries.NewGetNearbyDeliveriesQueryHandler(c.gormDB, services.NewNearbyDeliveryRanker())
}

func (c *CompositionRoot) CreateResolveCallerQueryHandler() queries.ResolveCallerQueryHandler {
	return queries.NewResolveCallerQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case reachable over HTTP.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	authenticate := c.CreateAuthenticateCommandHandler()
	revokeSession := c.CreateRevokeSessionCommandHandler()
	createUser := c.CreateCreateUserCommandHandler()
	updateUser := c.CreateUpdateUserCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()
	createRecipient := c.CreateCreateRecipientCommandHandler()
	updateRecipient := c.CreateUpdateRecipientCommandHandler()
	deleteRecipient := c.CreateDeleteRecipientCommandHandler()
	createDelivery := c.CreateCreateDeliveryCommandHandler()
	updateDelivery := c.CreateUpdateDeliveryCommandHandler()
	deleteDelivery := c.CreateDeleteDeliveryCommandHandler()
	transition := c.CreateTransitionDeliveryCommandHandler()

	handlers := http.Handlers{
		Authenticate:          &authenticate,
		RevokeSession:         &revokeSession,
		CreateUser:            &createUser,
		UpdateUser:            &updateUser,
		DeleteUser:            &deleteUser,
		GetUser:               c.CreateGetUserQueryHandler(),
		CreateRecipient:       &createRecipient,
		UpdateRecipient:       &updateRecipient,
		DeleteRecipient:       &deleteRecipient,
		GetRecipient:          c.CreateGetRecipientQueryHandler(),
		CreateDelivery:        &createDelivery,
		UpdateDelivery:        &updateDelivery,
		DeleteDelivery:        &deleteDelivery,
		TransitionDelivery:    &transition,
		GetDelivery:           c.CreateGetDeliveryQueryHandler(),
		ListCourierDeliveries: c.CreateListCourierDeliveriesQueryHandler(),
		GetNearbyDeliveries:   c.CreateGetNearbyDeliveriesQueryHandler(),
	}

	return http.NewServer(handlers, func(status delivery.Status) {
		c.metrics.IncrementDeliveryTransitions(status.String())
	})
}

func (c *CompositionRoot) CreateAuthenticator() *http.Authenticator {
	return http.NewAuthenticator(
		c.tokens,
		c.revoker,
		c.CreateResolveCallerQueryHandler(),
		c.metrics.IncrementAuthenticationFailures,
	)
}

// CreateJobManager schedules the notification relay when a publisher is configured.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	if c.publisher == nil {
		logger.Warn("No message broker configured, notifications will not be relayed")
		return jobs.NewJobManager()
	}

	publish := c.CreatePublishNotificationsCommandHandler()
	relay := jobs.NewNotificationRelayJob(
		&publish,
		c.cfg.NotificationRelaySchedule,
		c.cfg.NotificationRelayBatch,
		c.metrics.AddNotificationsPublished,
		logger,
	)
	return jobs.NewJobManager(relay)
}

// BootstrapAdmin makes sure the configured administrator exists. It does nothing
// when no cpf is configured.
func (c *CompositionRoot) BootstrapAdmin(ctx context.Context, logger *slog.Logger) error {
	if c.cfg.BootstrapAdminCPF == "" {
		return nil
	}

	cpf, err := kernel.NewCPF(c.cfg.BootstrapAdminCPF)
	if err != nil {
		return err
	}
	cmd, err := commands.NewBootstrapAdminCommand(c.cfg.BootstrapAdminName, cpf, c.cfg.BootstrapAdminPassword)
	if err != nil {
		return err
	}

	handler := c.CreateBootstrapAdminCommandHandler()
	created, err := handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if created {
		logger.InfoContext(ctx, "Bootstrap administrator created", "cpf", cpf.String())
	}
	return nil
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}
