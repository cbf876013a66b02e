package http

import (
	"errors"
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/generated/servers"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers

	// onTransition observes every committed workflow transition by resulting status
	onTransition func(status delivery.Status)
}

func NewServer(handlers Handlers, onTransition func(status delivery.Status)) *Server {
	if onTransition == nil {
		onTransition = func(delivery.Status) {}
	}
	return &Server{
		handlers:     handlers,
		onTransition: onTransition,
	}
}

// CreateSession handles POST /api/v1/sessions.
func (s *Server) CreateSession(ctx echo.Context) error {
	var body servers.NewSession
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cpf, err := kernel.NewCPF(body.Cpf)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAuthenticateCommand(cpf, body.Password)
	if err != nil {
		return err
	}

	issued, err := s.handlers.Authenticate.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrNotAuthorized) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Session{AccessToken: issued.AccessToken})
}

// DeleteSession handles DELETE /api/v1/sessions.
func (s *Server) DeleteSession(ctx echo.Context) error {
	claims, ok := claimsFrom(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewRevokeSessionCommand(claims)
	if err != nil {
		return err
	}
	if err = s.handlers.RevokeSession.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var body servers.NewAccount
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cpf, err := kernel.NewCPF(body.Cpf)
	if err != nil {
		return err
	}
	role, err := access.ParseRole(string(body.Role))
	if err != nil {
		return err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateUserCommand(CallerFrom(ctx), userID, body.Name, cpf, body.Password, role)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: userID.Bytes()})
}

// GetAccount handles GET /api/v1/accounts/{id}.
func (s *Server) GetAccount(ctx echo.Context, id servers.Id) error {
	userID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(CallerFrom(ctx), userID)
	if err != nil {
		return err
	}
	u, err := s.handlers.GetUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Account{
		Id:        u.ID.Bytes(),
		Name:      u.Name,
		Cpf:       u.CPF,
		Role:      servers.Role(u.Role.String()),
		CreatedAt: u.CreatedAt,
	})
}

// UpdateAccount handles PUT /api/v1/accounts/{id}.
func (s *Server) UpdateAccount(ctx echo.Context, id servers.Id) error {
	userID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	var body servers.UpdateAccount
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	changes := commands.UserChanges{
		Name:     body.Name,
		Password: body.Password,
	}
	if body.Cpf != nil {
		cpf, cpfErr := kernel.NewCPF(*body.Cpf)
		if cpfErr != nil {
			return cpfErr
		}
		changes.CPF = &cpf
	}
	if body.Role != nil {
		role, roleErr := access.ParseRole(string(*body.Role))
		if roleErr != nil {
			return roleErr
		}
		changes.Role = &role
	}

	cmd, err := commands.NewUpdateUserCommand(CallerFrom(ctx), userID, changes)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteAccount handles DELETE /api/v1/accounts/{id}.
func (s *Server) DeleteAccount(ctx echo.Context, id servers.Id) error {
	userID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(CallerFrom(ctx), userID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRecipient handles POST /api/v1/recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var body servers.NewRecipient
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cpf, err := kernel.NewCPF(body.Cpf)
	if err != nil {
		return err
	}
	location, err := kernel.NewLocation(body.Location.Latitude, body.Location.Longitude)
	if err != nil {
		return err
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(CallerFrom(ctx), recipientID, body.Name, cpf, body.Address, location)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: recipientID.Bytes()})
}

// GetRecipient handles GET /api/v1/recipients/{id}.
func (s *Server) GetRecipient(ctx echo.Context, id servers.Id) error {
	recipientID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetRecipientQuery(CallerFrom(ctx), recipientID)
	if err != nil {
		return err
	}
	r, err := s.handlers.GetRecipient.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.Recipient{
		Id:       r.ID.Bytes(),
		Name:     r.Name,
		Cpf:      r.CPF,
		Address:  r.Address,
		Location: toLocationResponse(r.Location),
	})
}

// UpdateRecipient handles PUT /api/v1/recipients/{id}.
func (s *Server) UpdateRecipient(ctx echo.Context, id servers.Id) error {
	recipientID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	var body servers.UpdateRecipient
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	changes := commands.RecipientChanges{
		Name:    body.Name,
		Address: body.Address,
	}
	if body.Cpf != nil {
		cpf, cpfErr := kernel.NewCPF(*body.Cpf)
		if cpfErr != nil {
			return cpfErr
		}
		changes.CPF = &cpf
	}
	if body.Location != nil {
		location, locErr := kernel.NewLocation(body.Location.Latitude, body.Location.Longitude)
		if locErr != nil {
			return locErr
		}
		changes.Location = &location
	}

	cmd, err := commands.NewUpdateRecipientCommand(CallerFrom(ctx), recipientID, changes)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRecipient handles DELETE /api/v1/recipients/{id}.
func (s *Server) DeleteRecipient(ctx echo.Context, id servers.Id) error {
	recipientID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteRecipientCommand(CallerFrom(ctx), recipientID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteRecipient.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body servers.NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	recipientID, err := toKernelUUID(body.RecipientId)
	if err != nil {
		return err
	}
	courierID, err := toOptionalKernelUUID(body.DeliverymanId)
	if err != nil {
		return err
	}
	status := delivery.Unknown
	if body.Status != nil {
		if status, err = delivery.ParseStatus(string(*body.Status)); err != nil {
			return err
		}
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(CallerFrom(ctx), deliveryID, recipientID, courierID, status, body.PhotoUrl)
	if err != nil {
		return err
	}
	if err = s.handlers.CreateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: deliveryID.Bytes()})
}

// GetDelivery handles GET /api/v1/deliveries/{id}.
func (s *Server) GetDelivery(ctx echo.Context, id servers.Id) error {
	deliveryID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryQuery(CallerFrom(ctx), deliveryID)
	if err != nil {
		return err
	}
	view, err := s.handlers.GetDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toDeliveryResponse(view))
}

// UpdateDelivery handles PUT /api/v1/deliveries/{id}.
func (s *Server) UpdateDelivery(ctx echo.Context, id servers.Id) error {
	deliveryID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	var body servers.UpdateDelivery
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	changes := commands.DeliveryChanges{PhotoURL: body.PhotoUrl}
	if changes.RecipientID, err = toOptionalKernelUUID(body.RecipientId); err != nil {
		return err
	}
	if changes.CourierID, err = toOptionalKernelUUID(body.DeliverymanId); err != nil {
		return err
	}
	if body.Status != nil {
		status, statusErr := delivery.ParseStatus(string(*body.Status))
		if statusErr != nil {
			return statusErr
		}
		changes.Status = &status
	}

	cmd, err := commands.NewUpdateDeliveryCommand(CallerFrom(ctx), deliveryID, changes)
	if err != nil {
		return err
	}
	if err = s.handlers.UpdateDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteDelivery handles DELETE /api/v1/deliveries/{id}.
func (s *Server) DeleteDelivery(ctx echo.Context, id servers.Id) error {
	deliveryID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDeliveryCommand(CallerFrom(ctx), deliveryID)
	if err != nil {
		return err
	}
	if err = s.handlers.DeleteDelivery.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDeliveryAvailable handles PUT /api/v1/deliveries/{id}/available.
func (s *Server) MarkDeliveryAvailable(ctx echo.Context, id servers.Id) error {
	return s.transition(ctx, id, commands.NewMarkDeliveryAvailableCommand)
}

// WithdrawDelivery handles PUT /api/v1/deliveries/{id}/withdrawal.
func (s *Server) WithdrawDelivery(ctx echo.Context, id servers.Id) error {
	return s.transition(ctx, id, commands.NewWithdrawDeliveryCommand)
}

// CompleteDelivery handles PUT /api/v1/deliveries/{id}/completed.
func (s *Server) CompleteDelivery(ctx echo.Context, id servers.Id) error {
	return s.transition(ctx, id, commands.NewCompleteDeliveryCommand)
}

// ReturnDelivery handles PUT /api/v1/deliveries/{id}/returned.
func (s *Server) ReturnDelivery(ctx echo.Context, id servers.Id) error {
	return s.transition(ctx, id, commands.NewReturnDeliveryCommand)
}

func (s *Server) transition(
	ctx echo.Context,
	id servers.Id,
	newCommand func(access.Caller, kernel.UUID) (commands.TransitionDeliveryCommand, error),
) error {
	deliveryID, err := toKernelUUID(id)
	if err != nil {
		return err
	}

	cmd, err := newCommand(CallerFrom(ctx), deliveryID)
	if err != nil {
		return err
	}
	status, err := s.handlers.TransitionDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	s.onTransition(status)

	return ctx.NoContent(http.StatusNoContent)
}

// ListCourierDeliveries handles GET /api/v1/couriers/me/deliveries.
func (s *Server) ListCourierDeliveries(ctx echo.Context) error {
	query, err := queries.NewListCourierDeliveriesQuery(CallerFrom(ctx))
	if err != nil {
		return err
	}
	views, err := s.handlers.ListCourierDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Delivery, len(views))
	for i, view := range views {
		response[i] = toDeliveryResponse(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearbyDeliveries handles GET /api/v1/nearby/deliveries.
func (s *Server) GetNearbyDeliveries(ctx echo.Context, params servers.GetNearbyDeliveriesParams) error {
	query, err := queries.NewGetNearbyDeliveriesQuery(CallerFrom(ctx), params.Lat, params.Lng)
	if err != nil {
		return err
	}
	nearby, err := s.handlers.GetNearbyDeliveries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.NearbyDelivery, len(nearby))
	for i, n := range nearby {
		d := toDeliveryResponse(n.DeliveryView)
		response[i] = servers.NearbyDelivery{
			Id:            d.Id,
			RecipientId:   d.RecipientId,
			AdminId:       d.AdminId,
			DeliverymanId: d.DeliverymanId,
			Status:        d.Status,
			PhotoUrl:      d.PhotoUrl,
			CreatedAt:     d.CreatedAt,
			UpdatedAt:     d.UpdatedAt,
			Location:      toLocationResponse(n.Location),
			DistanceKm:    n.DistanceKm,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
