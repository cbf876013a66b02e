package http

import (
	"context"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/ports"
)

// CommandHandler is a use case that only reports failure.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler is a use case that returns a value.
type ResultHandler[C any, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers are the use cases reachable over HTTP.
type Handlers struct {
	Authenticate  ResultHandler[commands.AuthenticateCommand, ports.IssuedToken]
	RevokeSession CommandHandler[commands.RevokeSessionCommand]

	CreateUser CommandHandler[commands.CreateUserCommand]
	UpdateUser CommandHandler[commands.UpdateUserCommand]
	DeleteUser CommandHandler[commands.DeleteUserCommand]
	GetUser    ResultHandler[queries.GetUserQuery, queries.GetUserQueryResponse]

	CreateRecipient CommandHandler[commands.CreateRecipientCommand]
	UpdateRecipient CommandHandler[commands.UpdateRecipientCommand]
	DeleteRecipient CommandHandler[commands.DeleteRecipientCommand]
	GetRecipient    ResultHandler[queries.GetRecipientQuery, queries.GetRecipientQueryResponse]

	CreateDelivery        CommandHandler[commands.CreateDeliveryCommand]
	UpdateDelivery        CommandHandler[commands.UpdateDeliveryCommand]
	DeleteDelivery        CommandHandler[commands.DeleteDeliveryCommand]
	TransitionDelivery    ResultHandler[commands.TransitionDeliveryCommand, delivery.Status]
	GetDelivery           ResultHandler[queries.GetDeliveryQuery, queries.DeliveryView]
	ListCourierDeliveries ResultHandler[queries.ListCourierDeliveriesQuery, []queries.DeliveryView]
	GetNearbyDeliveries   ResultHandler[queries.GetNearbyDeliveriesQuery, []queries.NearbyDelivery]
}
