package http

import (
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func toLocationResponse(l kernel.Location) servers.Location {
	return servers.Location{
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func toDeliveryResponse(view queries.DeliveryView) servers.Delivery {
	d := servers.Delivery{
		Id:          view.ID.Bytes(),
		RecipientId: view.RecipientID.Bytes(),
		AdminId:     view.AdminID.Bytes(),
		Status:      servers.DeliveryStatus(view.Status.String()),
		PhotoUrl:    view.PhotoURL,
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
	if view.CourierID != nil {
		courierID := view.CourierID.Bytes()
		d.DeliverymanId = &courierID
	}
	return d
}
