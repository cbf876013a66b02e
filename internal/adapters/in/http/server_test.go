package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fastfeet/api"
	fastfeethttp "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/access"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/generated/servers"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	e *echo.Echo

	tokens   *MockTokenVerifier
	revoker  *MockTokenRevoker
	resolver *MockResultHandler[queries.ResolveCallerQuery, access.Caller]

	authenticate    *MockResultHandler[commands.AuthenticateCommand, ports.IssuedToken]
	revokeSession   *MockCommandHandler[commands.RevokeSessionCommand]
	createUser      *MockCommandHandler[commands.CreateUserCommand]
	deleteRecipient *MockCommandHandler[commands.DeleteRecipientCommand]
	createDelivery  *MockCommandHandler[commands.CreateDeliveryCommand]
	transition      *MockResultHandler[commands.TransitionDeliveryCommand, delivery.Status]
	getDelivery     *MockResultHandler[queries.GetDeliveryQuery, queries.DeliveryView]
	nearby          *MockResultHandler[queries.GetNearbyDeliveriesQuery, []queries.NearbyDelivery]

	transitions  []delivery.Status
	authFailures int
	routes       []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		tokens:          &MockTokenVerifier{},
		revoker:         &MockTokenRevoker{},
		resolver:        &MockResultHandler[queries.ResolveCallerQuery, access.Caller]{},
		authenticate:    &MockResultHandler[commands.AuthenticateCommand, ports.IssuedToken]{},
		revokeSession:   &MockCommandHandler[commands.RevokeSessionCommand]{},
		createUser:      &MockCommandHandler[commands.CreateUserCommand]{},
		deleteRecipient: &MockCommandHandler[commands.DeleteRecipientCommand]{},
		createDelivery:  &MockCommandHandler[commands.CreateDeliveryCommand]{},
		transition:      &MockResultHandler[commands.TransitionDeliveryCommand, delivery.Status]{},
		getDelivery:     &MockResultHandler[queries.GetDeliveryQuery, queries.DeliveryView]{},
		nearby:          &MockResultHandler[queries.GetNearbyDeliveriesQuery, []queries.NearbyDelivery]{},
	}

	server := fastfeethttp.NewServer(fastfeethttp.Handlers{
		Authenticate:        f.authenticate,
		RevokeSession:       f.revokeSession,
		CreateUser:          f.createUser,
		DeleteRecipient:     f.deleteRecipient,
		CreateDelivery:      f.createDelivery,
		TransitionDelivery:  f.transition,
		GetDelivery:         f.getDelivery,
		GetNearbyDeliveries: f.nearby,
	}, func(status delivery.Status) {
		f.transitions = append(f.transitions, status)
	})

	swagger, err := api.GetSwagger()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authenticator := fastfeethttp.NewAuthenticator(f.tokens, f.revoker, f.resolver, func() { f.authFailures++ })

	f.e, err = fastfeethttp.NewRouter(server, fastfeethttp.RouterConfig{
		Logger:        logger,
		Swagger:       swagger,
		Authenticator: authenticator,
		ObserveRequest: func(route string, _ string, _ int, _ time.Duration) {
			f.routes = append(f.routes, route)
		},
	})
	require.NoError(t, err)

	return f
}

// signIn makes "token-<role>" resolve to a fresh caller with role.
func (f *fixture) signIn(t *testing.T, role access.Role) (string, access.Caller) {
	t.Helper()

	caller, err := access.NewCaller(kernel.NewUUID(), role)
	require.NoError(t, err)

	token := "token-" + role.String()
	claims := ports.SessionClaims{UserID: caller.ID(), TokenID: "jti-" + role.String(), ExpiresAt: time.Now().Add(time.Hour)}

	f.tokens.On("Verify", token).Return(claims, nil)
	f.revoker.On("IsRevoked", mock.Anything, claims.TokenID).Return(false, nil)
	f.resolver.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ResolveCallerQuery) bool {
		return q.UserID().IsEqual(caller.ID())
	})).Return(caller, nil)

	return token, caller
}

func (f *fixture) do(method string, path string, body string, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthentication_MissingToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/couriers/me/deliveries", "", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusUnauthorized, decodeError(t, rec).Code)
	assert.Equal(t, 1, f.authFailures)
	f.tokens.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestAuthentication_InvalidToken(t *testing.T) {
	f := newFixture(t)
	f.tokens.On("Verify", "forged").Return(ports.SessionClaims{}, errs.NewNotAuthorizedError("verify token", "invalid token"))

	rec := f.do(http.MethodGet, "/api/v1/couriers/me/deliveries", "", "forged")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", decodeError(t, rec).Message)
	f.revoker.AssertNotCalled(t, "IsRevoked", mock.Anything, mock.Anything)
}

func TestAuthentication_RevokedToken(t *testing.T) {
	f := newFixture(t)
	claims := ports.SessionClaims{UserID: kernel.NewUUID(), TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.On("Verify", "revoked").Return(claims, nil)
	f.revoker.On("IsRevoked", mock.Anything, "jti").Return(true, nil)

	rec := f.do(http.MethodGet, "/api/v1/couriers/me/deliveries", "", "revoked")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token has been revoked", decodeError(t, rec).Message)
	f.resolver.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAuthentication_DeletedAccount(t *testing.T) {
	f := newFixture(t)
	claims := ports.SessionClaims{UserID: kernel.NewUUID(), TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.On("Verify", "orphan").Return(claims, nil)
	f.revoker.On("IsRevoked", mock.Anything, "jti").Return(false, nil)
	f.resolver.On("Handle", mock.Anything, mock.Anything).
		Return(access.Caller{}, errs.NewObjectNotFoundError("userID", claims.UserID))

	rec := f.do(http.MethodGet, "/api/v1/couriers/me/deliveries", "", "orphan")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, f.authFailures)
}

func TestAuthentication_RevocationStoreDown(t *testing.T) {
	f := newFixture(t)
	claims := ports.SessionClaims{UserID: kernel.NewUUID(), TokenID: "jti", ExpiresAt: time.Now().Add(time.Hour)}
	f.tokens.On("Verify", "token").Return(claims, nil)
	f.revoker.On("IsRevoked", mock.Anything, "jti").Return(false, errors.New("connection refused"))

	rec := f.do(http.MethodGet, "/api/v1/couriers/me/deliveries", "", "token")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, decodeError(t, rec).Message, "connection refused")
}

func TestValidation_MalformedIDRejectedBeforeStoreAccess(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPut, "/api/v1/deliveries/not-a-uuid/withdrawal", "", "anything")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "id")
	f.tokens.AssertNotCalled(t, "Verify", mock.Anything)
	f.transition.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestValidation_SchemaMismatch(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)

	rec := f.do(http.MethodPost, "/api/v1/accounts",
		`{"name":"Ana","cpf":"12345678901","password":"x","role":"MANAGER"}`, token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "request body")
	f.createUser.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestValidation_NearbyRequiresCoordinates(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleCourier)

	rec := f.do(http.MethodGet, "/api/v1/nearby/deliveries?lat=-23.55", "", token)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "lng")

	rec = f.do(http.MethodGet, "/api/v1/nearby/deliveries?lat=abc&lng=1", "", token)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	f.nearby.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateSession(t *testing.T) {
	f := newFixture(t)
	userID := kernel.NewUUID()
	f.authenticate.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AuthenticateCommand) bool {
		return cmd.CPF().String() == "12345678901" && cmd.Password() == "s3cret"
	})).Return(ports.IssuedToken{AccessToken: "signed", Claims: ports.SessionClaims{UserID: userID}}, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/sessions", `{"cpf":"123.456.789-01","password":"s3cret"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "signed", body.AccessToken)
	f.tokens.AssertNotCalled(t, "Verify", mock.Anything)
}

func TestCreateSession_InvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.authenticate.On("Handle", mock.Anything, mock.Anything).
		Return(ports.IssuedToken{}, commands.ErrInvalidCredentials).Once()

	rec := f.do(http.MethodPost, "/api/v1/sessions", `{"cpf":"12345678901","password":"wrong"}`, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeError(t, rec).Message)
}

func TestDeleteSession(t *testing.T) {
	f := newFixture(t)
	token, caller := f.signIn(t, access.RoleCourier)
	f.revokeSession.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.RevokeSessionCommand) bool {
		return cmd.Claims().TokenID == "jti-COURIER" && cmd.Claims().UserID.IsEqual(caller.ID())
	})).Return(nil).Once()

	rec := f.do(http.MethodDelete, "/api/v1/sessions", "", token)

	require.Equal(t, http.StatusNoContent, rec.Code)
	f.revokeSession.AssertExpectations(t)
}

func TestCreateAccount(t *testing.T) {
	f := newFixture(t)
	token, admin := f.signIn(t, access.RoleAdmin)
	f.createUser.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateUserCommand) bool {
		return cmd.Caller().ID().IsEqual(admin.ID()) && cmd.Role() == access.RoleCourier && cmd.Name() == "Ana"
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/accounts",
		`{"name":"Ana","cpf":"12345678901","password":"s3cret","role":"ENTREGADOR"}`, token)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body servers.CreatedResource
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEqual(t, [16]byte{}, [16]byte(body.Id))
	f.createUser.AssertExpectations(t)
}

func TestCreateAccount_DuplicateCPF(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)
	f.createUser.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewConflictError("cpf", "12345678901", "is already registered")).Once()

	rec := f.do(http.MethodPost, "/api/v1/accounts",
		`{"name":"Ana","cpf":"12345678901","password":"s3cret","role":"COURIER"}`, token)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, http.StatusConflict, decodeError(t, rec).Code)
}

func TestCreateAccount_BadCPF(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)

	rec := f.do(http.MethodPost, "/api/v1/accounts",
		`{"name":"Ana","cpf":"123","password":"s3cret","role":"COURIER"}`, token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	f.createUser.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCreateDelivery_CourierIsForbidden(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleCourier)
	f.createDelivery.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewNotAuthorizedError("create delivery", "caller is not an administrator")).Once()

	rec := f.do(http.MethodPost, "/api/v1/deliveries", `{"recipientId":"`+kernel.NewUUID().String()+`"}`, token)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateDelivery_PassesOptionalFields(t *testing.T) {
	f := newFixture(t)
	token, admin := f.signIn(t, access.RoleAdmin)
	recipientID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	f.createDelivery.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateDeliveryCommand) bool {
		return cmd.Caller().ID().IsEqual(admin.ID()) &&
			cmd.RecipientID().IsEqual(recipientID) &&
			cmd.CourierID() != nil && cmd.CourierID().IsEqual(courierID) &&
			cmd.Status() == delivery.PickedUp &&
			cmd.PhotoURL() != nil && *cmd.PhotoURL() == "https://cdn/p.jpg"
	})).Return(nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/deliveries",
		`{"recipientId":"`+recipientID.String()+`","deliverymanId":"`+courierID.String()+
			`","status":"RETIRADA","photoUrl":"https://cdn/p.jpg"}`, token)

	require.Equal(t, http.StatusCreated, rec.Code)
	f.createDelivery.AssertExpectations(t)
}

func TestWithdrawDelivery(t *testing.T) {
	f := newFixture(t)
	token, courier := f.signIn(t, access.RoleCourier)
	deliveryID := kernel.NewUUID()
	f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionDeliveryCommand) bool {
		return cmd.Transition() == commands.TransitionWithdraw &&
			cmd.DeliveryID().IsEqual(deliveryID) &&
			cmd.Caller().ID().IsEqual(courier.ID())
	})).Return(delivery.PickedUp, nil).Once()

	rec := f.do(http.MethodPut, "/api/v1/deliveries/"+deliveryID.String()+"/withdrawal", "", token)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []delivery.Status{delivery.PickedUp}, f.transitions)
	assert.Contains(t, f.routes, "/api/v1/deliveries/:id/withdrawal")
}

func TestTransitions_MapToCommands(t *testing.T) {
	cases := map[string]commands.Transition{
		"available": commands.TransitionMarkAvailable,
		"completed": commands.TransitionComplete,
		"returned":  commands.TransitionReturn,
	}

	for suffix, transition := range cases {
		t.Run(suffix, func(t *testing.T) {
			f := newFixture(t)
			token, _ := f.signIn(t, access.RoleAdmin)
			f.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionDeliveryCommand) bool {
				return cmd.Transition() == transition
			})).Return(delivery.Awaiting, nil).Once()

			rec := f.do(http.MethodPut, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/"+suffix, "", token)

			require.Equal(t, http.StatusNoContent, rec.Code)
			f.transition.AssertExpectations(t)
		})
	}
}

func TestWithdrawDelivery_LostRace(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleCourier)
	f.transition.On("Handle", mock.Anything, mock.Anything).
		Return(delivery.Unknown, errs.NewInvalidStateError("update delivery", "RETIRADA", "expected AGUARDANDO")).Once()

	rec := f.do(http.MethodPut, "/api/v1/deliveries/"+kernel.NewUUID().String()+"/withdrawal", "", token)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, http.StatusUnprocessableEntity, decodeError(t, rec).Code)
	assert.Empty(t, f.transitions)
}

func TestGetDelivery(t *testing.T) {
	f := newFixture(t)
	token, admin := f.signIn(t, access.RoleAdmin)
	courierID := kernel.NewUUID()
	view := queries.DeliveryView{
		ID:          kernel.NewUUID(),
		RecipientID: kernel.NewUUID(),
		AdminID:     admin.ID(),
		CourierID:   &courierID,
		Status:      delivery.PickedUp,
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}
	f.getDelivery.On("Handle", mock.Anything, mock.Anything).Return(view, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/deliveries/"+view.ID.String(), "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var body servers.Delivery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, view.ID.String(), body.Id.String())
	assert.Equal(t, servers.RETIRADA, body.Status)
	require.NotNil(t, body.DeliverymanId)
	assert.Equal(t, courierID.String(), body.DeliverymanId.String())
	assert.Nil(t, body.PhotoUrl)
}

func TestGetDelivery_NotFound(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)
	f.getDelivery.On("Handle", mock.Anything, mock.Anything).
		Return(queries.DeliveryView{}, errs.NewObjectNotFoundError("deliveryID", "x")).Once()

	rec := f.do(http.MethodGet, "/api/v1/deliveries/"+kernel.NewUUID().String(), "", token)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRecipient_StillReferenced(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)
	f.deleteRecipient.On("Handle", mock.Anything, mock.Anything).
		Return(errs.NewConflictError("recipientID", "x", "is referenced by deliveries")).Once()

	rec := f.do(http.MethodDelete, "/api/v1/recipients/"+kernel.NewUUID().String(), "", token)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetNearbyDeliveries(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleCourier)
	location, err := kernel.NewLocation(-23.5614, -46.6559)
	require.NoError(t, err)
	match := queries.NearbyDelivery{
		DeliveryView: queries.DeliveryView{
			ID:          kernel.NewUUID(),
			RecipientID: kernel.NewUUID(),
			AdminID:     kernel.NewUUID(),
			Status:      delivery.Awaiting,
		},
		Location:   location,
		DistanceKm: 1.9,
	}
	f.nearby.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetNearbyDeliveriesQuery) bool {
		return q.Origin().Latitude() == -23.5505 && q.Origin().Longitude() == -46.6333
	})).Return([]queries.NearbyDelivery{match}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/nearby/deliveries?lat=-23.5505&lng=-46.6333", "", token)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []servers.NearbyDelivery
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.InDelta(t, 1.9, body[0].DistanceKm, 1e-9)
	assert.InDelta(t, -23.5614, body[0].Location.Latitude, 1e-9)
	assert.Equal(t, servers.AGUARDANDO, body[0].Status)
}

func TestGetNearbyDeliveries_OutOfRange(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleCourier)

	rec := f.do(http.MethodGet, "/api/v1/nearby/deliveries?lat=91&lng=0", "", token)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	f.nearby.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestUnexpectedFailureIsHidden(t *testing.T) {
	f := newFixture(t)
	token, _ := f.signIn(t, access.RoleAdmin)
	f.getDelivery.On("Handle", mock.Anything, mock.Anything).
		Return(queries.DeliveryView{}, errors.New("pq: relation does not exist")).Once()

	rec := f.do(http.MethodGet, "/api/v1/deliveries/"+kernel.NewUUID().String(), "", token)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), decodeError(t, rec).Message)
}
