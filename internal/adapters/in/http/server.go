// Package http is the JSON surface of the lifecycle engine. Handlers shape
// requests into commands and queries, map the error taxonomy onto status
// codes, and never touch storage directly.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/application/usecases/queries"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
	"campus/internal/pkg/errs"
)

// Error is the JSON error body every failing endpoint returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	createPrintJobHandler    commands.CreatePrintJobCommandHandler
	transitionHandler        commands.TransitionCommandHandler
	markPaidHandler          commands.MarkPaidCommandHandler
	readNotificationsHandler commands.ReadNotificationsCommandHandler
	addMenuItemHandler       commands.AddMenuItemCommandHandler
	setAvailabilityHandler   commands.SetMenuItemAvailabilityCommandHandler

	// Query handlers
	trackHandler          queries.TrackFulfillmentQueryHandler
	queueEstimateHandler  queries.QueueEstimateQueryHandler
	fulfillerQueueHandler queries.FulfillerQueueQueryHandler
	historyHandler        queries.RequesterHistoryQueryHandler
	getMenuHandler        queries.GetMenuQueryHandler
	statsHandler          queries.StatsQueryHandler

	// upiAddress is the payee virtual address embedded in payment intents.
	upiAddress string
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	createPrintJobHandler commands.CreatePrintJobCommandHandler,
	transitionHandler commands.TransitionCommandHandler,
	markPaidHandler commands.MarkPaidCommandHandler,
	readNotificationsHandler commands.ReadNotificationsCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	setAvailabilityHandler commands.SetMenuItemAvailabilityCommandHandler,
	trackHandler queries.TrackFulfillmentQueryHandler,
	queueEstimateHandler queries.QueueEstimateQueryHandler,
	fulfillerQueueHandler queries.FulfillerQueueQueryHandler,
	historyHandler queries.RequesterHistoryQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	statsHandler queries.StatsQueryHandler,
	upiAddress string,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		createPrintJobHandler:    createPrintJobHandler,
		transitionHandler:        transitionHandler,
		markPaidHandler:          markPaidHandler,
		readNotificationsHandler: readNotificationsHandler,
		addMenuItemHandler:       addMenuItemHandler,
		setAvailabilityHandler:   setAvailabilityHandler,
		trackHandler:             trackHandler,
		queueEstimateHandler:     queueEstimateHandler,
		fulfillerQueueHandler:    fulfillerQueueHandler,
		historyHandler:           historyHandler,
		getMenuHandler:           getMenuHandler,
		statsHandler:             statsHandler,
		upiAddress:               upiAddress,
	}
}

// RegisterRoutes mounts the API under /api/v1. Menu and queue estimate are
// public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret string) {
	api := e.Group("/api/v1")

	api.GET("/menu", s.GetMenu)
	api.GET("/queue/estimate", s.GetQueueEstimate)

	authed := api.Group("", ActorMiddleware(jwtSecret))
	authed.POST("/orders", s.CreateOrder)
	authed.POST("/print-jobs", s.CreatePrintJob)
	authed.GET("/fulfillments/:fulfillmentId", s.TrackFulfillment)
	authed.POST("/fulfillments/:fulfillmentId/actions", s.ApplyAction)
	authed.POST("/fulfillments/:fulfillmentId/paid", s.MarkPaid)
	authed.GET("/vendor/queue", s.GetVendorQueue)
	authed.GET("/history", s.GetHistory)
	authed.GET("/notifications", s.GetNotifications)
	authed.POST("/menu/items", s.AddMenuItem)
	authed.PATCH("/menu/items/:itemId/availability", s.SetMenuItemAvailability)
	authed.GET("/pay/upi/:fulfillmentId", s.GetPaymentIntent)
	authed.GET("/admin/stats", s.GetAdminStats)
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(c echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, Error{Code: code, Message: err.Error()})
}

type cartItemRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

type newOrderRequest struct {
	Items []cartItemRequest `json:"items"`
}

type createdResponse struct {
	ID string `json:"id"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var request newOrderRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cartLines := make([]fulfillment.CartLine, 0, len(request.Items))
	for _, item := range request.Items {
		itemID, itemErr := kernel.UUIDFromString(item.ItemID)
		if itemErr != nil {
			return writeError(c, itemErr)
		}

		line, lineErr := fulfillment.NewCartLine(itemID, item.Quantity)
		if lineErr != nil {
			return writeError(c, lineErr)
		}
		cartLines = append(cartLines, line)
	}

	cart, err := fulfillment.NewCart(cartLines)
	if err != nil {
		return writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID(), cart)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: orderID.String()})
}

type newPrintJobRequest struct {
	VendorID    string `json:"vendor_id"`
	DocumentRef string `json:"document_ref"`
	Copies      int    `json:"copies"`
	ColorMode   string `json:"color_mode"`
	Binding     string `json:"binding"`
}

// CreatePrintJob handles POST /api/v1/print-jobs.
func (s *Server) CreatePrintJob(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var request newPrintJobRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	vendorID, err := kernel.UUIDFromString(request.VendorID)
	if err != nil {
		return writeError(c, err)
	}

	colorMode, err := fulfillment.ColorModeFromString(request.ColorMode)
	if err != nil {
		return writeError(c, err)
	}

	binding := fulfillment.BindingNone
	if request.Binding != "" {
		binding, err = fulfillment.BindingFromString(request.Binding)
		if err != nil {
			return writeError(c, err)
		}
	}

	spec, err := fulfillment.NewPrintSpec(request.DocumentRef, request.Copies, colorMode, binding)
	if err != nil {
		return writeError(c, err)
	}

	jobID := kernel.NewUUID()
	cmd, err := commands.NewCreatePrintJobCommand(jobID, actor.ID(), vendorID, spec)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createPrintJobHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: jobID.String()})
}

type fulfillmentResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	Paid       bool      `json:"paid"`
	PickupCode string    `json:"pickup_code"`
	AmountDue  string    `json:"amount_due"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrackFulfillment handles GET /api/v1/fulfillments/:fulfillmentId.
func (s *Server) TrackFulfillment(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	fulfillmentID, err := kernel.UUIDFromString(c.Param("fulfillmentId"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewTrackFulfillmentQuery(fulfillmentID, actor.ID())
	if err != nil {
		return writeError(c, err)
	}

	state, err := s.trackHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fulfillmentResponse{
		ID:         state.ID.String(),
		Kind:       state.Kind,
		Status:     state.Status,
		Paid:       state.Paid,
		PickupCode: state.PickupCode,
		AmountDue:  state.AmountDue.String(),
		CreatedAt:  state.CreatedAt,
	})
}

type actionRequest struct {
	Action string `json:"action"`
}

// ApplyAction handles POST /api/v1/fulfillments/:fulfillmentId/actions.
func (s *Server) ApplyAction(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	fulfillmentID, err := kernel.UUIDFromString(c.Param("fulfillmentId"))
	if err != nil {
		return writeError(c, err)
	}

	var request actionRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	action, err := fulfillment.ActionFromString(request.Action)
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewTransitionCommand(fulfillmentID, actor, action)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.transitionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkPaid handles POST /api/v1/fulfillments/:fulfillmentId/paid.
func (s *Server) MarkPaid(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	fulfillmentID, err := kernel.UUIDFromString(c.Param("fulfillmentId"))
	if err != nil {
		return writeError(c, err)
	}

	cmd, err := commands.NewMarkPaidCommand(fulfillmentID, actor)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.markPaidHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type queueLineResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type queueEntryResponse struct {
	fulfillmentResponse
	Lines        []queueLineResponse `json:"lines,omitempty"`
	PrintSummary string              `json:"print_summary,omitempty"`
}

func queueEntriesToResponse(entries []queries.FulfillerQueueQueryResponse) []queueEntryResponse {
	response := make([]queueEntryResponse, 0, len(entries))
	for _, entry := range entries {
		item := queueEntryResponse{
			fulfillmentResponse: fulfillmentResponse{
				ID:         entry.ID.String(),
				Kind:       entry.Kind,
				Status:     entry.Status,
				Paid:       entry.Paid,
				PickupCode: entry.PickupCode,
				AmountDue:  entry.AmountDue.String(),
				CreatedAt:  entry.CreatedAt,
			},
			PrintSummary: entry.PrintSummary,
		}
		for _, line := range entry.Lines {
			item.Lines = append(item.Lines, queueLineResponse{
				Name:     line.Name,
				Quantity: line.Quantity,
			})
		}
		response = append(response, item)
	}
	return response
}

// GetVendorQueue handles GET /api/v1/vendor/queue.
func (s *Server) GetVendorQueue(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if !actor.IsVendor() {
		return writeError(c, errs.NewForbiddenError(actor.ID().String(), "vendor queue"))
	}

	query, err := queries.NewFulfillerQueueQuery(actor.ID(), actor.Scope())
	if err != nil {
		return writeError(c, err)
	}

	queue, err := s.fulfillerQueueHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, queueEntriesToResponse(queue))
}

// GetHistory handles GET /api/v1/history.
func (s *Server) GetHistory(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewRequesterHistoryQuery(actor.ID())
	if err != nil {
		return writeError(c, err)
	}

	history, err := s.historyHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, queueEntriesToResponse(history))
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	WasUnread bool      `json:"was_unread"`
	CreatedAt time.Time `json:"created_at"`
}

// GetNotifications handles GET /api/v1/notifications. Listing marks
// everything read; the response carries the pre-sweep unread flags.
func (s *Server) GetNotifications(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	cmd, err := commands.NewReadNotificationsCommand(actor.ID())
	if err != nil {
		return writeError(c, err)
	}

	inbox, err := s.readNotificationsHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]notificationResponse, 0, len(inbox))
	for _, n := range inbox {
		response = append(response, notificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			WasUnread: n.WasUnread,
			CreatedAt: n.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, response)
}

type menuItemResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	query := queries.NewGetMenuQuery()

	items, err := s.getMenuHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemResponse{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price.String(),
		})
	}

	return c.JSON(http.StatusOK, response)
}

type newMenuItemRequest struct {
	Name       string `json:"name"`
	PricePaise int64  `json:"price_paise"`
}

// AddMenuItem handles POST /api/v1/menu/items.
func (s *Server) AddMenuItem(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var request newMenuItemRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	price, err := kernel.NewMoney(request.PricePaise)
	if err != nil {
		return writeError(c, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(itemID, actor, request.Name, price)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.addMenuItemHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: itemID.String()})
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetMenuItemAvailability handles PATCH /api/v1/menu/items/:itemId/availability.
func (s *Server) SetMenuItemAvailability(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	itemID, err := kernel.UUIDFromString(c.Param("itemId"))
	if err != nil {
		return writeError(c, err)
	}

	var request availabilityRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSetMenuItemAvailabilityCommand(itemID, actor, request.Available)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.setAvailabilityHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetQueueEstimate handles GET /api/v1/queue/estimate.
func (s *Server) GetQueueEstimate(c echo.Context) error {
	query := queries.NewQueueEstimateQuery()

	estimate, err := s.queueEstimateHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{
		"orders_ahead":           estimate.OrdersAhead,
		"estimated_wait_minutes": int(estimate.EstimatedWait.Minutes()),
	})
}

type paymentIntentResponse struct {
	UPIURL string `json:"upi_url"`
}

// GetPaymentIntent handles GET /api/v1/pay/upi/:fulfillmentId. Builds a UPI
// deep link for the amount due; the owner check rides on the tracking query.
func (s *Server) GetPaymentIntent(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	fulfillmentID, err := kernel.UUIDFromString(c.Param("fulfillmentId"))
	if err != nil {
		return writeError(c, err)
	}

	query, err := queries.NewTrackFulfillmentQuery(fulfillmentID, actor.ID())
	if err != nil {
		return writeError(c, err)
	}

	state, err := s.trackHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	upiURL := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%s&cu=INR&tn=%s",
		url.QueryEscape(s.upiAddress),
		url.QueryEscape("Campus Services"),
		state.AmountDue.String(),
		url.QueryEscape("fulfillment "+state.ID.String()),
	)

	return c.JSON(http.StatusOK, paymentIntentResponse{UPIURL: upiURL})
}

type statsResponse struct {
	TotalUsers          int            `json:"total_users"`
	TotalFulfillments   int            `json:"total_fulfillments"`
	FulfillmentsByState map[string]int `json:"fulfillments_by_state"`
	UnreadNotifications int            `json:"unread_notifications"`
}

// GetAdminStats handles GET /api/v1/admin/stats.
func (s *Server) GetAdminStats(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewStatsQuery(actor)
	if err != nil {
		return writeError(c, err)
	}

	stats, err := s.statsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, statsResponse{
		TotalUsers:          stats.TotalUsers,
		TotalFulfillments:   stats.TotalFulfillments,
		FulfillmentsByState: stats.FulfillmentsByState,
		UnreadNotifications: stats.UnreadNotifications,
	})
}
