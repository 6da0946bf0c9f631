package telegram

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"campus/internal/core/application/usecases/commands"
	"campus/internal/core/application/usecases/queries"
	"campus/internal/core/domain/model/fulfillment"
	"campus/internal/core/domain/model/kernel"
)

// update is the subset of the Telegram webhook payload the bot reads.
type update struct {
	Message struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

// sendMessage is a passive webhook reply. Returning it as the response body
// makes Telegram deliver the text without a separate API call.
type sendMessage struct {
	Method string `json:"method"`
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// Webhook translates chat commands into core calls. Orders placed through
// chat run on behalf of one configured student account; the bot is a campus
// kiosk, not a personal client.
type Webhook struct {
	createOrderHandler commands.CreateOrderCommandHandler
	trackHandler       queries.TrackFulfillmentQueryHandler
	getMenuHandler     queries.GetMenuQueryHandler
	defaultStudentID   kernel.UUID
	logger             *slog.Logger
}

// NewWebhook creates the chat-command surface.
func NewWebhook(
	createOrderHandler commands.CreateOrderCommandHandler,
	trackHandler queries.TrackFulfillmentQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	defaultStudentID kernel.UUID,
	logger *slog.Logger,
) *Webhook {
	return &Webhook{
		createOrderHandler: createOrderHandler,
		trackHandler:       trackHandler,
		getMenuHandler:     getMenuHandler,
		defaultStudentID:   defaultStudentID,
		logger:             logger,
	}
}

// Handle processes POST /telegram/webhook. Always answers 200 with a
// sendMessage body; errors become chat text, not HTTP failures, so Telegram
// never retries.
func (w *Webhook) Handle(c echo.Context) error {
	var u update
	if err := c.Bind(&u); err != nil {
		return c.NoContent(http.StatusOK)
	}

	cmd, err := parseCommand(u.Message.Text)
	if err != nil {
		return w.reply(c, u.Message.Chat.ID, err.Error())
	}

	var text string
	switch cmd.Name {
	case CommandStart:
		text = "Welcome to campus services!\n" +
			"/menu — today's canteen menu\n" +
			"/order <item>x<qty> — place an order\n" +
			"/status <id> — track an order"
	case CommandMenu:
		text = w.menuText(c)
	case CommandStatus:
		text = w.statusText(c, cmd.FulfillmentID)
	case CommandOrder:
		text = w.orderText(c, cmd)
	default:
		text = "Unknown command. Try /start."
	}

	return w.reply(c, u.Message.Chat.ID, text)
}

func (w *Webhook) reply(c echo.Context, chatID int64, text string) error {
	return c.JSON(http.StatusOK, sendMessage{
		Method: "sendMessage",
		ChatID: chatID,
		Text:   text,
	})
}

func (w *Webhook) menuText(c echo.Context) string {
	items, err := w.getMenuHandler.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		w.logger.Warn("chat menu lookup failed", "error", err)
		return "Menu is unavailable right now."
	}
	if len(items) == 0 {
		return "Nothing on the menu today."
	}

	var b strings.Builder
	b.WriteString("Today's menu:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "%s — %s (%s)\n", item.Name, item.Price, item.ID)
	}
	return b.String()
}

func (w *Webhook) statusText(c echo.Context, rawID string) string {
	fulfillmentID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return "That does not look like a valid id."
	}

	query, err := queries.NewTrackFulfillmentQuery(fulfillmentID, w.defaultStudentID)
	if err != nil {
		return "That does not look like a valid id."
	}

	state, err := w.trackHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return "Could not find that order."
	}

	text := fmt.Sprintf("Status: %s", state.Status)
	if state.Status == "Ready" {
		text += fmt.Sprintf("\nPickup code: %s", state.PickupCode)
	}
	return text
}

func (w *Webhook) orderText(c echo.Context, cmd Command) string {
	itemID, err := kernel.UUIDFromString(cmd.ItemID)
	if err != nil {
		return "Unknown item. Use the id shown by /menu."
	}

	line, err := fulfillment.NewCartLine(itemID, cmd.Quantity)
	if err != nil {
		return "Could not place that order."
	}

	cart, err := fulfillment.NewCart([]fulfillment.CartLine{line})
	if err != nil {
		return "Could not place that order."
	}

	orderID := kernel.NewUUID()
	orderCmd, err := commands.NewCreateOrderCommand(orderID, w.defaultStudentID, cart)
	if err != nil {
		return "Could not place that order."
	}

	if err = w.createOrderHandler.Handle(c.Request().Context(), orderCmd); err != nil {
		w.logger.Warn("chat order failed", "error", err)
		return "Could not place that order. Is the item on today's menu?"
	}

	return fmt.Sprintf("Order placed!\nTrack it with /status %s", orderID)
}
