// Package telegram is the chat-command surface. It speaks the webhook
// protocol passively: every update is answered with a sendMessage payload in
// the webhook response, no outbound API calls.
package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommandName identifies one supported chat command.
type CommandName int

const (
	// CommandUnknown is anything the parser does not recognize.
	CommandUnknown CommandName = iota

	// CommandStart greets the user and lists the commands.
	CommandStart

	// CommandMenu lists the orderable canteen menu.
	CommandMenu

	// CommandStatus tracks one fulfillment by ID.
	CommandStatus

	// CommandOrder places a single-item canteen order.
	CommandOrder
)

// Command is one parsed chat command with its arguments.
type Command struct {
	Name CommandName

	// FulfillmentID is set for /status.
	FulfillmentID string

	// ItemID and Quantity are set for /order.
	ItemID   string
	Quantity int
}

var errNotACommand = errors.New("message is not a command")

// parseCommand turns a raw chat message into a Command.
//
//	/start
//	/menu
//	/status <fulfillment-id>
//	/order <item-id>x<qty>
func parseCommand(text string) (Command, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}, errNotACommand
	}

	fields := strings.Fields(text)
	switch fields[0] {
	case "/start":
		return Command{Name: CommandStart}, nil

	case "/menu":
		return Command{Name: CommandMenu}, nil

	case "/status":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: /status <id>")
		}
		return Command{Name: CommandStatus, FulfillmentID: fields[1]}, nil

	case "/order":
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("usage: /order <item>x<qty>")
		}

		itemID, quantity, err := parseOrderArgument(fields[1])
		if err != nil {
			return Command{}, err
		}
		return Command{Name: CommandOrder, ItemID: itemID, Quantity: quantity}, nil

	default:
		return Command{Name: CommandUnknown}, nil
	}
}

// parseOrderArgument splits "<item>x<qty>" on the last 'x' so that item
// identifiers containing the letter stay intact.
func parseOrderArgument(argument string) (string, int, error) {
	split := strings.LastIndex(argument, "x")
	if split <= 0 || split == len(argument)-1 {
		return "", 0, fmt.Errorf("usage: /order <item>x<qty>")
	}

	quantity, err := strconv.Atoi(argument[split+1:])
	if err != nil || quantity < 1 {
		return "", 0, fmt.Errorf("quantity must be a positive number")
	}

	return argument[:split], quantity, nil
}
