package commands

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
	ErrOwnerIsRequired = errors.New("owner id is required")
)

// CreateOrderCommand represents a request to create a new, empty order.
// The order starts with no pieces, zero totals, and NotStarted status;
// pieces are added afterwards with AddPieceCommand.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "user-1", "Birthday batch", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID string
	title   string
	dueDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and the owner and title are not empty;
// the due date is optional.
func NewCreateOrderCommand(orderID kernel.UUID, ownerID string, title string, dueDate *time.Time) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setTitle(title),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if dueDate != nil {
		due := *dueDate
		orderCommand.dueDate = &due
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the user the order belongs to.
func (c CreateOrderCommand) OwnerID() string {
	return c.ownerID
}

// Title returns the order's title.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// DueDate returns the optional due date.
func (c CreateOrderCommand) DueDate() *time.Time {
	return c.dueDate
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID string) error {
	if ownerID == "" {
		return ErrOwnerIsRequired
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
