// Package http exposes the printshop use cases over a JSON REST API.
// Handlers translate between HTTP and the command/query layer; all business
// rules live behind it. The owner of every request is taken from the
// X-Owner-ID header, which an upstream auth proxy is expected to fill.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/domain/model/product"
	"printshop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const ownerHeader = "X-Owner-ID"

// Handlers bundles the command and query handlers the server dispatches to.
type Handlers struct {
	CreateOrder           commands.CreateOrderCommandHandler
	AddPiece              commands.AddPieceCommandHandler
	DuplicatePiece        commands.DuplicatePieceCommandHandler
	RemovePiece           commands.RemovePieceCommandHandler
	SetPieceQuantity      commands.SetPieceQuantityCommandHandler
	SetPieceUnitPrice     commands.SetPieceUnitPriceCommandHandler
	SetPartMaterial       commands.SetPartMaterialCommandHandler
	SetPrintedCount       commands.SetPrintedCountCommandHandler
	MarkPrinted           commands.MarkPrintedCommandHandler
	MarkDone              commands.MarkDoneCommandHandler
	RestoreOrder          commands.RestoreOrderCommandHandler
	SoftDeleteOrder       commands.SoftDeleteOrderCommandHandler
	CreateMaterial        commands.CreateMaterialCommandHandler
	SetMaterialSpoolCount commands.SetMaterialSpoolCountCommandHandler
	HideMaterial          commands.HideMaterialCommandHandler
	CreateProduct         commands.CreateProductCommandHandler
	HideProduct           commands.HideProductCommandHandler

	GetActiveOrders  queries.GetActiveOrdersQueryHandler
	GetMaterialStock queries.GetMaterialStockQueryHandler
}

// Server routes HTTP requests to the application's use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.createOrder)
	api.GET("/orders", s.getOrders)
	api.DELETE("/orders/:orderID", s.softDeleteOrder)
	api.POST("/orders/:orderID/pieces", s.addPiece)
	api.POST("/orders/:orderID/pieces/:pieceIndex/duplicate", s.duplicatePiece)
	api.DELETE("/orders/:orderID/pieces/:pieceIndex", s.removePiece)
	api.PUT("/orders/:orderID/pieces/:pieceIndex/quantity", s.setPieceQuantity)
	api.PUT("/orders/:orderID/pieces/:pieceIndex/price", s.setPieceUnitPrice)
	api.PUT("/orders/:orderID/pieces/:pieceIndex/parts/:partIndex/material", s.setPartMaterial)
	api.PUT("/orders/:orderID/pieces/:pieceIndex/printed", s.setPrintedCount)
	api.POST("/orders/:orderID/printed", s.markPrinted)
	api.POST("/orders/:orderID/done", s.markDone)
	api.POST("/orders/:orderID/restore", s.restoreOrder)

	api.POST("/materials", s.createMaterial)
	api.GET("/materials", s.getMaterials)
	api.PUT("/materials/:materialID/spools", s.setMaterialSpoolCount)
	api.DELETE("/materials/:materialID", s.hideMaterial)

	api.POST("/products", s.createProduct)
	api.DELETE("/products/:productID", s.hideProduct)
}

// errorResponse is the JSON body of every non-2xx reply.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps a failed command to the matching HTTP reply. Validation
// failures are the caller's fault, missing aggregates are 404, the undefined
// transitions of the status machine are conflicts, and everything else is a
// plain 500.
func commandError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrIndexOutOfRange),
		errors.Is(err, order.ErrTemplateIsInvalid),
		errors.Is(err, order.ErrQuantityIsInvalid),
		errors.Is(err, order.ErrPriceIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return badRequest(ctx, err.Error())
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}

func ownerID(ctx echo.Context) (string, bool) {
	owner := ctx.Request().Header.Get(ownerHeader)
	return owner, owner != ""
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func pathIndex(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Param(name))
}

type createOrderRequest struct {
	Title   string     `json:"title"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

// createOrder handles POST /api/v1/orders.
func (s *Server) createOrder(ctx echo.Context) error {
	owner, ok := ownerID(ctx)
	if !ok {
		return badRequest(ctx, "missing "+ownerHeader+" header")
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, owner, req.Title, req.DueDate)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{ID: id.String()})
}

type orderSummary struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	DueDate  *time.Time `json:"dueDate,omitempty"`
	Status   string     `json:"status"`
	Revenue  float64    `json:"revenue"`
	Expenses *float64   `json:"expenses,omitempty"`
	Profit   float64    `json:"profit"`
}

// getOrders handles GET /api/v1/orders. The includeDone query flag adds
// finished orders to the listing.
func (s *Server) getOrders(ctx echo.Context) error {
	owner, ok := ownerID(ctx)
	if !ok {
		return badRequest(ctx, "missing "+ownerHeader+" header")
	}

	includeDone := ctx.QueryParam("includeDone") == "true"
	query, err := queries.NewGetActiveOrdersQuery(owner, includeDone)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orders, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]orderSummary, len(orders))
	for i, o := range orders {
		response[i] = orderSummary{
			ID:       o.ID.String(),
			Title:    o.Title,
			DueDate:  o.DueDate,
			Status:   o.Status.String(),
			Revenue:  o.Revenue,
			Expenses: o.Expenses,
			Profit:   o.Profit,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// softDeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) softDeleteOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewSoftDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SoftDeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type addPieceRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// addPiece handles POST /api/v1/orders/:orderID/pieces.
func (s *Server) addPiece(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req addPieceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewAddPieceCommand(orderID, productID, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.AddPiece.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// duplicatePiece handles POST /api/v1/orders/:orderID/pieces/:pieceIndex/duplicate.
func (s *Server) duplicatePiece(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}

	cmd, err := commands.NewDuplicatePieceCommand(orderID, pieceIndex)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.DuplicatePiece.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// removePiece handles DELETE /api/v1/orders/:orderID/pieces/:pieceIndex.
func (s *Server) removePiece(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}

	cmd, err := commands.NewRemovePieceCommand(orderID, pieceIndex)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RemovePiece.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// setPieceQuantity handles PUT /api/v1/orders/:orderID/pieces/:pieceIndex/quantity.
func (s *Server) setPieceQuantity(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}

	var req quantityRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetPieceQuantityCommand(orderID, pieceIndex, req.Quantity)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetPieceQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type unitPriceRequest struct {
	UnitPrice float64 `json:"unitPrice"`
}

// setPieceUnitPrice handles PUT /api/v1/orders/:orderID/pieces/:pieceIndex/price.
func (s *Server) setPieceUnitPrice(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}

	var req unitPriceRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetPieceUnitPriceCommand(orderID, pieceIndex, req.UnitPrice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetPieceUnitPrice.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type partMaterialRequest struct {
	MaterialID *string `json:"materialId"`
}

// setPartMaterial handles PUT /api/v1/orders/:orderID/pieces/:pieceIndex/parts/:partIndex/material.
// A null materialId clears the assignment.
func (s *Server) setPartMaterial(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}
	partIndex, err := pathIndex(ctx, "partIndex")
	if err != nil {
		return badRequest(ctx, "invalid part index")
	}

	var req partMaterialRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var materialID *kernel.UUID
	if req.MaterialID != nil {
		id, idErr := kernel.UUIDFromString(*req.MaterialID)
		if idErr != nil {
			return badRequest(ctx, "invalid material id")
		}
		materialID = &id
	}

	cmd, err := commands.NewSetPartMaterialCommand(orderID, pieceIndex, partIndex, materialID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetPartMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type printedCountRequest struct {
	Count int `json:"count"`
}

// setPrintedCount handles PUT /api/v1/orders/:orderID/pieces/:pieceIndex/printed.
func (s *Server) setPrintedCount(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}
	pieceIndex, err := pathIndex(ctx, "pieceIndex")
	if err != nil {
		return badRequest(ctx, "invalid piece index")
	}

	var req printedCountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetPrintedCountCommand(orderID, pieceIndex, req.Count)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetPrintedCount.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// markPrinted handles POST /api/v1/orders/:orderID/printed.
func (s *Server) markPrinted(ctx echo.Context) error {
	id, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkPrintedCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkPrinted.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// markDone handles POST /api/v1/orders/:orderID/done.
func (s *Server) markDone(ctx echo.Context) error {
	id, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewMarkDoneCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.MarkDone.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// restoreOrder handles POST /api/v1/orders/:orderID/restore.
func (s *Server) restoreOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewRestoreOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.RestoreOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type createMaterialRequest struct {
	Title        string   `json:"title"`
	Brand        string   `json:"brand"`
	Colors       []string `json:"colors"`
	Types        []string `json:"types"`
	URL          string   `json:"url"`
	PricePerKilo float64  `json:"pricePerKilo"`
	SpoolsOwned  int      `json:"spoolsOwned"`
}

type createMaterialResponse struct {
	ID string `json:"id"`
}

// createMaterial handles POST /api/v1/materials.
func (s *Server) createMaterial(ctx echo.Context) error {
	owner, ok := ownerID(ctx)
	if !ok {
		return badRequest(ctx, "missing "+ownerHeader+" header")
	}

	var req createMaterialRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMaterialCommand(
		id, owner, req.Title, req.Brand,
		req.Colors, req.Types, req.URL,
		req.PricePerKilo, req.SpoolsOwned,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createMaterialResponse{ID: id.String()})
}

type materialStock struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Brand          string  `json:"brand,omitempty"`
	PricePerKilo   float64 `json:"pricePerKilo"`
	SpoolsOwned    int     `json:"spoolsOwned"`
	TotalUsedKilos float64 `json:"totalUsedKilos"`
}

// getMaterials handles GET /api/v1/materials.
func (s *Server) getMaterials(ctx echo.Context) error {
	owner, ok := ownerID(ctx)
	if !ok {
		return badRequest(ctx, "missing "+ownerHeader+" header")
	}

	query, err := queries.NewGetMaterialStockQuery(owner)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	materials, err := s.handlers.GetMaterialStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	response := make([]materialStock, len(materials))
	for i, m := range materials {
		response[i] = materialStock{
			ID:             m.ID.String(),
			Title:          m.Title,
			Brand:          m.Brand,
			PricePerKilo:   m.PricePerKilo,
			SpoolsOwned:    m.SpoolsOwned,
			TotalUsedKilos: m.TotalUsedKilos,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type spoolCountRequest struct {
	SpoolsOwned int `json:"spoolsOwned"`
}

// setMaterialSpoolCount handles PUT /api/v1/materials/:materialID/spools.
func (s *Server) setMaterialSpoolCount(ctx echo.Context) error {
	id, err := pathUUID(ctx, "materialID")
	if err != nil {
		return badRequest(ctx, "invalid material id")
	}

	var req spoolCountRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetMaterialSpoolCountCommand(id, req.SpoolsOwned)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.SetMaterialSpoolCount.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// hideMaterial handles DELETE /api/v1/materials/:materialID.
func (s *Server) hideMaterial(ctx echo.Context) error {
	id, err := pathUUID(ctx, "materialID")
	if err != nil {
		return badRequest(ctx, "invalid material id")
	}

	cmd, err := commands.NewHideMaterialCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.HideMaterial.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type partRequirementPayload struct {
	Label string  `json:"label"`
	Grams float64 `json:"grams"`
}

type createProductRequest struct {
	Title          string                   `json:"title"`
	PrintTimeHours float64                  `json:"printTimeHours"`
	Requirements   []partRequirementPayload `json:"requirements"`
	UnitPrice      *float64                 `json:"unitPrice,omitempty"`
	PriceVariants  map[string]float64       `json:"priceVariants,omitempty"`
}

type createProductResponse struct {
	ID string `json:"id"`
}

// createProduct handles POST /api/v1/products.
func (s *Server) createProduct(ctx echo.Context) error {
	owner, ok := ownerID(ctx)
	if !ok {
		return badRequest(ctx, "missing "+ownerHeader+" header")
	}

	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	requirements := make([]product.PartRequirement, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		requirement, reqErr := product.NewPartRequirement(r.Label, r.Grams)
		if reqErr != nil {
			return badRequest(ctx, reqErr.Error())
		}
		requirements = append(requirements, requirement)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		id, owner, req.Title, req.PrintTimeHours,
		requirements, req.UnitPrice, req.PriceVariants,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createProductResponse{ID: id.String()})
}

// hideProduct handles DELETE /api/v1/products/:productID.
func (s *Server) hideProduct(ctx echo.Context) error {
	id, err := pathUUID(ctx, "productID")
	if err != nil {
		return badRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewHideProductCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.handlers.HideProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
