package cmd

import (
	"log/slog"

	httpadapter "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/services"
	"printshop/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddPieceCommandHandler() commands.AddPieceCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPieceCommandHandler(f)
}

func (c *CompositionRoot) CreateDuplicatePieceCommandHandler() commands.DuplicatePieceCommandHandler {
	return commands.NewDuplicatePieceCommandHandler(c.orderMaterialUoWFactory())
}

func (c *CompositionRoot) CreateRemovePieceCommandHandler() commands.RemovePieceCommandHandler {
	return commands.NewRemovePieceCommandHandler(c.orderMaterialUoWFactory())
}

func (c *CompositionRoot) CreateSetPieceQuantityCommandHandler() commands.SetPieceQuantityCommandHandler {
	return commands.NewSetPieceQuantityCommandHandler(c.orderMaterialUoWFactory())
}

func (c *CompositionRoot) CreateSetPieceUnitPriceCommandHandler() commands.SetPieceUnitPriceCommandHandler {
	return commands.NewSetPieceUnitPriceCommandHandler(c.orderMaterialUoWFactory())
}

func (c *CompositionRoot) CreateSetPartMaterialCommandHandler() commands.SetPartMaterialCommandHandler {
	return commands.NewSetPartMaterialCommandHandler(c.orderMaterialUoWFactory())
}

func (c *CompositionRoot) CreateSetPrintedCountCommandHandler() commands.SetPrintedCountCommandHandler {
	return commands.NewSetPrintedCountCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkPrintedCommandHandler() commands.MarkPrintedCommandHandler {
	return commands.NewMarkPrintedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkDoneCommandHandler() commands.MarkDoneCommandHandler {
	return commands.NewMarkDoneCommandHandler(c.orderMaterialUoWFactory(), services.NewUsageRecorder())
}

func (c *CompositionRoot) CreateRestoreOrderCommandHandler() commands.RestoreOrderCommandHandler {
	return commands.NewRestoreOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSoftDeleteOrderCommandHandler() commands.SoftDeleteOrderCommandHandler {
	return commands.NewSoftDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateMaterialCommandHandler() commands.CreateMaterialCommandHandler {
	return commands.NewCreateMaterialCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateSetMaterialSpoolCountCommandHandler() commands.SetMaterialSpoolCountCommandHandler {
	return commands.NewSetMaterialSpoolCountCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateHideMaterialCommandHandler() commands.HideMaterialCommandHandler {
	return commands.NewHideMaterialCommandHandler(c.materialUoWFactory())
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateHideProductCommandHandler() commands.HideProductCommandHandler {
	return commands.NewHideProductCommandHandler(c.productUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMaterialStockQueryHandler() queries.GetMaterialStockQueryHandler {
	return queries.NewGetMaterialStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDueSoonOrdersQueryHandler() queries.GetDueSoonOrdersQueryHandler {
	return queries.NewGetDueSoonOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDepletedMaterialsQueryHandler() queries.GetDepletedMaterialsQueryHandler {
	return queries.NewGetDepletedMaterialsQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		AddPiece:              c.CreateAddPieceCommandHandler(),
		DuplicatePiece:        c.CreateDuplicatePieceCommandHandler(),
		RemovePiece:           c.CreateRemovePieceCommandHandler(),
		SetPieceQuantity:      c.CreateSetPieceQuantityCommandHandler(),
		SetPieceUnitPrice:     c.CreateSetPieceUnitPriceCommandHandler(),
		SetPartMaterial:       c.CreateSetPartMaterialCommandHandler(),
		SetPrintedCount:       c.CreateSetPrintedCountCommandHandler(),
		MarkPrinted:           c.CreateMarkPrintedCommandHandler(),
		MarkDone:              c.CreateMarkDoneCommandHandler(),
		RestoreOrder:          c.CreateRestoreOrderCommandHandler(),
		SoftDeleteOrder:       c.CreateSoftDeleteOrderCommandHandler(),
		CreateMaterial:        c.CreateCreateMaterialCommandHandler(),
		SetMaterialSpoolCount: c.CreateSetMaterialSpoolCountCommandHandler(),
		HideMaterial:          c.CreateHideMaterialCommandHandler(),
		CreateProduct:         c.CreateCreateProductCommandHandler(),
		HideProduct:           c.CreateHideProductCommandHandler(),
		GetActiveOrders:       c.CreateGetActiveOrdersQueryHandler(),
		GetMaterialStock:      c.CreateGetMaterialStockQueryHandler(),
	})
}

// CreateJobManager assembles the background jobs with their query handlers.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDueSoonOrdersQueryHandler(),
		c.CreateGetDepletedMaterialsQueryHandler(),
		logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) materialUoWFactory() commands.MaterialUoWFactory {
	return FuncMaterialUoWFactory(func() commands.MaterialUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderMaterialUoWFactory() commands.OrderMaterialUoWFactory {
	return FuncOrderMaterialUoWFactory(func() commands.OrderMaterialUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMaterialUoWFactory func() commands.MaterialUoW

func (f FuncMaterialUoWFactory) Create() commands.MaterialUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderMaterialUoWFactory func() commands.OrderMaterialUoW

func (f FuncOrderMaterialUoWFactory) Create() commands.OrderMaterialUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
