package cmd

import (
	"travelorder/internal/adapters/out/postgres"
	"travelorder/internal/core/application/usecases/commands"
	"travelorder/internal/core/application/usecases/queries"
	"travelorder/internal/core/domain/services"

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

func (c *CompositionRoot) CreateCreateTravelOrderCommandHandler() commands.CreateTravelOrderCommandHandler {
	var f commands.TravelOrderUoWFactory = FuncTravelOrderUoWFactory(func() commands.TravelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTravelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTravelOrderStatusCommandHandler() commands.UpdateTravelOrderStatusCommandHandler {
	var f commands.TravelOrderUoWFactory = FuncTravelOrderUoWFactory(func() commands.TravelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTravelOrderStatusCommandHandler(services.NewAccessPolicy(), f)
}

func (c *CompositionRoot) CreateCancelExpiredTravelOrdersCommandHandler() commands.CancelExpiredTravelOrdersCommandHandler {
	var f commands.TravelOrderUoWFactory = FuncTravelOrderUoWFactory(func() commands.TravelOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelExpiredTravelOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetTravelOrderQueryHandler() queries.GetTravelOrderQueryHandler {
	return queries.NewGetTravelOrderQueryHandler(c.gormDB, services.NewAccessPolicy())
}

func (c *CompositionRoot) CreateListTravelOrdersQueryHandler() queries.ListTravelOrdersQueryHandler {
	return queries.NewListTravelOrdersQueryHandler(c.gormDB)
}

type FuncTravelOrderUoWFactory func() commands.TravelOrderUoW

func (f FuncTravelOrderUoWFactory) Create() commands.TravelOrderUoW {
	return f()
}
