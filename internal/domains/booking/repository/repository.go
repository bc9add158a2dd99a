package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"grandhotel/infras/otel"
	"grandhotel/infras/postgres"
	"grandhotel/internal/domains/booking/model"
	guestModel "grandhotel/internal/domains/guest/model"
	"grandhotel/shared/constant"
	gDto "grandhotel/shared/dto"
	gRepo "grandhotel/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	ListConfirmed(ctx context.Context) ([]model.Booking, error)
	ListConfirmedByRoom(ctx context.Context, roomID int64) ([]model.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, mod model.Booking) (int64, error) {
	return repo.InsertReturningID(ctx, mod) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListConfirmed(ctx context.Context) ([]model.Booking, error) {
	return repo.GetAll(ctx, gDto.QueryParams{}, filterConfirmed()) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListConfirmedByRoom(ctx context.Context, roomID int64) ([]model.Booking, error) {
	filter := filterConfirmed()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldRoomID,
		Table:    model.TableName,
		Value:    roomID,
		Operator: gDto.FilterOperatorEq,
	})

	return repo.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

// ListByEmail returns a guest's bookings oldest first, so the last element is
// the most recently created one.
func (repo *repositoryImpl) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	params := gDto.QueryParams{
		SortBy:  model.TableName + "." + constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    guestModel.FieldEmail,
				Table:    guestModel.TableName,
				Value:    email,
				Operator: gDto.FilterOperatorEqFold,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func filterConfirmed() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Table:    model.TableName,
				Value:    constant.BookingStatusConfirmed,
				Operator: gDto.FilterOperatorEq,
			},
		},
	}
}
