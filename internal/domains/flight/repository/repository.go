package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"airline/infras/otel"
	"airline/infras/postgres"
	"airline/internal/domains/flight/model"
	gDto "airline/shared/dto"
	gRepo "airline/shared/repository"
	"context"
)

type Flight interface {
	Insert(ctx context.Context, model model.Flight) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Flight, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Flight, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Flight]
}

func New(db *postgres.Connection, otel otel.Otel) Flight {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Flight](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
