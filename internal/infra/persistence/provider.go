// Package persistence selects the profile and product store from configuration.
package persistence

import (
	"context"
	"log/slog"

	"pixorva/config"
	"pixorva/internal/domain/repository"
	"pixorva/internal/errors"
	"pixorva/internal/infra/firebaseapp"
	"pixorva/internal/infra/persistence/docstore"
	"pixorva/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the store-backed repositories handed to the usecases.
type Repositories struct {
	fx.Out

	Profiles repository.ProfileRepository
	Products repository.ProductRepository
}

// NewRepositories builds the repositories for the configured store driver.
func NewRepositories(params Params) (Repositories, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverFirestore:
		client, err := firebaseapp.NewFirestoreClient(params.Ctx, params.Lc, params.App, params.Logger)
		if err != nil {
			return Repositories{}, err
		}
		storeParams := docstore.Params{Client: client, Config: params.Config, Logger: params.Logger}
		params.Logger.Info("Using Firestore profile store")

		return Repositories{
			Profiles: docstore.NewProfileRepository(storeParams),
			Products: docstore.NewProductRepository(storeParams),
		}, nil

	case config.StoreDriverPostgres:
		if params.Config.Postgres == nil {
			return Repositories{}, errors.New("postgres configuration is required for the postgres store")
		}
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return Repositories{}, err
		}
		postgres.RegisterMigrations(params.Lc, db)
		repoParams := postgres.RepositoryParams{DB: db, Logger: params.Logger}
		params.Logger.Info("Using PostgreSQL profile store")

		return Repositories{
			Profiles: postgres.NewProfileRepository(repoParams),
			Products: postgres.NewProductRepository(repoParams),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store driver %q", params.Config.Store.Driver)
	}
}
