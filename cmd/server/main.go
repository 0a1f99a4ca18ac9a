package main

import (
	"go.uber.org/fx"

	"github.com/recipebook-dev/recipebook/internal/components/auth"
	"github.com/recipebook-dev/recipebook/internal/components/recipe"
	"github.com/recipebook-dev/recipebook/internal/server"
	"github.com/recipebook-dev/recipebook/internal/shared/config"
	"github.com/recipebook-dev/recipebook/internal/shared/database"
	"github.com/recipebook-dev/recipebook/internal/shared/logging"
	"github.com/recipebook-dev/recipebook/internal/shared/middleware"
	"github.com/recipebook-dev/recipebook/internal/shared/upload"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			upload.NewDiskStore,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			server.NewServer,
			auth.NewRepo,
			auth.NewTokenService,
			auth.NewService,
			func(ts *auth.TokenService) middleware.TokenVerifier { return ts },
			middleware.NewAuthMiddleware,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"authRouter"`)),
			recipe.NewRepo,
			recipe.NewService,
			fx.Annotate(recipe.NewRouter, fx.ResultTags(`name:"recipeRouter"`)),
		),
		fx.Invoke(server.Register),
	).Run()
}
