package handler

import (
	"gamedex/internal/usecase"
)

var (
	authHandler       *AuthHandler
	userHandler       *UserHandler
	catalogHandler    *CatalogHandler
	libraryHandler    *LibraryHandler
	preferenceHandler *PreferenceHandler
	healthHandler     *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	discoverUseCase *usecase.DiscoverUseCase,
	favoritesUseCase *usecase.FavoritesUseCase,
	historyUseCase *usecase.HistoryUseCase,
	preferenceUseCase *usecase.PreferenceUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase, discoverUseCase, preferenceUseCase)
	libraryHandler = NewLibraryHandler(favoritesUseCase, historyUseCase)
	preferenceHandler = NewPreferenceHandler(preferenceUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetLibraryHandler() *LibraryHandler {
	return libraryHandler
}

func GetPreferenceHandler() *PreferenceHandler {
	return preferenceHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
