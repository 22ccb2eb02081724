package usecase

import (
	"context"
	"encoding/json"

	"gamedex/internal/domain/entity"
	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

// PreferenceUseCase wraps the opaque key→string device store with typed
// accessors for theme, locale and the recent search list. Values are keyed
// per user so multiple accounts on one device stay separate.
type PreferenceUseCase struct {
	prefs repository.PreferenceStore
}

func NewPreferenceUseCase(prefs repository.PreferenceStore) *PreferenceUseCase {
	return &PreferenceUseCase{prefs: prefs}
}

func (uc *PreferenceUseCase) Theme(ctx context.Context, userID string) (string, error) {
	value, ok, err := uc.prefs.Get(ctx, "theme_"+userID)
	if err != nil {
		return "", err
	}
	if !ok || !entity.IsValidTheme(value) {
		return entity.DefaultTheme, nil
	}
	return value, nil
}

func (uc *PreferenceUseCase) SetTheme(ctx context.Context, userID, theme string) error {
	if !entity.IsValidTheme(theme) {
		return errors.BadRequest("Unknown theme", nil)
	}
	return uc.prefs.Set(ctx, "theme_"+userID, theme, 0)
}

func (uc *PreferenceUseCase) Locale(ctx context.Context, userID string) (string, error) {
	value, ok, err := uc.prefs.Get(ctx, "locale_"+userID)
	if err != nil {
		return "", err
	}
	if !ok || !entity.IsValidLocale(value) {
		return entity.DefaultLocale, nil
	}
	return value, nil
}

func (uc *PreferenceUseCase) SetLocale(ctx context.Context, userID, locale string) error {
	if !entity.IsValidLocale(locale) {
		return errors.BadRequest("Unknown locale", nil)
	}
	return uc.prefs.Set(ctx, "locale_"+userID, locale, 0)
}

func (uc *PreferenceUseCase) SearchHistory(ctx context.Context, userID string) ([]string, error) {
	value, ok, err := uc.prefs.Get(ctx, "search_history_"+userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}

	var terms []string
	if err := json.Unmarshal([]byte(value), &terms); err != nil {
		// A corrupt entry is treated as empty rather than blocking search.
		return []string{}, nil
	}

	return terms, nil
}

// AddSearchTerm moves the term to the front, dropping any earlier occurrence,
// and truncates to the cap.
func (uc *PreferenceUseCase) AddSearchTerm(ctx context.Context, userID, term string) error {
	if term == "" {
		return nil
	}

	terms, err := uc.SearchHistory(ctx, userID)
	if err != nil {
		return err
	}

	updated := make([]string, 0, len(terms)+1)
	updated = append(updated, term)
	for _, t := range terms {
		if t != term {
			updated = append(updated, t)
		}
	}
	if len(updated) > entity.SearchHistoryLimit {
		updated = updated[:entity.SearchHistoryLimit]
	}

	encoded, err := json.Marshal(updated)
	if err != nil {
		return errors.Internal("Failed to encode search history", err)
	}

	return uc.prefs.Set(ctx, "search_history_"+userID, string(encoded), 0)
}

func (uc *PreferenceUseCase) ClearSearchHistory(ctx context.Context, userID string) error {
	return uc.prefs.Delete(ctx, "search_history_"+userID)
}
