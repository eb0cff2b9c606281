package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
)

type themeService struct {
	store    repository.PreferenceStore
	observer UseCaseObserver
}

func NewThemeService(store repository.PreferenceStore, observers ...UseCaseObserver) ThemeService {
	return &themeService{store: store, observer: combineObservers(observers)}
}

func (s *themeService) Load(ctx context.Context) domain.Theme {
	raw, _, err := s.store.Get(ctx, repository.KeyTheme)
	if err != nil {
		observe(ctx, s.observer, "theme-load", time.Now(), fmt.Errorf("reading theme: %w", err), nil)
		return domain.ThemeLight
	}
	return domain.ParseTheme(raw)
}

func (s *themeService) Toggle(ctx context.Context) (domain.Theme, error) {
	next := s.Load(ctx).Opposite()
	if err := s.Set(ctx, next); err != nil {
		return s.Load(ctx), err
	}
	return next, nil
}

func (s *themeService) Set(ctx context.Context, theme domain.Theme) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "theme-set", startedAt, err, map[string]any{"theme": string(theme)})
	}()

	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return fmt.Errorf("invalid theme %q (want light or dark)", theme)
	}
	if err := s.store.Set(ctx, repository.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
