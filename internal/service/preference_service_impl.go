package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/promocal/internal/db"
	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/alexanderramin/promocal/internal/repository"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SnapshotVersion is the only snapshot format Import accepts.
const SnapshotVersion = 1

// Snapshot is a portable copy of every stored preference.
type Snapshot struct {
	Version    int                   `json:"version"`
	ExportedAt time.Time             `json:"exportedAt"`
	Theme      domain.Theme          `json:"theme"`
	Checklist  domain.ChecklistState `json:"checklist"`
}

// Validate checks the snapshot header and theme value.
func (s Snapshot) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Version, validation.Required, validation.In(SnapshotVersion)),
		validation.Field(&s.Theme, validation.In(domain.ThemeLight, domain.ThemeDark)),
	)
}

// StoreFactory builds a preference store bound to a transaction.
type StoreFactory func(tx db.DBTX) repository.PreferenceStore

type preferenceService struct {
	store     repository.PreferenceStore
	uow       db.UnitOfWork
	txStore   StoreFactory
	checklist ChecklistService
	theme     ThemeService
	observer  UseCaseObserver
	now       func() time.Time
}

// NewPreferenceService exports and imports preferences. With a nil uow,
// Import writes through store one key at a time.
func NewPreferenceService(
	store repository.PreferenceStore,
	uow db.UnitOfWork,
	txStore StoreFactory,
	checklist ChecklistService,
	theme ThemeService,
	observers ...UseCaseObserver,
) PreferenceService {
	return &preferenceService{
		store:     store,
		uow:       uow,
		txStore:   txStore,
		checklist: checklist,
		theme:     theme,
		observer:  combineObservers(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *preferenceService) Export(ctx context.Context) (*Snapshot, error) {
	return &Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: s.now(),
		Theme:      s.theme.Load(ctx),
		Checklist:  s.checklist.Load(ctx),
	}, nil
}

func (s *preferenceService) Import(ctx context.Context, snap *Snapshot) (err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "prefs-import", startedAt, err, fields)
	}()

	if snap == nil {
		return fmt.Errorf("importing preferences: empty snapshot")
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	// A snapshot without a checklist leaves the stored one in place, as an
	// empty theme does. An explicit {} clears it.
	var data []byte
	if snap.Checklist != nil {
		data, err = json.Marshal(snap.Checklist)
		if err != nil {
			return fmt.Errorf("encoding checklist: %w", err)
		}
		fields["entries"] = len(snap.Checklist)
	}
	fields["theme"] = string(snap.Theme)

	write := func(ctx context.Context, store repository.PreferenceStore) error {
		if snap.Theme != "" {
			if err := store.Set(ctx, repository.KeyTheme, string(snap.Theme)); err != nil {
				return fmt.Errorf("saving theme: %w", err)
			}
		}
		if data == nil {
			return nil
		}
		if err := store.Set(ctx, repository.KeyChecklist, string(data)); err != nil {
			return fmt.Errorf("saving checklist: %w", err)
		}
		return nil
	}

	if s.uow != nil && s.txStore != nil {
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return write(ctx, s.txStore(tx))
		})
	} else {
		err = write(ctx, s.store)
	}
	if err != nil {
		return err
	}

	s.checklist.Load(ctx)
	return nil
}
