package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/thomas0124/estate-portal/internal/db"
	"github.com/thomas0124/estate-portal/internal/entity"
)

// Collection keys in the datastore. Each key holds one JSON array (dates as
// ISO-8601 strings), mirroring the persisted layout of the original app.
const (
	KeyProperties    = "properties"
	KeyTasks         = "tasks"
	KeyHandlers      = "handlers"
	KeyBuildingTypes = "building_types"
	KeySettings      = "settings"
)

type settingsRecord struct {
	OwnedPropertyColor string `json:"owned_property_color"`
}

// State is the single in-memory owner of all collections. Reads are plain
// slice access; every mutation must run inside a state transaction
// (abstraction/tx), which takes the mutex, mutates, and persists the dirty
// collections on commit. That single lock is what serializes the
// check-then-insert in the task sync.
type State struct {
	store db.Datastore

	mu    sync.Mutex
	dirty map[string]bool

	Properties         []entity.PropertyEntity
	Tasks              []entity.PropertyTaskEntity
	Handlers           []entity.HandlerEntity
	BuildingTypes      []entity.BuildingTypeEntity
	OwnedPropertyColor string
}

// Load hydrates every collection from the datastore. A collection that has
// never been written is seeded from the built-in demo dataset.
func Load(ctx context.Context, store db.Datastore, defaultOwnedColor string) (*State, error) {
	s := &State{
		store:              store,
		dirty:              make(map[string]bool),
		OwnedPropertyColor: defaultOwnedColor,
	}

	haveHandlers, err := loadCollection(ctx, store, KeyHandlers, &s.Handlers)
	if err != nil {
		return nil, err
	}
	haveBuildingTypes, err := loadCollection(ctx, store, KeyBuildingTypes, &s.BuildingTypes)
	if err != nil {
		return nil, err
	}
	haveProperties, err := loadCollection(ctx, store, KeyProperties, &s.Properties)
	if err != nil {
		return nil, err
	}
	haveTasks, err := loadCollection(ctx, store, KeyTasks, &s.Tasks)
	if err != nil {
		return nil, err
	}

	var settings settingsRecord
	if ok, err := loadCollection(ctx, store, KeySettings, &settings); err != nil {
		return nil, err
	} else if ok && settings.OwnedPropertyColor != "" {
		s.OwnedPropertyColor = settings.OwnedPropertyColor
	}

	// Seed in dependency order: tasks snapshot handler colors.
	if !haveHandlers {
		s.Handlers = seedHandlers()
	}
	if !haveBuildingTypes {
		s.BuildingTypes = seedBuildingTypes()
	}
	if !haveProperties {
		s.Properties = seedProperties()
	}
	if !haveTasks {
		s.Tasks = seedTasks(s.Properties, s.Handlers)
	}
	if !haveHandlers || !haveBuildingTypes || !haveProperties || !haveTasks {
		log.Info().
			Int("properties", len(s.Properties)).
			Int("tasks", len(s.Tasks)).
			Int("handlers", len(s.Handlers)).
			Msg("first run, missing collections seeded from built-in dataset")
	}

	return s, nil
}

func loadCollection(ctx context.Context, store db.Datastore, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Lock takes the single mutation lock. Only the tx manager calls this.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the mutation lock.
func (s *State) Unlock() { s.mu.Unlock() }

// MarkDirty records that a collection changed in the current transaction.
func (s *State) MarkDirty(key string) {
	s.dirty[key] = true
}

// PersistDirty writes every collection touched since the last commit back to
// the datastore. Called with the mutation lock held.
func (s *State) PersistDirty(ctx context.Context) error {
	for key := range s.dirty {
		if err := s.persist(ctx, key); err != nil {
			return err
		}
		delete(s.dirty, key)
	}
	return nil
}

// ClearDirty drops pending dirty marks without persisting (rollback path).
func (s *State) ClearDirty() {
	for key := range s.dirty {
		delete(s.dirty, key)
	}
}

func (s *State) persist(ctx context.Context, key string) error {
	var payload any
	switch key {
	case KeyProperties:
		payload = s.Properties
	case KeyTasks:
		payload = s.Tasks
	case KeyHandlers:
		payload = s.Handlers
	case KeyBuildingTypes:
		payload = s.BuildingTypes
	case KeySettings:
		payload = settingsRecord{OwnedPropertyColor: s.OwnedPropertyColor}
	default:
		return fmt.Errorf("unknown collection key %q", key)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.store.Put(ctx, key, raw); err != nil {
		log.Error().Err(err).Str("collection", key).Msg("failed to persist collection")
		return err
	}
	return nil
}

// Snapshot captures the current collections so a rollback can restore them.
// Element values are copied; services replace whole elements on mutation, so
// the copies are isolated from in-place edits.
type Snapshot struct {
	properties         []entity.PropertyEntity
	tasks              []entity.PropertyTaskEntity
	handlers           []entity.HandlerEntity
	buildingTypes      []entity.BuildingTypeEntity
	ownedPropertyColor string
}

func (s *State) Snapshot() *Snapshot {
	snap := &Snapshot{
		properties:         make([]entity.PropertyEntity, len(s.Properties)),
		tasks:              make([]entity.PropertyTaskEntity, len(s.Tasks)),
		handlers:           make([]entity.HandlerEntity, len(s.Handlers)),
		buildingTypes:      make([]entity.BuildingTypeEntity, len(s.BuildingTypes)),
		ownedPropertyColor: s.OwnedPropertyColor,
	}
	copy(snap.properties, s.Properties)
	copy(snap.tasks, s.Tasks)
	copy(snap.handlers, s.Handlers)
	copy(snap.buildingTypes, s.BuildingTypes)
	return snap
}

func (s *State) Restore(snap *Snapshot) {
	s.Properties = snap.properties
	s.Tasks = snap.tasks
	s.Handlers = snap.handlers
	s.BuildingTypes = snap.buildingTypes
	s.OwnedPropertyColor = snap.ownedPropertyColor
}
