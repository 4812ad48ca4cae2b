package factory

import (
	"fmt"
	"log/slog"

	"github.com/partygamehq/partygame-go/internal/dependencies/clock"
	"github.com/partygamehq/partygame-go/internal/dependencies/keylock"
	"github.com/partygamehq/partygame-go/internal/dependencies/random"
	"github.com/partygamehq/partygame-go/internal/services/bottle"
	"github.com/partygamehq/partygame-go/internal/services/identity"
	"github.com/partygamehq/partygame-go/internal/services/imposter"
	"github.com/partygamehq/partygame-go/internal/services/lobby"
	"github.com/partygamehq/partygame-go/internal/services/wordbank"
	"github.com/partygamehq/partygame-go/internal/storage"
	filestorage "github.com/partygamehq/partygame-go/internal/storage/file"
	memorystorage "github.com/partygamehq/partygame-go/internal/storage/memory"
	redisstorage "github.com/partygamehq/partygame-go/internal/storage/redis"
)

// StorageType identifies a storage backend
type StorageType string

const (
	StorageTypeMemory StorageType = "memory"
	StorageTypeRedis  StorageType = "redis"
	StorageTypeFile   StorageType = "file"
)

// Config holds configuration for building the application
type Config struct {
	StorageType StorageType
	// RedisConfig is used when StorageType is redis
	RedisConfig redisstorage.Config
	// SnapshotPath is the snapshot file location when StorageType is file
	SnapshotPath string
	Logger       *slog.Logger
}

// App holds all the wired application components
type App struct {
	Storage        storage.Storage
	Clock          clock.Clock
	Random         random.Random
	Locks          *keylock.KeyedMutex
	WordBank       *wordbank.Service
	ImposterEngine *imposter.Engine
	BottleEngine   *bottle.Engine
	LobbyService   *lobby.Service
	Identity       *identity.Service
	Logger         *slog.Logger
}

// New creates a fully wired application from the given configuration
func New(cfg Config) (*App, error) {
	store, err := newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating storage: %w", err)
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg.Logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case StorageTypeMemory:
		return memorystorage.New(), nil
	case StorageTypeRedis:
		return redisstorage.New(cfg.RedisConfig)
	case StorageTypeFile:
		return filestorage.New(cfg.SnapshotPath, cfg.Logger), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.StorageType)
	}
}

func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *App {
	locks := keylock.New()
	wordBank := wordbank.New(store, logger)
	imposterEngine := imposter.NewEngine(store, wordBank, locks, clk, rnd, logger)
	bottleEngine := bottle.NewEngine(store, locks, clk, rnd, logger)
	lobbyService := lobby.NewService(store, imposterEngine, locks, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Locks:          locks,
		WordBank:       wordBank,
		ImposterEngine: imposterEngine,
		BottleEngine:   bottleEngine,
		LobbyService:   lobbyService,
		Identity:       identity.New(),
		Logger:         logger,
	}
}
