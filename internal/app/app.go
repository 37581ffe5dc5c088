package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/contestants/internal/config"
	"github.com/riskibarqy/contestants/internal/domain/contestant"
	"github.com/riskibarqy/contestants/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/contestants/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/contestants/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/contestants/internal/platform/id"
	"github.com/riskibarqy/contestants/internal/platform/logging"
	"github.com/riskibarqy/contestants/internal/usecase"
)

// NewHTTPServer wires storage, services and router into a server. The returned
// cleanup releases storage resources and must be called after shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	contestantRepo, cleanup, err := newContestantRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	contestantSvc := usecase.NewContestantService(contestantRepo, idgen.NewUUIDGenerator(), logger)
	handler := httpapi.NewHandler(contestantSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		ServiceName:        cfg.ServiceName,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func newContestantRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (contestant.Repository, func() error, error) {
	switch cfg.StorageDriver {
	case "", config.StorageMemory:
		logger.Info("storage configured", "driver", config.StorageMemory)
		return memory.NewContestantRepository(), func() error { return nil }, nil
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage configured",
			"driver", config.StoragePostgres,
			"db_name", dbNameFromURL(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
		)
		return postgres.NewContestantRepository(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
