package diag

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/dashboard/internal/dto"
	"github.com/GlebRadaev/dashboard/internal/seed"
	"github.com/GlebRadaev/dashboard/pkg/utils"
)

//go:generate mockgen -source=diag.go -destination=mock_diag.go -package=diag

const pingTimeout = 10 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Seeder interface {
	Seed(ctx context.Context) (*seed.Result, error)
}

type DiagHandler struct {
	pinger      Pinger
	seeder      Seeder
	seedEnabled bool
	urlHost     string
}

func New(pinger Pinger, seeder Seeder, seedEnabled bool, databaseURL string) *DiagHandler {
	return &DiagHandler{
		pinger:      pinger,
		seeder:      seeder,
		seedEnabled: seedEnabled,
		urlHost:     hostOf(databaseURL),
	}
}

// hostOf keeps only host:port of the connection string; credentials never leave.
func hostOf(databaseURL string) string {
	cfg, err := pgconn.ParseConfig(databaseURL)
	if err != nil {
		return ""
	}
	return net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
}

// DBTest godoc
//
//	@Summary	Database connectivity check
//	@Tags		Diagnostics
//	@Produce	json
//	@Success	200	{object}	dto.DBTestResponseDTO
//	@Failure	500	{object}	utils.Response	"Database unreachable"
//	@Router		/api/db-test [get]
func (h *DiagHandler) DBTest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, "Database unreachable")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DBTestResponseDTO{OK: true, URLHost: h.urlHost})
}

// Seed godoc
//
//	@Summary		Seed placeholder data
//	@Description	Available only when SEED_ENABLED is set. Safe to call repeatedly.
//	@Tags			Diagnostics
//	@Produce		json
//	@Success		200	{object}	dto.SeedResponseDTO
//	@Failure		404	{object}	utils.Response	"Not found"
//	@Failure		500	{object}	utils.Response	"Seeding failed"
//	@Router			/seed [get]
func (h *DiagHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if !h.seedEnabled {
		utils.RespondWithError(w, http.StatusNotFound, "Not found")
		return
	}

	result, err := h.seeder.Seed(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Seeding failed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SeedResponseDTO{
		Message:   "Database seeded successfully",
		Customers: result.Customers,
		Invoices:  result.Invoices,
		Skipped:   result.Skipped,
	})
}
