package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	errs "github.com/mblud/poker-tracker-backend/internal/domain/error"
	"github.com/mblud/poker-tracker-backend/internal/domain/usecase/backup"
	"github.com/mblud/poker-tracker-backend/internal/domain/usecase/ledger"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/dto"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/api/handler"
	"github.com/mblud/poker-tracker-backend/internal/infrastructure/adapter/repository/memory"
	coremocks "github.com/mblud/poker-tracker-backend/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full HTTP surface over an in-memory store, the same
// composition main performs for the memory backend.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	base := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	var ticks int64
	timeProvider := coremocks.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().RunAndReturn(func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&ticks, 1)) * time.Second)
	}).Maybe()

	var ids int64
	idGen := coremocks.NewMockIDGenerator(t)
	idGen.EXPECT().NewID().RunAndReturn(func() string {
		return "id-" + strconv.FormatInt(atomic.AddInt64(&ids, 1), 10)
	}).Maybe()

	store := memory.NewStore()
	engine := ledger.NewEngine(
		store.Players(), store.Payments(), store.CashOuts(),
		idGen, timeProvider, logger, 3500, ledger.PolicyTable,
	)
	t.Cleanup(engine.Shutdown)

	backupService := backup.NewService(store.Snapshots(), timeProvider, logger)

	router := gin.New()
	SetupMiddlewares(router, logger, []string{"*"})
	SetupRoutes(
		router,
		handler.NewPlayerHandler(engine, logger),
		handler.NewPaymentHandler(engine, logger),
		handler.NewCashOutHandler(engine, logger),
		handler.NewAdminHandler(engine, backupService, "memory", logger),
	)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if out != nil && recorder.Code < http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
	}
	return recorder
}

func createPlayer(t *testing.T, router *gin.Engine, name string) dto.PlayerResponse {
	t.Helper()
	var player dto.PlayerResponse
	recorder := doJSON(t, router, http.MethodPost, "/api/players", dto.CreatePlayerRequest{Name: name}, &player)
	require.Equal(t, http.StatusCreated, recorder.Code)
	return player
}

func TestBuyInLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	player := createPlayer(t, router, "Alice")
	assert.Equal(t, "Alice", player.Name)
	assert.Equal(t, "0.00", player.Total)

	var afterBuyIn dto.PlayerResponse
	recorder := doJSON(t, router, http.MethodPost, "/api/players/"+player.ID+"/buyin",
		dto.BuyInRequest{Amount: "100.00", Method: "Cash"}, &afterBuyIn)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, afterBuyIn.Payments, 1)
	payment := afterBuyIn.Payments[0]
	assert.Equal(t, "pending", payment.Status)
	assert.True(t, payment.DealerFeeApplied)
	assert.Equal(t, "0.00", afterBuyIn.Total)

	var confirmed dto.ConfirmPaymentResponse
	recorder = doJSON(t, router, http.MethodPut,
		"/api/players/"+player.ID+"/payments/"+payment.ID+"/confirm", nil, &confirmed)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "65.00", confirmed.NewTotal)

	var stats dto.GameStatsResponse
	recorder = doJSON(t, router, http.MethodGet, "/api/game-stats", nil, &stats)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "65.00", stats.TotalPot)
	assert.Equal(t, "35.00", stats.TotalDealerFees)
	assert.Equal(t, 1, stats.PlayerCount)

	var health dto.HealthResponse
	recorder = doJSON(t, router, http.MethodGet, "/api/health", nil, &health)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "memory", health.Backend)
	assert.Equal(t, int64(1), health.PlayerCount)
}

func TestErrorMapping(t *testing.T) {
	t.Run("Unknown player maps to 404", func(t *testing.T) {
		router := newTestRouter(t)

		var errResp dto.ErrorResponse
		recorder := doJSON(t, router, http.MethodPost, "/api/players/ghost/buyin",
			dto.BuyInRequest{Amount: "50.00", Method: "Cash"}, nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errResp))
		assert.Equal(t, errs.ErrorCode(errs.ErrPlayerNotFound), errResp.Code)
	})

	t.Run("Double confirmation maps to 409", func(t *testing.T) {
		router := newTestRouter(t)
		player := createPlayer(t, router, "Alice")

		var afterBuyIn dto.PlayerResponse
		recorder := doJSON(t, router, http.MethodPost, "/api/players/"+player.ID+"/buyin",
			dto.BuyInRequest{Amount: "100.00", Method: "Cash"}, &afterBuyIn)
		require.Equal(t, http.StatusOK, recorder.Code)
		paymentID := afterBuyIn.Payments[0].ID

		confirmPath := "/api/players/" + player.ID + "/payments/" + paymentID + "/confirm"
		recorder = doJSON(t, router, http.MethodPut, confirmPath, nil, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		recorder = doJSON(t, router, http.MethodPut, confirmPath, nil, nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	t.Run("Invalid amount maps to 400", func(t *testing.T) {
		router := newTestRouter(t)
		player := createPlayer(t, router, "Alice")

		recorder := doJSON(t, router, http.MethodPost, "/api/players/"+player.ID+"/buyin",
			dto.BuyInRequest{Amount: "12.345", Method: "Cash"}, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Missing body fields map to 400", func(t *testing.T) {
		router := newTestRouter(t)

		recorder := doJSON(t, router, http.MethodPost, "/api/players", gin.H{}, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Duplicate player name maps to 409", func(t *testing.T) {
		router := newTestRouter(t)
		createPlayer(t, router, "Alice")

		recorder := doJSON(t, router, http.MethodPost, "/api/players",
			dto.CreatePlayerRequest{Name: "alice"}, nil)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestBackupRoundTripOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	player := createPlayer(t, router, "Alice")

	recorder := doJSON(t, router, http.MethodPost, "/api/players/"+player.ID+"/buyin",
		dto.BuyInRequest{Amount: "100.00", Method: "Cash"}, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doJSON(t, router, http.MethodGet, "/api/admin/backup", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	archiveJSON := recorder.Body.Bytes()

	var restored dto.RestoreResponse
	req := httptest.NewRequest(http.MethodPost, "/api/admin/restore", bytes.NewReader(archiveJSON))
	req.Header.Set("Content-Type", "application/json")
	restoreRecorder := httptest.NewRecorder()
	router.ServeHTTP(restoreRecorder, req)
	require.Equal(t, http.StatusOK, restoreRecorder.Code)
	require.NoError(t, json.Unmarshal(restoreRecorder.Body.Bytes(), &restored))
	assert.Equal(t, 1, restored.Players)
	assert.Equal(t, 1, restored.Payments)

	var players []dto.PlayerResponse
	recorder = doJSON(t, router, http.MethodGet, "/api/players", nil, &players)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, players, 1)
	assert.Equal(t, "Alice", players[0].Name)
}
