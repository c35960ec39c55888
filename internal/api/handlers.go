package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	errorvalues "github.com/limbo/wellness/internal/error_values"
	"github.com/limbo/wellness/internal/service"
	"github.com/limbo/wellness/pkg/entity"
	"github.com/limbo/wellness/pkg/httputil"
)

type LogActivityResponse struct {
	Success  bool                   `json:"success"`
	Activity *entity.ActivityRecord `json:"activity"`
	Points   entity.PointsSummary   `json:"points"`
}

type ActivityHistoryResponse struct {
	Activities []*entity.ActivityRecord `json:"activities"`
}

type MyPointsResponse struct {
	Fullname string `json:"fullname"`
	*entity.MyStats
}

type LeaderboardEntryResponse struct {
	*entity.LeaderboardEntry
	IsCurrentUser bool `json:"isCurrentUser"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntryResponse `json:"leaderboard"`
}

type RecomputeResponse struct {
	TotalPoints int `json:"totalPoints"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": "ok",
	})
}

// writeServiceError maps service errors onto statuses. Anything unexpected is
// logged and answered with a generic message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", validationDetails(err))
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op + " error: user not found")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "failed to "+op, nil)
	}
}

// validationDetails drops the leading sentinel so clients only see what was wrong.
func validationDetails(err error) error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	var details []error
	for _, e := range joined.Unwrap() {
		if e != errorvalues.ErrValidation {
			details = append(details, e)
		}
	}
	if len(details) == 0 {
		return nil
	}
	return errors.Join(details...)
}

func (s *Server) LogActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("log activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.RecordActivityRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("log activity error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	res, err := s.activityService.RecordActivity(r.Context(), user.ID, &req)
	if err != nil {
		writeServiceError(w, logger, "log activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LogActivityResponse{
		Success:  true,
		Activity: res.Activity,
		Points:   res.Points,
	})
	logger.Info("activity logged", slog.String("date", res.Activity.Date), slog.String("type", req.Habit))
}

func (s *Server) LogWater(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log water error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.RecordWaterRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("log water error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	act, err := s.activityService.RecordWater(r.Context(), uid, &req)
	if err != nil {
		writeServiceError(w, logger, "log water", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, act)
	logger.Info("water logged", slog.String("date", act.Date))
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get activity error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	act, err := s.activityService.GetActivity(r.Context(), uid, chi.URLParam(r, "date"))
	if err != nil {
		writeServiceError(w, logger, "load activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, act)
}

func (s *Server) GetActivityHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			logger.Error("get history error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be a positive integer", nil)
			return
		}
	}
	acts, err := s.activityService.GetActivityHistory(r.Context(), uid, days)
	if err != nil {
		writeServiceError(w, logger, "load activity history", err)
		return
	}
	if acts == nil {
		acts = []*entity.ActivityRecord{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivityHistoryResponse{Activities: acts})
}

func (s *Server) GetMyPoints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get points error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	stats, err := s.pointsService.GetMyStats(r.Context(), user.ID)
	if err != nil {
		writeServiceError(w, logger, "load points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MyPointsResponse{
		Fullname: user.Name,
		MyStats:  stats,
	})
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get leaderboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			logger.Error("get leaderboard error: invalid limit")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "limit must be an integer", nil)
			return
		}
	}
	entries, err := s.pointsService.GetLeaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, logger, "load leaderboard", err)
		return
	}
	resp := LeaderboardResponse{
		Leaderboard: make([]LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Leaderboard = append(resp.Leaderboard, LeaderboardEntryResponse{
			LeaderboardEntry: e,
			IsCurrentUser:    e.UserID == user.ID,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) RecomputePoints(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recompute error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	total, err := s.pointsService.RecomputeTotal(r.Context(), uid)
	if err != nil {
		writeServiceError(w, logger, "recompute points", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RecomputeResponse{TotalPoints: total})
	logger.Info("points recomputed", slog.Int("total", total))
}
