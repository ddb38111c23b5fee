package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gongu/internal/core"
	"gongu/internal/metrics"
)

type optionStatJSON struct {
	Name    string  `json:"name"`
	Amount  int64   `json:"amount"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

type sectorJSON struct {
	OptionName   string  `json:"option_name"`
	StartTurn    float64 `json:"start_turn"`
	EndTurn      float64 `json:"end_turn"`
	MidAngleTurn float64 `json:"mid_angle_turn"`
	Color        string  `json:"color"`
	ShowLabel    bool    `json:"show_label"`
}

type countdownJSON struct {
	State string `json:"state"`
	Days  int    `json:"days,omitempty"`
}

type weekStatsResponse struct {
	WeekOrdinal     int              `json:"week_ordinal"`
	Label           string           `json:"label"`
	Question        string           `json:"question"`
	WeekTotal       int64            `json:"week_total"`
	ValidTotal      int64            `json:"valid_total"`
	InvalidSum      int64            `json:"invalid_sum"`
	PerOption       []optionStatJSON `json:"per_option"`
	CumulativeTotal int64            `json:"cumulative_total"`
	GoalAmount      int64            `json:"goal_amount"`
	GoalPercent     float64          `json:"goal_percent"`
	Sectors         []sectorJSON     `json:"sectors"`
}

// handleWeekStats serves the aggregated statistics for one week. The week
// defaults to the window covering today, falling back to the last
// configured week once the campaign is over.
func (s *Server) handleWeekStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	week := ParseWeekParam(r.URL.Query())
	if week == 0 {
		week = s.defaultWeek(time.Now())
	}

	key := strconv.Itoa(week)
	stats, cached := s.statsCache.Get(key)
	if !cached {
		items, err := s.service.List(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Stats list error", "error", err, "week", week)
			writeError(w, http.StatusInternalServerError, "failed to compute statistics")
			return
		}
		stats = s.buildWeekStats(items, week)
		s.statsCache.Set(key, stats)
	}
	metrics.StatsQueries.Inc()

	// Countdown depends on wall-clock time, never on the cached snapshot.
	countdown := core.CountdownFor(week, s.campaign, time.Now())
	resp := struct {
		weekStatsResponse
		Countdown countdownJSON `json:"countdown"`
	}{
		weekStatsResponse: stats,
		Countdown: countdownJSON{
			State: string(countdown.State),
			Days:  countdown.Days,
		},
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) buildWeekStats(items []core.Contribution, week int) weekStatsResponse {
	stats := core.Aggregate(items, week, s.campaign)
	sectors := core.BuildSectors(stats.PerOption)

	resp := weekStatsResponse{
		WeekOrdinal:     stats.WeekOrdinal,
		WeekTotal:       stats.WeekTotal,
		ValidTotal:      stats.ValidTotal,
		InvalidSum:      stats.InvalidSum,
		CumulativeTotal: stats.CumulativeTotal,
		GoalAmount:      s.campaign.GoalAmount,
		GoalPercent:     stats.GoalPercent,
		PerOption:       make([]optionStatJSON, 0, len(stats.PerOption)),
		Sectors:         make([]sectorJSON, 0, len(sectors)),
	}
	if window, ok := s.campaign.Window(week); ok {
		resp.Label = window.Label
		resp.Question = window.Question
	}
	for _, opt := range stats.PerOption {
		resp.PerOption = append(resp.PerOption, optionStatJSON{
			Name:    opt.Name,
			Amount:  opt.Amount,
			Percent: opt.Percent,
			Color:   opt.Color,
		})
	}
	for _, sec := range sectors {
		resp.Sectors = append(resp.Sectors, sectorJSON{
			OptionName:   sec.OptionName,
			StartTurn:    sec.StartTurn,
			EndTurn:      sec.EndTurn,
			MidAngleTurn: sec.MidAngleTurn,
			Color:        sec.Color,
			ShowLabel:    sec.ShowLabel,
		})
	}
	return resp
}

// defaultWeek picks the window covering now, or the last configured week
// when now falls outside the campaign.
func (s *Server) defaultWeek(now time.Time) int {
	date := now.Format("2006-01-02")
	if week := core.ResolveWeek(date, s.campaign); week != core.WeekOutOfRange {
		return week
	}
	last := 1
	for _, w := range s.campaign.Weeks {
		if w.Ordinal > last {
			last = w.Ordinal
		}
	}
	return last
}

// handleReclassify restamps every stored contribution against the current
// campaign configuration.
func (s *Server) handleReclassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}

	changed, err := s.service.ReclassifyAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Reclassify error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to reclassify contributions")
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusOK, map[string]int{"changed": changed})
}
