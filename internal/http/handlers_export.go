package http

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"gongu/internal/core"
)

var csvHeader = []string{"결제수단", "날짜", "시간", "입금자명", "금액", "주차", "분류(선지)"}

// handleExportCSV streams the full contribution list as UTF-8 CSV. The BOM
// keeps Excel from mangling the Korean headers.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	items, err := s.service.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Export list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export contributions")
		return
	}

	filename := "contributions_" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("\uFEFF")); err != nil {
		return
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		slog.ErrorContext(r.Context(), "CSV header write error", "error", err)
		return
	}
	for _, c := range items {
		row := []string{
			channelDisplay(c.Channel),
			c.Date,
			c.Time,
			c.PayerLabel,
			strconv.FormatInt(c.Amount.Units, 10),
			core.FormatWeek(c.WeekOrdinal),
			c.VoteOption,
		}
		if err := cw.Write(row); err != nil {
			slog.ErrorContext(r.Context(), "CSV row write error", "error", err, "id", c.ID)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.ErrorContext(r.Context(), "CSV flush error", "error", err)
	}
}

func channelDisplay(ch core.Channel) string {
	switch ch {
	case core.ChannelBankTransfer:
		return "계좌이체"
	case core.ChannelPayPal:
		return "PayPal"
	}
	return string(ch)
}
