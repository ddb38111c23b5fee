package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"gongu/internal/core"
	"gongu/internal/store"
)

type contributionJSON struct {
	ID          string `json:"id"`
	Channel     string `json:"channel"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PayerLabel  string `json:"payer_label"`
	Amount      int64  `json:"amount"`
	WeekOrdinal int    `json:"week_ordinal"`
	VoteOption  string `json:"vote_option"`
}

func toJSON(c core.Contribution) contributionJSON {
	return contributionJSON{
		ID:          c.ID,
		Channel:     string(c.Channel),
		Date:        c.Date,
		Time:        c.Time,
		PayerLabel:  c.PayerLabel,
		Amount:      c.Amount.Units,
		WeekOrdinal: c.WeekOrdinal,
		VoteOption:  c.VoteOption,
	}
}

// groupingReplacer strips the characters amount inputs commonly carry.
var groupingReplacer = strings.NewReplacer(",", "", " ", "")

// parseContributionBody reads the shared contribution fields from a create
// or update body. Date and time default to now when omitted.
func parseContributionBody(p *RequestBodyParser) (core.Contribution, error) {
	channel, err := core.ParseChannel(p.Get("channel"))
	if err != nil {
		return core.Contribution{}, err
	}

	now := time.Now()
	date := p.Get("date")
	if date == "" {
		date = now.Format("2006-01-02")
	}
	clock := p.Get("time")
	if clock == "" {
		clock = now.Format("15:04:05")
	}

	units, err := core.ParseAmount(groupingReplacer.Replace(p.Get("amount")))
	if err != nil {
		return core.Contribution{}, err
	}

	c := core.Contribution{
		Channel:    channel,
		Date:       date,
		Time:       clock,
		PayerLabel: p.Get("payer_label"),
		Amount:     core.Money{Units: units},
	}
	return c, c.Validate()
}

// handleContributions serves GET (list) and POST (create) on /contributions.
func (s *Server) handleContributions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListContributions(w, r)
	case http.MethodPost:
		s.handleCreateContribution(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleCreateContribution(w http.ResponseWriter, r *http.Request) {
	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	c, err := parseContributionBody(parser)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	stored, err := s.service.Create(r.Context(), c)
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution create error", "error", err,
			"payer_label", c.PayerLabel, "amount", c.Amount.Units)
		writeError(w, http.StatusInternalServerError, "failed to save contribution")
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusCreated, toJSON(stored))
}

func (s *Server) handleListContributions(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution list error", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list contributions")
		return
	}

	channelFilter := strings.TrimSpace(r.URL.Query().Get("channel"))
	out := make([]contributionJSON, 0, len(items))
	for _, c := range items {
		if channelFilter != "" && string(c.Channel) != channelFilter {
			continue
		}
		out = append(out, toJSON(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleUpdateContribution replaces a contribution on PUT or POST.
func (s *Server) handleUpdateContribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		methodNotAllowed(w, "PUT, POST")
		return
	}

	parser := NewRequestBodyParser(r)
	if err := parser.Parse(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	id := parser.Get("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing contribution id")
		return
	}

	c, err := parseContributionBody(parser)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	c.ID = id

	updated, err := s.service.Update(r.Context(), c)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "contribution not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution update error", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to update contribution")
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusOK, toJSON(updated))
}

// handleDeleteContribution removes a contribution on DELETE or POST.
func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		methodNotAllowed(w, "DELETE, POST")
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		parser := NewRequestBodyParser(r)
		if err := parser.Parse(); err == nil {
			id = parser.Get("id")
		}
	}
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing contribution id")
		return
	}

	err := s.service.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "contribution not found")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Contribution delete error", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete contribution")
		return
	}

	s.statsCache.Purge()
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
