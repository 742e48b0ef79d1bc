package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cleared-dev/spendview/internal/aggregate"
	"github.com/cleared-dev/spendview/internal/ledger"
	"github.com/cleared-dev/spendview/internal/model"
	"github.com/cleared-dev/spendview/internal/report"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SummaryResponse is the body of GET /api/summary.
type SummaryResponse struct {
	Range   report.JSONRange   `json:"range"`
	Summary report.JSONSummary `json:"summary"`
}

// CategoriesResponse is the body of GET /api/categories.
type CategoriesResponse struct {
	Range      report.JSONRange      `json:"range"`
	Categories []report.JSONCategory `json:"categories"`
}

// DailyResponse is the body of GET /api/daily.
type DailyResponse struct {
	Range report.JSONRange `json:"range"`
	Daily []report.JSONDay `json:"daily"`
}

// TransactionsResponse is the body of GET /api/transactions.
type TransactionsResponse struct {
	Range        report.JSONRange         `json:"range"`
	Sort         string                   `json:"sort"`
	Order        string                   `json:"order"`
	Transactions []report.JSONTransaction `json:"transactions"`
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, _, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report.ToJSON(rep))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	rep, _, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{
		Range:   report.ToJSONRange(rep.Range),
		Summary: report.ToJSONSummary(rep.Summary),
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	rep, _, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Range:      report.ToJSONRange(rep.Range),
		Categories: report.ToJSONCategories(rep.Categories),
	})
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	rep, _, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, DailyResponse{
		Range: report.ToJSONRange(rep.Range),
		Daily: report.ToJSONDaily(rep.Daily),
	})
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	rep, q, ok := s.build(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, TransactionsResponse{
		Range:        report.ToJSONRange(rep.Range),
		Sort:         string(sortKeyOrDefault(q.Sort)),
		Order:        q.Order.String(),
		Transactions: report.ToJSONTransactions(rep.Transactions),
	})
}

// build parses the query string and builds a report, writing a 400 on bad
// parameters.
func (s *Server) build(w http.ResponseWriter, r *http.Request) (*report.Report, report.Query, bool) {
	q, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return nil, q, false
	}
	rep, err := report.Build(s.txns, q)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
		return nil, q, false
	}
	return rep, q, true
}

func parseQuery(r *http.Request) (report.Query, error) {
	values := r.URL.Query()

	start, err := queryDate(values, "start")
	if err != nil {
		return report.Query{}, err
	}
	end, err := queryDate(values, "end")
	if err != nil {
		return report.Query{}, err
	}
	order, err := aggregate.ParseOrder(values.Get("order"))
	if err != nil {
		return report.Query{}, err
	}

	return report.Query{
		Range: model.DateRange{Start: start, End: end},
		Sort:  aggregate.SortKey(values.Get("sort")),
		Order: order,
	}, nil
}

// queryDate returns the zero time when the parameter is absent.
func queryDate(values url.Values, name string) (time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	d, err := ledger.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %v", name, raw, err)
	}
	return d, nil
}

func sortKeyOrDefault(k aggregate.SortKey) aggregate.SortKey {
	if k == "" {
		return aggregate.SortByDateKey
	}
	return k
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
