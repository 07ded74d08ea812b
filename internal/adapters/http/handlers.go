package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"svw.info/calcudoku/internal/domain"
	"svw.info/calcudoku/internal/region"
	"svw.info/calcudoku/internal/solver"
	"svw.info/calcudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/count", h.handleCount)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errStatus maps malformed puzzle definitions to 400 and everything else to 500.
func errStatus(err error) int {
	if errors.Is(err, region.ErrInvalidPuzzle) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// ---- Solve ----

type solveReq struct {
	Source string `json:"source"`
	Size   int    `json:"size,omitempty"`
}

type solveResp struct {
	Found      bool          `json:"found"`
	Board      *domain.Board `json:"board,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Nodes      int           `json:"nodes,omitempty"`
	Error      string        `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, st, err := h.UC.Solve(r.Context(), req.Source, req.Size)
	if errors.Is(err, solver.ErrNoSolution) {
		writeJSON(w, http.StatusOK, solveResp{Found: false, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	if err != nil {
		writeJSON(w, errStatus(err), solveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{Found: true, Board: b, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Count ----

type countReq struct {
	Source string `json:"source"`
	Size   int    `json:"size,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type countResp struct {
	Count      int    `json:"count"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Nodes      int    `json:"nodes,omitempty"`
	Error      string `json:"error,omitempty"`
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req countReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, countResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	n, st, err := h.UC.Count(r.Context(), req.Source, req.Size, req.Limit)
	if err != nil {
		writeJSON(w, errStatus(err), countResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, countResp{Count: n, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Source string  `json:"source"`
	Size   int     `json:"size,omitempty"`
	Cells  []uint8 `json:"cells"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req validateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Size: req.Size, Cells: req.Cells}
	ok, conflicts, err := h.UC.Validate(r.Context(), req.Source, req.Size, b)
	if err != nil {
		writeJSON(w, errStatus(err), validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintReq struct {
	Source string  `json:"source"`
	Size   int     `json:"size,omitempty"`
	Cells  []uint8 `json:"cells"`
}

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req hintReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b := &domain.Board{Size: req.Size, Cells: req.Cells}
	hh, ok, err := h.UC.Hint(r.Context(), req.Source, req.Size, b)
	if err != nil {
		writeJSON(w, errStatus(err), hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		writeJSON(w, errStatus(err), saveResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req loadReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeJSON(w, http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), req.ID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	ps, err := h.UC.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, listResp{Puzzles: ps})
}
