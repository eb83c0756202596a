// Package v1alpha1 exposes the generation engine over JSON HTTP.
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dungeonforge/dungeonforge-api/internal/entities"
	"github.com/dungeonforge/dungeonforge-api/internal/errors"
	"github.com/dungeonforge/dungeonforge-api/internal/orchestrators/dungeon"
	"github.com/dungeonforge/dungeonforge-api/internal/orchestrators/npc"
	"github.com/dungeonforge/dungeonforge-api/internal/pkg/idgen"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	DungeonService dungeon.Service
	NPCService     npc.Service

	// IDGenerator mints per-request IDs for log correlation. Optional;
	// defaults to UUIDs with a "req" prefix.
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.DungeonService == nil {
		return errors.InvalidArgument("dungeon service is required")
	}
	if c.NPCService == nil {
		return errors.InvalidArgument("npc service is required")
	}
	return nil
}

// Handler implements the v1alpha1 HTTP API
type Handler struct {
	dungeonService dungeon.Service
	npcService     npc.Service
	idGen          idgen.Generator
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("req")
	}

	return &Handler{
		dungeonService: cfg.DungeonService,
		npcService:     cfg.NPCService,
		idGen:          idGen,
	}, nil
}

// Register attaches all v1alpha1 routes to the mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/dungeons:generate", h.logged(h.GenerateDungeon))
	mux.HandleFunc("POST /v1alpha1/encounters:generate", h.logged(h.GenerateEncounter))
	mux.HandleFunc("POST /v1alpha1/npcs/converse", h.logged(h.Converse))
	mux.HandleFunc("GET /v1alpha1/npcs/{npc_id}", h.logged(h.GetNPC))
	mux.HandleFunc("POST /v1alpha1/quests:generate", h.logged(h.GenerateQuest))
	mux.HandleFunc("GET /healthz", h.Health)
}

// logged tags each request with a generated ID and logs its outcome.
func (h *Handler) logged(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID := h.idGen.Generate()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next(w, r)

		slog.Info("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	}
}

type generateDungeonRequest struct {
	Level      int    `json:"level"`
	Theme      string `json:"theme"`
	Size       string `json:"size"`
	Difficulty int    `json:"difficulty"`
}

// GenerateDungeon handles POST /v1alpha1/dungeons:generate
func (h *Handler) GenerateDungeon(w http.ResponseWriter, r *http.Request) {
	var req generateDungeonRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.dungeonService.GenerateDungeon(r.Context(), &dungeon.GenerateDungeonInput{
		Level:      req.Level,
		Theme:      req.Theme,
		Size:       req.Size,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Dungeon)
}

type generateEncounterRequest struct {
	Difficulty int    `json:"difficulty"`
	Location   string `json:"location"`
	PartySize  int    `json:"party_size"`
}

// GenerateEncounter handles POST /v1alpha1/encounters:generate
func (h *Handler) GenerateEncounter(w http.ResponseWriter, r *http.Request) {
	var req generateEncounterRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.dungeonService.GenerateEncounter(r.Context(), &dungeon.GenerateEncounterInput{
		Difficulty: req.Difficulty,
		Location:   req.Location,
		PartySize:  req.PartySize,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Encounter)
}

type converseRequest struct {
	NPCID       string `json:"npc_id"`
	Message     string `json:"message"`
	PlayerName  string `json:"player_name"`
	PlayerLevel int    `json:"player_level"`
	Name        string `json:"name"`
	Personality string `json:"personality"`
	Background  string `json:"background"`
}

type converseResponse struct {
	NPCID        string          `json:"npc_id"`
	Response     string          `json:"response"`
	Mood         entities.Mood   `json:"mood"`
	MoodChanged  bool            `json:"mood_changed"`
	QuestOffered *entities.Quest `json:"quest_offered,omitempty"`
}

// Converse handles POST /v1alpha1/npcs/converse
func (h *Handler) Converse(w http.ResponseWriter, r *http.Request) {
	var req converseRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.npcService.Converse(r.Context(), &npc.ConverseInput{
		NPCID:       req.NPCID,
		Message:     req.Message,
		PlayerName:  req.PlayerName,
		PlayerLevel: req.PlayerLevel,
		Name:        req.Name,
		Personality: req.Personality,
		Background:  req.Background,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, converseResponse{
		NPCID:        output.NPCID,
		Response:     output.Response,
		Mood:         output.Mood,
		MoodChanged:  output.MoodChanged,
		QuestOffered: output.QuestOffered,
	})
}

// GetNPC handles GET /v1alpha1/npcs/{npc_id}
func (h *Handler) GetNPC(w http.ResponseWriter, r *http.Request) {
	output, err := h.npcService.GetNPC(r.Context(), &npc.GetNPCInput{
		NPCID: r.PathValue("npc_id"),
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.State)
}

type generateQuestRequest struct {
	NPCID       string `json:"npc_id"`
	Personality string `json:"personality"`
	PlayerLevel int    `json:"player_level"`
}

// GenerateQuest handles POST /v1alpha1/quests:generate
func (h *Handler) GenerateQuest(w http.ResponseWriter, r *http.Request) {
	var req generateQuestRequest
	if err := decodeJSON(r, &req); err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	output, err := h.npcService.GenerateQuest(r.Context(), &npc.GenerateQuestInput{
		NPCID:       req.NPCID,
		Personality: req.Personality,
		PlayerLevel: req.PlayerLevel,
	})
	if err != nil {
		errors.WriteHTTP(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Quest)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON parses a request body, mapping malformed payloads and wrong
// field types to InvalidArgument.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
