package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supportloop/triage/internal/config"
	"github.com/supportloop/triage/internal/core"
	"github.com/supportloop/triage/internal/core/model"
	"github.com/supportloop/triage/internal/core/rank"
	"github.com/supportloop/triage/internal/core/respond"
	"github.com/supportloop/triage/internal/llm"
	"github.com/supportloop/triage/internal/store"
)

type Server struct {
	Assistant *core.Assistant
	Store     *store.TicketStore
	Config    *config.Config
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	llmClient, embedderClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	ticketStore := store.NewTicketStore(store.DemoTickets)

	return &Server{
		Assistant: core.NewAssistant(
			ticketStore,
			rank.NewRanker(embedderClient),
			respond.NewResponder(llmClient),
		),
		Store:  ticketStore,
		Config: cfg,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/tickets", s.ListTickets)
	r.PATCH("/tickets/:id/status", s.UpdateTicketStatus)
	r.POST("/analyze", s.Analyze)
	r.POST("/analyze/export", s.ExportAnalysis)
	r.GET("/stats", s.Stats)

	return r
}

func (s *Server) ListTickets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickets": s.Store.List()})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) UpdateTicketStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	status, err := model.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := s.Store.UpdateStatus(c.Param("id"), status)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

type AnalyzeRequest struct {
	Query string `json:"query" binding:"required"`
	TopK  int    `json:"top_k"`
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := s.Assistant.Analyze(c.Request.Context(), req.Query, s.topK(req.TopK))
	c.JSON(http.StatusOK, result)
}

// ExportAnalysis runs the same cycle as Analyze but serves the result as
// a downloadable JSON document.
func (s *Server) ExportAnalysis(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	result := s.Assistant.Analyze(c.Request.Context(), req.Query, s.topK(req.TopK))

	filename := fmt.Sprintf("ai_output_%s.json", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.IndentedJSON(http.StatusOK, result.Response)
}

func (s *Server) Stats(c *gin.Context) {
	tickets := s.Store.List()
	c.JSON(http.StatusOK, gin.H{
		"tickets_total": len(tickets),
		"by_status":     s.Store.CountByStatus(),
	})
}

func (s *Server) topK(requested int) int {
	if requested > 0 {
		return requested
	}
	if s.Config.Server.DefaultTopK > 0 {
		return s.Config.Server.DefaultTopK
	}
	return 3
}
