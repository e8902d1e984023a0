// Package api exposes the evaluation engine over HTTP: start/cancel
// endpoints, an SSE result stream, the criteria catalog and report
// downloads.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/sapt/auditor/internal/catalog"
	"github.com/sapt/auditor/internal/db"
	"github.com/sapt/auditor/internal/eval"
	"github.com/sapt/auditor/internal/report"
)

type Server struct {
	Echo         *echo.Echo
	Orchestrator *eval.Orchestrator
	Reports      *report.Writer
	Store        *db.Store // optional
}

func NewServer(orc *eval.Orchestrator, reports *report.Writer, store *db.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	allowedOrigins := []string{"http://localhost:4200"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Echo:         e,
		Orchestrator: orc,
		Reports:      reports,
		Store:        store,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)

	api := s.Echo.Group("/api")
	api.POST("/avaliar", s.handleStartEvaluation)
	api.POST("/cancelar/:id", s.handleCancelEvaluation)
	api.GET("/stream/:id", s.handleStream)
	api.GET("/criterios", s.handleCriteria)
	api.GET("/criterios/:tipo", s.handleCriteriaByType)
	api.GET("/tipos", s.handleMatrixTypes)
	api.POST("/relatorios/:id", s.handleReports)
	api.GET("/avaliacoes", s.handleRecentEvaluations)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type startRequest struct {
	EntityName string `json:"orgao"`
	EntityType string `json:"tipo"`
}

func (s *Server) handleStartEvaluation(c echo.Context) error {
	var req startRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Requisição inválida"})
	}
	if strings.TrimSpace(req.EntityName) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "O nome do órgão é obrigatório"})
	}

	run, err := s.Orchestrator.Start(c.Request().Context(), req.EntityName, req.EntityType)
	if err != nil {
		if err == eval.ErrBusy {
			return c.JSON(http.StatusConflict, map[string]string{"error": "Já existe uma avaliação em andamento"})
		}
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusAccepted, map[string]any{
		"message": "Avaliação iniciada com sucesso",
		"run_id":  run.ID,
		"stream":  fmt.Sprintf("/api/stream/%s", run.ID),
	})
}

func (s *Server) handleCancelEvaluation(c echo.Context) error {
	run, ok := s.Orchestrator.Lookup(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Avaliação não encontrada"})
	}
	run.Cancel()
	return c.JSON(http.StatusOK, map[string]string{"message": "Cancelamento solicitado"})
}

// handleStream forwards a run's events as SSE. Result records go out
// as bare data payloads; error and complete get named SSE events, the
// shape the frontend consumes.
func (s *Server) handleStream(c echo.Context) error {
	run, ok := s.Orchestrator.Lookup(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Avaliação não encontrada"})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	clientGone := c.Request().Context().Done()
	for {
		select {
		case <-clientGone:
			return nil
		case ev, open := <-run.Events:
			if !open {
				return nil
			}
			if err := writeSSE(res, ev); err != nil {
				return nil
			}
			res.Flush()
			if ev.Kind == eval.EventComplete {
				return nil
			}
		}
	}
}

func writeSSE(res *echo.Response, ev eval.Event) error {
	switch ev.Kind {
	case eval.EventComplete:
		_, err := fmt.Fprint(res, "event: complete\ndata: {}\n\n")
		return err
	case eval.EventError:
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(res, "event: error\ndata: %s\n\n", data)
		return err
	case eval.EventResult:
		data, err := json.Marshal(ev.Result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(res, "data: %s\n\n", data)
		return err
	default:
		data, err := json.Marshal(ev)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(res, "data: %s\n\n", data)
		return err
	}
}

func (s *Server) handleCriteria(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Base())
}

func (s *Server) handleCriteriaByType(c echo.Context) error {
	tipo := c.Param("tipo")
	extra := catalog.ForMatrix(tipo)
	if extra == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("Tipo de órgão desconhecido: %s", tipo)})
	}
	return c.JSON(http.StatusOK, append(catalog.Base(), extra...))
}

func (s *Server) handleMatrixTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.MatrixTypes())
}

func (s *Server) handleReports(c echo.Context) error {
	run, ok := s.Orchestrator.Lookup(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Avaliação não encontrada"})
	}
	if !run.Done() {
		return c.JSON(http.StatusConflict, map[string]string{"error": "A avaliação ainda está em andamento"})
	}

	var formats []report.Format
	if raw := strings.TrimSpace(c.QueryParam("formatos")); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			f, err := report.ParseFormat(name)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			formats = append(formats, f)
		}
	}

	paths, err := s.Reports.WriteAll(run.Results(), run.EntityName, formats...)
	if err != nil {
		c.Logger().Errorf("report generation for run %s: %v", run.ID, err)
	}
	if len(paths) == 0 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Falha ao gerar relatórios"})
	}
	return c.JSON(http.StatusOK, map[string]any{"arquivos": paths})
}

func (s *Server) handleRecentEvaluations(c echo.Context) error {
	if s.Store == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Banco de dados indisponível"})
	}
	evs, err := s.Store.RecentEvaluations(c.Request().Context(), 20)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, evs)
}

func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}
