package api

import (
	"context"
	"errors"
	"log/slog"

	"soccerscout/app/config"
	"soccerscout/app/service/dialog"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
)

// Server exposes the conversation over HTTP. User identity comes from the
// request body or path, transport-level auth is the deployment's concern.
type Server struct {
	cfg       *config.Config
	dialogSvc *dialog.Service
	app       *fiber.App
}

type messageRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type messageResponse struct {
	Reply string `json:"reply"`
	State string `json:"state"`
}

type stateResponse struct {
	State string `json:"state"`
}

func New(di *do.Injector) (*Server, error) {
	s := &Server{
		cfg:       do.MustInvoke[*config.Config](di),
		dialogSvc: do.MustInvoke[*dialog.Service](di),
	}

	s.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	v1 := s.app.Group("/api/v1")
	v1.Post("/message", s.handleMessage)
	v1.Post("/reset/:userID", s.handleReset)
	v1.Get("/status/:userID", s.handleStatus)

	return s, nil
}

func (s *Server) handleMessage(c *fiber.Ctx) error {
	var req messageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.UserID == "" || req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id and text are required")
	}

	reply := s.dialogSvc.HandleMessage(c.UserContext(), req.UserID, req.Text)

	return c.JSON(messageResponse{
		Reply: reply,
		State: s.dialogSvc.SessionState(req.UserID).String(),
	})
}

func (s *Server) handleReset(c *fiber.Ctx) error {
	userID := c.Params("userID")
	s.dialogSvc.ResetSession(userID)

	return c.JSON(stateResponse{
		State: s.dialogSvc.SessionState(userID).String(),
	})
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	return c.JSON(stateResponse{
		State: s.dialogSvc.SessionState(c.Params("userID")).String(),
	})
}

// Run blocks until the listener fails or the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()

		if err := s.app.Shutdown(); err != nil {
			slog.Error("HTTP server shutdown failed", "error", err)
		}
	}()

	slog.Info("HTTP server listening", "addr", s.cfg.Server.Listen)

	if err := s.app.Listen(s.cfg.Server.Listen); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
