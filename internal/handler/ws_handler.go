package handler

import (
	"ai-studybuddy-be/internal/pkg/logger"
	"ai-studybuddy-be/internal/service"
	internalWS "ai-studybuddy-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// WsHandler upgrades websocket connections and binds them to a study session.
type WsHandler struct {
	sessionService service.ISessionService
	hub            *internalWS.Hub
	logger         logger.ILogger
}

func NewWsHandler(sessionService service.ISessionService, hub *internalWS.Hub, log logger.ILogger) *WsHandler {
	return &WsHandler{
		sessionService: sessionService,
		hub:            hub,
		logger:         log,
	}
}

// ServeWs handles websocket requests from the peer. Sessions are anonymous,
// so the handshake is keyed by the session id in the path rather than a token.
func (h *WsHandler) ServeWs(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id"})
	}

	exists, err := h.sessionService.Exists(c.UserContext(), sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not verify session"})
	}
	if !exists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	// Upgrade via Fiber WebSocket Middleware. The helper hijacks the connection.
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("WsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("WsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket route.
func (h *WsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/:session_id", h.ServeWs)
}
