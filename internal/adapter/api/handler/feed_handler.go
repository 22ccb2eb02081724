package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "gamedex/internal/infrastructure/websocket"
	"gamedex/internal/usecase"
	"gamedex/pkg/logger"
	"gamedex/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// FeedHandler connects live-feed subscribers and accepts device motion
// reports that may trigger a surprise pick.
type FeedHandler struct {
	hub    *ws.Hub
	motion chan<- usecase.MotionSample
}

var feedHandler *FeedHandler

func SetupFeedHandler(hub *ws.Hub, motion chan<- usecase.MotionSample) {
	feedHandler = &FeedHandler{hub: hub, motion: motion}
}

func GetFeedHandler() *FeedHandler {
	return feedHandler
}

// Subscribe upgrades the connection and registers the client with the hub.
func (h *FeedHandler) Subscribe(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("Feed upgrade failed: %v", err)
		return err
	}

	client := &ws.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 16),
	}

	h.hub.Register <- client

	go client.WritePump()
	go client.ReadPump(h.hub)

	return nil
}

type motionRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ReportMotion feeds one accelerometer sample into the shake detector. The
// sample is dropped when the feed loop is behind; motion is lossy by nature.
func (h *FeedHandler) ReportMotion(c echo.Context) error {
	var req motionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sample := usecase.MotionSample{
		X:  req.X,
		Y:  req.Y,
		Z:  req.Z,
		At: time.Now(),
	}

	select {
	case h.motion <- sample:
	default:
	}

	return response.Success(c, map[string]string{
		"message": "Sample received",
	})
}
