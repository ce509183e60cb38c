package handler

import (
	"net/http"
	"time"

	"MedLink/internal/modules/notification/application/service"
	userRepository "MedLink/internal/modules/user/domain/repository"
	"MedLink/pkg/util/myjwt"
	"MedLink/pkg/ws"
	"MedLink/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WsHandler 仪表盘实时通道：通知流的新条目经 Hub 推给所有在线端
type WsHandler struct {
	hub      *ws.Hub
	userRepo userRepository.UserRepository
	feed     service.FeedService
}

func NewWsHandler(hub *ws.Hub, userRepo userRepository.UserRepository, feed service.FeedService) *WsHandler {
	return &WsHandler{hub: hub, userRepo: userRepo, feed: feed}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect 握手走 URL 参数带 token（浏览器原生 WebSocket 不支持自定义 Header），
// 不经过 jwt 中间件，这里手动校验
func (h *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := myjwt.ParseToken(token)
	if err != nil || claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if _, err := h.userRepo.GetByUuid(claims.Uuid); err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Error(err.Error())
		return
	}

	client := ws.NewClient(claims.Uuid, conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	// 刚上线的端先收一条未读数快照，补上离线期间的状态
	_ = h.hub.SendJSON(claims.Uuid, map[string]interface{}{
		"type":         "feed_snapshot",
		"unread_count": h.feed.UnreadCount(),
	})

	conn.SetReadLimit(1 << 16)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	go client.WritePump()

	// 下行单向推送，读循环只消费心跳并感知断开
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}
