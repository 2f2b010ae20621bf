package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	graphql "github.com/graph-gophers/graphql-go"

	"eats-backend/models"
	"eats-backend/services"
	"eats-backend/utils"
)

// graphql-ws frame types (subscriptions-transport-ws protocol).
const (
	msgConnectionInit      = "connection_init"
	msgConnectionAck       = "connection_ack"
	msgStart               = "start"
	msgData                = "data"
	msgError               = "error"
	msgComplete            = "complete"
	msgStop                = "stop"
	msgConnectionTerminate = "connection_terminate"
)

type wsMessage struct {
	ID      string          `json:"id,omitempty"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type wsInitPayload struct {
	AuthToken     string `json:"authToken"`
	Authorization string `json:"Authorization"`
}

type wsStartPayload struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

var upgrader = websocket.Upgrader{
	Subprotocols: []string{"graphql-ws"},
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SubscriptionHandler speaks the graphql-ws subprotocol over a gorilla
// websocket and drives Schema.Subscribe for every started operation.
type SubscriptionHandler struct {
	Schema *graphql.Schema
	Users  *services.UserService
}

func NewSubscriptionHandler(schema *graphql.Schema, users *services.UserService) *SubscriptionHandler {
	return &SubscriptionHandler{Schema: schema, Users: users}
}

func (h *SubscriptionHandler) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("ws: upgrade: %v", err)
		return
	}
	defer conn.Close()

	baseCtx, cancelAll := context.WithCancel(c.Request.Context())
	defer cancelAll()
	connCtx := baseCtx

	// gorilla allows one concurrent writer only.
	var writeMu sync.Mutex
	send := func(msg wsMessage) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(msg); err != nil {
			utils.ErrorLogger.Printf("ws: write: %v", err)
		}
	}

	cancels := make(map[string]context.CancelFunc)

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}

		switch msg.Type {
		case msgConnectionInit:
			var payload wsInitPayload
			if len(msg.Payload) > 0 {
				if err := json.Unmarshal(msg.Payload, &payload); err != nil {
					utils.ErrorLogger.Printf("ws: init payload: %v", err)
				}
			}
			token := payload.AuthToken
			if token == "" {
				token = strings.TrimPrefix(payload.Authorization, "Bearer ")
			}
			if token == "" {
				token = c.Query("token")
			}
			if user := h.lookupUser(token); user != nil {
				connCtx = WithUser(baseCtx, user)
			}
			send(wsMessage{Type: msgConnectionAck})

		case msgStart:
			var payload wsStartPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				send(errMessage(msg.ID, "malformed start payload"))
				continue
			}

			opCtx, cancel := context.WithCancel(connCtx)
			responses, err := h.Schema.Subscribe(opCtx, payload.Query, payload.OperationName, payload.Variables)
			if err != nil {
				cancel()
				send(errMessage(msg.ID, err.Error()))
				continue
			}
			cancels[msg.ID] = cancel

			go func(id string) {
				for resp := range responses {
					data, err := json.Marshal(resp)
					if err != nil {
						utils.ErrorLogger.Printf("ws: marshal response: %v", err)
						continue
					}
					send(wsMessage{ID: id, Type: msgData, Payload: data})
				}
				send(wsMessage{ID: id, Type: msgComplete})
			}(msg.ID)

		case msgStop:
			if cancel, found := cancels[msg.ID]; found {
				cancel()
				delete(cancels, msg.ID)
			}

		case msgConnectionTerminate:
			return
		}
	}
}

func (h *SubscriptionHandler) lookupUser(token string) *models.User {
	if token == "" {
		return nil
	}
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil
	}
	user, err := h.Users.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

func errMessage(id, text string) wsMessage {
	payload, _ := json.Marshal(map[string]string{"message": text})
	return wsMessage{ID: id, Type: msgError, Payload: payload}
}
