// Package testutils implements a fake Jumbo mobile API server for tests.
package testutils

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

// Token is the session token handed out by the fake server.
const Token = "fake-jumbo-token"

// APIServer mimics the Jumbo mobile API: login hands out a fixed token in
// the x-jumbo-token response header, all other endpoints require that token
// and serve the configured payloads.
type APIServer struct {
	Username string
	Password string

	// payloads served; raw JSON as produced by the real API
	Profile string
	Slots   string
	Orders  string
	Basket  string

	RejectLogin bool
	LoginCalls  atomic.Int32
	SlotCalls   atomic.Int32
	OrderCalls  atomic.Int32
}

var _ http.Handler = &APIServer{}

func (s *APIServer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path == "/v9/users/login" {
		s.login(w, req)
		return
	}

	if req.Header.Get("x-jumbo-token") != Token {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	var response string
	switch req.URL.Path {
	case "/v9/users/me":
		response = orDefault(s.Profile, defaultProfile)
	case "/v9/stores/slots":
		s.SlotCalls.Add(1)
		if req.URL.Query().Get("storeId") == "" {
			http.Error(w, "missing storeId", http.StatusBadRequest)
			return
		}
		response = orDefault(s.Slots, defaultSlots)
	case "/v9/users/me/orders":
		s.OrderCalls.Add(1)
		response = orDefault(s.Orders, defaultOrders)
	case "/v9/basket":
		if req.Method == http.MethodPost {
			_ = req.ParseForm()
			if req.PostForm.Get("sku") == "" {
				http.Error(w, "missing sku", http.StatusBadRequest)
				return
			}
		}
		response = orDefault(s.Basket, defaultBasket)
	default:
		http.Error(w, "not found: "+req.URL.Path, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(response))
}

func (s *APIServer) login(w http.ResponseWriter, req *http.Request) {
	s.LoginCalls.Add(1)
	if req.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_ = req.ParseForm()
	if s.RejectLogin ||
		(s.Username != "" && req.PostForm.Get("username") != s.Username) ||
		(s.Password != "" && req.PostForm.Get("password") != s.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	w.Header().Set("x-jumbo-token", Token)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

const defaultProfile = `{
  "user": {
    "data": {
      "store": {
        "id": "441",
        "complexNumber": "33249",
        "longitude": 4.895168,
        "latitude": 52.370216
      }
    }
  }
}`

const defaultSlots = `{
  "timeSlots": {
    "data": [
      {
        "day": "2024-05-16",
        "timeSlots": [
          { "startDateTime": "2024-05-16T09:00:00Z", "endDateTime": "2024-05-16T11:00:00Z", "available": true },
          { "startDateTime": "2024-05-16T11:00:00Z", "endDateTime": "2024-05-16T13:00:00Z", "available": false }
        ]
      },
      {
        "day": "2024-05-17",
        "timeSlots": [
          { "startDateTime": "2024-05-17T17:00:00Z", "endDateTime": "2024-05-17T19:00:00Z", "available": true }
        ]
      }
    ]
  }
}`

const defaultOrders = `{
  "orders": {
    "data": [
      {
        "id": "100001",
        "status": "OPEN",
        "type": "homeDelivery",
        "delivery": {
          "date": "2024-05-17",
          "startDateTime": "2024-05-17T17:00:00Z",
          "endDateTime": "2024-05-17T19:00:00Z",
          "time": "17:00 - 19:00"
        }
      },
      {
        "id": "100002",
        "status": "COMPLETED",
        "type": "homeDelivery",
        "delivery": {
          "date": "2024-05-01",
          "startDateTime": "2024-05-01T09:00:00Z",
          "endDateTime": "2024-05-01T11:00:00Z",
          "time": "09:00 - 11:00"
        }
      }
    ]
  }
}`

const defaultBasket = `{
  "basket": {
    "data": {
      "items": [
        { "sku": "211761ZK", "quantity": 1, "unit": "pieces" }
      ],
      "prices": {
        "total": { "currency": "EUR", "amount": 250 }
      }
    }
  }
}`
