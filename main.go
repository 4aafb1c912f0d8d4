package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rdesai/chatrelay/internal/handlers"
	"github.com/rdesai/chatrelay/internal/middleware"
	"github.com/rdesai/chatrelay/internal/store/sqlstore"
	"github.com/rdesai/chatrelay/internal/ws"
)

var (
	addr           = flag.String("addr", ":5000", "http service address")
	dbDriver       = flag.String("db-driver", "sqlite3", "database driver (sqlite3 or postgres)")
	dbDSN          = flag.String("db-dsn", "chatrelay.db", "database connection string")
	typingDebounce = flag.Duration("typing-debounce", 0, "per-room typing relay window (0 forwards every event)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	store, err := sqlstore.New(*dbDriver, *dbDSN)
	if err != nil {
		log.Fatal(err)
	}

	hub := ws.NewHub(store)
	hub.SetTypingDebounce(*typingDebounce)
	go hub.Run()

	authHandler := &handlers.AuthHandler{Store: store}
	groupHandler := &handlers.GroupHandler{Store: store}
	messageHandler := &handlers.MessageHandler{Store: store}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(middleware.Auth)
	api.HandleFunc("/api/groups/create", groupHandler.CreateGroup).Methods("POST")
	api.HandleFunc("/api/groups/{id}/add", groupHandler.AddMember).Methods("PUT")
	api.HandleFunc("/api/messages", messageHandler.GetMessages).Methods("GET")
	api.HandleFunc("/api/groupMessages", messageHandler.GetGroupMessages).Methods("GET")

	// The relay trusts identify; authentication stops at the REST surface.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	log.Println("Starting server on", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
