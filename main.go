package main

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"quotevault/internal/auth"
	"quotevault/internal/config"
	"quotevault/internal/email"
	"quotevault/internal/handlers"
	"quotevault/internal/mailqueue"
	"quotevault/internal/middleware"
	"quotevault/internal/store/sqlstore"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Initialize Database
	s, err := sqlstore.New(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer s.Close()

	// Outbound mail runs on its own worker so requests never wait on SMTP
	sender := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	queue := mailqueue.New(sender, log)
	go queue.Run()
	defer queue.Close()

	signer := auth.NewSigner([]byte(cfg.SecretKey))

	// Initialize Handlers
	authHandler := &handlers.AuthHandler{
		Store:   s,
		Signer:  signer,
		Secret:  []byte(cfg.SecretKey),
		Queue:   queue,
		BaseURL: cfg.BaseURL,
	}
	quoteHandler := &handlers.QuoteHandler{Store: s}
	collectionHandler := &handlers.CollectionHandler{Store: s}
	apiHandler := &handlers.APIHandler{Store: s}

	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

	// Account endpoints
	r.HandleFunc("/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET") // clearing the cookie needs no session lookup
	r.HandleFunc("/forgot", authHandler.Forgot).Methods("POST")
	r.HandleFunc("/recover-password/{token}", authHandler.RecoverCheck).Methods("GET")
	r.HandleFunc("/recover-password/{token}", authHandler.RecoverSubmit).Methods("POST")

	// Authenticated endpoints
	protect := middleware.Session(signer, s)
	r.Handle("/quotes", protect(http.HandlerFunc(quoteHandler.List))).Methods("GET")
	r.Handle("/quotes", protect(http.HandlerFunc(quoteHandler.Create))).Methods("POST")
	r.Handle("/quotes/{id}", protect(http.HandlerFunc(quoteHandler.Get))).Methods("GET")
	r.Handle("/quotes/{id}", protect(http.HandlerFunc(quoteHandler.Edit))).Methods("POST")
	r.Handle("/collections", protect(http.HandlerFunc(collectionHandler.List))).Methods("GET")
	r.Handle("/collections", protect(http.HandlerFunc(collectionHandler.Create))).Methods("POST")
	r.Handle("/collection/{name}", protect(http.HandlerFunc(collectionHandler.Get))).Methods("GET")
	r.Handle("/collection/{name}", protect(http.HandlerFunc(collectionHandler.Edit))).Methods("POST")

	// Public JSON API, open to cross-origin reads
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS)
	api.HandleFunc("/collection/{name}", apiHandler.CollectionQuotes).Methods("GET", "OPTIONS")
	api.HandleFunc("/collection/{name}/random", apiHandler.RandomQuote).Methods("GET", "OPTIONS")
	api.HandleFunc("/quote/{id}", apiHandler.Quote).Methods("GET", "OPTIONS")

	// Landing page
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "static/index.html")
	}).Methods("GET")

	log.Info().Str("addr", cfg.Addr).Msg("starting server")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
