package server

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/rolodex-hq/rolodex/server/logger"
	"github.com/rolodex-hq/rolodex/server/models"
	"github.com/spf13/viper"
)

var logg = logger.NewLogger()

// Start brings up the contacts API: open & migrate the db, wire the
// router to a store over that db, then serve until SIGINT/SIGTERM.
func Start(config *viper.Viper, devMode bool) {
	serverConfig := validatedServerConfig(config)

	db, err := models.AutoMigrate(serverConfig.Sqlite.PassPhrase, configDirectory(devMode))
	fatalOnError(err)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%v", serverConfig.Rolodex.Listener.Port),
		Handler: newHandler(models.NewContactStore(db)),
	}

	go serve(srv)

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, syscall.SIGINT, syscall.SIGTERM)
	<-sigChannel

	cleanup(srv)
}

// newHandler assembles the full middleware chain around the contacts
// routes. CORS sits inside logging so preflights get logged too.
func newHandler(store *models.ContactStore) http.Handler {
	return loggingMiddleware(corsMiddleware(jsonContentTypeMiddleware(newRouter(store))))
}

func newRouter(store *models.ContactStore) *mux.Router {
	handler := &contactsHandler{store: store}

	router := mux.NewRouter()
	router.HandleFunc("/contacts", handler.createContact).Methods("POST")
	router.HandleFunc("/contacts", handler.listContacts).Methods("GET")
	router.HandleFunc("/contacts/{id}", handler.deleteContact).Methods("DELETE")

	return router
}
