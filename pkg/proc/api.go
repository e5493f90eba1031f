package proc

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Api exposes the suspend/resume surface over HTTP, usually on a unix
// socket inside the container. It owns no supervision state: every handler
// funnels its operation through the loop's request channel.
type Api struct {
	listenAddr string
	router     *mux.Router
	srv        *http.Server
	requests   chan<- Request
}

func NewApi(listenAddr string, requests chan<- Request) *Api {
	api := &Api{
		listenAddr: listenAddr,
		router:     mux.NewRouter(),
		requests:   requests,
	}

	api.router.Path("/v1/status").Methods(http.MethodGet).HandlerFunc(api.handleStatus)
	api.router.Path("/v1/suspend").Methods(http.MethodPost).HandlerFunc(api.handleSuspend)
	api.router.Path("/v1/resume").Methods(http.MethodPost).HandlerFunc(api.handleResume)

	return api
}

func (api *Api) Start() error {
	api.srv = &http.Server{
		Addr:    api.listenAddr,
		Handler: api.router,
	}

	log.Infof("control api listens on %s", api.srv.Addr)
	if err := api.listen(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (api *Api) Shutdown() error {
	if api.srv == nil {
		return nil
	}

	log.Info("shutting down control api")
	return api.srv.Shutdown(context.Background())
}

func (api *Api) listen() error {
	socketParts := strings.Split(api.srv.Addr, "unix://")
	if len(socketParts) <= 1 {
		return api.srv.ListenAndServe()
	}

	return api.listenOnUnixSocket(socketParts[1])
}

func (api *Api) listenOnUnixSocket(socketFile string) error {
	socketDir := path.Dir(socketFile)
	if err := os.MkdirAll(socketDir, 0o755); err != nil {
		return errors.Wrap(err, "failed to prepare folder for socket-file")
	}
	conn, err := net.Listen("unix", socketFile)
	if err != nil {
		return err
	}
	return api.srv.Serve(conn)
}

func (api *Api) handleStatus(writer http.ResponseWriter, req *http.Request) {
	api.respond(writer, NewRequest(RequestStatus))
}

func (api *Api) handleSuspend(writer http.ResponseWriter, req *http.Request) {
	api.respond(writer, NewRequest(RequestSuspend))
}

func (api *Api) handleResume(writer http.ResponseWriter, req *http.Request) {
	request := NewRequest(RequestResume)

	if raw := req.FormValue("generation"); raw != "" {
		generation, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(writer, "generation must be an unsigned integer", http.StatusBadRequest)
			return
		}
		request.Generation = &generation
	}

	api.respond(writer, request)
}

func (api *Api) respond(writer http.ResponseWriter, request Request) {
	api.requests <- request
	status := request.Await()

	out, err := json.Marshal(status)
	if err != nil {
		http.Error(writer, "failed to marshal status", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	_, _ = writer.Write(out)
}
