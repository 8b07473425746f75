package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"channel-message-service/internal/storage"

	"github.com/valyala/fastjson"
	"go.uber.org/zap"
)

// TODO limit reading from body

type parsers struct {
	appendMessagePool fastjson.ParserPool
	registerPool      fastjson.ParserPool
	loginPool         fastjson.ParserPool
}

type handler struct {
	logger  *zap.SugaredLogger
	store   *storage.Store
	parsers parsers
}

type messagesResponse struct {
	Messages []storage.Message `json:"messages"`
}

type usersResponse struct {
	Users []storage.User `json:"users"`
}

// index handles HTTP requests on "GET /" endpoint
func (h *handler) index(w http.ResponseWriter, _ *http.Request) {
	_, err := w.Write([]byte("API is live!"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// createKeyspace handles HTTP requests on "GET /create" endpoint
func (h *handler) createKeyspace(w http.ResponseWriter, r *http.Request) {
	if err := h.store.CreateKeyspace(r.Context()); err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, err := w.Write([]byte("Created"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// dropKeyspace handles HTTP requests on "GET /drop" endpoint
func (h *handler) dropKeyspace(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DropKeyspace(r.Context()); err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	_, err := w.Write([]byte("OK"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// createMessagesTable handles HTTP requests on "GET /messages/create" endpoint
func (h *handler) createMessagesTable(w http.ResponseWriter, r *http.Request) {
	if err := h.store.CreateMessagesTable(r.Context()); err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, err := w.Write([]byte("Table and Messages created"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// createUsersTable handles HTTP requests on "GET /users/create" endpoint
func (h *handler) createUsersTable(w http.ResponseWriter, r *http.Request) {
	if err := h.store.CreateUsersTable(r.Context()); err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, err := w.Write([]byte("Table and Users created"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// allMessages handles HTTP requests on "GET /messages" endpoint
func (h *handler) allMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.store.AllMessages(r.Context())
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(messagesResponse{Messages: messages})
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}

// channelMessages handles HTTP requests on "GET /channels/{id}/messages" endpoint
func (h *handler) channelMessages(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Path parameter \"id\" must be a 64-bit integer value", http.StatusBadRequest)
		return
	}

	messages, err := h.store.MessagesByChannel(r.Context(), channelID)
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(messagesResponse{Messages: messages})
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}

// appendMessage handles HTTP requests on "POST /channels/{id}/messages" endpoint
func (h *handler) appendMessage(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Path parameter \"id\" must be a 64-bit integer value", http.StatusBadRequest)
		return
	}

	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.appendMessagePool.Get()
	defer h.parsers.appendMessagePool.Put(parser)
	v, _ := parser.ParseBytes(body)

	// retrieving author id
	if !v.Exists("author_id") {
		http.Error(w, "Missing Field \"author_id\"", http.StatusBadRequest)
		return
	}

	authorValue := v.Get("author_id")
	if authorValue.Type() != fastjson.TypeString {
		http.Error(w, "Field \"author_id\" must be a string", http.StatusBadRequest)
		return
	}

	authorID := strings.Trim(string(authorValue.MarshalTo(nil)), `"`)
	if len(authorID) == 0 {
		http.Error(w, "Field \"author_id\" must have non-zero length", http.StatusBadRequest)
		return
	}

	// retrieving message text
	if !v.Exists("message") {
		http.Error(w, "Missing Field \"message\"", http.StatusBadRequest)
		return
	}

	messageValue := v.Get("message")
	if messageValue.Type() != fastjson.TypeString {
		http.Error(w, "Field \"message\" must be a string", http.StatusBadRequest)
		return
	}

	message := strings.Trim(string(messageValue.MarshalTo(nil)), `"`)
	if len(message) == 0 {
		http.Error(w, "Field \"message\" must have non-zero length", http.StatusBadRequest)
		return
	}

	err = h.store.AppendMessage(r.Context(), channelID, authorID, message)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidAuthorID):
			http.Error(w, "Field \"author_id\" must be a valid uuid", http.StatusBadRequest)
		case errors.Is(err, storage.ErrBlankMessage):
			http.Error(w, "Field \"message\" must have non-zero length", http.StatusBadRequest)
		default:
			h.logger.Error(err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// allUsers handles HTTP requests on "GET /users" endpoint
func (h *handler) allUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.AllUsers(r.Context())
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(usersResponse{Users: users})
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}

// register handles HTTP requests on "POST /users/register" endpoint
func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.registerPool.Get()
	defer h.parsers.registerPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	fields := make(map[string]string, 3)
	for _, name := range []string{"username", "email", "password"} {
		if !v.Exists(name) {
			http.Error(w, "Missing Field \""+name+"\"", http.StatusBadRequest)
			return
		}

		value := v.Get(name)
		if value.Type() != fastjson.TypeString {
			http.Error(w, "Field \""+name+"\" must be a string", http.StatusBadRequest)
			return
		}

		fields[name] = strings.Trim(string(value.MarshalTo(nil)), `"`)
		if len(fields[name]) == 0 {
			http.Error(w, "Field \""+name+"\" must have non-zero length", http.StatusBadRequest)
			return
		}
	}

	err := h.store.RegisterUser(r.Context(), fields["username"], fields["email"], fields["password"])
	if err != nil {
		if errors.Is(err, storage.ErrBlankField) {
			http.Error(w, "Fields \"username\", \"email\" and \"password\" must have non-zero length", http.StatusBadRequest)
			return
		}
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_, err = w.Write([]byte("Registered"))
	if err != nil {
		h.logger.Errorf("writing data to ResponseWriter: %v", err)
	}
}

// login handles HTTP requests on "POST /users/login" endpoint
func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	parser := h.parsers.loginPool.Get()
	defer h.parsers.loginPool.Put(parser)
	v, _ := parser.ParseBytes(body)

	fields := make(map[string]string, 2)
	for _, name := range []string{"username", "password"} {
		if !v.Exists(name) {
			http.Error(w, "Missing Field \""+name+"\"", http.StatusBadRequest)
			return
		}

		value := v.Get(name)
		if value.Type() != fastjson.TypeString {
			http.Error(w, "Field \""+name+"\" must be a string", http.StatusBadRequest)
			return
		}

		fields[name] = strings.Trim(string(value.MarshalTo(nil)), `"`)
		if len(fields[name]) == 0 {
			http.Error(w, "Field \""+name+"\" must have non-zero length", http.StatusBadRequest)
			return
		}
	}

	user, err := h.store.Login(r.Context(), fields["username"], fields["password"])
	if err != nil {
		if errors.Is(err, storage.ErrUnauthorized) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload, err := json.Marshal(user)
	if err != nil {
		h.logger.Error(err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(payload)
	if err != nil {
		h.logger.Errorf("writing marshaled data to ResponseWriter: %v", err)
	}
}
