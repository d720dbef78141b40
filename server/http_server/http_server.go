package http_server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"morse_translator/codec"
	"morse_translator/encoding"
	"morse_translator/settings"
)

const shutdownTimeout = time.Second * 10

type Server struct {
	settings   settings.Settings
	translator *codec.Translator
	cache      *settings.Cache
}

func New(s settings.Settings) *Server {
	return &Server{
		settings:   s,
		translator: codec.New(s.Codec()),
		cache:      settings.NewCache(s.Server.CacheTTL, s.Server.CacheMaxEntries, s.Server.CacheMaxInput),
	}
}

func isRemoteAddrLocal(remoteAddr string) bool {
	for _, prefix := range []string{"127.", "192.168.", "10.", "localhost", "[::1]"} {
		if strings.HasPrefix(remoteAddr, prefix) {
			return true
		}
	}
	return false
}

func (srv *Server) HandleRequest(w http.ResponseWriter, r *http.Request) {
	remoteAddr := r.RemoteAddr
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" && isRemoteAddrLocal(remoteAddr) {
		remoteAddr = realIP
	}

	logr := logrus.WithFields(logrus.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"remote_addr": remoteAddr,
	})
	startedAt := time.Now()
	defer func() {
		logr.WithField("duration", time.Since(startedAt).Round(time.Millisecond)).Info("Request finished")
	}()

	switch r.URL.Path {
	case "/healthz":
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(w, http.MethodGet, http.MethodHead)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok\n")
	case "/table":
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			methodNotAllowed(w, http.MethodGet, http.MethodHead)
			return
		}
		srv.handleTable(w, r, logr)
	case "/translate":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, http.MethodPost)
			return
		}
		srv.handleTranslate(w, r, logr)
	default:
		logr.Warn("Path not found")
		http.NotFound(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

func (srv *Server) handleTable(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) {
	var b strings.Builder
	for _, e := range codec.Table() {
		fmt.Fprintf(&b, "%c %s\n", e.Symbol, e.Code)
	}
	srv.writeText(w, r, logr, b.String())
}

// requestConfig applies the per request overrides from the query string.
// A present but empty parameter is an override too.
func (srv *Server) requestConfig(r *http.Request) (codec.Config, string) {
	cfg := srv.translator.Config()
	direction := srv.settings.Direction

	q := r.URL.Query()
	if q.Has("sentence_delimiter") {
		cfg.SentenceDelimiter = q.Get("sentence_delimiter")
	}
	if q.Has("word_boundary") {
		cfg.WordBoundary = q.Get("word_boundary")
	}
	if q.Has("unknown") {
		cfg.Unknown = q.Get("unknown")
	}
	if q.Has("direction") {
		direction = q.Get("direction")
	}
	return cfg, direction
}

func (srv *Server) handleTranslate(w http.ResponseWriter, r *http.Request, logr *logrus.Entry) {
	cfg, directionName := srv.requestConfig(r)
	forced, auto, err := codec.ParseDirection(directionName)
	if err != nil {
		logr.WithError(err).Warn("Bad direction")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, srv.settings.Server.MaxBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			logr.WithField("limit", maxErr.Limit).Warn("Body too large")
			http.Error(w, "Body too large", http.StatusRequestEntityTooLarge)
			return
		}
		logr.WithError(err).Error("Error reading body")
		http.Error(w, "Error reading body", http.StatusBadRequest)
		return
	}

	if contentEncoding := r.Header.Get("Content-Encoding"); contentEncoding != "" {
		if !encoding.Supported(contentEncoding) {
			logr.WithField("content_encoding", contentEncoding).Warn("Unsupported content encoding")
			http.Error(w, "Unsupported content encoding", http.StatusUnsupportedMediaType)
			return
		}
		body, err = encoding.Decode(body, contentEncoding)
		if err != nil {
			logr.WithError(err).Warn("Error decoding body")
			http.Error(w, "Error decoding body", http.StatusBadRequest)
			return
		}
	}

	translator := srv.translator
	if cfg != translator.Config() {
		translator = codec.New(cfg)
	}

	input := string(body)
	key := settings.CacheKey{Config: cfg, Input: input, Direction: forced}
	if auto {
		// auto and forced encode must not share entries
		key.Direction = -1
	}

	var out string
	var d codec.Direction
	if entry, ok := srv.cache.Probe(key); ok {
		logr.Info("Returning from cache")
		out, d = entry.Output, entry.Direction
	} else {
		if auto {
			out, d = translator.Translate(input)
		} else {
			out, d = translator.TranslateAs(input, forced), forced
		}
		srv.cache.Save(key, out, d)
	}

	logr.WithField("direction", d.String()).WithField("input_length", len(input)).Info("Translated")
	w.Header().Set("X-Direction", d.String())
	srv.writeText(w, r, logr, out+"\n")
}

func (srv *Server) writeText(w http.ResponseWriter, r *http.Request, logr *logrus.Entry, text string) {
	body, retEncoding, err := encoding.EncodeAccepted([]byte(text), r.Header.Get("Accept-Encoding"))
	if err != nil {
		logr.WithError(err).Error("Error encoding body")
		http.Error(w, "Error encoding body", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Vary", "Accept-Encoding")
	if retEncoding != "" {
		w.Header().Set("Content-Encoding", retEncoding)
	}
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}

// sweepCache drops expired cache entries until ctx is done.
func (srv *Server) sweepCache(ctx context.Context) {
	if !srv.cache.Enabled() {
		return
	}
	ticker := time.NewTicker(srv.settings.Server.CacheTTL)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			srv.cache.Sweep()
		}
	}
}

// Serve listens on the configured address until ctx is cancelled and then
// shuts down gracefully. A listener may be passed in place of the address.
func Serve(ctx context.Context, s settings.Settings, ln net.Listener) error {
	srv := New(s)
	httpServer := &http.Server{
		Addr:              s.Server.Addr,
		Handler:           http.HandlerFunc(srv.HandleRequest),
		ReadHeaderTimeout: time.Second * 10,
	}

	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", s.Server.Addr)
		if err != nil {
			return fmt.Errorf("error listening on %s: %w", s.Server.Addr, err)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go srv.sweepCache(ctx)

	errCh := make(chan error, 1)
	go func() {
		logrus.WithFields(s.LogrusFieldsWithAction("serve")).WithField("addr", ln.Addr().String()).Info("Starting server")
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("error serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down: %w", err)
	}
	logrus.Info("Server stopped")
	return nil
}
