package colorpicker

import (
	"bufio"
	"bytes"
	"crypto/subtle"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

var getRegex = regexp.MustCompile(`^GET /(?:\?[a-z0-9=&]*)? HTTP`)

const (
	crlf                = "\r\n"
	httpOk              = "HTTP/1.1 200 OK" + crlf
	httpBadRequest      = "HTTP/1.1 400 Bad Request" + crlf
	httpUnauthorized    = "HTTP/1.1 401 Unauthorized" + crlf
	httpUnavailable     = "HTTP/1.1 503 Service Unavailable" + crlf
	httpReadTimeout     = 10 * time.Second
	apiKeyEnvironment   = "COLORPICKER_API_KEY"
	defaultListenerHost = "localhost"
)

// remote is the part of the Loop the server talks to
type remote interface {
	Post(actions ...*action) bool
	Query() (string, bool)
}

type httpServer struct {
	apiKey []byte
	remote remote
}

// startHttpServer listens on localhost. Port 0 picks a free port, and a
// negative port disables the server. The returned listener is nil when the
// server is disabled.
func startHttpServer(port int, remote remote) (net.Listener, int, error) {
	if port < 0 {
		return nil, port, nil
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", defaultListenerHost, port))
	if err != nil {
		return nil, port, errors.Errorf("port not available: %d", port)
	}
	if port == 0 {
		addr := listener.Addr().String()
		parts := strings.SplitN(addr, ":", 2)
		if len(parts) < 2 {
			listener.Close()
			return nil, port, errors.Errorf("cannot extract port: %s", addr)
		}
		port, err = strconv.Atoi(parts[1])
		if err != nil {
			listener.Close()
			return nil, port, errors.Wrap(err, "cannot extract port")
		}
	}

	server := httpServer{
		apiKey: []byte(os.Getenv(apiKeyEnvironment)),
		remote: remote,
	}

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					break
				}
				continue
			}
			conn.Write([]byte(server.handleHttpRequest(conn)))
			conn.Close()
		}
		listener.Close()
	}()

	astilog.Debugf("listening on %s:%d", defaultListenerHost, port)
	return listener, port, nil
}

// Here we are writing a simplistic HTTP server without using net/http
// package to reduce the size of the binary.
func (server *httpServer) handleHttpRequest(conn net.Conn) string {
	contentLength := 0
	apiKey := ""
	body := ""
	answer := func(code string, message string) string {
		message += "\n"
		return code + fmt.Sprintf("Content-Length: %d%s", len(message), crlf+crlf+message)
	}
	unauthorized := func(message string) string {
		return answer(httpUnauthorized, message)
	}
	bad := func(message string) string {
		return answer(httpBadRequest, message)
	}
	good := func(message string) string {
		return answer(httpOk+"Content-Type: application/json"+crlf, message)
	}
	unavailable := func() string {
		return answer(httpUnavailable, "color picker is not running")
	}
	authorized := func() bool {
		return len(server.apiKey) == 0 || subtle.ConstantTimeCompare([]byte(apiKey), server.apiKey) == 1
	}
	conn.SetReadDeadline(time.Now().Add(httpReadTimeout))
	scanner := bufio.NewScanner(conn)
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		found := bytes.Index(data, []byte(crlf))
		if found >= 0 {
			token := data[:found+len(crlf)]
			return len(token), token, nil
		}
		if atEOF || len(body)+len(data) >= contentLength {
			return 0, data, bufio.ErrFinalToken
		}
		return 0, nil, nil
	})

	get := false
	section := 0
	for scanner.Scan() {
		text := scanner.Text()
		switch section {
		case 0:
			if getRegex.MatchString(text) {
				get = true
			} else if !strings.HasPrefix(text, "POST / HTTP") {
				return bad("invalid request method")
			}
			section++
		case 1:
			if text == crlf {
				if get {
					section = 3
					break
				}
				if contentLength == 0 {
					return bad("content-length header missing")
				}
				section++
				continue
			}
			pair := strings.SplitN(text, ":", 2)
			if len(pair) == 2 {
				switch strings.ToLower(pair[0]) {
				case "content-length":
					length, err := strconv.Atoi(strings.TrimSpace(pair[1]))
					if err != nil || length <= 0 || length > maxRequestSize {
						return bad("invalid content length")
					}
					contentLength = length
				case "x-api-key":
					apiKey = strings.TrimSpace(pair[1])
				}
			}
		case 2:
			body += text
		}
		if section == 3 {
			break
		}
	}

	if !authorized() {
		return unauthorized("invalid api key")
	}

	if get {
		response, ok := server.remote.Query()
		if !ok {
			return unavailable()
		}
		return good(response)
	}

	if len(body) < contentLength {
		return bad("incomplete request")
	}
	body = body[:contentLength]

	actions, err := parseActionList(strings.Trim(body, "\r\n"))
	if err != nil {
		return bad(err.Error())
	}
	if !server.remote.Post(actions...) {
		return unavailable()
	}
	return httpOk
}
