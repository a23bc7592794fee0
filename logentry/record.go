package logentry

import (
	"encoding/base64"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alonana/httfields/core"
	"github.com/alonana/httfields/har"
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// Record exposes the value of every field for one captured entry.
type Record struct {
	number    int
	tool      string
	entry     *har.Entry
	url       *url.URL
	started   time.Time
	hasTime   bool
	jarStatus string
	body      string
}

// NewRecord builds the record of an entry. jar may be nil, it should already
// contain the cookies set by the entries captured before this one.
func NewRecord(number int, tool string, entry *har.Entry, jar *CookieJar) *Record {
	r := Record{
		number:    number,
		tool:      tool,
		entry:     entry,
		jarStatus: jar.Status(entry),
		body:      entry.Response.Content.Text,
	}

	if strings.EqualFold(entry.Response.Content.Encoding, "base64") {
		decoded, err := base64.StdEncoding.DecodeString(entry.Response.Content.Text)
		if err != nil {
			core.V1("decode base64 body of entry %v failed: %v", number, err)
		} else {
			r.body = string(decoded)
		}
	}

	parsed, err := url.Parse(entry.Request.Url)
	if err != nil {
		core.V1("parse url %v of entry %v failed: %v", entry.Request.Url, number, err)
	} else {
		r.url = parsed
	}

	started, err := time.Parse(time.RFC3339Nano, entry.Started)
	if err != nil {
		core.V1("parse start time %v of entry %v failed: %v", entry.Started, number, err)
	} else {
		r.started = started
		r.hasTime = true
	}

	return &r
}

func (r *Record) Number() int {
	return r.number
}

// Value returns the field value, typed according to the field type. The
// boolean is false when the entry carries no value for the field.
func (r *Record) Value(field Field) (interface{}, bool) {
	if !field.valid() {
		return nil, false
	}
	if field.Group() == Response && !r.entry.HasResponse() {
		return nil, false
	}
	if r.url == nil && r.needsURL(field) {
		return nil, false
	}

	request := &r.entry.Request
	response := &r.entry.Response

	switch field {
	case Number:
		return r.number, true
	case ProxyTool, RequestTool:
		return r.tool, true
	case ListenerInterface:
		// HAR records the remote server address, not the listener.
		return nil, false
	case ClientIP:
		return r.entry.ClientIP, true
	case Comment:
		return r.entry.Comment, true

	case RequestHeaders:
		return r.requestHeaders(), true
	case ResponseHeaders:
		return r.responseHeaders(), true
	case RequestBody:
		if request.PostData == nil {
			return "", true
		}
		return request.PostData.Text, true
	case ResponseBody:
		return r.body, true
	case RequestTime:
		if !r.hasTime {
			return nil, false
		}
		return r.started, true
	case ResponseTime:
		if !r.hasTime {
			return nil, false
		}
		return r.started.Add(time.Duration(r.entry.Time * float64(time.Millisecond))), true
	case RequestLength:
		return positive(request.HeadersSize) + positive(request.BodySize), true
	case ResponseLength:
		return positive(response.HeadersSize) + positive(response.BodySize), true

	case Complete:
		return r.entry.HasResponse(), true
	case URL:
		return request.Url, true
	case Method:
		return request.Method, true
	case Path:
		return r.url.Path, true
	case Query:
		return r.url.RawQuery, true
	case Protocol:
		return r.url.Scheme, true
	case IsSSL:
		return strings.EqualFold(r.url.Scheme, "https"), true
	case UsesCookieJar:
		return r.jarStatus, true
	case Hostname:
		return r.url.Hostname(), true
	case Host:
		return fmt.Sprintf("%v://%v", r.url.Scheme, r.url.Hostname()), true
	case Port:
		return r.port()
	case RequestContentType:
		value, _ := request.Header("Content-Type")
		return value, true
	case Extension:
		return strings.TrimPrefix(path.Ext(r.url.Path), "."), true
	case Referrer:
		value, _ := request.Header("Referer")
		return value, true
	case HasParams:
		return r.hasGetParam() || r.hasPostParam() || r.hasCookieParam(), true
	case HasGetParam:
		return r.hasGetParam(), true
	case HasPostParam:
		return r.hasPostParam(), true
	case HasCookieParam:
		return r.hasCookieParam(), true
	case SentCookies:
		return r.sentCookies(), true

	case Status:
		return response.Status, true
	case RTT:
		return int(math.Round(r.entry.Time)), true
	case Title:
		return r.title(), true
	case ResponseContentType:
		value, _ := response.Header("Content-Type")
		return value, true
	case InferredType:
		return r.inferredType(), true
	case MimeType:
		return response.Content.MimeType, true
	case HasSetCookies:
		return len(response.Cookies) > 0 || len(response.HeaderValues("Set-Cookie")) > 0, true
	case NewCookies:
		return r.newCookies(), true
	}

	return nil, false
}

func (r *Record) needsURL(field Field) bool {
	switch field {
	case Path, Query, Protocol, IsSSL, Hostname, Host, Port, Extension, HasParams, HasGetParam:
		return true
	}
	return false
}

func (r *Record) requestHeaders() string {
	request := &r.entry.Request
	target := request.Url
	if r.url != nil {
		target = r.url.RequestURI()
	}
	lines := []string{fmt.Sprintf("%v %v %v", request.Method, target, request.HttpVersion)}
	return joinHeaders(lines, request.Headers)
}

func (r *Record) responseHeaders() string {
	response := &r.entry.Response
	lines := []string{strings.TrimSpace(fmt.Sprintf("%v %v %v", response.HttpVersion, response.Status, response.StatusText))}
	return joinHeaders(lines, response.Headers)
}

func joinHeaders(lines []string, headers []har.Pair) string {
	for i := 0; i < len(headers); i++ {
		lines = append(lines, fmt.Sprintf("%v: %v", headers[i].Name, headers[i].Value))
	}
	return strings.Join(lines, "\n")
}

func (r *Record) port() (interface{}, bool) {
	if r.url.Port() != "" {
		port, err := strconv.Atoi(r.url.Port())
		if err != nil {
			return nil, false
		}
		return port, true
	}
	switch strings.ToLower(r.url.Scheme) {
	case "https", "wss":
		return 443, true
	case "http", "ws":
		return 80, true
	}
	return nil, false
}

func (r *Record) hasGetParam() bool {
	return len(r.entry.Request.QueryString) > 0 || r.url.RawQuery != ""
}

func (r *Record) hasPostParam() bool {
	postData := r.entry.Request.PostData
	return postData != nil && (len(postData.Params) > 0 || postData.Text != "")
}

func (r *Record) hasCookieParam() bool {
	return len(sentCookies(&r.entry.Request)) > 0
}

func (r *Record) sentCookies() string {
	request := &r.entry.Request
	header, exists := request.Header("Cookie")
	if exists {
		return header
	}
	pairs := make([]string, len(request.Cookies))
	for i := 0; i < len(request.Cookies); i++ {
		pairs[i] = request.Cookies[i].Name + "=" + request.Cookies[i].Value
	}
	return strings.Join(pairs, "; ")
}

func (r *Record) title() string {
	match := titlePattern.FindStringSubmatch(r.body)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func (r *Record) inferredType() string {
	if r.body == "" {
		return ""
	}
	detected := http.DetectContentType([]byte(r.body))
	position := strings.Index(detected, ";")
	if position != -1 {
		detected = detected[:position]
	}
	return detected
}

func (r *Record) newCookies() string {
	response := &r.entry.Response
	var pairs []string
	for i := 0; i < len(response.Cookies); i++ {
		pairs = append(pairs, response.Cookies[i].Name+"="+response.Cookies[i].Value)
	}
	if len(pairs) == 0 {
		for _, cookie := range setCookieHeaders(response) {
			pairs = append(pairs, cookie.Name+"="+cookie.Value)
		}
	}
	return strings.Join(pairs, "; ")
}

func positive(size int) int {
	if size < 0 {
		return 0
	}
	return size
}
