package logentry

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/alonana/httfields/har"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadRecords(t *testing.T) []*Record {
	harData, err := har.Load("../har/testdata/sample.har")
	require.NoError(t, err)

	jar := NewCookieJar()
	var records []*Record
	for i := 0; i < len(harData.Log.Entries); i++ {
		entry := &harData.Log.Entries[i]
		records = append(records, NewRecord(i+1, "Proxy", entry, jar))
		jar.Update(entry)
	}
	return records
}

func value(t *testing.T, r *Record, field Field) interface{} {
	v, exists := r.Value(field)
	if !exists {
		t.Fatalf("expected a value for %v in record %v", field, r.Number())
	}
	return v
}

func TestRecordValueTypes(t *testing.T) {
	for _, r := range loadRecords(t) {
		for _, field := range AllFields() {
			v, exists := r.Value(field)
			if !exists {
				continue
			}
			switch field.Type() {
			case Integer:
				_, ok := v.(int)
				assert.True(t, ok, "%v is %T", field, v)
			case String:
				_, ok := v.(string)
				assert.True(t, ok, "%v is %T", field, v)
			case Boolean:
				_, ok := v.(bool)
				assert.True(t, ok, "%v is %T", field, v)
			case Timestamp:
				_, ok := v.(time.Time)
				assert.True(t, ok, "%v is %T", field, v)
			}
		}
	}
}

func TestRecordRequestValues(t *testing.T) {
	r := loadRecords(t)[0]

	assert.Equal(t, 1, value(t, r, Number))
	assert.Equal(t, "Proxy", value(t, r, ProxyTool))
	assert.Equal(t, "Proxy", value(t, r, RequestTool))
	_, exists := r.Value(ListenerInterface)
	assert.False(t, exists)
	assert.Equal(t, "10.0.0.5", value(t, r, ClientIP))
	assert.Equal(t, "login page", value(t, r, Comment))

	assert.Equal(t, "GET", value(t, r, Method))
	assert.Equal(t, "https://example.com/index.html?a=1&b=2", value(t, r, URL))
	assert.Equal(t, "/index.html", value(t, r, Path))
	assert.Equal(t, "a=1&b=2", value(t, r, Query))
	assert.Equal(t, "https", value(t, r, Protocol))
	assert.Equal(t, true, value(t, r, IsSSL))
	assert.Equal(t, "example.com", value(t, r, Hostname))
	assert.Equal(t, "https://example.com", value(t, r, Host))
	assert.Equal(t, 443, value(t, r, Port))
	assert.Equal(t, "html", value(t, r, Extension))
	assert.Equal(t, "", value(t, r, Referrer))
	assert.Equal(t, "", value(t, r, RequestBody))
	assert.Equal(t, 80, value(t, r, RequestLength))
	assert.Equal(t, true, value(t, r, Complete))
	assert.Equal(t, true, value(t, r, HasParams))
	assert.Equal(t, true, value(t, r, HasGetParam))
	assert.Equal(t, false, value(t, r, HasPostParam))
	assert.Equal(t, true, value(t, r, HasCookieParam))
	assert.Equal(t, "session=abc", value(t, r, SentCookies))
	assert.Equal(t, CookieJarNo, value(t, r, UsesCookieJar))
	assert.Equal(t, "GET /index.html?a=1&b=2 HTTP/1.1\nHost: example.com\nCookie: session=abc", value(t, r, RequestHeaders))

	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, started.Equal(value(t, r, RequestTime).(time.Time)))
}

func TestRecordResponseValues(t *testing.T) {
	r := loadRecords(t)[0]

	assert.Equal(t, 200, value(t, r, Status))
	assert.Equal(t, 121, value(t, r, RTT))
	assert.Equal(t, "Welcome", value(t, r, Title))
	assert.Equal(t, "text/html; charset=utf-8", value(t, r, ResponseContentType))
	assert.Equal(t, "text/html", value(t, r, InferredType))
	assert.Equal(t, "text/html", value(t, r, MimeType))
	assert.Equal(t, true, value(t, r, HasSetCookies))
	assert.Equal(t, "theme=dark", value(t, r, NewCookies))
	assert.Equal(t, 152, value(t, r, ResponseLength))
	assert.Equal(t, "HTTP/1.1 200 OK\nContent-Type: text/html; charset=utf-8\nSet-Cookie: theme=dark; Path=/", value(t, r, ResponseHeaders))

	responded := time.Date(2024, 1, 2, 3, 4, 5, 120500000, time.UTC)
	assert.True(t, responded.Equal(value(t, r, ResponseTime).(time.Time)))
}

func TestRecordPost(t *testing.T) {
	r := loadRecords(t)[1]

	assert.Equal(t, 2, value(t, r, Number))
	assert.Equal(t, "POST", value(t, r, Method))
	assert.Equal(t, 8080, value(t, r, Port))
	assert.Equal(t, false, value(t, r, IsSSL))
	assert.Equal(t, "http://api.example.com", value(t, r, Host))
	assert.Equal(t, "json", value(t, r, Extension))
	assert.Equal(t, "application/json", value(t, r, RequestContentType))
	assert.Equal(t, "https://example.com/index.html", value(t, r, Referrer))
	assert.Equal(t, `{"name":"x"}`, value(t, r, RequestBody))
	assert.Equal(t, true, value(t, r, HasPostParam))
	assert.Equal(t, false, value(t, r, HasGetParam))
	assert.Equal(t, true, value(t, r, HasParams))
	assert.Equal(t, 132, value(t, r, RequestLength))
	assert.Equal(t, CookieJarYes, value(t, r, UsesCookieJar))
	assert.Equal(t, false, value(t, r, HasSetCookies))
	assert.Equal(t, "", value(t, r, NewCookies))
	assert.Equal(t, "", value(t, r, Title))
}

func TestRecordWithoutResponse(t *testing.T) {
	r := loadRecords(t)[2]

	assert.Equal(t, false, value(t, r, Complete))
	assert.Equal(t, 0, value(t, r, RequestLength))
	assert.Equal(t, 80, value(t, r, Port))
	assert.Equal(t, false, value(t, r, HasParams))
	assert.Equal(t, CookieJarNo, value(t, r, UsesCookieJar))

	for _, field := range FieldsInGroup(Response) {
		_, exists := r.Value(field)
		assert.False(t, exists, field.FullLabel())
	}
}

func TestRecordBrokenEntry(t *testing.T) {
	entry := har.Entry{
		Started: "yesterday",
		Request: har.Request{
			Method: "GET",
			Url:    "http://[::1",
		},
	}
	r := NewRecord(9, "Repeater", &entry, nil)

	_, exists := r.Value(RequestTime)
	assert.False(t, exists)
	_, exists = r.Value(Hostname)
	assert.False(t, exists)
	_, exists = r.Value(Field(1000))
	assert.False(t, exists)

	assert.Equal(t, "GET", value(t, r, Method))
	assert.Equal(t, "Repeater", value(t, r, RequestTool))
	assert.Equal(t, "GET http://[::1 ", value(t, r, RequestHeaders))
}

func TestRecordBase64Body(t *testing.T) {
	html := "<html><head><title>Hello</title></head><body>hi</body></html>"
	entry := har.Entry{
		Started: "2024-01-02T03:04:05.000Z",
		Request: har.Request{Method: "GET", Url: "https://example.com/"},
		Response: har.Response{
			Status: 200,
			Content: har.Content{
				MimeType: "text/html",
				Text:     base64.StdEncoding.EncodeToString([]byte(html)),
				Encoding: "base64",
			},
		},
	}
	r := NewRecord(1, "Proxy", &entry, nil)

	assert.Equal(t, html, value(t, r, ResponseBody))
	assert.Equal(t, "Hello", value(t, r, Title))
	assert.Equal(t, "text/html", value(t, r, InferredType))

	entry.Response.Content.Text = "not base64!"
	r = NewRecord(2, "Proxy", &entry, nil)
	assert.Equal(t, "not base64!", value(t, r, ResponseBody))
}

func TestRecordNewCookiesFromHeaders(t *testing.T) {
	entry := har.Entry{
		Request: har.Request{Method: "GET", Url: "https://example.com/"},
		Response: har.Response{
			Status: 200,
			Headers: []har.Pair{
				{Name: "Set-Cookie", Value: "session=abc; Path=/"},
				{Name: "Set-Cookie", Value: "lang=en; Domain=.example.com"},
			},
		},
	}
	r := NewRecord(1, "Proxy", &entry, nil)

	assert.Equal(t, true, value(t, r, HasSetCookies))
	assert.Equal(t, "session=abc; lang=en", value(t, r, NewCookies))
}
