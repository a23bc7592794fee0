package har

import (
	"net/url"
	"strings"
)

type Cookie struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Path     string `json:"path,omitempty"`
	Domain   string `json:"domain,omitempty"`
	Expires  string `json:"expires,omitempty"`
	HttpOnly bool   `json:"httpOnly,omitempty"`
	Secure   bool   `json:"secure,omitempty"`
}

type Cache struct {
}

type Timings struct {
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`
}

type Pair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Content struct {
	Size     int    `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
	Encoding string `json:"encoding,omitempty"`
}

type PostData struct {
	MimeType string `json:"mimeType"`
	Params   []Pair `json:"params,omitempty"`
	Text     string `json:"text"`
}

type Request struct {
	Method      string    `json:"method"`
	Url         string    `json:"url"`
	HttpVersion string    `json:"httpVersion"`
	Headers     []Pair    `json:"headers"`
	QueryString []Pair    `json:"queryString"`
	Cookies     []Cookie  `json:"cookies"`
	HeadersSize int       `json:"headersSize"`
	BodySize    int       `json:"bodySize"`
	PostData    *PostData `json:"postData,omitempty"`
}

type Response struct {
	Status      int      `json:"status"`
	StatusText  string   `json:"statusText"`
	HttpVersion string   `json:"httpVersion"`
	RedirectUrl string   `json:"redirectURL"`
	Headers     []Pair   `json:"headers"`
	HeadersSize int      `json:"headersSize"`
	BodySize    int      `json:"bodySize"`
	Cookies     []Cookie `json:"cookies"`
	Content     Content  `json:"content"`
}

type Entry struct {
	Started         string   `json:"startedDateTime"`
	Time            float64  `json:"time"`
	Request         Request  `json:"request"`
	Response        Response `json:"response"`
	Timings         Timings  `json:"timings"`
	Cache           Cache    `json:"cache"`
	ServerIPAddress string   `json:"serverIPAddress,omitempty"`
	Connection      string   `json:"connection,omitempty"`
	Comment         string   `json:"comment,omitempty"`
	ClientIP        string   `json:"_clientIP,omitempty"`
}

type Creator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Log struct {
	Version string  `json:"version"`
	Creator Creator `json:"creator"`
	Entries []Entry `json:"entries"`
}

type Har struct {
	Log Log `json:"log"`
}

func (e *Entry) GetHost() string {
	parsed, err := url.Parse(e.Request.Url)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

// HasResponse is false for requests that never got an answer, which HAR
// writers record with status 0.
func (e *Entry) HasResponse() bool {
	return e.Response.Status > 0
}

func (r *Request) Header(name string) (string, bool) {
	return findHeader(r.Headers, name)
}

func (r *Response) Header(name string) (string, bool) {
	return findHeader(r.Headers, name)
}

func (r *Response) HeaderValues(name string) []string {
	var values []string
	for i := 0; i < len(r.Headers); i++ {
		if strings.EqualFold(r.Headers[i].Name, name) {
			values = append(values, r.Headers[i].Value)
		}
	}
	return values
}

func findHeader(headers []Pair, name string) (string, bool) {
	for i := 0; i < len(headers); i++ {
		if strings.EqualFold(headers[i].Name, name) {
			return headers[i].Value, true
		}
	}
	return "", false
}
