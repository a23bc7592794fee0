package logentry

import (
	"strings"

	"github.com/alonana/httfields/har"
)

const (
	CookieJarYes       = "Yes"
	CookieJarPartially = "Partially"
	CookieJarNo        = "No"
)

// CookieJar tracks the cookies set by responses, per domain, in capture order.
// It is not safe for concurrent use.
type CookieJar struct {
	domains map[string]map[string]string
}

func NewCookieJar() *CookieJar {
	return &CookieJar{
		domains: make(map[string]map[string]string),
	}
}

func (j *CookieJar) Update(entry *har.Entry) {
	if !entry.HasResponse() {
		return
	}
	host := entry.GetHost()
	cookies := entry.Response.Cookies
	if len(cookies) == 0 {
		cookies = setCookieHeaders(&entry.Response)
	}
	for _, cookie := range cookies {
		domain := strings.TrimPrefix(strings.ToLower(cookie.Domain), ".")
		if domain == "" {
			domain = strings.ToLower(host)
		}
		if domain == "" {
			continue
		}
		domainCookies := j.domains[domain]
		if domainCookies == nil {
			domainCookies = make(map[string]string)
			j.domains[domain] = domainCookies
		}
		domainCookies[cookie.Name] = cookie.Value
	}
}

// Status compares the cookies sent by the request with the jar.
func (j *CookieJar) Status(entry *har.Entry) string {
	sent := sentCookies(&entry.Request)
	if j == nil || len(sent) == 0 {
		return CookieJarNo
	}

	host := strings.ToLower(entry.GetHost())
	matched := 0
	for name, value := range sent {
		if j.contains(host, name, value) {
			matched++
		}
	}

	if matched == 0 {
		return CookieJarNo
	}
	if matched == len(sent) {
		return CookieJarYes
	}
	return CookieJarPartially
}

func (j *CookieJar) contains(host string, name string, value string) bool {
	for domain, cookies := range j.domains {
		if host != domain && !strings.HasSuffix(host, "."+domain) {
			continue
		}
		jarValue, exists := cookies[name]
		if exists && jarValue == value {
			return true
		}
	}
	return false
}

func sentCookies(request *har.Request) map[string]string {
	cookies := make(map[string]string)
	for _, cookie := range request.Cookies {
		cookies[cookie.Name] = cookie.Value
	}
	if len(cookies) > 0 {
		return cookies
	}

	header, exists := request.Header("Cookie")
	if !exists {
		return cookies
	}
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		position := strings.Index(part, "=")
		if position <= 0 {
			continue
		}
		cookies[part[:position]] = part[position+1:]
	}
	return cookies
}

// setCookieHeaders parses the Set-Cookie headers of a response whose HAR
// cookies list is empty. Values are kept raw.
func setCookieHeaders(response *har.Response) []har.Cookie {
	var cookies []har.Cookie
	for _, header := range response.HeaderValues("Set-Cookie") {
		parts := strings.Split(header, ";")
		pair := strings.TrimSpace(parts[0])
		position := strings.Index(pair, "=")
		if position <= 0 {
			continue
		}
		cookie := har.Cookie{
			Name:  strings.TrimSpace(pair[:position]),
			Value: strings.TrimSpace(pair[position+1:]),
		}
		for _, attribute := range parts[1:] {
			attribute = strings.TrimSpace(attribute)
			position = strings.Index(attribute, "=")
			if position == -1 {
				continue
			}
			if strings.EqualFold(attribute[:position], "Domain") {
				cookie.Domain = strings.TrimSpace(attribute[position+1:])
			}
		}
		cookies = append(cookies, cookie)
	}
	return cookies
}
