package logentry

import (
	"fmt"
	"strings"
)

// Field identifies one column of captured traffic. Its metadata lives in
// the static definitions table, in declaration order.
type Field int

const (
	Number Field = iota
	ProxyTool
	ListenerInterface
	ClientIP
	Comment

	RequestHeaders
	ResponseHeaders
	RequestBody
	ResponseBody
	RequestTime
	ResponseTime
	RequestLength
	ResponseLength

	RequestTool
	Complete
	URL
	Method
	Path
	Query
	Protocol
	IsSSL
	UsesCookieJar
	Hostname
	Host
	Port
	RequestContentType
	Extension
	Referrer
	HasParams
	HasGetParam
	HasPostParam
	HasCookieParam
	SentCookies

	Status
	RTT
	Title
	ResponseContentType
	InferredType
	MimeType
	HasSetCookies
	NewCookies
)

type definition struct {
	group       FieldGroup
	kind        FieldType
	description string
	labels      []string
}

var definitions = []definition{
	Number:            {Proxy, Integer, "Item table number. Not valid for filter use.", []string{"Number"}},
	ProxyTool:         {Proxy, String, "Originating tool name. Extension generated requests will be displayed as \"Extender\".", []string{"Tool"}},
	ListenerInterface: {Proxy, String, "The interface the proxied message was delivered to.", []string{"ListenInterface", "Interface"}},
	ClientIP:          {Proxy, String, "The requesting client IP address.", []string{"ClientIP", "ClientAddress"}},
	Comment:           {Proxy, String, "Comments set on the entry.", []string{"Comment"}},

	RequestHeaders:  {Request, String, "The request line and associated headers.", []string{"Headers", "Header"}},
	ResponseHeaders: {Response, String, "The status line and associated headers.", []string{"Headers", "Header"}},
	RequestBody:     {Request, String, "The request body.", []string{"Body"}},
	ResponseBody:    {Response, String, "The response body.", []string{"Body"}},
	RequestTime:     {Request, Timestamp, "Date and time of initial request.", []string{"Time"}},
	ResponseTime:    {Response, Timestamp, "Date and time of receiving the response.", []string{"Time"}},
	RequestLength:   {Request, Integer, "The length of the received request.", []string{"Length"}},
	ResponseLength:  {Response, Integer, "The length of the received response.", []string{"Length"}},

	RequestTool:        {Request, String, "The tool used to initiate the request.", []string{"Tool"}},
	Complete:           {Request, Boolean, "Has a response been received?", []string{"Complete", "isComplete"}},
	URL:                {Request, String, "The entire URL of the request.", []string{"URL", "URI"}},
	Method:             {Request, String, "The request method used.", []string{"Method"}},
	Path:               {Request, String, "The path component of the requested URL.", []string{"Path"}},
	Query:              {Request, String, "The query parameters of the requested URL.", []string{"Query", "GetParams", "QueryParams"}},
	Protocol:           {Request, String, "The protocol component of the requested URL.", []string{"Protocol"}},
	IsSSL:              {Request, Boolean, "Did the request use SSL?", []string{"IsSSL", "ssl"}},
	UsesCookieJar:      {Request, String, "Compares the cookies with the cookie jar ones to see if any of them in use.", []string{"UsesCookieJar", "CookieJar"}},
	Hostname:           {Request, String, "The hostname component of the requested URL.", []string{"Hostname"}},
	Host:               {Request, String, "The protocol and hostname of the requested URL.", []string{"Host"}},
	Port:               {Request, Integer, "The port the request was sent to.", []string{"Port"}},
	RequestContentType: {Request, String, "The content-type header sent to the server.", []string{"ContentType", "Content_Type"}},
	Extension:          {Request, String, "The URL extension used in the request.", []string{"Extension"}},
	Referrer:           {Request, String, "The referrer header value of the request.", []string{"Referrer"}},
	HasParams:          {Request, Boolean, "Did the request contain parameters?", []string{"HasParams"}},
	HasGetParam:        {Request, Boolean, "Did the request contain get parameters?", []string{"HasGetParam", "HasGetParams", "HasQueryString"}},
	HasPostParam:       {Request, Boolean, "Did the request contain post parameters?", []string{"HasPostParam", "HasPayload", "Payload"}},
	HasCookieParam:     {Request, Boolean, "Did the request contain cookies?", []string{"HasSentCookies"}},
	SentCookies:        {Request, String, "The value of the cookies header sent to the server.", []string{"CookieString", "SentCookies", "Cookies"}},

	Status:              {Response, Integer, "The status code received in the response.", []string{"Status", "StatusCode"}},
	RTT:                 {Response, Integer, "The round trip time in milliseconds, as recorded in the capture.", []string{"RTT", "TimeTaken"}},
	Title:               {Response, String, "The HTTP response title.", []string{"Title"}},
	ResponseContentType: {Response, String, "The content-type header sent by the server.", []string{"ContentType", "Content_Type"}},
	InferredType:        {Response, String, "The type inferred by the response content.", []string{"InferredType", "Inferred_Type"}},
	MimeType:            {Response, String, "The mime-type stated by the server.", []string{"MimeType", "Mime"}},
	HasSetCookies:       {Response, Boolean, "Did the response set cookies?", []string{"HasSetCookies", "DidSetCookies"}},
	NewCookies:          {Response, String, "The new cookies sent by the server", []string{"Cookies", "NewCookies", "New_Cookies"}},
}

func AllFields() []Field {
	fields := make([]Field, len(definitions))
	for i := 0; i < len(definitions); i++ {
		fields[i] = Field(i)
	}
	return fields
}

func (f Field) valid() bool {
	return f >= 0 && int(f) < len(definitions)
}

// Group is -1 for values outside the declared constants, the other accessors
// return empty values for them.
func (f Field) Group() FieldGroup {
	if !f.valid() {
		return FieldGroup(-1)
	}
	return definitions[f].group
}

func (f Field) Type() FieldType {
	if !f.valid() {
		return FieldType(-1)
	}
	return definitions[f].kind
}

func (f Field) Description() string {
	if !f.valid() {
		return ""
	}
	return definitions[f].description
}

func (f Field) Labels() []string {
	if !f.valid() {
		return nil
	}
	labels := make([]string, len(definitions[f].labels))
	copy(labels, definitions[f].labels)
	return labels
}

// FullLabel is the canonical qualified name, e.g. "Request.Method".
func (f Field) FullLabel() string {
	if !f.valid() {
		return ""
	}
	return f.LabelFor(definitions[f].labels[0])
}

func (f Field) LabelFor(label string) string {
	return f.Group().Label() + "." + label
}

// DescriptiveMessage is the tooltip text of the field, aliases in <b> markup.
func (f Field) DescriptiveMessage() string {
	if !f.valid() {
		return ""
	}
	d := definitions[f]
	return fmt.Sprintf("Field: <b>%s</b>\nType: %s\nDescription: %s", strings.Join(d.labels, ", "), d.kind, d.description)
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return f.FullLabel()
}
