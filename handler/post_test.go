package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPostHandler_JSONTrace(t *testing.T) {
	router, logs := newTestRouter(Config{})

	w := serve(router, newFormRequest("/handle_post_request", url.Values{
		"input_1": {"JSON"},
		"input_2": {`{"x":1}`},
	}))

	expected := "-- Array or Node Start\n" +
		"Node Name: [x] Node Value: [1]\n" +
		"-- Array or Node End\n"

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, expected, w.Body.String())
	assert.Equal(t, []string{
		"-- Array or Node Start",
		"Node Name: [x] Node Value: [1]",
		"-- Array or Node End",
	}, consoleLines(logs))
}

func TestPostHandler_NestedJSONTrace(t *testing.T) {
	router, _ := newTestRouter(Config{})

	w := serve(router, newFormRequest("/handle_post_request", url.Values{
		"input_1": {"JSON"},
		"input_2": {`{"a":{"b":"c"},"d":true}`},
	}))

	expected := "-- Array or Node Start\n" +
		"-- Array or Node Start\n" +
		"Node Name: [b] Node Value: [c]\n" +
		"-- Array or Node End\n" +
		"Node Name: [a] Node Value: []\n" +
		"Node Name: [d] Node Value: [true]\n" +
		"-- Array or Node End\n"

	assert.Equal(t, expected, w.Body.String())
}

func TestPostHandler_InvalidJSON(t *testing.T) {
	router, logs := newTestRouter(Config{})

	w := serve(router, newFormRequest("/handle_post_request", url.Values{
		"input_1": {"JSON"},
		"input_2": {"not-json"},
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Error! Expected Valid JSON [not-json]\n", w.Body.String())
	assert.NotContains(t, w.Body.String(), "-- Array or Node Start")
	assert.Equal(t, []string{"Error! Expected Valid JSON [not-json]"}, consoleLines(logs))
}

func TestPostHandler_MarkerIsCaseSensitive(t *testing.T) {
	router, _ := newTestRouter(Config{})

	w := serve(router, newFormRequest("/handle_post_request", url.Values{
		"input_1": {"json"},
		"input_2": {`{"x":1}`},
	}))

	assert.True(t, strings.HasPrefix(w.Body.String(), "Submitted data: ["))
}

func TestPostHandler_PlainEcho(t *testing.T) {
	router, logs := newTestRouter(Config{})

	req := httptest.NewRequest(http.MethodPost, "/handle_post_request?input_1=foo&input_2=bar", strings.NewReader("hello"))
	w := serve(router, req)

	expected := "Submitted data: [hello]\n" +
		"Submitted data length: 5 bytes\n" +
		"input_1: [foo]\n" +
		"input_2: [bar]\n"

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, expected, w.Body.String())
	assert.Equal(t, []string{
		"Submitted data: [hello]",
		"Submitted data length: 5 bytes",
		"input_1: [foo]",
		"input_2: [bar]",
	}, consoleLines(logs))
}

func TestPostHandler_FormBody(t *testing.T) {
	router, _ := newTestRouter(Config{})

	w := serve(router, newFormRequest("/handle_post_request", url.Values{
		"input_1": {"foo"},
		"input_2": {"bar"},
	}))

	expected := "Submitted data: [input_1=foo&input_2=bar]\n" +
		"Submitted data length: 23 bytes\n" +
		"input_1: [foo]\n" +
		"input_2: [bar]\n"

	assert.Equal(t, expected, w.Body.String())
}

func TestPostHandler_QueryTakesPrecedenceOverBody(t *testing.T) {
	router, _ := newTestRouter(Config{})

	req := httptest.NewRequest(http.MethodPost, "/handle_post_request?input_1=query",
		strings.NewReader("input_1=body&input_2=body"))
	w := serve(router, req)

	assert.Contains(t, w.Body.String(), "input_1: [query]\n")
	assert.Contains(t, w.Body.String(), "input_2: [body]\n")
}

func TestPostHandler_EmptyBody(t *testing.T) {
	router, _ := newTestRouter(Config{})

	w := serve(router, httptest.NewRequest(http.MethodPost, "/handle_post_request", nil))

	expected := "Submitted data: []\n" +
		"Submitted data length: 0 bytes\n" +
		"input_1: []\n" +
		"input_2: []\n"

	assert.Equal(t, expected, w.Body.String())
}

func TestPostHandler_BodyTooLarge(t *testing.T) {
	router, logs := newTestRouter(Config{MaxBodySize: 8})

	req := httptest.NewRequest(http.MethodPost, "/handle_post_request", strings.NewReader("input_1=toolong"))
	w := serve(router, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request body too large")
	assert.Empty(t, consoleLines(logs))
}

func TestPostHandler_SemicolonInJSON(t *testing.T) {
	router, _ := newTestRouter(Config{})

	req := httptest.NewRequest(http.MethodPost, "/handle_post_request",
		strings.NewReader(`input_1=JSON&input_2={"a":"x;y"}`))
	w := serve(router, req)

	expected := "-- Array or Node Start\n" +
		"Node Name: [a] Node Value: [x;y]\n" +
		"-- Array or Node End\n"

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, expected, w.Body.String())
}

func TestPostHandler_SemicolonInPlainEcho(t *testing.T) {
	router, _ := newTestRouter(Config{})

	req := httptest.NewRequest(http.MethodPost, "/handle_post_request",
		strings.NewReader("input_1=a;b&input_2=c"))
	w := serve(router, req)

	assert.Contains(t, w.Body.String(), "input_1: [a;b]\ninput_2: [c]\n")
}
