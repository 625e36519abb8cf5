package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHandler_Usage(t *testing.T) {
	for _, target := range []string{"/", "/unknown", "/post_request/extra", "/index.html?input_1=a"} {
		t.Run(target, func(t *testing.T) {
			router, logs := newTestRouter(Config{})

			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := serve(router, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "Usage\n/post_request\n/get_request?input_1=value&input_2=value\n", w.Body.String())
			assert.Empty(t, w.Header().Get("Connection"))
			assert.Equal(t, []string{"Received invalid uri: " + req.URL.Path}, consoleLines(logs))
		})
	}
}

func TestDefaultHandler_Favicon(t *testing.T) {
	router, logs := newTestRouter(Config{})

	w := serve(router, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Empty(t, consoleLines(logs))
}
