package lambda

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lambda-feedback/embedweb/internal/server"
)

func newTestHandler(source ProxySource) *LambdaHandler {
	route := server.AsHttpHandler("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, r.Method+" "+r.URL.Path+" "+r.URL.Query().Get("input_1"))
	}))

	return NewLambdaHandler(LambdaHandlerParams{
		Config:   Config{ProxySource: source},
		Handlers: []*server.HttpHandler{route.Handler},
		Context:  context.Background(),
		Logger:   zap.NewNop(),
	})
}

func TestConfig_Validate(t *testing.T) {
	for _, source := range []ProxySource{ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb} {
		assert.NoError(t, Config{ProxySource: source}.Validate())
	}

	assert.Error(t, Config{ProxySource: "SQS"}.Validate())
	assert.Error(t, Config{}.Validate())
}

func TestLambdaHandler_ProxyFunction(t *testing.T) {
	for _, source := range []ProxySource{ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb} {
		t.Run(source.String(), func(t *testing.T) {
			fn, err := newTestHandler(source).proxyFunction()
			require.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}

	_, err := newTestHandler("SQS").proxyFunction()
	assert.Error(t, err)
}

func TestLambdaHandler_ProxiesApiGatewayV1(t *testing.T) {
	fn, err := newTestHandler(ProxySourceApiGatewayV1).proxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodGet,
		Path:                  "/get_request",
		QueryStringParameters: map[string]string{"input_1": "a"},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "GET /get_request a", res.Body)
}

func TestLambdaHandler_StartRejectsUnknownSource(t *testing.T) {
	h := newTestHandler("SQS")
	defer h.Shutdown()

	assert.Error(t, h.Start())
}
