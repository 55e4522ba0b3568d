package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(&WebsocketServer{
		Registry: mathRegistry(),
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	})
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebsocketCall(t *testing.T) {
	conn := dialTestServer(t)

	err := conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","method":"add","params":{"a":2,"b":3},"id":1}`))
	require.NoError(t, err)

	_, out, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, 5.0, resp["result"])
	assert.Equal(t, 1.0, resp["id"])
}

// A notification frame gets no reply; the next frame read off the wire must
// belong to the following call.
func TestWebsocketNotificationIsSilent(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","method":"add","params":[1,1]}`)))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","method":"add","params":[2,2],"id":7}`)))

	_, out, err := conn.ReadMessage()
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, 7.0, resp["id"])
	assert.Equal(t, 4.0, resp["result"])
}

func TestWebsocketBatch(t *testing.T) {
	conn := dialTestServer(t)

	batch := `[
		{"jsonrpc":"2.0","method":"add","params":[1,2],"id":1},
		{"jsonrpc":"2.0","method":"missing","id":2}
	]`
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(batch)))

	_, out, err := conn.ReadMessage()
	require.NoError(t, err)

	var resps []map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &resps))
	require.Len(t, resps, 2)
	assert.Equal(t, 3.0, resps[0]["result"])
	assert.NotNil(t, resps[1]["error"])
}
