package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/equinor/radix-job-dashboard/api"
	"github.com/equinor/radix-job-dashboard/router"
)

type ControllerTestUtils struct {
	controllers []api.Controller
}

func New(controllers ...api.Controller) ControllerTestUtils {
	return ControllerTestUtils{
		controllers: controllers,
	}
}

// ExecuteRequest Helper method to issue a http request
func (ctrl *ControllerTestUtils) ExecuteRequest(method, path string) <-chan *http.Response {
	return ctrl.ExecuteRequestWithBody(method, path, nil)
}

// ExecuteRequestWithBody Helper method to issue a http request with a JSON payload
func (ctrl *ControllerTestUtils) ExecuteRequestWithBody(method, path string, body interface{}) <-chan *http.Response {
	var reader io.Reader
	switch payload := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(payload))
	default:
		data, _ := json.Marshal(payload)
		reader = bytes.NewReader(data)
	}
	return ctrl.execute(method, path, reader)
}

func (ctrl *ControllerTestUtils) execute(method, path string, reader io.Reader) <-chan *http.Response {
	responseChan := make(chan *http.Response)

	go func() {
		server := httptest.NewServer(router.NewServer(ctrl.controllers...))
		defer server.Close()
		request, _ := http.NewRequest(method, BuildURL(server.URL, path), reader)
		if reader != nil {
			request.Header.Set("Content-Type", "application/json")
		}
		response, err := http.DefaultClient.Do(request)
		if err != nil {
			response = nil
		} else {
			response.Body = readAll(response.Body)
		}
		responseChan <- response
		close(responseChan)
	}()

	return responseChan
}

// GetResponseBody Gets response payload as type
func GetResponseBody(response *http.Response, target interface{}) error {
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}

// BuildURL Builds the URL of a path on a test server
func BuildURL(serverURL, path string) string {
	u, _ := url.Parse(serverURL)
	if query := strings.IndexByte(path, '?'); query >= 0 {
		u.RawQuery = path[query+1:]
		path = path[:query]
	}
	u.Path = path
	return u.String()
}

// readAll buffers the body so it can be read after the test server is closed
func readAll(body io.ReadCloser) io.ReadCloser {
	defer body.Close()
	data, _ := io.ReadAll(body)
	return io.NopCloser(bytes.NewReader(data))
}
