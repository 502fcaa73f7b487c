package instance

import "net/http"

// Response is the record returned by a handler invocation, shaped
// like a serverless http response.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

const (
	bodyStarted = "EC2 instance started successfully!"
	bodyStopped = "EC2 instance stopped successfully!"
)

func newResponse(body string) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       body,
	}
}
