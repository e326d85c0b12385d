package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	payload := resp.Body()
	return &APIError{
		Message:    errorMessage(resp.StatusCode(), payload),
		StatusCode: resp.StatusCode(),
		Payload:    payload,
	}
}

// errorMessage prefers a JSON "message" or "error" field, then the plain
// body, then the status text.
func errorMessage(code int, payload []byte) string {
	var body errorBody
	if err := json.Unmarshal(payload, &body); err == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(body.Error); msg != "" {
			return msg
		}
	}

	if msg := strings.TrimSpace(string(payload)); msg != "" && !strings.HasPrefix(msg, "{") {
		return msg
	}

	if text := http.StatusText(code); text != "" {
		return text
	}
	return "unexpected status"
}
