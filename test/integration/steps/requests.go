package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

func (t *testContext) iAmRegisteredAs(email string) error {
	payload, _ := json.Marshal(map[string]any{
		"email":    email,
		"name":     "Test User",
		"password": DefaultPassword,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", "application/json", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("register answered %d (body: %v)", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) iAmLoggedInAs(email string) error {
	payload, _ := json.Marshal(map[string]any{
		"email":    email,
		"password": DefaultPassword,
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", "application/json", payload); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login answered %d (body: %v)", t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // unauthenticated from here on
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), "", nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), "application/json", payload)
}

func (t *testContext) iUploadTheFileToWithContent(filename, path string, content *godog.DocString) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(part, content.Content); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}
	return t.executeRequest(http.MethodPost, t.replacePlaceholders(path), writer.FormDataContentType(), buf.Bytes())
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	t.vars[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	if t.env.injector.EmailWorker == nil {
		return fmt.Errorf("email worker is not configured")
	}
	t.env.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	for name, value := range t.vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path, contentType string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.env.server.URL+path, body)
	if err != nil {
		return err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    raw,
		header: resp.Header,
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.response.body = string(raw)
		return nil
	}
	t.response.body = decoded

	// Tokens from register, login and refresh authenticate the following requests
	if object, ok := decoded.(map[string]any); ok {
		if token, ok := object["access_token"].(string); ok && token != "" {
			t.accessToken = token
		}
		if token, ok := object["refresh_token"].(string); ok && token != "" {
			t.refreshToken = token
		}
	}

	return nil
}
