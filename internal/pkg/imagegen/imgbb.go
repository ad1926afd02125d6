package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"
)

const DefaultImgBBURL = "https://api.imgbb.com/1/upload"

// ImgBBClient hosts image bytes and returns a public URL.
type ImgBBClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

type imgBBResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewImgBBClient(apiKey, endpoint string, timeout time.Duration) *ImgBBClient {
	if endpoint == "" {
		endpoint = DefaultImgBBURL
	}

	return &ImgBBClient{
		apiKey:     apiKey,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ImgBBClient) Upload(ctx context.Context, filename string, image []byte) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err = part.Write(image); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	if err = form.Close(); err != nil {
		return "", fmt.Errorf("failed to close form: %w", err)
	}

	endpoint := c.endpoint + "?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call image hosting API: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var out imgBBResponse
	if err = json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !out.Success {
		return "", fmt.Errorf("image hosting API error (status %d): %s", resp.StatusCode, out.Error.Message)
	}

	if out.Data.DisplayURL != "" {
		return out.Data.DisplayURL, nil
	}
	return out.Data.URL, nil
}
