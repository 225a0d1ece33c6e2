// Package imgbb uploads evidence images to the ImgBB hosting API and hands
// back the hosted URL.
package imgbb

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.imgbb.com/1/upload"

// Uploader turns raw image bytes into a hosted URL. Failures are always
// recoverable: the caller reports them and may retry the submission.
type Uploader interface {
	Upload(ctx context.Context, image []byte) (string, error)
}

type Client struct {
	key      string
	endpoint string
	http     *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{
		key:      key,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Upload posts the base64-encoded image and returns data.url from the API
// response. A missing key fails the call, not the process.
func (c *Client) Upload(ctx context.Context, image []byte) (string, error) {
	if c.key == "" {
		return "", errors.New("imgbb: missing api key")
	}
	if len(image) == 0 {
		return "", errors.New("imgbb: empty image")
	}

	form := url.Values{
		"key":   {c.key},
		"image": {base64.StdEncoding.EncodeToString(image)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("imgbb: %w", err)
	}
	req.Header.Set("content-type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("imgbb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("imgbb: upload failed with status %d", resp.StatusCode)
	}

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return "", fmt.Errorf("imgbb: parse response: %w", err)
	}
	if body.Data.URL == "" {
		return "", errors.New("imgbb: response carried no url")
	}
	return body.Data.URL, nil
}
