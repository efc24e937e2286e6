package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const web3FormsURL = "https://api.web3forms.com/submit"

// Web3FormsClient forwards contact form submissions to Web3Forms.
type Web3FormsClient struct {
	AccessKey  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewWeb3FormsClient(accessKey string) *Web3FormsClient {
	return &Web3FormsClient{
		AccessKey:  accessKey,
		BaseURL:    web3FormsURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SendContact submits one contact message. Subject and from_name follow the
// portfolio site's fixed formats.
func (w *Web3FormsClient) SendContact(ctx context.Context, name, email, message string) error {
	if strings.TrimSpace(w.AccessKey) == "" {
		return fmt.Errorf("WEB3FORMS_ACCESS_KEY not set")
	}

	form := url.Values{}
	form.Set("access_key", w.AccessKey)
	form.Set("name", name)
	form.Set("email", email)
	form.Set("message", message)
	form.Set("subject", "Portfolio Contact from "+name)
	form.Set("from_name", "Tony Gruenwald Portfolio")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := w.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("web3forms error: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
