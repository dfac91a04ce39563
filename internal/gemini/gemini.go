// Package gemini calls the external image generation capability. The request
// carries the composed prompt plus the source image as inline data; a usable
// response contains at least one inline image part.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/plateshot/plateshot/internal/config"
	"github.com/plateshot/plateshot/pkg/clients"
)

//go:generate mockgen -source=gemini.go -destination=gemini_mock.go -package=gemini

var (
	ErrNoImage  = errors.New("no image in model response")
	ErrTimeout  = errors.New("image generation timed out")
	ErrUpstream = errors.New("image generation failed")
)

type EditorI interface {
	EditImage(ctx context.Context, prompt, mimeType string, image []byte) (*Result, error)
}

type Result struct {
	Image    []byte
	MimeType string
}

type Client struct {
	url     string
	apiKey  string
	model   string
	timeout time.Duration
	client  clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:     strings.TrimRight(cfg.GeminiAddress, "/"),
		apiKey:  cfg.GeminiAPIKey,
		model:   cfg.GeminiModel,
		timeout: cfg.GeminiTimeout,
		client:  client,
	}
}

type inlineData struct {
	MimeType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"`
}

type requestPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type generateRequest struct {
	Contents []struct {
		Parts []requestPart `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseModalities []string `json:"responseModalities"`
	} `json:"generationConfig"`
}

type responsePart struct {
	Text       string `json:"text,omitempty"`
	InlineData *struct {
		MimeType string `json:"mimeType"`
		Data     string `json:"data"`
	} `json:"inlineData,omitempty"`
}

type generateResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
	Candidates []struct {
		Content struct {
			Parts []responsePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// EditImage sends one generation request and extracts the first inline image
// part of the response. The call is bounded by the configured timeout; it is
// never retried here, retries are user-initiated new attempts.
func (c *Client) EditImage(ctx context.Context, prompt, mimeType string, image []byte) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody generateRequest
	reqBody.Contents = make([]struct {
		Parts []requestPart `json:"parts"`
	}, 1)
	reqBody.Contents[0].Parts = []requestPart{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}
	reqBody.GenerationConfig.ResponseModalities = []string{"TEXT", "IMAGE"}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generation request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.url, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %s", ErrUpstream, err)
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %s", ErrUpstream, err)
	}

	if result.Error != nil {
		zap.L().Error("generation API returned error",
			zap.Int("code", result.Error.Code),
			zap.String("message", result.Error.Message),
		)
		return nil, fmt.Errorf("%w: %s", ErrUpstream, result.Error.Message)
	}

	if len(result.Candidates) == 0 {
		return nil, ErrNoImage
	}

	for _, part := range result.Candidates[0].Content.Parts {
		if part.InlineData == nil || !strings.HasPrefix(part.InlineData.MimeType, "image/") {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode image data: %s", ErrUpstream, err)
		}
		return &Result{Image: data, MimeType: part.InlineData.MimeType}, nil
	}

	return nil, ErrNoImage
}
