// Package chat forwards travel questions to the Gemini API. Unlike the
// travel-data kinds there is no substitute answer: a failed provider call is
// an error the API surface turns into a 500.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const relayTimeout = 8 * time.Second

const promptTemplate = `Tu es "AZTravel Assistant". L'utilisateur va à %s.
Il demande : "%s".
Réponds de façon courte et utile.`

// Relay sends templated prompts to the generative-AI provider.
type Relay struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewRelay(apiKey, model, baseURL string) *Relay {
	return &Relay{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: relayTimeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask embeds the city and question into the assistant template and returns
// the provider's answer verbatim.
func (r *Relay) Ask(ctx context.Context, city, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, city, prompt)}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		r.baseURL, url.PathEscape(r.model), url.QueryEscape(r.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generative AI provider returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if len(decoded.Candidates) == 0 {
		return "", errors.New("generative AI provider returned no candidates")
	}

	var texts []string
	for _, p := range decoded.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	if len(texts) == 0 {
		return "", errors.New("generative AI provider returned an empty answer")
	}

	return strings.Join(texts, ""), nil
}
