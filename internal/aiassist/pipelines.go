package aiassist

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ContactInfo is what CV parsing extracts. Fields the model cannot find stay
// empty strings, never null.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PostDraft is a generated blog post for the admin editor to review. The
// image URL is filled in by the caller after routing the cover image through
// file storage.
type PostDraft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	ImageHint   string `json:"image_hint"`
}

const parseCVSystemPrompt = `You extract contact details from CV text. ` +
	`Respond with a single JSON object with exactly the keys "name", "email" and "phone". ` +
	`Use an empty string for any detail you cannot find. Respond with JSON only, no prose.`

// ParseCV extracts the applicant's contact details from raw CV text.
func (c *Client) ParseCV(ctx context.Context, cvText string) (*ContactInfo, error) {
	raw, err := c.complete(ctx, parseCVSystemPrompt, cvText, true)
	if err != nil {
		return nil, err
	}

	var info ContactInfo
	if err := json.Unmarshal([]byte(extractJSON(raw)), &info); err != nil {
		return nil, fmt.Errorf("decode contact info: %w", err)
	}
	return &info, nil
}

const generatePostSystemPrompt = `You write blog posts for a Vietnamese Python developer community. ` +
	`Respond with a single JSON object with exactly the keys "title", "description", "category", "content" and "image_hint". ` +
	`"description" is one or two sentences, "category" is a single word, "content" is the full post in markdown of at least 300 words, ` +
	`"image_hint" is at most two words describing a fitting cover image. Respond with JSON only, no prose.`

// GenerateDraft writes the text fields of a blog post about topic. The draft
// carries no image URL yet.
func (c *Client) GenerateDraft(ctx context.Context, topic string) (*PostDraft, error) {
	raw, err := c.complete(ctx, generatePostSystemPrompt, topic, true)
	if err != nil {
		return nil, err
	}

	var draft PostDraft
	if err := json.Unmarshal([]byte(extractJSON(raw)), &draft); err != nil {
		return nil, fmt.Errorf("decode post draft: %w", err)
	}
	return &draft, nil
}

// GenerateImage renders a cover image for the prompt and returns its bytes.
func (c *Client) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	b64, err := c.generateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("ai provider returned an empty image")
	}
	return data, nil
}

const summarizeSystemPrompt = `You summarize text for busy readers. ` +
	`Respond with a plain-text summary of at most three sentences. No preamble.`

// Summarize condenses text into a short plain-text summary.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	summary, err := c.complete(ctx, summarizeSystemPrompt, text, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

// PlaceholderImageURL is the stand-in cover when image generation is
// unavailable.
func PlaceholderImageURL(hint string) string {
	seed := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(hint)), " ", "-")
	if seed == "" {
		seed = "python"
	}
	return "https://picsum.photos/seed/" + seed + "/600/400"
}

// extractJSON tolerates models that wrap JSON in markdown fences.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if start := strings.Index(s, "{"); start >= 0 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}
	return s
}
