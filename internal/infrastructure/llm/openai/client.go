// Package openai provides a Briefer implementation using OpenAI.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/logitrust/internal/domain/entities"
	"github.com/ersonp/logitrust/internal/domain/ports"
	"github.com/ersonp/logitrust/internal/infrastructure/config"
)

const briefingPrompt = `너는 물류 전문가야. 운송 기사를 위해 주어진 상하차지의 진입로 주의사항, 상하차 위치, 대기시간 리스크를 알려줘.

You receive a JSON description of a logistics site: its place record, risk grade,
trust score, constraint fields with their status (CONFIRMED, PENDING, DISPUTED),
driver tips and active announcements. Treat PENDING and DISPUTED values as
unverified and say so when you rely on them.

Respond in Korean with ONLY a valid JSON object, no other text:
{
  "summary": "one or two sentence overview",
  "entry_cautions": ["entry road caution", "..."],
  "loading_position": "where to load or unload",
  "wait_time_risks": ["wait time risk", "..."]
}`

// Client implements ports.Briefer using OpenAI chat completions.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI LLM client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
	}, nil
}

// Brief generates entry, loading and wait-time guidance for a site.
func (c *Client) Brief(ctx context.Context, input ports.BriefingInput) (*ports.Briefing, error) {
	siteJSON, err := json.Marshal(toSitePayload(input))
	if err != nil {
		return nil, fmt.Errorf("marshaling site: %w", err)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: briefingPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: string(siteJSON),
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from OpenAI")
	}

	return parseBriefing(resp.Choices[0].Message.Content)
}

// sitePayload is the JSON document sent to the model.
type sitePayload struct {
	Name          string                 `json:"name"`
	Address       string                 `json:"address"`
	PlaceType     entities.PlaceType     `json:"place_type"`
	RiskGrade     entities.RiskGrade     `json:"risk_grade"`
	TrustScore    int                    `json:"trust_score"`
	TrustLabel    entities.TrustLabel    `json:"trust_label"`
	Constraints   []ports.ConstraintView `json:"constraints"`
	Tips          []string               `json:"tips,omitempty"`
	Announcements []announcementPayload  `json:"announcements,omitempty"`
}

type announcementPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toSitePayload(input ports.BriefingInput) sitePayload {
	payload := sitePayload{
		Name:        input.Place.Name,
		Address:     input.Place.Address,
		PlaceType:   input.Place.Type,
		RiskGrade:   input.Score.RiskGrade,
		TrustScore:  input.Score.TrustDetails.TotalScore,
		TrustLabel:  input.Score.TrustDetails.Label,
		Constraints: input.Constraints,
		Tips:        input.Tips,
	}
	if payload.Constraints == nil {
		payload.Constraints = []ports.ConstraintView{}
	}
	for _, a := range input.Announcements {
		payload.Announcements = append(payload.Announcements, announcementPayload{
			Title:   a.Title,
			Content: a.Content,
		})
	}
	return payload
}

// parseBriefing decodes the model's answer into a Briefing.
func parseBriefing(content string) (*ports.Briefing, error) {
	content = cleanJSONResponse(content)

	var briefing ports.Briefing
	if err := json.Unmarshal([]byte(content), &briefing); err != nil {
		return nil, fmt.Errorf("parsing briefing JSON: %w (response: %s)", err, content)
	}
	if strings.TrimSpace(briefing.Summary) == "" {
		return nil, fmt.Errorf("briefing has no summary (response: %s)", content)
	}
	return &briefing, nil
}

// cleanJSONResponse removes markdown code blocks if present.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
