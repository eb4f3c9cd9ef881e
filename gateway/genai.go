package gateway

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.0-flash"

// GeminiAssist implements Assist against the Gemini API.
type GeminiAssist struct {
	client *genai.Client
	model  string
}

// NewGeminiAssist creates the Gemini-backed gateway. The model defaults to
// gemini-2.0-flash when empty.
func NewGeminiAssist(ctx context.Context, apiKey, model string) (*GeminiAssist, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiAssist{client: client, model: model}, nil
}

func (g *GeminiAssist) IdentifyCategory(ctx context.Context, img Image) (Identification, error) {
	prompt := fmt.Sprintf(
		"You are trained to identify problems in a village from images. "+
			"Analyze the image and determine the category of the problem. "+
			"Available categories: %s. "+
			"Return only the identified problem category, nothing else.",
		strings.Join(Categories, ", "),
	)

	raw, err := g.generate(ctx, prompt, &img)
	if err != nil {
		return Identification{}, err
	}

	category := NormalizeCategory(raw)
	if category == CategoryUnknown {
		// Off-list answer: the caller asks the user to pick manually,
		// so there are no measures to suggest.
		return Identification{Category: CategoryUnknown}, nil
	}

	measures, err := g.SuggestMeasures(ctx, category)
	if err != nil {
		// The category alone is still useful.
		return Identification{Category: category}, nil
	}
	return Identification{Category: category, SuggestedMeasures: measures}, nil
}

func (g *GeminiAssist) SuggestMeasures(ctx context.Context, category string) (string, error) {
	prompt := fmt.Sprintf(
		"You are an assistant for rural development. Given a problem category, "+
			"provide 1-2 brief, actionable suggestions for immediate measures.\n\n"+
			"Problem Category: %s\n\nSuggested Measures:",
		category,
	)
	return g.generate(ctx, prompt, nil)
}

func (g *GeminiAssist) DraftReport(ctx context.Context, img Image, category string, rc ReportContext) (string, error) {
	var prompt string
	if rc.Recipient == "panchayat" {
		prompt = fmt.Sprintf(
			"You are an assistant for citizens to report local issues to their Panchayat. "+
				"Draft a formal yet clear report to the head of the Panchayat based on the "+
				"following information. The report should be respectful and provide all "+
				"necessary details for them to take action.\n\n"+
				"Panchayat Name: %s\nProblem Category: %s\nDescription by Citizen: %s\n\n"+
				"Structure the report with a clear subject line, a formal salutation, a body "+
				"explaining the problem and its location, and a respectful closing. The tone "+
				"should be that of a concerned citizen.",
			rc.Panchayat, category, rc.Description,
		)
	} else {
		prompt = fmt.Sprintf(
			"You are an assistant specialized in drafting reports for urban issues to the "+
				"city's public works department. Given the following information, draft a "+
				"concise and professional report:\n\n"+
				"Problem Category: %s\nLocation Data: %s\n\nReport:",
			category, rc.Location,
		)
	}
	return g.generate(ctx, prompt, &img)
}

func (g *GeminiAssist) generate(ctx context.Context, prompt string, img *Image) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if img != nil && len(img.Data) > 0 {
		mime := img.MIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, genai.NewPartFromBytes(img.Data, mime))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", ErrUnavailable)
	}
	return text, nil
}
