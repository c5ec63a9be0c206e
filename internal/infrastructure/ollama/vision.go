package ollama

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// fallbackDescription is returned when every analysis strategy fails; the
// recommendation flow still produces diverse products from it.
const fallbackDescription = "This appears to be a product image, but I couldn't analyze it in detail. " +
	"The image might contain an item that could be in one of our popular categories like electronics, " +
	"clothing, home goods, or accessories."

// analysisStrategy is one way of turning an image into a description.
// Strategies are tried in order; the first usable result wins.
type analysisStrategy interface {
	Name() string
	Analyze(ctx context.Context, imagePath, prompt string) (string, error)
}

// cliStrategy shells out to the ollama CLI, the most reliable path for
// image input on a local install.
type cliStrategy struct {
	model string
}

func (s *cliStrategy) Name() string { return "cli" }

func (s *cliStrategy) Analyze(ctx context.Context, imagePath, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, "ollama", "run", s.model, "-i", imagePath, prompt)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("ollama CLI failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// apiStrategy posts the base64-encoded image to the generate endpoint.
type apiStrategy struct {
	client *Client
}

func (s *apiStrategy) Name() string { return "api" }

func (s *apiStrategy) Analyze(ctx context.Context, imagePath, prompt string) (string, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	return s.client.Generate(ctx, prompt, []string{encoded})
}

// VisionPipeline analyzes product images by trying an ordered list of
// strategies, degrading to a generic description when all of them fail.
type VisionPipeline struct {
	strategies []analysisStrategy
	prompt     string
	debug      bool
}

// NewVisionPipeline creates the default pipeline over the given client:
// CLI subprocess first, HTTP API second.
func NewVisionPipeline(client *Client) *VisionPipeline {
	return &VisionPipeline{
		strategies: []analysisStrategy{
			&cliStrategy{model: client.visionModel},
			&apiStrategy{client: client},
		},
		prompt: visionAnalysisPrompt,
		debug:  client.debug,
	}
}

// AnalyzeProductImage returns a free-text description of the image. Never
// returns an error for strategy failures: the last resort is a generic
// fallback description.
func (p *VisionPipeline) AnalyzeProductImage(ctx context.Context, imagePath string) (string, error) {
	if _, err := os.Stat(imagePath); err != nil {
		return "", fmt.Errorf("image not found: %w", err)
	}

	for _, strategy := range p.strategies {
		result, err := strategy.Analyze(ctx, imagePath, p.prompt)
		if err != nil {
			log.Printf("[VISION] %s image analysis failed: %v", strategy.Name(), err)
			continue
		}
		if usableDescription(result) {
			if p.debug {
				log.Printf("[VISION] %s image analysis succeeded", strategy.Name())
			}
			return result, nil
		}
		log.Printf("[VISION] %s image analysis returned unusable result", strategy.Name())
	}

	log.Printf("[VISION] All image analysis strategies failed, using fallback description")
	return fallbackDescription, nil
}

// usableDescription rejects empty output and the model's stock refusals.
func usableDescription(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	lower := strings.ToLower(s)
	return !strings.Contains(lower, "i cannot see any images") &&
		!strings.Contains(lower, "cannot analyze")
}

// visionAnalysisPrompt guides the vision model toward a structured product
// description.
const visionAnalysisPrompt = `Analyze this product image in detail and provide a comprehensive description of:
1) What type of product or item is shown
2) What category it belongs to (clothing, electronics, accessories, books, etc.)
3) Its apparent color(s), material(s), and texture(s)
4) Any distinctive features, patterns, or design elements
5) What the product might be used for
6) Any visible brand identifiers or logos
7) The apparent size, shape, and form factor

Be specific and detailed in your analysis. Focus only on what you can actually see in the image.`
