package externals

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kelana-server/model"
)

var generationApiUrl string
var generationApiKey string
var generationModel string

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string             `json:"model"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatError struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *chatError   `json:"error"`
}

func InitGenerationApi(testModeArg string) {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	if testModeArg == "test" {
		// the local mock server stands in for the paid endpoint
		generationApiUrl = "http://localhost:8085/v1/chat/completions"
	} else {
		generationApiUrl = os.Getenv("GENERATION_API_URL")
	}
	generationApiKey = os.Getenv("GENERATION_API_KEY")
	generationModel = os.Getenv("GENERATION_MODEL")
}

// SetGenerationApi points the client at an explicit endpoint. Tests use it
// to target a local completion server.
func SetGenerationApi(url, key, modelName string) {
	generationApiUrl = url
	generationApiKey = key
	generationModel = modelName
}

// GenerateItinerary submits the composed prompt to the completion endpoint
// and decodes the schema-constrained response. Blocking, no retry: a
// transport error, a provider error or a schema violation surfaces
// immediately as a GenerationError with the provider message.
func GenerateItinerary(prompt string) (model.GeneratedItinerary, error) {
	requestPayload := chatRequest{
		Model: generationModel,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	}
	requestBody, err := json.Marshal(requestPayload)
	if err != nil {
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}

	req, err := http.NewRequest("POST", generationApiUrl, bytes.NewReader(requestBody))
	if err != nil {
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generationApiKey)
	client := &http.Client{}

	start := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		log.Println("error calling the generation api: ", err)
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	elapsed := time.Since(start)
	log.Println("CALL Generation API took: ", elapsed)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return model.GeneratedItinerary{}, &model.GenerationError{Message: providerMessage(body, resp.StatusCode)}
	}

	var response chatResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}
	if response.Error != nil {
		return model.GeneratedItinerary{}, &model.GenerationError{Message: response.Error.Message}
	}
	if len(response.Choices) == 0 {
		log.Println("Missing data in the response")
		return model.GeneratedItinerary{}, &model.GenerationError{Message: "missing data in response"}
	}

	var generated model.GeneratedItinerary
	content := stripCodeFence(response.Choices[0].Message.Content)
	err = json.Unmarshal([]byte(content), &generated)
	if err != nil {
		log.Println("error decoding generated itinerary: ", err)
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}

	err = generated.Validate()
	if err != nil {
		log.Println("generated itinerary failed schema validation: ", err)
		return model.GeneratedItinerary{}, &model.GenerationError{Message: err.Error()}
	}

	return generated, nil
}

func providerMessage(body []byte, statusCode int) string {
	var response chatResponse
	err := json.Unmarshal(body, &response)
	if err == nil && response.Error != nil && response.Error.Message != "" {
		return response.Error.Message
	}
	return "HTTP " + http.StatusText(statusCode)
}

// some providers wrap the JSON object in a markdown fence despite the
// response_format hint
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
