package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"ai_game_relay/internal/clients/cohere"
	"ai_game_relay/internal/clients/huggingface"
	"ai_game_relay/internal/clients/openai"
	"ai_game_relay/internal/config"
	"ai_game_relay/internal/handlers"
	"ai_game_relay/internal/middleware"
	"ai_game_relay/internal/models"
	"ai_game_relay/internal/routes"
	"ai_game_relay/internal/services"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	game, err := config.LoadGame(cfg.GameConfigPath)
	if err != nil {
		log.Fatalf("failed to load game config: %v", err)
	}

	// One shared client so every upstream call gets the same bounded timeout.
	httpClient := &http.Client{Timeout: cfg.ProviderTimeout}

	var text models.TextProvider
	switch cfg.Provider {
	case config.ProviderCohere:
		text = cohere.NewClient(cohere.Config{
			Host:   cfg.CohereAPIURL,
			APIKey: cfg.CohereAPIKey,
			Model:  cfg.CohereModel,
		}, cohere.Options{
			MaxTokens:        game.Generation.MaxTokens,
			Temperature:      game.Generation.Temperature,
			TopK:             game.Generation.TopK,
			TopP:             game.Generation.TopP,
			FrequencyPenalty: game.Generation.FrequencyPenalty,
			PresencePenalty:  game.Generation.PresencePenalty,
		}, httpClient)
	case config.ProviderOpenAI:
		text = openai.NewClient(openai.Config{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		}, openai.Options{
			MaxTokens:        game.Generation.MaxTokens,
			Temperature:      game.Generation.Temperature,
			FrequencyPenalty: game.Generation.FrequencyPenalty,
			PresencePenalty:  game.Generation.PresencePenalty,
		}, httpClient)
	}

	var image models.ImageProvider
	if cfg.ImageEnabled {
		image = huggingface.NewClient(huggingface.Config{
			Host:   cfg.HFAPIURL,
			APIKey: cfg.HFAPIKey,
			Model:  cfg.HFModel,
		}, huggingface.Options{
			Width:          game.Image.Width,
			Height:         game.Image.Height,
			NegativePrompt: game.Image.NegativePrompt,
		}, httpClient)
	}

	service := services.NewGameService(text, image, game)
	h := handlers.NewGameHandler(service, cfg.IsDevelopment(), cfg.AllowedOrigins)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	middleware.Setup(r, cfg.AllowedOrigins)
	routes.RegisterRoutes(r, h)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("game relay listening on %s (provider=%s, images=%v)", addr, cfg.Provider, cfg.ImageEnabled)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
