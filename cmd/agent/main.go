package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"strings"

	"careproxy/cmd"
	"careproxy/internal/conversation"
	"careproxy/internal/session"
	"careproxy/internal/store"
	"careproxy/internal/triage"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

type AgentConfig struct {
	DataDir     string  `env:"DATA_DIR" envDefault:"./conversations"`
	Model       string  `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	Temperature float64 `env:"TEMPERATURE" envDefault:"0.3"`
	LLMBaseURL  string  `env:"LLM_BASE_URL" envDefault:""`
	LLMAPIKey   string  `env:"LLM_API_KEY" envDefault:""`
}

func main() {
	log.Println("Starting conversation agent...")

	cmd.LoadEnvFile()

	var cfg AgentConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	conversations, err := store.NewStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open conversation store: %v", err)
	}

	// LLM_BASE_URL selects a self-hosted OpenAI-compatible endpoint;
	// otherwise the hosted OpenAI API is used.
	var llm triage.LLM
	if cfg.LLMBaseURL != "" {
		llm = triage.NewRestLLM(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.Model, cfg.Temperature)
	} else {
		llm = triage.NewOpenAI(cfg.Model, cfg.Temperature)
	}

	pipeline := conversation.NewPipeline(triage.NewAssessor(llm), conversations)

	queue := session.NewEventQueue()
	sessionID := uuid.New()

	// Stand-in for the realtime voice provider: read "User:"/"Agent:"
	// prefixed lines from stdin and close the session on EOF. A provider
	// integration would publish the same events from its callbacks, after
	// opening the session with session.Instructions.
	go func() {
		defer queue.Close()

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case strings.HasPrefix(line, "User:"):
				queue.PublishUserUtterance(sessionID, strings.TrimSpace(strings.TrimPrefix(line, "User:")))
			case strings.HasPrefix(line, "Agent:"):
				queue.PublishAgentUtterance(sessionID, strings.TrimSpace(strings.TrimPrefix(line, "Agent:")))
			}
		}
		queue.PublishClose(sessionID, "transcript input closed")
	}()

	collector := session.NewCollector(pipeline)
	if err := collector.Run(context.Background(), queue.Events()); err != nil {
		log.Fatalf("Failed to save conversation: %v", err)
	}

	log.Println("Done.")
}
