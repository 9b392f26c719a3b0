// Copyright 2025 Naga Krishna Poorna Chandu Kovelamudi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	portfolio "github.com/K-N-K-P-Chandu/My-Portfolio"
	"github.com/K-N-K-P-Chandu/My-Portfolio/ai"
	"github.com/K-N-K-P-Chandu/My-Portfolio/resume"
)

func main() {
	app := &cli.App{
		Name:  "assistant",
		Usage: "Answer questions about a resume from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question and exit",
				ArgsUsage: "<question>",
				Action:    askCommand,
				Flags:     assistantFlags(),
			},
			{
				Name:   "chat",
				Usage:  "Interactive question loop on stdin",
				Action: chatCommand,
				Flags:  assistantFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func assistantFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "all-minilm",
		},
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"p"},
			Usage:   "Path to a profile YAML file (default: built-in profile)",
		},
		&cli.StringFlag{
			Name:    "cache",
			Aliases: []string{"c"},
			Usage:   "Directory for the persistent embedding cache (disabled when empty)",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "Worker pool size for concurrent chunk embedding",
			Value: 1,
		},
	}
}

func newAssistant(c *cli.Context) (*portfolio.Assistant, error) {
	opts := []portfolio.AssistantOption{
		portfolio.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
		portfolio.WithPoolSize(c.Int("pool-size")),
	}

	if path := c.String("profile"); path != "" {
		profile, err := resume.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading profile: %w", err)
		}
		opts = append(opts, portfolio.WithProfile(profile))
	}
	if dir := c.String("cache"); dir != "" {
		opts = append(opts, portfolio.WithCacheDir(dir))
	}

	return portfolio.NewAssistant(opts...)
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required: assistant ask <question>")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	result, err := assistant.Ask(ctx, question)
	if err != nil {
		return err
	}

	printResult(result.Answer, result.Label, result.Score, result.IsFallback)
	return nil
}

func chatCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx := context.Background()
	if err := assistant.Initialize(ctx); err != nil {
		return err
	}

	fmt.Println("Ask me about my skills, experience, education, or contact info.")
	fmt.Println("Empty line or Ctrl-D exits.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			break
		}

		result, err := assistant.Ask(ctx, question)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		printResult(result.Answer, result.Label, result.Score, result.IsFallback)
	}
	return scanner.Err()
}

func printResult(answer, label string, score float64, fallback bool) {
	fmt.Println(answer)
	if !fallback {
		fmt.Printf("  [%s, score %.3f]\n", label, score)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
