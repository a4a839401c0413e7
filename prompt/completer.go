// Copyright 2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var (
	ErrNoAPIKey = errors.New("llm api key is not configured")
)

// StubMessage is returned by StubCompleter
const StubMessage = "LLM (stub) — please replace the stub completer with a real model."

// Completer turns a rendered prompt into an answer
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// StubCompleter stands in for a language model and never calls out
type StubCompleter struct{}

func (StubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return StubMessage, nil
}

// Config configures an OpenAI compatible chat model
type Config struct {
	BaseURL string
	APIKey  string
	Model   string

	// RPM caps requests per minute, zero disables the limit
	RPM int
}

// OpenAICompleter sends prompts to an OpenAI compatible chat endpoint
type OpenAICompleter struct {
	chatModel model.BaseChatModel
	limiter   *rate.Limiter
}

// NewOpenAICompleter builds a completer backed by an eino chat model
func NewOpenAICompleter(ctx context.Context, cfg Config) (*OpenAICompleter, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("create chat model: %w", err)
	}

	return NewCompleter(chatModel, cfg.RPM), nil
}

// NewCompleter wraps any eino chat model
func NewCompleter(chatModel model.BaseChatModel, rpm int) *OpenAICompleter {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rpm > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1)
	}

	return &OpenAICompleter{
		chatModel: chatModel,
		limiter:   limiter,
	}
}

func (c *OpenAICompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	messages := []*schema.Message{
		schema.UserMessage(prompt),
	}

	resp, err := c.chatModel.Generate(ctx, messages)
	if err != nil {
		log.Error().Err(err).Msg("chat model generate failed")
		return "", err
	}

	return strings.TrimSpace(resp.Content), nil
}
