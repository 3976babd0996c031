package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"aifit/metrics"
	"aifit/models"
	"aifit/repository"

	"github.com/cespare/xxhash/v2"
)

const FallbackResponse = "I apologize, but I'm having trouble connecting to my knowledge base right now. Please try asking your fitness question again in a moment."

const generateTimeout = 45 * time.Second

type ChatReply struct {
	Response   string              `json:"response"`
	ChatRecord *models.ChatHistory `json:"chatRecord,omitempty"`
	APIError   bool                `json:"apiError,omitempty"`
	Cached     bool                `json:"cached,omitempty"`
}

// ChatService answers fitness questions through the configured model, caches
// answers by normalized question, and saves the exchange for signed-in users.
type ChatService struct {
	gen      Generator
	repo     repository.ChatRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	notifier Notifier
	logger   *slog.Logger
}

// NewChatService accepts a nil gen; every question then gets the fallback answer.
func NewChatService(gen Generator, repo repository.ChatRepository, cache repository.CacheRepository, cacheTTL time.Duration, notifier Notifier, logger *slog.Logger) *ChatService {
	return &ChatService{
		gen:      gen,
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		notifier: notifier,
		logger:   logger,
	}
}

func BuildPrompt(message string) string {
	return fmt.Sprintf(`You are a helpful and knowledgeable AI fitness coach.
Respond to the following question with useful advice related to fitness, diet, or exercise.
If the question is unrelated, politely guide the user back to fitness topics.

Question: %s`, message)
}

// Ask never fails because of the model: provider errors turn into the
// fallback reply with APIError set, and that reply is neither cached nor saved.
func (s *ChatService) Ask(ctx context.Context, userID uint, message string) (ChatReply, error) {
	key := cacheKey(message)

	response, cached := s.cache.Get(ctx, key)
	if cached {
		metrics.IncChatRequest("cached")
	} else {
		var err error
		response, err = s.generate(ctx, message)
		if err != nil {
			s.logger.Error("AI provider error", "error", err)
			metrics.IncChatRequest("fallback")
			return ChatReply{Response: FallbackResponse, APIError: true}, nil
		}
		metrics.IncChatRequest("answered")

		if err := s.cache.Set(ctx, key, response, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache chat answer", "error", err)
		}
	}

	reply := ChatReply{Response: response, Cached: cached}
	if userID == 0 {
		return reply, nil
	}

	record := &models.ChatHistory{UserID: userID, Query: message, Response: response, Timestamp: time.Now()}
	if err := s.repo.Create(ctx, record); err != nil {
		s.logger.Warn("failed to save chat history", "user_id", userID, "error", err)
		return reply, nil
	}
	reply.ChatRecord = record

	if s.notifier != nil {
		s.notifier.Broadcast(userID, map[string]any{"kind": "chat.created", "chat": record})
	}
	return reply, nil
}

func (s *ChatService) History(ctx context.Context, userID uint) ([]models.ChatHistory, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ChatService) generate(ctx context.Context, message string) (string, error) {
	if s.gen == nil {
		return "", ErrChatUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	response, err := s.gen.Generate(ctx, BuildPrompt(message))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(response) == "" {
		return "", errors.New("empty text response from AI provider")
	}
	return response, nil
}

// cacheKey folds case and whitespace so trivially different phrasings share an answer.
func cacheKey(message string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(message)), " ")
	return "chat:" + strconv.FormatUint(xxhash.Sum64String(normalized), 16)
}
