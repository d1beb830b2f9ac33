package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	"chat-core/messaging"
	"chat-core/moderation"
	"chat-core/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the pipeline against the badger-backed repositories and
// performs one send from the command line. Errors bubble up here so
// deferred cleanup (database close, sequence release) always executes.
func run() error {
	room := flag.String("room", "general", "target room id")
	from := flag.String("from", "", "sender user id")
	members := flag.String("members", "", "comma-separated user ids to enroll in the room")
	content := flag.String("content", "", "message content")
	system := flag.Bool("system", false, "send as a system message")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := newLogger(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	index := repositories.NewSortedSetRepository(db)
	store := repositories.NewMessageRepository(db, log)
	unread := repositories.NewUnreadRepository(db)
	membership := repositories.NewMembershipRepository(index)
	blocks := repositories.NewBlockRepository(index)

	allocator, err := repositories.NewCounterRepository(db)
	if err != nil {
		return err
	}
	defer func() { _ = allocator.Close() }()

	var filters []contract.ContentFilter
	if words := splitWords(config.CensoredWords); len(words) > 0 {
		replacement, err := censoredRune(config.CensoredChar)
		if err != nil {
			return err
		}
		moderator, err := moderation.NewModerator(words, replacement)
		if err != nil {
			return fmt.Errorf("moderation setup: %w", err)
		}
		filters = append(filters, moderation.Filter(moderator))
		log.Info("Moderation filter enabled", "words", len(words))
	}

	pipeline := messaging.NewPipeline(log, store, index, allocator, membership, blocks, unread, logNotifier{log},
		messaging.Options{
			MaxContentLength: config.MaxContentLength,
			NewSetDelta:      config.NewSetDelta,
			ContentFilters:   filters,
		})

	ctx := context.Background()
	now := time.Now().UnixMilli()
	for _, userID := range splitWords(*members) {
		if err := membership.AddMember(ctx, userID, *room, now); err != nil {
			return fmt.Errorf("enrolling %s: %w", userID, err)
		}
	}

	if *system {
		return pipeline.SendSystemMessage(ctx, *from, *room, *content)
	}

	message, err := pipeline.SendMessage(ctx, domain.SendMessageCommand{
		SenderID: *from,
		RoomID:   *room,
		Content:  *content,
	})
	if err != nil {
		return err
	}
	if message == nil {
		log.Warn("Message sent but not confirmed")
		return nil
	}
	log.Info("Message sent",
		"id", message.ID, "room", message.RoomID,
		"newSet", message.NewSet, "content", message.Content)
	return nil
}

// logNotifier stands in for a live presence broadcaster in this demo.
type logNotifier struct {
	log *slog.Logger
}

func (n logNotifier) NotifyRoomParticipants(_ context.Context, senderID, roomID string, m domain.Message) {
	n.log.Info("Presence broadcast", "sender", senderID, "room", roomID, "id", m.ID)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func splitWords(csv string) []string {
	var out []string
	for _, w := range strings.Split(csv, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func censoredRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHARACTER must be a single character, got %q", str)
	}
	return r[0], nil
}
