package messaging

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"chat-core/contract"
	"chat-core/domain"
	errs "chat-core/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DefaultNewSetDelta is the time gap beyond which a message starts a
// new visually-groupable set, when the sender is unchanged.
const DefaultNewSetDelta = 5 * time.Minute

var validate = validator.New()

// Options tunes the pipeline and injects its extension hooks. Hooks are
// ordered chains fixed at construction time, not discovered at runtime.
type Options struct {
	// MaxContentLength bounds transformed content; zero means the
	// default of 1000 characters.
	MaxContentLength int
	// NewSetDelta is the gap after which a same-sender message starts a
	// new set; zero means the 5 minute default.
	NewSetDelta time.Duration
	// ContentFilters run inside validation, each receiving the previous
	// one's output.
	ContentFilters []contract.ContentFilter
	// SaveTransforms rewrite the record before persistence and may fail
	// the send.
	SaveTransforms []contract.SaveTransform
	// PostSaveListeners observe the final message after a fully
	// successful fan-out. Their failures never reach the caller.
	PostSaveListeners []contract.PostSaveListener
}

// Pipeline composes validation, persistence and fan-out into the
// end-to-end send operations. It holds no state of its own between
// calls; every shared resource lives behind a collaborator interface.
type Pipeline struct {
	log         *slog.Logger
	store       contract.IMessageStore
	index       contract.IOrderedIndex
	allocator   contract.IIdentifierAllocator
	membership  contract.IMembershipService
	presence    contract.IPresenceNotifier
	resolver    RecipientResolver
	fanout      FanoutIndexer
	validator   Validator
	transforms  []contract.SaveTransform
	listeners   []contract.PostSaveListener
	newSetDelta time.Duration
}

func NewPipeline(
	log *slog.Logger,
	store contract.IMessageStore,
	index contract.IOrderedIndex,
	allocator contract.IIdentifierAllocator,
	membership contract.IMembershipService,
	blocks contract.IBlockService,
	unread contract.IUnreadTracker,
	presence contract.IPresenceNotifier,
	opts Options,
) *Pipeline {
	delta := opts.NewSetDelta
	if delta <= 0 {
		delta = DefaultNewSetDelta
	}
	return &Pipeline{
		log:         log,
		store:       store,
		index:       index,
		allocator:   allocator,
		membership:  membership,
		presence:    presence,
		resolver:    NewRecipientResolver(membership, blocks),
		fanout:      NewFanoutIndexer(index, unread),
		validator:   NewValidator(opts.MaxContentLength, opts.ContentFilters...),
		transforms:  opts.SaveTransforms,
		listeners:   opts.PostSaveListeners,
		newSetDelta: delta,
	}
}

// SendMessage validates and authorizes the request, then runs the
// message through the creation path. Membership is re-checked on every
// call. A nil message with a nil error means the record is durable but
// could not be read back; callers treat that as sent-but-unconfirmed.
func (p *Pipeline) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (*domain.Message, error) {
	content, err := p.validator.Validate(ctx, cmd.Content)
	if err != nil {
		return nil, err
	}
	cmd.Content = content

	member, err := p.membership.IsMember(ctx, cmd.SenderID, cmd.RoomID)
	if err != nil {
		return nil, fmt.Errorf("membership check: %w", err)
	}
	if !member {
		return nil, errs.ErrNotAllowed
	}
	return p.addMessage(ctx, cmd)
}

// SendSystemMessage records a server-originated announcement through
// the same creation path, bypassing the membership check, then notifies
// currently present room participants. Presence delivery is a
// lower-weight path than the durable fan-out.
func (p *Pipeline) SendSystemMessage(ctx context.Context, senderID, roomID, content string) error {
	message, err := p.addMessage(ctx, domain.SendMessageCommand{
		SenderID: senderID,
		RoomID:   roomID,
		Content:  content,
		System:   true,
	})
	if err != nil {
		return err
	}
	if message != nil && p.presence != nil {
		p.presence.NotifyRoomParticipants(ctx, senderID, roomID, *message)
	}
	return nil
}

// addMessage allocates the id, persists the record and fans it out.
// There is no rollback: once Save succeeds the message exists, and any
// later indexing failure is reported as an incomplete fan-out rather
// than a failed send.
func (p *Pipeline) addMessage(ctx context.Context, cmd domain.SendMessageCommand) (*domain.Message, error) {
	if err := validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidMessage, err)
	}

	id, err := p.allocator.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("identifier allocation: %w", err)
	}
	timestamp := cmd.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().UnixMilli()
	}

	message := domain.Message{
		ID:        id,
		Content:   cmd.Content,
		Timestamp: timestamp,
		SenderID:  cmd.SenderID,
		RoomID:    cmd.RoomID,
		System:    cmd.System,
		SourceIP:  cmd.SourceIP,
	}
	for _, transform := range p.transforms {
		message, err = transform(ctx, message)
		if err != nil {
			return nil, fmt.Errorf("save transform: %w", err)
		}
	}
	if err := p.store.Save(ctx, message); err != nil {
		return nil, fmt.Errorf("message store: %w", err)
	}

	// Probed before fan-out so the freshly written message does not
	// shadow the previous newest entry. Display-only: a failed probe
	// never fails a durable send.
	newSet, err := p.isNewSet(ctx, cmd.SenderID, cmd.RoomID, timestamp)
	if err != nil {
		p.log.Warn("new set detection failed", "id", id, "room", cmd.RoomID, "error", err)
		newSet = false
	}

	// Reported before the read-back so an incomplete fan-out is never
	// swallowed by a failed confirmation of the durable record.
	fanoutErr := p.runFanout(ctx, cmd, id, timestamp)
	if fanoutErr != nil {
		p.log.Warn("fan-out incomplete", "id", id, "room", cmd.RoomID, "error", fanoutErr)
		fanoutErr = fmt.Errorf("%w: %s", errs.ErrFanoutIncomplete, fanoutErr)
	}

	stored, err := p.store.Get(ctx, id)
	if err != nil {
		p.log.Warn("message read-back failed", "id", id, "error", err)
		return nil, fanoutErr
	}
	if len(stored) == 0 {
		p.log.Warn("message missing on read-back", "id", id)
		return nil, fanoutErr
	}
	result := stored[0]
	result.NewSet = newSet

	if fanoutErr != nil {
		return &result, fanoutErr
	}

	for _, listener := range p.listeners {
		p.notify(ctx, listener, result, cmd)
	}
	return &result, nil
}

// runFanout resolves recipients and issues the three index updates
// concurrently. Join semantics: the first failure is reported, the
// other branches complete or fail on their own, and all of them observe
// the caller's cancellation through the group context.
func (p *Pipeline) runFanout(ctx context.Context, cmd domain.SendMessageCommand, id, timestamp int64) error {
	recipients, err := p.resolver.Resolve(ctx, cmd.SenderID, cmd.RoomID)
	if err != nil {
		return err
	}

	unreadRecipients := lo.Filter(recipients, func(userID string, _ int) bool {
		return userID != cmd.SenderID
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.fanout.RecordRoomActivity(gctx, cmd.RoomID, recipients, timestamp)
	})
	g.Go(func() error {
		return p.fanout.RecordMessageForUsers(gctx, cmd.RoomID, recipients, id, timestamp)
	})
	g.Go(func() error {
		return p.fanout.MarkUnread(gctx, unreadRecipients, cmd.RoomID)
	})
	return g.Wait()
}

// isNewSet reports whether this (sender, room, timestamp) triple starts
// a new message burst: true when the room timeline is empty, the newest
// prior message has another sender, or the gap exceeds the configured
// delta.
func (p *Pipeline) isNewSet(ctx context.Context, senderID, roomID string, timestamp int64) (bool, error) {
	entries, err := p.index.RevRangeWithScores(ctx, UserRoomMessagesKey(senderID, roomID), 0, 0)
	if err != nil {
		return false, err
	}
	if len(entries) == 0 {
		return true, nil
	}
	last := entries[0]
	if timestamp-last.Score > p.newSetDelta.Milliseconds() {
		return true, nil
	}
	lastID, err := strconv.ParseInt(last.Member, 10, 64)
	if err != nil {
		return false, err
	}
	previous, err := p.store.Get(ctx, lastID)
	if err != nil {
		return false, err
	}
	if len(previous) == 0 {
		return true, nil
	}
	return previous[0].SenderID != senderID, nil
}

// notify runs one post-save listener, isolating panics so informational
// side effects can never invalidate an already-committed message.
func (p *Pipeline) notify(ctx context.Context, listener contract.PostSaveListener, m domain.Message, cmd domain.SendMessageCommand) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("post-save listener panicked", "id", m.ID, "panic", r)
		}
	}()
	listener(ctx, m, cmd)
}
