package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/dialog"
	"github.com/s21platform/dialog-service/internal/model"
	"github.com/s21platform/dialog-service/internal/pkg/identity"
)

const (
	channelConversations = "dialog_conversations"
	channelMessages      = "dialog_messages"

	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
)

// Listener bridges postgres NOTIFY into live feeds for the sync core. A
// single LISTEN connection serves every feed; each notification triggers a
// requery of the affected result sets, so feeds always deliver whole,
// committed batches in acknowledgment order.
type Listener struct {
	repo     *Repository
	listener *pq.Listener
	logger   logger_lib.LoggerInterface

	mu                sync.Mutex
	conversationFeeds map[*conversationFeed]struct{}
	messageFeeds      map[*messageFeed]struct{}
}

func NewListener(cfg *config.Config, repo *Repository, logger logger_lib.LoggerInterface) *Listener {
	l := &Listener{
		repo:              repo,
		logger:            logger,
		conversationFeeds: make(map[*conversationFeed]struct{}),
		messageFeeds:      make(map[*messageFeed]struct{}),
	}

	l.listener = pq.NewListener(connString(cfg), minReconnectInterval, maxReconnectInterval, l.connectionEvent)

	return l
}

func (l *Listener) connectionEvent(event pq.ListenerEventType, err error) {
	if err != nil && l.logger != nil {
		l.logger.Error(fmt.Sprintf("postgres listener connection event %d: %v", event, err))
	}
}

// Run consumes notifications until ctx is done.
func (l *Listener) Run(ctx context.Context) error {
	if err := l.listener.Listen(channelConversations); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", channelConversations, err)
	}
	if err := l.listener.Listen(channelMessages); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", channelMessages, err)
	}

	for {
		select {
		case <-ctx.Done():
			_ = l.listener.Close()
			return nil
		case notification := <-l.listener.Notify:
			if notification == nil {
				// connection was re-established; requery everything to resync
				l.refreshAll(ctx)
				continue
			}
			l.dispatch(ctx, notification.Channel, notification.Extra)
		}
	}
}

// dispatch refreshes only the feeds whose result set the notification may
// have changed. The payload is the conversation id; for conversation list
// feeds the affected participants are read back out of it.
func (l *Listener) dispatch(ctx context.Context, channel, conversationID string) {
	switch channel {
	case channelConversations:
		a, b, ok := identity.Participants(conversationID)
		if !ok {
			if l.logger != nil {
				l.logger.Error(fmt.Sprintf("malformed conversation id in notification: %s", conversationID))
			}
			return
		}
		for _, feed := range l.conversationFeedsFor(a, b) {
			feed.refresh(ctx)
		}
	case channelMessages:
		for _, feed := range l.messageFeedsFor(conversationID) {
			feed.refresh(ctx)
		}
	}
}

func (l *Listener) conversationFeedsFor(participants ...string) []*conversationFeed {
	l.mu.Lock()
	defer l.mu.Unlock()

	var feeds []*conversationFeed
	for feed := range l.conversationFeeds {
		for _, participantID := range participants {
			if feed.participantID == participantID {
				feeds = append(feeds, feed)
				break
			}
		}
	}
	return feeds
}

func (l *Listener) messageFeedsFor(conversationID string) []*messageFeed {
	l.mu.Lock()
	defer l.mu.Unlock()

	var feeds []*messageFeed
	for feed := range l.messageFeeds {
		if feed.conversationID == conversationID {
			feeds = append(feeds, feed)
		}
	}
	return feeds
}

func (l *Listener) refreshAll(ctx context.Context) {
	l.mu.Lock()
	conversationFeeds := make([]*conversationFeed, 0, len(l.conversationFeeds))
	for feed := range l.conversationFeeds {
		conversationFeeds = append(conversationFeeds, feed)
	}
	messageFeeds := make([]*messageFeed, 0, len(l.messageFeeds))
	for feed := range l.messageFeeds {
		messageFeeds = append(messageFeeds, feed)
	}
	l.mu.Unlock()

	for _, feed := range conversationFeeds {
		feed.refresh(ctx)
	}
	for _, feed := range messageFeeds {
		feed.refresh(ctx)
	}
}

// SubscribeConversations opens a live feed over the participant's
// conversation list, primed with the current snapshot.
func (l *Listener) SubscribeConversations(ctx context.Context, participantID string) (dialog.ConversationFeed, error) {
	snapshot, err := l.repo.GetConversations(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversations snapshot: %w", err)
	}

	feed := &conversationFeed{
		query: func(ctx context.Context) (model.ConversationList, error) {
			return l.repo.GetConversations(ctx, participantID)
		},
		participantID: participantID,
		updates:       make(chan model.ConversationList, 1),
		errs:          make(chan error, 1),
		done:          make(chan struct{}),
	}
	feed.detach = func() { l.removeConversationFeed(feed) }

	l.mu.Lock()
	l.conversationFeeds[feed] = struct{}{}
	l.mu.Unlock()

	feed.updates <- snapshot

	return feed, nil
}

// SubscribeMessages opens a live feed over one conversation's messages,
// primed with the current snapshot.
func (l *Listener) SubscribeMessages(ctx context.Context, conversationID string) (dialog.MessageFeed, error) {
	snapshot, err := l.repo.GetConversationMessages(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages snapshot: %w", err)
	}

	feed := &messageFeed{
		query: func(ctx context.Context) (model.MessageList, error) {
			return l.repo.GetConversationMessages(ctx, conversationID)
		},
		conversationID: conversationID,
		updates:        make(chan model.MessageList, 1),
		errs:           make(chan error, 1),
		done:           make(chan struct{}),
	}
	feed.detach = func() { l.removeMessageFeed(feed) }

	l.mu.Lock()
	l.messageFeeds[feed] = struct{}{}
	l.mu.Unlock()

	feed.updates <- snapshot

	return feed, nil
}

func (l *Listener) removeConversationFeed(feed *conversationFeed) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.conversationFeeds, feed)
}

func (l *Listener) removeMessageFeed(feed *messageFeed) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.messageFeeds, feed)
}

type conversationFeed struct {
	query         func(ctx context.Context) (model.ConversationList, error)
	participantID string

	updates   chan model.ConversationList
	errs      chan error
	done      chan struct{}
	closeOnce sync.Once
	detach    func()
}

func (f *conversationFeed) Updates() <-chan model.ConversationList { return f.updates }

func (f *conversationFeed) Err() <-chan error { return f.errs }

func (f *conversationFeed) Close() {
	f.closeOnce.Do(func() {
		f.detach()
		close(f.done)
	})
}

// refresh requeries and pushes the whole snapshot. Sends never block the
// dispatch goroutine: a pending snapshot nobody has consumed yet is
// replaced by the fresher one.
func (f *conversationFeed) refresh(ctx context.Context) {
	select {
	case <-f.done:
		return
	default:
	}

	list, err := f.query(ctx)
	if err != nil {
		select {
		case f.errs <- err:
		default:
		}
		return
	}

	for {
		select {
		case f.updates <- list:
			return
		default:
		}
		select {
		case <-f.updates:
		default:
		}
	}
}

type messageFeed struct {
	query          func(ctx context.Context) (model.MessageList, error)
	conversationID string

	updates   chan model.MessageList
	errs      chan error
	done      chan struct{}
	closeOnce sync.Once
	detach    func()
}

func (f *messageFeed) Updates() <-chan model.MessageList { return f.updates }

func (f *messageFeed) Err() <-chan error { return f.errs }

func (f *messageFeed) Close() {
	f.closeOnce.Do(func() {
		f.detach()
		close(f.done)
	})
}

// refresh requeries and pushes the whole snapshot, coalescing like the
// conversation feed does.
func (f *messageFeed) refresh(ctx context.Context) {
	select {
	case <-f.done:
		return
	default:
	}

	list, err := f.query(ctx)
	if err != nil {
		select {
		case f.errs <- err:
		default:
		}
		return
	}

	for {
		select {
		case f.updates <- list:
			return
		default:
		}
		select {
		case <-f.updates:
		default:
		}
	}
}

// Store is the full remote surface the sync core consumes: Repository
// reads and writes plus Listener-backed live feeds.
type Store struct {
	*Repository
	*Listener
}
