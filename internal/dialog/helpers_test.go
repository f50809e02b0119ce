package dialog

import (
	"github.com/golang/mock/gomock"

	"github.com/s21platform/dialog-service/internal/model"
)

func newConversationFeedMock(ctrl *gomock.Controller) (*MockConversationFeed, chan model.ConversationList, chan error) {
	updates := make(chan model.ConversationList, 8)
	errs := make(chan error, 1)

	feed := NewMockConversationFeed(ctrl)
	feed.EXPECT().Updates().Return((<-chan model.ConversationList)(updates)).AnyTimes()
	feed.EXPECT().Err().Return((<-chan error)(errs)).AnyTimes()
	feed.EXPECT().Close().AnyTimes()

	return feed, updates, errs
}

func newMessageFeedMock(ctrl *gomock.Controller) (*MockMessageFeed, chan model.MessageList, chan error) {
	updates := make(chan model.MessageList, 8)
	errs := make(chan error, 1)

	feed := NewMockMessageFeed(ctrl)
	feed.EXPECT().Updates().Return((<-chan model.MessageList)(updates)).AnyTimes()
	feed.EXPECT().Err().Return((<-chan error)(errs)).AnyTimes()
	feed.EXPECT().Close().AnyTimes()

	return feed, updates, errs
}
