package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/kimneyapti/notifier/internal/domain"
	"github.com/kimneyapti/notifier/internal/domain/notice"
	"github.com/kimneyapti/notifier/internal/domain/push"
	"github.com/kimneyapti/notifier/internal/platform/telemetry"
	"github.com/kimneyapti/notifier/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testNotice() notice.Notice {
	return notice.Notice{Title: "🎯 Sana iş atandı!", Body: `Ayşe sana "Sunum" atadı`}
}

func testData() map[string]string {
	return notice.AssignmentData("ws1", "item1", "Ekip")
}

// batchFor answers a multicast with one response per token, failing the
// tokens present in failures with the mapped error.
func batchFor(failures map[string]error) func(context.Context, *push.Message) (*push.BatchResponse, error) {
	return func(_ context.Context, msg *push.Message) (*push.BatchResponse, error) {
		out := &push.BatchResponse{}
		for _, tok := range msg.Tokens {
			if err, ok := failures[tok]; ok {
				out.Responses = append(out.Responses, push.SendResponse{Token: tok, Err: err})
				continue
			}
			out.Responses = append(out.Responses, push.SendResponse{Token: tok, MessageID: "m-" + tok})
		}
		return out, nil
	}
}

func TestNewDispatcher_NilLogger(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(mocks.NewMockTokenStore(t), mocks.NewMockPushSender(t), nil, nil)
	if d.logger == nil {
		t.Fatal("NewDispatcher(nil logger) should create a no-op logger, got nil")
	}
}

func TestDispatcher_NotifyUser_NoTokens(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return([]string{}, nil)

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if res.Tokens != 0 || res.SuccessCount != 0 || res.Err != nil {
		t.Errorf("NotifyUser() = %+v, want empty result", res)
	}
	sender.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyUser_ListFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	errStore := errors.New("store down")
	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return(nil, errStore)

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if !errors.Is(res.Err, errStore) {
		t.Errorf("NotifyUser().Err = %v, want %v", res.Err, errStore)
	}
	sender.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyUser_AllSucceed(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return([]string{"t1", "t2"}, nil)

	var sent *push.Message
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, msg *push.Message) (*push.BatchResponse, error) {
			sent = msg
			return batchFor(nil)(ctx, msg)
		})

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if res.Tokens != 2 || res.SuccessCount != 2 {
		t.Errorf("NotifyUser() tokens/success = %d/%d, want 2/2", res.Tokens, res.SuccessCount)
	}
	if len(res.FailedTokens) != 0 || len(res.PrunedTokens) != 0 {
		t.Errorf("NotifyUser() failed=%v pruned=%v, want none", res.FailedTokens, res.PrunedTokens)
	}
	if sent == nil {
		t.Fatal("SendMulticast was not called")
	}
	if sent.Notice != testNotice() {
		t.Errorf("sent notice = %+v, want %+v", sent.Notice, testNotice())
	}
	if sent.Data["type"] != "item_assigned" || sent.Data["workspaceName"] != "Ekip" {
		t.Errorf("sent data = %v", sent.Data)
	}
	if sent.Hints != push.AssignmentHints() {
		t.Errorf("sent hints = %+v, want %+v", sent.Hints, push.AssignmentHints())
	}
	store.AssertNotCalled(t, "DeleteToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyUser_PrunesEveryFailedToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return([]string{"t1", "t2", "t3", "t4"}, nil)
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).RunAndReturn(batchFor(map[string]error{
		"t2": domain.ErrTokenRejected,
		"t3": fmt.Errorf("fcm 503: INTERNAL: %w", domain.ErrUnavailable),
		"t4": errors.New("unclassified"),
	}))
	for _, tok := range []string{"t2", "t3", "t4"} {
		store.EXPECT().DeleteToken(mock.Anything, "bob", tok).Return(nil).Once()
	}

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if res.SuccessCount != 1 {
		t.Errorf("SuccessCount = %d, want 1", res.SuccessCount)
	}
	want := []string{"t2", "t3", "t4"}
	if !slices.Equal(res.FailedTokens, want) {
		t.Errorf("FailedTokens = %v, want %v", res.FailedTokens, want)
	}
	if !slices.Equal(res.PrunedTokens, want) {
		t.Errorf("PrunedTokens = %v, want %v", res.PrunedTokens, want)
	}
	store.AssertNotCalled(t, "DeleteToken", mock.Anything, "bob", "t1")
}

func TestDispatcher_NotifyUser_DeleteFailureContinues(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return([]string{"t1", "t2"}, nil)
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).RunAndReturn(batchFor(map[string]error{
		"t1": domain.ErrTokenRejected,
		"t2": domain.ErrTokenRejected,
	}))
	store.EXPECT().DeleteToken(mock.Anything, "bob", "t1").Return(errors.New("write failed")).Once()
	store.EXPECT().DeleteToken(mock.Anything, "bob", "t2").Return(nil).Once()

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if want := []string{"t2"}; !slices.Equal(res.PrunedTokens, want) {
		t.Errorf("PrunedTokens = %v, want %v", res.PrunedTokens, want)
	}
	if res.Err != nil {
		t.Errorf("Err = %v, want nil (delete failures are not dispatch errors)", res.Err)
	}
}

func TestDispatcher_NotifyUser_SendFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	errSend := fmt.Errorf("fcm: %w", domain.ErrUnavailable)
	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return([]string{"t1", "t2"}, nil)
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).Return(nil, errSend)

	res := NewDispatcher(store, sender, nil, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if !errors.Is(res.Err, errSend) {
		t.Errorf("Err = %v, want %v", res.Err, errSend)
	}
	if res.SuccessCount != 0 || len(res.PrunedTokens) != 0 {
		t.Errorf("NotifyUser() = %+v, want no successes and nothing pruned", res)
	}
	store.AssertNotCalled(t, "DeleteToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_NotifyUser_SplitsLargeTokenSets(t *testing.T) {
	t.Parallel()

	tokens := make([]string, push.MaxTokens+3)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("t%d", i)
	}

	store := mocks.NewMockTokenStore(t)
	sender := mocks.NewMockPushSender(t)
	store.EXPECT().ListTokens(mock.Anything, "bob").Return(tokens, nil)

	var sizes []int
	sender.EXPECT().SendMulticast(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, msg *push.Message) (*push.BatchResponse, error) {
			sizes = append(sizes, len(msg.Tokens))
			return batchFor(nil)(ctx, msg)
		}).Times(2)

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	res := NewDispatcher(store, sender, metrics, discardLogger()).
		NotifyUser(context.Background(), "bob", testNotice(), testData())

	if want := []int{push.MaxTokens, 3}; !slices.Equal(sizes, want) {
		t.Errorf("batch sizes = %v, want %v", sizes, want)
	}
	if res.SuccessCount != len(tokens) {
		t.Errorf("SuccessCount = %d, want %d", res.SuccessCount, len(tokens))
	}
}
