package internal

import (
	"context"
	"testing"

	"github.com/openretail/backoffice/testutil"
)

func TestChatService_Messages(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/chat/conversations/c1/messages", 200, testutil.SampleMessages)

	client := newTestClient(t, backend)
	page, err := client.Chat().Messages(context.Background(), "c1")
	if err != nil {
		t.Fatalf("Messages() error = %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(page.Items))
	}
	if page.Items[0].Content != "Shipment arrived" {
		t.Errorf("Items[0].Content = %q", page.Items[0].Content)
	}
	if page.Items[1].Read {
		t.Error("Items[1].Read = true, want false")
	}
}

func TestChatService_MarkRead(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("PUT", "/chat/conversations/c1/read", 200, nil)

	client := newTestClient(t, backend)
	if err := client.Chat().MarkRead(context.Background(), "c1"); err != nil {
		t.Fatalf("MarkRead() error = %v", err)
	}
	if n := backend.RequestCount("PUT", "/chat/conversations/c1/read"); n != 1 {
		t.Errorf("PUT calls = %d, want 1", n)
	}
}

func TestChatService_Unread(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/chat/unread", 200, map[string]int{"count": 4})

	client := newTestClient(t, backend)
	count, err := client.Chat().Unread(context.Background())
	if err != nil {
		t.Fatalf("Unread() error = %v", err)
	}
	if count != 4 {
		t.Errorf("Unread() = %d, want 4", count)
	}
}

func TestChatService_Conversations(t *testing.T) {
	backend := testutil.NewFakeBackend(t)
	backend.Handle("GET", "/chat/conversations", 200, []map[string]any{
		{"id": "c1", "participant_a_id": "u1", "participant_b_id": "u2", "last_message": "On my way", "unread_a": 1},
	})

	client := newTestClient(t, backend)
	page, err := client.Chat().Conversations(context.Background())
	if err != nil {
		t.Fatalf("Conversations() error = %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].LastMessage != "On my way" {
		t.Errorf("Conversations() = %+v", page.Items)
	}
}
