package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dealerdesk/dealerdesk_backend/internal/notify"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo"
	"github.com/dealerdesk/dealerdesk_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client, 30)
}

func mustCreate(t *testing.T, svc Service, userID uuid.UUID) *repo.Notification {
	t.Helper()
	n, err := svc.Create(context.Background(), CreateRequest{
		UserID: userID,
		Type:   notify.TypeLead,
		Title:  "New lead assigned",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return n
}

func TestCreate_Validation(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "unknown type rejected",
			req:     CreateRequest{UserID: userID, Type: "billing", Title: "x"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "unknown priority rejected",
			req:     CreateRequest{UserID: userID, Type: notify.TypeLead, Priority: "critical", Title: "x"},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "expiry before creation rejected",
			req:     CreateRequest{UserID: userID, Type: notify.TypeLead, Title: "x", ExpiresAt: &past},
			wantErr: ErrInvalidExpiry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := newTestService(t)
	n := mustCreate(t, svc, uuid.New())

	if string(n.Priority) != string(notify.PriorityNormal) {
		t.Errorf("priority = %s, want default normal", n.Priority)
	}
	if n.Read {
		t.Error("new notification should be unread")
	}

	// Default passive expiry lands 30 days out.
	want := n.CreatedAt.Add(30 * 24 * time.Hour)
	if diff := n.ExpiresAt.Sub(want); diff < -time.Minute || diff > time.Minute {
		t.Errorf("expires_at = %v, want about %v", n.ExpiresAt, want)
	}
}

func TestMarkRead_Idempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()
	n := mustCreate(t, svc, userID)

	first, err := svc.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("first mark read: %v", err)
	}
	if !first.Read || first.ReadAt == nil {
		t.Fatalf("read = %v, read_at = %v after mark read", first.Read, first.ReadAt)
	}

	second, err := svc.MarkRead(ctx, n.ID, userID)
	if err != nil {
		t.Fatalf("second mark read: %v", err)
	}
	if second.ReadAt == nil || !second.ReadAt.Equal(*first.ReadAt) {
		t.Errorf("read_at moved on repeat mark read: first %v, second %v", first.ReadAt, second.ReadAt)
	}

	count, err := svc.UnreadCount(ctx, userID)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Errorf("unread count = %d after mark read, want 0", count)
	}
}

func TestMarkRead_OtherUsersNotificationNotFound(t *testing.T) {
	svc := newTestService(t)
	n := mustCreate(t, svc, uuid.New())

	if _, err := svc.MarkRead(context.Background(), n.ID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want %v", err, ErrNotFound)
	}
}

func TestList_UnreadFilterExcludesRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	read := mustCreate(t, svc, userID)
	unread := mustCreate(t, svc, userID)
	if _, err := svc.MarkRead(ctx, read.ID, userID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	notifs, err := svc.List(ctx, userID, true, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(notifs) != 1 || notifs[0].ID != unread.ID {
		t.Errorf("unread list = %v, want only the unread notification", notifs)
	}
}

func TestGetPrefs_LazyDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefs, err := svc.GetPrefs(ctx, userID)
	if err != nil {
		t.Fatalf("get prefs: %v", err)
	}
	for _, ch := range notify.Channels() {
		for _, typ := range notify.Types() {
			if !prefs.Matrix.Allows(ch, typ) {
				t.Errorf("default matrix blocks %s/%s", ch, typ)
			}
		}
	}

	again, err := svc.GetPrefs(ctx, userID)
	if err != nil {
		t.Fatalf("second get prefs: %v", err)
	}
	if again.ID != prefs.ID {
		t.Error("second access created a new preference row")
	}
}
