package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"parcel_tracking/internal/models"
)

func newSupportFixture(admin string) (*SupportService, *fakeSupportRepo, *fakeQueue) {
	repo := newFakeSupportRepo()
	q := &fakeQueue{}
	svc := NewSupportService(repo, NewNotifier(q, admin, nil), nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo, q
}

func TestSupportService_SubmitSupport(t *testing.T) {
	svc, _, q := newSupportFixture("admin@example.com")

	r, err := svc.SubmitSupport(context.Background(), models.SupportRequest{
		Name:    " Nina ",
		Email:   "Nina@Example.com",
		Message: "Where is my parcel?",
		Status:  models.SupportClosed, // ignored
	})
	if err != nil {
		t.Fatalf("SubmitSupport returned error: %v", err)
	}
	if r.ID != 1 || r.Status != models.SupportOpen || r.IssueType != models.DefaultIssueType || r.Priority != models.DefaultSupportPriority {
		t.Fatalf("unexpected defaults: %+v", r)
	}
	if r.Email != "nina@example.com" || r.Name != "Nina" {
		t.Fatalf("expected normalised contact, got %q/%q", r.Name, r.Email)
	}

	if len(q.msgs) != 2 {
		t.Fatalf("expected admin mail and confirmation, got %d", len(q.msgs))
	}
	if q.msgs[0].To != "admin@example.com" || q.msgs[0].ReplyTo != "nina@example.com" {
		t.Errorf("unexpected admin mail %+v", q.msgs[0])
	}
	if q.msgs[1].To != "nina@example.com" {
		t.Errorf("unexpected confirmation recipient %q", q.msgs[1].To)
	}
}

func TestSupportService_SubmitSupport_WithoutAdminSendsConfirmationOnly(t *testing.T) {
	svc, _, q := newSupportFixture("")

	if _, err := svc.SubmitSupport(context.Background(), models.SupportRequest{Name: "N", Email: "n@example.com", Message: "hi"}); err != nil {
		t.Fatalf("SubmitSupport returned error: %v", err)
	}
	if len(q.msgs) != 1 || q.msgs[0].To != "n@example.com" {
		t.Fatalf("expected confirmation only, got %+v", q.msgs)
	}
}

func TestSupportService_SubmitSupport_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   models.SupportRequest
		want string
	}{
		{"no name", models.SupportRequest{Email: "a@b.com", Message: "m"}, "Name is required"},
		{"no email", models.SupportRequest{Name: "A", Message: "m"}, "Email is required"},
		{"bad email", models.SupportRequest{Name: "A", Email: "ab", Message: "m"}, "Invalid email format"},
		{"no message", models.SupportRequest{Name: "A", Email: "a@b.com", Message: " "}, "Message is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newSupportFixture("admin@example.com")
			_, err := svc.SubmitSupport(context.Background(), tt.in)
			if !IsValidation(err) || err.Error() != tt.want {
				t.Fatalf("expected %q, got %v", tt.want, err)
			}
			if len(repo.items) != 0 {
				t.Fatalf("expected nothing stored")
			}
		})
	}
}

func TestSupportService_UpdateSupportStatus(t *testing.T) {
	svc, _, _ := newSupportFixture("admin@example.com")
	ctx := context.Background()
	r, err := svc.SubmitSupport(ctx, models.SupportRequest{Name: "N", Email: "n@example.com", Message: "help"})
	if err != nil {
		t.Fatalf("SubmitSupport returned error: %v", err)
	}

	got, err := svc.UpdateSupportStatus(ctx, r.ID, "in_progress", "Looking into it")
	if err != nil {
		t.Fatalf("UpdateSupportStatus returned error: %v", err)
	}
	if got.Status != models.SupportInProgress || got.AdminResponse != "Looking into it" || got.ResolvedAt != nil {
		t.Fatalf("unexpected in-progress request %+v", got)
	}

	got, err = svc.UpdateSupportStatus(ctx, r.ID, models.SupportResolved, "")
	if err != nil {
		t.Fatalf("UpdateSupportStatus returned error: %v", err)
	}
	if got.AdminResponse != "Looking into it" {
		t.Errorf("expected empty response to keep the previous one, got %q", got.AdminResponse)
	}
	if got.ResolvedAt == nil || !got.ResolvedAt.Equal(fixedNow) {
		t.Errorf("expected ResolvedAt stamped, got %v", got.ResolvedAt)
	}

	if _, err := svc.UpdateSupportStatus(ctx, r.ID, "WAITING", ""); !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if _, err := svc.UpdateSupportStatus(ctx, 42, models.SupportClosed, ""); !errors.Is(err, ErrSupportNotFound) {
		t.Errorf("expected ErrSupportNotFound, got %v", err)
	}
}

func TestSupportService_SupportStats(t *testing.T) {
	svc, repo, _ := newSupportFixture("")
	for _, st := range []string{models.SupportOpen, models.SupportOpen, models.SupportClosed, models.SupportInProgress} {
		_, _ = repo.Create(context.Background(), models.SupportRequest{Status: st})
	}

	got, err := svc.SupportStats(context.Background())
	if err != nil {
		t.Fatalf("SupportStats returned error: %v", err)
	}
	want := models.SupportStats{Total: 4, Open: 2, InProgress: 1, Closed: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
