package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"parcel_tracking/internal/email"
	"parcel_tracking/internal/models"
)

// ---- Test doubles ----

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u models.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur := r.users[u.ID]
	u.PasswordHash = cur.PasswordHash
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := r.users[id]
	u.PasswordHash = hash
	r.users[id] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	delete(r.users, id)
	return ok, nil
}

type fakeParcelRepo struct {
	mu      sync.Mutex
	nextID  int64
	parcels map[int64]models.Parcel
	err     error
}

func newFakeParcelRepo(ps ...models.Parcel) *fakeParcelRepo {
	r := &fakeParcelRepo{parcels: map[int64]models.Parcel{}}
	for _, p := range ps {
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
		r.parcels[p.ID] = p
	}
	return r
}

func (r *fakeParcelRepo) Create(_ context.Context, p models.Parcel) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.nextID++
	p.ID = r.nextID
	r.parcels[p.ID] = p
	return p.ID, nil
}

func (r *fakeParcelRepo) GetByID(_ context.Context, id int64) (*models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.parcels[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeParcelRepo) GetByTrackingID(_ context.Context, trackingID string) (*models.Parcel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.parcels {
		if p.TrackingID == trackingID {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeParcelRepo) filter(keep func(models.Parcel) bool) []models.Parcel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Parcel{}
	for _, p := range r.parcels {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeParcelRepo) List(context.Context) ([]models.Parcel, error) {
	return r.filter(func(models.Parcel) bool { return true }), nil
}

func (r *fakeParcelRepo) ListByUserEmail(_ context.Context, email string) ([]models.Parcel, error) {
	return r.filter(func(p models.Parcel) bool { return p.InvolvesEmail(email) }), nil
}

func (r *fakeParcelRepo) ListByStatus(_ context.Context, status string) ([]models.Parcel, error) {
	return r.filter(func(p models.Parcel) bool { return p.Status == status }), nil
}

func (r *fakeParcelRepo) ListRecent(_ context.Context, limit int) ([]models.Parcel, error) {
	all := r.filter(func(models.Parcel) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeParcelRepo) ListStale(_ context.Context, status string, cutoff time.Time) ([]models.Parcel, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.filter(func(p models.Parcel) bool { return p.Status == status && p.UpdatedAt.Before(cutoff) }), nil
}

func (r *fakeParcelRepo) Search(_ context.Context, term string) ([]models.Parcel, error) {
	term = strings.ToLower(term)
	return r.filter(func(p models.Parcel) bool {
		return strings.Contains(strings.ToLower(p.TrackingID+" "+p.SenderName+" "+p.RecipientName), term)
	}), nil
}

func (r *fakeParcelRepo) Update(_ context.Context, p models.Parcel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.parcels[p.ID] = p
	return nil
}

func (r *fakeParcelRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.parcels[id]
	delete(r.parcels, id)
	return ok, nil
}

func (r *fakeParcelRepo) CountByStatus(context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]int64{}
	for _, p := range r.parcels {
		out[p.Status]++
	}
	return out, nil
}

// fakeEventRepo records appended events and captures List inputs.
type fakeEventRepo struct {
	mu      sync.Mutex
	appends []models.ParcelEvent
	err     error

	gotTrackingID string
	gotFrom       time.Time
	gotTo         time.Time
	gotType       string
	calls         int
}

func (f *fakeEventRepo) Append(_ context.Context, e models.ParcelEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.appends = append(f.appends, e)
	return nil
}

func (f *fakeEventRepo) List(_ context.Context, trackingID string, from, to time.Time, typ string) ([]models.ParcelEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotTrackingID, f.gotFrom, f.gotTo, f.gotType = trackingID, from, to, typ
	out := []models.ParcelEvent{}
	for _, e := range f.appends {
		if e.TrackingID == trackingID {
			out = append(out, e)
		}
	}
	return out, f.err
}

func (f *fakeEventRepo) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.appends))
	for i, e := range f.appends {
		out[i] = e.Type
	}
	return out
}

type fakeFeedbackRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: map[int64]models.Feedback{}}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, f models.Feedback) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	r.items[f.ID] = f
	return f.ID, nil
}

func (r *fakeFeedbackRepo) Exists(_ context.Context, userEmail, trackingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.items {
		if f.UserEmail == userEmail && f.TrackingID == trackingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFeedbackRepo) list(keep func(models.Feedback) bool) []models.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Feedback{}
	for _, f := range r.items {
		if keep(f) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (r *fakeFeedbackRepo) ListByTrackingID(_ context.Context, trackingID string) ([]models.Feedback, error) {
	return r.list(func(f models.Feedback) bool { return f.TrackingID == trackingID }), nil
}

func (r *fakeFeedbackRepo) ListByUserEmail(_ context.Context, email string) ([]models.Feedback, error) {
	return r.list(func(f models.Feedback) bool { return f.UserEmail == email }), nil
}

func (r *fakeFeedbackRepo) ListRecent(_ context.Context, limit int) ([]models.Feedback, error) {
	all := r.list(func(models.Feedback) bool { return true })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeFeedbackRepo) CountByRating(context.Context) (map[int]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[int]int64{}
	for _, f := range r.items {
		out[f.Rating]++
	}
	return out, nil
}

func (r *fakeFeedbackRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	delete(r.items, id)
	return ok, nil
}

type fakeSupportRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.SupportRequest
}

func newFakeSupportRepo() *fakeSupportRepo {
	return &fakeSupportRepo{items: map[int64]models.SupportRequest{}}
}

func (r *fakeSupportRepo) Create(_ context.Context, s models.SupportRequest) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	r.items[s.ID] = s
	return s.ID, nil
}

func (r *fakeSupportRepo) GetByID(_ context.Context, id int64) (*models.SupportRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSupportRepo) List(context.Context) ([]models.SupportRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.SupportRequest{}
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupportRepo) ListByEmail(_ context.Context, email string) ([]models.SupportRequest, error) {
	all, _ := r.List(context.Background())
	out := []models.SupportRequest{}
	for _, s := range all {
		if s.Email == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSupportRepo) UpdateStatus(_ context.Context, s models.SupportRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = s
	return nil
}

func (r *fakeSupportRepo) CountByStatus(context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[string]int64{}
	for _, s := range r.items {
		out[s.Status]++
	}
	return out, nil
}

// fakeQueue collects enqueued messages.
type fakeQueue struct {
	mu   sync.Mutex
	msgs []email.Message
	err  error
}

func (q *fakeQueue) Enqueue(_ context.Context, m email.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.msgs = append(q.msgs, m)
	return nil
}

func (q *fakeQueue) Dequeue(ctx context.Context) (email.Message, error) {
	<-ctx.Done()
	return email.Message{}, ctx.Err()
}

func (q *fakeQueue) Close() error { return nil }

func (q *fakeQueue) recipients() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.msgs))
	for i, m := range q.msgs {
		out[i] = m.To
	}
	return out
}

func deliveredParcel(id int64, trackingID string) models.Parcel {
	now := time.Now().UTC()
	return models.Parcel{
		ID:             id,
		TrackingID:     trackingID,
		SenderName:     "Sam",
		SenderEmail:    "sam@example.com",
		RecipientName:  "Rita",
		RecipientEmail: "rita@example.com",
		Status:         models.StatusDelivered,
		CreatedAt:      now.Add(-48 * time.Hour),
		UpdatedAt:      now,
		DeliveredAt:    &now,
	}
}
