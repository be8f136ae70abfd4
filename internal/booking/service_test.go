package booking

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibaproject/siba-gateway/internal/room"
	"github.com/sibaproject/siba-gateway/internal/session"
)

type fakeRemote struct {
	all     []Booking
	own     []Booking
	created *Booking

	lastToken string
	lastInput Input
}

func (f *fakeRemote) ListBookings(ctx context.Context, token string) ([]Booking, error) {
	f.lastToken = token
	return f.all, nil
}

func (f *fakeRemote) ListUserBookings(ctx context.Context, token string) ([]Booking, error) {
	f.lastToken = token
	return f.own, nil
}

func (f *fakeRemote) GetBooking(ctx context.Context, token string, id int64) (*Booking, error) {
	for i := range f.all {
		if f.all[i].ID == id {
			return &f.all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRemote) CreateBooking(ctx context.Context, token string, in Input) (*Booking, error) {
	f.lastToken = token
	f.lastInput = in
	if f.created != nil {
		return f.created, nil
	}
	return &Booking{ID: 99, RoomID: in.RoomID}, nil
}

func (f *fakeRemote) UpdateBooking(ctx context.Context, token string, id int64, in Input) (*Booking, error) {
	f.lastInput = in
	return &Booking{ID: id, RoomID: in.RoomID}, nil
}

func (f *fakeRemote) DeleteBooking(ctx context.Context, token string, id int64) error {
	f.lastToken = token
	return nil
}

type fakeRoomLister struct {
	rooms []room.Room
}

func (f *fakeRoomLister) ListRooms(ctx context.Context, token string) ([]room.Room, error) {
	return f.rooms, nil
}

func validInput() Input {
	return Input{
		RoomID:           1,
		StartDate:        "2025-06-02",
		EndDate:          "2025-06-02",
		StartTime:        "09:00",
		EndTime:          "11:00",
		ParticipantCount: 10,
		EventName:        "Town Hall",
		Description:      "Monthly all hands",
		PenanggungJawab:  "Budi",
	}
}

func userSession() *session.Session {
	return &session.Session{ID: "s1", Token: "tok", Role: session.RoleUser, User: session.Profile{ID: 7}}
}

func adminSession() *session.Session {
	return &session.Session{ID: "s2", Token: "admintok", Role: session.RoleAdmin, User: session.Profile{ID: 1}}
}

func TestListForViewer(t *testing.T) {
	remote := &fakeRemote{
		all: []Booking{{ID: 1}, {ID: 2}, {ID: 3}},
		own: []Booking{{ID: 2}},
	}
	svc := NewService(remote, &fakeRoomLister{}, "")
	ctx := context.Background()

	t.Run("admins see everything", func(t *testing.T) {
		got, err := svc.ListForViewer(ctx, adminSession())
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, "admintok", remote.lastToken)
	})

	t.Run("regular users see only their own", func(t *testing.T) {
		got, err := svc.ListForViewer(ctx, userSession())
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "tok", remote.lastToken)
	})
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeRemote{}, &fakeRoomLister{}, "")
	ctx := context.Background()

	t.Run("valid input passes through", func(t *testing.T) {
		created, handoff, err := svc.Create(ctx, userSession(), validInput())
		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.Empty(t, handoff)
	})

	missing := map[string]func(*Input){
		"room":             func(in *Input) { in.RoomID = 0 },
		"start date":       func(in *Input) { in.StartDate = "" },
		"end date":         func(in *Input) { in.EndDate = "  " },
		"start time":       func(in *Input) { in.StartTime = "" },
		"end time":         func(in *Input) { in.EndTime = "" },
		"count":            func(in *Input) { in.ParticipantCount = 0 },
		"event name":       func(in *Input) { in.EventName = "" },
		"description":      func(in *Input) { in.Description = "\t" },
		"penanggung jawab": func(in *Input) { in.PenanggungJawab = "" },
	}
	for name, blank := range missing {
		t.Run("missing "+name, func(t *testing.T) {
			in := validInput()
			blank(&in)
			_, _, err := svc.Create(ctx, userSession(), in)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}

	t.Run("negative participant count", func(t *testing.T) {
		in := validInput()
		in.ParticipantCount = -3
		_, _, err := svc.Create(ctx, userSession(), in)
		assert.ErrorIs(t, err, ErrBadCount)
	})

	t.Run("update validates the same way", func(t *testing.T) {
		in := validInput()
		in.EventName = ""
		_, err := svc.Update(ctx, userSession(), 1, in)
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestCreateRoundTrip(t *testing.T) {
	in := validInput()
	remote := &fakeRemote{}
	svc := NewService(remote, &fakeRoomLister{}, "")

	created, _, err := svc.Create(context.Background(), userSession(), in)
	require.NoError(t, err)

	// Everything the form sent reaches the upstream untouched.
	assert.Equal(t, in, remote.lastInput)

	remote.all = []Booking{{
		ID:               created.ID,
		RoomID:           in.RoomID,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		ParticipantCount: in.ParticipantCount,
		EventName:        in.EventName,
		Description:      in.Description,
		PenanggungJawab:  in.PenanggungJawab,
	}}
	got, err := svc.Get(context.Background(), userSession(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.EventName, got.EventName)
	assert.Equal(t, in.StartDate, got.StartDate)
	assert.Equal(t, in.ParticipantCount, got.ParticipantCount)
	assert.Equal(t, in.PenanggungJawab, got.PenanggungJawab)
}

func TestCreateHandoff(t *testing.T) {
	ctx := context.Background()
	rooms := &fakeRoomLister{rooms: []room.Room{
		{ID: 1, Name: "Aquila"},
		{ID: 2, Name: room.TypeConference, Type: room.TypeConference},
	}}

	t.Run("conference room produces a prefilled link", func(t *testing.T) {
		remote := &fakeRemote{created: &Booking{ID: 5, RoomID: 2, Room: room.Room{ID: 2, Name: room.TypeConference}}}
		svc := NewService(remote, rooms, "628123456789")

		in := validInput()
		in.RoomID = 2
		_, handoff, err := svc.Create(ctx, userSession(), in)
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(handoff, "https://wa.me/628123456789?text="), handoff)
		decoded, err := url.QueryUnescape(strings.TrimPrefix(handoff, "https://wa.me/628123456789?text="))
		require.NoError(t, err)
		assert.Contains(t, decoded, "Booking ZOOM MEETING")
		assert.Contains(t, decoded, "Event Name: Town Hall")
		assert.Contains(t, decoded, "Penanggung Jawab: Budi")
	})

	t.Run("room name resolved from the catalog when absent", func(t *testing.T) {
		remote := &fakeRemote{created: &Booking{ID: 6, RoomID: 2}}
		svc := NewService(remote, rooms, "628123456789")

		in := validInput()
		in.RoomID = 2
		_, handoff, err := svc.Create(ctx, userSession(), in)
		require.NoError(t, err)
		assert.NotEmpty(t, handoff)
	})

	t.Run("physical room produces no link", func(t *testing.T) {
		remote := &fakeRemote{created: &Booking{ID: 7, RoomID: 1, Room: room.Room{ID: 1, Name: "Aquila"}}}
		svc := NewService(remote, rooms, "628123456789")

		_, handoff, err := svc.Create(ctx, userSession(), validInput())
		require.NoError(t, err)
		assert.Empty(t, handoff)
	})

	t.Run("no admin number disables the handoff", func(t *testing.T) {
		remote := &fakeRemote{created: &Booking{ID: 8, RoomID: 2, Room: room.Room{ID: 2, Name: room.TypeConference}}}
		svc := NewService(remote, rooms, "")

		in := validInput()
		in.RoomID = 2
		_, handoff, err := svc.Create(ctx, userSession(), in)
		require.NoError(t, err)
		assert.Empty(t, handoff)
	})
}
