package booking

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hms-platform/hospital-manager/backend/internal/domain"
	"github.com/hms-platform/hospital-manager/backend/internal/schedule"
)

type memProfiles map[int64]schedule.ShiftWindow

func (m memProfiles) GetShiftWindow(doctorID int64) (schedule.ShiftWindow, error) {
	window, ok := m[doctorID]
	if !ok {
		return schedule.ShiftWindow{}, fmt.Errorf("doctor %d has no profile", doctorID)
	}
	return window, nil
}

// memStore mimics the database contract: ClaimSlot is atomic and a claim on
// an occupied slot loses with schedule.ErrSlotTaken.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	appts  []*domain.Appointment
}

func (m *memStore) GetBookedHours(doctorID int64, date time.Time) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hours := make([]int, 0)
	for _, a := range m.appts {
		if a.DoctorID == doctorID && a.Dated.Equal(date) && a.Status.Occupies() {
			hours = append(hours, a.Hour)
		}
	}
	return hours, nil
}

func (m *memStore) ClaimSlot(appt *domain.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.appts {
		if a.DoctorID == appt.DoctorID && a.Dated.Equal(appt.Dated) && a.Hour == appt.Hour && a.Status.Occupies() {
			return schedule.ErrSlotTaken
		}
	}

	m.nextID++
	appt.ID = m.nextID
	appt.CreatedAt = time.Now()
	m.appts = append(m.appts, appt)
	return nil
}

func (m *memStore) cancel(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.appts {
		if a.ID == id {
			a.Status = domain.AppointmentCancelled
		}
	}
}

var testToday = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

func newTestService(store *memStore) *Service {
	profiles := memProfiles{
		1: {DoctorID: 1, StartHour: 9, SlotCount: 3},
	}
	svc := NewService(profiles, store, schedule.DefaultHorizon)
	svc.now = func() time.Time { return testToday }
	return svc
}

func request(hour int, daysAhead int) *domain.Appointment {
	return &domain.Appointment{
		DoctorID:    1,
		PatientID:   42,
		PatientName: "Ali Raza",
		Dated:       testToday.AddDate(0, 0, daysAhead),
		Hour:        hour,
		Details:     "follow-up",
	}
}

func TestReserveFreeSlot(t *testing.T) {
	svc := newTestService(&memStore{})

	appt, err := svc.Reserve(request(10, 2))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if appt.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if appt.Status != domain.AppointmentPending {
		t.Fatalf("expected pending, got %s", appt.Status)
	}
	if appt.Dated.Hour() != 0 {
		t.Fatalf("expected date truncated to midnight, got %v", appt.Dated)
	}
}

func TestReserveHourOutsideShift(t *testing.T) {
	svc := newTestService(&memStore{})

	for _, hour := range []int{8, 12, 0} {
		if _, err := svc.Reserve(request(hour, 2)); !errors.Is(err, schedule.ErrHourNotInShift) {
			t.Fatalf("hour %d: expected ErrHourNotInShift, got %v", hour, err)
		}
	}
}

func TestReserveDateHorizon(t *testing.T) {
	svc := newTestService(&memStore{})

	for _, days := range []int{0, 8} {
		if _, err := svc.Reserve(request(9, days)); !errors.Is(err, schedule.ErrDateOutOfWindow) {
			t.Fatalf("day %+d: expected ErrDateOutOfWindow, got %v", days, err)
		}
	}
	for _, days := range []int{1, 7} {
		if _, err := svc.Reserve(request(9, days)); err != nil {
			t.Fatalf("day %+d: expected success, got %v", days, err)
		}
	}
}

func TestReserveSameSlotTwice(t *testing.T) {
	svc := newTestService(&memStore{})

	if _, err := svc.Reserve(request(10, 2)); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	if _, err := svc.Reserve(request(10, 2)); !errors.Is(err, schedule.ErrSlotTaken) {
		t.Fatalf("second reserve: expected ErrSlotTaken, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	store := &memStore{}
	svc := newTestService(store)

	appt, err := svc.Reserve(request(10, 2))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	store.cancel(appt.ID)

	window, _ := svc.profiles.GetShiftWindow(1)
	booked, _ := store.GetBookedHours(1, schedule.Day(appt.Dated))
	ok, err := schedule.IsBookable(window, booked, 10)
	if err != nil || !ok {
		t.Fatalf("expected slot free after cancellation, got ok=%v err=%v", ok, err)
	}

	if _, err := svc.Reserve(request(10, 2)); err != nil {
		t.Fatalf("re-reserve after cancellation: %v", err)
	}
}

func TestConcurrentReservesOneWinner(t *testing.T) {
	svc := newTestService(&memStore{})

	const attempts = 16
	results := make(chan error, attempts)

	var start sync.WaitGroup
	start.Add(1)
	for i := 0; i < attempts; i++ {
		go func() {
			start.Wait()
			_, err := svc.Reserve(request(10, 2))
			results <- err
		}()
	}
	start.Done()

	wins, losses := 0, 0
	for i := 0; i < attempts; i++ {
		err := <-results
		switch {
		case err == nil:
			wins++
		case errors.Is(err, schedule.ErrSlotTaken):
			losses++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if wins != 1 || losses != attempts-1 {
		t.Fatalf("expected exactly one winner, got %d wins and %d losses", wins, losses)
	}
}

func TestDayViewReflectsReservations(t *testing.T) {
	svc := newTestService(&memStore{})

	date := testToday.AddDate(0, 0, 2)

	if _, err := svc.Reserve(request(10, 2)); err != nil {
		t.Fatalf("reserve hour 10: %v", err)
	}

	slots, err := svc.DayView(1, date)
	if err != nil {
		t.Fatalf("day view: %v", err)
	}

	want := []schedule.SlotStatus{
		{Index: 0, Hour: 9, Booked: false},
		{Index: 1, Hour: 10, Booked: true},
		{Index: 2, Hour: 11, Booked: false},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d", len(want), len(slots))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("slot %d: expected %+v, got %+v", i, want[i], slots[i])
		}
	}

	if _, err := svc.Reserve(request(11, 2)); err != nil {
		t.Fatalf("reserve hour 11: %v", err)
	}

	slots, err = svc.DayView(1, date)
	if err != nil {
		t.Fatalf("second day view: %v", err)
	}
	if !slots[2].Booked {
		t.Fatal("expected hour 11 to show as booked after reservation")
	}
}
