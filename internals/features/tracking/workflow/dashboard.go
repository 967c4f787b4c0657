package workflow

import (
	"bytes"
	"sort"
	"time"

	"github.com/google/uuid"
)

// DefaultWindowDays: jendela upcoming_deadlines bila tidak dikonfigurasi.
const DefaultWindowDays = 30

// Dated adalah bentuk minimal record yang bisa diringkas dashboard.
type Dated interface {
	GetID() uuid.UUID
	GetStatus() Status
	GetDeadline() *time.Time
}

// Overview adalah hasil ringkasan read-side untuk satu owner pada satu track.
type Overview[T Dated] struct {
	Counts   map[Status]int
	Total    int
	Upcoming []T
	Overdue  []T
	Items    []T
}

// Summarize menghitung ringkasan dari items (semua milik satu owner).
//   - Counts berisi SEMUA status track (zero-filled).
//   - Upcoming: deadline di [now, now+window), urut deadline naik.
//   - Overdue: deadline < now dan status bukan keputusan, urut deadline naik
//     (yang paling lama lewat ada di depan).
//
// Fungsi murni: tidak menyentuh store, items tidak diubah.
func Summarize[T Dated](track Track, items []T, now time.Time, window time.Duration) Overview[T] {
	ov := Overview[T]{
		Counts:   make(map[Status]int, len(track.statuses)),
		Upcoming: make([]T, 0),
		Overdue:  make([]T, 0),
		Items:    items,
	}
	if ov.Items == nil {
		ov.Items = make([]T, 0)
	}
	for _, s := range track.statuses {
		ov.Counts[s] = 0
	}

	horizon := now.Add(window)
	for _, it := range items {
		st := it.GetStatus()
		if _, ok := ov.Counts[st]; ok {
			ov.Counts[st]++
		}

		dl := it.GetDeadline()
		if dl == nil {
			continue
		}
		switch {
		case !dl.Before(now) && dl.Before(horizon):
			ov.Upcoming = append(ov.Upcoming, it)
		case dl.Before(now) && !track.IsDecision(st):
			ov.Overdue = append(ov.Overdue, it)
		}
	}
	for _, n := range ov.Counts {
		ov.Total += n
	}

	SortByDeadline(ov.Upcoming, false)
	SortByDeadline(ov.Overdue, false)
	return ov
}

// SortByDeadline mengurutkan stabil berdasarkan deadline; record tanpa deadline selalu di belakang.
// Kunci sama → tie-break dengan id (naik).
func SortByDeadline[T Dated](items []T, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].GetDeadline(), items[j].GetDeadline()
		switch {
		case a == nil && b == nil:
			return LessID(items[i].GetID(), items[j].GetID())
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return LessID(items[i].GetID(), items[j].GetID())
		case desc:
			return a.After(*b)
		default:
			return a.Before(*b)
		}
	})
}

// LessID membandingkan uuid secara byte (sama dengan urutan kolom uuid di Postgres).
func LessID(a, b uuid.UUID) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// WindowFromDays mengubah jumlah hari menjadi durasi; <= 0 dianggap default.
func WindowFromDays(days int) time.Duration {
	if days <= 0 {
		days = DefaultWindowDays
	}
	return time.Duration(days) * 24 * time.Hour
}
