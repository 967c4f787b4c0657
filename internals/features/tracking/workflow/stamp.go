package workflow

import "time"

// Stamps menampung timestamp "sticky" milik satu aplikasi.
// Sekali terisi, tidak pernah dikosongkan atau ditimpa oleh transisi berikutnya.
type Stamps struct {
	StartedAt   *time.Time
	SubmittedAt *time.Time
	DecidedAt   *time.Time
}

// Stamp menghitung stamps baru untuk transisi ke next pada waktu now.
// Tidak ada pasangan old/new yang ditolak; fungsi ini hanya mengisi stamp yang masih kosong.
func (t Track) Stamp(old Stamps, next Status, now time.Time) Stamps {
	out := old
	switch {
	case next == t.InProgress:
		if out.StartedAt == nil {
			out.StartedAt = timePtr(now)
		}
	case next == t.Submitted:
		if out.SubmittedAt == nil {
			out.SubmittedAt = timePtr(now)
		}
	case t.IsDecision(next):
		if out.DecidedAt == nil {
			out.DecidedAt = timePtr(now)
		}
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	v := t
	return &v
}
