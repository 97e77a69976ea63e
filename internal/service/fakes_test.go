package service

import (
	"context"
	"regexp"
	"sort"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes. Duplicate-key behavior mirrors the Postgres
// unique index so the resolver's conflict handling is exercised for real.

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUID(_ context.Context, uid string) (*model.User, error) {
	for _, u := range f.users {
		if u.UID == uid {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByMatchedUID(_ context.Context, pattern string) (*model.User, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, err
	}
	for _, u := range f.users {
		if u.IsActive && re.MatchString(u.UID) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) List(_ context.Context, role string, _, _ int) ([]model.User, int64, error) {
	var out []model.User
	for _, u := range f.users {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) ListActiveEmployees(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range f.users {
		if u.IsActive && u.Role == model.RoleEmployee {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.IsActive && u.Role == role {
			n++
		}
	}
	return n, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *model.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range f.users {
		if u.ID.String() == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) NextEmployeeID(_ context.Context) (string, error) {
	return "MMS_001", nil
}

type fakeAttendanceRepo struct {
	recs map[string]*model.AttendanceRecord // userID|date
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{recs: make(map[string]*model.AttendanceRecord)}
}

func key(userID, date string) string { return userID + "|" + date }

func (f *fakeAttendanceRepo) Create(_ context.Context, rec *model.AttendanceRecord) error {
	k := key(rec.UserID.String(), rec.Date)
	if _, exists := f.recs[k]; exists {
		return gorm.ErrDuplicatedKey
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	cp := *rec
	f.recs[k] = &cp
	return nil
}

func (f *fakeAttendanceRepo) Save(_ context.Context, rec *model.AttendanceRecord) error {
	cp := *rec
	f.recs[key(rec.UserID.String(), rec.Date)] = &cp
	return nil
}

func (f *fakeAttendanceRepo) FindOne(_ context.Context, userID, date string) (*model.AttendanceRecord, error) {
	if rec, ok := f.recs[key(userID, date)]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) Latest(_ context.Context, userID string) (*model.AttendanceRecord, error) {
	var latest *model.AttendanceRecord
	for _, rec := range f.recs {
		if rec.UserID.String() != userID {
			continue
		}
		if latest == nil || rec.Date > latest.Date {
			latest = rec
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter, page, limit int) ([]model.AttendanceRecord, int64, error) {
	var out []model.AttendanceRecord
	for _, rec := range f.recs {
		if filter.UserID != "" && rec.UserID.String() != filter.UserID {
			continue
		}
		if filter.Date != "" && rec.Date != filter.Date {
			continue
		}
		if filter.FromDate != "" && rec.Date < filter.FromDate {
			continue
		}
		if filter.ToDate != "" && rec.Date > filter.ToDate {
			continue
		}
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) ExistingDates(_ context.Context, userID, fromDate, toDate string) ([]string, error) {
	var dates []string
	for _, rec := range f.recs {
		if rec.UserID.String() == userID && rec.Date >= fromDate && rec.Date <= toDate {
			dates = append(dates, rec.Date)
		}
	}
	return dates, nil
}

func (f *fakeAttendanceRepo) InsertMissing(_ context.Context, recs []model.AttendanceRecord) error {
	for i := range recs {
		k := key(recs[i].UserID.String(), recs[i].Date)
		if _, exists := f.recs[k]; exists {
			continue // ON CONFLICT DO NOTHING
		}
		cp := recs[i]
		if cp.ID == uuid.Nil {
			cp.ID = uuid.New()
		}
		f.recs[k] = &cp
	}
	return nil
}

func (f *fakeAttendanceRepo) CountByStatus(_ context.Context, userID, fromDate, toDate string) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, rec := range f.recs {
		if userID != "" && rec.UserID.String() != userID {
			continue
		}
		if fromDate != "" && rec.Date < fromDate {
			continue
		}
		if toDate != "" && rec.Date > toDate {
			continue
		}
		counts[rec.Status]++
	}
	return counts, nil
}

type fakeShiftRepo struct {
	shifts map[string]*model.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (f *fakeShiftRepo) Create(_ context.Context, shift *model.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	f.shifts[shift.ID.String()] = shift
	return nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := f.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeShiftRepo) ListActive(_ context.Context) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range f.shifts {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByUser(_ context.Context, userID string) ([]model.Shift, error) {
	var out []model.Shift
	for _, s := range f.shifts {
		if s.UserID.String() == userID && s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, shift *model.Shift) error {
	f.shifts[shift.ID.String()] = shift
	return nil
}

func (f *fakeShiftRepo) Deactivate(_ context.Context, id string) error {
	if s, ok := f.shifts[id]; ok {
		s.IsActive = false
		return nil
	}
	return gorm.ErrRecordNotFound
}

type fakeRunRepo struct {
	runs map[string]string
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: make(map[string]string)}
}

func (f *fakeRunRepo) LastRun(_ context.Context, name string) (string, error) {
	return f.runs[name], nil
}

func (f *fakeRunRepo) MarkRun(_ context.Context, name, date string) error {
	f.runs[name] = date
	return nil
}
