// File: services/appointment/fakes_test.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"agendly/models"
	"agendly/services/scheduling"
)

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	nextID       int
	failDelete   bool
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *models.Appointment) error {
	if a.ID == "" {
		r.nextID++
		a.ID = fmt.Sprintf("appt-%d", r.nextID)
	}
	a.CreatedAt = time.Now()
	cp := *a
	r.appointments[a.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAppointmentRepo) GetByClient(_ context.Context, clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Client != nil && a.Client.ID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByEstablishment(_ context.Context, establishmentID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if a.Establishment != nil && a.Establishment.ID == establishmentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetAll(_ context.Context, limit int64) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) CountOccupiedInRange(_ context.Context, establishmentID string, from, to time.Time) (int64, error) {
	var n int64
	for _, a := range r.appointments {
		if a.Establishment != nil && a.Establishment.ID == establishmentID &&
			a.Status == models.StatusOccupied && !a.Date.Before(from) && a.Date.Before(to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeAppointmentRepo) Delete(_ context.Context, id string) error {
	if r.failDelete {
		return fmt.Errorf("simulated delete failure")
	}
	if _, ok := r.appointments[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) DeleteDirect(_ context.Context, id string) error {
	delete(r.appointments, id)
	return nil
}

type fakeEstablishmentRepo struct {
	profiles map[string]*models.EstablishmentProfile
}

func newFakeEstablishmentRepo(profiles ...*models.EstablishmentProfile) *fakeEstablishmentRepo {
	r := &fakeEstablishmentRepo{profiles: make(map[string]*models.EstablishmentProfile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeEstablishmentRepo) GetByID(_ context.Context, id string) (*models.EstablishmentProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeEstablishmentRepo) GetByUserID(_ context.Context, userID string) (*models.EstablishmentProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeEstablishmentRepo) Create(_ context.Context, est *models.EstablishmentProfile) error {
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstablishmentRepo) Update(_ context.Context, est *models.EstablishmentProfile) error {
	r.profiles[est.ID] = est
	return nil
}

func (r *fakeEstablishmentRepo) UpdateWorkingHours(_ context.Context, id string, wh scheduling.WorkingHours) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.WorkingHours = wh
	return nil
}

func (r *fakeEstablishmentRepo) AddBlockedDate(_ context.Context, id string, blocked scheduling.BlockedDate) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.BlockedDates = append(p.BlockedDates, blocked)
	return nil
}

func (r *fakeEstablishmentRepo) SetPhotoURL(_ context.Context, id, url string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.PhotoURL = url
	return nil
}

type fakeClientRepo struct {
	profiles map[string]*models.ClientProfile
}

func newFakeClientRepo(profiles ...*models.ClientProfile) *fakeClientRepo {
	r := &fakeClientRepo{profiles: make(map[string]*models.ClientProfile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.ClientProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return p, nil
}

func (r *fakeClientRepo) GetByUserID(_ context.Context, userID string) (*models.ClientProfile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeClientRepo) GetByIDs(_ context.Context, ids []string) ([]models.ClientProfile, error) {
	var out []models.ClientProfile
	for _, id := range ids {
		if p, ok := r.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *models.ClientProfile) error {
	r.profiles[c.ID] = c
	return nil
}

func (r *fakeClientRepo) SetFCMToken(_ context.Context, id, token string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.FCMToken = token
	return nil
}

func (r *fakeClientRepo) SetPhotoURL(_ context.Context, id, url string) error {
	p, ok := r.profiles[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	p.PhotoURL = url
	return nil
}

type fakeRelationRepo struct {
	relations []models.Relation
	interests []models.Interest
}

func (r *fakeRelationRepo) GetActiveByEstablishment(_ context.Context, establishmentID string) ([]models.Relation, error) {
	var out []models.Relation
	for _, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.Status == models.RelationActive {
			out = append(out, rel)
		}
	}
	return out, nil
}

func (r *fakeRelationRepo) GetByPair(_ context.Context, establishmentID, clientID string) (*models.Relation, error) {
	for _, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.ClientID == clientID {
			cp := rel
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeRelationRepo) Create(_ context.Context, rel *models.Relation) error {
	r.relations = append(r.relations, *rel)
	return nil
}

func (r *fakeRelationRepo) Delete(_ context.Context, establishmentID, clientID string) error {
	for i, rel := range r.relations {
		if rel.EstablishmentID == establishmentID && rel.ClientID == clientID {
			r.relations = append(r.relations[:i], r.relations[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeRelationRepo) CreateInterest(_ context.Context, interest *models.Interest) error {
	r.interests = append(r.interests, *interest)
	return nil
}

func (r *fakeRelationRepo) GetInterestsByEstablishment(_ context.Context, establishmentID string) ([]models.Interest, error) {
	var out []models.Interest
	for _, in := range r.interests {
		if in.EstablishmentID == establishmentID {
			out = append(out, in)
		}
	}
	return out, nil
}

type fakeReminderScheduler struct {
	scheduled []string
}

func (s *fakeReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	s.scheduled = append(s.scheduled, appt.ID)
	return nil
}
