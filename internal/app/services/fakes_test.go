package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kmoeti/attachtrack/internal/pkg/apperrors"

	"github.com/kmoeti/attachtrack/internal/app/models"
)

// In-memory repository fakes used by the service tests.

type fakeStudentRepo struct {
	students map[string]*models.Student
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]*models.Student)}
}

func (f *fakeStudentRepo) Create(_ context.Context, s *models.Student) error {
	if _, ok := f.students[s.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
		if existing.ContactNo == s.ContactNo {
			return apperrors.ErrPhoneAlreadyExists
		}
	}
	cp := *s
	f.students[s.StudentID] = &cp
	return nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentRepo) List(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		cp := *s
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, s *models.Student) error {
	if _, ok := f.students[s.StudentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	cp := *s
	f.students[s.StudentID] = &cp
	return nil
}

func (f *fakeStudentRepo) UpdatePassword(_ context.Context, id, hash string) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.PasswordHash = hash
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

type fakeOrganisationRepo struct {
	orgs   map[int64]*models.Organisation
	nextID int64
}

func newFakeOrganisationRepo() *fakeOrganisationRepo {
	return &fakeOrganisationRepo{orgs: make(map[int64]*models.Organisation)}
}

func (f *fakeOrganisationRepo) Create(_ context.Context, o *models.Organisation) error {
	for _, existing := range f.orgs {
		if existing.OrgName == o.OrgName {
			return apperrors.ErrOrgNameAlreadyExists
		}
		if existing.ContactEmail == o.ContactEmail {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	o.OrgID = f.nextID
	cp := *o
	f.orgs[o.OrgID] = &cp
	return nil
}

func (f *fakeOrganisationRepo) GetByID(_ context.Context, id int64) (*models.Organisation, error) {
	o, ok := f.orgs[id]
	if !ok {
		return nil, apperrors.ErrOrganisationNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrganisationRepo) GetByEmail(_ context.Context, email string) (*models.Organisation, error) {
	for _, o := range f.orgs {
		if o.ContactEmail == email {
			cp := *o
			return &cp, nil
		}
	}
	return nil, apperrors.ErrOrganisationNotFound
}

func (f *fakeOrganisationRepo) GetByName(_ context.Context, name string) (*models.Organisation, error) {
	for _, o := range f.orgs {
		if o.OrgName == name {
			cp := *o
			return &cp, nil
		}
	}
	return nil, apperrors.ErrOrganisationNotFound
}

func (f *fakeOrganisationRepo) List(_ context.Context) ([]*models.Organisation, error) {
	out := make([]*models.Organisation, 0, len(f.orgs))
	for _, o := range f.orgs {
		cp := *o
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrgName < out[j].OrgName })
	return out, nil
}

func (f *fakeOrganisationRepo) Update(_ context.Context, o *models.Organisation) error {
	if _, ok := f.orgs[o.OrgID]; !ok {
		return apperrors.ErrOrganisationNotFound
	}
	cp := *o
	f.orgs[o.OrgID] = &cp
	return nil
}

func (f *fakeOrganisationRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	o, ok := f.orgs[id]
	if !ok {
		return apperrors.ErrOrganisationNotFound
	}
	o.PasswordHash = hash
	return nil
}

func (f *fakeOrganisationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orgs[id]; !ok {
		return apperrors.ErrOrganisationNotFound
	}
	delete(f.orgs, id)
	return nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(_ context.Context, a *models.Admin) error {
	if _, ok := f.admins[a.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	a.ID = f.nextID
	cp := *a
	f.admins[a.Email] = &cp
	return nil
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	a, ok := f.admins[email]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAdminRepo) UpdateLastLogin(_ context.Context, id int64) error {
	for _, a := range f.admins {
		if a.ID == id {
			now := time.Now()
			a.LastLogin = &now
			return nil
		}
	}
	return apperrors.ErrAdminNotFound
}

type fakeCatalogRepo struct {
	industries map[int64]models.Industry
	skills     map[int64]models.Skill
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		industries: make(map[int64]models.Industry),
		skills:     make(map[int64]models.Skill),
	}
}

func (f *fakeCatalogRepo) addIndustry(id int64, name string) {
	f.industries[id] = models.Industry{ID: id, Name: name}
}

func (f *fakeCatalogRepo) addSkill(id int64, name string) {
	f.skills[id] = models.Skill{ID: id, Name: name}
}

func (f *fakeCatalogRepo) ListIndustries(_ context.Context) ([]models.Industry, error) {
	out := make([]models.Industry, 0, len(f.industries))
	for _, ind := range f.industries {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCatalogRepo) ListSkills(_ context.Context) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(f.skills))
	for _, sk := range f.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCatalogRepo) GetIndustriesByIDs(_ context.Context, ids []int64) ([]models.Industry, error) {
	out := make([]models.Industry, 0, len(ids))
	for _, id := range ids {
		if ind, ok := f.industries[id]; ok {
			out = append(out, ind)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) GetSkillsByIDs(_ context.Context, ids []int64) ([]models.Skill, error) {
	out := make([]models.Skill, 0, len(ids))
	for _, id := range ids {
		if sk, ok := f.skills[id]; ok {
			out = append(out, sk)
		}
	}
	return out, nil
}

func (f *fakeCatalogRepo) EnsureIndustry(_ context.Context, name string) error {
	f.addIndustry(int64(len(f.industries)+1), name)
	return nil
}

func (f *fakeCatalogRepo) EnsureSkill(_ context.Context, name string) error {
	f.addSkill(int64(len(f.skills)+1), name)
	return nil
}

type fakeStudentPrefRepo struct {
	prefs map[string]*models.StudentPreference
	seqs  map[string]int
}

func newFakeStudentPrefRepo() *fakeStudentPrefRepo {
	return &fakeStudentPrefRepo{
		prefs: make(map[string]*models.StudentPreference),
		seqs:  make(map[string]int),
	}
}

func (f *fakeStudentPrefRepo) Create(_ context.Context, p *models.StudentPreference, _, _ []int64) error {
	f.seqs[p.StudentID]++
	p.PrefID = fmt.Sprintf("%s_PREF%03d", p.StudentID, f.seqs[p.StudentID])
	cp := *p
	f.prefs[p.PrefID] = &cp
	return nil
}

func (f *fakeStudentPrefRepo) GetByID(_ context.Context, id string) (*models.StudentPreference, error) {
	p, ok := f.prefs[id]
	if !ok {
		return nil, apperrors.ErrPreferenceNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStudentPrefRepo) ListByStudent(_ context.Context, studentID string) ([]*models.StudentPreference, error) {
	out := make([]*models.StudentPreference, 0)
	for _, p := range f.prefs {
		if p.StudentID == studentID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PrefID < out[j].PrefID })
	return out, nil
}

func (f *fakeStudentPrefRepo) ListAll(_ context.Context) ([]*models.StudentPreference, error) {
	out := make([]*models.StudentPreference, 0, len(f.prefs))
	for _, p := range f.prefs {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PrefID < out[j].PrefID })
	return out, nil
}

func (f *fakeStudentPrefRepo) Update(_ context.Context, p *models.StudentPreference, _, _ []int64) error {
	if _, ok := f.prefs[p.PrefID]; !ok {
		return apperrors.ErrPreferenceNotFound
	}
	cp := *p
	f.prefs[p.PrefID] = &cp
	return nil
}

type fakeOrgPrefRepo struct {
	prefs  map[int64]*models.OrganisationPreference
	nextID int64
}

func newFakeOrgPrefRepo() *fakeOrgPrefRepo {
	return &fakeOrgPrefRepo{prefs: make(map[int64]*models.OrganisationPreference)}
}

func (f *fakeOrgPrefRepo) Create(_ context.Context, p *models.OrganisationPreference, _ []int64) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.prefs[p.ID] = &cp
	return nil
}

func (f *fakeOrgPrefRepo) GetByID(_ context.Context, id int64) (*models.OrganisationPreference, error) {
	p, ok := f.prefs[id]
	if !ok {
		return nil, apperrors.ErrPreferenceNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeOrgPrefRepo) ListByOrganisation(_ context.Context, orgID int64) ([]*models.OrganisationPreference, error) {
	out := make([]*models.OrganisationPreference, 0)
	for _, p := range f.prefs {
		if p.OrgID == orgID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeOrgPrefRepo) Update(_ context.Context, p *models.OrganisationPreference, _ []int64) error {
	if _, ok := f.prefs[p.ID]; !ok {
		return apperrors.ErrPreferenceNotFound
	}
	cp := *p
	f.prefs[p.ID] = &cp
	return nil
}

type fakeMatchRepo struct {
	byPref map[string]*models.StudentMatch
	nextID int64
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{byPref: make(map[string]*models.StudentMatch)}
}

func (f *fakeMatchRepo) Upsert(_ context.Context, m *models.StudentMatch) (bool, error) {
	if existing, ok := f.byPref[m.StudentPrefID]; ok {
		m.ID = existing.ID
		cp := *m
		f.byPref[m.StudentPrefID] = &cp
		return false, nil
	}
	f.nextID++
	m.ID = f.nextID
	cp := *m
	f.byPref[m.StudentPrefID] = &cp
	return true, nil
}

func (f *fakeMatchRepo) GetByPreference(_ context.Context, prefID string) (*models.StudentMatch, error) {
	m, ok := f.byPref[prefID]
	if !ok {
		return nil, apperrors.NewNotFoundError("match")
	}
	cp := *m
	return &cp, nil
}

type fakeLogbookRepo struct {
	logs map[string]*models.Logbook

	// collisions forces the first n Create calls to report a duplicate id
	collisions int
}

func newFakeLogbookRepo() *fakeLogbookRepo {
	return &fakeLogbookRepo{logs: make(map[string]*models.Logbook)}
}

func (f *fakeLogbookRepo) Create(_ context.Context, l *models.Logbook) error {
	if f.collisions > 0 {
		f.collisions--
		return apperrors.ErrDuplicateKey
	}
	if _, ok := f.logs[l.LogID]; ok {
		return apperrors.ErrDuplicateKey
	}
	cp := *l
	f.logs[l.LogID] = &cp
	return nil
}

func (f *fakeLogbookRepo) GetByID(_ context.Context, id string) (*models.Logbook, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, apperrors.ErrLogbookNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLogbookRepo) ListByOrganisation(_ context.Context, orgID int64) ([]*models.Logbook, error) {
	out := make([]*models.Logbook, 0)
	for _, l := range f.logs {
		if l.OrgID == orgID {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (f *fakeLogbookRepo) MarkViewed(_ context.Context, id string, viewedAt time.Time) (*models.Logbook, error) {
	l, ok := f.logs[id]
	if !ok {
		return nil, apperrors.ErrLogbookNotFound
	}
	l.Status = models.LogbookViewed
	if l.ViewedAt == nil {
		l.ViewedAt = &viewedAt
	}
	cp := *l
	return &cp, nil
}
