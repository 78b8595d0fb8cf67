package service

import (
	"gorm.io/gorm"

	"github.com/toeflcenter/backend/internal/model"
)

// In-memory repository fakes backing the service tests. They mimic the gorm
// contract the services rely on: gorm.ErrRecordNotFound for missing rows.

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	all := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		all = append(all, *user)
	}
	return all, nil
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeTestRepo struct {
	tests  map[uint]*model.Test
	nextID uint
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: make(map[uint]*model.Test), nextID: 1}
}

func (r *fakeTestRepo) Create(test *model.Test) error {
	test.ID = r.nextID
	r.nextID++
	stored := *test
	r.tests[test.ID] = &stored
	return nil
}

func (r *fakeTestRepo) FindByID(id uint) (*model.Test, error) {
	test, ok := r.tests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *test
	return &copy, nil
}

func (r *fakeTestRepo) FindByIDWithQuestions(id uint) (*model.Test, error) {
	return r.FindByID(id)
}

func (r *fakeTestRepo) FindAll() ([]model.Test, error) {
	all := make([]model.Test, 0, len(r.tests))
	for _, test := range r.tests {
		all = append(all, *test)
	}
	return all, nil
}

// Update mirrors the real repository, which omits the Questions association.
func (r *fakeTestRepo) Update(test *model.Test) error {
	existing, ok := r.tests[test.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *test
	stored.Questions = existing.Questions
	r.tests[test.ID] = &stored
	return nil
}

func (r *fakeTestRepo) ReplaceQuestions(testID uint, questions []model.Question) error {
	test, ok := r.tests[testID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	test.Questions = questions
	return nil
}

func (r *fakeTestRepo) Delete(id uint) error {
	delete(r.tests, id)
	return nil
}

type fakeResultRepo struct {
	results map[uint]*model.Result
	nextID  uint
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uint]*model.Result), nextID: 1}
}

func (r *fakeResultRepo) Create(result *model.Result) error {
	result.ID = r.nextID
	r.nextID++
	stored := *result
	r.results[result.ID] = &stored
	return nil
}

func (r *fakeResultRepo) FindByID(id uint) (*model.Result, error) {
	result, ok := r.results[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *result
	return &copy, nil
}

func (r *fakeResultRepo) FindByIDWithRefs(id uint) (*model.Result, error) {
	return r.FindByID(id)
}

func (r *fakeResultRepo) FindAll() ([]model.Result, error) {
	all := make([]model.Result, 0, len(r.results))
	for _, result := range r.results {
		all = append(all, *result)
	}
	return all, nil
}

func (r *fakeResultRepo) FindAllByUser(userID uint) ([]model.Result, error) {
	var own []model.Result
	for _, result := range r.results {
		if result.UserID == userID {
			own = append(own, *result)
		}
	}
	return own, nil
}

func (r *fakeResultRepo) Update(result *model.Result) error {
	if _, ok := r.results[result.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *result
	r.results[result.ID] = &stored
	return nil
}

func (r *fakeResultRepo) Delete(id uint) error {
	delete(r.results, id)
	return nil
}

type fakeScheduleRepo struct {
	schedules     map[uint]*model.Schedule
	registrations map[uint]map[uint]bool
	nextID        uint
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules:     make(map[uint]*model.Schedule),
		registrations: make(map[uint]map[uint]bool),
		nextID:        1,
	}
}

func (r *fakeScheduleRepo) Create(schedule *model.Schedule) error {
	schedule.ID = r.nextID
	r.nextID++
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *fakeScheduleRepo) FindByID(id uint) (*model.Schedule, error) {
	schedule, ok := r.schedules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *schedule
	return &copy, nil
}

func (r *fakeScheduleRepo) FindByIDWithUsers(id uint) (*model.Schedule, error) {
	return r.FindByID(id)
}

func (r *fakeScheduleRepo) FindAll() ([]model.Schedule, error) {
	all := make([]model.Schedule, 0, len(r.schedules))
	for _, schedule := range r.schedules {
		all = append(all, *schedule)
	}
	return all, nil
}

func (r *fakeScheduleRepo) Update(schedule *model.Schedule) error {
	if _, ok := r.schedules[schedule.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *schedule
	r.schedules[schedule.ID] = &stored
	return nil
}

func (r *fakeScheduleRepo) Delete(id uint) error {
	delete(r.schedules, id)
	delete(r.registrations, id)
	return nil
}

func (r *fakeScheduleRepo) CountRegistrations(scheduleID uint) (int64, error) {
	return int64(len(r.registrations[scheduleID])), nil
}

func (r *fakeScheduleRepo) IsRegistered(scheduleID, userID uint) (bool, error) {
	return r.registrations[scheduleID][userID], nil
}

func (r *fakeScheduleRepo) RegisterUser(schedule *model.Schedule, user *model.User) error {
	if r.registrations[schedule.ID] == nil {
		r.registrations[schedule.ID] = make(map[uint]bool)
	}
	r.registrations[schedule.ID][user.ID] = true
	return nil
}
