package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/models"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/repository"
	"github.com/jackc/pgx/v5"
)

type stubAccounts struct {
	rows   []models.Account
	nextID int64
}

func (s *stubAccounts) CreateAccount(_ context.Context, account *models.Account) error {
	for _, row := range s.rows {
		if row.Username == account.Username && row.Role == account.Role {
			return repository.ErrDuplicateKey
		}
	}
	s.nextID++
	account.ID = s.nextID
	account.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.rows = append(s.rows, *account)
	return nil
}

func (s *stubAccounts) GetByUsernameAndRole(_ context.Context, username string, role models.Role) (*models.Account, error) {
	for _, row := range s.rows {
		if row.Username == username && row.Role == role {
			account := row
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAccounts) GetByID(_ context.Context, id int64) (*models.Account, error) {
	for _, row := range s.rows {
		if row.ID == id {
			account := row
			return &account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubAccounts) List(_ context.Context, filter repository.AccountListFilter) ([]models.Account, int, error) {
	var matched []models.Account
	for _, row := range s.rows {
		if filter.Role == nil || row.Role == *filter.Role {
			matched = append(matched, row)
		}
	}
	total := len(matched)
	if filter.Offset >= total {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return matched[filter.Offset:end], total, nil
}

func (s *stubAccounts) Delete(_ context.Context, id int64) error {
	for i, row := range s.rows {
		if row.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

// seed inserts an account directly, bypassing registration.
func (s *stubAccounts) seed(username string, role models.Role) int64 {
	account := &models.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed:secret1",
		Role:         role,
	}
	_ = s.CreateAccount(context.Background(), account)
	return account.ID
}

type stubUserProfiles struct {
	rows map[int64]*models.UserProfile
}

func newStubUserProfiles() *stubUserProfiles {
	return &stubUserProfiles{rows: map[int64]*models.UserProfile{}}
}

func (s *stubUserProfiles) ensure(accountID int64) {
	if _, ok := s.rows[accountID]; ok {
		return
	}
	s.rows[accountID] = &models.UserProfile{ID: accountID + 100, AccountID: accountID}
}

func (s *stubUserProfiles) GetByAccountID(_ context.Context, accountID int64) (*models.UserProfile, error) {
	profile, ok := s.rows[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (s *stubUserProfiles) Update(_ context.Context, accountID int64, input repository.UserProfileInput) (*models.UserProfile, error) {
	profile, ok := s.rows[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	profile.FullName = input.FullName
	profile.Age = input.Age
	profile.Gender = input.Gender
	profile.Height = input.Height
	profile.Weight = input.Weight
	profile.FitnessGoal = input.FitnessGoal
	profile.MedicalNotes = input.MedicalNotes
	copied := *profile
	return &copied, nil
}

type stubTrainerProfiles struct {
	rows map[int64]*models.TrainerProfile
}

func newStubTrainerProfiles() *stubTrainerProfiles {
	return &stubTrainerProfiles{rows: map[int64]*models.TrainerProfile{}}
}

func (s *stubTrainerProfiles) ensure(accountID int64) {
	if _, ok := s.rows[accountID]; ok {
		return
	}
	s.rows[accountID] = &models.TrainerProfile{ID: accountID + 200, AccountID: accountID}
}

func (s *stubTrainerProfiles) GetByAccountID(_ context.Context, accountID int64) (*models.TrainerProfile, error) {
	profile, ok := s.rows[accountID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (s *stubTrainerProfiles) Save(_ context.Context, accountID int64, input repository.TrainerProfileInput) (*models.TrainerProfile, error) {
	s.ensure(accountID)
	profile := s.rows[accountID]
	profile.Specialization = input.Specialization
	profile.AvailableHoursPerDay = input.AvailableHoursPerDay
	profile.ExperienceYears = input.ExperienceYears
	copied := *profile
	return &copied, nil
}

// stubRegistrations applies registration writes to the stub stores and
// restores their previous state when fn fails.
type stubRegistrations struct {
	accounts        *stubAccounts
	userProfiles    *stubUserProfiles
	trainerProfiles *stubTrainerProfiles
	profileErr      error
}

func (s *stubRegistrations) WithinTx(ctx context.Context, fn func(q repository.RegistrationQueries) error) error {
	accounts := append([]models.Account(nil), s.accounts.rows...)
	nextID := s.accounts.nextID
	userProfiles := make(map[int64]*models.UserProfile, len(s.userProfiles.rows))
	for id, profile := range s.userProfiles.rows {
		userProfiles[id] = profile
	}
	trainerProfiles := make(map[int64]*models.TrainerProfile, len(s.trainerProfiles.rows))
	for id, profile := range s.trainerProfiles.rows {
		trainerProfiles[id] = profile
	}

	if err := fn(s); err != nil {
		s.accounts.rows = accounts
		s.accounts.nextID = nextID
		s.userProfiles.rows = userProfiles
		s.trainerProfiles.rows = trainerProfiles
		return err
	}
	return nil
}

func (s *stubRegistrations) CreateAccount(ctx context.Context, account *models.Account) error {
	return s.accounts.CreateAccount(ctx, account)
}

func (s *stubRegistrations) EnsureUserProfile(_ context.Context, accountID int64) error {
	if s.profileErr != nil {
		return s.profileErr
	}
	s.userProfiles.ensure(accountID)
	return nil
}

func (s *stubRegistrations) EnsureTrainerProfile(_ context.Context, accountID int64) error {
	if s.profileErr != nil {
		return s.profileErr
	}
	s.trainerProfiles.ensure(accountID)
	return nil
}

type stubAssignments struct {
	rows   []models.Assignment
	nextID int64
}

func (s *stubAssignments) Create(_ context.Context, trainerID, userID int64, assignedDate time.Time) (*models.Assignment, error) {
	s.nextID++
	assignment := models.Assignment{ID: s.nextID, TrainerID: trainerID, UserID: userID, AssignedDate: assignedDate}
	s.rows = append(s.rows, assignment)
	return &assignment, nil
}

func (s *stubAssignments) ListByTrainer(_ context.Context, trainerID int64) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, row := range s.rows {
		if row.TrainerID == trainerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubAssignments) ListByUser(_ context.Context, userID int64) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, row := range s.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubAssignments) ListAll(_ context.Context) ([]models.Assignment, error) {
	return append([]models.Assignment(nil), s.rows...), nil
}

type stubWorkouts struct {
	rows []models.Workout
}

func (s *stubWorkouts) Create(_ context.Context, workout *models.Workout) error {
	workout.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *workout)
	return nil
}

func (s *stubWorkouts) GetByID(_ context.Context, id int64) (*models.Workout, error) {
	for _, row := range s.rows {
		if row.ID == id {
			workout := row
			return &workout, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *stubWorkouts) ListByProfile(_ context.Context, profileID int64, filter models.DateFilter) ([]models.Workout, error) {
	var out []models.Workout
	for _, row := range s.rows {
		if row.ProfileID == profileID && filter.Matches(row.Date) {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubWorkouts) UpdateProgress(_ context.Context, id int64, actualReps *int, completed bool) (*models.Workout, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows[i].ActualReps = actualReps
			s.rows[i].Completed = completed
			workout := s.rows[i]
			return &workout, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubMeals struct {
	rows []models.Meal
}

func (s *stubMeals) Create(_ context.Context, meal *models.Meal) error {
	meal.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *meal)
	return nil
}

func (s *stubMeals) ListByProfile(_ context.Context, profileID int64, filter models.DateFilter) ([]models.Meal, error) {
	var out []models.Meal
	for _, row := range s.rows {
		if row.ProfileID == profileID && filter.Matches(row.Date) {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubSleepMood struct {
	rows []models.SleepMood
}

func (s *stubSleepMood) Create(_ context.Context, entry *models.SleepMood) error {
	entry.ID = int64(len(s.rows) + 1)
	s.rows = append(s.rows, *entry)
	return nil
}

func (s *stubSleepMood) ListByProfile(_ context.Context, profileID int64, filter models.DateFilter) ([]models.SleepMood, error) {
	var out []models.SleepMood
	for _, row := range s.rows {
		if row.ProfileID == profileID && filter.Matches(row.Date) {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubHasher struct{}

func (stubHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (stubHasher) Verify(plain, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == plain && strings.HasPrefix(hash, "hashed:")
}

type stubTokens struct {
	lastAccountID int64
	lastRole      string
}

func (s *stubTokens) Issue(accountID int64, username, role string) (string, error) {
	s.lastAccountID = accountID
	s.lastRole = role
	return "token-" + username + "-" + role, nil
}

var fixedNow = func() time.Time {
	return time.Date(2024, 1, 5, 15, 30, 0, 0, time.UTC)
}

// fixture wires every service to one set of in-memory stores.
type fixture struct {
	accounts        *stubAccounts
	userProfiles    *stubUserProfiles
	trainerProfiles *stubTrainerProfiles
	registrations   *stubRegistrations
	assignmentRows  *stubAssignments
	workouts        *stubWorkouts
	meals           *stubMeals
	sleepMood       *stubSleepMood
	tokens          *stubTokens

	auth        *AuthService
	assignments *AssignmentService
	users       *UserService
	trainers    *TrainerService
	admin       *AdminService
}

func newFixture() *fixture {
	f := &fixture{
		accounts:        &stubAccounts{},
		userProfiles:    newStubUserProfiles(),
		trainerProfiles: newStubTrainerProfiles(),
		assignmentRows:  &stubAssignments{},
		workouts:        &stubWorkouts{},
		meals:           &stubMeals{},
		sleepMood:       &stubSleepMood{},
		tokens:          &stubTokens{},
	}
	f.registrations = &stubRegistrations{
		accounts:        f.accounts,
		userProfiles:    f.userProfiles,
		trainerProfiles: f.trainerProfiles,
	}

	lookup := NewProfileLookup(f.accounts, f.userProfiles, f.trainerProfiles)
	f.auth = NewAuthService(f.accounts, f.registrations, stubHasher{}, f.tokens)
	f.assignments = NewAssignmentService(lookup, f.assignmentRows)
	f.assignments.now = fixedNow
	f.users = NewUserService(lookup, f.userProfiles, f.workouts, f.meals, f.sleepMood, f.assignments)
	f.users.now = fixedNow
	f.trainers = NewTrainerService(lookup, f.trainerProfiles, f.assignments, f.workouts, f.meals)
	f.trainers.now = fixedNow
	f.admin = NewAdminService(f.accounts, f.assignments)
	return f
}

func (f *fixture) register(username string, role models.Role) int64 {
	account, err := f.auth.Register(context.Background(), RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "secret1",
		Role:     role,
	})
	if err != nil {
		panic(err)
	}
	return account.ID
}

func expectKind(err, kind error) bool {
	return err != nil && errors.Is(err, kind)
}

func day(value string) time.Time {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T {
	return &v
}
