package accounts_test

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/utils"
)

type fakeUserStore struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*models.User)}
}

func (s *fakeUserStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) UserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	s.nextID++
	user.ID = s.nextID
	if user.EmployerProfile != nil {
		user.EmployerProfile.ID = s.nextID
		user.EmployerProfile.UserID = s.nextID
	}
	if user.JobseekerProfile != nil {
		user.JobseekerProfile.ID = s.nextID
		user.JobseekerProfile.UserID = s.nextID
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) EmployerProfileByUser(_ context.Context, userID uint) (*models.EmployerProfile, error) {
	u, ok := s.users[userID]
	if !ok || u.EmployerProfile == nil {
		return nil, nil
	}
	return u.EmployerProfile, nil
}

func (s *fakeUserStore) UpdateEmployerProfile(_ context.Context, profile *models.EmployerProfile) error {
	if u, ok := s.users[profile.UserID]; ok {
		u.EmployerProfile = profile
	}
	return nil
}

func newTestService(store accounts.UserStore) *accounts.Service {
	return accounts.NewService(store, accounts.NewTokenIssuer("test-secret", time.Hour))
}

func TestRegister_JobseekerCreatesProfile(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:     "Thandi M",
		Email:    "thandi@example.com",
		Password: "longenough",
		Role:     models.RoleJobseeker,
	})
	if err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}

	if resp.User.Role != models.RoleJobseeker {
		t.Errorf("Role = %q, want jobseeker", resp.User.Role)
	}
	if resp.User.JobseekerProfile == nil {
		t.Error("jobseeker registration should create a jobseeker profile")
	}
	if resp.User.EmployerProfile != nil {
		t.Error("jobseeker registration should not create an employer profile")
	}
	if resp.Token == "" {
		t.Error("registration should log the account in with a token")
	}
}

func TestRegister_EmployerStartsUnapproved(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name:        "Sipho K",
		Email:       "sipho@harbour.example",
		Password:    "longenough",
		Role:        models.RoleEmployer,
		CompanyName: "Harbour Kitchen",
	})
	if err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}

	profile := resp.User.EmployerProfile
	if profile == nil {
		t.Fatal("employer registration should create an employer profile")
	}
	if profile.Approved {
		t.Error("new employer profiles must start unapproved")
	}
	if profile.CompanyName != "Harbour Kitchen" {
		t.Errorf("CompanyName = %q", profile.CompanyName)
	}
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	svc := newTestService(newFakeUserStore())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "x", Email: "x@example.com", Password: "longenough", Role: models.RoleAdmin,
	})
	if err == nil {
		t.Fatal("registration must not hand out the admin role")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserStore())
	req := models.RegisterRequest{
		Name: "a", Email: "dup@example.com", Password: "longenough", Role: models.RoleJobseeker,
	}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), req); err == nil {
		t.Fatal("second registration with the same email should fail")
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)

	if _, err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "a", Email: "hash@example.com", Password: "plaintext1", Role: models.RoleJobseeker,
	}); err != nil {
		t.Fatalf("Register returned unexpected error: %v", err)
	}

	stored := store.users[1]
	if stored.Password == "plaintext1" {
		t.Fatal("password must not be stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("plaintext1")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)
	if _, err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "a", Email: "login@example.com", Password: "longenough", Role: models.RoleJobseeker,
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email: "login@example.com", Password: "longenough",
	})
	if err != nil {
		t.Fatalf("Login returned unexpected error: %v", err)
	}
	if resp.Token == "" {
		t.Error("login should return a token")
	}

	_, wrongErr := svc.Login(context.Background(), models.LoginRequest{
		Email: "login@example.com", Password: "wrong",
	})
	if wrongErr == nil {
		t.Fatal("wrong password should fail")
	}
	if cerr, ok := utils.AsCustomError(wrongErr); !ok || cerr.Code != 401 {
		t.Errorf("wrong-password error = %v, want 401", wrongErr)
	}

	_, unknownErr := svc.Login(context.Background(), models.LoginRequest{
		Email: "nobody@example.com", Password: "longenough",
	})
	if unknownErr == nil {
		t.Fatal("unknown email should fail")
	}
	if wrongErr.Error() != unknownErr.Error() {
		t.Errorf("unknown-email error %q should be indistinguishable from wrong-password error %q",
			unknownErr.Error(), wrongErr.Error())
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := accounts.NewTokenIssuer("test-secret", time.Hour)
	user := &models.User{ID: 9, Email: "t@example.com", Role: models.RoleEmployer}

	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned unexpected error: %v", err)
	}
	claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned unexpected error: %v", err)
	}
	if claims.UserID != 9 || claims.Role != models.RoleEmployer {
		t.Errorf("claims = %+v", claims)
	}

	other := accounts.NewTokenIssuer("different-secret", time.Hour)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("token signed with another secret should not parse")
	}
}

func TestApproveEmployer(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestService(store)
	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Name: "e", Email: "e@example.com", Password: "longenough", Role: models.RoleEmployer,
	})
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	profile, err := svc.ApproveEmployer(context.Background(), resp.User.ID, true)
	if err != nil {
		t.Fatalf("ApproveEmployer returned unexpected error: %v", err)
	}
	if !profile.Approved {
		t.Error("profile should be approved")
	}

	if _, err := svc.ApproveEmployer(context.Background(), 404, true); !utils.IsNotFound(err) {
		t.Fatalf("ApproveEmployer for missing profile: got %v, want not found", err)
	}
}
