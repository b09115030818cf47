package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchside/turf-booking/internal/model"
	"github.com/pitchside/turf-booking/internal/repository"
	"github.com/pitchside/turf-booking/internal/utils"
)

// fakeStore is an in-memory UserStore.  Like the real repository, its
// uniqueness decision lives in Create, so duplicate registration behaves
// the same way it does against the database's unique index.
type fakeStore struct {
	byEmail map[string]*model.User
	nextID  uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]*model.User{}, nextID: 1}
}

func (f *fakeStore) Create(_ context.Context, name, email, passwordHash, role string) (uint64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := f.byEmail[email]; ok {
		return 0, repository.ErrEmailExists
	}
	u := &model.User{ID: f.nextID, Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	f.nextID++
	f.byEmail[email] = u
	return u.ID, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uint64) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func newTestService(store UserStore) *AuthService {
	// bcrypt cost 4 keeps the suite fast while using the real hasher.
	return NewAuthService(store, "test-secret", 24, 4)
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	user, tok, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "Jane@X.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", user.Name)
	assert.Equal(t, "jane@x.com", user.Email, "email is normalized to lowercase")
	assert.Equal(t, model.RoleUser, user.Role, "unspecified role defaults to user")
	assert.NotZero(t, user.ID)

	// The issued token must verify and reference the new user.
	id, err := utils.VerifyAccessToken("test-secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id.UserID)
	assert.Equal(t, model.RoleUser, id.Role)

	// And the profile lookup round-trips name and email.
	profile, err := svc.Profile(context.Background(), id.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, profile.Name)
	assert.Equal(t, user.Email, profile.Email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	svc := newTestService(store)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Password: "pw1",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		FirstName: "Other", LastName: "Jane", Email: "jane@x.com", Password: "pw2",
	})
	assert.ErrorIs(t, err, ErrDuplicateUser)
	assert.Len(t, store.byEmail, 1, "failed registration must not create a record")
}

func TestRegister_RoleHandling(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	user, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Ada", LastName: "Admin", Email: "ada@x.com", Password: "pw", Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		FirstName: "Bad", LastName: "Role", Email: "bad@x.com", Password: "pw", Role: "superuser",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@x.com", Password: "pw"}},
		{"missing email", RegisterInput{FirstName: "A", LastName: "B", Password: "pw"}},
		{"bad email", RegisterInput{FirstName: "A", LastName: "B", Email: "not-an-email", Password: "pw"}},
		{"missing password", RegisterInput{FirstName: "A", LastName: "B", Email: "a@x.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tc.in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestRegister_NameJoining(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	user, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "  Jane  ", LastName: "", Email: "solo@x.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name, "empty last name leaves no trailing space")
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	reg, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	user, tok, err := svc.Login(context.Background(), "JANE@x.com", "Secret123!")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, user.ID)

	id, err := utils.VerifyAccessToken("test-secret", tok.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id.UserID)
}

func TestLogin_IndistinguishableFailures(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	_, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	_, _, errWrongPw := svc.Login(context.Background(), "jane@x.com", "wrong")
	_, _, errNoUser := svc.Login(context.Background(), "nobody@x.com", "whatever")

	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errNoUser.Error(),
		"wrong password and unknown email must be indistinguishable")
}

func TestProfile_Missing(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeStore())

	_, err := svc.Profile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfile_NeverExposesHash(t *testing.T) {
	t.Parallel()
	store := newFakeStore()
	svc := newTestService(store)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Jane", LastName: "Doe", Email: "jane@x.com", Password: "Secret123!",
	})
	require.NoError(t, err)

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)

	// UserView has no hash field at all; double-check the stored hash is
	// not smuggled through any string field.
	hash := store.byEmail["jane@x.com"].PasswordHash
	assert.NotContains(t, profile.Name, hash)
	assert.NotContains(t, profile.Email, hash)
}
