package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser_OwnerAddsOperator(t *testing.T) {
	f := newFixture(t, testConfig())
	merchant := busMerchant()
	owner := merchantAdmin(merchant.ID)

	f.repo.EXPECT().GetMerchantByID(gomock.Any(), merchant.ID).Return(merchant, nil)
	f.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.MerchantUser, entry *models.AuditEntry) error {
			assert.Equal(t, "99123456", u.Phone)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PINHash), []byte("4321")))
			assert.Equal(t, models.AuditActionUserCreated, entry.Action)
			assert.Equal(t, u.ID.String(), entry.EntityRef)
			assert.Equal(t, owner.ID, entry.ActorID)
			return nil
		})

	user, err := f.uc.CreateUser(context.Background(), owner, merchant.ID, models.CreateMerchantUserRequest{
		Phone: "00235 99 12 34 56",
		Name:  "Abakar",
		PIN:   "4321",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleMerchantOperator, user.Role())
	assert.True(t, user.IsActive)
}

func TestCreateUser_ForeignMerchantForbidden(t *testing.T) {
	f := newFixture(t, testConfig())
	expectDenial(f.repo, "manage_merchant_users")

	_, err := f.uc.CreateUser(context.Background(), merchantAdmin(uuid.New()), uuid.New(), models.CreateMerchantUserRequest{
		Phone: "99123456", Name: "Intruder", PIN: "1234",
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateUser_OperatorForbidden(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	expectDenial(f.repo, "manage_merchant_users")

	_, err := f.uc.CreateUser(context.Background(), merchantOperator(merchantID), merchantID, models.CreateMerchantUserRequest{
		Phone: "99123456", Name: "Colleague", PIN: "1234",
	})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestCreateUser_InvalidPIN(t *testing.T) {
	for _, pin := range []string{"", "12", "12a4", "1234567"} {
		t.Run(pin, func(t *testing.T) {
			f := newFixture(t, testConfig())

			_, err := f.uc.CreateUser(context.Background(), platformAdmin(), uuid.New(), models.CreateMerchantUserRequest{
				Phone: "99123456", Name: "Abakar", PIN: pin,
			})

			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
		})
	}
}

func TestCreateUser_UnknownMerchant(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()

	f.repo.EXPECT().GetMerchantByID(gomock.Any(), merchantID).Return(nil, apperror.NotFound("merchant %s", merchantID))

	_, err := f.uc.CreateUser(context.Background(), platformAdmin(), merchantID, models.CreateMerchantUserRequest{
		Phone: "99123456", Name: "Abakar", PIN: "1234",
	})

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListUsers_OperatorReadsOwnMerchant(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()

	f.repo.EXPECT().ListUsers(gomock.Any(), merchantID).Return([]*models.MerchantUser{{ID: uuid.New(), MerchantID: merchantID}}, nil)

	users, err := f.uc.ListUsers(context.Background(), merchantOperator(merchantID), merchantID)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestDeactivateUser_Success(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	target := &models.MerchantUser{ID: uuid.New(), MerchantID: merchantID, IsActive: true}
	owner := merchantAdmin(merchantID)

	f.repo.EXPECT().GetUserByID(gomock.Any(), target.ID).Return(target, nil)
	f.repo.EXPECT().DeactivateUser(gomock.Any(), target.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, entry *models.AuditEntry) (*models.MerchantUser, error) {
			assert.Equal(t, models.AuditActionUserDeactivated, entry.Action)
			assert.Equal(t, merchantID, entry.MerchantID.UUID)
			deactivated := *target
			deactivated.IsActive = false
			return &deactivated, nil
		})

	got, err := f.uc.DeactivateUser(context.Background(), owner, target.ID)

	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestDeactivateUser_Self(t *testing.T) {
	f := newFixture(t, testConfig())
	merchantID := uuid.New()
	owner := merchantAdmin(merchantID)
	self := &models.MerchantUser{ID: uuid.MustParse(owner.ID), MerchantID: merchantID, IsAdmin: true, IsActive: true}

	f.repo.EXPECT().GetUserByID(gomock.Any(), self.ID).Return(self, nil)

	_, err := f.uc.DeactivateUser(context.Background(), owner, self.ID)

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestDeactivateUser_ForeignMerchant(t *testing.T) {
	f := newFixture(t, testConfig())
	target := &models.MerchantUser{ID: uuid.New(), MerchantID: uuid.New(), IsActive: true}

	f.repo.EXPECT().GetUserByID(gomock.Any(), target.ID).Return(target, nil)
	expectDenial(f.repo, "manage_merchant_users")

	_, err := f.uc.DeactivateUser(context.Background(), merchantAdmin(uuid.New()), target.ID)

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
