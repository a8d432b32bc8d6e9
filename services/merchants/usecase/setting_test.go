package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/chadpay/internal/pkg/apperror"
	"github.com/piresc/chadpay/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSetting_TemplateKeepsDescription(t *testing.T) {
	f := newFixture(t, testConfig())
	existing := &models.Setting{Key: "airtel_money_template", Value: "*211*{phone}*{amount}#", Description: "Airtel Money transfer"}

	f.repo.EXPECT().GetSetting(gomock.Any(), "airtel_money_template").Return(existing, nil)
	f.repo.EXPECT().UpsertSetting(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Setting, entry *models.AuditEntry) error {
			assert.Equal(t, "*211*{phone}*{amount}*{reference}#", s.Value)
			assert.Equal(t, "Airtel Money transfer", s.Description)
			assert.Equal(t, "admin", s.UpdatedBy)
			assert.Equal(t, fixedNow, s.UpdatedAt)
			assert.Equal(t, models.AuditActionSettingUpdated, entry.Action)
			assert.False(t, entry.MerchantID.Valid)
			return nil
		})

	got, err := f.uc.UpdateSetting(context.Background(), platformAdmin(), " Airtel_Money_Template ", models.UpdateSettingRequest{
		Value: "*211*{phone}*{amount}*{reference}#",
	})

	require.NoError(t, err)
	assert.Equal(t, "airtel_money_template", got.Key)
}

func TestUpdateSetting_NewKeyWithDescription(t *testing.T) {
	f := newFixture(t, testConfig())

	f.repo.EXPECT().UpsertSetting(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.uc.UpdateSetting(context.Background(), platformAdmin(), "support_phone", models.UpdateSettingRequest{
		Value:       "66000000",
		Description: "Shown on the payment page",
	})

	require.NoError(t, err)
	assert.Equal(t, "Shown on the payment page", got.Description)
}

func TestUpdateSetting_RejectsBrokenTemplate(t *testing.T) {
	for _, value := range []string{"*211*{phone*{amount}#", "*211*{pin}#", "*211*}#"} {
		t.Run(value, func(t *testing.T) {
			f := newFixture(t, testConfig())

			_, err := f.uc.UpdateSetting(context.Background(), platformAdmin(), "moov_cash_template", models.UpdateSettingRequest{Value: value})

			assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			assert.NotErrorIs(t, err, apperror.ErrConfiguration)
		})
	}
}

func TestUpdateSetting_EmptyValue(t *testing.T) {
	f := newFixture(t, testConfig())

	_, err := f.uc.UpdateSetting(context.Background(), platformAdmin(), "support_phone", models.UpdateSettingRequest{Value: "  "})

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateSetting_MerchantForbidden(t *testing.T) {
	f := newFixture(t, testConfig())
	expectDenial(f.repo, "manage_settings")

	_, err := f.uc.UpdateSetting(context.Background(), merchantAdmin(uuid.New()), "airtel_money_template", models.UpdateSettingRequest{Value: "*1#"})

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestUpdateSetting_StorageFailure(t *testing.T) {
	f := newFixture(t, testConfig())

	f.repo.EXPECT().GetSetting(gomock.Any(), "support_phone").Return(nil, errors.New("connection reset"))

	_, err := f.uc.UpdateSetting(context.Background(), platformAdmin(), "support_phone", models.UpdateSettingRequest{Value: "66000000"})

	assert.ErrorIs(t, err, apperror.ErrStorageFailure)
}

func TestListSettings_OperatorForbidden(t *testing.T) {
	f := newFixture(t, testConfig())
	expectDenial(f.repo, "read_settings")

	_, err := f.uc.ListSettings(context.Background(), merchantOperator(uuid.New()))

	assert.ErrorIs(t, err, apperror.ErrForbidden)
}

func TestListSettings_Admin(t *testing.T) {
	f := newFixture(t, testConfig())
	f.repo.EXPECT().ListSettings(gomock.Any()).Return([]*models.Setting{{Key: "airtel_money_template"}}, nil)

	got, err := f.uc.ListSettings(context.Background(), platformAdmin())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
